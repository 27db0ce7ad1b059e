package papyrus

// Options toggles the parser's semantic throw rules. Every toggle
// defaults to true (spec §6.1); this mirrors the teacher's single
// asiEnabled boolean (internal/syntax/scanner.go's SetASIEnabled)
// generalized to the nine rules this grammar needs.
type Options struct {
	// ThrowScriptnameMissing requires the first statement in the file to
	// be a ScriptName declaration.
	ThrowScriptnameMissing bool
	// ThrowScriptnameMismatch requires the ScriptName identifier to equal
	// the supplied filename, case-insensitively.
	ThrowScriptnameMismatch bool
	// ThrowReturnOutside rejects Return statements outside a function or
	// event body.
	ThrowReturnOutside bool
	// ThrowIfOutside rejects If statements outside a function or event
	// body.
	ThrowIfOutside bool
	// ThrowWhileOutside rejects While statements outside a function or
	// event body.
	ThrowWhileOutside bool
	// ThrowBinaryOutside rejects binary/logical expressions outside a
	// function or event body.
	ThrowBinaryOutside bool
	// ThrowCallOutside rejects call expressions outside a function or
	// event body.
	ThrowCallOutside bool
	// ThrowCastOutside rejects cast expressions outside a function or
	// event body.
	ThrowCastOutside bool
	// ThrowNewOutside rejects New expressions outside a function or
	// event body.
	ThrowNewOutside bool
}

// DefaultOptions returns the Options value every throw rule enabled,
// matching the defaults in spec §6.1.
func DefaultOptions() Options {
	return Options{
		ThrowScriptnameMissing:  true,
		ThrowScriptnameMismatch: true,
		ThrowReturnOutside:      true,
		ThrowIfOutside:          true,
		ThrowWhileOutside:       true,
		ThrowBinaryOutside:      true,
		ThrowCallOutside:        true,
		ThrowCastOutside:        true,
		ThrowNewOutside:         true,
	}
}
