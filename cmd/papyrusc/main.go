// Package main implements the papyrusc command-line driver: parse a
// Papyrus script and print its token stream or AST.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/go-papyrus/papyrus/papyrus"
)

var (
	emitTokens = flag.Bool("emit-tokens", false, "output the token stream instead of parsing")
	astFormat  = flag.String("ast-format", "text", "AST output format (text or json)")
	noThrow    = flag.Bool("no-throw", false, "disable all semantic throw rules (scriptname/if/while/binary/call/cast/new outside checks)")
	checkName  = flag.Bool("check-filename", true, "require ScriptName to match the input filename")
	version    = flag.Bool("version", false, "print version")
)

const Version = "0.1.0-dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "papyrusc %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: papyrusc [options] <file.psc>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Printf("papyrusc version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file")
		fmt.Fprintln(os.Stderr, "usage: papyrusc [options] <file.psc>")
		os.Exit(1)
	}

	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *emitTokens {
		os.Exit(runEmitTokens(string(content)))
	}
	os.Exit(runEmitAST(string(content), filename))
}

func scriptName(filename string) string {
	base := filename
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndexByte(base, '\\'); i >= 0 {
		base = base[i+1:]
	}
	base = strings.TrimSuffix(base, ".psc")
	return base
}

func optionsFromFlags() papyrus.Options {
	if *noThrow {
		return papyrus.Options{}
	}
	opts := papyrus.DefaultOptions()
	if !*checkName {
		opts.ThrowScriptnameMismatch = false
	}
	return opts
}

// runEmitAST parses content and prints its AST.
func runEmitAST(content, filename string) int {
	prog, perr := papyrus.Parse(content, optionsFromFlags(), scriptName(filename))
	if perr != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", filename, perr.Error())
		return 1
	}

	switch *astFormat {
	case "json":
		if err := papyrus.FprintJSON(os.Stdout, prog); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	default:
		papyrus.Fprint(os.Stdout, prog)
	}
	return 0
}

// runEmitTokens scans content and prints every token with its span.
func runEmitTokens(content string) int {
	lex := papyrus.NewLexer(content)

	fmt.Printf("%-10s %-14s %s\n", "SPAN", "TOKEN", "VALUE")
	fmt.Printf("%-10s %-14s %s\n", strings.Repeat("-", 10), strings.Repeat("-", 14), strings.Repeat("-", 20))

	for {
		if err := lex.Next(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
			return 1
		}
		fmt.Printf("%-10s %-14s %s\n",
			fmt.Sprintf("%d:%d", lex.Start, lex.End),
			lex.Kind.String(),
			formatLiteral(lex.Value))
		if lex.Kind == papyrus.Eof {
			break
		}
	}
	return 0
}

func formatLiteral(lit string) string {
	if lit == "" {
		return `""`
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
