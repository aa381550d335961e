// Command astglsl translates a typed shader syntax tree into GLSL.
//
// Usage:
//
//	astglsl [options] [input.json]
//
// The tree is read from the named file, or from stdin when no file is
// given or the file is "-". Diagnostics are written to stderr as they are
// produced.
//
// Exit status is 0 on success, 1 on a usage, input or translation error,
// and 2 when the output was written but contains diagnostics.
//
// Examples:
//
//	astglsl shader.json                          # Translate to stdout
//	astglsl -o shader.glsl shader.json           # Translate to file
//	astglsl -glsl-version "320 es" shader.json   # Emit a #version directive
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gogpu/astglsl"
	"github.com/gogpu/astglsl/glsl"
)

const astglslVersion = "0.1.0-dev"

// config holds the parsed command line.
type config struct {
	output      string
	validate    bool
	glslVersion string
	indent      int
	debug       bool
	version     bool
}

func main() {
	os.Exit(runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func newFlagSet(cfg *config, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("astglsl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.output, "o", "", "output file (default: stdout)")
	fs.BoolVar(&cfg.validate, "validate", false, "validate the tree before translation")
	fs.StringVar(&cfg.glslVersion, "glsl-version", "", "emit a #version directive, e.g. 450 or \"320 es\"")
	fs.IntVar(&cfg.indent, "indent", 2, "spaces per indentation level")
	fs.BoolVar(&cfg.debug, "debug", false, "emit source location comments")
	fs.BoolVar(&cfg.version, "version", false, "print version")
	fs.Usage = func() { usage(fs, stderr) }
	return fs
}

func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg config
	fs := newFlagSet(&cfg, stderr)
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if cfg.version {
		fmt.Fprintf(stdout, "astglsl version %s\n", astglslVersion)
		return 0
	}

	rest := fs.Args()
	if len(rest) > 1 {
		fmt.Fprintln(stderr, "Error: too many input files")
		fs.Usage()
		return 1
	}

	opts, err := buildOptions(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	source, inputPath, err := readInput(rest, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading input: %v\n", err)
		return 1
	}

	code, diags, err := astglsl.TranslateJSON(source, opts)
	if err != nil {
		fmt.Fprintf(stderr, "Translation error: %v\n", err)
		return 1
	}

	// Write output
	if cfg.output != "" {
		if err := os.WriteFile(cfg.output, []byte(code), 0o644); err != nil {
			fmt.Fprintf(stderr, "Error writing output: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Translated %s to %s (%d bytes, %d diagnostics)\n", inputPath, cfg.output, len(code), len(diags))
	} else if _, err := io.WriteString(stdout, code); err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return 1
	}

	if len(diags) > 0 {
		return 2
	}
	return 0
}

// readInput reads the single input file, or stdin for no file or "-".
func readInput(args []string, stdin io.Reader) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		return data, "<stdin>", err
	}
	data, err := os.ReadFile(args[0])
	return data, args[0], err
}

func buildOptions(cfg config, diagnostics io.Writer) (astglsl.CompileOptions, error) {
	opts := astglsl.DefaultOptions()
	opts.Validate = cfg.validate
	opts.GLSL.DiagnosticWriter = diagnostics

	if cfg.glslVersion != "" {
		v, err := glsl.ParseVersion(cfg.glslVersion)
		if err != nil {
			return opts, err
		}
		opts.GLSL.LangVersion = v
	}
	if cfg.indent < 1 {
		return opts, fmt.Errorf("invalid indent %d", cfg.indent)
	}
	opts.GLSL.Indent = strings.Repeat(" ", cfg.indent)
	if cfg.debug {
		opts.GLSL.WriterFlags |= glsl.WriterFlagDebugInfo
	}
	return opts, nil
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: astglsl [options] [input.json]\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  astglsl shader.json                 Translate to stdout\n")
	fmt.Fprintf(w, "  astglsl -o shader.glsl shader.json  Translate to file\n")
	fmt.Fprintf(w, "  astglsl -glsl-version 450 shader.json\n")
	fmt.Fprintf(w, "                                      Emit #version 450\n")
}
