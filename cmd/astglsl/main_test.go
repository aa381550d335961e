package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/astglsl/glsl"
)

const emptyMainJSON = `{"node": "aggregate", "op": "function", "name": "main(", "type": {"basic": "void"},
 "children": [{"node": "aggregate", "op": "parameters"}]}`

// samplerReturnJSON translates, but its return type cannot be resolved.
const samplerReturnJSON = `{"node": "aggregate", "op": "function", "name": "f(", "type": {"basic": "sampler"},
 "loc": {"file": "s.frag", "line": 4},
 "children": [{"node": "aggregate", "op": "parameters"}]}`

func TestBuildOptions(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config
		wantErr    string
		wantIndent string
		wantDebug  bool
		wantLang   glsl.Version
	}{
		{name: "defaults", cfg: config{indent: 2}, wantIndent: "  "},
		{name: "wide_indent", cfg: config{indent: 4}, wantIndent: "    "},
		{name: "debug", cfg: config{indent: 2, debug: true}, wantIndent: "  ", wantDebug: true},
		{name: "version", cfg: config{indent: 2, glslVersion: "450"}, wantIndent: "  ", wantLang: glsl.Version450},
		{name: "es_version", cfg: config{indent: 2, glslVersion: "320 es"}, wantIndent: "  ", wantLang: glsl.VersionES320},
		{name: "zero_indent", cfg: config{indent: 0}, wantErr: "invalid indent 0"},
		{name: "negative_indent", cfg: config{indent: -1}, wantErr: "invalid indent -1"},
		{name: "bad_version", cfg: config{indent: 2, glslVersion: "450 core"}, wantErr: "invalid GLSL version"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var diags bytes.Buffer
			opts, err := buildOptions(tt.cfg, &diags)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("buildOptions error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("buildOptions: %v", err)
			}
			if opts.GLSL.Indent != tt.wantIndent {
				t.Errorf("Indent = %q, want %q", opts.GLSL.Indent, tt.wantIndent)
			}
			if got := opts.GLSL.WriterFlags&glsl.WriterFlagDebugInfo != 0; got != tt.wantDebug {
				t.Errorf("debug info = %v, want %v", got, tt.wantDebug)
			}
			if opts.GLSL.LangVersion != tt.wantLang {
				t.Errorf("LangVersion = %+v, want %+v", opts.GLSL.LangVersion, tt.wantLang)
			}
			if opts.GLSL.DiagnosticWriter != &diags {
				t.Error("DiagnosticWriter is not the given writer")
			}
		})
	}
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	if err := os.WriteFile(path, []byte("from file"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		args     []string
		wantData string
		wantName string
	}{
		{"no_args", nil, "from stdin", "<stdin>"},
		{"dash", []string{"-"}, "from stdin", "<stdin>"},
		{"file", []string{path}, "from file", path},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, name, err := readInput(tt.args, strings.NewReader("from stdin"))
			if err != nil {
				t.Fatalf("readInput: %v", err)
			}
			if string(data) != tt.wantData || name != tt.wantName {
				t.Errorf("readInput = (%q, %q), want (%q, %q)", data, name, tt.wantData, tt.wantName)
			}
		})
	}

	if _, _, err := readInput([]string{filepath.Join(t.TempDir(), "missing.json")}, nil); err == nil {
		t.Error("Expected error for a missing file")
	}
}

func TestRunWithArgs(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		stdin      string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "stdin",
			stdin:      emptyMainJSON,
			wantCode:   0,
			wantStdout: "\nvoid main() {\n}\n\n",
		},
		{
			name:       "stdin_dash",
			args:       []string{"-"},
			stdin:      emptyMainJSON,
			wantCode:   0,
			wantStdout: "void main() {",
		},
		{
			name:       "version_directive",
			args:       []string{"-glsl-version", "450"},
			stdin:      emptyMainJSON,
			wantCode:   0,
			wantStdout: "#version 450\n",
		},
		{
			name:       "diagnostics",
			stdin:      samplerReturnJSON,
			wantCode:   2,
			wantStdout: "<error-type> f() {",
			wantStderr: "ERROR: s.frag:4 translate return type",
		},
		{
			name:       "bad_indent",
			args:       []string{"-indent", "0"},
			stdin:      emptyMainJSON,
			wantCode:   1,
			wantStderr: "invalid indent 0",
		},
		{
			name:       "bad_json",
			stdin:      `{"node": `,
			wantCode:   1,
			wantStderr: "Translation error",
		},
		{
			name:       "too_many_files",
			args:       []string{"a.json", "b.json"},
			wantCode:   1,
			wantStderr: "too many input files",
		},
		{
			name:       "unknown_flag",
			args:       []string{"-colour"},
			wantCode:   1,
			wantStderr: "flag provided but not defined",
		},
		{
			name:       "version",
			args:       []string{"-version"},
			wantCode:   0,
			wantStdout: "astglsl version " + astglslVersion,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := runWithArgs(tt.args, strings.NewReader(tt.stdin), &stdout, &stderr)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nstderr: %s", code, tt.wantCode, stderr.String())
			}
			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout.String(), tt.wantStdout)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRunWithArgs_OutputFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "main.json")
	out := filepath.Join(dir, "main.glsl")
	if err := os.WriteFile(in, []byte(emptyMainJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := runWithArgs([]string{"-o", out, in}, strings.NewReader(""), &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "\nvoid main() {\n}\n\n" {
		t.Errorf("output file = %q", got)
	}
	if !strings.Contains(stdout.String(), "Translated "+in+" to "+out) {
		t.Errorf("stdout = %q", stdout.String())
	}
}
