package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeBatch(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("os.WriteFile() failed: %v", err)
	}
	return path
}

func TestRunOperation(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"add", "-3", "4"}, "1d\n"},
		{[]string{"sub", "-3", "4"}, "-7d\n"},
		{[]string{"neg", "-7d"}, "7d\n"},
		{[]string{"mul", "11d", "7d"}, "77d\n"},
		{[]string{"quo", "-10", "9"}, "-2d\n"},
		{[]string{"rem", "-10", "9"}, "8d\n"},
		{[]string{"pow", "2", "100"}, "1,267,650,600,228,229,401,496,703,205,376\n"},
		{[]string{"powmod", "10d", "5d", "3d"}, "1d\n"},
		{[]string{"lt", "-10", "-9"}, "true\n"},
		{[]string{"-verbosity", "0", "eq", "1,000", "1000d"}, "true\n"},
	}
	for _, tt := range tests {
		code, stdout, stderr := runCmd(t, tt.args...)
		if code != 0 {
			t.Errorf("run(%q) = %v, stderr %q", tt.args, code, stderr)
			continue
		}
		if stdout != tt.want {
			t.Errorf("run(%q) printed %q, want %q", tt.args, stdout, tt.want)
		}
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		args    []string
		code    int
		message string
	}{
		{[]string{"quo", "1", "0"}, 1, "Error: quo: division by zero"},
		{[]string{"pow", "2", "-1"}, 1, "Error: pow: negative exponent"},
		{[]string{"add", "1.5", "1"}, 1, "malformed number"},
		{[]string{"sqrt", "4"}, 1, "unknown operation"},
		{[]string{"neg", "1", "2"}, 1, "neg takes 1 operands, got 2"},
		{[]string{}, 2, "Usage:"},
		{[]string{"-log.format", "xml", "add", "1", "2"}, 2, `unknown log format "xml"`},
		{[]string{"-nosuchflag"}, 2, "flag provided but not defined"},
		{[]string{"-f", "batch.yaml", "add", "1", "2"}, 2, "-f does not take operations"},
	}
	for _, tt := range tests {
		code, stdout, stderr := runCmd(t, tt.args...)
		if code != tt.code {
			t.Errorf("run(%q) = %v, want %v", tt.args, code, tt.code)
		}
		if stdout != "" {
			t.Errorf("run(%q) printed %q", tt.args, stdout)
		}
		if !strings.Contains(stderr, tt.message) {
			t.Errorf("run(%q) stderr = %q, want it to contain %q", tt.args, stderr, tt.message)
		}
	}
}

func TestRunVersion(t *testing.T) {
	code, stdout, _ := runCmd(t, "-version")
	if code != 0 {
		t.Fatalf("run(-version) = %v", code)
	}
	if want := "decint " + version + "\n"; stdout != want {
		t.Errorf("run(-version) printed %q, want %q", stdout, want)
	}
}

func TestRunHelp(t *testing.T) {
	code, _, stderr := runCmd(t, "-h")
	if code != 0 {
		t.Errorf("run(-h) = %v, want 0", code)
	}
	if !strings.Contains(stderr, "powmod") {
		t.Errorf("run(-h) stderr = %q, want it to list operations", stderr)
	}
}

func TestRunTrace(t *testing.T) {
	code, stdout, stderr := runCmd(t, "-verbosity", "4", "-log.format", "json", "mul", "1,000", "1,000")
	if code != 0 {
		t.Fatalf("run() = %v, stderr %q", code, stderr)
	}
	if stdout != "1,000,000\n" {
		t.Errorf("run() printed %q, want %q", stdout, "1,000,000\n")
	}
	for _, want := range []string{`"level":"DEBUG"`, `"module":"calculator"`, `"op":"mul"`, `"result":"1,000,000"`} {
		if !strings.Contains(stderr, want) {
			t.Errorf("trace %q does not contain %q", stderr, want)
		}
	}

	_, _, stderr = runCmd(t, "-verbosity", "5", "-log.format", "json", "neg", "1")
	if !strings.Contains(stderr, `"op":"neg"`) {
		t.Errorf("run() at verbosity 5 logged %q, want an operation trace", stderr)
	}

	_, _, stderr = runCmd(t, "-verbosity", "3", "mul", "1", "1")
	if stderr != "" {
		t.Errorf("run() at verbosity 3 logged %q", stderr)
	}
}

func TestRunBatch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		path := writeBatch(t, `
ops:
  - op: add
    args: ["-3", "4"]
  - op: pow
    args: ["10d", "5d"]
  - op: powmod
    args: ["10", "5", "-3"]
  - op: ge
    args: ["5", "5.000"]
`)
		code, stdout, stderr := runCmd(t, "-verbosity", "0", "-f", path)
		if code != 0 {
			t.Fatalf("run(-f) = %v, stderr %q", code, stderr)
		}
		want := "add(-3, 4) = 1d\npow(10d, 5d) = 100,000\npowmod(10, 5, -3) = -2d\nge(5, 5.000) = true\n"
		if stdout != want {
			t.Errorf("run(-f) printed %q, want %q", stdout, want)
		}
	})

	t.Run("partial", func(t *testing.T) {
		path := writeBatch(t, `
ops:
  - op: quo
    args: ["1", "0"]
  - op: mul
    args: ["11", "7"]
`)
		code, stdout, stderr := runCmd(t, "-f", path)
		if code != 1 {
			t.Errorf("run(-f) = %v, want 1", code)
		}
		if stdout != "mul(11, 7) = 77d\n" {
			t.Errorf("run(-f) printed %q", stdout)
		}
		if !strings.Contains(stderr, "Error: op 1: quo: division by zero") {
			t.Errorf("run(-f) stderr = %q", stderr)
		}
		if !strings.Contains(stderr, "Batch finished with errors") {
			t.Errorf("run(-f) stderr = %q, want a warning", stderr)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			name, path, message string
		}{
			{"missing", filepath.Join(t.TempDir(), "missing.yaml"), "reading batch file"},
			{"malformed", writeBatch(t, "ops: [\n"), "decoding"},
		}
		for _, tt := range tests {
			code, _, stderr := runCmd(t, "-f", tt.path)
			if code != 2 {
				t.Errorf("run(-f %v) = %v, want 2", tt.name, code)
			}
			if !strings.Contains(stderr, tt.message) {
				t.Errorf("run(-f %v) stderr = %q, want it to contain %q", tt.name, stderr, tt.message)
			}
		}
	})
}

func TestVerbosityLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      string
	}{
		{0, "ERROR"},
		{1, "ERROR"},
		{2, "WARN"},
		{3, "INFO"},
		{4, "DEBUG"},
		{5, "DEBUG"},
		{9, "DEBUG"},
	}
	for _, tt := range tests {
		got := verbosityLevel(tt.verbosity).String()
		if got != tt.want {
			t.Errorf("verbosityLevel(%v) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}
