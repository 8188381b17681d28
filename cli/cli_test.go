package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/rbconf/cli/cmd"
	"github.com/ardnew/rbconf/conf"
	"github.com/ardnew/rbconf/pkg"
)

// TestMain points the per-user directories at a temporary home before any
// test resolves them.
func TestMain(m *testing.M) {
	home, err := os.MkdirTemp("", pkg.Name+"-cli-test-*")
	if err != nil {
		panic(err)
	}

	for key, dir := range map[string]string{
		"HOME":            home,
		"XDG_CONFIG_HOME": filepath.Join(home, ".config"),
		"XDG_CACHE_HOME":  filepath.Join(home, ".cache"),
	} {
		if err := os.Setenv(key, dir); err != nil {
			panic(err)
		}
	}

	code := m.Run()

	_ = os.RemoveAll(home)

	os.Exit(code)
}

const testTableYAML = `MAJOR: 2
MINOR: 3
TEENY: 3
prefix: /opt/ruby
bindir: $(prefix)/bin
ruby_install_name: ruby
EXEEXT: ""
CC: clang
`

func testTableFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "table.yaml")
	if err := os.WriteFile(path, []byte(testTableYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

// runArgs runs the CLI and returns its output and the exit code passed to
// the exit function, or -1 if it was not called.
func runArgs(t *testing.T, args ...string) (string, int, error) {
	t.Helper()

	var out bytes.Buffer

	code := -1
	err := run(t.Context(), &out, func(c int) { code = c }, args...)

	return out.String(), code, err
}

func TestRunCommands(t *testing.T) {
	table := testTableFile(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"get", []string{"--table", table, "get", "bindir"}, "/opt/ruby/bin\n"},
		{"get_raw", []string{"-t", table, "get", "--raw", "bindir"}, "$(prefix)/bin\n"},
		{"expand", []string{"-t", table, "expand", "$(CC)", "main.c"}, "clang main.c\n"},
		{"exe", []string{"-t", table, "exe"}, "/opt/ruby/bin/ruby\n"},
		{"eval", []string{"-t", table, "eval", `get("CC") + "++"`}, "clang++\n"},
		{"version_short", []string{"version", "--short"}, pkg.Version() + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, code, err := runArgs(t, tt.args...)
			if err != nil {
				t.Fatalf("run(%v) error = %v", tt.args, err)
			}

			if code != -1 {
				t.Errorf("exit(%d) called", code)
			}

			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunDefaultCommandLists(t *testing.T) {
	got, _, err := runArgs(t, "--table", testTableFile(t))
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if !strings.HasPrefix(got, "MAJOR = 2\n") || !strings.Contains(got, "CC = clang\n") {
		t.Errorf("output = %q", got)
	}
}

func TestRunVersionMismatch(t *testing.T) {
	_, _, err := runArgs(t, "--table", testTableFile(t), "--expect-version", "2.4.0", "exe")
	if !errors.Is(err, conf.ErrVersionMismatch) {
		t.Fatalf("run() error = %v, want %v", err, conf.ErrVersionMismatch)
	}

	want := "lib version (2.3.3) doesn't match executable version (2.4.0)"
	if !strings.Contains(err.Error(), want) {
		t.Errorf("error = %q, want it to contain %q", err, want)
	}
}

func TestRunUnknownKey(t *testing.T) {
	_, _, err := runArgs(t, "--table", testTableFile(t), "get", "bindr")
	if !errors.Is(err, cmd.ErrUnknownKey) {
		t.Errorf("run() error = %v, want %v", err, cmd.ErrUnknownKey)
	}
}

func TestRunParseError(t *testing.T) {
	_, _, err := runArgs(t, "no-such-command")
	if err == nil {
		t.Error("run() error = nil, want a parse error")
	}
}

func TestRunInitThenResolve(t *testing.T) {
	confPath := configPath(baseConfig)
	t.Cleanup(func() { _ = os.Remove(confPath) })

	table := testTableFile(t)

	if _, _, err := runArgs(t, "--table", table, "init"); err != nil {
		t.Fatalf("init error = %v", err)
	}

	if _, err := os.Stat(confPath); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	if _, _, err := runArgs(t, "init"); !errors.Is(err, cmd.ErrFileExists) {
		t.Errorf("second init error = %v, want %v", err, cmd.ErrFileExists)
	}

	// The table recorded by init is used without the flag.
	got, _, err := runArgs(t, "get", "CC")
	if err != nil {
		t.Fatalf("get error = %v", err)
	}

	if got != "clang\n" {
		t.Errorf("output = %q, want %q", got, "clang\n")
	}
}
