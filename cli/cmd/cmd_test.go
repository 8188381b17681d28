package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ardnew/rbconf/conf"
)

// testTable is a small table in the shape of a recorded one.
func testTable() *conf.Table {
	return conf.TableOf(
		"MAJOR", "2",
		"MINOR", "3",
		"TEENY", "3",
		"prefix", "/opt/ruby",
		"exec_prefix", "$(prefix)",
		"bindir", "$(exec_prefix)/bin",
		"libdir", "$(exec_prefix)/lib",
		"ruby_install_name", "ruby",
		"EXEEXT", "",
		"ruby_version", "2.3.0",
		"arch", "universal-darwin17",
		"LIBPATHENV", "DYLD_LIBRARY_PATH",
		"PATH_SEPARATOR", ":",
		"CFLAGS", "-g $(optflags)",
		"optflags", "-O2",
	)
}

// testContext returns a context holding a configuration built from
// [testTable] and the buffer commands write to.
func testContext(t *testing.T) (context.Context, *bytes.Buffer, *conf.Config) {
	t.Helper()

	c, err := conf.FromTable(t.Context(), testTable())
	if err != nil {
		t.Fatalf("FromTable() error = %v", err)
	}

	var out bytes.Buffer

	return WithOutput(WithConfig(t.Context(), c), &out), &out, c
}

func TestConfigFromMissing(t *testing.T) {
	_, err := configFrom(t.Context())
	if !errors.Is(err, ErrNoConfig) {
		t.Errorf("configFrom() error = %v, want %v", err, ErrNoConfig)
	}

	err = (&Get{Keys: []string{"CC"}}).Run(t.Context())
	if !errors.Is(err, ErrNoConfig) {
		t.Errorf("Get.Run() error = %v, want %v", err, ErrNoConfig)
	}
}

func TestOutputFromDefault(t *testing.T) {
	if w := outputFrom(t.Context()); w != os.Stdout {
		t.Errorf("outputFrom() = %v, want os.Stdout", w)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestWithTableDefault(t *testing.T) {
	top := t.TempDir()
	// An SDKROOT set to empty keeps construction off the host toolchain.
	t.Setenv("SDKROOT", "")

	ctx := WithTable(t.Context(), Table{
		LibDir: top + "/lib/ruby/2.3.0/universal-darwin17",
	})

	first, err := configFrom(ctx)
	if err != nil {
		t.Fatalf("configFrom() error = %v", err)
	}

	second, err := configFrom(ctx)
	if err != nil {
		t.Fatalf("configFrom() error = %v", err)
	}

	if first != second {
		t.Error("configuration built more than once")
	}

	if got, _ := first.Get("bindir"); got != top+"/bin" {
		t.Errorf("bindir = %q, want %q", got, top+"/bin")
	}
}

func TestWithTableVersionMismatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "table.yaml", "MAJOR: 2\nMINOR: 3\nTEENY: 3\n")

	ctx := WithTable(t.Context(), Table{
		Files:         []string{path},
		ExpectVersion: "2.4.1",
	})

	_, err := configFrom(ctx)
	if !errors.Is(err, conf.ErrVersionMismatch) {
		t.Fatalf("configFrom() error = %v, want %v", err, conf.ErrVersionMismatch)
	}

	ctx = WithTable(t.Context(), Table{
		Files:         []string{path},
		ExpectVersion: "2.3.8",
	})

	if _, err := configFrom(ctx); err != nil {
		t.Errorf("configFrom() error = %v", err)
	}
}

func TestTableLoadLayers(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.yaml", "prefix: /usr\nbindir: $(prefix)/bin\nCC: clang\n")
	over := writeFile(t, dir, "over.jsonc", "{\n  // local toolchain\n  \"CC\": \"gcc\",\n  \"LD\": \"ld\"\n}\n")

	tab, err := Table{Files: []string{base, over}}.load(t.Context())
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	wantKeys := []string{"prefix", "bindir", "CC", "LD"}
	if got := tab.Keys(); !slices.Equal(got, wantKeys) {
		t.Errorf("Keys() = %v, want %v", got, wantKeys)
	}

	if v, _ := tab.Get("CC"); v != "gcc" {
		t.Errorf("CC = %q, want %q", v, "gcc")
	}
}

func TestTableLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Table{Files: []string{filepath.Join(dir, "missing.yaml")}}.load(t.Context())
	if !errors.Is(err, ErrLoadTable) {
		t.Errorf("load(missing) error = %v, want %v", err, ErrLoadTable)
	}

	if !errors.Is(err, conf.ErrReadInput) {
		t.Errorf("load(missing) error = %v, want cause %v", err, conf.ErrReadInput)
	}

	bad := writeFile(t, dir, "bad.yaml", "key: [unterminated\n")

	_, err = Table{Files: []string{bad}}.load(t.Context())
	if !errors.Is(err, ErrLoadTable) {
		t.Errorf("load(bad) error = %v, want %v", err, ErrLoadTable)
	}
}

func TestUniqueSources(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", "A: 1\n")
	b := writeFile(t, dir, "b.yaml", "B: 2\n")

	link := filepath.Join(dir, "link.yaml")
	if err := os.Symlink(a, link); err != nil {
		t.Skipf("symlink: %v", err)
	}

	missing := filepath.Join(dir, "missing.yaml")

	paths, stdin := uniqueSources([]string{a, "-", link, b, a, missing})

	want := []string{a, b, missing}
	if !slices.Equal(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}

	if !stdin {
		t.Error("stdin = false, want true")
	}

	paths, stdin = uniqueSources(nil)
	if len(paths) != 0 || stdin {
		t.Errorf("uniqueSources(nil) = %v, %v", paths, stdin)
	}
}
