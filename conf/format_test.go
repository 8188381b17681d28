package conf

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func smallConfig(t *testing.T) *Config {
	t.Helper()

	c, err := FromTable(t.Context(), TableOf(
		"prefix", "/usr",
		"bindir", "$(prefix)/bin",
		"flags", " -g -O2",
	))
	if err != nil {
		t.Fatal(err)
	}

	return c
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"yaml", FormatYAML, false},
		{"YML", FormatYAML, false},
		{"json", FormatJSON, false},
		{"jsonc", FormatJSONC, false},
		{"mk", FormatMake, false},
		{"Makefile", FormatMake, false},
		{"toml", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v", tt.input, err)
			}

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("error %v is not ErrInvalidFormat", err)
				}

				return
			}

			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestConfig_FormatJSON(t *testing.T) {
	c := smallConfig(t)

	var buf bytes.Buffer
	if err := c.FormatJSON(t.Context(), &buf, true); err != nil {
		t.Fatal(err)
	}

	want := "{\n  \"prefix\": \"/usr\",\n  \"bindir\": \"$(prefix)/bin\",\n  \"flags\": \" -g -O2\"\n}\n"
	if buf.String() != want {
		t.Errorf("FormatJSON raw =\n%s\nwant\n%s", buf.String(), want)
	}

	buf.Reset()

	if err := c.Write(t.Context(), &buf, Output{Format: FormatJSON}); err != nil {
		t.Fatal(err)
	}

	want = `{"prefix":"/usr","bindir":"/usr/bin","flags":" -g -O2"}` + "\n"
	if buf.String() != want {
		t.Errorf("compact JSON = %q, want %q", buf.String(), want)
	}
}

func TestWriteTable_EmptyJSON(t *testing.T) {
	var buf bytes.Buffer

	if err := WriteTable(t.Context(), &buf, NewTable(0), Output{Format: FormatJSON, Indent: 2}); err != nil {
		t.Fatal(err)
	}

	if buf.String() != "{}\n" {
		t.Errorf("empty table = %q", buf.String())
	}
}

func TestConfig_FormatMake(t *testing.T) {
	c, err := FromTable(t.Context(), TableOf(
		"A", "1",
		"B", "x\ny",
		"C", "#c",
		"D", "$(A)",
	))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := c.FormatMake(t.Context(), &buf, false); err != nil {
		t.Fatal(err)
	}

	want := "A = 1\nB = x\\\n\ty\nC = \\#c\nD = 1\n"
	if buf.String() != want {
		t.Errorf("FormatMake = %q, want %q", buf.String(), want)
	}
}

func TestConfig_FormatYAML_RoundTrip(t *testing.T) {
	c := smallConfig(t)

	var buf bytes.Buffer
	if err := c.FormatYAML(t.Context(), &buf, true); err != nil {
		t.Fatal(err)
	}

	got, err := Load(t.Context(), &buf, FormatYAML)
	if err != nil {
		t.Fatalf("Load() error = %v\n%s", err, buf.String())
	}

	assertTablesEqual(t, c.RawTable(), got)
}

func TestConfig_FormatJSON_RoundTripRecorded(t *testing.T) {
	c, err := New(t.Context(), WithEnv(map[string]string{"SDKROOT": ""}))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := c.FormatJSON(t.Context(), &buf, true); err != nil {
		t.Fatal(err)
	}

	got, err := Load(t.Context(), &buf, FormatJSON)
	if err != nil {
		t.Fatal(err)
	}

	assertTablesEqual(t, c.RawTable(), got)

	reloaded, err := FromTable(t.Context(), got)
	if err != nil {
		t.Fatal(err)
	}

	if reloaded.Digest() != c.Digest() {
		t.Error("digest changed after JSON round trip")
	}
}

func TestWriteTable_InvalidFormat(t *testing.T) {
	err := WriteTable(t.Context(), &bytes.Buffer{}, NewTable(0), Output{Format: Format(42)})
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("error = %v", err)
	}
}

func TestLoad_YAMLScalars(t *testing.T) {
	doc := "MAJOR: 2\nempty:\nflag: true\nname: ruby\n"

	got, err := Load(t.Context(), strings.NewReader(doc), FormatYAML)
	if err != nil {
		t.Fatal(err)
	}

	assertTablesEqual(t, TableOf("MAJOR", "2", "empty", "", "flag", "true", "name", "ruby"), got)
}

func TestLoad_JSONC(t *testing.T) {
	doc := `{
		// recorded on the build host
		"prefix": "/usr", /* inline */
		"bindir": "$(prefix)/bin",
		"TEENY": 0,
		"none": null,
	}`

	got, err := Load(t.Context(), strings.NewReader(doc), FormatJSONC)
	if err != nil {
		t.Fatal(err)
	}

	assertTablesEqual(t, TableOf("prefix", "/usr", "bindir", "$(prefix)/bin", "TEENY", "0", "none", ""), got)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		format Format
		want   error
	}{
		{"nested yaml", "a:\n  b: c\n", FormatYAML, ErrDecode},
		{"sequence yaml", "a: [1, 2]\n", FormatYAML, ErrDecode},
		{"nested json", `{"a": {"b": "c"}}`, FormatJSON, ErrDecode},
		{"array json", `["a"]`, FormatJSON, ErrDecode},
		{"truncated json", `{"a": "b"`, FormatJSON, ErrDecode},
		{"make input", "A = 1\n", FormatMake, ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(t.Context(), strings.NewReader(tt.doc), tt.format)
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yml := filepath.Join(dir, "table.yml")
	if err := os.WriteFile(yml, []byte("b: 1\na: $(b)\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(t.Context(), yml)
	if err != nil {
		t.Fatal(err)
	}

	assertTablesEqual(t, TableOf("b", "1", "a", "$(b)"), got)

	if _, err := LoadFile(t.Context(), filepath.Join(dir, "missing.json")); !errors.Is(err, ErrReadInput) {
		t.Errorf("missing file error = %v", err)
	}

	if _, err := LoadFile(t.Context(), filepath.Join(dir, "table")); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("no extension error = %v", err)
	}
}

func TestConfig_Query(t *testing.T) {
	c, top := testConfig(t)

	tests := []struct {
		source string
		want   any
	}{
		{`get("LIBRUBY_SO")`, "libruby.2.3.0.dylib"},
		{`CONFIG.MAJOR + "." + CONFIG.MINOR`, "2.3"},
		{`RAW.bindir`, "$(exec_prefix)/bin"},
		{`expand("$(arch)-$(NOPE)")`, "universal-darwin17-$(NOPE)"},
		{`has("NOPE")`, false},
		{`"i386" in archs`, true},
		{`path(get("bindir"), "irb")`, top + "/bin/irb"},
		{`exe`, top + "/bin/ruby"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			got, err := c.Query(t.Context(), tt.source)
			if err != nil {
				t.Fatalf("Query() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Query() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestConfig_Query_Errors(t *testing.T) {
	c := smallConfig(t)

	if _, err := c.Query(t.Context(), `get(`); !errors.Is(err, ErrQueryCompile) {
		t.Errorf("compile error = %v", err)
	}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := c.Query(ctx, `get("prefix")`); !errors.Is(err, ErrQueryEvaluate) {
		t.Errorf("canceled query error = %v", err)
	}
}

func assertTablesEqual(t *testing.T, want, got *Table) {
	t.Helper()

	wk, gk := want.Keys(), got.Keys()
	if len(wk) != len(gk) {
		t.Fatalf("got %d keys %v, want %d keys %v", len(gk), gk, len(wk), wk)
	}

	for i, k := range wk {
		if gk[i] != k {
			t.Errorf("key %d = %q, want %q", i, gk[i], k)

			continue
		}

		wv, _ := want.Get(k)
		if gv, _ := got.Get(k); gv != wv {
			t.Errorf("%s = %q, want %q", k, gv, wv)
		}
	}
}
