package manifest

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	f, err := Parse([]byte(`
options:
  default_library: static
  b_lto: true
  warning_level: 3
native_file: native.ini
install: true
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	wantOpts := map[string]string{
		"default_library": "static",
		"b_lto":           "true",
		"warning_level":   "3",
	}
	if !reflect.DeepEqual(f.Options, wantOpts) {
		t.Errorf("Options = %v, want %v", f.Options, wantOpts)
	}
	if f.NativeFile != "native.ini" {
		t.Errorf("NativeFile = %q, want %q", f.NativeFile, "native.ini")
	}
	if !f.Install {
		t.Error("Install = false, want true")
	}
}

func TestParseEmpty(t *testing.T) {
	f, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	cfg := f.Config()
	if _, ok := cfg.Options(); ok {
		t.Error("empty manifest set options")
	}
	if cfg.Install() {
		t.Error("empty manifest set install")
	}
}

func TestParseUnknownKey(t *testing.T) {
	if _, err := Parse([]byte("option:\n  a: b\n")); err == nil {
		t.Fatal("Parse() accepted an unknown key")
	}
}

func TestLoadResolvesNativeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultName)
	data := "options: {}\nnative_file: cross/native.ini\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg := f.Config()

	native, ok := cfg.NativeFile()
	if !ok {
		t.Fatal("NativeFile not set")
	}
	if want := filepath.Join(dir, "cross", "native.ini"); native != want {
		t.Errorf("NativeFile = %q, want %q", native, want)
	}
	opts, ok := cfg.Options()
	if !ok || len(opts) != 0 {
		t.Errorf("Options = %v, %v, want empty and set", opts, ok)
	}
}

func TestLoadKeepsAbsoluteNativeFile(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "native.ini")
	path := filepath.Join(dir, DefaultName)
	if err := os.WriteFile(path, []byte("native_file: "+abs+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, _ := f.Config().NativeFile(); got != abs {
		t.Errorf("NativeFile = %q, want %q", got, abs)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), DefaultName)); !os.IsNotExist(err) {
		t.Errorf("Load() error = %v, want not-exist", err)
	}
}
