// Package manifest loads mesonb.yaml, the file form of a meson.Config.
//
//	options:
//	  default_library: static
//	native_file: cross/native.ini
//	install: true
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goplus/meson/pkgs/buildsys/meson"
	"gopkg.in/yaml.v3"
)

// DefaultName is the manifest file looked up when none is given.
const DefaultName = "mesonb.yaml"

// File is a parsed manifest.
type File struct {
	Options    map[string]string `yaml:"options,omitempty"`
	NativeFile string            `yaml:"native_file,omitempty"`
	Install    bool              `yaml:"install,omitempty"`

	// dir is the manifest's directory; relative paths resolve against it.
	dir string
}

// Load reads and parses the manifest at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	f.dir = filepath.Dir(abs)
	return f, nil
}

// Parse decodes manifest data. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &f, nil
}

// Config converts the manifest into a meson.Config. Options stay unset when
// the manifest has no options key.
func (f *File) Config() meson.Config {
	cfg := meson.NewConfig().WithInstall(f.Install)
	if f.Options != nil {
		cfg = cfg.WithOptions(f.Options)
	}
	if f.NativeFile != "" {
		cfg = cfg.WithNativeFile(f.resolve(f.NativeFile))
	}
	return cfg
}

func (f *File) resolve(path string) string {
	if f.dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(f.dir, path)
}
