package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goplus/meson/internal/env"
	"github.com/goplus/meson/internal/manifest"
	"github.com/goplus/meson/pkgs/buildsys/meson"
	"github.com/spf13/pflag"
)

// configFlags are the flags shared by build and args.
type configFlags struct {
	options    []string
	nativeFile string
	install    bool
	profile    string
	manifest   string
}

func (c *configFlags) register(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&c.options, "option", "D", nil, "Set a project option as key=value (repeatable)")
	fs.StringVar(&c.nativeFile, "native-file", "", "Native file passed to meson setup")
	fs.BoolVar(&c.install, "install", false, "Run ninja install instead of ninja")
	fs.StringVar(&c.profile, "profile", "", "Build profile, release or debug (default $PROFILE, then debug)")
	fs.StringVarP(&c.manifest, "config", "c", "", "Manifest file (default <project_dir>/"+manifest.DefaultName+" if present)")
}

// resolve builds the meson configuration from the manifest and the flags.
// Flags win over the manifest; -D options are layered over manifest options.
func (c *configFlags) resolve(fs *pflag.FlagSet, projectDir string) (meson.Config, meson.Profile, error) {
	cfg := meson.NewConfig()

	path := c.manifest
	if path == "" {
		if p := filepath.Join(projectDir, manifest.DefaultName); fileExists(p) {
			path = p
		}
	}
	if path != "" {
		f, err := manifest.Load(path)
		if err != nil {
			return cfg, "", fmt.Errorf("failed to load manifest: %w", err)
		}
		cfg = f.Config()
	}

	if len(c.options) > 0 {
		opts, _ := cfg.Options()
		if opts == nil {
			opts = make(map[string]string, len(c.options))
		}
		for _, kv := range c.options {
			k, v, err := parseOption(kv)
			if err != nil {
				return cfg, "", err
			}
			opts[k] = v
		}
		cfg = cfg.WithOptions(opts)
	}
	if c.nativeFile != "" {
		abs, err := filepath.Abs(c.nativeFile)
		if err != nil {
			return cfg, "", err
		}
		cfg = cfg.WithNativeFile(abs)
	}
	if fs.Changed("install") {
		cfg = cfg.WithInstall(c.install)
	}

	name := c.profile
	if name == "" {
		name = env.Profile()
	}
	if name == "" {
		name = string(meson.Debug)
	}
	profile, err := meson.ParseProfile(name)
	if err != nil {
		return cfg, "", err
	}
	return cfg, profile, nil
}

// parseOption splits "key=value". The value may itself contain '='.
func parseOption(kv string) (key, value string, err error) {
	key, value, ok := strings.Cut(kv, "=")
	if !ok || key == "" {
		return "", "", fmt.Errorf("invalid option %q, want key=value", kv)
	}
	return key, value, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
