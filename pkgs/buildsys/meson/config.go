package meson

// Config describes one meson build: project options, an optional native
// file and whether ninja should also install the outputs.
//
// Config is a value. Each With* method returns an updated copy and leaves
// the receiver untouched, so a Config can be handed around freely.
type Config struct {
	options    map[string]string
	nativeFile string
	install    bool
}

// NewConfig returns an empty Config: no options, no native file, no install.
func NewConfig() Config {
	return Config{}
}

// WithOptions replaces the option set wholesale. Every entry becomes a
// -D<key>=<value> flag at configure time. The map is copied; later changes to
// opts do not leak into the Config. A nil opts still marks options as set,
// just empty.
func (c Config) WithOptions(opts map[string]string) Config {
	copied := make(map[string]string, len(opts))
	for k, v := range opts {
		copied[k] = v
	}
	c.options = copied
	return c
}

// WithNativeFile sets the native file passed to meson with --native-file.
func (c Config) WithNativeFile(path string) Config {
	c.nativeFile = path
	return c
}

// WithInstall selects whether ninja also runs its install target.
func (c Config) WithInstall(install bool) Config {
	c.install = install
	return c
}

// Options returns a copy of the option set and whether one was set at all.
func (c Config) Options() (map[string]string, bool) {
	if c.options == nil {
		return nil, false
	}
	copied := make(map[string]string, len(c.options))
	for k, v := range c.options {
		copied[k] = v
	}
	return copied, true
}

// NativeFile returns the native file path, if any.
func (c Config) NativeFile() (string, bool) {
	return c.nativeFile, c.nativeFile != ""
}

// Install reports whether ninja install is requested.
func (c Config) Install() bool {
	return c.install
}
