package meson

import "sort"

// Args is an ordered command-line token list.
type Args []string

// Append adds plain tokens.
func (a *Args) Append(tokens ...string) {
	*a = append(*a, tokens...)
}

// AppendFlag adds a single -D<key>=<value> token. key and value are copied
// byte for byte; no quoting or escaping is applied.
func (a *Args) AppendFlag(key, value string) {
	*a = append(*a, "-D"+key+"="+value)
}

// AppendPair adds a flag and its value as two adjacent tokens.
func (a *Args) AppendPair(flag, value string) {
	*a = append(*a, flag, value)
}

// ConfigureArgs assembles the meson arguments that configure buildDir:
//
//	setup --buildtype <profile> [-D<k>=<v>]... [--native-file <path>] <buildDir>
//
// Options are emitted sorted by key, then the native file. It panics if
// profile is not valid.
func ConfigureArgs(buildDir string, cfg Config, profile Profile) []string {
	if !profile.Valid() {
		panic("meson: unknown build profile " + string(profile))
	}
	var args Args
	args.Append("setup")
	args.AppendPair("--buildtype", string(profile))
	for _, k := range sortedKeys(cfg.options) {
		args.AppendFlag(k, cfg.options[k])
	}
	if path, ok := cfg.NativeFile(); ok {
		args.AppendPair("--native-file", path)
	}
	args.Append(buildDir)
	return args
}

// BuildArgs returns the ninja arguments: "install" when requested, else none.
func BuildArgs(cfg Config) []string {
	if cfg.Install() {
		return []string{"install"}
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
