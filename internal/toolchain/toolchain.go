// Package toolchain probes the meson and ninja executables.
package toolchain

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
	"golang.org/x/sys/execabs"
)

// Minimum versions. meson 0.49 introduced --native-file; meson itself
// refuses ninja older than 1.8.2.
const (
	MinMeson = "v0.49.0"
	MinNinja = "v1.8.2"
)

// Tool is a probed executable.
type Tool struct {
	Name    string
	Path    string
	Version string // canonical semver, e.g. v1.4.0
}

// Version runs "<bin> --version" and returns the canonical semver it reports.
func Version(bin string) (string, error) {
	out, err := execabs.Command(bin, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("%s --version: %w", bin, err)
	}
	v, err := parseVersion(out)
	if err != nil {
		return "", fmt.Errorf("%s --version: %w", bin, err)
	}
	return v, nil
}

// Probe locates bin and reads its version.
func Probe(bin string) (*Tool, error) {
	path, err := execabs.LookPath(bin)
	if err != nil {
		return nil, err
	}
	v, err := Version(path)
	if err != nil {
		return nil, err
	}
	return &Tool{Name: bin, Path: path, Version: v}, nil
}

// Check probes bin and fails if it is missing or older than min.
func Check(bin, min string) (*Tool, error) {
	tool, err := Probe(bin)
	if err != nil {
		return nil, err
	}
	if semver.Compare(tool.Version, min) < 0 {
		return tool, fmt.Errorf("%s %s is too old, need %s or later", bin, tool.Version, min)
	}
	return tool, nil
}

// parseVersion extracts the first line of a --version output as semver.
// Both "1.4.0" and "1.11.1.git.kitware.jobserver-1" forms are accepted.
func parseVersion(out []byte) (string, error) {
	line, _, _ := bytes.Cut(bytes.TrimSpace(out), []byte("\n"))
	fields := strings.Fields(string(line))
	if len(fields) == 0 {
		return "", fmt.Errorf("empty version output")
	}
	raw := fields[len(fields)-1]

	// Keep at most major.minor.patch; anything after is build noise.
	parts := strings.SplitN(raw, ".", 4)
	if len(parts) > 3 {
		parts = parts[:3]
	}
	if i := strings.IndexFunc(parts[len(parts)-1], func(r rune) bool { return r < '0' || r > '9' }); i > 0 {
		parts[len(parts)-1] = parts[len(parts)-1][:i]
	}
	v := semver.Canonical("v" + strings.Join(parts, "."))
	if v == "" {
		return "", fmt.Errorf("unrecognized version %q", raw)
	}
	return v, nil
}
