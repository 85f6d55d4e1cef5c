package toolchain

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		out     string
		want    string
		wantErr bool
	}{
		{"1.4.0\n", "v1.4.0", false},
		{"0.49.2", "v0.49.2", false},
		{"1.11.1.git.kitware.jobserver-1\n", "v1.11.1", false},
		{"1.12.1\nextra line\n", "v1.12.1", false},
		{"ninja version 1.10\n", "v1.10.0", false},
		{"1.3.0rc2", "v1.3.0", false},
		{"", "", true},
		{"unknown", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.out, func(t *testing.T) {
			got, err := parseVersion([]byte(tt.out))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseVersion(%q) error = %v, wantErr %v", tt.out, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseVersion(%q) = %q, want %q", tt.out, got, tt.want)
			}
		})
	}
}

// fakeTool writes an executable script printing version.
func fakeTool(t *testing.T, version string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs /bin/sh")
	}
	path := filepath.Join(t.TempDir(), "tool")
	script := "#!/bin/sh\necho " + version + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheck(t *testing.T) {
	tool, err := Check(fakeTool(t, "1.4.0"), MinMeson)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if tool.Version != "v1.4.0" {
		t.Errorf("Version = %q, want %q", tool.Version, "v1.4.0")
	}
}

func TestCheckTooOld(t *testing.T) {
	tool, err := Check(fakeTool(t, "0.47.1"), MinMeson)
	if err == nil {
		t.Fatal("Check() accepted meson 0.47.1")
	}
	if tool == nil || tool.Version != "v0.47.1" {
		t.Errorf("Check() tool = %+v, want the probed version", tool)
	}
}

func TestCheckMissing(t *testing.T) {
	if _, err := Check(filepath.Join(t.TempDir(), "nope"), MinNinja); err == nil {
		t.Fatal("Check() accepted a missing binary")
	}
}

func TestVersionRealNinja(t *testing.T) {
	if _, err := exec.LookPath("ninja"); err != nil {
		t.Skip("ninja not found in PATH")
	}
	v, err := Version("ninja")
	if err != nil {
		t.Fatalf("Version(ninja) error = %v", err)
	}
	if v == "" {
		t.Error("Version(ninja) is empty")
	}
}
