package internal

import (
	"fmt"
	"path/filepath"

	"github.com/goplus/meson/pkgs/buildsys/meson"
	"github.com/spf13/cobra"
)

var buildFlags configFlags

var buildCmd = &cobra.Command{
	Use:   "build <project_dir> <build_dir>",
	Short: "Configure (if needed) and build a meson project",
	Long: `Build runs "meson setup" for project_dir into build_dir unless build_dir
already contains build.ninja, then runs ninja (or ninja install) in build_dir.
Remove build_dir to apply changed options. Any failing command aborts mesonb.`,
	Args: cobra.ExactArgs(2),
	RunE: runBuild,
}

func init() {
	buildFlags.register(buildCmd.Flags())
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	projectDir, buildDir, err := absDirs(args[0], args[1])
	if err != nil {
		return err
	}
	cfg, profile, err := buildFlags.resolve(cmd.Flags(), projectDir)
	if err != nil {
		return err
	}
	meson.New().Build(projectDir, buildDir, cfg, profile)
	return nil
}

// absDirs resolves both directories up front; meson and ninja run from
// different working directories.
func absDirs(projectDir, buildDir string) (string, string, error) {
	p, err := filepath.Abs(projectDir)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve project dir: %w", err)
	}
	b, err := filepath.Abs(buildDir)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve build dir: %w", err)
	}
	return p, b, nil
}
