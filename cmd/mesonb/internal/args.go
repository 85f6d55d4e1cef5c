package internal

import (
	"fmt"
	"io"

	"github.com/goplus/meson/internal/env"
	"github.com/goplus/meson/pkgs/buildsys/meson"
	"github.com/spf13/cobra"
)

var argsFlags configFlags

var argsCmd = &cobra.Command{
	Use:   "args <project_dir> <build_dir>",
	Short: "Print the commands build would run",
	Args:  cobra.ExactArgs(2),
	RunE:  runArgs,
}

func init() {
	argsFlags.register(argsCmd.Flags())
	rootCmd.AddCommand(argsCmd)
}

func runArgs(cmd *cobra.Command, args []string) error {
	projectDir, buildDir, err := absDirs(args[0], args[1])
	if err != nil {
		return err
	}
	cfg, profile, err := argsFlags.resolve(cmd.Flags(), projectDir)
	if err != nil {
		return err
	}
	printPlan(cmd.OutOrStdout(), projectDir, buildDir, cfg, profile)
	return nil
}

func printPlan(w io.Writer, projectDir, buildDir string, cfg meson.Config, profile meson.Profile) {
	if meson.IsConfigured(buildDir) {
		fmt.Fprintf(w, "# %s is configured, setup skipped\n", buildDir)
	} else {
		setup := &meson.Command{Name: env.MesonBin(), Args: meson.ConfigureArgs(buildDir, cfg, profile)}
		fmt.Fprintf(w, "(cd %s && %s)\n", projectDir, setup)
	}
	build := &meson.Command{Name: env.NinjaBin(), Args: meson.BuildArgs(cfg)}
	fmt.Fprintf(w, "(cd %s && %s)\n", buildDir, build)
}
