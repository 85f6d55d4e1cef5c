package internal

import (
	"github.com/goplus/meson/internal/env"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "mesonb",
	Short: "mesonb configures and builds meson projects",
	Long: `mesonb runs "meson setup" (once per build directory) followed by ninja,
for host build scripts that cannot link the Go package directly.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := env.LogLevel()
		if verbose {
			level = log.Ldebug
		}
		log.SetOutputLevel(level)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every command before it runs")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
