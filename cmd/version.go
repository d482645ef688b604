package cmd

import (
	"runtime"

	"github.com/glcompat/glcompat/internal/logger"
	"github.com/glcompat/glcompat/internal/sys"
	"github.com/spf13/cobra"
)

var (
	// Commit and Date are set by the build
	Commit string
	Date   string
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		logger.Infof("glcompat %s", sys.Version)
		logger.Infof("commit: %s", Commit)
		logger.Infof("built: %s", Date)
		logger.Infof("platform: %s/%s (64-bit: %v)", runtime.GOOS, runtime.GOARCH, sys.Is64Bit())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
