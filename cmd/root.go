package cmd

import (
	"fmt"

	"github.com/glcompat/glcompat/internal/config"
	"github.com/glcompat/glcompat/internal/logger"
	"github.com/glcompat/glcompat/internal/sys"
	"github.com/spf13/cobra"
)

var (
	configFile string

	rootCmd = &cobra.Command{
		Use:   "glcompat",
		Short: "glcompat - legacy display and input on GLFW",
		Long: `glcompat opens a GLFW window with an OpenGL context and exposes it through a
legacy display, keyboard and mouse model: buffered key events that carry their
typed character, bottom-left mouse coordinates and per-frame polling.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = sys.Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/glcompat/glcompat.toml)")
}

// initConfig loads the configuration and applies its logging section
func initConfig(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		config.SetConfigPath(configFile)
	}
	if err := config.Init(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg := config.Get()
	logger.SetLevel(cfg.Logging.LogLevel)
	if cfg.Logging.FileLogging {
		logger.EnableFile(logger.FileOptions{
			Path:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
		})
		logger.Debugf("Logging to %s", cfg.Logging.File)
	}
	return nil
}
