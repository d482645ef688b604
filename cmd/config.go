package cmd

import (
	"fmt"
	"os"

	"github.com/glcompat/glcompat/internal/config"
	"github.com/glcompat/glcompat/internal/logger"
	"github.com/glcompat/glcompat/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage glcompat configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		logger.Infof("Config file: %s", config.GetConfigPath())

		rows := [][]string{
			{"window", "title", cfg.Window.Title},
			{"window", "size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height)},
			{"window", "resizable", fmt.Sprint(cfg.Window.Resizable)},
			{"window", "fullscreen", fmt.Sprint(cfg.Window.Fullscreen)},
			{"window", "vsync", fmt.Sprint(cfg.Window.VSync)},
			{"window", "icons", fmt.Sprint(len(cfg.Window.Icons))},
			{"gl", "version", fmt.Sprintf("%d.%d", cfg.GL.VersionMajor, cfg.GL.VersionMinor)},
			{"gl", "backward_compatible", fmt.Sprint(cfg.GL.BackwardCompatible)},
			{"gl", "debug", fmt.Sprint(cfg.GL.Debug)},
			{"gl", "srgb", fmt.Sprint(cfg.GL.SRGB)},
			{"gl", "fullscreen_borderless", fmt.Sprint(cfg.GL.FullscreenBorderless)},
			{"platform", "x11_class_name", cfg.Platform.X11ClassName},
			{"platform", "wayland_app_id", cfg.Platform.WaylandAppID},
			{"platform", "cocoa_frame_name", cfg.Platform.CocoaFrameName},
			{"input", "keyboard_capacity", fmt.Sprint(cfg.Input.KeyboardCapacity)},
			{"input", "mouse_capacity", fmt.Sprint(cfg.Input.MouseCapacity)},
			{"input", "repeat_events", fmt.Sprint(cfg.Input.RepeatEvents)},
			{"input", "raw_mouse_motion", fmt.Sprint(cfg.Input.RawMouseMotion)},
			{"input", "clip_mouse", fmt.Sprint(cfg.Input.ClipMouse)},
			{"audio", "frequency", fmt.Sprintf("%d Hz", cfg.Audio.Frequency)},
			{"audio", "refresh", fmt.Sprintf("%d/s", cfg.Audio.Refresh)},
			{"audio", "open_device", fmt.Sprint(cfg.Audio.OpenDevice)},
			{"logging", "file_logging", fmt.Sprint(cfg.Logging.FileLogging)},
			{"logging", "file", cfg.Logging.File},
		}
		fmt.Println(ui.Table([]string{"SECTION", "KEY", "VALUE"}, rows))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.GetConfigPath())
	},
}

var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save current configuration to file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Save(); err != nil {
			return err
		}
		logger.Infof("Configuration saved to: %s", config.GetConfigPath())
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration file with defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := config.GetConfigPath()
		if _, err := os.Stat(configPath); err == nil {
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				logger.Infof("Configuration file already exists at: %s", configPath)
				logger.Info("Use --force to overwrite")
				return nil
			}
		}

		if err := config.Save(); err != nil {
			return err
		}

		logger.Infof("Configuration initialized at: %s", configPath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSaveCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().Bool("force", false, "Overwrite existing configuration")

	rootCmd.AddCommand(configCmd)
}
