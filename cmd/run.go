package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/glcompat/glcompat/internal/audio"
	"github.com/glcompat/glcompat/internal/capture"
	"github.com/glcompat/glcompat/internal/config"
	"github.com/glcompat/glcompat/internal/display"
	"github.com/glcompat/glcompat/internal/input"
	"github.com/glcompat/glcompat/internal/logger"
	"github.com/glcompat/glcompat/internal/sys"
	"github.com/glcompat/glcompat/internal/ui"
	"github.com/spf13/cobra"
)

var (
	runFPS    int
	runRecord string
	runTone   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the display and log reconciled input events",
	Long: `Open a window with the configured settings and log every keyboard event as
the legacy layer delivers it. Mouse events are logged at debug level.

Controls:
  Esc   quit
  F11   toggle fullscreen
  F1    toggle mouse grab`,
	RunE: runDisplay,
}

func init() {
	runCmd.Flags().IntVar(&runFPS, "fps", 60, "Frame rate cap, 0 for unlimited")
	runCmd.Flags().StringVar(&runRecord, "record", "", "Record raw native events to this file")
	runCmd.Flags().BoolVar(&runTone, "tone", false, "Play a short tone on every key press")

	rootCmd.AddCommand(runCmd)
}

func runDisplay(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	d, err := display.New(*cfg, sys.New(nil))
	if err != nil {
		return err
	}
	if err := d.Create(); err != nil {
		return fmt.Errorf("failed to create display: %w", err)
	}
	defer func() {
		if err := d.Destroy(true); err != nil {
			logger.Warnf("Failed to destroy display: %v", err)
		}
	}()
	d.LogGLInfo()

	var rec *capture.Writer
	if runRecord != "" {
		w, closeRec, err := startRecording(runRecord, d)
		if err != nil {
			return err
		}
		defer closeRec()

		rec = w
		d.Pump().SetTap(func(ev input.RawEvent) {
			if err := rec.Write(ev); err != nil {
				logger.Warnf("Dropping recorded event: %v", err)
			}
		})
	}

	return loop(d, rec, openTone(cfg))
}

func startRecording(path string, d *display.Display) (*capture.Writer, func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create capture file: %w", err)
	}
	rec, err := capture.NewWriter(f, capture.NewHeader(d.Width(), d.Height()))
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return rec, func() {
		logger.Infof("Recorded %d events over %d frames to %s", rec.Count(), rec.Frames(), path)
		if err := rec.Close(); err != nil {
			logger.Warnf("Failed to finish capture: %v", err)
		}
		if err := f.Close(); err != nil {
			logger.Warnf("Failed to close capture file: %v", err)
		}
	}, nil
}

// openTone returns an open audio device when --tone is set, or nil
func openTone(cfg *config.Config) *audio.Device {
	if !runTone {
		return nil
	}
	dev := audio.NewDevice()
	err := dev.Create(audio.Options{
		Frequency:    cfg.Audio.Frequency,
		Refresh:      cfg.Audio.Refresh,
		Synchronized: cfg.Audio.Synchronized,
		OpenDevice:   cfg.Audio.OpenDevice,
	})
	if err != nil {
		logger.Warnf("Audio disabled: %v", err)
		return nil
	}
	return dev
}

// toneFrequency spreads the legacy key codes over roughly three octaves
func toneFrequency(key int) float64 {
	return 220 + float64(key%64)*10
}

func loop(d *display.Display, rec *capture.Writer, tone *audio.Device) error {
	if tone != nil {
		defer tone.Destroy()
	}

	logger.Info(ui.FormatControl("Esc", "Quit"))
	logger.Info(ui.FormatControl("F11", "Toggle fullscreen"))
	logger.Info(ui.FormatControl("F1", "Toggle mouse grab"))

	kb, mouse := d.Keyboard(), d.Mouse()
	for !d.IsCloseRequested() {
		if d.IsActive() {
			display.ClearColor(0.1, 0.12, 0.16)
		} else {
			display.ClearColor(0.05, 0.05, 0.05)
		}
		d.Update(true)
		if rec != nil {
			if err := rec.EndFrame(); err != nil {
				logger.Warnf("Capture frame lost: %v", err)
			}
		}

		for kb.Next() {
			ev := kb.Event()
			logger.Info(ui.FormatKeyEvent(ev))
			if ev.State != input.KeyPress {
				continue
			}

			switch ev.Key {
			case input.KeyEscape:
				return nil
			case input.KeyF11:
				if err := d.SetFullscreen(!d.IsFullscreen()); err != nil {
					logger.Warnf("Fullscreen toggle failed: %v", err)
				}
			case input.KeyF1:
				mouse.SetGrabbed(!mouse.IsGrabbed())
				logger.Infof("Mouse grabbed: %v", mouse.IsGrabbed())
			}

			if tone != nil && ev.Key != input.KeyNone {
				t := audio.NewTone(tone.SampleRate(), toneFrequency(ev.Key), 80*time.Millisecond)
				if err := tone.Play(t); err != nil {
					logger.Debugf("Tone skipped: %v", err)
				}
			}
		}

		for mouse.Next() {
			logger.Debug(ui.FormatMouseEvent(mouse))
		}
		if d.WasResized() {
			logger.Infof("Resized to %dx%d (framebuffer %dx%d)", d.Width(), d.Height(), d.FramebufferWidth(), d.FramebufferHeight())
		}

		d.Sync(runFPS)
	}
	return nil
}
