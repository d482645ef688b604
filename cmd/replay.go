package cmd

import (
	"fmt"
	"os"

	"github.com/glcompat/glcompat/internal/capture"
	"github.com/glcompat/glcompat/internal/config"
	"github.com/glcompat/glcompat/internal/input"
	"github.com/glcompat/glcompat/internal/logger"
	"github.com/glcompat/glcompat/internal/ui"
	"github.com/glcompat/glcompat/internal/window"
	"github.com/spf13/cobra"
)

var (
	replayRepeat bool
	replayMouse  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Replay a recorded capture without opening a window",
	Long: `Feed the raw native events of a capture recorded with 'glcompat run --record'
through the input layer and print the legacy events it produces, frame by frame.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&replayRepeat, "repeat", false, "Deliver key repeat events")
	replayCmd.Flags().BoolVar(&replayMouse, "mouse", false, "Print mouse events as well")

	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := capture.NewReader(f)
	if err != nil {
		return err
	}
	defer r.Close()

	h := r.Header()
	logger.Infof("Capture recorded %s in a %dx%d window", h.Recorded.Local().Format("2006-01-02 15:04:05"), h.Width, h.Height)

	cfg := config.Get()
	kb, err := input.NewKeyboard(cfg.Input.KeyboardCapacity, replayRepeat)
	if err != nil {
		return err
	}

	surface := input.NewHeadlessSurface(h.Width, h.Height)
	mouse, err := input.NewMouse(cfg.Input.MouseCapacity, surface, nil)
	if err != nil {
		return err
	}

	state := window.NewState(h.Width, h.Height)
	pump := input.NewPump(kb, mouse, state)
	pump.SetTap(func(ev input.RawEvent) {
		if ev.Kind == input.EventSize {
			surface.Resize(ev.W, ev.H)
		}
	})

	frame := 0
	events, frames, err := capture.Replay(r, pump, func() {
		frame++
		for kb.Next() {
			fmt.Printf("%6d  %s\n", frame, ui.FormatKeyEvent(kb.Event()))
		}
		for mouse.Next() {
			if replayMouse {
				fmt.Printf("%6d  %s\n", frame, ui.FormatMouseEvent(mouse))
			}
		}
		if state.Resized() {
			w, h := state.Size()
			fmt.Printf("%6d  %s\n", frame, ui.InfoStyle.Render(fmt.Sprintf("resize %dx%d", w, h)))
		}
	})
	if err != nil {
		return fmt.Errorf("replay stopped after %d events: %w", events, err)
	}

	fmt.Println(ui.CreateSeparator(50, ""))
	fmt.Println(ui.SubtleStyle.Render(fmt.Sprintf("%d events in %d frames, %d key and %d mouse events dropped",
		events, frames, kb.Dropped(), mouse.Dropped())))
	return nil
}
