package cmd

import (
	"fmt"
	"strings"

	"github.com/glcompat/glcompat/internal/input"
	"github.com/glcompat/glcompat/internal/ui"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys [name]",
	Short: "List legacy key codes and their native key mapping",
	Long: `List every legacy key code with its name and the native GLFW key it maps to.
With a name argument only that key is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codes := input.KeyCodes()
		if len(args) == 1 {
			code := input.KeyIndex(strings.ToUpper(args[0]))
			if code < 0 {
				return fmt.Errorf("unknown key: %s", args[0])
			}
			codes = []int{code}
		}

		rows := make([][]string, 0, len(codes))
		for _, code := range codes {
			native := "-"
			if n := input.ToNative(code); n != input.NativeUnknown {
				native = fmt.Sprint(int(n))
			}
			rows = append(rows, []string{fmt.Sprintf("0x%02X", code), input.KeyName(code), native})
		}

		fmt.Println(ui.Table([]string{"CODE", "NAME", "GLFW"}, rows))
		fmt.Println(ui.SubtleStyle.Render(fmt.Sprintf("Total: %d of %d key names", len(rows), input.KeyCount())))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
