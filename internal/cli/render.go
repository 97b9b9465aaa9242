package cli

import (
	"fmt"
	"io"
	"os"

	"page-assist/internal/render"

	"github.com/spf13/cobra"
)

func newRenderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Render Markdown from a file or stdin to HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				src []byte
				err error
			)
			if len(args) == 1 && args[0] != "-" {
				src, err = os.ReadFile(args[0])
			} else {
				src, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), render.Markdown(string(src)))
			return err
		},
	}
}
