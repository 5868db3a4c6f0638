// Command roughgen renders a TOML scene description of sketchy shapes to
// PNG, PDF, or SVG.
package main

import (
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func run() error {
	var verbose bool
	logger := newLogger(os.Stderr, charmlog.InfoLevel)

	root := &cobra.Command{
		Use:          "roughgen",
		Short:        "roughgen renders hand-drawn looking vector scenes",
		Long:         `roughgen reads a TOML scene file describing shapes and style options and renders it with a sketchy, hand-drawn look. The output format follows the output file extension (.png, .pdf, or .svg).`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(charmlog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd(logger))

	return root.Execute()
}

func newRenderCmd(logger *charmlog.Logger) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <scene.toml>",
		Short: "Render a scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderScene(logger, args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "out.png", "output file (.png, .pdf, or .svg)")
	return cmd
}
