package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkstone-editor/inkstone/internal/display"
)

// formatFlag selects the render output format.
var formatFlag string

// renderCmd represents the render command.
var renderCmd = newRenderCmd()

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <document.json>",
		Short: "Render a document to standard output",
		Long: `Render a JSON document through the plugin stack and print the
resulting element tree, or its plain text, to standard output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync() //nolint:errcheck

			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			editor, closePlugins, err := newEditor(logger)
			if err != nil {
				return err
			}
			defer closePlugins()

			el, err := editor.Render(doc, nil, nil)
			if err != nil {
				return err
			}

			switch formatFlag {
			case "tree":
				return display.WriteTree(cmd.OutOrStdout(), el)
			case "text":
				return display.WriteText(cmd.OutOrStdout(), el, display.DefaultTheme())
			default:
				return fmt.Errorf("unknown format %q (want tree or text)", formatFlag)
			}
		},
	}

	cmd.Flags().StringVarP(&formatFlag, formatFlagName, "f", "tree",
		"output format: tree or text")

	return cmd
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
