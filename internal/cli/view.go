package cli

import (
	"github.com/spf13/cobra"

	"github.com/inkstone-editor/inkstone/internal/display"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <document.json>",
		Short: "View a rendered document in the terminal",
		Long: `Open a document in a read-only terminal viewer. Arrow keys and
j/k scroll, q or Escape quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
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

			presenter, err := display.NewPresenter(display.DefaultTheme())
			if err != nil {
				return err
			}
			if err := presenter.Init(); err != nil {
				return err
			}
			defer presenter.Shutdown()

			presenter.SetElement(el)
			return presenter.Run()
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
