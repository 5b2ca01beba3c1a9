// Package cli provides the inkstone command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inkstone-editor/inkstone/internal/document"
	"github.com/inkstone-editor/inkstone/internal/log"
	"github.com/inkstone-editor/inkstone/internal/plugin"
	"github.com/inkstone-editor/inkstone/internal/render"
)

// pluginPaths holds the --plugin flag values, Lua scripts loaded into
// the editor in order.
var pluginPaths []string

// readOnlyFlag renders the document without editing affordances.
var readOnlyFlag bool

const rootLongDescription = `Inkstone renders rich-text documents stored as JSON node trees. It
projects selections, decorations, and annotations onto the tree,
dispatches plugin render hooks, and emits an element tree for a host
surface.

Documents are JSON objects with "kind", "type", "data", "nodes", and
"text" fields. Pass "-" to read from standard input.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inkstone",
		Short: "Rich-text document render engine",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func init() {
	configureRootFlags(rootCmd)
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(
		&pluginPaths, pluginFlagName, "p",
		viper.GetStringSlice(pluginConfigKey),
		"Lua plugin script to load (can be repeated)",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(pluginFlagName), pluginConfigKey)

	cmd.PersistentFlags().BoolVar(&readOnlyFlag, readOnlyFlagName, false,
		"render the document as read-only")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// newEditor builds an editor with the configured Lua plugins loaded.
// The returned closer releases the plugin states.
func newEditor(logger *zap.Logger) (*render.Editor, func(), error) {
	hosts := make([]*plugin.Host, 0, len(pluginPaths))
	plugins := make([]render.Plugin, 0, len(pluginPaths))
	closeAll := func() {
		for _, h := range hosts {
			h.Close()
		}
	}

	for _, path := range pluginPaths {
		host, err := plugin.LoadFile(path, plugin.WithLogger(logger))
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("load plugin %s: %w", path, err)
		}
		hosts = append(hosts, host)
		plugins = append(plugins, host.Plugin())
	}

	editor := render.New(
		render.WithPlugins(plugins...),
		render.WithReadOnly(readOnlyFlag),
		render.WithLogger(logger),
	)
	return editor, closeAll, nil
}

// loadDocument reads and decodes a document from a file or stdin.
func loadDocument(path string) (*document.Node, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return document.DecodeJSON(data)
}

func newLogger() *zap.Logger {
	return log.New(logOptions())
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
