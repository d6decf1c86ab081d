package cli

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treeview/pkg/io"
	"github.com/matzehuels/treeview/pkg/render"
	"github.com/matzehuels/treeview/pkg/render/term"
)

// Initial grid size before the first window-size message arrives.
const (
	previewCols = 80
	previewRows = 24
)

// previewCommand creates the preview command, which plays the edge animation
// in the terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Play the tree animation in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			root, err := io.ImportTree(args[0])
			if err != nil {
				return err
			}

			canvas := term.New(previewCols, previewRows-previewChrome)
			if err := render.Render(root, canvas, cfg); err != nil {
				return err
			}
			c.Logger.Debug("preview ready", "nodes", root.Count(), "duration", canvas.Duration())

			model := NewPreviewModel(filepath.Base(args[0]), canvas)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context()), tea.WithAltScreen()).Run()
			return err
		},
	}

	flags.register(cmd)
	cmd.ValidArgsFunction = completeTreeFile
	return cmd
}
