package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treeview/pkg/bst"
	"github.com/matzehuels/treeview/pkg/io"
	"github.com/matzehuels/treeview/pkg/pipeline"
)

// bstOpts holds the command-line flags for the bst command.
type bstOpts struct {
	renderFlags
	output  string // output file; the extension picks the format
	ordered bool   // insert in the given order instead of balancing
	deletes []int  // values to delete after building
	search  int    // value to search for
	order   string // traversal to print
	export  string // write the tree as JSON/YAML/TOML
}

// bstCommand creates the bst command, which builds an integer binary search
// tree from a comma-separated list and renders it.
func (c *CLI) bstCommand() *cobra.Command {
	opts := bstOpts{output: "bst.svg", order: string(bst.InOrder)}

	cmd := &cobra.Command{
		Use:   "bst VALUES",
		Short: "Build a binary search tree from comma-separated integers and render it",
		Example: `  treeview bst 5,3,8,1,4
  treeview bst "50, 30, 70, 20" --ordered --search 20 -o bst.png
  treeview bst 1,2,3,4,5,6,7 --delete 4 --order pre --export tree.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			order, err := bst.ParseOrder(opts.order)
			if err != nil {
				return err
			}
			t, err := buildBST(args[0], opts.ordered, opts.deletes)
			if err != nil {
				return err
			}

			printTraversals(t, order)
			if cmd.Flags().Changed("search") {
				cfg.Highlight = searchPath(t, opts.search)
			}

			root := t.ToNode()
			if root == nil {
				printWarning("Tree is empty, nothing to render")
				return nil
			}
			if opts.export != "" {
				if err := io.ExportTree(root, opts.export); err != nil {
					return err
				}
				printFile(opts.export)
			}

			format := strings.TrimPrefix(filepath.Ext(opts.output), ".")
			if format == "" {
				format = pipeline.FormatSVG
			}
			return c.renderTree(cmd.Context(), root, pipeline.Options{
				Formats: []string{format},
				Config:  cfg,
			}, "bst", opts.output)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file (.svg, .png, .pdf or .json)")
	cmd.Flags().BoolVar(&opts.ordered, "ordered", false, "insert values in the given order instead of building a balanced tree")
	cmd.Flags().IntSliceVar(&opts.deletes, "delete", nil, "values to delete after building (repeatable)")
	cmd.Flags().IntVar(&opts.search, "search", 0, "value to search for; prints and highlights the visited path")
	cmd.Flags().StringVar(&opts.order, "order", opts.order, "traversal to print: in, pre, post")
	cmd.Flags().StringVar(&opts.export, "export", "", "also write the tree to a .json, .yaml or .toml file")

	_ = cmd.RegisterFlagCompletionFunc("order", completeFrom(orderSet, false))

	return cmd
}

// buildBST parses values and builds the tree, balanced unless ordered is set,
// then applies deletions.
func buildBST(values string, ordered bool, deletes []int) (*bst.Tree, error) {
	vals, err := bst.ParseValues(values)
	if err != nil {
		return nil, err
	}
	var t *bst.Tree
	if ordered {
		t = bst.New(vals...)
	} else {
		t = bst.BuildBalanced(vals)
	}
	for _, v := range deletes {
		if !t.Delete(v) {
			printWarning("Value %d not in tree", v)
		}
	}
	return t, nil
}

// traversalTable renders the selected traversal as a bordered table.
func traversalTable(t *bst.Tree, order bst.Order) string {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("Traversal", "Values").
		Row(string(order)+"order", joinInts(t.Traverse(order), " ")).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHeader
			}
			if col == 0 {
				return styleKey.UnsetWidth()
			}
			return StyleValue
		})
	return tbl.Render()
}

func printTraversals(t *bst.Tree, order bst.Order) {
	fmt.Println(traversalTable(t, order))
	printKeyValue("values", strconv.Itoa(t.Len()))
	printKeyValue("height", strconv.Itoa(t.Height()))
}

// searchPath prints the nodes visited while searching for v and returns
// their labels as a highlight path for the renderer.
func searchPath(t *bst.Tree, v int) []string {
	path, found := t.Search(v)
	trail := joinInts(path, " "+iconArrow+" ")
	if found {
		printInfo("Found %s: %s", StyleHighlight.Render(strconv.Itoa(v)), trail)
	} else {
		printWarning("%d not found (visited %s)", v, trail)
	}

	labels := make([]string, len(path))
	for i, p := range path {
		labels[i] = strconv.Itoa(p)
	}
	return labels
}

func joinInts(vals []int, sep string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}
