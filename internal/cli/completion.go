package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeview/pkg/pipeline"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for treeview.

  bash:        source <(treeview completion bash)
  zsh:         treeview completion zsh > "${fpath[1]}/_treeview"
  fish:        treeview completion fish > ~/.config/fish/completions/treeview.fish
  powershell:  treeview completion powershell | Out-String | Invoke-Expression

Completions cover subcommands, flags, and the values of --format, --engine
and --order.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// completeFrom returns a flag completion function offering the keys of set.
// Comma-separated flags complete the last element.
func completeFrom(set map[string]bool, commaList bool) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		prefix := ""
		if i := strings.LastIndex(toComplete, ","); commaList && i >= 0 {
			prefix, toComplete = toComplete[:i+1], toComplete[i+1:]
		}
		var out []string
		for v := range set {
			if strings.HasPrefix(v, toComplete) {
				out = append(out, prefix+v)
			}
		}
		slices.Sort(out)
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}

// treeFileExtensions are offered when completing a tree file argument.
var treeFileExtensions = []string{"json", "yaml", "yml", "toml"}

func completeTreeFile(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return treeFileExtensions, cobra.ShellCompDirectiveFilterFileExt
}

var (
	formatSet = pipeline.ValidFormats
	engineSet = pipeline.ValidEngines
	orderSet  = map[string]bool{"in": true, "pre": true, "post": true}
)
