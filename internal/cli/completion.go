package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand generates shell completion scripts. Completions make the
// canvas-id and breakpoint flags far less tedious to type, so the command is
// registered even though it is pure cobra plumbing.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate a shell completion script",
		Long: `Generate a completion script for your shell and print it to stdout.

Try it in the current session:

  bash:       source <(gridbuilder completion bash)
  fish:       gridbuilder completion fish | source
  powershell: gridbuilder completion powershell | Out-String | Invoke-Expression

To install permanently, write the script where your shell loads completions
from, for example:

  bash:  gridbuilder completion bash > /etc/bash_completion.d/gridbuilder
  zsh:   gridbuilder completion zsh > "${fpath[1]}/_gridbuilder"
  fish:  gridbuilder completion fish > ~/.config/fish/completions/gridbuilder.fish

Zsh users without completion enabled need a one-time:

  echo "autoload -U compinit; compinit" >> ~/.zshrc
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
