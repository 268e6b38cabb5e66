package cli

import "github.com/spf13/cobra"

// completionCommand generates shell completion scripts. Preset arguments
// complete to the built-in keys.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for framer.

To load completions:

Bash:
  $ source <(framer completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ framer completion bash > /etc/bash_completion.d/framer
  # macOS:
  $ framer completion bash > $(brew --prefix)/etc/bash_completion.d/framer

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ framer completion zsh > "${fpath[1]}/_framer"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ framer completion fish | source

  # To load completions for each session, execute once:
  $ framer completion fish > ~/.config/fish/completions/framer.fish

PowerShell:
  PS> framer completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> framer completion powershell > framer.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
		},
	}
}
