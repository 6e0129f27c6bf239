package main

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for meshbake.

To load completions:

Bash:

  $ source <(meshbake completion bash)

  To load completions for each session, execute once:
  Linux:
    $ meshbake completion bash > /etc/bash_completion.d/meshbake
  macOS:
    $ meshbake completion bash > /usr/local/etc/bash_completion.d/meshbake

Zsh:

  If shell completion is not already enabled in your environment,
  you will need to enable it. You can execute the following once:

  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  To load completions for each session, execute once:
  $ meshbake completion zsh > "${fpath[1]}/_meshbake"

  You will need to start a new shell for this setup to take effect.

Fish:

  $ meshbake completion fish | source

  To load completions for each session, execute once:
  $ meshbake completion fish > ~/.config/fish/completions/meshbake.fish

PowerShell:

  PS> meshbake completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, true)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		default:
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		}
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(completionCmd)
}
