package root

import (
	"github.com/flarebyte/cgreet/internal/greeter"
	"github.com/spf13/cobra"
)

// greet is swapped in tests.
var greet = greeter.Greet

// NewRootCmd creates the root command for cgreet.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cgreet [args...]",
		Short: "Print a greeting through the C library's puts",
		// Every argument, flag-looking or not, is accepted and ignored.
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The puts status is not inspected.
			_ = greet()
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(commandArgs(args))
	return cmd.Execute()
}

// commandArgs puts args behind "--" so cobra never resolves them as its own
// hidden completion commands.
func commandArgs(args []string) []string {
	out := make([]string, 0, len(args)+1)
	out = append(out, "--")
	return append(out, args...)
}
