package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kandula/kancli/internal/ui"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the AWS identity and region in use",
	Long: `Display the AWS account, user and region the other commands will query.

Examples:
  kancli whoami
  kancli whoami -p prod`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWhoami(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(ctx context.Context, out io.Writer) error {
	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	identity, err := client.GetCallerIdentity(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Account:  %s\n", identity.Account)
	fmt.Fprintf(out, "User:     %s\n", identity.UserID)
	fmt.Fprintf(out, "ARN:      %s\n", ui.MutedStyle.Render(identity.Arn))
	fmt.Fprintf(out, "Region:   %s\n", client.Region())
	if p := client.Profile(); p != "" {
		fmt.Fprintf(out, "Profile:  %s\n", p)
	}
	return nil
}
