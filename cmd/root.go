package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kandula/kancli/internal/aws"
	"github.com/kandula/kancli/internal/config"
	"github.com/kandula/kancli/internal/logging"
)

var (
	// Global flags
	debug   bool
	profile string
	region  string
)

var rootCmd = &cobra.Command{
	Use:   "kancli",
	Short: "Kandula CLI - operate Kandula application servers",
	Long: `Welcome to Kandula CLI!

The tool provides command line interface to operate Kandula application
servers: EC2 instances tagged Project=kandula.

Examples:
  kancli get-instances                  # List all Kandula instances
  kancli get-instances -s running -f    # Full details of running instances
  kancli get-instances -o json          # Machine-readable listing
  kancli stop-instances -s running -y   # Stop running instances`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	//Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().BoolVarP(&debug, config.KeyDebug, "d", false, "Print logging info")
	rootCmd.PersistentFlags().StringVarP(&profile, config.KeyProfile, "p", "", "AWS profile to use")
	rootCmd.PersistentFlags().StringVarP(&region, config.KeyRegion, "r", "", "AWS region to use")
}

// initConfig layers the config file, KANCLI_* environment and flags, then
// sets up logging for the command about to run.
func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	if err := config.Bind(viper.GetViper(), cmd.Flags(), cfg); err != nil {
		return err
	}

	logging.Setup(os.Stderr, viper.GetBool(config.KeyDebug))
	return nil
}

// newClient builds the AWS client for the resolved profile and region.
// Tests replace it with a client over fakes.
var newClient = func(ctx context.Context) (*aws.Client, error) {
	client, err := aws.NewClient(ctx,
		aws.WithProfile(viper.GetString(config.KeyProfile)),
		aws.WithRegion(viper.GetString(config.KeyRegion)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS client: %w", err)
	}
	return client, nil
}
