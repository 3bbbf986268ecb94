package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kandula/kancli/internal/aws"
	"github.com/kandula/kancli/internal/config"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Save default settings",
	Long: `Save the given settings to the kancli config file. Only flags passed
on the command line are changed.

Examples:
  kancli configure -p prod -r eu-west-1
  kancli configure --output json
  kancli configure --pager "less -RS"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lookup := func(name string) (*aws.Profile, error) {
			return aws.LookupProfile(cmd.Context(), name)
		}
		return runConfigure(cmd.OutOrStdout(), cmd.Flags(), config.GetConfigPath(), lookup)
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)

	configureCmd.Flags().String(config.KeyOutput, "", "Default output format (text, json)")
	configureCmd.Flags().String(config.KeyPager, "", "Pager command for text output")
}

// profileLookup resolves a shared config profile
type profileLookup func(name string) (*aws.Profile, error)

func runConfigure(out io.Writer, flags *pflag.FlagSet, path string, lookup profileLookup) error {
	cfg, err := config.LoadConfigFrom(path)
	if err != nil {
		return err
	}

	changed := 0
	set := func(key string, field *string) {
		if f := flags.Lookup(key); f != nil && f.Changed {
			*field = f.Value.String()
			changed++
		}
	}
	set(config.KeyProfile, &cfg.AWSProfile)
	set(config.KeyRegion, &cfg.AWSRegion)
	set(config.KeyOutput, &cfg.Output)
	set(config.KeyPager, &cfg.Pager)

	if cfg.Output != "" && cfg.Output != OutputText && cfg.Output != OutputJSON {
		return fmt.Errorf("invalid output format %q (valid: %s, %s)", cfg.Output, OutputText, OutputJSON)
	}

	if f := flags.Lookup(config.KeyProfile); f != nil && f.Changed {
		p, err := lookup(cfg.AWSProfile)
		if err != nil {
			return err
		}
		if cfg.AWSRegion == "" && p.Region != "" {
			fmt.Fprintf(out, "Region defaults to %s from profile %s\n", p.Region, p.Name)
		}
	}

	if changed == 0 {
		fmt.Fprintf(out, "Nothing to save. Config file: %s\n", path)
		return nil
	}

	if err := config.SaveConfigTo(path, cfg); err != nil {
		return err
	}

	fmt.Fprintf(out, "Saved %d setting(s) to %s\n", changed, path)
	return nil
}
