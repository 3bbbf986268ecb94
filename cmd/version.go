package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kandula/kancli/internal/config"
)

// Set by ldflags during build
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

func buildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printVersion(cmd.OutOrStdout(), viper.GetString(config.KeyOutput), buildInfo())
	},
}

func printVersion(out io.Writer, format string, info BuildInfo) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "    ")
		return enc.Encode(info)
	case OutputText:
		fmt.Fprintf(out, "kancli %s\n", info.Version)
		fmt.Fprintf(out, "  Commit:     %s\n", info.Commit)
		fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
		fmt.Fprintf(out, "  Go:         %s\n", info.GoVersion)
		fmt.Fprintf(out, "  Platform:   %s\n", info.Platform)
		return nil
	default:
		return fmt.Errorf("invalid output format %q (valid: %s, %s)", format, OutputText, OutputJSON)
	}
}

func init() {
	versionCmd.Flags().StringP(config.KeyOutput, "o", OutputText, "Output format (text, json)")
	rootCmd.AddCommand(versionCmd)
}
