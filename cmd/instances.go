package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kandula/kancli/internal/aws"
	"github.com/kandula/kancli/internal/config"
	"github.com/kandula/kancli/internal/inventory"
	"github.com/kandula/kancli/internal/ui"
	"github.com/kandula/kancli/pkg/provider"
	"github.com/kandula/kancli/pkg/types"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

var getInstancesCmd = &cobra.Command{
	Use:   "get-instances",
	Short: "Show Kandula instances",
	Long: `Shows all AWS instances having tag 'Project' equal to 'kandula'.

Items are sorted by instance names.

Examples:
  kancli get-instances                      # Names of all instances
  kancli get-instances -s running -s pending
  kancli get-instances -f                   # Every field, labeled
  kancli get-instances -f -o json           # Full records as JSON`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := getOpts
		opts.Output = viper.GetString(config.KeyOutput)
		return runGetInstances(cmd.Context(), cmd.OutOrStdout(), opts)
	},
}

// getOptions are the get-instances flags
type getOptions struct {
	States []string
	Full   bool
	Output string
}

var getOpts getOptions

// mutator carries out start/stop/terminate
var mutator provider.InstanceMutator = aws.PendingMutator{}

func init() {
	rootCmd.AddCommand(getInstancesCmd)

	getInstancesCmd.Flags().StringArrayVarP(&getOpts.States, "state", "s", []string{string(types.StateAll)},
		"Filter by state, repeatable ("+strings.Join(types.FilterValues(), ", ")+")")
	getInstancesCmd.Flags().BoolVarP(&getOpts.Full, "full", "f", false, "Show every field instead of names only")
	getInstancesCmd.Flags().StringP(config.KeyOutput, "o", OutputText, "Output format (text, json)")

	for _, action := range []provider.Action{provider.ActionStart, provider.ActionStop, provider.ActionTerminate} {
		rootCmd.AddCommand(newMutationCmd(action))
	}
}

func runGetInstances(ctx context.Context, out io.Writer, opts getOptions) error {
	if opts.Output != OutputText && opts.Output != OutputJSON {
		return fmt.Errorf("invalid output format %q (valid: %s, %s)", opts.Output, OutputText, OutputJSON)
	}

	filter, err := types.ParseStateFilter(opts.States)
	if err != nil {
		return err
	}

	instances, err := fetchInstances(ctx, filter)
	if err != nil {
		return err
	}

	if len(instances) == 0 {
		fmt.Fprintln(out, inventory.EmptyMessage(filter))
		return nil
	}

	r := ui.Renderer{Full: opts.Full}
	if opts.Output == OutputJSON {
		return r.JSON(out, instances)
	}

	var buf bytes.Buffer
	if err := r.Text(&buf, instances); err != nil {
		return err
	}
	return page(out, buf.String())
}

// fetchInstances runs the describe call and the normalizer for one filter
func fetchInstances(ctx context.Context, filter types.StateFilter) ([]types.Instance, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	return listInstances(ctx, client, filter)
}

func listInstances(ctx context.Context, lister provider.InstanceLister, filter types.StateFilter) ([]types.Instance, error) {
	stop := ui.StartSpinner("Fetching instances ...")
	records, err := lister.DescribeAllInstances(ctx)
	stop()
	if err != nil {
		return nil, err
	}

	instances, err := inventory.Normalize(records, filter, lister.Region())
	if err != nil {
		return nil, fmt.Errorf("unexpected describe-instances response: %w", err)
	}
	return instances, nil
}

// page sends text through the pager when out is the terminal
func page(out io.Writer, text string) error {
	if f, ok := out.(*os.File); ok {
		pager := viper.GetString(config.KeyPager)
		if pager == "" {
			pager = ui.DefaultPager
		}
		return ui.Page(f, pager, text)
	}
	_, err := io.WriteString(out, text)
	return err
}

// mutationOptions are the start/stop/terminate flags
type mutationOptions struct {
	States []string
	Yes    bool
}

func newMutationCmd(action provider.Action) *cobra.Command {
	opts := &mutationOptions{}

	cmd := &cobra.Command{
		Use:   string(action) + "-instances",
		Short: capitalize(string(action)) + " Kandula instances",
		Long: fmt.Sprintf(`%s the Kandula instances matching the state filter.

Asks for confirmation unless --yes is given.

Examples:
  kancli %s-instances -s running
  kancli %s-instances -s running -y`, capitalize(string(action)), action, action),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), action, *opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.States, "state", "s", []string{string(types.StateAll)},
		"Filter by state, repeatable ("+strings.Join(types.FilterValues(), ", ")+")")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Confirm the action without prompting")

	return cmd
}

func runMutation(ctx context.Context, in io.Reader, out io.Writer, action provider.Action, opts mutationOptions) error {
	filter, err := types.ParseStateFilter(opts.States)
	if err != nil {
		return err
	}

	if !opts.Yes {
		prompt := fmt.Sprintf("%s Kandula instances with state %s?", capitalize(string(action)), filter)
		ok, err := confirm(prompt, in, out)
		if err != nil {
			return err
		}
		if !ok {
			return provider.ErrAborted
		}
	}

	instances, err := fetchInstances(ctx, filter)
	if err != nil {
		return err
	}

	if len(instances) == 0 {
		fmt.Fprintln(out, inventory.EmptyMessage(filter))
		return nil
	}

	if err := provider.Mutate(ctx, mutator, action, inventory.IDs(instances)); err != nil {
		return fmt.Errorf("%s-instances: %w", action, err)
	}

	fmt.Fprintf(out, "%s requested for %d instance(s): %s\n", capitalize(string(action)), len(instances), strings.Join(inventory.Names(instances), ", "))
	return nil
}

// confirm prompts on a terminal and refuses otherwise
func confirm(prompt string, in io.Reader, out io.Writer) (bool, error) {
	f, ok := in.(*os.File)
	if !ok || !ui.IsTerminal(f) {
		return false, fmt.Errorf("%w: confirmation required, rerun with --yes", provider.ErrAborted)
	}
	return ui.Confirm(prompt, in, out)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
