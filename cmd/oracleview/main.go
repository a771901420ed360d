package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nuwa-protocol/oracleview/internal/config"
	"github.com/nuwa-protocol/oracleview/internal/decode"
	"github.com/nuwa-protocol/oracleview/internal/output"
	"github.com/nuwa-protocol/oracleview/internal/report"
	"github.com/nuwa-protocol/oracleview/internal/rooch"
)

func rootCmd() *cobra.Command {
	var (
		rawOutput bool
		format    string
	)

	cmd := &cobra.Command{
		Use:   "oracleview [object-id]",
		Short: "Decode and display Rooch Oracle request objects",
		Long: `Fetch an Oracle request object from a Rooch node and print a decoded,
human-readable report. With no argument, the most recent request is shown.

Examples:
  oracleview
  oracleview 0x1a2b3c...
  oracleview --raw
  oracleview --format json
  oracleview watch --interval 10s`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			objectID := ""
			if len(args) == 1 {
				objectID = args[0]
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runInspect(cmd.Context(), cfg, objectID, rawOutput, format)
		},
	}

	cmd.PersistentFlags().String("config", "", "Config file path (optional)")
	cmd.PersistentFlags().String("binary", "", "Node CLI binary (overrides config)")
	cmd.Flags().BoolVar(&rawOutput, "raw", false, "Dump the raw JSON returned by the node CLI")
	cmd.Flags().StringVar(&format, "format", "terminal", "Output format: terminal|json")

	cmd.AddCommand(watchCmd())

	return cmd
}

// loadConfig resolves the persistent --config and --binary flags into a
// validated configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		cfgPath, _ = cmd.Root().PersistentFlags().GetString("config")
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if binary, _ := cmd.Root().PersistentFlags().GetString("binary"); binary != "" {
		cfg.Binary = binary
	}
	return cfg, nil
}

func runInspect(ctx context.Context, cfg *config.Config, objectID string, rawOutput bool, format string) error {
	client := rooch.NewClient(rooch.ClientConfig{
		Binary:      cfg.Binary,
		RequestType: cfg.RequestType,
		Timeout:     cfg.Timeout,
	})

	var (
		res *rooch.Result
		err error
	)
	if objectID != "" {
		fmt.Fprintf(os.Stderr, "Fetching object data for ID: %s...\n", objectID)
		res, err = client.FetchByID(ctx, objectID)
	} else {
		fmt.Fprintln(os.Stderr, "Fetching the latest Oracle request object...")
		res, err = client.FetchLatest(ctx)
	}
	if err != nil {
		return err
	}

	if rawOutput {
		fmt.Println(decode.PrettyJSON(string(res.Raw)))
		return nil
	}

	rep := report.Build(res.Object)

	if format == "json" {
		output.DisableColors()
		return output.RenderReportJSON(os.Stdout, rep)
	}

	if !output.IsTerminal() {
		output.DisableColors()
	}
	output.RenderReportTerminal(os.Stdout, rep)
	return nil
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
