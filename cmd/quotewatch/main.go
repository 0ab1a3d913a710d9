// Package main provides the CLI entry point for quotewatch.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"quotewatch/internal/config"
	"quotewatch/internal/logging"
	"quotewatch/internal/pipeline"
	"quotewatch/internal/watcher"
	"quotewatch/pkg/quote"
	"quotewatch/pkg/quote/output"
)

// Version is set at build time.
var Version = "0.1.0"

var (
	cfgFile string
	jsonOut bool
	pretty  bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quotewatch",
		Short: "Watch a folder for quotation workbooks and normalize them",
		Long: `quotewatch monitors the upload/ folder for dropped spreadsheet files
(.xlsx, .xlsm, .xls), extracts cover details and line items, writes one
normalized .xlsx per input, and moves the input to archive/.

Just run: quotewatch
And leave it running.`,
		Version:       Version,
		RunE:          runWatch,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./quotewatch.yaml)")
	rootCmd.PersistentFlags().String("upload-dir", "", "directory watched for input workbooks")
	rootCmd.PersistentFlags().String("archive-dir", "", "directory processed inputs are moved to")
	rootCmd.PersistentFlags().String("output-dir", "", "directory normalized outputs are written to")
	rootCmd.PersistentFlags().String("logs-dir", "", "directory for per-run log files")
	rootCmd.PersistentFlags().Float64("margin-percent", 0, "sell price margin uplift percentage")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(newProcessCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the quotewatch version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quotewatch %s\n", Version)
		},
	}
}

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	if err := cfg.EnsureDirs(); err != nil {
		return err
	}

	logger, closer, err := logging.Setup(cfg.LogsDir, cfg.Verbose)
	if err != nil {
		return err
	}
	defer closer.Close()

	p := pipeline.New(cfg, logger)
	w := watcher.New(watcher.Config{
		Dir:            cfg.UploadDir,
		SettleInterval: cfg.SettleInterval(),
		PollInterval:   cfg.PollInterval(),
		SettleAttempts: cfg.SettleAttempts,
		Logger:         logger,
	}, p.Process)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return w.Run(ctx)
}

func newProcessCmd() *cobra.Command {
	processCmd := &cobra.Command{
		Use:   "process [workbook]",
		Short: "Process a single workbook without watching",
		Args:  cobra.ExactArgs(1),
		RunE:  runProcess,
	}
	processCmd.Flags().BoolVar(&jsonOut, "json", false, "print extracted data as JSON instead of writing output")
	processCmd.Flags().BoolVar(&pretty, "pretty", false, "pretty-print JSON output")
	return processCmd
}

func runProcess(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}

	// Inspection mode: extract and print, leave the file alone.
	if jsonOut {
		q, err := quote.Extract(inputPath, quote.DefaultOptions())
		if err != nil {
			return err
		}
		data, err := output.ToJSON(q, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if err := cfg.EnsureDirs(); err != nil {
		return err
	}
	logger, closer, err := logging.Setup(cfg.LogsDir, cfg.Verbose)
	if err != nil {
		return err
	}
	defer closer.Close()

	return pipeline.New(cfg, logger).Process(inputPath)
}
