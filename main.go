// canslimscreener screens stock tickers against the CANSLIM EPS growth
// criteria using quarterly and annual EPS history scraped from the
// financial statements site.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"canslimscreener/internal/config"
	"canslimscreener/internal/fetcher"
	"canslimscreener/internal/pipeline"
	"canslimscreener/internal/quote"
	"canslimscreener/internal/ratelimit"
	"canslimscreener/internal/report"
	"canslimscreener/internal/screener"
	"canslimscreener/internal/stockanalysis"
	"canslimscreener/internal/symbols"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "canslimscreener",
	Short: "Screen stocks against the CANSLIM EPS growth criteria",
	Long: `canslimscreener retrieves quarterly and annual EPS history for stock
tickers, computes period-over-period growth, and flags tickers whose
quarterly and three-year EPS growth both clear the CANSLIM threshold.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	screenCmd.Flags().String("symbols", "", "ticker list file (overrides config)")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(screenCmd)
	rootCmd.AddCommand(analyzeCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("canslimscreener %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Screen every ticker in the symbols file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("symbols")
		if path == "" {
			path = cfg.SymbolsFile
		}
		tickers, err := symbols.Load(path)
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		fmt.Printf("Screening %d tickers...\n", len(tickers))
		results, err := newPipeline(cfg).Screen(ctx, tickers)
		if err != nil {
			return err
		}

		report.RenderTable(os.Stdout, pipeline.Accepted(results))
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [ticker]",
	Short: "Screen a single ticker and write a report file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ticker := strings.ToUpper(strings.TrimSpace(args[0]))

		ctx, cancel := signalContext()
		defer cancel()

		fmt.Printf("Analyzing ticker: %s\n", ticker)
		results, err := newPipeline(cfg).Screen(ctx, []string{ticker})
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No stocks met the criteria.")
			path, err := report.WriteUnavailable(cfg.ReportDir, ticker, time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("Results written to %s\n", path)
			return nil
		}

		result := results[0]
		fmt.Print(result.Summary)
		fmt.Println()
		report.RenderTable(os.Stdout, results)

		path, err := report.WriteFile(cfg.ReportDir, result, time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("Results written to %s\n", path)
		return nil
	},
}

// newPipeline wires the configured components together.
func newPipeline(cfg *config.Config) *pipeline.Pipeline {
	pool := fetcher.NewIdentityPool(cfg.UserAgents...)
	pages := fetcher.NewClientWithOptions(pool, cfg.FetchAttempts, cfg.RetryWait, cfg.RequestTimeout)
	statements := stockanalysis.NewClient(cfg.StatementsBaseURL, pages)
	quotes := quote.NewFetcher(cfg.QuoteBaseURL)
	limiter := ratelimit.New(cfg.StatementsRatePerMinute, cfg.QuotesRatePerMinute)
	evaluator := screener.Evaluator{
		Threshold: cfg.GrowthThreshold,
		Inclusive: cfg.InclusiveThreshold,
	}
	return pipeline.New(statements, quotes, limiter, evaluator, cfg.Workers)
}

// signalContext returns a context cancelled by SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	return ctx, cancel
}
