package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jwebster45206/detective-quest/internal/config"
	"github.com/jwebster45206/detective-quest/internal/console"
	"github.com/jwebster45206/detective-quest/internal/logger"
	"github.com/jwebster45206/detective-quest/internal/storage"
	"github.com/jwebster45206/detective-quest/pkg/investigation"
)

var (
	cfg       *config.Config
	appLogger *slog.Logger

	uiFlag       string
	logLevelFlag string
	redisURLFlag string
	limitFlag    int
)

var rootCmd = &cobra.Command{
	Use:   "detective",
	Short: "Explore the Enigma Mansion, collect clues and accuse the culprit",
	Long: `Detective Quest is a text game. Walk the rooms of the mansion, collect
the clues you find in your journal and accuse a suspect. Two clues pointing at
the same person are needed for a conviction.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a new investigation",
	RunE:  runPlay,
}

var casebookCmd = &cobra.Command{
	Use:   "casebook",
	Short: "List archived verdicts, newest first",
	RunE:  runCasebook,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&uiFlag, "ui", "", "front-end: plain or tui (env DETECTIVE_UI)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "debug, info, warn or error (env LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&redisURLFlag, "redis-url", "", "Redis address for the casebook (env REDIS_URL)")
	casebookCmd.Flags().IntVar(&limitFlag, "limit", 10, "number of verdicts to show, 0 for all")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(casebookCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	if uiFlag != "" {
		cfg.UI = uiFlag
	}
	if logLevelFlag != "" {
		cfg.LogLevel = config.ParseLogLevel(logLevelFlag)
	}
	if redisURLFlag != "" {
		cfg.RedisURL = redisURLFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appLogger = logger.Setup(cfg, os.Stderr)
	return nil
}

func openCasebook(ctx context.Context) (storage.Casebook, error) {
	if !cfg.CasebookEnabled() {
		return nil, nil
	}
	cb, err := storage.NewRedisCasebook(ctx, cfg.RedisURL, cfg.CasebookLimit, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to open casebook: %w", err)
	}
	return cb, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cb, err := openCasebook(ctx)
	if err != nil {
		return err
	}
	if cb != nil {
		defer func() {
			_ = cb.Close() // Ignore error in defer
		}()
	}

	inv, err := investigation.Open(appLogger)
	if err != nil {
		return fmt.Errorf("failed to open investigation: %w", err)
	}

	if cfg.UI == config.UITUI {
		return runTUI(ctx, cmd.OutOrStdout(), inv, cb)
	}

	opts := []console.Option{console.WithLogger(appLogger)}
	if cb != nil {
		opts = append(opts, console.WithCasebook(cb))
	}
	_, err = console.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), inv, opts...).Run(ctx)
	return err
}

func runTUI(ctx context.Context, out io.Writer, inv *investigation.Investigation, cb storage.Casebook) error {
	ui := NewDetectiveUI(ctx, inv, cb, appLogger)
	p := tea.NewProgram(ui, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		inv.Close()
		return fmt.Errorf("error running program: %w", err)
	}
	return printFinalReport(out, final)
}

// printFinalReport leaves the case report on the terminal once the alt
// screen is gone.
func printFinalReport(out io.Writer, final tea.Model) error {
	m, ok := final.(DetectiveUI)
	if !ok || m.report == nil {
		return nil
	}
	_, err := fmt.Fprint(out, console.Report(*m.report))
	return err
}

func runCasebook(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cb, err := openCasebook(ctx)
	if err != nil {
		return err
	}
	if cb == nil {
		return storage.ErrCasebookDisabled
	}
	defer func() {
		_ = cb.Close() // Ignore error in defer
	}()

	reports, err := cb.Recent(ctx, limitFlag)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(reports) == 0 {
		_, _ = fmt.Fprintln(out, "The casebook is empty.")
		return nil
	}
	for i, r := range reports {
		if i > 0 {
			_, _ = fmt.Fprintln(out)
		}
		_, _ = fmt.Fprint(out, console.Report(r))
	}
	return nil
}
