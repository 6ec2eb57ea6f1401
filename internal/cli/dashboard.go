package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/findash/internal/config"
	"github.com/rshade/findash/internal/invoice"
	"github.com/rshade/findash/internal/logging"
	"github.com/rshade/findash/internal/tui"
)

// loadDataset generates the invoices described by the dashboard configuration.
func loadDataset(ctx context.Context, cfg *config.Config) []invoice.Invoice {
	opts := cfg.Dashboard.GeneratorOptions()
	start := time.Now()
	dataset := invoice.Generate(opts)
	logging.FromContext(ctx).Debug().Ctx(ctx).
		Int("invoices", len(dataset)).
		Uint64("seed", opts.Seed).
		Dur("elapsed", time.Since(start)).
		Msg("dataset generated")
	return dataset
}

// runDashboard opens the interactive dashboard, or prints its summary when
// stdout is not a terminal or plain output was requested.
func runDashboard(cmd *cobra.Command, plain bool) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()
	dataset := loadDataset(ctx, cfg)

	mode := tui.DetectOutputMode(false, false, plain)
	logging.FromContext(ctx).Debug().Ctx(ctx).Str("mode", mode.String()).Msg("output mode detected")

	switch mode {
	case tui.OutputModeInteractive:
		return runInteractiveDashboard(ctx, cfg, dataset)
	case tui.OutputModeStyled:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.RenderDashboard(
			invoice.Summarize(dataset), invoice.RecentActivity(dataset, tui.DefaultActivityLimit), tui.TerminalWidth()))
		return err
	case tui.OutputModePlain:
		return renderPlainDashboard(cmd.OutOrStdout(), dataset)
	default:
		return renderPlainDashboard(cmd.OutOrStdout(), dataset)
	}
}

func runInteractiveDashboard(ctx context.Context, cfg *config.Config, dataset []invoice.Invoice) error {
	// Console output below warn would draw over the alternate screen.
	if log := logging.FromContext(ctx); log.GetLevel() < zerolog.WarnLevel && !logsToFile(cfg) {
		quiet := log.Level(zerolog.WarnLevel)
		ctx = quiet.WithContext(ctx)
	}

	model := tui.NewAppModel(ctx, dataset, tui.AppOptions{
		Invoices: tui.InvoicesOptions{
			PageSize:  cfg.Dashboard.PageSize,
			Threshold: cfg.Dashboard.ScrollThreshold,
			Coalesce:  time.Duration(cfg.Dashboard.CoalesceMS) * time.Millisecond,
		},
		Profile: tui.Profile{Name: cfg.Profile.Name, Email: cfg.Profile.Email},
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}

func logsToFile(cfg *config.Config) bool {
	return cfg.Logging.File != ""
}

// renderPlainDashboard prints the stat cards and recent activity as aligned text.
func renderPlainDashboard(w io.Writer, dataset []invoice.Invoice) error {
	summary := invoice.Summarize(dataset)
	p := message.NewPrinter(language.English)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // Column padding.
	_, _ = fmt.Fprintln(tw, "METRIC\tVALUE\tCHANGE")
	_, _ = fmt.Fprintf(tw, "Total Revenue\t%s\t%s\n", invoice.FormatAmount(summary.Revenue), summary.RevenueChange)
	_, _ = p.Fprintf(tw, "Open Invoices\t%d\t%s\n", summary.OpenCount, summary.OpenCountDelta)
	_, _ = fmt.Fprintf(tw, "Pending Payments\t%s\t%s\n", invoice.FormatAmount(summary.PendingAmount), summary.PendingChange)
	_, _ = fmt.Fprintf(tw, "Overdue\t%s\t%s\n", invoice.FormatAmount(summary.OverdueAmount), summary.OverdueChange)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "RECENT ACTIVITY")
	for _, a := range invoice.RecentActivity(dataset, tui.DefaultActivityLimit) {
		_, _ = fmt.Fprintf(w, "%s  %-45s %s\n", a.When.Format(invoice.DateLayout), a.Description, a.Amount)
	}
	_, err := p.Fprintf(w, "\n%d invoices\n", summary.Count)
	return err
}
