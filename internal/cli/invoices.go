package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/rshade/findash/internal/cli/pagination"
	"github.com/rshade/findash/internal/config"
	"github.com/rshade/findash/internal/invoice"
)

// Output formats for list and show commands.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// invoiceListParams holds the flags of "invoices list".
type invoiceListParams struct {
	output   string
	limit    int
	page     int
	pageSize int
	offset   int
	sort     string
	statuses []string
}

// InvoiceListResult is the structured output of "invoices list".
type InvoiceListResult struct {
	Invoices   []invoice.Invoice         `json:"invoices"   yaml:"invoices"`
	Pagination pagination.PaginationMeta `json:"pagination" yaml:"pagination"`
}

// newInvoicesCmd creates the invoices command group.
func newInvoicesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "invoices", Short: "Invoice commands"}
	cmd.AddCommand(NewInvoicesListCmd(), NewInvoicesShowCmd())
	return cmd
}

// NewInvoicesListCmd creates the "invoices list" command.
func NewInvoicesListCmd() *cobra.Command {
	var params invoiceListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		Long: `Lists the synthetic invoices of the dashboard.

Results can be filtered by status, sorted by any column and paginated either by
page (--page with --page-size) or by offset (--offset with --limit).`,
		Example: `  # First 10 invoices
  findash invoices list --limit 10

  # Largest overdue invoices first
  findash invoices list --status overdue --sort amount:desc

  # Third page of 20 as YAML
  findash invoices list --page 3 --page-size 20 --output yaml`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInvoicesList(cmd, params)
		},
	}

	cmd.Flags().StringVarP(&params.output, "output", "o", "", "output format: table, json or yaml (default from config)")
	cmd.Flags().IntVar(&params.limit, "limit", 0, "maximum number of invoices to return (0 = unlimited)")
	cmd.Flags().IntVar(&params.page, "page", 0, "page number for page-based pagination (1-based)")
	cmd.Flags().IntVar(&params.pageSize, "page-size", 0, "invoices per page for page-based pagination")
	cmd.Flags().IntVar(&params.offset, "offset", 0, "number of invoices to skip for offset-based pagination")
	cmd.Flags().StringVar(&params.sort, "sort", "",
		"sort by field[:asc|desc]; fields: amount, client, date, dueDate, number, status")
	cmd.Flags().StringSliceVar(&params.statuses, "status", nil, "only show invoices with these statuses (paid, pending, overdue)")

	return cmd
}

func runInvoicesList(cmd *cobra.Command, params invoiceListParams) error {
	ctx := cmd.Context()

	format, err := resolveFormat(params.output)
	if err != nil {
		return err
	}
	pageParams := pagination.PaginationParams{
		Limit:    params.limit,
		Offset:   params.offset,
		Page:     params.page,
		PageSize: params.pageSize,
	}
	if err = pageParams.Validate(); err != nil {
		return &UsageError{Err: err}
	}
	statuses, err := parseStatuses(params.statuses)
	if err != nil {
		return &UsageError{Err: err}
	}

	dataset := loadDataset(ctx, config.GetGlobalConfig())
	filtered := invoice.FilterByStatus(dataset, statuses...)

	sorted, err := pagination.SortBy[invoice.Invoice](pagination.NewInvoiceSorter(), filtered, params.sort)
	if err != nil {
		return &UsageError{Err: err}
	}

	page := pagination.ApplyToSlice(pageParams, sorted)
	logger.Debug().Ctx(ctx).
		Int("total", len(sorted)).
		Int("returned", len(page)).
		Str("sort", params.sort).
		Msg("invoices listed")

	result := InvoiceListResult{
		Invoices:   page,
		Pagination: pagination.NewPaginationMeta(pageParams, len(sorted), len(page)),
	}
	return renderInvoiceList(cmd.OutOrStdout(), format, result)
}

// resolveFormat validates the --output flag, falling back to the configured default.
func resolveFormat(flagValue string) (string, error) {
	format := strings.ToLower(config.GetOutputFormat(flagValue))
	switch format {
	case formatTable, formatJSON, formatYAML:
		return format, nil
	default:
		return "", usageErrorf("unsupported output format: %q (use table, json or yaml)", format)
	}
}

func parseStatuses(labels []string) ([]invoice.Status, error) {
	statuses := make([]invoice.Status, 0, len(labels))
	for _, label := range labels {
		s, err := invoice.ParseStatus(strings.TrimSpace(label))
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, nil
}

func renderInvoiceList(w io.Writer, format string, result InvoiceListResult) error {
	switch format {
	case formatJSON:
		return writeJSON(w, result)
	case formatYAML:
		return writeYAML(w, result)
	default:
		return renderInvoiceTable(w, result)
	}
}

func renderInvoiceTable(w io.Writer, result InvoiceListResult) error {
	if len(result.Invoices) == 0 {
		_, err := fmt.Fprintln(w, "No invoices found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // Column padding.
	_, _ = fmt.Fprintln(tw, "INVOICE\tCLIENT\tAMOUNT\tSTATUS\tDATE\tDUE DATE")
	for _, inv := range result.Invoices {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			inv.Number, inv.Client, invoice.FormatAmount(inv.Amount),
			inv.Status.Title(), inv.IssueDateString(), inv.DueDateString())
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	meta := result.Pagination
	p := message.NewPrinter(language.English)
	_, err := p.Fprintf(w, "\nShowing %d of %d invoices (page %d of %d)\n",
		meta.Returned, meta.TotalItems, meta.CurrentPage, meta.TotalPages)
	return err
}

// NewInvoicesShowCmd creates the "invoices show" command.
func NewInvoicesShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <invoice-id>",
		Short: "Show one invoice",
		Example: `  # Show an invoice from a fixed dataset
  findash invoices show INV-0007 --seed 42 --output json`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(output)
			if err != nil {
				return err
			}

			dataset := loadDataset(cmd.Context(), config.GetGlobalConfig())
			inv, err := invoice.Find(dataset, args[0])
			if err != nil {
				return fmt.Errorf("showing %s: %w", args[0], err)
			}
			return renderInvoice(cmd.OutOrStdout(), format, inv)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json or yaml (default from config)")
	return cmd
}

func renderInvoice(w io.Writer, format string, inv invoice.Invoice) error {
	switch format {
	case formatJSON:
		return writeJSON(w, inv)
	case formatYAML:
		return writeYAML(w, inv)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // Column padding.
	_, _ = fmt.Fprintf(tw, "Invoice:\t%s\n", inv.Number)
	_, _ = fmt.Fprintf(tw, "Client:\t%s\n", inv.Client)
	_, _ = fmt.Fprintf(tw, "Amount:\t%s\n", invoice.FormatAmount(inv.Amount))
	_, _ = fmt.Fprintf(tw, "Status:\t%s\n", inv.Status.Title())
	_, _ = fmt.Fprintf(tw, "Issue Date:\t%s\n", inv.IssueDateString())
	_, _ = fmt.Fprintf(tw, "Due Date:\t%s\n", inv.DueDateString())
	_, _ = fmt.Fprintf(tw, "Description:\t%s\n", inv.Description)
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2) //nolint:mnd // Two-space indent.
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}
