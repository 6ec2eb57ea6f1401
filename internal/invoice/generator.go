package invoice

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Generator defaults.
const (
	DefaultDatasetSize = 100
	DefaultYear        = 2024

	minAmount    = 1000
	amountRange  = 50000
	maxIssueDay  = 28
	monthsInYear = 12
)

// Clients is the fixed set of counterparties invoices are drawn from.
//
//nolint:gochecknoglobals // Fixed lookup table.
var Clients = []string{
	"Acme Corp",
	"TechStart Inc",
	"Global Solutions",
	"Innovation Labs",
	"Digital Ventures",
	"NextGen Systems",
	"Prime Industries",
	"Future Tech",
}

// Descriptions is the fixed set of line descriptions invoices are drawn from.
//
//nolint:gochecknoglobals // Fixed lookup table.
var Descriptions = []string{
	"Monthly consulting services",
	"Web development project",
	"Software license renewal",
	"Cloud infrastructure services",
	"Design and branding package",
	"API integration services",
	"Mobile app development",
	"Security audit and compliance",
}

// GeneratorOptions configures a Generator.
type GeneratorOptions struct {
	// Size is the number of invoices to produce. Values < 0 are treated as 0.
	Size int
	// Year is the calendar year issue dates fall in.
	Year int
	// Seed makes the output deterministic. Zero seeds from the clock.
	Seed uint64
}

// DefaultGeneratorOptions returns the reference dataset shape: 100 invoices issued in 2024.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{Size: DefaultDatasetSize, Year: DefaultYear}
}

// Generator produces synthetic invoice datasets.
type Generator struct {
	opts GeneratorOptions
	rng  *rand.Rand
}

// NewGenerator creates a Generator. A zero Year falls back to DefaultYear.
func NewGenerator(opts GeneratorOptions) *Generator {
	if opts.Year == 0 {
		opts.Year = DefaultYear
	}
	if opts.Size < 0 {
		opts.Size = 0
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint:gosec // Non-negative clock value, used only for mock data.
	}
	return &Generator{
		opts: opts,
		rng:  rand.New(rand.NewPCG(seed, seed>>1|1)), //nolint:gosec // Synthetic data, not security sensitive.
	}
}

// Generate materializes the full dataset. Each call returns a fresh slice.
func (g *Generator) Generate() []Invoice {
	ds := make([]Invoice, g.opts.Size)
	for i := range ds {
		ds[i] = g.next(i)
	}
	return ds
}

// next builds the invoice at position i (0-based).
func (g *Generator) next(i int) Invoice {
	month := time.Month(g.rng.IntN(monthsInYear) + 1)
	day := g.rng.IntN(maxIssueDay) + 1
	issued := time.Date(g.opts.Year, month, day, 0, 0, 0, 0, time.UTC)
	number := FormatNumber(i + 1)

	return Invoice{
		ID:          number,
		Number:      number,
		Client:      Clients[g.rng.IntN(len(Clients))],
		Amount:      int64(g.rng.IntN(amountRange) + minAmount),
		Status:      Status(g.rng.IntN(numStatuses)),
		IssueDate:   issued,
		DueDate:     issued.AddDate(0, 0, DueOffsetDays),
		Description: Descriptions[g.rng.IntN(len(Descriptions))],
	}
}

// FormatNumber renders a 1-based sequence number as an invoice number, e.g. "INV-0007".
func FormatNumber(seq int) string {
	return fmt.Sprintf("INV-%04d", seq)
}

// Generate is a convenience wrapper producing a dataset with the given options.
func Generate(opts GeneratorOptions) []Invoice {
	return NewGenerator(opts).Generate()
}
