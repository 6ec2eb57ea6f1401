package invoice

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// percentScale converts a ratio into a percentage.
const percentScale = 100

// changePrecision is the number of decimal places kept for percentage changes.
const changePrecision = 1

// Trend is the direction of a month-over-month change.
type Trend int

const (
	// TrendFlat indicates no change or no previous period to compare with.
	TrendFlat Trend = iota
	// TrendUp indicates the metric grew.
	TrendUp
	// TrendDown indicates the metric shrank.
	TrendDown
)

// Change is a month-over-month percentage change.
type Change struct {
	Percent decimal.Decimal
	// Comparable is false when the previous period had no value to compare against.
	Comparable bool
}

// Trend returns the direction of the change.
func (c Change) Trend() Trend {
	switch {
	case !c.Comparable || c.Percent.IsZero():
		return TrendFlat
	case c.Percent.IsPositive():
		return TrendUp
	default:
		return TrendDown
	}
}

// String renders the change as a signed percentage, e.g. "+20.1%", or "n/a".
func (c Change) String() string {
	if !c.Comparable {
		return "n/a"
	}
	s := c.Percent.StringFixed(changePrecision) + "%"
	if c.Percent.IsPositive() {
		return "+" + s
	}
	return s
}

// Summary aggregates the headline figures of a dataset.
type Summary struct {
	Count          int
	Revenue        int64 // sum of paid invoices
	PendingAmount  int64
	OverdueAmount  int64
	OpenCount      int
	Period         time.Time // first day of the most recent issue month
	RevenueChange  Change
	PendingChange  Change
	OverdueChange  Change
	OpenCountDelta Change
}

// totals holds per-period sums used for both the overall summary and month comparisons.
type totals struct {
	revenue int64
	pending int64
	overdue int64
	open    int64
}

func accumulate(ds []Invoice) totals {
	var t totals
	for _, inv := range ds {
		switch inv.Status {
		case StatusPaid:
			t.revenue += inv.Amount
		case StatusPending:
			t.pending += inv.Amount
			t.open++
		case StatusOverdue:
			t.overdue += inv.Amount
			t.open++
		}
	}
	return t
}

// Summarize computes the dataset summary. Month-over-month changes compare the most
// recent issue month present in the dataset against the calendar month before it.
func Summarize(ds []Invoice) Summary {
	all := accumulate(ds)
	s := Summary{
		Count:         len(ds),
		Revenue:       all.revenue,
		PendingAmount: all.pending,
		OverdueAmount: all.overdue,
		OpenCount:     int(all.open),
	}
	if len(ds) == 0 {
		return s
	}

	s.Period = latestMonth(ds)
	current := accumulate(issuedIn(ds, s.Period))
	previous := accumulate(issuedIn(ds, s.Period.AddDate(0, -1, 0)))

	s.RevenueChange = PercentChange(previous.revenue, current.revenue)
	s.PendingChange = PercentChange(previous.pending, current.pending)
	s.OverdueChange = PercentChange(previous.overdue, current.overdue)
	s.OpenCountDelta = PercentChange(previous.open, current.open)
	return s
}

// PercentChange returns (current - previous) / previous as a percentage rounded to one place.
func PercentChange(previous, current int64) Change {
	if previous == 0 {
		return Change{}
	}
	prev := decimal.NewFromInt(previous)
	pct := decimal.NewFromInt(current).
		Sub(prev).
		Div(prev).
		Mul(decimal.NewFromInt(percentScale)).
		Round(changePrecision)
	return Change{Percent: pct, Comparable: true}
}

func latestMonth(ds []Invoice) time.Time {
	var latest time.Time
	for _, inv := range ds {
		if inv.IssueDate.After(latest) {
			latest = inv.IssueDate
		}
	}
	return time.Date(latest.Year(), latest.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func issuedIn(ds []Invoice, month time.Time) []Invoice {
	var out []Invoice
	for _, inv := range ds {
		if inv.IssueDate.Year() == month.Year() && inv.IssueDate.Month() == month.Month() {
			out = append(out, inv)
		}
	}
	return out
}

// ActivityKind classifies an activity feed entry.
type ActivityKind int

const (
	// ActivityPayment is a settled invoice.
	ActivityPayment ActivityKind = iota
	// ActivityInvoice is an invoice sent and awaiting payment.
	ActivityInvoice
	// ActivityOverdue is an invoice past its due date.
	ActivityOverdue
)

// Activity is a single entry of the recent activity feed.
type Activity struct {
	Kind        ActivityKind
	Description string
	Amount      string
	When        time.Time
	Credit      bool // money received
}

// RecentActivity returns up to n entries for the most recently issued invoices, newest first.
// Ties on the issue date keep dataset order.
func RecentActivity(ds []Invoice, n int) []Activity {
	if n <= 0 || len(ds) == 0 {
		return nil
	}
	sorted := make([]Invoice, len(ds))
	copy(sorted, ds)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].IssueDate.After(sorted[j].IssueDate)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	out := make([]Activity, len(sorted))
	for i, inv := range sorted {
		out[i] = activityFor(inv)
	}
	return out
}

func activityFor(inv Invoice) Activity {
	a := Activity{When: inv.IssueDate, Amount: FormatAmount(inv.Amount)}
	switch inv.Status {
	case StatusPaid:
		a.Kind = ActivityPayment
		a.Description = "Payment received from " + inv.Client
		a.Amount = "+" + a.Amount
		a.Credit = true
	case StatusOverdue:
		a.Kind = ActivityOverdue
		a.Description = fmt.Sprintf("Invoice %s overdue from %s", inv.Number, inv.Client)
	default:
		a.Kind = ActivityInvoice
		a.Description = fmt.Sprintf("Invoice %s sent to %s", inv.Number, inv.Client)
	}
	return a
}
