package invoice

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date layout used for display and serialization.
const DateLayout = "2006-01-02"

// DueOffsetDays is the number of days between an invoice's issue date and its due date.
const DueOffsetDays = 30

// ErrNotFound is returned when an invoice identifier is not present in a dataset.
var ErrNotFound = errors.New("invoice not found")

// ErrUnknownStatus is returned when a status label cannot be parsed.
var ErrUnknownStatus = errors.New("unknown invoice status")

// Status is the categorical payment state of an invoice.
//
//nolint:recvcheck // UnmarshalText requires pointer receiver; String/MarshalText use value receivers.
type Status int

const (
	// StatusPaid indicates the invoice has been settled.
	StatusPaid Status = iota
	// StatusPending indicates the invoice was sent and is awaiting payment.
	StatusPending
	// StatusOverdue indicates the due date passed without payment.
	StatusOverdue
)

// numStatuses is the number of defined statuses.
const numStatuses = 3

// Statuses returns every defined status in declaration order.
func Statuses() []Status {
	return []Status{StatusPaid, StatusPending, StatusOverdue}
}

// String returns the lower-case label for a Status.
func (s Status) String() string {
	switch s {
	case StatusPaid:
		return "paid"
	case StatusPending:
		return "pending"
	case StatusOverdue:
		return "overdue"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Title returns the label with its first letter upper-cased, e.g. "Paid".
func (s Status) Title() string {
	label := s.String()
	return strings.ToUpper(label[:1]) + label[1:]
}

// IsOpen reports whether the invoice still expects a payment.
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusOverdue
}

// ParseStatus parses a status label case-insensitively.
func ParseStatus(label string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "paid":
		return StatusPaid, nil
	case "pending":
		return StatusPending, nil
	case "overdue":
		return StatusOverdue, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, label)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Invoice is a single billing record. Values are immutable once generated.
type Invoice struct {
	ID          string
	Number      string
	Client      string
	Amount      int64 // whole currency units
	Status      Status
	IssueDate   time.Time
	DueDate     time.Time
	Description string
}

// record is the serialized shape of an Invoice shared by JSON and YAML output.
type record struct {
	ID          string `json:"id"            yaml:"id"`
	Number      string `json:"invoiceNumber" yaml:"invoiceNumber"`
	Client      string `json:"client"        yaml:"client"`
	Amount      int64  `json:"amount"        yaml:"amount"`
	Status      Status `json:"status"        yaml:"status"`
	Date        string `json:"date"          yaml:"date"`
	DueDate     string `json:"dueDate"       yaml:"dueDate"`
	Description string `json:"description"   yaml:"description"`
}

func (inv Invoice) toRecord() record {
	return record{
		ID:          inv.ID,
		Number:      inv.Number,
		Client:      inv.Client,
		Amount:      inv.Amount,
		Status:      inv.Status,
		Date:        inv.IssueDate.Format(DateLayout),
		DueDate:     inv.DueDate.Format(DateLayout),
		Description: inv.Description,
	}
}

// MarshalJSON renders dates as calendar dates rather than timestamps.
func (inv Invoice) MarshalJSON() ([]byte, error) {
	return json.Marshal(inv.toRecord())
}

// MarshalYAML implements yaml.Marshaler with the same shape as MarshalJSON.
func (inv Invoice) MarshalYAML() (interface{}, error) {
	return inv.toRecord(), nil
}

// IssueDateString returns the issue date formatted with DateLayout.
func (inv Invoice) IssueDateString() string {
	return inv.IssueDate.Format(DateLayout)
}

// DueDateString returns the due date formatted with DateLayout.
func (inv Invoice) DueDateString() string {
	return inv.DueDate.Format(DateLayout)
}

// Key returns the invoice identifier. It is the identity function used by the
// list controller for selection.
func Key(inv Invoice) string {
	return inv.ID
}

// Find returns the invoice with the given identifier.
func Find(ds []Invoice, id string) (Invoice, error) {
	for _, inv := range ds {
		if inv.ID == id {
			return inv, nil
		}
	}
	return Invoice{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// FilterByStatus returns the invoices whose status is one of statuses, preserving order.
// With no statuses the input is returned unchanged.
func FilterByStatus(ds []Invoice, statuses ...Status) []Invoice {
	if len(statuses) == 0 {
		return ds
	}
	want := make(map[Status]bool, len(statuses))
	for _, s := range statuses {
		want[s] = true
	}
	filtered := make([]Invoice, 0, len(ds))
	for _, inv := range ds {
		if want[inv.Status] {
			filtered = append(filtered, inv)
		}
	}
	return filtered
}
