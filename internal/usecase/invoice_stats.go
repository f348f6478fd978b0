package usecase

import (
	"fmt"
	"time"

	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// IInvoiceStats answers status, weekday and per-date questions about invoices.

type IInvoiceStats interface {
	InvoiceStatus(status entities.InvoiceStatus) (float64, error)
	DayCountHash() map[time.Weekday]int
	TopDaysByInvoiceCount() []time.Weekday
	InvoiceWeekdayStandardDeviation() float64
	InvoicePaidInFull(invoiceID int64) bool
	InvoiceTotal(invoiceID int64) decimal.Decimal
	TransactionsByDate(date time.Time) []entities.Transaction
	InvoicesByDate(date time.Time) []entities.Invoice
	TotalRevenueByDate(date time.Time) decimal.Decimal
	BestInvoiceByRevenue() (entities.Invoice, bool)
	BestInvoiceByQuantity() (entities.Invoice, bool)
}

const daysPerWeek = 7

type InvoiceStats struct {
	invoices     interfaces.IInvoiceRepository
	transactions interfaces.ITransactionRepository
	relations    *Relations
}

var _ IInvoiceStats = (*InvoiceStats)(nil)

func NewInvoiceStats(
	invoices interfaces.IInvoiceRepository,
	transactions interfaces.ITransactionRepository,
	relations *Relations,
) *InvoiceStats {
	return &InvoiceStats{invoices: invoices, transactions: transactions, relations: relations}
}

// InvoiceStatus is the percentage of invoices in status, rounded to 2 places.
func (s *InvoiceStats) InvoiceStatus(status entities.InvoiceStatus) (float64, error) {
	total := s.invoices.Len()
	if total == 0 {
		return 0, fmt.Errorf("%w: status ratio over 0 invoices", ErrInsufficientSample)
	}
	matching := len(s.invoices.FindAllByStatus(status))
	return RoundTo2(float64(matching) / float64(total) * 100), nil
}

// DayCountHash counts invoices per creation weekday. Only observed weekdays
// appear as keys.
func (s *InvoiceStats) DayCountHash() map[time.Weekday]int {
	counts := make(map[time.Weekday]int)
	for _, inv := range s.invoices.All() {
		counts[inv.CreatedAt.Weekday()]++
	}
	return counts
}

func (s *InvoiceStats) weekdaySummary() (Summary, [daysPerWeek]int) {
	var week [daysPerWeek]int
	for day, n := range s.DayCountHash() {
		week[day] = n
	}
	xs := make([]float64, daysPerWeek)
	for i, n := range week {
		xs[i] = float64(n)
	}
	// seven observations always satisfy the sample size
	summary, _ := Summarize(xs)
	return summary, week
}

// InvoiceWeekdayStandardDeviation is the sample standard deviation of the
// seven weekday counts, weekdays without invoices counting as zero.
func (s *InvoiceStats) InvoiceWeekdayStandardDeviation() float64 {
	summary, _ := s.weekdaySummary()
	return RoundTo2(summary.StdDev)
}

// TopDaysByInvoiceCount are the weekdays whose invoice count is strictly above
// mean + 1·stddev, Sunday first.
func (s *InvoiceStats) TopDaysByInvoiceCount() []time.Weekday {
	summary, week := s.weekdaySummary()
	threshold := summary.Above(1)
	out := []time.Weekday{}
	for day, n := range week {
		if float64(n) > threshold {
			out = append(out, time.Weekday(day))
		}
	}
	return out
}

func (s *InvoiceStats) InvoicePaidInFull(invoiceID int64) bool {
	return s.relations.IsPaidInFull(invoiceID)
}

func (s *InvoiceStats) InvoiceTotal(invoiceID int64) decimal.Decimal {
	return s.relations.InvoiceTotal(invoiceID)
}

// TransactionsByDate matches on calendar date, ignoring time of day.
func (s *InvoiceStats) TransactionsByDate(date time.Time) []entities.Transaction {
	return s.transactions.FindAllByCreatedAt(date)
}

func (s *InvoiceStats) InvoicesByDate(date time.Time) []entities.Invoice {
	return s.invoices.FindAllByCreatedAt(date)
}

// TotalRevenueByDate sums the totals of distinct invoices that received a
// successful transaction on date.
func (s *InvoiceStats) TotalRevenueByDate(date time.Time) decimal.Decimal {
	seen := make(map[int64]struct{})
	total := decimal.Zero
	for _, t := range s.TransactionsByDate(date) {
		if !t.Succeeded() {
			continue
		}
		if _, dup := seen[t.InvoiceID]; dup {
			continue
		}
		seen[t.InvoiceID] = struct{}{}
		total = total.Add(s.relations.InvoiceTotal(t.InvoiceID))
	}
	return total
}

// BestInvoiceByRevenue is the paid invoice with the highest total. The first
// in repository order wins a tie.
func (s *InvoiceStats) BestInvoiceByRevenue() (entities.Invoice, bool) {
	var (
		best  entities.Invoice
		top   decimal.Decimal
		found bool
	)
	for _, inv := range s.relations.paidOnly(s.invoices.All()) {
		if total := s.relations.InvoiceTotal(inv.ID); !found || total.GreaterThan(top) {
			best, top, found = inv, total, true
		}
	}
	return best, found
}

// BestInvoiceByQuantity is the paid invoice carrying the most units.
func (s *InvoiceStats) BestInvoiceByQuantity() (entities.Invoice, bool) {
	var best entities.Invoice
	most, found := 0, false
	for _, inv := range s.relations.paidOnly(s.invoices.All()) {
		if q := s.relations.InvoiceQuantity(inv.ID); !found || q > most {
			best, most, found = inv, q, true
		}
	}
	return best, found
}
