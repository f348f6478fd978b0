package usecase

import (
	"sort"

	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// IMerchantStats answers per-merchant counts, revenue and rankings.

type IMerchantStats interface {
	AverageItemsPerMerchant() (float64, error)
	AverageItemsPerMerchantStandardDeviation() (float64, error)
	MerchantsWithHighItemCount() ([]entities.Merchant, error)
	AverageInvoicesPerMerchant() (float64, error)
	AverageInvoicesPerMerchantStandardDeviation() (float64, error)
	TopMerchantsByInvoiceCount() ([]entities.Merchant, error)
	BottomMerchantsByInvoiceCount() ([]entities.Merchant, error)
	RevenueByMerchant(merchantID int64) decimal.Decimal
	BestItemForMerchant(merchantID int64) (entities.Item, bool)
	MostSoldItemForMerchant(merchantID int64) []entities.Item
	TopRevenueEarners(n int) []entities.Merchant
	MerchantsRankedByRevenue() []entities.Merchant
	RankedRevenue() []MerchantRevenue
}

// MerchantRevenue pairs a merchant with its revenue from paid invoices.
type MerchantRevenue struct {
	Merchant entities.Merchant
	Revenue  decimal.Decimal
}

type MerchantStats struct {
	merchants    interfaces.IMerchantRepository
	items        interfaces.IItemRepository
	transactions interfaces.ITransactionRepository
	relations    *Relations
}

var _ IMerchantStats = (*MerchantStats)(nil)

func NewMerchantStats(
	merchants interfaces.IMerchantRepository,
	items interfaces.IItemRepository,
	transactions interfaces.ITransactionRepository,
	relations *Relations,
) *MerchantStats {
	return &MerchantStats{merchants: merchants, items: items, transactions: transactions, relations: relations}
}

func (s *MerchantStats) itemCounts() []int {
	all := s.merchants.All()
	counts := make([]int, len(all))
	for i, m := range all {
		counts[i] = len(s.relations.MerchantItems(m.ID))
	}
	return counts
}

func (s *MerchantStats) invoiceCounts() []int {
	all := s.merchants.All()
	counts := make([]int, len(all))
	for i, m := range all {
		counts[i] = len(s.relations.MerchantInvoices(m.ID))
	}
	return counts
}

func (s *MerchantStats) AverageItemsPerMerchant() (float64, error) {
	mean, err := Mean(ints(s.itemCounts()))
	if err != nil {
		return 0, err
	}
	return RoundTo2(mean), nil
}

func (s *MerchantStats) AverageItemsPerMerchantStandardDeviation() (float64, error) {
	sd, err := SampleStandardDeviation(ints(s.itemCounts()))
	if err != nil {
		return 0, err
	}
	return RoundTo2(sd), nil
}

// MerchantsWithHighItemCount are merchants whose item count is strictly above
// mean + 1·stddev.
func (s *MerchantStats) MerchantsWithHighItemCount() ([]entities.Merchant, error) {
	counts := s.itemCounts()
	summary, err := Summarize(ints(counts))
	if err != nil {
		return nil, err
	}
	threshold := summary.Above(1)
	return s.selectByCount(counts, func(c float64) bool { return c > threshold }), nil
}

func (s *MerchantStats) AverageInvoicesPerMerchant() (float64, error) {
	mean, err := Mean(ints(s.invoiceCounts()))
	if err != nil {
		return 0, err
	}
	return RoundTo2(mean), nil
}

func (s *MerchantStats) AverageInvoicesPerMerchantStandardDeviation() (float64, error) {
	sd, err := SampleStandardDeviation(ints(s.invoiceCounts()))
	if err != nil {
		return 0, err
	}
	return RoundTo2(sd), nil
}

// TopMerchantsByInvoiceCount: invoice count strictly above mean + 2·stddev.
func (s *MerchantStats) TopMerchantsByInvoiceCount() ([]entities.Merchant, error) {
	counts := s.invoiceCounts()
	summary, err := Summarize(ints(counts))
	if err != nil {
		return nil, err
	}
	threshold := summary.Above(2)
	return s.selectByCount(counts, func(c float64) bool { return c > threshold }), nil
}

// BottomMerchantsByInvoiceCount: invoice count strictly below mean − 2·stddev.
func (s *MerchantStats) BottomMerchantsByInvoiceCount() ([]entities.Merchant, error) {
	counts := s.invoiceCounts()
	summary, err := Summarize(ints(counts))
	if err != nil {
		return nil, err
	}
	threshold := summary.Below(2)
	return s.selectByCount(counts, func(c float64) bool { return c < threshold }), nil
}

// selectByCount relies on counts being aligned with merchants.All().
func (s *MerchantStats) selectByCount(counts []int, keep func(float64) bool) []entities.Merchant {
	all := s.merchants.All()
	out := []entities.Merchant{}
	for i, m := range all {
		if i < len(counts) && keep(float64(counts[i])) {
			out = append(out, m)
		}
	}
	return out
}

type itemRevenue struct {
	itemID  int64
	revenue decimal.Decimal
}

// paidLineRevenue joins merchant -> paid invoices -> invoice items.
func (s *MerchantStats) paidLineRevenue(merchantID int64) []itemRevenue {
	out := []itemRevenue{}
	for _, inv := range s.relations.MerchantPaidInvoices(merchantID) {
		for _, ii := range s.relations.InvoiceItems(inv.ID) {
			out = append(out, itemRevenue{itemID: ii.ItemID, revenue: ii.PossibleRevenue()})
		}
	}
	return out
}

// RevenueByMerchant sums quantity × unit_price over the lines of the
// merchant's paid invoices.
func (s *MerchantStats) RevenueByMerchant(merchantID int64) decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.paidLineRevenue(merchantID) {
		total = total.Add(line.revenue)
	}
	return total
}

// BestItemForMerchant is the item of the single paid invoice line with the
// largest revenue. Lines whose item no longer exists are skipped; the first
// line wins a tie.
func (s *MerchantStats) BestItemForMerchant(merchantID int64) (entities.Item, bool) {
	var (
		best    entities.Item
		bestRev decimal.Decimal
		found   bool
	)
	for _, line := range s.paidLineRevenue(merchantID) {
		if found && !line.revenue.GreaterThan(bestRev) {
			continue
		}
		it, ok := s.items.FindByID(line.itemID)
		if !ok {
			continue
		}
		best, bestRev, found = it, line.revenue, true
	}
	return best, found
}

// MostSoldItemForMerchant groups paid invoice lines by item, sums quantities
// and returns every item reaching the maximum sum.
func (s *MerchantStats) MostSoldItemForMerchant(merchantID int64) []entities.Item {
	quantities := newItemTally()
	for _, inv := range s.relations.MerchantPaidInvoices(merchantID) {
		for _, ii := range s.relations.InvoiceItems(inv.ID) {
			quantities.add(ii.ItemID, ii.Quantity)
		}
	}
	return quantities.leaders(s.items)
}

// revenueByMerchant joins successful transactions -> invoices -> invoice items,
// totals each invoice once, then sums the invoice totals per merchant.
func (s *MerchantStats) revenueByMerchant() map[int64]decimal.Decimal {
	seen := make(map[int64]struct{})
	totals := make(map[int64]decimal.Decimal)
	for _, t := range s.transactions.FindAllByResult(entities.TransactionResultSuccess) {
		if _, dup := seen[t.InvoiceID]; dup {
			continue
		}
		seen[t.InvoiceID] = struct{}{}
		inv, ok := s.relations.TransactionInvoice(t)
		if !ok {
			continue
		}
		totals[inv.MerchantID] = totals[inv.MerchantID].Add(s.relations.InvoiceTotal(inv.ID))
	}
	return totals
}

// RankedRevenue ranks every merchant by revenue, descending. Merchants without
// revenue rank as zero; ties keep repository order.
func (s *MerchantStats) RankedRevenue() []MerchantRevenue {
	totals := s.revenueByMerchant()
	ranked := make([]MerchantRevenue, 0, s.merchants.Len())
	for _, m := range s.merchants.All() {
		ranked = append(ranked, MerchantRevenue{Merchant: m, Revenue: totals[m.ID]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})
	return ranked
}

func (s *MerchantStats) MerchantsRankedByRevenue() []entities.Merchant {
	ranked := s.RankedRevenue()
	out := make([]entities.Merchant, len(ranked))
	for i, r := range ranked {
		out[i] = r.Merchant
	}
	return out
}

// TopRevenueEarners returns at most n merchants by descending revenue.
func (s *MerchantStats) TopRevenueEarners(n int) []entities.Merchant {
	return firstN(s.MerchantsRankedByRevenue(), n)
}

func firstN[T any](xs []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(xs) {
		n = len(xs)
	}
	return xs[:n]
}
