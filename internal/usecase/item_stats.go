package usecase

import (
	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// IItemStats answers price statistics over the item catalog.

type IItemStats interface {
	AverageItemPrice() (decimal.Decimal, error)
	ItemPriceStandardDeviation() (float64, error)
	GoldenItems() ([]entities.Item, error)
	AverageItemPriceForMerchant(merchantID int64) (decimal.Decimal, error)
	AverageAveragePricePerMerchant() (decimal.Decimal, error)
	MaxItemPrice() (decimal.Decimal, bool)
}

type ItemStats struct {
	items     interfaces.IItemRepository
	merchants interfaces.IMerchantRepository
}

var _ IItemStats = (*ItemStats)(nil)

func NewItemStats(items interfaces.IItemRepository, merchants interfaces.IMerchantRepository) *ItemStats {
	return &ItemStats{items: items, merchants: merchants}
}

func prices(items []entities.Item) []decimal.Decimal {
	out := make([]decimal.Decimal, len(items))
	for i, it := range items {
		out[i] = it.UnitPrice
	}
	return out
}

// AverageItemPrice is the mean unit price over all items, rounded to cents.
func (s *ItemStats) AverageItemPrice() (decimal.Decimal, error) {
	mean, err := meanDecimal(prices(s.items.All()))
	if err != nil {
		return decimal.Zero, err
	}
	return mean.Round(2), nil
}

func (s *ItemStats) ItemPriceStandardDeviation() (float64, error) {
	sd, err := SampleStandardDeviation(floats(prices(s.items.All())))
	if err != nil {
		return 0, err
	}
	return RoundTo2(sd), nil
}

// GoldenItems are the items priced strictly above mean + 2·stddev of all item
// prices, up to the highest observed price.
func (s *ItemStats) GoldenItems() ([]entities.Item, error) {
	all := s.items.All()
	ps := prices(all)
	sd, err := SampleStandardDeviation(floats(ps))
	if err != nil {
		return nil, err
	}
	mean, _ := meanDecimal(ps)
	threshold := mean.Add(decimal.NewFromFloat(2 * sd))
	ceiling, _ := s.MaxItemPrice()

	golden := []entities.Item{}
	for _, it := range all {
		if it.UnitPrice.GreaterThan(threshold) && it.UnitPrice.LessThanOrEqual(ceiling) {
			golden = append(golden, it)
		}
	}
	return golden, nil
}

func (s *ItemStats) AverageItemPriceForMerchant(merchantID int64) (decimal.Decimal, error) {
	mean, err := meanDecimal(prices(s.items.FindAllByMerchantID(merchantID)))
	if err != nil {
		return decimal.Zero, err
	}
	return mean.Round(2), nil
}

// AverageAveragePricePerMerchant averages the per-merchant average prices over
// the merchants that list at least one item.
func (s *ItemStats) AverageAveragePricePerMerchant() (decimal.Decimal, error) {
	averages := []decimal.Decimal{}
	for _, m := range s.merchants.All() {
		avg, err := meanDecimal(prices(s.items.FindAllByMerchantID(m.ID)))
		if err != nil {
			continue
		}
		averages = append(averages, avg)
	}
	mean, err := meanDecimal(averages)
	if err != nil {
		return decimal.Zero, err
	}
	return mean.Round(2), nil
}

func (s *ItemStats) MaxItemPrice() (decimal.Decimal, bool) {
	all := s.items.All()
	if len(all) == 0 {
		return decimal.Zero, false
	}
	return decimal.Max(all[0].UnitPrice, prices(all[1:])...), true
}
