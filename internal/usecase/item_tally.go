package usecase

import (
	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase/interfaces"
)

// itemTally sums a quantity per item id, remembering first-seen order.
type itemTally struct {
	order []int64
	sums  map[int64]int
}

func newItemTally() *itemTally {
	return &itemTally{sums: make(map[int64]int)}
}

func (t *itemTally) add(itemID int64, qty int) {
	if _, ok := t.sums[itemID]; !ok {
		t.order = append(t.order, itemID)
	}
	t.sums[itemID] += qty
}

// leaders resolves every item reaching the maximum sum, in first-seen order.
// Ids that no longer resolve to an item take no part in the ranking.
func (t *itemTally) leaders(items interfaces.IItemRepository) []entities.Item {
	top := -1
	out := []entities.Item{}
	for _, id := range t.order {
		it, ok := items.FindByID(id)
		if !ok {
			continue
		}
		switch sum := t.sums[id]; {
		case sum > top:
			top = sum
			out = append(out[:0], it)
		case sum == top:
			out = append(out, it)
		}
	}
	return out
}
