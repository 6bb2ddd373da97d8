package engine

import (
	"fmt"

	"github.com/LumpsRGood/cateringcalulator/internal/catalog"
	"github.com/LumpsRGood/cateringcalulator/internal/model"
)

// Totals is the accumulator for one computation: five independent sparse
// maps, one per resource category. Only resources actually contributed by
// at least one line appear, which is what lets rendering show non-zero
// rows only.
type Totals struct {
	Food       map[catalog.FoodItem]float64
	Packaging  map[catalog.PackagingItem]float64
	Condiments map[catalog.CondimentItem]float64
	Guestware  map[catalog.GuestwareItem]float64
	Utensils   map[catalog.UtensilItem]float64
}

func NewTotals() Totals {
	return Totals{
		Food:       make(map[catalog.FoodItem]float64),
		Packaging:  make(map[catalog.PackagingItem]float64),
		Condiments: make(map[catalog.CondimentItem]float64),
		Guestware:  make(map[catalog.GuestwareItem]float64),
		Utensils:   make(map[catalog.UtensilItem]float64),
	}
}

// Clone copies every bucket so derivation passes can augment a copy
// without touching the aggregation result.
func (t Totals) Clone() Totals {
	out := NewTotals()
	for k, v := range t.Food {
		out.Food[k] = v
	}
	for k, v := range t.Packaging {
		out.Packaging[k] = v
	}
	for k, v := range t.Condiments {
		out.Condiments[k] = v
	}
	for k, v := range t.Guestware {
		out.Guestware[k] = v
	}
	for k, v := range t.Utensils {
		out.Utensils[k] = v
	}
	return out
}

// Aggregate walks the order lines, resolves each selection's per-unit
// recipe, scales it by quantity, and sums by additive merge. Addition is
// commutative, so line order never changes the result. An unresolvable
// selection is catalog drift and fails the whole computation.
func Aggregate(lines []model.OrderLine) (Totals, error) {
	totals := NewTotals()

	for _, line := range lines {
		if line.Qty < 1 {
			return Totals{}, fmt.Errorf("order line %q has quantity %d, want >= 1", line.Label, line.Qty)
		}
		deltas, err := catalog.ResolveDeltas(line.Key)
		if err != nil {
			return Totals{}, fmt.Errorf("aggregate order line %q: %w", line.Label, err)
		}

		qty := float64(line.Qty)
		for k, v := range deltas.Food {
			totals.Food[k] += v * qty
		}
		for k, v := range deltas.Packaging {
			totals.Packaging[k] += v * qty
		}
		for k, v := range deltas.Condiments {
			totals.Condiments[k] += v * qty
		}
		for k, v := range deltas.Guestware {
			totals.Guestware[k] += v * qty
		}
		for k, v := range deltas.Utensils {
			totals.Utensils[k] += v * qty
		}
	}

	return totals, nil
}
