package engine

import (
	"fmt"

	"github.com/LumpsRGood/cateringcalulator/internal/catalog"
	"github.com/LumpsRGood/cateringcalulator/internal/model"
)

// TotalServings sums each line's per-unit serving count times quantity.
// Beverages carry a zero serving count in the catalog: a coffee box or
// cold bag serves, but is not a meal serving and must not inflate the
// disposables count.
func TotalServings(lines []model.OrderLine) (int, error) {
	total := 0
	for _, line := range lines {
		deltas, err := catalog.ResolveDeltas(line.Key)
		if err != nil {
			return 0, fmt.Errorf("servings for order line %q: %w", line.Label, err)
		}
		total += deltas.ServingsPerUnit * line.Qty
	}
	return total, nil
}

// ApplyGuestRequests runs the toggle-gated guestware pass over a copy of
// the totals. Plates, napkins, and wrapped cutlery sets each gain the
// total serving count when their toggle is on. Turning utensils off does
// more than skip the addition: it strips the serving utensils the item
// recipes already contributed, because the guest declined utensils for
// this pickup outright.
func ApplyGuestRequests(totals Totals, totalServings int, req model.GuestRequests) Totals {
	out := totals.Clone()

	if totalServings > 0 {
		if req.Plates {
			out.Guestware[catalog.GuestPlates] += float64(totalServings)
		}
		if req.Napkins {
			out.Guestware[catalog.GuestNapkins] += float64(totalServings)
		}
		if req.Utensils {
			out.Guestware[catalog.GuestCutlerySets] += float64(totalServings)
		}
	}

	if !req.Utensils {
		delete(out.Utensils, catalog.UtensilServingTongs)
		delete(out.Utensils, catalog.UtensilServingForks)
		delete(out.Utensils, catalog.UtensilServingSpoons)
	}

	return out
}

type AdviceStatus string

const (
	AdviceUnknown AdviceStatus = "unknown"
	AdviceShort   AdviceStatus = "short"
	AdviceAligned AdviceStatus = "aligned"
	AdvicePlenty  AdviceStatus = "plenty"
)

// UtensilAdvice compares the utensil sets a guest ordered against their
// headcount. Display-only: headcount never feeds the totals, it just backs
// this recommendation.
type UtensilAdvice struct {
	Recommended int
	Status      AdviceStatus
	Message     string
}

func AdviseUtensils(headcount, orderedSets int) UtensilAdvice {
	if headcount <= 0 {
		return UtensilAdvice{Status: AdviceUnknown}
	}
	advice := UtensilAdvice{Recommended: headcount}
	switch {
	case orderedSets <= 0:
		advice.Status = AdviceUnknown
		advice.Message = fmt.Sprintf("No utensil count entered. Recommend ~%d utensil sets for headcount %d.", headcount, headcount)
	case orderedSets < headcount:
		advice.Status = AdviceShort
		advice.Message = fmt.Sprintf("Ordered %d but headcount is %d. Recommend at least %d.", orderedSets, headcount, headcount)
	case float64(orderedSets) > float64(headcount)*1.25:
		advice.Status = AdvicePlenty
		advice.Message = fmt.Sprintf("Ordered %d for headcount %d. That's plenty. Recommend ~%d.", orderedSets, headcount, headcount)
	default:
		advice.Status = AdviceAligned
		advice.Message = "Ordered utensils look aligned with headcount."
	}
	return advice
}
