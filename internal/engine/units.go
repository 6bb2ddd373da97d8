package engine

import (
	"fmt"
	"math"
	"strconv"
)

// Conversion helpers are total over non-negative input. Negative or NaN
// arguments are caller contract violations and panic rather than leaking a
// silently wrong number into prep sheets and purchasing math.

const eps = 1e-9

// EggsQuartsPerLb converts liquid-egg pounds to quarts for Cambro prep.
const EggsQuartsPerLb = 0.465

func mustNonNegative(name string, v float64) {
	if math.IsNaN(v) || v < 0 {
		panic(fmt.Sprintf("engine: %s must be a non-negative number, got %v", name, v))
	}
}

func OuncesToPounds(oz float64) float64 {
	mustNonNegative("ounces", oz)
	return oz / 16.0
}

// CeilToIncrement returns the smallest multiple of inc that is >= x.
func CeilToIncrement(x, inc float64) float64 {
	mustNonNegative("value", x)
	if math.IsNaN(inc) || inc <= 0 {
		panic(fmt.Sprintf("engine: increment must be > 0, got %v", inc))
	}
	return math.Ceil(x/inc) * inc
}

// FriendlyRoundUp rounds up to the next increment, except a value barely
// over a clean number rounds down to it (5.01 -> 5.0 with the defaults).
// Never under-reports a real excess; never over-reports a rounding
// artifact. A value exactly on an increment boundary returns itself.
func FriendlyRoundUp(x, inc, tinyOver float64) float64 {
	mustNonNegative("value", x)
	if math.IsNaN(inc) || inc <= 0 {
		panic(fmt.Sprintf("engine: increment must be > 0, got %v", inc))
	}
	mustNonNegative("tiny-over threshold", tinyOver)
	floored := math.Floor(x/inc) * inc
	if x-floored <= tinyOver {
		return floored
	}
	return CeilToIncrement(x, inc)
}

// BagOverflowLine phrases a raw ounce total for the prep sheet. At or
// under one bag's capacity it reports the plain total; past one bag it
// switches to "Open: N bag(s) PLUS remainder". The switch is a hard
// branch: once a full bag is consumed the wording changes qualitatively.
// ozPerPortion of 0 means the item has no portion count.
func BagOverflowLine(totalOz, ozPerBag, ozPerPortion float64, label string) string {
	mustNonNegative("total ounces", totalOz)
	if math.IsNaN(ozPerBag) || ozPerBag <= 0 {
		panic(fmt.Sprintf("engine: ounces per bag must be > 0, got %v", ozPerBag))
	}
	mustNonNegative("ounces per portion", ozPerPortion)

	lbs := OuncesToPounds(totalOz)
	var lbsR float64
	if lbs > 0 {
		lbsR = FriendlyRoundUp(lbs, 0.5, 0.05)
	}

	var main string
	if ozPerPortion > 0 {
		portions := int(math.Ceil(totalOz/ozPerPortion - eps))
		main = fmt.Sprintf("%s: %d oz (%d portions/%s lb)", label, int(totalOz), portions, fmtG(lbsR))
	} else {
		main = fmt.Sprintf("%s: %d oz (%s lb)", label, int(totalOz), fmtG(lbsR))
	}

	if totalOz <= ozPerBag+eps {
		return main
	}

	fullBags := int(totalOz / ozPerBag)
	remOz := totalOz - float64(fullBags)*ozPerBag
	remLbs := OuncesToPounds(remOz)
	var remLbsR float64
	if remLbs > 0 {
		remLbsR = FriendlyRoundUp(remLbs, 0.5, 0.05)
	}

	bagWord := "bags"
	if fullBags == 1 {
		bagWord = "bag"
	}

	if ozPerPortion > 0 {
		remPortions := int(math.Ceil(remOz/ozPerPortion - eps))
		return fmt.Sprintf("%s\n\nOpen: %d %s PLUS %d oz (%d portions/%s lb)",
			main, fullBags, bagWord, int(remOz), remPortions, fmtG(remLbsR))
	}
	return fmt.Sprintf("%s\n\nOpen: %d %s PLUS %d oz (%s lb)",
		main, fullBags, bagWord, int(remOz), fmtG(remLbsR))
}

// ContainerCountFromPieces converts a piece count to weight and splits it
// into whole containers plus leftover pieces. Leftover weight within
// 0.01 lb of a container boundary collapses to an exact container count.
func ContainerCountFromPieces(pieces, ozPerPiece, containerLbs float64) (full int, leftoverPieces int) {
	mustNonNegative("pieces", pieces)
	if math.IsNaN(ozPerPiece) || ozPerPiece <= 0 {
		panic(fmt.Sprintf("engine: ounces per piece must be > 0, got %v", ozPerPiece))
	}
	if math.IsNaN(containerLbs) || containerLbs <= 0 {
		panic(fmt.Sprintf("engine: container pounds must be > 0, got %v", containerLbs))
	}

	totalLbs := OuncesToPounds(pieces * ozPerPiece)
	full = int(math.Floor(totalLbs/containerLbs + eps))
	leftoverLbs := totalLbs - float64(full)*containerLbs
	if leftoverLbs <= 0.01 {
		return full, 0
	}
	leftoverPieces = int(math.Ceil(leftoverLbs*16/ozPerPiece - eps))
	return full, leftoverPieces
}

// fmtG renders a float the way the prep sheet expects: no trailing zeros,
// "2.5" not "2.50", "4" not "4.0".
func fmtG(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
