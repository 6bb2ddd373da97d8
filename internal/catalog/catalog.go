package catalog

import (
	"fmt"
	"sort"

	"github.com/LumpsRGood/cateringcalulator/internal/model"
)

// ConfigurationError means the selection the caller handed us does not
// exist in the catalog. That is drift between the ordering surface and
// this table, not user error, so it should fail loudly.
type ConfigurationError struct {
	Key    model.SelectionKey
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("catalog configuration error for %s %q: %s", e.Key.Kind, e.Key.ItemID, e.Reason)
}

const (
	TierSmall  = "small combo box"
	TierMedium = "medium combo box"
	TierLarge  = "large combo box"

	ProteinBacon   = "bacon"
	ProteinSausage = "pork sausage links"
	ProteinHam     = "sampler ham"

	GriddlePancakes    = "buttermilk pancakes"
	GriddleFrenchToast = "french toast"
)

var Proteins = []string{ProteinBacon, ProteinSausage, ProteinHam}

var GriddleChoices = []string{GriddlePancakes, GriddleFrenchToast}

var ColdBevTypes = []string{"apple juice", "orange juice", "iced tea", "lemonade", "soda"}

const ColdBevBagOz = 128.0

// comboTier holds the v2.0.2 kitchen-facing numbers for one combo size.
// French toast is tracked in slices; triangles only appear in plating.
type comboTier struct {
	label string

	eggsOz     float64
	redPotsOz  float64
	proteinPcs float64

	pancakePcs float64
	ftSlices   float64

	halfPansEggs      float64
	halfPansRedPots   float64
	largeBasesProtein float64
	halfPansPancakes  float64
	halfPansFT        float64

	butterPackets     float64
	syrupPackets      float64
	ketchupPackets    float64
	powderedSugarCups float64

	servingForks float64
	servingTongs float64
	plates       float64

	servings int
}

var comboTiers = map[string]comboTier{
	TierSmall: {
		label:  "Small Combo Box",
		eggsOz: 40, redPotsOz: 60, proteinPcs: 20,
		pancakePcs: 20, ftSlices: 10,
		halfPansEggs: 1, halfPansRedPots: 1, largeBasesProtein: 1,
		halfPansPancakes: 1, halfPansFT: 2,
		butterPackets: 10, syrupPackets: 10, ketchupPackets: 10,
		powderedSugarCups: 1,
		servingForks:      2, servingTongs: 2, plates: 10,
		servings: 10,
	},
	TierMedium: {
		label:  "Medium Combo Box",
		eggsOz: 80, redPotsOz: 120, proteinPcs: 40,
		pancakePcs: 40, ftSlices: 20,
		halfPansEggs: 2, halfPansRedPots: 2, largeBasesProtein: 2,
		halfPansPancakes: 2, halfPansFT: 4,
		butterPackets: 20, syrupPackets: 20, ketchupPackets: 20,
		powderedSugarCups: 2,
		servingForks:      2, servingTongs: 2, plates: 20,
		servings: 20,
	},
	TierLarge: {
		label:  "Large Combo Box",
		eggsOz: 160, redPotsOz: 240, proteinPcs: 80,
		pancakePcs: 80, ftSlices: 40,
		halfPansEggs: 4, halfPansRedPots: 4, largeBasesProtein: 4,
		halfPansPancakes: 4, halfPansFT: 8,
		butterPackets: 40, syrupPackets: 40, ketchupPackets: 40,
		powderedSugarCups: 4,
		servingForks:      8, servingTongs: 5, plates: 40,
		servings: 40,
	},
}

var proteinBuckets = map[string]FoodItem{
	ProteinBacon:   FoodBaconPcs,
	ProteinSausage: FoodSausagePcs,
	ProteinHam:     FoodHamPcs,
}

// alaCarteItem is a fixed per-unit recipe. Sandwich items auto-attach
// their topping/condiment/serveware bundle; none of it is separately
// selectable.
type alaCarteItem struct {
	label  string
	group  string
	deltas Deltas
}

func sandwichBundle(patties float64) Deltas {
	food := map[FoodItem]float64{
		FoodBurgerBuns:    10,
		FoodTomatoSlices:  20,
		FoodOnionSlices:   20,
		FoodLettuceLeaves: 10,
		FoodPickleChips:   50,
	}
	if patties > 0 {
		food[FoodBurgerPatties] = patties
	}
	return Deltas{
		Food: food,
		Condiments: map[CondimentItem]float64{
			CondMayoPackets:    10,
			CondKetchupPackets: 10,
			CondMustardPackets: 10,
		},
		Packaging: map[PackagingItem]float64{
			PackHalfPans: 2,
			PackSoupCups: 3,
		},
		Utensils: map[UtensilItem]float64{
			UtensilServingTongs:  2,
			UtensilServingSpoons: 2,
		},
		ServingsPerUnit: 10,
	}
}

var alaCarteItems = map[string]alaCarteItem{
	"pancakes_20": {
		label: "Buttermilk Pancakes (20 pcs)", group: "Griddle Faves",
		deltas: Deltas{
			Food:            map[FoodItem]float64{FoodPancakePcs: 20},
			ServingsPerUnit: 10,
		},
	},
	"ft_10_slices": {
		label: "French Toast (10 slices)", group: "Griddle Faves",
		deltas: Deltas{
			Food:            map[FoodItem]float64{FoodFrenchToastSlices: 10},
			Condiments:      map[CondimentItem]float64{CondPowderedSugarCups: 1},
			ServingsPerUnit: 10,
		},
	},
	"eggs_40oz": {
		label: "Scrambled Eggs (40 oz)", group: "Breakfast Proteins & Sides",
		deltas: Deltas{
			Food:            map[FoodItem]float64{FoodEggsOz: 40},
			ServingsPerUnit: 10,
		},
	},
	"red_pots_40oz": {
		label: "Red Pots (40 oz)", group: "Breakfast Proteins & Sides",
		deltas: Deltas{
			Food:            map[FoodItem]float64{FoodRedPotsOz: 40},
			ServingsPerUnit: 10,
		},
	},
	"bacon_20": {
		label: "Bacon (20 pcs)", group: "Breakfast Proteins & Sides",
		deltas: Deltas{
			Food:            map[FoodItem]float64{FoodBaconPcs: 20},
			ServingsPerUnit: 10,
		},
	},
	"sausage_20": {
		label: "Pork Sausage Links (20 pcs)", group: "Breakfast Proteins & Sides",
		deltas: Deltas{
			Food:            map[FoodItem]float64{FoodSausagePcs: 20},
			ServingsPerUnit: 10,
		},
	},
	"ham_20": {
		label: "Sampler Ham (20 pcs)", group: "Breakfast Proteins & Sides",
		deltas: Deltas{
			Food:            map[FoodItem]float64{FoodHamPcs: 20},
			ServingsPerUnit: 10,
		},
	},
	"chix_strips_40": {
		label: "Chicken Strips (40 pcs)", group: "Lunch / Savory",
		deltas: Deltas{
			Food:            map[FoodItem]float64{FoodChickenStripsPcs: 40},
			ServingsPerUnit: 10,
		},
	},
	"fries_60oz": {
		label: "French Fries (60 oz)", group: "Lunch / Savory",
		deltas: Deltas{
			Food:            map[FoodItem]float64{FoodFriesOz: 60},
			Packaging:       map[PackagingItem]float64{PackHalfPans: 1},
			Condiments:      map[CondimentItem]float64{CondKetchupPackets: 10},
			Utensils:        map[UtensilItem]float64{UtensilServingTongs: 1},
			ServingsPerUnit: 10,
		},
	},
	// 60 oz at 1.25 oz per ring, prepped by ring count.
	"onion_rings_std": {
		label: "Onion Rings (48 rings)", group: "Lunch / Savory",
		deltas: Deltas{
			Food:            map[FoodItem]float64{FoodOnionRings: 48},
			Packaging:       map[PackagingItem]float64{PackHalfPans: 2},
			Condiments:      map[CondimentItem]float64{CondKetchupPackets: 10},
			Utensils:        map[UtensilItem]float64{UtensilServingTongs: 1},
			ServingsPerUnit: 10,
		},
	},
	"steakburgers_10": {
		label: "Steakburgers (10 pcs)", group: "Burgers & Chicken",
		deltas: sandwichBundle(10),
	},
	"crispy_chx_sand_10": {
		label: "Crispy Chicken Sandwiches (10 pcs)", group: "Burgers & Chicken",
		deltas: sandwichBundle(0),
	},
	"grilled_chx_sand_10": {
		label: "Grilled Chicken Sandwiches (10 pcs)", group: "Burgers & Chicken",
		deltas: sandwichBundle(0),
	},
	"coffee_box": {
		label: "Coffee Box (96 oz)", group: "Beverages",
		deltas: Deltas{
			Food:      map[FoodItem]float64{FoodCoffeePacks: 2},
			Packaging: map[PackagingItem]float64{PackCoffeeBoxes: 1},
			Guestware: map[GuestwareItem]float64{
				GuestHotCups:  12,
				GuestLids:     12,
				GuestStirrers: 12,
			},
		},
	},
	"cold_bag": {
		label: "Cold Beverage Bag (128 oz)", group: "Beverages",
		deltas: Deltas{
			Packaging: map[PackagingItem]float64{PackBeveragePouches: 1},
			Guestware: map[GuestwareItem]float64{
				GuestColdCups: 12,
				GuestLids:     12,
				GuestStraws:   12,
			},
		},
	},
}

// MenuItem is one orderable choice for menu listings.
type MenuItem struct {
	ItemID string
	Label  string
	Group  string
}

func Items() []MenuItem {
	items := make([]MenuItem, 0, len(comboTiers)+len(alaCarteItems))
	for id, tier := range comboTiers {
		items = append(items, MenuItem{ItemID: id, Label: tier.label, Group: "Breakfast Combo Boxes"})
	}
	for id, it := range alaCarteItems {
		items = append(items, MenuItem{ItemID: id, Label: it.label, Group: it.group})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Group != items[j].Group {
			return items[i].Group < items[j].Group
		}
		return items[i].ItemID < items[j].ItemID
	})
	return items
}

// Label renders the human-facing line label for a selection, modifiers
// included.
func Label(key model.SelectionKey) (string, error) {
	k := key.Normalized()
	switch k.Kind {
	case model.KindCombo:
		tier, ok := comboTiers[k.ItemID]
		if !ok {
			return "", &ConfigurationError{Key: key, Reason: "unknown combo tier"}
		}
		return fmt.Sprintf("%s | %s | %s", tier.label, titleCase(k.Protein), titleCase(k.Griddle)), nil
	case model.KindAlaCarte:
		it, ok := alaCarteItems[k.ItemID]
		if !ok {
			return "", &ConfigurationError{Key: key, Reason: "unknown a la carte item"}
		}
		if k.ItemID == "cold_bag" {
			return fmt.Sprintf("%s | %s", it.label, titleCase(k.BeverageType)), nil
		}
		return it.label, nil
	default:
		return "", &ConfigurationError{Key: key, Reason: "unknown line kind"}
	}
}

// ResolveDeltas resolves a selection to its per-unit recipe, branching on
// protein and griddle choice for combos and on flavor for cold bags.
// Griddle routing is exclusive: pancakes and french toast never both
// contribute, and powdered sugar rides only with french toast.
func ResolveDeltas(key model.SelectionKey) (Deltas, error) {
	k := key.Normalized()
	switch k.Kind {
	case model.KindCombo:
		return resolveCombo(key, k)
	case model.KindAlaCarte:
		return resolveAlaCarte(key, k)
	default:
		return Deltas{}, &ConfigurationError{Key: key, Reason: "unknown line kind"}
	}
}

// Validate confirms the selection resolves without materializing deltas.
func Validate(key model.SelectionKey) error {
	_, err := ResolveDeltas(key)
	return err
}

func resolveCombo(orig model.SelectionKey, k model.SelectionKey) (Deltas, error) {
	tier, ok := comboTiers[k.ItemID]
	if !ok {
		return Deltas{}, &ConfigurationError{Key: orig, Reason: "unknown combo tier"}
	}
	proteinBucket, ok := proteinBuckets[k.Protein]
	if !ok {
		return Deltas{}, &ConfigurationError{Key: orig, Reason: fmt.Sprintf("unknown protein %q", orig.Protein)}
	}

	d := Deltas{
		Food: map[FoodItem]float64{
			FoodEggsOz:    tier.eggsOz,
			FoodRedPotsOz: tier.redPotsOz,
			proteinBucket: tier.proteinPcs,
		},
		Packaging: map[PackagingItem]float64{
			PackHalfPans:   tier.halfPansEggs + tier.halfPansRedPots,
			PackLargeBases: tier.largeBasesProtein,
		},
		Condiments: map[CondimentItem]float64{
			CondButterPackets:  tier.butterPackets,
			CondSyrupPackets:   tier.syrupPackets,
			CondKetchupPackets: tier.ketchupPackets,
		},
		Guestware: map[GuestwareItem]float64{
			GuestPlates: tier.plates,
		},
		Utensils: map[UtensilItem]float64{
			UtensilServingForks: tier.servingForks,
			UtensilServingTongs: tier.servingTongs,
		},
		ServingsPerUnit: tier.servings,
	}

	switch k.Griddle {
	case GriddlePancakes:
		d.Food[FoodPancakePcs] = tier.pancakePcs
		d.Packaging[PackHalfPans] += tier.halfPansPancakes
	case GriddleFrenchToast:
		d.Food[FoodFrenchToastSlices] = tier.ftSlices
		d.Packaging[PackHalfPans] += tier.halfPansFT
		d.Condiments[CondPowderedSugarCups] = tier.powderedSugarCups
	default:
		return Deltas{}, &ConfigurationError{Key: orig, Reason: fmt.Sprintf("unknown griddle choice %q", orig.Griddle)}
	}

	return d, nil
}

func resolveAlaCarte(orig model.SelectionKey, k model.SelectionKey) (Deltas, error) {
	it, ok := alaCarteItems[k.ItemID]
	if !ok {
		return Deltas{}, &ConfigurationError{Key: orig, Reason: "unknown a la carte item"}
	}
	d := cloneDeltas(it.deltas)

	if k.ItemID == "cold_bag" {
		if !validColdBevType(k.BeverageType) {
			return Deltas{}, &ConfigurationError{Key: orig, Reason: fmt.Sprintf("unknown cold beverage type %q", orig.BeverageType)}
		}
		if d.Food == nil {
			d.Food = make(map[FoodItem]float64)
		}
		d.Food[ColdBagFood(k.BeverageType)] = 1
	}

	return d, nil
}

func validColdBevType(flavor string) bool {
	for _, f := range ColdBevTypes {
		if f == flavor {
			return true
		}
	}
	return false
}

func cloneDeltas(d Deltas) Deltas {
	out := Deltas{ServingsPerUnit: d.ServingsPerUnit}
	if d.Food != nil {
		out.Food = make(map[FoodItem]float64, len(d.Food))
		for k, v := range d.Food {
			out.Food[k] = v
		}
	}
	if d.Packaging != nil {
		out.Packaging = make(map[PackagingItem]float64, len(d.Packaging))
		for k, v := range d.Packaging {
			out.Packaging[k] = v
		}
	}
	if d.Condiments != nil {
		out.Condiments = make(map[CondimentItem]float64, len(d.Condiments))
		for k, v := range d.Condiments {
			out.Condiments[k] = v
		}
	}
	if d.Guestware != nil {
		out.Guestware = make(map[GuestwareItem]float64, len(d.Guestware))
		for k, v := range d.Guestware {
			out.Guestware[k] = v
		}
	}
	if d.Utensils != nil {
		out.Utensils = make(map[UtensilItem]float64, len(d.Utensils))
		for k, v := range d.Utensils {
			out.Utensils[k] = v
		}
	}
	return out
}

func titleCase(s string) string {
	out := []rune(s)
	upper := true
	for i, r := range out {
		if upper && r >= 'a' && r <= 'z' {
			out[i] = r - ('a' - 'A')
		}
		upper = r == ' '
	}
	return string(out)
}
