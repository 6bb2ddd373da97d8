package catalog

import "strings"

// Resource identifiers are closed, typed sets per accumulation category so
// report rendering can switch exhaustively instead of probing loose strings.

type FoodItem string

const (
	FoodEggsOz            FoodItem = "eggs_oz"
	FoodRedPotsOz         FoodItem = "red_pots_oz"
	FoodBaconPcs          FoodItem = "bacon_pcs"
	FoodSausagePcs        FoodItem = "sausage_pcs"
	FoodHamPcs            FoodItem = "ham_pcs"
	FoodPancakePcs        FoodItem = "pancakes_pcs"
	FoodFrenchToastSlices FoodItem = "ft_slices"
	FoodChickenStripsPcs  FoodItem = "chix_strips_pcs"
	FoodFriesOz           FoodItem = "fries_oz"
	FoodOnionRings        FoodItem = "onion_rings_rings"
	FoodBurgerPatties     FoodItem = "steakburgers_pcs"
	FoodBurgerBuns        FoodItem = "buns_ct"
	FoodTomatoSlices      FoodItem = "tomato_slices"
	FoodOnionSlices       FoodItem = "onion_slices"
	FoodLettuceLeaves     FoodItem = "lettuce_leaves"
	FoodPickleChips       FoodItem = "pickle_chips"
	FoodCoffeePacks       FoodItem = "coffee_packs"
)

const coldBagPrefix = "cold_bags::"

// ColdBagFood keys cold beverage bags per flavor so inventory projection
// can count bottles per juice type.
func ColdBagFood(flavor string) FoodItem {
	return FoodItem(coldBagPrefix + strings.ToLower(strings.TrimSpace(flavor)))
}

// ColdBagFlavor reports whether the food key is a per-flavor cold bag
// count and, if so, which flavor.
func ColdBagFlavor(f FoodItem) (string, bool) {
	s := string(f)
	if !strings.HasPrefix(s, coldBagPrefix) {
		return "", false
	}
	return strings.TrimPrefix(s, coldBagPrefix), true
}

type PackagingItem string

const (
	PackHalfPans        PackagingItem = "half_pans"
	PackLargeBases      PackagingItem = "large_bases"
	PackSoupCups        PackagingItem = "soup_cups"
	PackCoffeeBoxes     PackagingItem = "coffee_boxes"
	PackBeveragePouches PackagingItem = "beverage_pouches"
)

type CondimentItem string

const (
	CondButterPackets     CondimentItem = "butter_ct"
	CondSyrupPackets      CondimentItem = "syrup_ct"
	CondKetchupPackets    CondimentItem = "ketchup_ct"
	CondMayoPackets       CondimentItem = "mayo_ct"
	CondMustardPackets    CondimentItem = "mustard_ct"
	CondPowderedSugarCups CondimentItem = "powdered_sugar_cups_2oz"
)

type GuestwareItem string

const (
	GuestPlates      GuestwareItem = "plates"
	GuestNapkins     GuestwareItem = "napkins"
	GuestCutlerySets GuestwareItem = "wrapped_cutlery_sets"
	GuestColdCups    GuestwareItem = "cold_cups"
	GuestHotCups     GuestwareItem = "hot_cups"
	GuestLids        GuestwareItem = "cup_lids"
	GuestStraws      GuestwareItem = "straws"
	GuestStirrers    GuestwareItem = "stirrers"
)

type UtensilItem string

const (
	UtensilServingForks  UtensilItem = "serving_forks"
	UtensilServingTongs  UtensilItem = "serving_tongs"
	UtensilServingSpoons UtensilItem = "spoons"
)

// Deltas is the per-unit resource recipe of one resolved catalog entry:
// what one unit at quantity 1 consumes in each category.
type Deltas struct {
	Food       map[FoodItem]float64
	Packaging  map[PackagingItem]float64
	Condiments map[CondimentItem]float64
	Guestware  map[GuestwareItem]float64
	Utensils   map[UtensilItem]float64

	// ServingsPerUnit sizes guest disposables; zero for beverages, which
	// serve but do not count as meal servings.
	ServingsPerUnit int
}
