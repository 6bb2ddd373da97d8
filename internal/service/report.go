package service

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/LumpsRGood/cateringcalulator/internal/catalog"
	"github.com/LumpsRGood/cateringcalulator/internal/engine"
	"github.com/LumpsRGood/cateringcalulator/internal/model"
)

// CountRow is one labeled integer total for the table sections.
type CountRow struct {
	Name  string
	Count int
}

// Report is the full prep-sheet output: everything the kitchen, the
// packer, and the manager need for one order, precomputed as plain data
// so renderers (text, CSV, JSON) make no decisions.
type Report struct {
	Meta          model.OrderMeta
	Lines         []model.OrderLine
	TotalServings int
	Advice        engine.UtensilAdvice

	Totals engine.Totals

	PrepLines  []string
	Packaging  []CountRow
	Condiments []CountRow
	Serveware  []CountRow
	Plating    []string
	Inventory  []engine.ImpactRow
}

// BuildReport runs the whole pipeline over the stored draft: load lines
// and meta, aggregate, apply guest-request derivations, project inventory,
// and phrase the prep sections.
func BuildReport(db *sql.DB) (Report, error) {
	lines, err := ListLines(db)
	if err != nil {
		return Report{}, err
	}
	meta, err := GetMeta(db)
	if err != nil {
		return Report{}, err
	}
	return buildReport(lines, meta)
}

func buildReport(lines []model.OrderLine, meta model.OrderMeta) (Report, error) {
	aggregated, err := engine.Aggregate(lines)
	if err != nil {
		return Report{}, err
	}
	servings, err := engine.TotalServings(lines)
	if err != nil {
		return Report{}, err
	}
	totals := engine.ApplyGuestRequests(aggregated, servings, meta.Requests)

	r := Report{
		Meta:          meta,
		Lines:         lines,
		TotalServings: servings,
		Advice:        engine.AdviseUtensils(meta.Headcount, meta.UtensilSetsOrdered),
		Totals:        totals,
		PrepLines:     prepLines(totals),
		Packaging:     packagingRows(totals),
		Condiments:    condimentRows(totals),
		Serveware:     servewareRows(totals, meta),
		Plating:       platingLines(totals),
		Inventory:     engine.InventoryImpact(totals),
	}
	return r, nil
}

func prepLines(t engine.Totals) []string {
	var out []string

	if eggsOz := t.Food[catalog.FoodEggsOz]; eggsOz > 0 {
		lbs := engine.OuncesToPounds(eggsOz)
		quarts := engine.FriendlyRoundUp(lbs*engine.EggsQuartsPerLb, 0.5, 0.05)
		out = append(out, fmt.Sprintf("Scrambled Eggs: %s qt (%.1f of a 4-qt Cambro)", fmtNum(quarts), quarts/4.0))
	}
	if rpOz := t.Food[catalog.FoodRedPotsOz]; rpOz > 0 {
		spec := catalog.Packs["red_pots"]
		out = append(out, engine.BagOverflowLine(rpOz, spec.LbsPerBag*16, catalog.Packs["fries"].OzPerPortion, "Red Pots"))
	}
	if bacon := t.Food[catalog.FoodBaconPcs]; bacon > 0 {
		lbs := engine.FriendlyRoundUp(bacon/catalog.BaconSlicesPerLb, 0.5, 0.05)
		out = append(out, fmt.Sprintf("Bacon: %d slices (%s lb)", int(bacon), fmtNum(lbs)))
	}
	if sausage := t.Food[catalog.FoodSausagePcs]; sausage > 0 {
		lbs := engine.FriendlyRoundUp(sausage/catalog.SausageLinksPerLb, 0.5, 0.05)
		out = append(out, fmt.Sprintf("Pork Sausage Links: %d links (%s lb)", int(sausage), fmtNum(lbs)))
	}
	if ham := t.Food[catalog.FoodHamPcs]; ham > 0 {
		lbs := engine.FriendlyRoundUp(engine.OuncesToPounds(ham*catalog.HamOzPerPiece), 0.5, 0.05)
		out = append(out, fmt.Sprintf("Sampler Ham: %d pcs (%s lb)", int(ham), fmtNum(lbs)))
	}
	if pancakes := t.Food[catalog.FoodPancakePcs]; pancakes > 0 {
		out = append(out, fmt.Sprintf("Buttermilk Pancakes: %d pancakes", int(pancakes)))
	}
	if ft := t.Food[catalog.FoodFrenchToastSlices]; ft > 0 {
		out = append(out, fmt.Sprintf("French Toast: %d slices", int(ft)))
	}
	if strips := t.Food[catalog.FoodChickenStripsPcs]; strips > 0 {
		lbs := engine.FriendlyRoundUp(engine.OuncesToPounds(strips*catalog.Packs["chicken_strips"].OzPerPiece), 0.5, 0.05)
		out = append(out, fmt.Sprintf("Chicken Strips: %d pcs (%s lb)", int(strips), fmtNum(lbs)))
	}
	if fries := t.Food[catalog.FoodFriesOz]; fries > 0 {
		spec := catalog.Packs["fries"]
		out = append(out, engine.BagOverflowLine(fries, spec.LbsPerBag*16, spec.OzPerPortion, "French Fries"))
	}
	if rings := t.Food[catalog.FoodOnionRings]; rings > 0 {
		out = append(out, fmt.Sprintf("Onion Rings: %d rings", int(rings)))
	}
	if patties := t.Food[catalog.FoodBurgerPatties]; patties > 0 {
		out = append(out, fmt.Sprintf("Steakburgers: %d patties", int(patties)))
	}
	if buns := t.Food[catalog.FoodBurgerBuns]; buns > 0 {
		out = append(out, fmt.Sprintf("Burger Buns: %d buns", int(buns)))
	}
	out = append(out, toppingLines(t)...)
	if cups := t.Condiments[catalog.CondPowderedSugarCups]; cups > 0 {
		out = append(out, fmt.Sprintf("Powdered Sugar: %d (2 oz) cups", int(cups)))
	}
	if boxes := t.Packaging[catalog.PackCoffeeBoxes]; boxes > 0 {
		packs := int(t.Food[catalog.FoodCoffeePacks])
		out = append(out, fmt.Sprintf("Coffee: %d box(es) (brew packs: %d)", int(boxes), packs))
	}
	out = append(out, coldBagLines(t)...)

	return out
}

func toppingLines(t engine.Totals) []string {
	toppings := []struct {
		key   catalog.FoodItem
		label string
		unit  string
	}{
		{catalog.FoodTomatoSlices, "Tomato", "slices"},
		{catalog.FoodOnionSlices, "Onion", "slices"},
		{catalog.FoodLettuceLeaves, "Lettuce", "leaves"},
		{catalog.FoodPickleChips, "Pickles", "chips"},
	}
	var out []string
	for _, tp := range toppings {
		if v := t.Food[tp.key]; v > 0 {
			out = append(out, fmt.Sprintf("%s: %d %s", tp.label, int(v), tp.unit))
		}
	}
	return out
}

func coldBagLines(t engine.Totals) []string {
	var out []string
	for _, row := range flavorCounts(t) {
		out = append(out, fmt.Sprintf("Cold Beverage Bag: %d bag(s) | %s (%d oz total)",
			row.Count, row.Name, row.Count*int(catalog.ColdBevBagOz)))
	}
	return out
}

type flavorCount struct {
	Name  string
	Count int
}

func flavorCounts(t engine.Totals) []flavorCount {
	var out []flavorCount
	for _, flavor := range catalog.ColdBevTypes {
		if v := t.Food[catalog.ColdBagFood(flavor)]; v > 0 {
			out = append(out, flavorCount{Name: titleFlavor(flavor), Count: int(v)})
		}
	}
	return out
}

func packagingRows(t engine.Totals) []CountRow {
	// Anything "pan" is aluminum; anything "base" is the plastic base.
	labels := []struct {
		key   catalog.PackagingItem
		label string
	}{
		{catalog.PackHalfPans, "Aluminum Half Pans"},
		{catalog.PackLargeBases, "Plastic Large Bases"},
		{catalog.PackSoupCups, "Soup Cups"},
		{catalog.PackCoffeeBoxes, "Coffee Box Containers"},
		{catalog.PackBeveragePouches, "Cold Beverage Pouches"},
	}
	var rows []CountRow
	for _, l := range labels {
		if v := t.Packaging[l.key]; v > 0 {
			rows = append(rows, CountRow{Name: l.label, Count: int(v)})
		}
	}
	return rows
}

func condimentRows(t engine.Totals) []CountRow {
	labels := []struct {
		key   catalog.CondimentItem
		label string
	}{
		{catalog.CondButterPackets, "Butter Packets"},
		{catalog.CondSyrupPackets, "Syrup Packets"},
		{catalog.CondKetchupPackets, "Ketchup Packets"},
		{catalog.CondMayoPackets, "Mayo Packets"},
		{catalog.CondMustardPackets, "Mustard Packets"},
		{catalog.CondPowderedSugarCups, "Powdered Sugar (2 oz cups)"},
	}
	var rows []CountRow
	for _, l := range labels {
		if v := t.Condiments[l.key]; v > 0 {
			rows = append(rows, CountRow{Name: l.label, Count: int(v)})
		}
	}
	return rows
}

func servewareRows(t engine.Totals, meta model.OrderMeta) []CountRow {
	guestLabels := []struct {
		key   catalog.GuestwareItem
		label string
	}{
		{catalog.GuestPlates, "Plates"},
		{catalog.GuestNapkins, "Napkins"},
		{catalog.GuestCutlerySets, "Wrapped Cutlery Sets"},
		{catalog.GuestColdCups, "Cold Cups"},
		{catalog.GuestHotCups, "Hot Cups"},
		{catalog.GuestLids, "Cup Lids"},
		{catalog.GuestStraws, "Straws"},
		{catalog.GuestStirrers, "Stirrers"},
	}
	utensilLabels := []struct {
		key   catalog.UtensilItem
		label string
	}{
		{catalog.UtensilServingTongs, "Serving Tongs"},
		{catalog.UtensilServingForks, "Serving Forks"},
		{catalog.UtensilServingSpoons, "Spoons"},
	}

	var rows []CountRow
	for _, l := range guestLabels {
		if v := t.Guestware[l.key]; v > 0 {
			rows = append(rows, CountRow{Name: l.label, Count: int(v)})
		}
	}
	for _, l := range utensilLabels {
		if v := t.Utensils[l.key]; v > 0 {
			rows = append(rows, CountRow{Name: l.label, Count: int(v)})
		}
	}
	if meta.UtensilSetsOrdered > 0 {
		rows = append(rows, CountRow{Name: "Utensil Sets (ordered)", Count: meta.UtensilSetsOrdered})
	}
	if meta.Headcount > 0 {
		rows = append(rows, CountRow{Name: "Utensil Sets (recommended)", Count: meta.Headcount})
	}
	return rows
}

func platingLines(t engine.Totals) []string {
	var out []string
	if ft := t.Food[catalog.FoodFrenchToastSlices]; ft > 0 {
		// Slices are the kitchen unit; each slice plates as two triangles.
		out = append(out, fmt.Sprintf("French Toast: %d triangles (from %d slices)", int(ft)*2, int(ft)))
	}
	if pancakes := t.Food[catalog.FoodPancakePcs]; pancakes > 0 {
		out = append(out, fmt.Sprintf("Buttermilk Pancakes: %d pancakes", int(pancakes)))
	}
	if rings := t.Food[catalog.FoodOnionRings]; rings > 0 {
		out = append(out, fmt.Sprintf("Onion Rings: %d rings", int(rings)))
	}
	if patties := t.Food[catalog.FoodBurgerPatties]; patties > 0 {
		out = append(out, fmt.Sprintf("Steakburgers: %d assembled", int(patties)))
	}
	return out
}

func titleFlavor(flavor string) string {
	out := []byte(flavor)
	upper := true
	for i, c := range out {
		if upper && c >= 'a' && c <= 'z' {
			out[i] = c - ('a' - 'A')
		}
		upper = c == ' '
	}
	return string(out)
}

func fmtNum(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
