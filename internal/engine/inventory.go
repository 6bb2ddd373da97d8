package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/LumpsRGood/cateringcalulator/internal/catalog"
)

// ImpactRow is one purchasing instruction for the manager: how hard this
// order leans on a tracked SKU. Derived strictly from totals plus the
// pack-size table; never feeds back into totals.
type ImpactRow struct {
	Item   string
	SKU    string
	Impact string
}

// InventoryImpact projects aggregated totals into purchasable-unit counts
// and fractional bag/case estimates. Read-only over its input, so calling
// it twice on the same totals yields identical rows.
func InventoryImpact(totals Totals) []ImpactRow {
	var rows []ImpactRow
	add := func(item, sku, impact string) {
		rows = append(rows, ImpactRow{Item: item, SKU: sku, Impact: impact})
	}

	if eggsOz := totals.Food[catalog.FoodEggsOz]; eggsOz > 0 {
		spec := catalog.Packs["eggs"]
		lbs := OuncesToPounds(eggsOz)
		quarts := FriendlyRoundUp(lbs*EggsQuartsPerLb, 0.5, 0.05)
		bagFraction := lbs / spec.LbsPerUnit
		caseFraction := lbs / (spec.UnitsPerCase * spec.LbsPerUnit)
		add("Scrambled Eggs", spec.SKU, fmt.Sprintf("%s qt (~ %.2f bag, %.2f case)", fmtG(quarts), bagFraction, caseFraction))
	}

	if rpOz := totals.Food[catalog.FoodRedPotsOz]; rpOz > 0 {
		spec := catalog.Packs["red_pots"]
		bagOz := spec.LbsPerBag * 16
		fullBags := int(rpOz / bagOz)
		remOz := rpOz - float64(fullBags)*bagOz
		if fullBags == 0 {
			add("Red Pots", spec.SKU, fmt.Sprintf("%d oz total", int(rpOz)))
		} else {
			add("Red Pots", spec.SKU, fmt.Sprintf("Open %d bag(s) + %d oz", fullBags, int(remOz)))
		}
	}

	if baconPcs := totals.Food[catalog.FoodBaconPcs]; baconPcs > 0 {
		spec := catalog.Packs["bacon"]
		lbs := baconPcs / catalog.BaconSlicesPerLb
		lbsR := FriendlyRoundUp(lbs, 0.5, 0.05)
		caseFraction := lbs / spec.LbsPerCase
		add("Bacon", spec.SKU, fmt.Sprintf("%s lb (~ %.2f case)", fmtG(lbsR), caseFraction))
	}

	if sausagePcs := totals.Food[catalog.FoodSausagePcs]; sausagePcs > 0 {
		spec := catalog.Packs["sausage"]
		lbs := sausagePcs / catalog.SausageLinksPerLb
		lbsR := FriendlyRoundUp(lbs, 0.5, 0.05)
		bagFraction := lbs / spec.LbsPerBag
		add("Pork Sausage Links", spec.SKU, fmt.Sprintf("%s lb (~ %.2f bag)", fmtG(lbsR), bagFraction))
	}

	if hamPcs := totals.Food[catalog.FoodHamPcs]; hamPcs > 0 {
		spec := catalog.Packs["ham"]
		lbs := OuncesToPounds(hamPcs * catalog.HamOzPerPiece)
		lbsR := FriendlyRoundUp(lbs, 0.5, 0.05)
		packFraction := lbs / spec.LbsPerPack
		add("Sampler Ham", spec.SKU, fmt.Sprintf("%s lb (~ %.2f pack)", fmtG(lbsR), packFraction))
	}

	if pancakes := totals.Food[catalog.FoodPancakePcs]; pancakes > 0 {
		spec := catalog.Packs["pancake_mix"]
		lbsMix := pancakes / catalog.PancakesPerLbMix
		lbsMixR := FriendlyRoundUp(lbsMix, 0.5, 0.05)
		bagFraction := lbsMix / spec.LbsPerBag
		add("Pancake Mix", spec.SKU, fmt.Sprintf("%s lb mix (~ %.2f bag)", fmtG(lbsMixR), bagFraction))
	}

	if ftSlices := totals.Food[catalog.FoodFrenchToastSlices]; ftSlices > 0 {
		spec := catalog.Packs["ft_bread"]
		loaves := int(math.Ceil(ftSlices/spec.SlicesPerLoaf - eps))
		add("French Toast Bread", spec.SKU, fmt.Sprintf("%d slices -> %d loaf/loaves", int(ftSlices), loaves))
	}

	if psCups := totals.Condiments[catalog.CondPowderedSugarCups]; psCups > 0 {
		spec := catalog.Packs["powdered_sugar"]
		cupsPerBag := (spec.LbsPerBag * 16) / spec.OzPerCup
		bags := int(math.Ceil(psCups/cupsPerBag - eps))
		add("Powdered Sugar", spec.SKU, fmt.Sprintf("%d cups (2 oz) -> %d bag(s)", int(psCups), bags))
	}

	if strips := totals.Food[catalog.FoodChickenStripsPcs]; strips > 0 {
		spec := catalog.Packs["chicken_strips"]
		lbsR := FriendlyRoundUp(OuncesToPounds(strips*spec.OzPerPiece), 0.5, 0.05)
		full, leftover := ContainerCountFromPieces(strips, spec.OzPerPiece, spec.LbsPerBag)
		if leftover == 0 {
			add("Chicken Strips", spec.SKU, fmt.Sprintf("%s lb -> %d bag(s)", fmtG(lbsR), full))
		} else {
			add("Chicken Strips", spec.SKU, fmt.Sprintf("%s lb -> %d full bag(s) + %d pcs", fmtG(lbsR), full, leftover))
		}
	}

	if friesOz := totals.Food[catalog.FoodFriesOz]; friesOz > 0 {
		spec := catalog.Packs["fries"]
		bagOz := spec.LbsPerBag * 16
		fullBags := int(friesOz / bagOz)
		remOz := friesOz - float64(fullBags)*bagOz
		if fullBags == 0 {
			add("French Fries", spec.SKU, fmt.Sprintf("%d oz total", int(friesOz)))
		} else {
			add("French Fries", spec.SKU, fmt.Sprintf("Open %d bag(s) + %d oz", fullBags, int(remOz)))
		}
	}

	if rings := totals.Food[catalog.FoodOnionRings]; rings > 0 {
		spec := catalog.Packs["onion_rings"]
		ringsPerBag := int((spec.LbsPerBag * 16) / spec.OzPerRing)
		fullBags := int(rings) / ringsPerBag
		rem := int(rings) - fullBags*ringsPerBag
		if fullBags == 0 {
			add("Onion Rings", spec.SKU, fmt.Sprintf("%d rings total", int(rings)))
		} else {
			add("Onion Rings", spec.SKU, fmt.Sprintf("Open %d bag(s) + %d rings", fullBags, rem))
		}
	}

	if patties := totals.Food[catalog.FoodBurgerPatties]; patties > 0 {
		spec := catalog.Packs["steakburgers"]
		caseFraction := patties / spec.PattiesPerCase
		add("Steakburger Patties", spec.SKU, fmt.Sprintf("%d patties (~ %.2f case)", int(patties), caseFraction))
	}

	if buns := totals.Food[catalog.FoodBurgerBuns]; buns > 0 {
		spec := catalog.Packs["burger_buns"]
		caseFraction := buns / spec.BunsPerCase
		add("Burger Buns", spec.SKU, fmt.Sprintf("%d buns (~ %.2f case)", int(buns), caseFraction))
	}

	packetRows := []struct {
		item string
		key  catalog.CondimentItem
		sku  string
	}{
		{"Mayo Packets", catalog.CondMayoPackets, catalog.Packs["mayo_packets"].SKU},
		{"Ketchup Packets", catalog.CondKetchupPackets, catalog.Packs["ketchup_packets"].SKU},
		{"Mustard Packets", catalog.CondMustardPackets, catalog.Packs["mustard_packets"].SKU},
		{"Syrup Packets", catalog.CondSyrupPackets, catalog.Packs["syrup_packets"].SKU},
		{"Butter Packets", catalog.CondButterPackets, catalog.Packs["butter_packets"].SKU},
	}
	for _, p := range packetRows {
		if ct := totals.Condiments[p.key]; ct > 0 {
			add(p.item, p.sku, fmt.Sprintf("%d packets", int(ct)))
		}
	}

	if packs := totals.Food[catalog.FoodCoffeePacks]; packs > 0 {
		spec := catalog.Packs["coffee_pack"]
		caseFraction := packs / spec.PacksPerCase
		add("Coffee Packs", spec.SKU, fmt.Sprintf("%d packs (~ %.2f case)", int(packs), caseFraction))
	}

	rows = append(rows, coldBagRows(totals)...)
	return rows
}

// coldBagRows projects per-flavor cold bag counts into juice bottles for
// the flavors the store stocks by the bottle. Flavors are sorted so the
// projection is deterministic.
func coldBagRows(totals Totals) []ImpactRow {
	type bag struct {
		flavor string
		count  int
	}
	var bags []bag
	for k, v := range totals.Food {
		if flavor, ok := catalog.ColdBagFlavor(k); ok && v > 0 {
			bags = append(bags, bag{flavor: flavor, count: int(v)})
		}
	}
	sort.Slice(bags, func(i, j int) bool { return bags[i].flavor < bags[j].flavor })

	var rows []ImpactRow
	for _, b := range bags {
		ozNeeded := float64(b.count) * catalog.ColdBevBagOz
		switch b.flavor {
		case "orange juice":
			spec := catalog.Packs["oj"]
			bottles := int(math.Ceil(ozNeeded/spec.OzPerBottle - eps))
			rows = append(rows, ImpactRow{
				Item:   "Orange Juice for Cold Bags",
				SKU:    spec.SKU,
				Impact: fmt.Sprintf("%d bag(s) -> %d bottle(s)", b.count, bottles),
			})
		case "apple juice":
			spec := catalog.Packs["aj"]
			bottles := int(math.Ceil(ozNeeded/spec.OzPerBottle - eps))
			rows = append(rows, ImpactRow{
				Item:   "Apple Juice for Cold Bags",
				SKU:    spec.SKU,
				Impact: fmt.Sprintf("%d bag(s) -> %d bottle(s)", b.count, bottles),
			})
		}
	}
	return rows
}
