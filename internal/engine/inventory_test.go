package engine_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/LumpsRGood/cateringcalulator/internal/catalog"
	"github.com/LumpsRGood/cateringcalulator/internal/engine"
	"github.com/LumpsRGood/cateringcalulator/internal/model"
)

func impactFor(t *testing.T, rows []engine.ImpactRow, item string) engine.ImpactRow {
	t.Helper()
	for _, row := range rows {
		if row.Item == item {
			return row
		}
	}
	t.Fatalf("no inventory row for %q in %v", item, rows)
	return engine.ImpactRow{}
}

func TestInventoryImpactEggsAndPots(t *testing.T) {
	t.Parallel()
	totals, err := engine.Aggregate([]model.OrderLine{
		comboLine(catalog.TierSmall, catalog.ProteinBacon, catalog.GriddlePancakes, 2),
	})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	rows := engine.InventoryImpact(totals)

	eggs := impactFor(t, rows, "Scrambled Eggs")
	if eggs.SKU != "775616" {
		t.Fatalf("expected eggs SKU 775616, got %s", eggs.SKU)
	}
	// 80 oz = 5 lb -> 2.325 qt -> friendly 2.5 qt.
	if !strings.Contains(eggs.Impact, "2.5 qt") {
		t.Fatalf("expected 2.5 qt for 80 oz eggs, got %q", eggs.Impact)
	}

	// 120 oz of pots against 96 oz bags: one open bag plus 24 oz.
	pots := impactFor(t, rows, "Red Pots")
	if !strings.Contains(pots.Impact, "Open 1 bag(s) + 24 oz") {
		t.Fatalf("expected open-bag phrasing, got %q", pots.Impact)
	}

	bacon := impactFor(t, rows, "Bacon")
	// 40 slices / 9 per lb = 4.44 lb -> friendly 4.5 lb.
	if !strings.Contains(bacon.Impact, "4.5 lb") {
		t.Fatalf("expected 4.5 lb bacon, got %q", bacon.Impact)
	}
}

func TestInventoryImpactColdBagBottles(t *testing.T) {
	t.Parallel()
	totals, err := engine.Aggregate([]model.OrderLine{
		itemLine("cold_bag", "orange juice", 2),
		itemLine("cold_bag", "iced tea", 1),
	})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	rows := engine.InventoryImpact(totals)

	// 2 bags = 256 oz / 59 oz bottles -> 5 bottles.
	oj := impactFor(t, rows, "Orange Juice for Cold Bags")
	if !strings.Contains(oj.Impact, "2 bag(s) -> 5 bottle(s)") {
		t.Fatalf("expected 5 OJ bottles, got %q", oj.Impact)
	}

	// Iced tea is not stocked by the bottle; no row.
	for _, row := range rows {
		if strings.Contains(row.Item, "Iced Tea") {
			t.Fatalf("unexpected iced tea row: %+v", row)
		}
	}
}

func TestInventoryImpactFrenchToastLoaves(t *testing.T) {
	t.Parallel()
	totals, err := engine.Aggregate([]model.OrderLine{
		comboLine(catalog.TierMedium, catalog.ProteinHam, catalog.GriddleFrenchToast, 1),
	})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	rows := engine.InventoryImpact(totals)

	// 20 slices at 9 per loaf -> 3 loaves.
	bread := impactFor(t, rows, "French Toast Bread")
	if !strings.Contains(bread.Impact, "20 slices -> 3 loaf/loaves") {
		t.Fatalf("expected 3 loaves for 20 slices, got %q", bread.Impact)
	}

	sugar := impactFor(t, rows, "Powdered Sugar")
	if !strings.Contains(sugar.Impact, "2 cups (2 oz) -> 1 bag(s)") {
		t.Fatalf("expected 1 bag of powdered sugar, got %q", sugar.Impact)
	}
}

func TestInventoryImpactChickenStripBags(t *testing.T) {
	t.Parallel()
	totals, err := engine.Aggregate([]model.OrderLine{itemLine("chix_strips_40", "", 1)})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	rows := engine.InventoryImpact(totals)

	// 40 strips at 3 oz = 7.5 lb against 5 lb bags: 1 full bag + 14 pcs.
	strips := impactFor(t, rows, "Chicken Strips")
	if !strings.Contains(strips.Impact, "1 full bag(s) + 14 pcs") {
		t.Fatalf("expected bag split for 7.5 lb of strips, got %q", strips.Impact)
	}
}

func TestInventoryImpactIdempotent(t *testing.T) {
	t.Parallel()
	totals, err := engine.Aggregate([]model.OrderLine{
		comboLine(catalog.TierSmall, catalog.ProteinSausage, catalog.GriddlePancakes, 1),
		itemLine("steakburgers_10", "", 2),
		itemLine("coffee_box", "", 1),
		itemLine("cold_bag", "apple juice", 1),
	})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	first := engine.InventoryImpact(totals)
	second := engine.InventoryImpact(totals)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("inventory projection is not idempotent")
	}
}
