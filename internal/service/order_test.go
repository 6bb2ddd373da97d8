package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/LumpsRGood/cateringcalulator/internal/catalog"
	"github.com/LumpsRGood/cateringcalulator/internal/db"
	"github.com/LumpsRGood/cateringcalulator/internal/model"
	"github.com/LumpsRGood/cateringcalulator/internal/service"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	sqldb, err := db.Open(filepath.Join(t.TempDir(), "catering.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func comboInput(tier, protein, griddle string, qty int) service.AddLineInput {
	return service.AddLineInput{
		Key: model.SelectionKey{Kind: model.KindCombo, ItemID: tier, Protein: protein, Griddle: griddle},
		Qty: qty,
	}
}

func itemInput(itemID, beverage string, qty int) service.AddLineInput {
	return service.AddLineInput{
		Key: model.SelectionKey{Kind: model.KindAlaCarte, ItemID: itemID, BeverageType: beverage},
		Qty: qty,
	}
}

func TestAddOrMergeLineMergesEqualKeys(t *testing.T) {
	t.Parallel()
	sqldb := testDB(t)

	first, merged, err := service.AddOrMergeLine(sqldb, comboInput(catalog.TierSmall, catalog.ProteinBacon, catalog.GriddlePancakes, 3))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if merged {
		t.Fatalf("first add must not report a merge")
	}

	// Same selection spelled with different case merges into one line.
	second, merged, err := service.AddOrMergeLine(sqldb, comboInput("Small Combo Box", "Bacon", "Buttermilk Pancakes", 4))
	if err != nil {
		t.Fatalf("merge add: %v", err)
	}
	if !merged {
		t.Fatalf("expected a merge for an equal normalized key")
	}
	if second.ID != first.ID {
		t.Fatalf("merge must keep the existing line, got id %d vs %d", second.ID, first.ID)
	}
	if second.Qty != 7 {
		t.Fatalf("expected merged qty 7, got %d", second.Qty)
	}

	lines, err := service.ListLines(sqldb)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(lines))
	}
}

func TestAddOrMergeLineKeepsDistinctModifiersApart(t *testing.T) {
	t.Parallel()
	sqldb := testDB(t)

	if _, _, err := service.AddOrMergeLine(sqldb, comboInput(catalog.TierSmall, catalog.ProteinBacon, catalog.GriddlePancakes, 1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, _, err := service.AddOrMergeLine(sqldb, comboInput(catalog.TierSmall, catalog.ProteinBacon, catalog.GriddleFrenchToast, 1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, _, err := service.AddOrMergeLine(sqldb, itemInput("cold_bag", "orange juice", 1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, _, err := service.AddOrMergeLine(sqldb, itemInput("cold_bag", "apple juice", 1)); err != nil {
		t.Fatalf("add: %v", err)
	}

	lines, err := service.ListLines(sqldb)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lines) != 4 {
		t.Fatalf("expected 4 distinct lines, got %d", len(lines))
	}
}

func TestAddOrMergeLineRejectsBadInput(t *testing.T) {
	t.Parallel()
	sqldb := testDB(t)

	if _, _, err := service.AddOrMergeLine(sqldb, itemInput("pancakes_20", "", 0)); err == nil {
		t.Fatalf("expected error for zero quantity")
	}
	if _, _, err := service.AddOrMergeLine(sqldb, itemInput("mystery_item", "", 1)); err == nil {
		t.Fatalf("expected error for unknown item")
	}
	if _, _, err := service.AddOrMergeLine(sqldb, itemInput("cold_bag", "espresso", 1)); err == nil {
		t.Fatalf("expected error for unknown flavor")
	}

	lines, err := service.ListLines(sqldb)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("rejected adds must not persist lines, got %d", len(lines))
	}
}

func TestSetLineQty(t *testing.T) {
	t.Parallel()
	sqldb := testDB(t)

	line, _, err := service.AddOrMergeLine(sqldb, itemInput("fries_60oz", "", 2))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := service.SetLineQty(sqldb, line.ID, 5); err != nil {
		t.Fatalf("set qty: %v", err)
	}
	got, err := service.LineByID(sqldb, line.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Qty != 5 {
		t.Fatalf("expected qty 5, got %d", got.Qty)
	}

	if err := service.SetLineQty(sqldb, line.ID, 0); err == nil {
		t.Fatalf("expected error for qty 0")
	}
	if err := service.SetLineQty(sqldb, line.ID+100, 3); err == nil {
		t.Fatalf("expected error for missing line")
	}
}

func TestReplaceLineMergesIntoExisting(t *testing.T) {
	t.Parallel()
	sqldb := testDB(t)

	keep, _, err := service.AddOrMergeLine(sqldb, itemInput("steakburgers_10", "", 2))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	edit, _, err := service.AddOrMergeLine(sqldb, itemInput("fries_60oz", "", 3))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// Editing the fries line into steakburgers folds into the existing line.
	got, merged, err := service.ReplaceLine(sqldb, edit.ID, itemInput("steakburgers_10", "", 3))
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if !merged {
		t.Fatalf("expected the edit to merge with the existing line")
	}
	if got.ID != keep.ID || got.Qty != 5 {
		t.Fatalf("expected line %d with qty 5, got %d with qty %d", keep.ID, got.ID, got.Qty)
	}

	lines, err := service.ListLines(sqldb)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line after merge-edit, got %d", len(lines))
	}
}

func TestReplaceLineKeepsOriginalOnRejectedEdit(t *testing.T) {
	t.Parallel()
	sqldb := testDB(t)

	line, _, err := service.AddOrMergeLine(sqldb, itemInput("fries_60oz", "", 3))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	rejected := []service.AddLineInput{
		itemInput("mystery_item", "", 1),
		itemInput("cold_bag", "espresso", 1),
		itemInput("steakburgers_10", "", 0),
	}
	for _, in := range rejected {
		if _, _, err := service.ReplaceLine(sqldb, line.ID, in); err == nil {
			t.Fatalf("expected error replacing with %+v", in)
		}
	}

	// A rejected edit must leave the original line exactly as it was.
	lines, err := service.ListLines(sqldb)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected the original line to survive, got %d lines", len(lines))
	}
	if lines[0].ID != line.ID || lines[0].Qty != 3 || lines[0].Key.ItemID != "fries_60oz" {
		t.Fatalf("original line changed: %+v", lines[0])
	}
}

func TestLineTimestampsPopulated(t *testing.T) {
	t.Parallel()
	sqldb := testDB(t)

	line, _, err := service.AddOrMergeLine(sqldb, itemInput("pancakes_20", "", 1))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	got, err := service.LineByID(sqldb, line.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Fatalf("expected populated timestamps, got created %v updated %v", got.CreatedAt, got.UpdatedAt)
	}
}

func TestRemoveLineAndClearOrder(t *testing.T) {
	t.Parallel()
	sqldb := testDB(t)

	line, _, err := service.AddOrMergeLine(sqldb, itemInput("coffee_box", "", 1))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, _, err := service.AddOrMergeLine(sqldb, itemInput("pancakes_20", "", 1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := service.SetHeadcount(sqldb, 30); err != nil {
		t.Fatalf("set headcount: %v", err)
	}

	if err := service.RemoveLine(sqldb, line.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := service.RemoveLine(sqldb, line.ID); err == nil {
		t.Fatalf("expected error removing an already-removed line")
	}

	if err := service.ClearOrder(sqldb); err != nil {
		t.Fatalf("clear: %v", err)
	}
	lines, err := service.ListLines(sqldb)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty order after clear, got %d lines", len(lines))
	}
	meta, err := service.GetMeta(sqldb)
	if err != nil {
		t.Fatalf("meta: %v", err)
	}
	if meta.Headcount != 0 {
		t.Fatalf("clear must wipe order meta, got headcount %d", meta.Headcount)
	}
}

func TestGetMetaDefaultsAndRoundTrip(t *testing.T) {
	t.Parallel()
	sqldb := testDB(t)

	meta, err := service.GetMeta(sqldb)
	if err != nil {
		t.Fatalf("meta: %v", err)
	}
	if meta.Requests.Plates || meta.Requests.Napkins || !meta.Requests.Utensils {
		t.Fatalf("unexpected defaults: %+v", meta.Requests)
	}

	pickup := time.Date(2026, 9, 12, 10, 30, 0, 0, time.UTC)
	if err := service.SetHeadcount(sqldb, 40); err != nil {
		t.Fatalf("set headcount: %v", err)
	}
	if err := service.SetUtensilSetsOrdered(sqldb, 45); err != nil {
		t.Fatalf("set utensil sets: %v", err)
	}
	if err := service.SetPickupAt(sqldb, pickup); err != nil {
		t.Fatalf("set pickup: %v", err)
	}
	if err := service.SetGuestRequests(sqldb, model.GuestRequests{Plates: true, Napkins: true, Utensils: false}); err != nil {
		t.Fatalf("set requests: %v", err)
	}

	meta, err = service.GetMeta(sqldb)
	if err != nil {
		t.Fatalf("meta: %v", err)
	}
	if meta.Headcount != 40 || meta.UtensilSetsOrdered != 45 {
		t.Fatalf("unexpected counts: %+v", meta)
	}
	if !meta.PickupAt.Equal(pickup) {
		t.Fatalf("expected pickup %v, got %v", pickup, meta.PickupAt)
	}
	if !meta.Requests.Plates || !meta.Requests.Napkins || meta.Requests.Utensils {
		t.Fatalf("unexpected requests: %+v", meta.Requests)
	}
	if ready := meta.ReadyAt(); !ready.Equal(pickup.Add(-10 * time.Minute)) {
		t.Fatalf("expected ready-at 10 minutes before pickup, got %v", ready)
	}

	if err := service.SetHeadcount(sqldb, -1); err == nil {
		t.Fatalf("expected error for negative headcount")
	}
}
