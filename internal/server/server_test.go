package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/LumpsRGood/cateringcalulator/internal/db"
	"github.com/LumpsRGood/cateringcalulator/internal/server"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	sqldb, err := db.Open(filepath.Join(t.TempDir(), "catering.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return server.NewRouter(sqldb)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, out
}

func TestHealth(t *testing.T) {
	r := testRouter(t)
	w, body := doJSON(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("expected ok health, got %d %v", w.Code, body)
	}
}

func TestMenuListing(t *testing.T) {
	r := testRouter(t)
	w, body := doJSON(t, r, http.MethodGet, "/api/menu", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	items, ok := body["items"].([]any)
	if !ok || len(items) == 0 {
		t.Fatalf("expected a populated menu, got %v", body)
	}
}

func TestLineLifecycle(t *testing.T) {
	r := testRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/lines", map[string]any{
		"kind":    "combo",
		"item_id": "small combo box",
		"protein": "bacon",
		"griddle": "buttermilk pancakes",
		"qty":     2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 for new line, got %d %v", w.Code, body)
	}
	line := body["line"].(map[string]any)
	id := int64(line["id"].(float64))

	// Re-adding the same selection merges and reports 200.
	w, body = doJSON(t, r, http.MethodPost, "/api/lines", map[string]any{
		"kind":    "combo",
		"item_id": "Small Combo Box",
		"protein": "Bacon",
		"griddle": "Buttermilk Pancakes",
		"qty":     3,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for merge, got %d %v", w.Code, body)
	}
	if merged, _ := body["merged"].(bool); !merged {
		t.Fatalf("expected merged=true, got %v", body)
	}
	if qty := body["line"].(map[string]any)["qty"].(float64); qty != 5 {
		t.Fatalf("expected merged qty 5, got %v", qty)
	}

	w, body = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/lines/%d", id), map[string]any{"qty": 1})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for qty patch, got %d %v", w.Code, body)
	}
	if qty := body["line"].(map[string]any)["qty"].(float64); qty != 1 {
		t.Fatalf("expected qty 1, got %v", qty)
	}

	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/lines/%d", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for delete, got %d", w.Code)
	}
	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/lines/%d", id), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for repeat delete, got %d", w.Code)
	}

	w, body = doJSON(t, r, http.MethodGet, "/api/lines", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if lines := body["lines"].([]any); len(lines) != 0 {
		t.Fatalf("expected no lines left, got %v", lines)
	}
}

func TestAddLineRejectsUnknownSelection(t *testing.T) {
	r := testRouter(t)
	w, body := doJSON(t, r, http.MethodPost, "/api/lines", map[string]any{
		"kind":    "alacarte",
		"item_id": "mystery_item",
		"qty":     1,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown item, got %d %v", w.Code, body)
	}
	if _, ok := body["error"]; !ok {
		t.Fatalf("expected error body, got %v", body)
	}
}

func TestInvalidLineID(t *testing.T) {
	r := testRouter(t)
	w, _ := doJSON(t, r, http.MethodDelete, "/api/lines/banana", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", w.Code)
	}
}

func TestMetaPartialUpdate(t *testing.T) {
	r := testRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/meta", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["want_utensils"] != true || body["want_plates"] != false {
		t.Fatalf("unexpected meta defaults: %v", body)
	}

	w, body = doJSON(t, r, http.MethodPut, "/api/meta", map[string]any{
		"headcount":   25,
		"want_plates": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %v", w.Code, body)
	}
	if body["headcount"].(float64) != 25 {
		t.Fatalf("expected headcount 25, got %v", body["headcount"])
	}
	if body["want_plates"] != true {
		t.Fatalf("expected plates on, got %v", body)
	}
	// Untouched fields keep their values.
	if body["want_utensils"] != true {
		t.Fatalf("partial update must not reset utensils, got %v", body)
	}

	w, body = doJSON(t, r, http.MethodPut, "/api/meta", map[string]any{"headcount": -5})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative headcount, got %d %v", w.Code, body)
	}
}

func TestReportAndClear(t *testing.T) {
	r := testRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/lines", map[string]any{
		"kind":          "alacarte",
		"item_id":       "cold_bag",
		"beverage_type": "orange juice",
		"qty":           2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %v", w.Code, body)
	}

	w, body = doJSON(t, r, http.MethodGet, "/api/report", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	// Beverage-only order: zero servings, but inventory still projects.
	if body["total_servings"].(float64) != 0 {
		t.Fatalf("expected 0 servings, got %v", body["total_servings"])
	}
	if inv := body["inventory"].([]any); len(inv) == 0 {
		t.Fatalf("expected inventory rows for cold bags")
	}

	w, body = doJSON(t, r, http.MethodGet, "/api/inventory", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if inv := body["inventory"].([]any); len(inv) != 1 {
		t.Fatalf("expected a single OJ row, got %v", inv)
	}

	w, body = doJSON(t, r, http.MethodDelete, "/api/order", nil)
	if w.Code != http.StatusOK || body["cleared"] != true {
		t.Fatalf("expected cleared order, got %d %v", w.Code, body)
	}
	w, body = doJSON(t, r, http.MethodGet, "/api/lines", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if lines := body["lines"].([]any); len(lines) != 0 {
		t.Fatalf("expected empty order after clear, got %v", lines)
	}
}
