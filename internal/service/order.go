package service

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/LumpsRGood/cateringcalulator/internal/catalog"
	"github.com/LumpsRGood/cateringcalulator/internal/model"
)

type AddLineInput struct {
	Key model.SelectionKey
	Qty int
}

// AddOrMergeLine adds a line to the working order. If a line with an equal
// normalized selection key already exists, its quantity is incremented
// instead of inserting a duplicate; the UNIQUE index on the key columns
// backs that invariant at the schema level. Returns the resulting line and
// whether it was a merge.
func AddOrMergeLine(db *sql.DB, in AddLineInput) (model.OrderLine, bool, error) {
	if in.Qty < 1 {
		return model.OrderLine{}, false, fmt.Errorf("quantity must be >= 1, got %d", in.Qty)
	}
	if err := catalog.Validate(in.Key); err != nil {
		return model.OrderLine{}, false, err
	}
	label, err := catalog.Label(in.Key)
	if err != nil {
		return model.OrderLine{}, false, err
	}
	k := in.Key.Normalized()

	res, err := db.Exec(`
UPDATE order_lines
SET qty = qty + ?, updated_at = CURRENT_TIMESTAMP
WHERE kind = ? AND item_id = ? AND protein = ? AND griddle = ? AND beverage_type = ?
`, in.Qty, k.Kind, k.ItemID, k.Protein, k.Griddle, k.BeverageType)
	if err != nil {
		return model.OrderLine{}, false, fmt.Errorf("merge order line: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return model.OrderLine{}, false, fmt.Errorf("resolve merged rows: %w", err)
	}
	if affected > 0 {
		line, err := lineByKey(db, k)
		if err != nil {
			return model.OrderLine{}, false, err
		}
		return line, true, nil
	}

	ins, err := db.Exec(`
INSERT INTO order_lines(kind, item_id, protein, griddle, beverage_type, label, qty)
VALUES(?, ?, ?, ?, ?, ?, ?)
`, k.Kind, k.ItemID, k.Protein, k.Griddle, k.BeverageType, label, in.Qty)
	if err != nil {
		return model.OrderLine{}, false, fmt.Errorf("insert order line: %w", err)
	}
	id, err := ins.LastInsertId()
	if err != nil {
		return model.OrderLine{}, false, fmt.Errorf("resolve inserted line id: %w", err)
	}
	line, err := LineByID(db, id)
	if err != nil {
		return model.OrderLine{}, false, err
	}
	return line, false, nil
}

func ListLines(db *sql.DB) ([]model.OrderLine, error) {
	rows, err := db.Query(`
SELECT id, kind, item_id, protein, griddle, beverage_type, label, qty, created_at, updated_at
FROM order_lines
ORDER BY id
`)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()

	var lines []model.OrderLine
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order lines: %w", err)
	}
	return lines, nil
}

func LineByID(db *sql.DB, id int64) (model.OrderLine, error) {
	row := db.QueryRow(`
SELECT id, kind, item_id, protein, griddle, beverage_type, label, qty, created_at, updated_at
FROM order_lines
WHERE id = ?
`, id)
	line, err := scanLine(row)
	if err == sql.ErrNoRows {
		return model.OrderLine{}, fmt.Errorf("order line %d does not exist", id)
	}
	if err != nil {
		return model.OrderLine{}, err
	}
	return line, nil
}

func lineByKey(db *sql.DB, k model.SelectionKey) (model.OrderLine, error) {
	row := db.QueryRow(`
SELECT id, kind, item_id, protein, griddle, beverage_type, label, qty, created_at, updated_at
FROM order_lines
WHERE kind = ? AND item_id = ? AND protein = ? AND griddle = ? AND beverage_type = ?
`, k.Kind, k.ItemID, k.Protein, k.Griddle, k.BeverageType)
	line, err := scanLine(row)
	if err == sql.ErrNoRows {
		return model.OrderLine{}, fmt.Errorf("order line for %s %q does not exist", k.Kind, k.ItemID)
	}
	if err != nil {
		return model.OrderLine{}, err
	}
	return line, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLine(row rowScanner) (model.OrderLine, error) {
	var line model.OrderLine
	var kind, createdAt, updatedAt string
	err := row.Scan(&line.ID, &kind, &line.Key.ItemID, &line.Key.Protein, &line.Key.Griddle,
		&line.Key.BeverageType, &line.Label, &line.Qty, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return model.OrderLine{}, err
	}
	if err != nil {
		return model.OrderLine{}, fmt.Errorf("scan order line: %w", err)
	}
	line.Key.Kind = model.LineKind(kind)
	line.CreatedAt, _ = time.Parse(sqliteTimeLayout, createdAt)
	line.UpdatedAt, _ = time.Parse(sqliteTimeLayout, updatedAt)
	return line, nil
}

// sqliteTimeLayout matches what CURRENT_TIMESTAMP writes.
const sqliteTimeLayout = "2006-01-02 15:04:05"

func SetLineQty(db *sql.DB, id int64, qty int) error {
	if qty < 1 {
		return fmt.Errorf("quantity must be >= 1, got %d", qty)
	}
	res, err := db.Exec(`UPDATE order_lines SET qty = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, qty, id)
	if err != nil {
		return fmt.Errorf("update order line %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resolve updated rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("order line %d does not exist", id)
	}
	return nil
}

// ReplaceLine is the edit path: remove the old line, then run the new
// selection through merge-or-add. Editing a line into a selection that
// already exists merges with that line. The replacement is validated
// before anything is removed, so a rejected edit leaves the original
// line untouched.
func ReplaceLine(db *sql.DB, id int64, in AddLineInput) (model.OrderLine, bool, error) {
	if in.Qty < 1 {
		return model.OrderLine{}, false, fmt.Errorf("quantity must be >= 1, got %d", in.Qty)
	}
	if err := catalog.Validate(in.Key); err != nil {
		return model.OrderLine{}, false, err
	}
	if err := RemoveLine(db, id); err != nil {
		return model.OrderLine{}, false, err
	}
	return AddOrMergeLine(db, in)
}

func RemoveLine(db *sql.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM order_lines WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("remove order line %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resolve removed rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("order line %d does not exist", id)
	}
	return nil
}

// ClearOrder wipes the working draft: every line and the order meta.
func ClearOrder(db *sql.DB) error {
	if _, err := db.Exec(`DELETE FROM order_lines`); err != nil {
		return fmt.Errorf("clear order lines: %w", err)
	}
	if _, err := db.Exec(`DELETE FROM order_meta`); err != nil {
		return fmt.Errorf("clear order meta: %w", err)
	}
	return nil
}

const (
	metaHeadcount          = "headcount"
	metaUtensilSetsOrdered = "utensil_sets_ordered"
	metaPickupAt           = "pickup_at"
	metaWantPlates         = "want_plates"
	metaWantNapkins        = "want_napkins"
	metaWantUtensils       = "want_utensils"
)

func setMetaValue(db *sql.DB, key, value string) error {
	_, err := db.Exec(`
INSERT INTO order_meta(key, value, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
`, key, value)
	if err != nil {
		return fmt.Errorf("set order meta %s: %w", key, err)
	}
	return nil
}

func metaValue(db *sql.DB, key string) (string, bool, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM order_meta WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read order meta %s: %w", key, err)
	}
	return value, true, nil
}

func SetHeadcount(db *sql.DB, headcount int) error {
	if headcount < 0 {
		return fmt.Errorf("headcount must be >= 0, got %d", headcount)
	}
	return setMetaValue(db, metaHeadcount, strconv.Itoa(headcount))
}

func SetUtensilSetsOrdered(db *sql.DB, sets int) error {
	if sets < 0 {
		return fmt.Errorf("utensil sets must be >= 0, got %d", sets)
	}
	return setMetaValue(db, metaUtensilSetsOrdered, strconv.Itoa(sets))
}

func SetPickupAt(db *sql.DB, pickup time.Time) error {
	return setMetaValue(db, metaPickupAt, pickup.Format(time.RFC3339))
}

func SetGuestRequests(db *sql.DB, req model.GuestRequests) error {
	if err := setMetaValue(db, metaWantPlates, strconv.FormatBool(req.Plates)); err != nil {
		return err
	}
	if err := setMetaValue(db, metaWantNapkins, strconv.FormatBool(req.Napkins)); err != nil {
		return err
	}
	return setMetaValue(db, metaWantUtensils, strconv.FormatBool(req.Utensils))
}

// GetMeta loads the order meta, applying defaults for anything unset:
// plates and napkins off, utensils on.
func GetMeta(db *sql.DB) (model.OrderMeta, error) {
	meta := model.OrderMeta{
		Requests: model.GuestRequests{Utensils: true},
	}

	if v, ok, err := metaValue(db, metaHeadcount); err != nil {
		return model.OrderMeta{}, err
	} else if ok {
		meta.Headcount, _ = strconv.Atoi(v)
	}
	if v, ok, err := metaValue(db, metaUtensilSetsOrdered); err != nil {
		return model.OrderMeta{}, err
	} else if ok {
		meta.UtensilSetsOrdered, _ = strconv.Atoi(v)
	}
	if v, ok, err := metaValue(db, metaPickupAt); err != nil {
		return model.OrderMeta{}, err
	} else if ok {
		meta.PickupAt, _ = time.Parse(time.RFC3339, v)
	}
	if v, ok, err := metaValue(db, metaWantPlates); err != nil {
		return model.OrderMeta{}, err
	} else if ok {
		meta.Requests.Plates = v == "true"
	}
	if v, ok, err := metaValue(db, metaWantNapkins); err != nil {
		return model.OrderMeta{}, err
	} else if ok {
		meta.Requests.Napkins = v == "true"
	}
	if v, ok, err := metaValue(db, metaWantUtensils); err != nil {
		return model.OrderMeta{}, err
	} else if ok {
		meta.Requests.Utensils = v == "true"
	}
	return meta, nil
}
