package model

import (
	"strings"
	"time"
)

type LineKind string

const (
	KindCombo    LineKind = "combo"
	KindAlaCarte LineKind = "alacarte"
)

// SelectionKey identifies one orderable choice: the item plus every
// modifier that changes what the kitchen preps. Two lines with equal
// normalized keys are the same selection and merge by quantity.
type SelectionKey struct {
	Kind         LineKind
	ItemID       string
	Protein      string
	Griddle      string
	BeverageType string
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (k SelectionKey) Normalized() SelectionKey {
	return SelectionKey{
		Kind:         LineKind(normalize(string(k.Kind))),
		ItemID:       normalize(k.ItemID),
		Protein:      normalize(k.Protein),
		Griddle:      normalize(k.Griddle),
		BeverageType: normalize(k.BeverageType),
	}
}

func (k SelectionKey) Equal(other SelectionKey) bool {
	return k.Normalized() == other.Normalized()
}

type OrderLine struct {
	ID        int64
	Key       SelectionKey
	Label     string
	Qty       int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GuestRequests are the pickup-time toggles: whether the guest asked for
// plates, napkins, and wrapped cutlery sets. The Utensils toggle also
// controls whether serving utensils ride along with the food.
type GuestRequests struct {
	Plates   bool
	Napkins  bool
	Utensils bool
}

type OrderMeta struct {
	Headcount          int
	UtensilSetsOrdered int
	PickupAt           time.Time
	Requests           GuestRequests
}

// ReadyAt is when the order should be staged: ten minutes before pickup.
func (m OrderMeta) ReadyAt() time.Time {
	if m.PickupAt.IsZero() {
		return time.Time{}
	}
	return m.PickupAt.Add(-10 * time.Minute)
}
