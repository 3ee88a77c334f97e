package catalog

import "time"

// Item is one purchasable catalog entry. The catalog is immutable after load;
// items are passed by value through the query pipeline.
type Item struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Style         string   `json:"style"`
	Category      string   `json:"category"`
	BridalLook    string   `json:"bridalLook"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Sizes         []string `json:"sizes"`
	OnSale        bool     `json:"onSale"`
	// DateAdded is an optional YYYY-MM-DD date. Items without one get a
	// synthesized date derived from the id (see EffectiveDateAdded).
	DateAdded string `json:"dateAdded,omitempty"`
}

// dateLayout is the catalog's calendar date format.
const dateLayout = "2006-01-02"

// synthBase anchors synthesized dates: items are spaced 7 days apart by id.
var synthBase = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// EffectiveDateAdded returns the item's date added, synthesizing
// base + (id-1)*7d for items that carry none. Derived, never stored.
func (it Item) EffectiveDateAdded() time.Time {
	if it.DateAdded != "" {
		if t, err := time.Parse(dateLayout, it.DateAdded); err == nil {
			return t
		}
	}
	return synthBase.AddDate(0, 0, int(it.ID-1)*7)
}
