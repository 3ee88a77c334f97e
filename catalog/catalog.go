package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Catalog is the complete static set of purchasable items, loaded once at
// process start. Read-only after Load.
type Catalog struct {
	items []Item
	byID  map[uint]Item
}

// Load reads and validates a catalog JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(items)
}

// New builds a catalog from items, validating invariants.
func New(items []Item) (*Catalog, error) {
	byID := make(map[uint]Item, len(items))
	for _, it := range items {
		if err := validateItem(it); err != nil {
			return nil, fmt.Errorf("item %d: %w", it.ID, err)
		}
		if _, dup := byID[it.ID]; dup {
			return nil, fmt.Errorf("item %d: duplicate id", it.ID)
		}
		byID[it.ID] = it
	}
	return &Catalog{items: items, byID: byID}, nil
}

func validateItem(it Item) error {
	if it.ID == 0 {
		return fmt.Errorf("id must be positive")
	}
	if it.Name == "" {
		return fmt.Errorf("name is required")
	}
	if it.Category == "" || it.BridalLook == "" {
		return fmt.Errorf("category and bridalLook are required")
	}
	if it.Price <= 0 {
		return fmt.Errorf("price must be positive")
	}
	if len(it.Sizes) == 0 {
		return fmt.Errorf("sizes must not be empty")
	}
	if it.OriginalPrice != nil {
		if !it.OnSale {
			return fmt.Errorf("originalPrice set but not on sale")
		}
		if *it.OriginalPrice <= it.Price {
			return fmt.Errorf("originalPrice must exceed price")
		}
	}
	return nil
}

// Items returns a copy of the catalog in natural order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// ItemByID looks up a single item.
func (c *Catalog) ItemByID(id uint) (Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// Len returns the number of catalog items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Categories returns the distinct category values in catalog order.
func (c *Catalog) Categories() []string {
	return c.distinct(func(it Item) string { return it.Category })
}

// BridalLooks returns the distinct bridal look values in catalog order.
func (c *Catalog) BridalLooks() []string {
	return c.distinct(func(it Item) string { return it.BridalLook })
}

func (c *Catalog) distinct(key func(Item) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, it := range c.items {
		k := key(it)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
