package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	catalogPkg "carolinebride.GO/catalog"
)

// ValidateResult reports what a catalog file contains and what is wrong with it.
type ValidateResult struct {
	Items      int
	OnSale     int
	Categories int
	Looks      int
	Warnings   []string
	Errors     []string
}

// ValidateFile checks a catalog JSON file without loading it into the app.
// Hard catalog invariants surface as Errors; suspicious-but-loadable data as
// Warnings.
func ValidateFile(path string) (*ValidateResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []catalogPkg.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	res := &ValidateResult{Items: len(items)}

	if _, err := catalogPkg.New(items); err != nil {
		res.Errors = append(res.Errors, err.Error())
	}

	cats := map[string]struct{}{}
	looks := map[string]struct{}{}
	for _, it := range items {
		cats[it.Category] = struct{}{}
		looks[it.BridalLook] = struct{}{}
		if it.OnSale {
			res.OnSale++
			if it.OriginalPrice == nil {
				res.Warnings = append(res.Warnings, fmt.Sprintf("item %d: on sale without originalPrice", it.ID))
			}
		}
		if it.Image == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("item %d: missing image", it.ID))
		}
		if it.Style == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("item %d: missing style", it.ID))
		}
	}
	res.Categories = len(cats)
	res.Looks = len(looks)
	return res, nil
}
