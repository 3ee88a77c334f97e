package jobs

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"carolinebride.GO/catalog"
)

// CatalogJsonJob exports the catalog with synthesized dates resolved, for
// consumption by the static site build. Optional arg overrides the output path.
// Reads env directly: config imports this package for the job table.
func CatalogJsonJob(args ...string) {
	path := os.Getenv("CATALOG_PATH")
	if path == "" {
		path = "data/catalog.json"
	}
	out := "var/catalog_export.json"
	if len(args) > 0 && args[0] != "" {
		out = args[0]
	}

	cat, err := catalog.Load(path)
	if err != nil {
		log.Printf("catalogjsonjob: %v", err)
		return
	}

	type exportItem struct {
		catalog.Item
		EffectiveDateAdded string `json:"effectiveDateAdded"`
	}
	items := cat.Items()
	export := make([]exportItem, 0, len(items))
	for _, it := range items {
		export = append(export, exportItem{Item: it, EffectiveDateAdded: it.EffectiveDateAdded().Format("2006-01-02")})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		log.Printf("catalogjsonjob: marshal: %v", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		log.Printf("catalogjsonjob: %v", err)
		return
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		log.Printf("catalogjsonjob: %v", err)
		return
	}
	log.Printf("catalogjsonjob: exported %d items to %s", len(export), out)
}
