package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := NewCache()
	c.Set("k", "v", 0, nil)
	v, ok := c.Get("k")
	if !ok || v != "v" {
		t.Errorf("Get(k) = %v, %v", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("missing key should not be found")
	}

	c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("deleted key still present")
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	c := NewCache()
	c.Set("short", 1, 1, nil)

	// Force the entry past its deadline instead of sleeping.
	c.m.Store("short", cacheItem{Value: 1, ExpiresAt: time.Now().Add(-time.Second).UnixNano()})
	if _, ok := c.Get("short"); ok {
		t.Error("expired entry should be dropped on read")
	}
}

func TestCache_CompositeKeys(t *testing.T) {
	c := NewCache()
	c.SetN([]interface{}{"catalog", "listing", 2}, "page2", 0, nil)
	v, ok := c.GetN("catalog", "listing", 2)
	if !ok || v != "page2" {
		t.Errorf("GetN = %v, %v", v, ok)
	}
	c.DeleteN("catalog", "listing", 2)
	if _, ok := c.GetN("catalog", "listing", 2); ok {
		t.Error("DeleteN left the entry behind")
	}
}

func TestCache_Tags(t *testing.T) {
	c := NewCache()
	c.Set("a", 1, 0, []string{"catalog"})
	c.Set("b", 2, 0, []string{"catalog"})
	c.Set("c", 3, 0, []string{"other"})

	if keys := c.GetKeysByTag("catalog"); len(keys) != 2 {
		t.Errorf("GetKeysByTag(catalog) = %v", keys)
	}

	c.DeleteByTag("catalog")
	if _, ok := c.Get("a"); ok {
		t.Error("tagged entry a survived DeleteByTag")
	}
	if _, ok := c.Get("b"); ok {
		t.Error("tagged entry b survived DeleteByTag")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("untagged entry c should survive")
	}
}

func TestCache_DumpAndRestore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	c := NewCache()
	c.Set("greeting", "hello", 0, nil)
	if err := c.DumpToFile(path); err != nil {
		t.Fatalf("DumpToFile: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("dump file missing: %v", err)
	}

	fresh := NewCache()
	if err := fresh.RestoreFromFile(path); err != nil {
		t.Fatalf("RestoreFromFile: %v", err)
	}
	v, ok := fresh.Get("greeting")
	if !ok || v != "hello" {
		t.Errorf("restored value = %v, %v", v, ok)
	}
}

func TestGetInstance_Singleton(t *testing.T) {
	if GetInstance() != GetInstance() {
		t.Error("GetInstance must return the same cache")
	}
}
