package registry

import "testing"

func TestGlobalRegistry_SetGet(t *testing.T) {
	const key = "test:setget"
	GlobalRegistry.SetGlobal(key, 42)
	v, ok := GlobalRegistry.GetGlobal(key)
	if !ok || v != 42 {
		t.Errorf("GetGlobal = %v, %v", v, ok)
	}

	if _, ok := GlobalRegistry.GetGlobal("test:missing"); ok {
		t.Error("missing key should not be found")
	}
}

func TestGlobalRegistry_Lock(t *testing.T) {
	const key = "test:lock"
	GlobalRegistry.SetGlobal(key, "before")
	GlobalRegistry.Lock(key)
	defer GlobalRegistry.UnlockForTesting(key)

	if !GlobalRegistry.IsLocked(key) {
		t.Fatal("key should be locked")
	}
	if GlobalRegistry.IsLocked("test:never-locked") {
		t.Error("unrelated key reported locked")
	}

	GlobalRegistry.UnlockForTesting(key)
	if GlobalRegistry.IsLocked(key) {
		t.Error("UnlockForTesting should clear the lock")
	}
}
