package cache

import (
	"strings"
	"testing"
	"time"
)

func TestKey_DeterministicAndVersioned(t *testing.T) {
	k1 := Key("bond clause|NSW")
	k2 := Key("bond clause|NSW")
	k3 := Key("bond clause|VIC")

	if k1 != k2 {
		t.Error("Expected identical keys for identical input")
	}
	if k1 == k3 {
		t.Error("Expected different keys for different input")
	}
	if !strings.HasPrefix(k1, "leaselint:v1:") {
		t.Errorf("Expected version prefix, got %s", k1)
	}
}

func TestMemoryCache_SetGetDelete(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("Expected miss for unknown key")
	}

	if err := c.Set("k", []byte("opinion"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "opinion" {
		t.Errorf("Expected stored value, got %q found=%v", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("Expected miss after delete")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	_ = c.Set("k", []byte("v"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get("k"); found {
		t.Error("Expected entry to expire")
	}
}

func TestDiskCache_SetGetPersists(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	if err := c.Set(Key("clause"), []byte("opinion"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// A fresh instance over the same directory sees the entry
	c2 := NewDiskCache(dir, time.Hour)
	val, found := c2.Get(Key("clause"))
	if !found || string(val) != "opinion" {
		t.Errorf("Expected persisted value, got %q found=%v", val, found)
	}
}

func TestDiskCache_ExpiredEntryRemoved(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	_ = c.Set("k", []byte("v"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get("k"); found {
		t.Error("Expected expired entry to be treated as a miss")
	}
}

func TestDiskCache_Clear(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	_ = c.Set("k1", []byte("v1"), 0)
	_ = c.Set("k2", []byte("v2"), 0)

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, found := c.Get("k1"); found {
		t.Error("Expected miss after clear")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()

	// Warm the disk layer only
	disk := NewDiskCache(dir, time.Hour)
	_ = disk.Set("k", []byte("v"), 0)

	layered := NewLayeredCache(time.Minute, dir, time.Hour)
	val, found := layered.Get("k")
	if !found || string(val) != "v" {
		t.Fatalf("Expected disk hit through the layered cache, got %q found=%v", val, found)
	}

	// Now present in the memory layer too
	if _, found := layered.memory.Get("k"); !found {
		t.Error("Expected disk hit promoted into memory")
	}
}

func TestLayeredCache_SetWritesBothLayers(t *testing.T) {
	dir := t.TempDir()
	layered := NewLayeredCache(time.Minute, dir, time.Hour)

	if err := layered.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, found := layered.memory.Get("k"); !found {
		t.Error("Expected value in the memory layer")
	}
	if _, found := layered.disk.Get("k"); !found {
		t.Error("Expected value in the disk layer")
	}

	if err := layered.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := layered.Get("k"); found {
		t.Error("Expected miss after delete")
	}
}
