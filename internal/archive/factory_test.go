package archive

import "testing"

func TestNewStoreMemory(t *testing.T) {
	store, err := NewStore("memory", "")
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	if store == nil {
		t.Fatal("expected non-nil store")
	}
	if err := CloseIfSupported(store); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNewStoreDefaultsToMemory(t *testing.T) {
	store, err := NewStore("", "")
	if err != nil {
		t.Fatalf("new default store: %v", err)
	}
	if _, ok := store.(*MemoryStore); !ok {
		t.Fatalf("expected memory store, got %T", store)
	}
}

func TestNewStoreUnsupported(t *testing.T) {
	if _, err := NewStore("unknown", ""); err == nil {
		t.Fatal("expected unsupported store error")
	}
}
