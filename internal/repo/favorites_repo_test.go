package repo

import (
	"testing"

	"go.uber.org/zap"

	"github.com/MorseWayne/mercado_shop/internal/domain"
	"github.com/MorseWayne/mercado_shop/internal/kvstore"
)

func TestFavoritesRepository_RoundTrip(t *testing.T) {
	store := kvstore.NewMemoryStore()
	r := NewFavoritesRepository(store, zap.NewNop())

	if got := r.Load(); len(got) != 0 {
		t.Errorf("fresh store should load empty, got %d", len(got))
	}

	favorites := []*domain.Product{
		{ID: 1, Title: "Producto A", Price: 10.5, Category: "electronics"},
		{ID: 2, Title: "Producto B", Price: 20, Category: "men's clothing"},
	}
	if err := r.Save(favorites); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got := r.Load()
	if len(got) != 2 {
		t.Fatalf("Load() returned %d products, want 2", len(got))
	}
	if got[0].ID != 1 || got[0].Title != "Producto A" || got[1].ID != 2 {
		t.Errorf("Load() = %+v, snapshot not preserved", got)
	}
}

func TestFavoritesRepository_CorruptDataFailsClosed(t *testing.T) {
	store := kvstore.NewMemoryStore()
	_ = store.Set("ecommerce_favorites", "{not json")

	r := NewFavoritesRepository(store, zap.NewNop())
	if got := r.Load(); len(got) != 0 {
		t.Errorf("corrupt data should load as empty, got %d", len(got))
	}
}

func TestFavoritesRepository_SaveNilWritesEmptyList(t *testing.T) {
	store := kvstore.NewMemoryStore()
	r := NewFavoritesRepository(store, zap.NewNop())

	if err := r.Save(nil); err != nil {
		t.Fatalf("Save(nil) error = %v", err)
	}

	raw, ok, _ := store.Get("ecommerce_favorites")
	if !ok || raw != "[]" {
		t.Errorf("expected empty JSON array, got %q ok=%v", raw, ok)
	}
}

func TestPreferencesRepository_Theme(t *testing.T) {
	store := kvstore.NewMemoryStore()
	r := NewPreferencesRepository(store)

	if got := r.Theme(); got != ThemeLight {
		t.Errorf("default theme = %q, want light", got)
	}

	if err := r.SaveTheme(ThemeDark); err != nil {
		t.Fatalf("SaveTheme() error = %v", err)
	}
	if got := r.Theme(); got != ThemeDark {
		t.Errorf("theme = %q after save, want dark", got)
	}

	if err := r.SaveTheme("purple"); err == nil {
		t.Error("invalid theme should be rejected")
	}

	// garbage persisted out-of-band falls back to light
	_ = store.Set("ecommerce_theme", "garbage")
	if got := r.Theme(); got != ThemeLight {
		t.Errorf("invalid stored theme = %q, want fallback to light", got)
	}
}
