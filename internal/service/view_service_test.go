package service

import (
	"errors"
	"testing"
)

func TestViewService_DefaultsToHome(t *testing.T) {
	svc := NewViewService()
	if got := svc.Current(); got != ViewHome {
		t.Errorf("Current() = %v, want %v", got, ViewHome)
	}
	if got := svc.SearchQuery(); got != "" {
		t.Errorf("SearchQuery() = %q, want empty", got)
	}
}

func TestViewService_Navigate(t *testing.T) {
	svc := NewViewService()

	for _, view := range []View{ViewCart, ViewFavorites, ViewStats, ViewHome} {
		if err := svc.Navigate(view); err != nil {
			t.Fatalf("Navigate(%v) error: %v", view, err)
		}
		if got := svc.Current(); got != view {
			t.Errorf("Current() = %v, want %v", got, view)
		}
	}
}

func TestViewService_NavigateUnknownView(t *testing.T) {
	svc := NewViewService()
	if err := svc.Navigate(ViewCart); err != nil {
		t.Fatalf("Navigate(cart) error: %v", err)
	}

	if err := svc.Navigate(View("settings")); !errors.Is(err, ErrUnknownView) {
		t.Errorf("Navigate(settings) error = %v, want ErrUnknownView", err)
	}
	if got := svc.Current(); got != ViewCart {
		t.Errorf("Current() after failed navigate = %v, want %v", got, ViewCart)
	}
}

func TestViewService_SearchForcesHome(t *testing.T) {
	svc := NewViewService()
	if err := svc.Navigate(ViewStats); err != nil {
		t.Fatalf("Navigate(stats) error: %v", err)
	}

	svc.SetSearchQuery("laptop")

	if got := svc.Current(); got != ViewHome {
		t.Errorf("Current() after search = %v, want %v", got, ViewHome)
	}
	if got := svc.SearchQuery(); got != "laptop" {
		t.Errorf("SearchQuery() = %q, want %q", got, "laptop")
	}
}
