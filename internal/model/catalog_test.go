package model

import (
	"testing"

	"storefront/internal/domain"
	"storefront/internal/events"
)

func TestSetProductsReplacesWholesaleAndEmits(t *testing.T) {
	bus := events.NewBus()
	catalog := NewCatalog(bus)
	emits := countEmits(bus, events.NameCatalogChanged)

	first := []domain.Product{{ID: "p1"}, {ID: "p2"}}
	catalog.SetProducts(first)

	second := []domain.Product{{ID: "p3"}}
	catalog.SetProducts(second)

	if *emits != 2 {
		t.Errorf("Expected catalog:changed per set, got %d", *emits)
	}

	if _, ok := catalog.ProductByID("p1"); ok {
		t.Error("Expected p1 to be gone after the wholesale replace")
	}
	if _, ok := catalog.ProductByID("p3"); !ok {
		t.Error("Expected p3 to be present")
	}
}

func TestSetProductsIsIdempotentAndAlwaysEmits(t *testing.T) {
	bus := events.NewBus()
	catalog := NewCatalog(bus)
	emits := countEmits(bus, events.NameCatalogChanged)

	products := []domain.Product{{ID: "p1"}}
	catalog.SetProducts(products)
	catalog.SetProducts(products)

	// No diffing: the same list still emits.
	if *emits != 2 {
		t.Errorf("Expected 2 emissions for identical sets, got %d", *emits)
	}
}

func TestProductsPreserveServerOrder(t *testing.T) {
	bus := events.NewBus()
	catalog := NewCatalog(bus)

	catalog.SetProducts([]domain.Product{{ID: "z"}, {ID: "a"}, {ID: "m"}})

	got := catalog.Products()
	want := []string{"z", "a", "m"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("Position %d: expected %q, got %q", i, id, got[i].ID)
		}
	}
}

func TestProductByIDMiss(t *testing.T) {
	bus := events.NewBus()
	catalog := NewCatalog(bus)

	if _, ok := catalog.ProductByID("ghost"); ok {
		t.Error("Expected a miss on an empty catalog")
	}
}

func TestSelectedProductTracking(t *testing.T) {
	bus := events.NewBus()
	catalog := NewCatalog(bus)
	emits := countEmits(bus, events.NameCatalogSelected)

	if _, ok := catalog.Selected(); ok {
		t.Error("Expected no selection on a fresh catalog")
	}

	product := domain.Product{ID: "p1", Title: "Mug of focus"}
	catalog.SetProducts([]domain.Product{product})
	catalog.SetSelected(product)

	selected, ok := catalog.Selected()
	if !ok || selected.ID != "p1" {
		t.Fatalf("Expected p1 selected, got %+v ok=%v", selected, ok)
	}
	if *emits != 1 {
		t.Errorf("Expected one catalog:selected, got %d", *emits)
	}
}
