package domain

import "testing"

func price(v float64) *float64 { return &v }

func TestNewOrderPreservesItemOrderAndSumsPrices(t *testing.T) {
	buyer := Buyer{
		Payment: PaymentCash,
		Email:   "buyer@example.com",
		Phone:   "+15550100",
		Address: "1 Main St",
	}
	items := []Product{
		{ID: "p1", Price: price(750)},
		{ID: "p2", Price: price(1000)},
		{ID: "p3", Price: nil},
	}

	order := NewOrder(buyer, items)

	if len(order.Items) != 3 {
		t.Fatalf("Expected 3 item ids, got %d", len(order.Items))
	}
	for i, want := range []string{"p1", "p2", "p3"} {
		if order.Items[i] != want {
			t.Errorf("Item %d: expected %q, got %q", i, want, order.Items[i])
		}
	}

	// The priceless item contributes 0.
	if order.Total != 1750 {
		t.Errorf("Expected total 1750, got %g", order.Total)
	}

	if order.Payment != PaymentCash || order.Email != buyer.Email {
		t.Errorf("Expected buyer fields to carry over, got %+v", order)
	}
}

func TestNewOrderWithNoItems(t *testing.T) {
	order := NewOrder(Buyer{}, nil)

	if len(order.Items) != 0 {
		t.Errorf("Expected no items, got %v", order.Items)
	}
	if order.Total != 0 {
		t.Errorf("Expected zero total, got %g", order.Total)
	}
}

func TestPriceValue(t *testing.T) {
	if (Product{Price: nil}).PriceValue() != 0 {
		t.Error("Expected a priceless product to be worth 0")
	}
	if (Product{Price: price(1450)}).PriceValue() != 1450 {
		t.Error("Expected the price to come through unchanged")
	}
	if (Product{Price: nil}).Purchasable() {
		t.Error("Expected a priceless product to not be purchasable")
	}
}
