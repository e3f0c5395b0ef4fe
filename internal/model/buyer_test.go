package model

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"storefront/internal/domain"
	"storefront/internal/events"
)

// Property: patches only overwrite the fields they carry, regardless of the
// order or the shape of earlier patches.
func TestProperty_PartialPatchesMergeFieldwise(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("the last provided value per field wins, others survive", prop.ForAll(
		func(setPayment bool, setEmail bool, setPhone bool, setAddress bool, email, phone, address string) bool {
			bus := events.NewBus()
			buyer := NewBuyer(bus)

			seed := domain.BuyerPatch{}
			seedPhone := "seed-phone"
			seed.Phone = &seedPhone
			buyer.SetData(seed)

			patch := domain.BuyerPatch{}
			if setPayment {
				method := domain.PaymentCard
				patch.Payment = &method
			}
			if setEmail {
				patch.Email = &email
			}
			if setPhone {
				patch.Phone = &phone
			}
			if setAddress {
				patch.Address = &address
			}
			buyer.SetData(patch)

			got := buyer.Data()

			if setPayment && got.Payment != domain.PaymentCard {
				return false
			}
			if !setPayment && got.Payment != domain.PaymentUnset {
				return false
			}
			if setEmail && got.Email != email {
				return false
			}
			if setPhone && got.Phone != phone {
				return false
			}
			if !setPhone && got.Phone != seedPhone {
				return false
			}
			if setAddress && got.Address != address {
				return false
			}
			return true
		},
		gen.Bool(), gen.Bool(), gen.Bool(), gen.Bool(),
		gen.AnyString(), gen.AnyString(), gen.AnyString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestSetDataEmitsTheFullRecordEveryTime(t *testing.T) {
	bus := events.NewBus()
	buyer := NewBuyer(bus)

	var received []domain.Buyer
	bus.Subscribe(events.NameBuyerChanged, func(e events.Event) {
		received = append(received, e.(events.BuyerChanged).Buyer)
	})

	method := domain.PaymentCash
	buyer.SetData(domain.BuyerPatch{Payment: &method})

	address := "1 Main St"
	buyer.SetData(domain.BuyerPatch{Address: &address})

	// Even a no-op patch emits.
	buyer.SetData(domain.BuyerPatch{})

	if len(received) != 3 {
		t.Fatalf("Expected 3 buyer:changed emissions, got %d", len(received))
	}

	last := received[2]
	if last.Payment != domain.PaymentCash || last.Address != address {
		t.Errorf("Expected the full merged record in the payload, got %+v", last)
	}
}

func TestValidateReflectsCurrentRecord(t *testing.T) {
	bus := events.NewBus()
	buyer := NewBuyer(bus)

	if len(buyer.Validate()) != 4 {
		t.Fatalf("Expected 4 errors on a fresh buyer, got %v", buyer.Validate())
	}

	method := domain.PaymentCard
	email := "buyer@example.com"
	phone := "+15550100"
	address := "1 Main St"
	buyer.SetData(domain.BuyerPatch{Payment: &method, Email: &email, Phone: &phone, Address: &address})

	if errs := buyer.Validate(); len(errs) != 0 {
		t.Errorf("Expected no errors on a complete buyer, got %v", errs)
	}
}

func TestValidateDoesNotEmit(t *testing.T) {
	bus := events.NewBus()
	buyer := NewBuyer(bus)

	emits := 0
	bus.Subscribe(events.NameBuyerChanged, func(events.Event) { emits++ })

	buyer.Validate()

	if emits != 0 {
		t.Errorf("Expected validation to be a pure query, got %d emissions", emits)
	}
}

func TestClearResetsAndEmits(t *testing.T) {
	bus := events.NewBus()
	buyer := NewBuyer(bus)

	method := domain.PaymentCash
	buyer.SetData(domain.BuyerPatch{Payment: &method})

	emits := 0
	bus.Subscribe(events.NameBuyerChanged, func(events.Event) { emits++ })

	buyer.Clear()

	if buyer.Data() != (domain.Buyer{}) {
		t.Errorf("Expected a zero record after clear, got %+v", buyer.Data())
	}
	if emits != 1 {
		t.Errorf("Expected one buyer:changed on clear, got %d", emits)
	}

	// Clearing an already-empty buyer still emits.
	buyer.Clear()
	if emits != 2 {
		t.Errorf("Expected clear to emit even when already empty, got %d", emits)
	}
}
