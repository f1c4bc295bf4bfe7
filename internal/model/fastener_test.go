package model

import "testing"

func TestFastenerDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		fastener Fastener
		want     string
	}{
		{"category and size", Fastener{Category: "Wood screw", Size: "M4"}, "Wood screw M4"},
		{"head type fallback", Fastener{Category: "Screw", HeadType: "Torx"}, "Screw Torx"},
		{"size wins over head type", Fastener{Category: "Bolt", Size: "M8", HeadType: "Hex"}, "Bolt M8"},
		{"category only", Fastener{Category: "Nail"}, "Nail"},
	}

	for _, tt := range tests {
		if got := tt.fastener.DisplayName(); got != tt.want {
			t.Errorf("%s: DisplayName() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFastenerLowStock(t *testing.T) {
	min := int64(50)

	f := Fastener{Category: "Screw", Quantity: 100}
	if f.LowStock() {
		t.Error("fastener without minimum must never be low-stock")
	}

	f.MinQuantity = &min
	if f.LowStock() {
		t.Error("quantity above minimum must not be low-stock")
	}

	f.Quantity = 50
	if !f.LowStock() {
		t.Error("quantity equal to minimum must be low-stock")
	}

	f.Quantity = 0
	if !f.LowStock() {
		t.Error("zero quantity below minimum must be low-stock")
	}
}
