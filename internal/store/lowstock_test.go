package store

import (
	"context"
	"testing"

	"github.com/erazemk/delavnica/internal/db"
	"github.com/erazemk/delavnica/internal/model"
)

func TestLowStockConsumables(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	min5 := int64(5)
	min10 := int64(10)
	CreateConsumable(ctx, database, &model.Consumable{Name: "Drill bits", Quantity: 3, MinQuantity: &min5})
	CreateConsumable(ctx, database, &model.Consumable{Name: "Sandpaper", Quantity: 10, MinQuantity: &min10})
	CreateConsumable(ctx, database, &model.Consumable{Name: "Glue", Quantity: 20, MinQuantity: &min5})
	// Zero quantity but no minimum: not tracked, never reported.
	CreateConsumable(ctx, database, &model.Consumable{Name: "Rags", Quantity: 0})

	low, err := LowStockConsumables(ctx, database, 0)
	if err != nil {
		t.Fatalf("LowStockConsumables: %v", err)
	}
	if len(low) != 2 {
		t.Fatalf("expected 2 low-stock consumables, got %d", len(low))
	}
	// Most depleted first.
	if low[0].Name != "Drill bits" || low[1].Name != "Sandpaper" {
		t.Errorf("unexpected order: %q, %q", low[0].Name, low[1].Name)
	}
}

func TestLowStockLimit(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	min := int64(100)
	for _, name := range []string{"A", "B", "C"} {
		CreateConsumable(ctx, database, &model.Consumable{Name: name, Quantity: 1, MinQuantity: &min})
	}

	low, err := LowStockConsumables(ctx, database, 2)
	if err != nil {
		t.Fatalf("LowStockConsumables: %v", err)
	}
	if len(low) != 2 {
		t.Errorf("expected limit of 2, got %d", len(low))
	}
}

func TestLowStockQuantityTieBreaksByID(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	min := int64(10)
	first, _ := CreateConsumable(ctx, database, &model.Consumable{Name: "Zeta", Quantity: 2, MinQuantity: &min})
	second, _ := CreateConsumable(ctx, database, &model.Consumable{Name: "Alpha", Quantity: 2, MinQuantity: &min})

	low, err := LowStockConsumables(ctx, database, 0)
	if err != nil {
		t.Fatalf("LowStockConsumables: %v", err)
	}
	if len(low) != 2 {
		t.Fatalf("expected 2 low-stock consumables, got %d", len(low))
	}
	// Equal quantities keep insertion order, not name order.
	if low[0].ID != first.ID || low[1].ID != second.ID {
		t.Errorf("expected id order %d, %d, got %d, %d", first.ID, second.ID, low[0].ID, low[1].ID)
	}
}

func TestLowStockMaterialsFractional(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	min := 2.0
	CreateMaterial(ctx, database, &model.Material{Name: "Plywood", Quantity: 1.5, MinQuantity: &min})
	CreateMaterial(ctx, database, &model.Material{Name: "Oak", Quantity: 2.5, MinQuantity: &min})

	low, err := LowStockMaterials(ctx, database, 0)
	if err != nil {
		t.Fatalf("LowStockMaterials: %v", err)
	}
	if len(low) != 1 || low[0].Name != "Plywood" {
		t.Errorf("expected only plywood low, got %+v", low)
	}
}

func TestLowStockFastenersAtExactMinimum(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	min := int64(50)
	CreateFastener(ctx, database, &model.Fastener{Category: "Wood screw", Size: "4x40", Quantity: 50, MinQuantity: &min})

	low, err := LowStockFasteners(ctx, database, 0)
	if err != nil {
		t.Fatalf("LowStockFasteners: %v", err)
	}
	// At the minimum counts as low, not just below it.
	if len(low) != 1 {
		t.Fatalf("expected 1 low-stock fastener, got %d", len(low))
	}
}

func TestCountItems(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateTool(ctx, database, &model.Tool{Name: "Drill"})
	CreateTool(ctx, database, &model.Tool{Name: "Saw"})
	CreateConsumable(ctx, database, &model.Consumable{Name: "Bits"})
	CreateFastener(ctx, database, &model.Fastener{Category: "Screw"})

	counts, err := CountItems(ctx, database)
	if err != nil {
		t.Fatalf("CountItems: %v", err)
	}
	if counts.Tools != 2 || counts.Consumables != 1 || counts.Materials != 0 || counts.Fasteners != 1 {
		t.Errorf("unexpected counts: %+v", counts)
	}
}
