package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/delavnica/internal/db"
	"github.com/erazemk/delavnica/internal/model"
)

func TestCreateAndGetConsumable(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	min := int64(5)
	consumable, err := CreateConsumable(ctx, database, &model.Consumable{
		Name:        "Drill bits",
		Category:    "Bits",
		Quantity:    3,
		Unit:        "pcs",
		MinQuantity: &min,
	})
	if err != nil {
		t.Fatalf("CreateConsumable: %v", err)
	}
	if consumable.Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", consumable.Quantity)
	}
	if consumable.MinQuantity == nil || *consumable.MinQuantity != 5 {
		t.Errorf("expected min quantity 5, got %v", consumable.MinQuantity)
	}
	if !consumable.LowStock() {
		t.Error("quantity 3 with minimum 5 must be low-stock")
	}
}

func TestConsumableDefaults(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	consumable, err := CreateConsumable(ctx, database, &model.Consumable{Name: "Glue"})
	if err != nil {
		t.Fatalf("CreateConsumable: %v", err)
	}
	if consumable.Quantity != 0 {
		t.Errorf("expected zero quantity, got %d", consumable.Quantity)
	}
	if consumable.MinQuantity != nil {
		t.Errorf("expected nil min quantity, got %v", consumable.MinQuantity)
	}
	if consumable.LowStock() {
		t.Error("untracked consumable must never be low-stock, even at zero")
	}
}

func TestCreateConsumableRejectsNegativeQuantity(t *testing.T) {
	database := db.NewTestDB(t)

	_, err := CreateConsumable(context.Background(), database, &model.Consumable{
		Name:     "Bad",
		Quantity: -1,
	})
	if err == nil {
		t.Error("expected error for negative quantity")
	}
}

func TestListConsumablesSearch(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateConsumable(ctx, database, &model.Consumable{Name: "Driver bits", Category: "Bits", CompatibleWith: "Makita DHP484"})
	CreateConsumable(ctx, database, &model.Consumable{Name: "Wood glue", Category: "Adhesives"})
	CreateConsumable(ctx, database, &model.Consumable{Name: "Sandpaper P120", Category: "Abrasives"})

	// Search matches the compatibility text too.
	byCompat, err := ListConsumables(ctx, database, Filter{Search: "makita"})
	if err != nil {
		t.Fatalf("ListConsumables: %v", err)
	}
	if len(byCompat) != 1 || byCompat[0].Name != "Driver bits" {
		t.Errorf("expected driver bits for compatibility search, got %+v", byCompat)
	}

	byCategory, _ := ListConsumables(ctx, database, Filter{Search: "adhes"})
	if len(byCategory) != 1 || byCategory[0].Name != "Wood glue" {
		t.Errorf("expected wood glue for category search, got %+v", byCategory)
	}

	all, _ := ListConsumables(ctx, database, Filter{})
	if len(all) != 3 {
		t.Fatalf("expected 3 consumables, got %d", len(all))
	}
	if all[0].Name != "Driver bits" || all[2].Name != "Wood glue" {
		t.Errorf("unexpected order: %q, %q, %q", all[0].Name, all[1].Name, all[2].Name)
	}
}

func TestUpdateConsumableClearsMinQuantity(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	min := int64(10)
	consumable, _ := CreateConsumable(ctx, database, &model.Consumable{
		Name:        "Spare bits",
		Quantity:    2,
		MinQuantity: &min,
	})

	// Updating without a minimum stops depletion tracking.
	err := UpdateConsumable(ctx, database, consumable.ID, &model.Consumable{
		Name:     "Spare bits",
		Quantity: 2,
	})
	if err != nil {
		t.Fatalf("UpdateConsumable: %v", err)
	}

	got, _ := GetConsumable(ctx, database, consumable.ID)
	if got.MinQuantity != nil {
		t.Errorf("expected min quantity cleared, got %v", got.MinQuantity)
	}
	if got.LowStock() {
		t.Error("item without minimum must not be low-stock")
	}
}

func TestDeleteConsumable(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	consumable, _ := CreateConsumable(ctx, database, &model.Consumable{Name: "Old blades"})
	if err := DeleteConsumable(ctx, database, consumable.ID); err != nil {
		t.Fatalf("DeleteConsumable: %v", err)
	}

	got, _ := GetConsumable(ctx, database, consumable.ID)
	if got != nil {
		t.Errorf("expected deleted consumable to be gone, got %+v", got)
	}
}

func TestUpdateConsumableMissingID(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	err := UpdateConsumable(ctx, database, 9999, &model.Consumable{Name: "Ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}
