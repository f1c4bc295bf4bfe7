package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/delavnica/internal/db"
	"github.com/erazemk/delavnica/internal/model"
)

func TestCreateFastenerRequiresCategory(t *testing.T) {
	database := db.NewTestDB(t)

	if _, err := CreateFastener(context.Background(), database, &model.Fastener{Size: "M6"}); err == nil {
		t.Error("expected error for fastener without category")
	}
}

func TestCreateAndGetFastener(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	fastener, err := CreateFastener(ctx, database, &model.Fastener{
		Category: "Wood screw",
		Size:     "4x40",
		Material: "Stainless A2",
		HeadType: "Torx",
		Quantity: 200,
		Location: "Bin 12",
	})
	if err != nil {
		t.Fatalf("CreateFastener: %v", err)
	}
	if fastener.DisplayName() != "Wood screw 4x40" {
		t.Errorf("expected display name 'Wood screw 4x40', got %q", fastener.DisplayName())
	}

	got, err := GetFastener(ctx, database, fastener.ID)
	if err != nil {
		t.Fatalf("GetFastener: %v", err)
	}
	if got == nil || got.Quantity != 200 {
		t.Errorf("expected quantity 200, got %+v", got)
	}
}

func TestListFastenersOrder(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateFastener(ctx, database, &model.Fastener{Category: "Wood screw", Size: "4x40"})
	CreateFastener(ctx, database, &model.Fastener{Category: "Bolt", Size: "M8", Length: "60"})
	CreateFastener(ctx, database, &model.Fastener{Category: "Bolt", Size: "M8", Length: "40"})
	CreateFastener(ctx, database, &model.Fastener{Category: "Bolt", Size: "M6"})

	fasteners, err := ListFasteners(ctx, database, Filter{})
	if err != nil {
		t.Fatalf("ListFasteners: %v", err)
	}
	if len(fasteners) != 4 {
		t.Fatalf("expected 4 fasteners, got %d", len(fasteners))
	}

	// Category, then size, then length.
	want := []struct{ size, length string }{
		{"M6", ""},
		{"M8", "40"},
		{"M8", "60"},
		{"4x40", ""},
	}
	for i, w := range want {
		if fasteners[i].Size != w.size || fasteners[i].Length != w.length {
			t.Errorf("position %d: expected %s/%s, got %s/%s",
				i, w.size, w.length, fasteners[i].Size, fasteners[i].Length)
		}
	}
}

func TestListFastenersSearch(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateFastener(ctx, database, &model.Fastener{Category: "Wood screw", HeadType: "Torx", Location: "Bin 3"})
	CreateFastener(ctx, database, &model.Fastener{Category: "Nail", Material: "Galvanized"})

	// Search spans category, size, material, head type and location.
	byHead, err := ListFasteners(ctx, database, Filter{Search: "torx"})
	if err != nil {
		t.Fatalf("ListFasteners: %v", err)
	}
	if len(byHead) != 1 || byHead[0].Category != "Wood screw" {
		t.Errorf("expected wood screw for head type search, got %+v", byHead)
	}

	byMaterial, _ := ListFasteners(ctx, database, Filter{Search: "galvan"})
	if len(byMaterial) != 1 || byMaterial[0].Category != "Nail" {
		t.Errorf("expected nail for material search, got %+v", byMaterial)
	}

	byBin, _ := ListFasteners(ctx, database, Filter{Search: "bin 3"})
	if len(byBin) != 1 || byBin[0].Category != "Wood screw" {
		t.Errorf("expected wood screw for location search, got %+v", byBin)
	}
}

func TestDeleteFastener(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	fastener, _ := CreateFastener(ctx, database, &model.Fastener{Category: "Rivet"})
	if err := DeleteFastener(ctx, database, fastener.ID); err != nil {
		t.Fatalf("DeleteFastener: %v", err)
	}

	got, _ := GetFastener(ctx, database, fastener.ID)
	if got != nil {
		t.Errorf("expected deleted fastener to be gone, got %+v", got)
	}
}

func TestUpdateFastenerMissingID(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	err := UpdateFastener(ctx, database, 9999, &model.Fastener{Category: "Wood screw"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}
