package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/delavnica/internal/db"
	"github.com/erazemk/delavnica/internal/model"
)

func TestCreateAndGetMaterial(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	material, err := CreateMaterial(ctx, database, &model.Material{
		Name:          "Birch plywood",
		Category:      "Wood",
		MaterialType:  "Plywood",
		Quantity:      2.5,
		Unit:          "m²",
		Thickness:     18,
		DimensionUnit: "mm",
		Supplier:      "Local yard",
	})
	if err != nil {
		t.Fatalf("CreateMaterial: %v", err)
	}
	if material.Quantity != 2.5 {
		t.Errorf("expected fractional quantity 2.5, got %v", material.Quantity)
	}

	got, err := GetMaterial(ctx, database, material.ID)
	if err != nil {
		t.Fatalf("GetMaterial: %v", err)
	}
	if got == nil || got.Thickness != 18 {
		t.Errorf("expected thickness 18, got %+v", got)
	}
}

func TestListMaterialsOrderedByCategory(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateMaterial(ctx, database, &model.Material{Name: "Steel bar", Category: "Metal"})
	CreateMaterial(ctx, database, &model.Material{Name: "Oak board", Category: "Wood"})
	CreateMaterial(ctx, database, &model.Material{Name: "Aluminium sheet", Category: "Metal"})

	materials, err := ListMaterials(ctx, database, Filter{})
	if err != nil {
		t.Fatalf("ListMaterials: %v", err)
	}
	if len(materials) != 3 {
		t.Fatalf("expected 3 materials, got %d", len(materials))
	}
	// Grouped by category, then by name.
	want := []string{"Aluminium sheet", "Steel bar", "Oak board"}
	for i, name := range want {
		if materials[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, materials[i].Name)
		}
	}
}

func TestListMaterialsSearch(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateMaterial(ctx, database, &model.Material{Name: "Plywood sheet", MaterialType: "Plywood"})
	CreateMaterial(ctx, database, &model.Material{Name: "Brass rod", Supplier: "Metals4U"})

	// Search covers name, material type and supplier.
	byType, err := ListMaterials(ctx, database, Filter{Search: "plyw"})
	if err != nil {
		t.Fatalf("ListMaterials: %v", err)
	}
	if len(byType) != 1 || byType[0].Name != "Plywood sheet" {
		t.Errorf("expected plywood for type search, got %+v", byType)
	}

	bySupplier, _ := ListMaterials(ctx, database, Filter{Search: "metals4u"})
	if len(bySupplier) != 1 || bySupplier[0].Name != "Brass rod" {
		t.Errorf("expected brass rod for supplier search, got %+v", bySupplier)
	}
}

func TestMaterialFractionalLowStock(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	min := 1.5
	material, _ := CreateMaterial(ctx, database, &model.Material{
		Name:        "Pine board",
		Quantity:    1.5,
		MinQuantity: &min,
	})
	if !material.LowStock() {
		t.Error("quantity equal to minimum must be low-stock")
	}

	err := UpdateMaterial(ctx, database, material.ID, &model.Material{
		Name:        "Pine board",
		Quantity:    4.0,
		MinQuantity: &min,
	})
	if err != nil {
		t.Fatalf("UpdateMaterial: %v", err)
	}

	got, _ := GetMaterial(ctx, database, material.ID)
	if got.LowStock() {
		t.Error("restocked material must not be low-stock")
	}
}

func TestDeleteMaterial(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	material, _ := CreateMaterial(ctx, database, &model.Material{Name: "Scrap"})
	if err := DeleteMaterial(ctx, database, material.ID); err != nil {
		t.Fatalf("DeleteMaterial: %v", err)
	}

	got, _ := GetMaterial(ctx, database, material.ID)
	if got != nil {
		t.Errorf("expected deleted material to be gone, got %+v", got)
	}
}

func TestUpdateMaterialMissingID(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	err := UpdateMaterial(ctx, database, 9999, &model.Material{Name: "Ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}
