package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/delavnica/internal/db"
	"github.com/erazemk/delavnica/internal/model"
)

func TestCreateAndGetTool(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	tool, err := CreateTool(ctx, database, &model.Tool{
		Name:     "Cordless drill",
		Category: "Power tools",
		Brand:    "Makita",
		Model:    "DHP484",
		Location: "Shelf A",
	})
	if err != nil {
		t.Fatalf("CreateTool: %v", err)
	}
	if tool.ID == 0 {
		t.Error("expected non-zero id")
	}
	if tool.Brand != "Makita" {
		t.Errorf("expected brand 'Makita', got %q", tool.Brand)
	}

	got, err := GetTool(ctx, database, tool.ID)
	if err != nil {
		t.Fatalf("GetTool: %v", err)
	}
	if got == nil || got.Name != "Cordless drill" {
		t.Errorf("expected tool 'Cordless drill', got %+v", got)
	}
}

func TestCreateToolRequiresName(t *testing.T) {
	database := db.NewTestDB(t)

	if _, err := CreateTool(context.Background(), database, &model.Tool{}); err == nil {
		t.Error("expected error for tool without name")
	}
}

func TestGetToolMissing(t *testing.T) {
	database := db.NewTestDB(t)

	got, err := GetTool(context.Background(), database, 9999)
	if err != nil {
		t.Fatalf("GetTool: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing tool, got %+v", got)
	}
}

func TestListToolsFilter(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateTool(ctx, database, &model.Tool{Name: "Cordless drill", Category: "Power tools", Brand: "Makita"})
	CreateTool(ctx, database, &model.Tool{Name: "Circular saw", Category: "Power tools", Brand: "Bosch"})
	CreateTool(ctx, database, &model.Tool{Name: "Chisel", Category: "Hand tools", Location: "Drawer 2"})

	all, err := ListTools(ctx, database, Filter{})
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 tools, got %d", len(all))
	}
	// Ordered by name.
	if all[0].Name != "Chisel" || all[2].Name != "Cordless drill" {
		t.Errorf("unexpected order: %q, %q, %q", all[0].Name, all[1].Name, all[2].Name)
	}

	power, _ := ListTools(ctx, database, Filter{Category: "Power tools"})
	if len(power) != 2 {
		t.Errorf("expected 2 power tools, got %d", len(power))
	}

	// Category match is exact, not substring.
	partial, _ := ListTools(ctx, database, Filter{Category: "Power"})
	if len(partial) != 0 {
		t.Errorf("expected 0 tools for partial category, got %d", len(partial))
	}

	// Search covers name, brand and model, case-insensitively.
	byBrand, _ := ListTools(ctx, database, Filter{Search: "makita"})
	if len(byBrand) != 1 || byBrand[0].Name != "Cordless drill" {
		t.Errorf("expected drill for brand search, got %+v", byBrand)
	}

	byLocation, _ := ListTools(ctx, database, Filter{Location: "drawer"})
	if len(byLocation) != 1 || byLocation[0].Name != "Chisel" {
		t.Errorf("expected chisel for location filter, got %+v", byLocation)
	}

	none, _ := ListTools(ctx, database, Filter{Category: "Power tools", Search: "chisel"})
	if len(none) != 0 {
		t.Errorf("expected no matches for conflicting filters, got %d", len(none))
	}
}

func TestUpdateToolReplacesRecord(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	tool, _ := CreateTool(ctx, database, &model.Tool{Name: "Drill", Brand: "Makita", Notes: "old notes"})

	// The update carries the full record; fields left empty are reset.
	err := UpdateTool(ctx, database, tool.ID, &model.Tool{Name: "Drill XL", Location: "Shelf B"})
	if err != nil {
		t.Fatalf("UpdateTool: %v", err)
	}

	got, _ := GetTool(ctx, database, tool.ID)
	if got.Name != "Drill XL" {
		t.Errorf("expected updated name, got %q", got.Name)
	}
	if got.Brand != "" || got.Notes != "" {
		t.Errorf("expected omitted fields to be cleared, got brand %q notes %q", got.Brand, got.Notes)
	}
	if got.Location != "Shelf B" {
		t.Errorf("expected location 'Shelf B', got %q", got.Location)
	}
}

func TestUpdateToolMissingID(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	err := UpdateTool(ctx, database, 9999, &model.Tool{Name: "Ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestDeleteToolIsHard(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	tool, _ := CreateTool(ctx, database, &model.Tool{Name: "Broken saw"})
	if err := DeleteTool(ctx, database, tool.ID); err != nil {
		t.Fatalf("DeleteTool: %v", err)
	}

	got, err := GetTool(ctx, database, tool.ID)
	if err != nil {
		t.Fatalf("GetTool: %v", err)
	}
	if got != nil {
		t.Errorf("expected deleted tool to be gone, got %+v", got)
	}

	// Deleting again is a no-op, not an error.
	if err := DeleteTool(ctx, database, tool.ID); err != nil {
		t.Errorf("repeat DeleteTool: %v", err)
	}
}

func TestRecentTools(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	for _, name := range []string{"First", "Second", "Third"} {
		if _, err := CreateTool(ctx, database, &model.Tool{Name: name}); err != nil {
			t.Fatalf("CreateTool(%s): %v", name, err)
		}
	}

	recent, err := RecentTools(ctx, database, 2)
	if err != nil {
		t.Fatalf("RecentTools: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent tools, got %d", len(recent))
	}
	if recent[0].Name != "Third" || recent[1].Name != "Second" {
		t.Errorf("expected newest first, got %q, %q", recent[0].Name, recent[1].Name)
	}
}

func TestCompatibleConsumables(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	tool, _ := CreateTool(ctx, database, &model.Tool{Name: "DHP484"})
	CreateConsumable(ctx, database, &model.Consumable{Name: "Driver bits", CompatibleWith: "Makita DHP484, DDF484"})
	CreateConsumable(ctx, database, &model.Consumable{Name: "Sanding discs", CompatibleWith: "Bosch GEX 125"})

	compatible, err := CompatibleConsumables(ctx, database, tool.Name)
	if err != nil {
		t.Fatalf("CompatibleConsumables: %v", err)
	}
	if len(compatible) != 1 || compatible[0].Name != "Driver bits" {
		t.Errorf("expected driver bits, got %+v", compatible)
	}
}
