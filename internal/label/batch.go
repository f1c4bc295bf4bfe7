package label

import (
	"context"
	"database/sql"

	"github.com/erazemk/delavnica/internal/model"
	"github.com/erazemk/delavnica/internal/store"
)

// Selection is a mixed pick of item IDs across all kinds for one label batch.
type Selection struct {
	Tools       []int64 `json:"tools,omitempty"`
	Consumables []int64 `json:"consumables,omitempty"`
	Materials   []int64 `json:"materials,omitempty"`
	Fasteners   []int64 `json:"fasteners,omitempty"`
}

// Label is one printable label: the item's display summary plus its
// identity token.
type Label struct {
	model.Summary
	Token string `json:"token"`
}

// Assemble builds the ordered label batch for a selection: tools first, then
// consumables, materials, and fasteners, each group in the caller's id
// order. Items that no longer exist are dropped silently; a half-stale
// selection still prints the labels that can be printed.
func Assemble(ctx context.Context, db *sql.DB, sel Selection) ([]Label, error) {
	var labels []Label

	groups := []struct {
		kind model.Kind
		ids  []int64
	}{
		{model.KindTool, sel.Tools},
		{model.KindConsumable, sel.Consumables},
		{model.KindMaterial, sel.Materials},
		{model.KindFastener, sel.Fasteners},
	}

	for _, g := range groups {
		for _, id := range g.ids {
			ref := model.Ref{Kind: g.kind, ID: id}
			summary, err := store.GetSummary(ctx, db, ref)
			if err != nil {
				return nil, err
			}
			if summary == nil {
				continue
			}
			labels = append(labels, Label{Summary: *summary, Token: EncodeToken(ref)})
		}
	}

	return labels, nil
}
