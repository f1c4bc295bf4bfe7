package model

import "fmt"

// Kind identifies one of the four item categories in the catalog.
type Kind string

// Item kinds.
const (
	KindTool       Kind = "tool"
	KindConsumable Kind = "consumable"
	KindMaterial   Kind = "material"
	KindFastener   Kind = "fastener"
)

// Kinds lists all item kinds in canonical order.
var Kinds = []Kind{KindTool, KindConsumable, KindMaterial, KindFastener}

// ParseKind converts a string to a Kind. Accepts both the singular form
// ("tool") and the plural slug used in URLs and tokens ("tools").
func ParseKind(s string) (Kind, error) {
	switch s {
	case "tool", "tools":
		return KindTool, nil
	case "consumable", "consumables":
		return KindConsumable, nil
	case "material", "materials":
		return KindMaterial, nil
	case "fastener", "fasteners":
		return KindFastener, nil
	}
	return "", fmt.Errorf("unknown item kind: %q", s)
}

// Slug returns the plural form used in URLs, tokens, and table names.
func (k Kind) Slug() string {
	return string(k) + "s"
}

// Depletable reports whether items of this kind track quantity against a
// minimum. Tools are owned, not consumed.
func (k Kind) Depletable() bool {
	return k != KindTool
}

// Label returns the human-readable name for list headings.
func (k Kind) Label() string {
	switch k {
	case KindTool:
		return "Tools"
	case KindConsumable:
		return "Consumables"
	case KindMaterial:
		return "Materials"
	case KindFastener:
		return "Fasteners"
	}
	return string(k)
}

// Ref is the compound key the cross-cutting components (favorites, identity
// tokens, label batches) operate on. The same ID under two different kinds
// refers to two independent items.
type Ref struct {
	Kind Kind  `json:"kind"`
	ID   int64 `json:"id"`
}
