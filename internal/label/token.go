// Package label derives stable identity tokens for catalog items and
// assembles printable label batches. A token is a pure function of
// (kind, id); regenerating a label for the same item always yields the
// same token, so printed labels stay valid across reprints.
package label

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/erazemk/delavnica/internal/model"
	"github.com/erazemk/delavnica/internal/store"
)

// ErrInvalidToken is returned when a token is malformed or names an unknown
// kind. Callers fall back to a default destination instead of erroring.
var ErrInvalidToken = errors.New("invalid identity token")

// EncodeToken derives the identity token for a (kind, id) pair. The token
// doubles as the item's canonical page path, so a scanned label lands
// directly on the detail page.
func EncodeToken(ref model.Ref) string {
	return fmt.Sprintf("/%s/%d", ref.Kind.Slug(), ref.ID)
}

// DecodeToken parses an identity token back into a (kind, id) pair.
func DecodeToken(token string) (model.Ref, error) {
	trimmed := strings.TrimPrefix(token, "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return model.Ref{}, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}

	kind, err := model.ParseKind(parts[0])
	if err != nil {
		return model.Ref{}, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id <= 0 {
		return model.Ref{}, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}

	return model.Ref{Kind: kind, ID: id}, nil
}

// Resolve decodes a token and looks up the item it names. A valid token for
// a deleted item returns (nil, nil): stale printed labels are expected to
// outlive inventory, and callers redirect to the kind's listing instead of
// erroring.
func Resolve(ctx context.Context, db *sql.DB, token string) (*model.Summary, error) {
	ref, err := DecodeToken(token)
	if err != nil {
		return nil, err
	}
	return store.GetSummary(ctx, db, ref)
}
