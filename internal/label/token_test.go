package label

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/delavnica/internal/db"
	"github.com/erazemk/delavnica/internal/model"
	"github.com/erazemk/delavnica/internal/store"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, kind := range model.Kinds {
		ref := model.Ref{Kind: kind, ID: 42}
		token := EncodeToken(ref)

		decoded, err := DecodeToken(token)
		if err != nil {
			t.Errorf("DecodeToken(%q): %v", token, err)
			continue
		}
		if decoded != ref {
			t.Errorf("DecodeToken(%q) = %+v, want %+v", token, decoded, ref)
		}
	}
}

func TestEncodeTokenIsStable(t *testing.T) {
	ref := model.Ref{Kind: model.KindTool, ID: 7}
	if EncodeToken(ref) != EncodeToken(ref) {
		t.Error("token must be a pure function of kind and id")
	}
	if got := EncodeToken(ref); got != "/tools/7" {
		t.Errorf("EncodeToken = %q, want %q", got, "/tools/7")
	}
}

func TestDecodeTokenInvalid(t *testing.T) {
	invalid := []string{
		"",
		"/",
		"/tools",
		"/tools/",
		"/tools/abc",
		"/tools/0",
		"/tools/-1",
		"/widgets/1",
		"/tools/1/extra",
		"tools",
	}

	for _, token := range invalid {
		_, err := DecodeToken(token)
		if err == nil {
			t.Errorf("DecodeToken(%q): expected error", token)
			continue
		}
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("DecodeToken(%q): error %v does not wrap ErrInvalidToken", token, err)
		}
	}
}

func TestDecodeTokenWithoutLeadingSlash(t *testing.T) {
	// Tokens survive being pasted without the leading slash.
	decoded, err := DecodeToken("fasteners/3")
	if err != nil {
		t.Fatalf("DecodeToken: %v", err)
	}
	if decoded.Kind != model.KindFastener || decoded.ID != 3 {
		t.Errorf("unexpected decode: %+v", decoded)
	}
}

func TestResolve(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	tool, err := store.CreateTool(ctx, database, &model.Tool{Name: "Drill"})
	if err != nil {
		t.Fatalf("CreateTool: %v", err)
	}

	token := EncodeToken(model.Ref{Kind: model.KindTool, ID: tool.ID})
	summary, err := Resolve(ctx, database, token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if summary == nil || summary.Name != "Drill" {
		t.Errorf("unexpected summary: %+v", summary)
	}

	// A valid token for a deleted item resolves to nothing, not an error.
	store.DeleteTool(ctx, database, tool.ID)
	summary, err = Resolve(ctx, database, token)
	if err != nil {
		t.Fatalf("Resolve after delete: %v", err)
	}
	if summary != nil {
		t.Errorf("expected nil for deleted item, got %+v", summary)
	}

	// Malformed tokens error so callers can distinguish the two cases.
	if _, err := Resolve(ctx, database, "/nonsense"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
