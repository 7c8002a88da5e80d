package authority_test

import (
	"testing"

	authority "github.com/diewo77/go-authority"
	"github.com/diewo77/go-authority/internal/models"
)

func TestIdentity_OriginalData(t *testing.T) {
	data := map[string]any{"id": 9, "role": "admin"}
	identity := authority.NewIdentity(nil, data)

	got := identity.OriginalData()
	if len(got) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(got))
	}
	// same map, not a copy
	data["probe"] = true
	if _, ok := got["probe"]; !ok {
		t.Error("expected OriginalData to return the wrapped map itself")
	}
}

func TestIdentity_Attrs(t *testing.T) {
	identity := authority.NewIdentity(nil, map[string]any{
		"id":    9,
		"role":  "admin",
		"score": 4.5,
	})

	if identity.Attr("role") != "admin" {
		t.Errorf("expected 'admin', got %v", identity.Attr("role"))
	}
	if identity.Attr("missing") != nil {
		t.Error("expected nil for a missing attribute")
	}
	if !identity.Has("id") || identity.Has("missing") {
		t.Error("Has should report presence only")
	}
	if identity.StringAttr("role") != "admin" {
		t.Errorf("expected 'admin', got '%s'", identity.StringAttr("role"))
	}
	if identity.StringAttr("id") != "" {
		t.Error("StringAttr on a non-string should be empty")
	}
	if identity.IntAttr("id") != 9 {
		t.Errorf("expected 9, got %d", identity.IntAttr("id"))
	}
	if identity.UintAttr("id") != 9 {
		t.Errorf("expected 9, got %d", identity.UintAttr("id"))
	}
	if identity.IntAttr("score") != 4 {
		t.Errorf("expected truncated 4, got %d", identity.IntAttr("score"))
	}
	if identity.UintAttr("role") != 0 {
		t.Error("UintAttr on a non-number should be 0")
	}
}

func TestIdentity_UintAttr_Negative(t *testing.T) {
	identity := authority.NewIdentity(nil, map[string]any{"id": -3})
	if identity.UintAttr("id") != 0 {
		t.Error("negative ids must not wrap around")
	}
}

func TestIdentity_CanDelegates(t *testing.T) {
	svc := newArticleService()
	identity := authority.NewIdentity(svc, map[string]any{"role": "admin"})

	allowed, err := identity.Can("add", &models.Article{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Error("expected delegation to the service decision")
	}
}

func TestIdentity_ApplyScopeDelegates(t *testing.T) {
	svc := newArticleService()
	identity := authority.NewIdentity(svc, map[string]any{"id": 9})

	article := &models.Article{}
	scoped, err := identity.ApplyScope("index", article)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scoped != any(article) || article.UserID != 9 {
		t.Error("expected the scoped article back with user_id set")
	}
}

func TestIdentity_PassedToPolicy(t *testing.T) {
	var seen *authority.Identity
	policy := authority.NewRuleSet().Can("view",
		func(identity *authority.Identity, _ any, _ ...any) bool {
			seen = identity
			return true
		})
	resolver := authority.NewMapResolver().Map(models.Article{}, policy)
	svc := authority.NewService(resolver)
	identity := authority.NewIdentity(svc, map[string]any{"id": 1})

	if _, err := identity.Can("view", &models.Article{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != identity {
		t.Error("policy should receive the calling identity wrapper")
	}
}
