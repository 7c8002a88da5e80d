package authority_test

import (
	"errors"
	"strings"
	"testing"

	authority "github.com/diewo77/go-authority"
	"github.com/diewo77/go-authority/internal/models"
)

func allowAll() *authority.RuleSet {
	return authority.NewRuleSet().CanAny(
		func(_ *authority.Identity, _ any, _ ...any) bool { return true })
}

func TestMapResolver_Instance(t *testing.T) {
	policy := allowAll()
	r := authority.NewMapResolver().Map(models.Article{}, policy)

	got, err := r.Policy(&models.Article{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != authority.Policy(policy) {
		t.Error("expected the mapped instance back")
	}
}

func TestMapResolver_Constructor(t *testing.T) {
	calls := 0
	r := authority.NewMapResolver().Map(models.Article{}, func() authority.Policy {
		calls++
		return allowAll()
	})

	if _, err := r.Policy(&models.Article{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Policy(&models.Article{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected the constructor to run per resolution, got %d calls", calls)
	}
}

func TestMapResolver_Factory(t *testing.T) {
	article := &models.Article{ID: 7}
	var gotResource any
	var gotResolver *authority.MapResolver

	r := authority.NewMapResolver()
	r.Map(models.Article{}, authority.PolicyFactory(
		func(resource any, mr *authority.MapResolver) authority.Policy {
			gotResource = resource
			gotResolver = mr
			return allowAll()
		}))

	if _, err := r.Policy(article); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotResource != any(article) {
		t.Error("factory should receive the resource being resolved")
	}
	if gotResolver != r {
		t.Error("factory should receive the resolving MapResolver")
	}
}

func TestMapResolver_PointerAndValueShareEntry(t *testing.T) {
	policy := allowAll()
	r := authority.NewMapResolver().Map(&models.Article{}, policy)

	if _, err := r.Policy(models.Article{}); err != nil {
		t.Errorf("value lookup should hit the pointer-mapped entry: %v", err)
	}
	if _, err := r.Policy(&models.Article{}); err != nil {
		t.Errorf("pointer lookup should hit the entry: %v", err)
	}
}

func TestMapResolver_Overwrite(t *testing.T) {
	first := allowAll()
	second := allowAll()
	r := authority.NewMapResolver().
		Map(models.Article{}, first).
		Map(models.Article{}, second)

	got, err := r.Policy(&models.Article{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != authority.Policy(second) {
		t.Error("later mappings should overwrite earlier ones")
	}
}

func TestMapResolver_Missing(t *testing.T) {
	r := authority.NewMapResolver()

	_, err := r.Policy(&models.Comment{})
	var mp *authority.MissingPolicyError
	if !errors.As(err, &mp) {
		t.Fatalf("expected MissingPolicyError, got %v", err)
	}
	if mp.Resource != "Comment" {
		t.Errorf("expected resource 'Comment', got '%s'", mp.Resource)
	}
}

func TestMapResolver_InvalidSpecPanics(t *testing.T) {
	defer func() {
		v := recover()
		if v == nil {
			t.Fatal("expected Map to panic on an invalid spec")
		}
		if msg, ok := v.(string); !ok || !strings.Contains(msg, "policy spec") {
			t.Errorf("unexpected panic value: %v", v)
		}
	}()
	authority.NewMapResolver().Map(models.Article{}, "not a policy")
}
