package property

import (
	"reflect"
	"testing"

	"github.com/go-drift/observe/pkg/errors"
)

type sliderDecl struct{}

func (sliderDecl) DeclareProperties() map[string]Descriptor {
	return map[string]Descriptor{
		"value": NewValue(0.0),
		"label": NewValue(""),
	}
}

type switchDecl struct{}

func (switchDecl) DeclareProperties() map[string]Descriptor {
	return map[string]Descriptor{
		"active": NewValue(false),
	}
}

type badDecl struct{}

func (badDecl) DeclareProperties() map[string]Descriptor {
	return map[string]Descriptor{
		"touch_down": NewValue(nil),
	}
}

func TestDiscoverCachesPerType(t *testing.T) {
	r := NewRegistry()

	t1, err := r.Discover(sliderDecl{})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	t2, err := r.Discover(sliderDecl{})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	if reflect.ValueOf(t1).Pointer() != reflect.ValueOf(t2).Pointer() {
		t.Error("instances of one type must share the identical cached table")
	}
	if t1["value"] != t2["value"] {
		t.Error("descriptor identities must be shared across instances")
	}
}

func TestDiscoverIndependentPerType(t *testing.T) {
	r := NewRegistry()

	st1, err := r.Discover(sliderDecl{})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	st2, err := r.Discover(switchDecl{})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	if reflect.ValueOf(st1).Pointer() == reflect.ValueOf(st2).Pointer() {
		t.Error("different types must get independent cache entries")
	}
	if _, ok := st2["value"]; ok {
		t.Error("tables must not leak between types")
	}
}

func TestDiscoverRejectsForbiddenNames(t *testing.T) {
	r := NewRegistry()

	_, err := r.Discover(badDecl{})
	if err == nil {
		t.Fatal("expected an error for a forbidden property name")
	}
	if !errors.IsKind(err, errors.KindConfig) {
		t.Errorf("expected a config error, got %v", err)
	}
}

func TestForbidden(t *testing.T) {
	for _, name := range []string{"touch_down", "touch_move", "touch_up"} {
		if !Forbidden(name) {
			t.Errorf("%s should be forbidden", name)
		}
	}
	if Forbidden("value") {
		t.Error("ordinary names must not be forbidden")
	}
}

func TestMerge(t *testing.T) {
	base := map[string]Descriptor{"value": NewValue(0)}
	override := NewValue(100)
	merged := Merge(base, map[string]Descriptor{"value": override, "step": NewValue(1)})

	if merged["value"] != override {
		t.Error("later tables should override earlier ones")
	}
	if len(merged) != 2 {
		t.Errorf("merged table has %d entries, want 2", len(merged))
	}
}
