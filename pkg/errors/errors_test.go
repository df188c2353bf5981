package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "with name",
			err:  New("event.RegisterEventType", KindNaming, "start"),
			want: `event.RegisterEventType [naming] "start"`,
		},
		{
			name: "with wrapped error",
			err:  Wrap("property.Discover", KindConfig, "touch_down", fmt.Errorf("forbidden name")),
			want: `property.Discover [config] "touch_down": forbidden name`,
		},
		{
			name: "bare",
			err:  &Error{Op: "event.Dispatch", Kind: KindLookup},
			want: "event.Dispatch [lookup]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsKind(t *testing.T) {
	err := New("event.Dispatch", KindLookup, "on_start")
	wrapped := fmt.Errorf("dispatching: %w", err)

	if !IsKind(wrapped, KindLookup) {
		t.Error("IsKind should see through wrapping")
	}
	if IsKind(wrapped, KindNaming) {
		t.Error("IsKind should not match a different kind")
	}
	if IsKind(stderrors.New("plain"), KindLookup) {
		t.Error("IsKind should not match a plain error")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(New("op", KindConfig, "")); got != KindConfig {
		t.Errorf("KindOf = %v, want %v", got, KindConfig)
	}
	if got := KindOf(stderrors.New("plain")); got != KindUnknown {
		t.Errorf("KindOf(plain) = %v, want %v", got, KindUnknown)
	}
}

func TestUnwrap(t *testing.T) {
	inner := stderrors.New("inner")
	err := Wrap("op", KindConfig, "n", inner)
	if !stderrors.Is(err, inner) {
		t.Error("Wrap should preserve the underlying error for errors.Is")
	}
}
