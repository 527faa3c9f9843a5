package field

import (
	"errors"
	"testing"
)

func TestNewIDsIntegerWidening(t *testing.T) {
	ids, err := NewIDs([]any{int(1), int32(2), int64(3), float64(4)})
	if err != nil {
		t.Fatalf("NewIDs returned error: %v", err)
	}
	if ids.IsStrings() {
		t.Fatal("expected integer ids")
	}
	want := []int64{1, 2, 3, 4}
	got := ids.Int64s()
	if len(got) != len(want) {
		t.Fatalf("got %d ids, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("id[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestNewIDsStrings(t *testing.T) {
	ids, err := NewIDs([]any{"a", "b"})
	if err != nil {
		t.Fatalf("NewIDs returned error: %v", err)
	}
	if !ids.IsStrings() || ids.Len() != 2 {
		t.Errorf("expected 2 string ids, got strings=%v len=%d", ids.IsStrings(), ids.Len())
	}
	if ids.Get(1) != "b" {
		t.Errorf("Get(1) = %v", ids.Get(1))
	}
}

func TestNewIDsRejectsMixedTypes(t *testing.T) {
	_, err := NewIDs([]any{int64(1), "two"})
	if !errors.Is(err, ErrMixedIDTypes) {
		t.Errorf("mixed list: expected mixed id types error, got %v", err)
	}
}

func TestNewIDsRejectsNonIntegralFloat(t *testing.T) {
	_, err := NewIDs([]any{float64(1.5)})
	if !errors.Is(err, ErrUnsupportedFieldType) {
		t.Errorf("fractional id: expected unsupported field type, got %v", err)
	}
}

func TestNewIDsRejectsUnknownType(t *testing.T) {
	_, err := NewIDs([]any{struct{}{}})
	if !errors.Is(err, ErrUnsupportedFieldType) {
		t.Errorf("struct id: expected unsupported field type, got %v", err)
	}
}

func TestIDsSlice(t *testing.T) {
	ids := NewInt64IDs(10, 11, 20)
	first := ids.Slice(0, 2)
	second := ids.Slice(2, 3)
	if first.Len() != 2 || second.Len() != 1 {
		t.Fatalf("slice lengths = %d, %d", first.Len(), second.Len())
	}
	if first.Get(0) != int64(10) || second.Get(0) != int64(20) {
		t.Errorf("slice contents wrong: %v, %v", first.Get(0), second.Get(0))
	}

	strs := NewStringIDs("a", "b", "c")
	tail := strs.Slice(1, 3)
	if tail.Len() != 2 || tail.Get(0) != "b" {
		t.Errorf("string slice wrong: len=%d first=%v", tail.Len(), tail.Get(0))
	}
}
