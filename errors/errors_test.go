package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseDecode,
				Kind:     KindTypeMismatch,
				Path:     []string{"buf", "inner", "ptr"},
				TypeName: "alloc::raw_vec::RawVecInner",
				Detail:   "unexpected wrapper layout",
			},
			contains: []string{"[decode]", "type_mismatch", "buf.inner.ptr",
				"alloc::raw_vec::RawVecInner", "unexpected wrapper layout"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[decode]", "out_of_bounds"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseRead,
				Kind:   KindUnreadableMemory,
				Detail: "read 4 bytes @ 0xdead0000",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[read]", "unreadable_memory", "0xdead0000",
				"caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseRead,
		Kind:  KindUnreadableMemory,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	// Test with errors.Unwrap
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindTypeMismatch,
		Path:  []string{"foo"},
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindTypeMismatch}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseSummarize, Kind: KindTypeMismatch}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Phase: PhaseDecode, Kind: KindTypeMismatch}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseResolve, KindNotFound).
		Path("numbers", "[0]").
		TypeName("alloc::vec::Vec<u32,alloc::alloc::Global>").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "u32", "u64").
		Build()

	if err.Phase != PhaseResolve {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseResolve)
	}
	if err.Kind != KindNotFound {
		t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
	}
	if len(err.Path) != 2 || err.Path[0] != "numbers" || err.Path[1] != "[0]" {
		t.Errorf("Path = %v, want [numbers [0]]", err.Path)
	}
	if err.TypeName != "alloc::vec::Vec<u32,alloc::alloc::Global>" {
		t.Errorf("TypeName = %v", err.TypeName)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected u32, got u64" {
		t.Errorf("Detail = %v, want 'expected u32, got u64'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseDecode, []string{"list"}, 10, 5)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != 10 {
			t.Errorf("Value = %v, want 10", err.Value)
		}
		if !strings.Contains(err.Detail, "10") || !strings.Contains(err.Detail, "5") {
			t.Errorf("Detail = %v, should contain index and length", err.Detail)
		}
	})

	t.Run("ReadFailed", func(t *testing.T) {
		cause := errors.New("page not mapped")
		err := ReadFailed([]string{"data_ptr"}, 0xdead0000, 16, cause)
		if err.Phase != PhaseRead {
			t.Errorf("Phase = %v, want %v", err.Phase, PhaseRead)
		}
		if err.Kind != KindUnreadableMemory {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnreadableMemory)
		}
		if !errors.Is(err, cause) {
			t.Error("cause should unwrap")
		}
		if !strings.Contains(err.Detail, "0xdead0000") {
			t.Errorf("Detail = %v, should contain the address", err.Detail)
		}
	})

	t.Run("FieldMissing", func(t *testing.T) {
		err := FieldMissing(PhaseDecode, []string{"buf"}, "inner")
		if err.Kind != KindFieldMissing {
			t.Errorf("Kind = %v, want %v", err.Kind, KindFieldMissing)
		}
		if !strings.Contains(err.Detail, "inner") {
			t.Errorf("Detail = %v, should contain the field name", err.Detail)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseResolve, "element type", "u32")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !strings.Contains(err.Detail, "element type") || !strings.Contains(err.Detail, "u32") {
			t.Errorf("Detail = %v", err.Detail)
		}
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		err := TypeMismatch(PhaseDecode, []string{"field"}, "u8", "not an array type")
		if err.Kind != KindTypeMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
		}
		if err.TypeName != "u8" {
			t.Errorf("TypeName = %v, want u8", err.TypeName)
		}
	})

	t.Run("InvalidData", func(t *testing.T) {
		err := InvalidData(PhaseSummarize, []string{"str"}, "not valid UTF-8")
		if err.Kind != KindInvalidData {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidData)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("inner")
		err := Wrap(PhaseDecode, KindInvalidIndex, cause, "child lookup failed")
		if err.Kind != KindInvalidIndex {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidIndex)
		}
		if !errors.Is(err, cause) {
			t.Error("cause should unwrap")
		}
	})
}
