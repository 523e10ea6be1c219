package provider

import (
	"testing"

	"github.com/Walnut356/syntheticproviders/debuginfo/infotest"
	"github.com/Walnut356/syntheticproviders/errors"
)

func TestVecProvider(t *testing.T) {
	env := newEnv(t)
	vec := env.defineVec(env.u32, env.u32Ptr, "alloc::vec::Vec<u32,alloc::alloc::Global>")

	env.mem.PutU64(0x1000, 0x1200) // buf.inner.ptr.pointer.pointer
	env.mem.PutU64(0x1008, 4)      // cap
	env.mem.PutU64(0x1010, 3)      // len
	env.mem.PutU32(0x1200, 1)
	env.mem.PutU32(0x1204, 2)
	env.mem.PutU32(0x1208, 3)

	v := env.tg.ValueAt("numbers", vec, 0x1000)
	p, err := NewVecProvider(v)
	if err != nil {
		t.Fatalf("NewVecProvider failed: %v", err)
	}

	if p.Count() != 3 || !p.HasChildren() {
		t.Errorf("Count = %d, HasChildren = %v; want 3, true", p.Count(), p.HasChildren())
	}
	if got := p.DisplayTypeName(); got != "Vec<u32>" {
		t.Errorf("DisplayTypeName = %q, want Vec<u32>", got)
	}

	for i, want := range []uint64{1, 2, 3} {
		c, err := p.ChildAtIndex(i)
		if err != nil {
			t.Fatalf("ChildAtIndex(%d) failed: %v", i, err)
		}
		if c.Unsigned() != want {
			t.Errorf("child %d = %d, want %d", i, c.Unsigned(), want)
		}
		if c.Address() != 0x1200+uint64(i)*4 {
			t.Errorf("child %d address = %#x, want %#x", i, c.Address(), 0x1200+uint64(i)*4)
		}
	}

	if got := p.ChildIndexOf("[2]"); got != 2 {
		t.Errorf("ChildIndexOf([2]) = %d, want 2", got)
	}
	if got := p.ChildIndexOf("len"); got != -1 {
		t.Errorf("ChildIndexOf(len) = %d, want -1", got)
	}

	_, err = p.ChildAtIndex(3)
	wantKind(t, err, errors.PhaseDecode, errors.KindOutOfBounds)
	_, err = p.ChildAtIndex(-1)
	wantKind(t, err, errors.PhaseDecode, errors.KindOutOfBounds)
}

func TestVecProvider_Refresh(t *testing.T) {
	env := newEnv(t)
	vec := env.defineVec(env.u32, env.u32Ptr, "alloc::vec::Vec<u32,alloc::alloc::Global>")

	env.mem.PutU64(0x1000, 0x1200)
	env.mem.PutU64(0x1010, 1)
	env.mem.PutU32(0x1200, 5)

	v := env.tg.ValueAt("numbers", vec, 0x1000)
	p, err := NewVecProvider(v)
	if err != nil {
		t.Fatalf("NewVecProvider failed: %v", err)
	}
	if p.Count() != 1 {
		t.Fatalf("Count = %d, want 1", p.Count())
	}

	// the debuggee grows the vec and reallocates
	env.mem.PutU64(0x1000, 0x1300)
	env.mem.PutU64(0x1010, 2)
	env.mem.PutU32(0x1300, 6)
	env.mem.PutU32(0x1304, 7)

	if err := p.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if p.Count() != 2 {
		t.Errorf("Count after Refresh = %d, want 2", p.Count())
	}
	c, err := p.ChildAtIndex(1)
	if err != nil {
		t.Fatalf("ChildAtIndex(1) failed: %v", err)
	}
	if c.Unsigned() != 7 {
		t.Errorf("child 1 after Refresh = %d, want 7", c.Unsigned())
	}
}

func TestVecProvider_MissingWrapper(t *testing.T) {
	env := newEnv(t)
	broken := env.tg.Define(&infotest.Type{
		TypeName: "alloc::vec::Vec<u32,alloc::alloc::Global>",
		Size:     24,
		Fields:   []infotest.Field{{Name: "len", Offset: 16, Type: env.usize}},
	})
	v := env.tg.ValueAt("numbers", broken, 0x1000)
	_, err := NewVecProvider(v)
	wantKind(t, err, errors.PhaseDecode, errors.KindFieldMissing)
}

func TestVecSummary(t *testing.T) {
	env := newEnv(t)
	vec := env.defineVec(env.u32, env.u32Ptr, "alloc::vec::Vec<u32,alloc::alloc::Global>")
	env.mem.PutU64(0x1000, 0x1200)
	env.mem.PutU64(0x1010, 3)
	env.mem.PutU32(0x1200, 1)
	env.mem.PutU32(0x1204, 2)
	env.mem.PutU32(0x1208, 3)

	v := env.tg.ValueAt("numbers", vec, 0x1000)
	s, err := VecSummary(v)
	if err != nil {
		t.Fatalf("VecSummary failed: %v", err)
	}
	if s != "vec![1, 2, 3]" {
		t.Errorf("VecSummary = %q, want vec![1, 2, 3]", s)
	}
}

func TestFirstGenericParam(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"alloc::vec::Vec<u32,alloc::alloc::Global>", "u32", true},
		{"alloc::vec::Vec<alloc::vec::Vec<u8,alloc::alloc::Global>,alloc::alloc::Global>",
			"alloc::vec::Vec<u8,alloc::alloc::Global>", true},
		{"Vec<u8>", "u8", true},
		{"u32", "", false},
		{"Vec<", "", false},
	}
	for _, tt := range tests {
		got, ok := firstGenericParam(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("firstGenericParam(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
