package typename

import (
	"strings"
	"testing"

	"github.com/Walnut356/syntheticproviders/debuginfo"
)

// fakeType is a minimal debuginfo.Type for name-resolution tests.
type fakeType struct {
	name      string
	size      uint64
	tag       debuginfo.BasicType
	pointer   bool
	reference bool
	pointee   *fakeType
}

func (t *fakeType) Name() string                { return t.name }
func (t *fakeType) ByteSize() uint64            { return t.size }
func (t *fakeType) Basic() debuginfo.BasicType  { return t.tag }
func (t *fakeType) IsPointer() bool             { return t.pointer }
func (t *fakeType) IsReference() bool           { return t.reference }
func (t *fakeType) IsArray() bool               { return false }
func (t *fakeType) ArrayOf(n int) debuginfo.Type { return nil }

func (t *fakeType) Pointee() debuginfo.Type {
	if t.pointee == nil {
		return nil
	}
	return t.pointee
}

func (t *fakeType) ArrayElementType() debuginfo.Type { return nil }

func (t *fakeType) Unqualified() debuginfo.Type {
	name := strings.TrimPrefix(t.name, "const ")
	name = strings.TrimSuffix(name, " const")
	if name == t.name {
		return t
	}
	c := *t
	c.name = name
	return &c
}

func (t *fakeType) HasStaticField(string) bool { return false }

func (t *fakeType) StaticFieldType(string) (debuginfo.Type, bool) { return nil, false }

func (t *fakeType) EnumMemberName(int) (string, bool) { return "", false }

func u8Type() *fakeType {
	return &fakeType{name: "unsigned char", tag: debuginfo.BasicUnsignedChar, size: 1}
}

func constU8Type() *fakeType {
	return &fakeType{name: "const unsigned char", tag: debuginfo.BasicUnsignedChar, size: 1}
}

func TestChainPrefix(t *testing.T) {
	u8 := u8Type()
	constU8 := constU8Type()

	tests := []struct {
		name string
		typ  *fakeType
		want string
	}{
		{
			name: "depth zero",
			typ:  u8,
			want: "u8",
		},
		{
			name: "depth zero qualified",
			typ:  constU8,
			want: "u8",
		},
		{
			name: "shared ref",
			typ:  &fakeType{name: "unsigned char &", reference: true, size: 8, pointee: constU8},
			want: "&u8",
		},
		{
			name: "mut ref",
			typ:  &fakeType{name: "unsigned char &", reference: true, size: 8, pointee: u8},
			want: "&mut u8",
		},
		{
			name: "const raw pointer",
			typ:  &fakeType{name: "const unsigned char *", pointer: true, size: 8, pointee: constU8},
			want: "*const u8",
		},
		{
			name: "mut raw pointer",
			typ:  &fakeType{name: "unsigned char *", pointer: true, size: 8, pointee: u8},
			want: "*mut u8",
		},
		{
			name: "rvalue ref marks inner pointer as ref",
			typ: &fakeType{name: "unsigned char *&&", reference: true, size: 8,
				pointee: &fakeType{name: "unsigned char *", pointer: true, size: 8, pointee: u8}},
			want: "&mut &mut u8",
		},
		{
			name: "ref to const pointer",
			typ: &fakeType{name: "unsigned char *const &", reference: true, size: 8,
				pointee: &fakeType{name: "unsigned char *const", pointer: true, size: 8, pointee: constU8}},
			want: "&*const u8",
		},
		{
			name: "pointer to pointer",
			typ: &fakeType{name: "const unsigned char **", pointer: true, size: 8,
				pointee: &fakeType{name: "const unsigned char *", pointer: true, size: 8, pointee: constU8}},
			want: "*mut *const u8",
		},
		{
			name: "depth four mixed",
			typ: &fakeType{name: "unsigned char **&&", reference: true, size: 8,
				pointee: &fakeType{name: "unsigned char **", pointer: true, size: 8,
					pointee: &fakeType{name: "unsigned char *", pointer: true, size: 8,
						pointee: u8}}},
			want: "&mut &mut *mut u8",
		},
		{
			name: "triple pointer",
			typ: &fakeType{name: "const unsigned char ***", pointer: true, size: 8,
				pointee: &fakeType{name: "const unsigned char **", pointer: true, size: 8,
					pointee: &fakeType{name: "const unsigned char *", pointer: true, size: 8,
						pointee: constU8}}},
			want: "*mut *mut *const u8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChainPrefix(tt.typ); got != tt.want {
				t.Errorf("ChainPrefix = %q, want %q", got, tt.want)
			}
		})
	}
}
