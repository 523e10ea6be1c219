package debuginfo

import (
	syntheticproviders "github.com/Walnut356/syntheticproviders"
)

// Memory provides raw reads from the debuggee's address space.
type Memory = syntheticproviders.Memory

// Format controls how a scalar value renders its preview.
type Format uint8

const (
	FormatDefault Format = iota
	FormatChar           // render single-byte values as characters
)

// Type describes a declared type as the host's debug info presents it:
// the raw (possibly mangled) name, byte size, basic-type tag and
// pointer/reference/array classification.
type Type interface {
	// Name returns the raw compiler-emitted type name.
	Name() string
	// ByteSize returns the type's size in bytes.
	ByteSize() uint64
	// Basic returns the basic-type tag, BasicInvalid for aggregates.
	Basic() BasicType

	IsPointer() bool
	IsReference() bool
	IsArray() bool

	// Pointee returns the pointed-to type, or nil if the type is not a
	// pointer or reference.
	Pointee() Type
	// ArrayElementType returns the element type of an array type, or nil.
	ArrayElementType() Type
	// ArrayOf returns the type "array of n of this type".
	ArrayOf(n int) Type
	// Unqualified returns the type stripped of cv qualifiers.
	Unqualified() Type

	// HasStaticField reports whether a static field with the given name is
	// declared on the type. The field's value is generally NOT readable;
	// presence alone is meaningful (niche-layout detection keys off it).
	HasStaticField(name string) bool
	// StaticFieldType returns the declared type of a static field.
	StaticFieldType(name string) (Type, bool)
	// EnumMemberName returns the name of the i-th enumerator of an
	// enumeration type.
	EnumMemberName(i int) (string, bool)
}

// Value is an opaque handle to a typed location in the debuggee. The
// library only ever reads through it.
type Value interface {
	// Name returns the value's display name ("len", "[3]", "__0", ...).
	Name() string
	Type() Type
	// Address returns the value's load address, 0 if it does not denote
	// memory.
	Address() uint64

	ChildCount() int
	// ChildAtIndex returns the i-th child, or nil when out of range.
	ChildAtIndex(i int) Value
	// ChildByName returns the child field with the given name.
	ChildByName(name string) (Value, bool)
	// IndexOfChildWithName returns the index of the named child, -1 when
	// absent.
	IndexOfChildWithName(name string) int

	// Unsigned returns the value's bytes interpreted as an unsigned
	// integer.
	Unsigned() uint64
	// Preview returns the host's short scalar rendering of the value.
	// Summary formatting treats previews as atomic units.
	Preview() string

	// Cast reinterprets the value's bytes as t at the same address.
	Cast(t Type) Value
	// CreateValueFromAddress constructs a sibling value of type t at an
	// arbitrary address in the same target.
	CreateValueFromAddress(name string, addr uint64, t Type) Value
	// Dereference follows a pointer or reference one level.
	Dereference() Value
	// SetFormat overrides the preview format. It returns the receiver.
	SetFormat(f Format) Value

	Target() Target
}

// Target is the debuggee-wide capability surface: type lookup by name and
// raw memory access.
type Target interface {
	// FindFirstType resolves a type by its source-level name.
	FindFirstType(name string) (Type, bool)
	Memory() Memory
}
