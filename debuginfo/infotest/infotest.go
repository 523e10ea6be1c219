// Package infotest provides a deterministic in-memory implementation of
// the debuginfo interfaces: a byte-slice address space plus a declarative
// type table with struct layouts, static-field declarations and enum
// member names.
//
// It exists so that provider behavior can be exercised without a live
// debugger attached; the package tests and cmd/inspect's demo mode both
// build their targets from it.
package infotest

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/Walnut356/syntheticproviders/debuginfo"
)

// Memory is a byte-slice address space mapped at a base address. Reads
// outside the mapped range fail, the same way an unreadable debuggee
// address would.
type Memory struct {
	base uint64
	data []byte
}

// NewMemory maps data at base.
func NewMemory(base uint64, data []byte) *Memory {
	return &Memory{base: base, data: data}
}

// Read implements debuginfo.Memory.
func (m *Memory) Read(addr, length uint64) ([]byte, error) {
	if addr < m.base || addr+length > m.base+uint64(len(m.data)) {
		return nil, fmt.Errorf("address %#x+%d outside mapped range [%#x, %#x)",
			addr, length, m.base, m.base+uint64(len(m.data)))
	}
	off := addr - m.base
	out := make([]byte, length)
	copy(out, m.data[off:off+length])
	return out, nil
}

// PutU64 stores a little-endian u64 at addr.
func (m *Memory) PutU64(addr, v uint64) {
	binary.LittleEndian.PutUint64(m.data[addr-m.base:], v)
}

// PutU32 stores a little-endian u32 at addr.
func (m *Memory) PutU32(addr uint64, v uint32) {
	binary.LittleEndian.PutUint32(m.data[addr-m.base:], v)
}

// PutBytes stores raw bytes at addr.
func (m *Memory) PutBytes(addr uint64, b []byte) {
	copy(m.data[addr-m.base:], b)
}

// Field is one member of a struct layout.
type Field struct {
	Name   string
	Offset uint64
	Type   *Type
}

// Type is a concrete debuginfo.Type. Populate the exported fields and
// register it with Target.Define.
type Type struct {
	TypeName  string
	Size      uint64
	Tag       debuginfo.BasicType
	Pointer   bool
	Reference bool
	PointeeT  *Type
	ElemT     *Type // non-nil marks an array type
	Len       int
	Fields    []Field
	Statics   map[string]*Type
	Members   []string // enumerator names, for enumeration types

	target *Target
}

func (t *Type) Name() string              { return t.TypeName }
func (t *Type) ByteSize() uint64          { return t.Size }
func (t *Type) Basic() debuginfo.BasicType { return t.Tag }
func (t *Type) IsPointer() bool           { return t.Pointer }
func (t *Type) IsReference() bool         { return t.Reference }
func (t *Type) IsArray() bool             { return t.ElemT != nil }

func (t *Type) Pointee() debuginfo.Type {
	if t.PointeeT == nil {
		return nil
	}
	return t.PointeeT
}

func (t *Type) ArrayElementType() debuginfo.Type {
	if t.ElemT == nil {
		return nil
	}
	return t.ElemT
}

func (t *Type) ArrayOf(n int) debuginfo.Type {
	return &Type{
		TypeName: fmt.Sprintf("%s[%d]", t.TypeName, n),
		Size:     t.Size * uint64(n),
		ElemT:    t,
		Len:      n,
		target:   t.target,
	}
}

func (t *Type) Unqualified() debuginfo.Type {
	name := strings.TrimPrefix(t.TypeName, "const ")
	name = strings.TrimSuffix(name, " const")
	if name == t.TypeName {
		return t
	}
	if t.target != nil {
		if found, ok := t.target.FindFirstType(name); ok {
			return found
		}
	}
	c := *t
	c.TypeName = name
	return &c
}

func (t *Type) HasStaticField(name string) bool {
	_, ok := t.Statics[name]
	return ok
}

func (t *Type) StaticFieldType(name string) (debuginfo.Type, bool) {
	ft, ok := t.Statics[name]
	if !ok {
		return nil, false
	}
	return ft, true
}

func (t *Type) EnumMemberName(i int) (string, bool) {
	if i < 0 || i >= len(t.Members) {
		return "", false
	}
	return t.Members[i], true
}

// Target is an in-memory debuggee: a type table plus an address space.
type Target struct {
	mem   debuginfo.Memory
	types map[string]*Type
}

// NewTarget creates a target over mem.
func NewTarget(mem debuginfo.Memory) *Target {
	return &Target{mem: mem, types: make(map[string]*Type)}
}

// Define registers t under its own name and returns it.
func (tg *Target) Define(t *Type) *Type {
	t.target = tg
	tg.types[t.TypeName] = t
	return t
}

// FindFirstType implements debuginfo.Target.
func (tg *Target) FindFirstType(name string) (debuginfo.Type, bool) {
	t, ok := tg.types[name]
	if !ok {
		return nil, false
	}
	return t, true
}

// Memory implements debuginfo.Target.
func (tg *Target) Memory() debuginfo.Memory { return tg.mem }

// ValueAt constructs a value of type t rooted at addr.
func (tg *Target) ValueAt(name string, t *Type, addr uint64) *Value {
	return &Value{name: name, typ: t, addr: addr, target: tg}
}

// Value is a concrete debuginfo.Value over a Target.
type Value struct {
	name   string
	typ    *Type
	addr   uint64
	target *Target
	format debuginfo.Format
}

func (v *Value) Name() string         { return v.name }
func (v *Value) Type() debuginfo.Type { return v.typ }
func (v *Value) Address() uint64      { return v.addr }

func (v *Value) ChildCount() int {
	if v.typ.ElemT != nil {
		return v.typ.Len
	}
	return len(v.typ.Fields)
}

func (v *Value) ChildAtIndex(i int) debuginfo.Value {
	if v.typ.ElemT != nil {
		if i < 0 || i >= v.typ.Len {
			return nil
		}
		return &Value{
			name:   fmt.Sprintf("[%d]", i),
			typ:    v.typ.ElemT,
			addr:   v.addr + uint64(i)*v.typ.ElemT.Size,
			target: v.target,
		}
	}
	if i < 0 || i >= len(v.typ.Fields) {
		return nil
	}
	f := v.typ.Fields[i]
	return &Value{name: f.Name, typ: f.Type, addr: v.addr + f.Offset, target: v.target}
}

func (v *Value) ChildByName(name string) (debuginfo.Value, bool) {
	for i, f := range v.typ.Fields {
		if f.Name == name {
			return v.ChildAtIndex(i), true
		}
	}
	return nil, false
}

func (v *Value) IndexOfChildWithName(name string) int {
	if v.typ.ElemT != nil {
		for i := 0; i < v.typ.Len; i++ {
			if fmt.Sprintf("[%d]", i) == name {
				return i
			}
		}
		return -1
	}
	for i, f := range v.typ.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

func (v *Value) Unsigned() uint64 {
	size := v.typ.Size
	if size > 8 {
		size = 8
	}
	b, err := v.target.mem.Read(v.addr, size)
	if err != nil {
		return 0
	}
	var buf [8]byte
	copy(buf[:], b)
	return binary.LittleEndian.Uint64(buf[:])
}

func (v *Value) Preview() string {
	if v.format == debuginfo.FormatChar {
		return fmt.Sprintf("'%c'", rune(v.Unsigned()))
	}
	if v.typ.Pointer || v.typ.Reference {
		return fmt.Sprintf("%#x", v.Unsigned())
	}
	if v.typ.Tag == debuginfo.BasicBool {
		if v.Unsigned() != 0 {
			return "true"
		}
		return "false"
	}
	if name, ok := fromBasicPreview(v.typ.Tag); ok {
		raw := v.Unsigned()
		if name == 's' {
			return fmt.Sprintf("%d", signExtend(raw, v.typ.Size))
		}
		return fmt.Sprintf("%d", raw)
	}
	if len(v.typ.Fields) > 0 || v.typ.ElemT != nil {
		return "{...}"
	}
	return fmt.Sprintf("%d", v.Unsigned())
}

// fromBasicPreview classifies a tag as signed ('s') or unsigned ('u')
// numeric for preview rendering.
func fromBasicPreview(tag debuginfo.BasicType) (byte, bool) {
	switch tag {
	case debuginfo.BasicSignedChar, debuginfo.BasicShort, debuginfo.BasicInt,
		debuginfo.BasicLong, debuginfo.BasicLongLong, debuginfo.BasicInt128:
		return 's', true
	case debuginfo.BasicChar, debuginfo.BasicUnsignedChar, debuginfo.BasicChar8,
		debuginfo.BasicChar16, debuginfo.BasicChar32, debuginfo.BasicWChar,
		debuginfo.BasicUnsignedShort, debuginfo.BasicUnsignedInt,
		debuginfo.BasicUnsignedLong, debuginfo.BasicUnsignedLongLong,
		debuginfo.BasicUnsignedInt128:
		return 'u', true
	}
	return 0, false
}

func signExtend(raw uint64, size uint64) int64 {
	shift := 64 - size*8
	return int64(raw<<shift) >> shift
}

func (v *Value) Cast(t debuginfo.Type) debuginfo.Value {
	ct, ok := t.(*Type)
	if !ok {
		return v
	}
	return &Value{name: v.name, typ: ct, addr: v.addr, target: v.target, format: v.format}
}

func (v *Value) CreateValueFromAddress(name string, addr uint64, t debuginfo.Type) debuginfo.Value {
	ct, ok := t.(*Type)
	if !ok {
		return nil
	}
	return &Value{name: name, typ: ct, addr: addr, target: v.target}
}

func (v *Value) Dereference() debuginfo.Value {
	if v.typ.PointeeT == nil {
		return v
	}
	return &Value{name: v.name, typ: v.typ.PointeeT, addr: v.Unsigned(), target: v.target}
}

func (v *Value) SetFormat(f debuginfo.Format) debuginfo.Value {
	v.format = f
	return v
}

func (v *Value) Target() debuginfo.Target { return v.target }
