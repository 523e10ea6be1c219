package main

import (
	"github.com/Walnut356/syntheticproviders/debuginfo"
	"github.com/Walnut356/syntheticproviders/debuginfo/infotest"
)

// rustTypes registers the Rust standard-library layouts the explorer
// understands against a target. ptrSize is the debuggee pointer width (8
// for native, 4 for wasm32 guests); field offsets shift with it.
func rustTypes(tg *infotest.Target, ptrSize uint64) {
	u8 := tg.Define(&infotest.Type{TypeName: "u8", Size: 1, Tag: debuginfo.BasicUnsignedChar})
	u32 := tg.Define(&infotest.Type{TypeName: "u32", Size: 4, Tag: debuginfo.BasicUnsignedInt})
	u64 := tg.Define(&infotest.Type{TypeName: "u64", Size: 8, Tag: debuginfo.BasicUnsignedLongLong})
	usize := tg.Define(&infotest.Type{TypeName: "usize", Size: ptrSize, Tag: debuginfo.BasicUnsignedLongLong})

	// raw element spelling as the backend would emit it, plus its array form
	uchar := tg.Define(&infotest.Type{TypeName: "unsigned char", Size: 1, Tag: debuginfo.BasicUnsignedChar})
	tg.Define(&infotest.Type{TypeName: "unsigned char[4]", Size: 4, ElemT: uchar, Len: 4})

	u8Ptr := tg.Define(&infotest.Type{TypeName: "u8 *", Size: ptrSize, Pointer: true, PointeeT: u8})
	u32Ptr := tg.Define(&infotest.Type{TypeName: "u32 *", Size: ptrSize, Pointer: true, PointeeT: u32})

	// &str: direct data pointer + length
	tg.Define(&infotest.Type{
		TypeName: "&str",
		Size:     2 * ptrSize,
		Fields: []infotest.Field{
			{Name: "data_ptr", Offset: 0, Type: u8Ptr},
			{Name: "length", Offset: ptrSize, Type: usize},
		},
	})

	// Vec<T>: data pointer behind the raw-vec wrapper chain, then len
	vecOf := func(elem *infotest.Type, elemPtr *infotest.Type, name string) *infotest.Type {
		nonNull := tg.Define(&infotest.Type{
			TypeName: "core::ptr::non_null::NonNull<" + elem.TypeName + ">",
			Size:     ptrSize,
			Fields:   []infotest.Field{{Name: "pointer", Offset: 0, Type: elemPtr}},
		})
		unique := tg.Define(&infotest.Type{
			TypeName: "core::ptr::unique::Unique<" + elem.TypeName + ">",
			Size:     ptrSize,
			Fields:   []infotest.Field{{Name: "pointer", Offset: 0, Type: nonNull}},
		})
		inner := tg.Define(&infotest.Type{
			TypeName: "alloc::raw_vec::RawVecInner<alloc::alloc::Global>",
			Size:     2 * ptrSize,
			Fields: []infotest.Field{
				{Name: "ptr", Offset: 0, Type: unique},
				{Name: "cap", Offset: ptrSize, Type: usize},
			},
		})
		rawVec := tg.Define(&infotest.Type{
			TypeName: "alloc::raw_vec::RawVec<" + elem.TypeName + ",alloc::alloc::Global>",
			Size:     2 * ptrSize,
			Fields:   []infotest.Field{{Name: "inner", Offset: 0, Type: inner}},
		})
		return tg.Define(&infotest.Type{
			TypeName: name,
			Size:     3 * ptrSize,
			Fields: []infotest.Field{
				{Name: "buf", Offset: 0, Type: rawVec},
				{Name: "len", Offset: 2 * ptrSize, Type: usize},
			},
		})
	}

	vecOf(u32, u32Ptr, "alloc::vec::Vec<u32,alloc::alloc::Global>")
	vecU8 := vecOf(u8, u8Ptr, "alloc::vec::Vec<u8,alloc::alloc::Global>")

	// String wraps Vec<u8>
	tg.Define(&infotest.Type{
		TypeName: "alloc::string::String",
		Size:     3 * ptrSize,
		Fields:   []infotest.Field{{Name: "vec", Offset: 0, Type: vecU8}},
	})

	// Option<u8>, tagged layout
	names := tg.Define(&infotest.Type{
		TypeName: "core::option::Option<u8>::VariantNames",
		Size:     8,
		Members:  []string{"None", "Some"},
	})
	discr := u64
	nonePayload := tg.Define(&infotest.Type{TypeName: "core::option::Option<u8>::None", Size: 0})
	somePayload := tg.Define(&infotest.Type{
		TypeName: "core::option::Option<u8>::Some",
		Size:     1,
		Fields:   []infotest.Field{{Name: "__0", Offset: 0, Type: u8}},
	})
	variant0 := tg.Define(&infotest.Type{
		TypeName: "enum2$<core::option::Option<u8> >::Variant0",
		Size:     0,
		Fields:   []infotest.Field{{Name: "value", Offset: 0, Type: nonePayload}},
		Statics:  map[string]*infotest.Type{"DISCR_EXACT": discr, "NAME": names},
	})
	variant1 := tg.Define(&infotest.Type{
		TypeName: "enum2$<core::option::Option<u8> >::Variant1",
		Size:     1,
		Fields:   []infotest.Field{{Name: "value", Offset: 0, Type: somePayload}},
		Statics:  map[string]*infotest.Type{"DISCR_EXACT": discr, "NAME": names},
	})
	tg.Define(&infotest.Type{
		TypeName: "enum2$<core::option::Option<u8> >",
		Size:     16,
		Fields: []infotest.Field{
			{Name: "variant0", Offset: 0, Type: variant0},
			{Name: "variant1", Offset: 0, Type: variant1},
			{Name: "tag", Offset: 8, Type: u64},
		},
	})
}

type root struct {
	name     string
	typeName string
	addr     uint64
}

// demoTarget builds a canned debuggee: a handful of Rust values laid out
// in a byte-slice address space.
func demoTarget() (*infotest.Target, []root) {
	mem := infotest.NewMemory(0x1000, make([]byte, 0x1000))
	tg := infotest.NewTarget(mem)
	rustTypes(tg, 8)

	// "hi" at 0x1100, &str struct at 0x1010
	mem.PutBytes(0x1100, []byte("hi"))
	mem.PutU64(0x1010, 0x1100)
	mem.PutU64(0x1018, 2)

	// [1, 2, 3]u32 at 0x1110, Vec<u32> struct at 0x1020
	mem.PutU32(0x1110, 1)
	mem.PutU32(0x1114, 2)
	mem.PutU32(0x1118, 3)
	mem.PutU64(0x1020, 0x1110) // buf.inner.ptr.pointer.pointer
	mem.PutU64(0x1028, 4)      // cap
	mem.PutU64(0x1030, 3)      // len

	// "ferris" at 0x1120, String struct at 0x1040
	mem.PutBytes(0x1120, []byte("ferris"))
	mem.PutU64(0x1040, 0x1120)
	mem.PutU64(0x1048, 8)
	mem.PutU64(0x1050, 6)

	// [u8; 4] at 0x1060
	mem.PutBytes(0x1060, []byte{1, 2, 3, 4})

	// Some(42) at 0x1080
	mem.PutBytes(0x1080, []byte{42})
	mem.PutU64(0x1088, 1)

	return tg, []root{
		{"greeting", "&str", 0x1010},
		{"numbers", "alloc::vec::Vec<u32,alloc::alloc::Global>", 0x1020},
		{"name", "alloc::string::String", 0x1040},
		{"bytes", "unsigned char[4]", 0x1060},
		{"maybe", "enum2$<core::option::Option<u8> >", 0x1080},
	}
}
