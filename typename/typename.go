// Package typename maps debug-info type descriptors to Rust-level type
// names.
//
// Numeric basic types resolve through a signedness table indexed by the
// basic-type tag, with bit widths taken from the descriptor's byte size.
// Everything else resolves by rewriting the compiler-emitted name string:
// the MSVC backend encodes sum types as enum2$<...> wrappers and generics
// with their full module paths, and those conventions are regular enough
// that string matching alone recovers the source-level spelling.
package typename

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Walnut356/syntheticproviders/debuginfo"
)

// numTypeTable is indexed by the basic-type tag and reports whether the
// tag is numeric and, if so, whether it is signed. A table lookup beats a
// long if-else chain here since the tags are dense small integers.
var numTypeTable = [...]struct{ numeric, signed bool }{
	debuginfo.BasicInvalid:           {false, false},
	debuginfo.BasicVoid:              {false, false},
	debuginfo.BasicChar:              {true, false},
	debuginfo.BasicSignedChar:        {true, true},
	debuginfo.BasicUnsignedChar:      {true, false},
	debuginfo.BasicWChar:             {true, false},
	debuginfo.BasicSignedWChar:       {true, true},
	debuginfo.BasicUnsignedWChar:     {true, false},
	debuginfo.BasicChar16:            {true, false},
	debuginfo.BasicChar32:            {true, false},
	debuginfo.BasicChar8:             {true, false},
	debuginfo.BasicShort:             {true, true},
	debuginfo.BasicUnsignedShort:     {true, false},
	debuginfo.BasicInt:               {true, true},
	debuginfo.BasicUnsignedInt:       {true, false},
	debuginfo.BasicLong:              {true, true},
	debuginfo.BasicUnsignedLong:      {true, false},
	debuginfo.BasicLongLong:          {true, true},
	debuginfo.BasicUnsignedLongLong:  {true, false},
	debuginfo.BasicInt128:            {true, true},
	debuginfo.BasicUnsignedInt128:    {true, false},
	debuginfo.BasicBool:              {false, false},
	debuginfo.BasicHalf:              {true, true},
	debuginfo.BasicFloat:             {true, true},
	debuginfo.BasicDouble:            {true, true},
	debuginfo.BasicLongDouble:        {true, true},
	debuginfo.BasicFloatComplex:      {true, true},
	debuginfo.BasicDoubleComplex:     {true, true},
	debuginfo.BasicLongDoubleComplex: {true, true},
	debuginfo.BasicObjCID:            {false, false},
	debuginfo.BasicObjCClass:         {false, false},
	debuginfo.BasicObjCSel:           {false, false},
	debuginfo.BasicNullPtr:           {false, false},
	debuginfo.BasicOther:             {false, false},
}

// FromBasic maps a numeric basic-type tag and byte size to the Rust
// fixed-width name (i32, u64, f64). The second return is false for
// non-numeric tags, which must resolve by name instead.
func FromBasic(tag debuginfo.BasicType, byteSize uint64) (string, bool) {
	if int(tag) >= len(numTypeTable) {
		return "", false
	}
	entry := numTypeTable[tag]
	if !entry.numeric {
		return "", false
	}

	bits := byteSize * 8
	if debuginfo.BasicHalf <= tag && tag <= debuginfo.BasicLongDouble {
		return fmt.Sprintf("f%d", bits), true
	}
	if entry.signed {
		return fmt.Sprintf("i%d", bits), true
	}
	return fmt.Sprintf("u%d", bits), true
}

// FromType resolves a type descriptor to its Rust-level name. Numeric
// basic types map to fixed-width names; everything else keeps the raw
// name.
func FromType(t debuginfo.Type) string {
	if name, ok := FromBasic(t.Basic(), t.ByteSize()); ok {
		return name
	}
	return t.Name()
}

// FromValue resolves a value's declared type to its Rust-level name,
// rewriting recognized wrapper encodings in the raw name.
func FromValue(v debuginfo.Value) string {
	t := v.Type()
	if name, ok := FromBasic(t.Basic(), t.ByteSize()); ok {
		return name
	}
	return strings.ReplaceAll(FromName(t.Name()), " >", ">")
}

// nameCache memoizes FromName. Resolution recurses through nested generic
// parameters with a fair amount of string slicing, and hosts re-resolve
// the same names on every stop, so identical inputs are answered from the
// cache. Read-mostly, safe for concurrent hosts.
var nameCache sync.Map // string -> string

// FromName rewrites a raw compiler-emitted type name into its Rust-level
// spelling. Unrecognized names pass through unchanged; malformed input is
// never an error.
func FromName(name string) string {
	if cached, ok := nameCache.Load(name); ok {
		return cached.(string)
	}
	resolved := resolveName(name)
	nameCache.Store(name, resolved)
	return resolved
}

func resolveName(name string) string {
	switch {
	case strings.HasPrefix(name, "enum2$<"):
		// sum-type marker wrapper: unwrap and resolve the payload name
		inner := strings.Replace(name, "enum2$<", "", 1)
		return FromName(trimCloser(inner))
	case strings.HasPrefix(name, "core::option::Option"):
		inner := strings.Replace(name, "core::option::Option<", "", 1)
		return "Option<" + FromName(trimCloser(inner)) + ">"
	case strings.HasPrefix(name, "alloc::vec::Vec"):
		inner := strings.TrimPrefix(name, "alloc::vec::Vec<")
		inner = strings.Replace(inner, ",alloc::alloc::Global>", "", 1)
		return "Vec<" + FromName(inner) + ">"
	default:
		return name
	}
}

// trimCloser drops the wrapper's closing bracket. The backend pads nested
// closers with a space ("Option<u8 >"), so both forms are handled.
func trimCloser(s string) string {
	if strings.HasSuffix(s, " >") {
		return s[:len(s)-2]
	}
	if strings.HasSuffix(s, ">") {
		return s[:len(s)-1]
	}
	return s
}
