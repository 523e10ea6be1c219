package debuginfo

// BasicType identifies a primitive machine type independent of its
// source-level spelling. The ordering matches the clang-derived basic-type
// enumeration emitted by debug-info backends; table lookups in typename
// index by this value, so the order is load-bearing.
type BasicType uint8

const (
	BasicInvalid BasicType = iota
	BasicVoid
	BasicChar
	BasicSignedChar
	BasicUnsignedChar
	BasicWChar
	BasicSignedWChar
	BasicUnsignedWChar
	BasicChar16
	BasicChar32
	BasicChar8
	BasicShort
	BasicUnsignedShort
	BasicInt
	BasicUnsignedInt
	BasicLong
	BasicUnsignedLong
	BasicLongLong
	BasicUnsignedLongLong
	BasicInt128
	BasicUnsignedInt128
	BasicBool
	BasicHalf
	BasicFloat
	BasicDouble
	BasicLongDouble
	BasicFloatComplex
	BasicDoubleComplex
	BasicLongDoubleComplex
	BasicObjCID
	BasicObjCClass
	BasicObjCSel
	BasicNullPtr
	BasicOther
)

var basicNames = [...]string{
	BasicInvalid:           "invalid",
	BasicVoid:              "void",
	BasicChar:              "char",
	BasicSignedChar:        "signed char",
	BasicUnsignedChar:      "unsigned char",
	BasicWChar:             "wchar_t",
	BasicSignedWChar:       "signed wchar_t",
	BasicUnsignedWChar:     "unsigned wchar_t",
	BasicChar16:            "char16_t",
	BasicChar32:            "char32_t",
	BasicChar8:             "char8_t",
	BasicShort:             "short",
	BasicUnsignedShort:     "unsigned short",
	BasicInt:               "int",
	BasicUnsignedInt:       "unsigned int",
	BasicLong:              "long",
	BasicUnsignedLong:      "unsigned long",
	BasicLongLong:          "long long",
	BasicUnsignedLongLong:  "unsigned long long",
	BasicInt128:            "__int128",
	BasicUnsignedInt128:    "unsigned __int128",
	BasicBool:              "bool",
	BasicHalf:              "half",
	BasicFloat:             "float",
	BasicDouble:            "double",
	BasicLongDouble:        "long double",
	BasicFloatComplex:      "float complex",
	BasicDoubleComplex:     "double complex",
	BasicLongDoubleComplex: "long double complex",
	BasicObjCID:            "id",
	BasicObjCClass:         "Class",
	BasicObjCSel:           "SEL",
	BasicNullPtr:           "nullptr_t",
	BasicOther:             "other",
}

func (b BasicType) String() string {
	if int(b) < len(basicNames) {
		return basicNames[b]
	}
	return "unknown"
}
