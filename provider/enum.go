package provider

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Walnut356/syntheticproviders/debuginfo"
	"github.com/Walnut356/syntheticproviders/errors"
	"github.com/Walnut356/syntheticproviders/typename"
)

// PayloadKind classifies the active variant's payload shape.
type PayloadKind uint8

const (
	PayloadNone   PayloadKind = iota // discriminant only
	PayloadTuple                     // positional fields (__0, __1, ...)
	PayloadStruct                    // named fields
)

var payloadNames = [...]string{
	PayloadNone:   "none",
	PayloadTuple:  "tuple",
	PayloadStruct: "struct",
}

func (k PayloadKind) String() string {
	if int(k) < len(payloadNames) {
		return payloadNames[k]
	}
	return "unknown"
}

// VariantConfidence states how much the decoded variant can be trusted.
// Tagged layouts with readable name metadata resolve fully; tagged
// layouts whose name metadata is absent are decoded best-effort with an
// empty name; niche layouts cannot be validated at all.
type VariantConfidence uint8

const (
	VariantResolved VariantConfidence = iota
	VariantBestEffort
	VariantUnknown
)

var confidenceNames = [...]string{
	VariantResolved:   "resolved",
	VariantBestEffort: "best_effort",
	VariantUnknown:    "unknown",
}

func (c VariantConfidence) String() string {
	if int(c) < len(confidenceNames) {
		return confidenceNames[c]
	}
	return "unknown"
}

// EnumProvider decodes sum types (enum2$<...> wrappers).
//
// The backend emits two layouts. Tagged layouts carry an explicit tag
// field selecting among variant<N> union members, each of which declares
// a DISCR_EXACT static field. Niche layouts reuse invalid bit patterns of
// a payload field as the discriminant; their variants declare DISCR_BEGIN
// and DISCR_END instead, and those are static fields whose values live
// only in compile-time metadata the host cannot read. Niche variants are
// therefore populated on a best-case basis: the provider treats the value
// itself as the active variant and makes no attempt to prove which
// variant's discriminant range actually matches. This is a documented
// limitation, not a bug to fix here.
//
// Child queries delegate to the active variant's own value, so nested sum
// types (Option<Option<T>>) decode by recursion without special-casing.
type EnumProvider struct {
	valobj      debuginfo.Value
	variant     debuginfo.Value
	variantName string
	tag         uint64
	payload     PayloadKind
	confidence  VariantConfidence
	isNiche     bool
}

func NewEnumProvider(v debuginfo.Value) (*EnumProvider, error) {
	p := &EnumProvider{valobj: v}

	// layout detection is static per type shape, fixed after construction
	n := v.ChildCount()
	for i := 0; i < n-1; i++ {
		c := v.ChildAtIndex(i)
		if c == nil {
			continue
		}
		t := c.Type()
		if strings.HasSuffix(t.Name(), fmt.Sprintf("Variant%d", i)) &&
			!t.HasStaticField("DISCR_EXACT") {
			p.isNiche = true
			Logger().Debug("niche layout detected", zap.String("type", v.Type().Name()))
			break
		}
	}

	if err := p.Refresh(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *EnumProvider) Refresh() error {
	if p.isNiche {
		p.variant = p.valobj
		p.variantName = ""
		p.payload = PayloadNone
		p.confidence = VariantUnknown
		return nil
	}

	tagChild, ok := p.valobj.ChildByName("tag")
	if !ok {
		return errors.FieldMissing(errors.PhaseDecode, nil, "tag")
	}
	p.tag = tagChild.Unsigned()

	variantField, ok := p.valobj.ChildByName(fmt.Sprintf("variant%d", p.tag))
	if !ok {
		return errors.FieldMissing(errors.PhaseDecode, nil, fmt.Sprintf("variant%d", p.tag))
	}
	val, ok := variantField.ChildByName("value")
	if !ok {
		return errors.FieldMissing(errors.PhaseDecode,
			[]string{fmt.Sprintf("variant%d", p.tag)}, "value")
	}
	p.variant = val

	switch {
	case val.ChildCount() == 0:
		p.payload = PayloadNone
	case val.ChildAtIndex(0).Name() == "__0":
		p.payload = PayloadTuple
	default:
		p.payload = PayloadStruct
	}

	p.variantName, p.confidence = resolveVariantName(variantField.Type(), int(p.tag))
	return nil
}

// resolveVariantName recovers the source-level variant name from the
// variant type's NAME static field, whose type is an enumeration with one
// member per variant. Missing metadata yields an empty name rather than
// an error.
func resolveVariantName(t debuginfo.Type, tag int) (string, VariantConfidence) {
	nameField, ok := t.StaticFieldType("NAME")
	if !ok {
		return "", VariantBestEffort
	}
	name, ok := nameField.EnumMemberName(tag)
	if !ok {
		return "", VariantBestEffort
	}
	return name, VariantResolved
}

func (p *EnumProvider) Count() int { return p.variant.ChildCount() }

func (p *EnumProvider) HasChildren() bool { return p.variant.ChildCount() > 0 }

func (p *EnumProvider) ChildIndexOf(name string) int {
	return p.variant.IndexOfChildWithName(name)
}

func (p *EnumProvider) ChildAtIndex(i int) (debuginfo.Value, error) {
	c := p.variant.ChildAtIndex(i)
	if c == nil {
		return nil, errors.OutOfBounds(errors.PhaseDecode, nil, i, p.variant.ChildCount())
	}
	return c, nil
}

func (p *EnumProvider) DisplayTypeName() string {
	return typename.FromValue(p.valobj)
}

// IsNiche reports whether the type uses the niche layout.
func (p *EnumProvider) IsNiche() bool { return p.isNiche }

// Tag returns the explicit discriminant of a tagged layout.
func (p *EnumProvider) Tag() uint64 { return p.tag }

// Payload returns the active variant's payload shape.
func (p *EnumProvider) Payload() PayloadKind { return p.payload }

// VariantName returns the resolved variant name, empty when the name
// metadata was unreadable.
func (p *EnumProvider) VariantName() string { return p.variantName }

// Confidence reports how the active variant was resolved.
func (p *EnumProvider) Confidence() VariantConfidence { return p.confidence }

// Variant returns the active variant's payload value for further
// decoding.
func (p *EnumProvider) Variant() debuginfo.Value { return p.variant }

// EnumSummary renders a one-line summary: "Name" for discriminant-only
// variants, "Name(a, b)" for positional payloads, "Name{x: 1, y: 2}" for
// named payloads. Niche layouts fall back to the underlying value's own
// rendering.
func EnumSummary(v debuginfo.Value) (string, error) {
	p, err := NewEnumProvider(v)
	if err != nil {
		return "", err
	}

	if p.isNiche {
		return v.Preview(), nil
	}

	switch p.payload {
	case PayloadTuple:
		ts, err := TupleSummary(p.variant)
		if err != nil {
			return "", err
		}
		return p.variantName + ts, nil
	case PayloadStruct:
		var b strings.Builder
		b.WriteString(p.variantName)
		b.WriteByte('{')
		n := p.variant.ChildCount()
		for i := 0; i < n; i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			c := p.variant.ChildAtIndex(i)
			b.WriteString(c.Name())
			b.WriteString(": ")
			b.WriteString(c.Preview())
		}
		b.WriteByte('}')
		return b.String(), nil
	default:
		return p.variantName, nil
	}
}
