package provider

import (
	"strings"

	"github.com/Walnut356/syntheticproviders/debuginfo"
	"github.com/Walnut356/syntheticproviders/typename"
)

// TupleProvider handles tuples. Children come straight from the host; the
// display name is reassembled from the resolved element names.
type TupleProvider struct {
	DefaultProvider
}

func NewTupleProvider(v debuginfo.Value) (*TupleProvider, error) {
	return &TupleProvider{DefaultProvider{valobj: v}}, nil
}

func (p *TupleProvider) DisplayTypeName() string {
	var b strings.Builder
	b.WriteByte('(')
	n := p.valobj.ChildCount()
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(typename.FromValue(p.valobj.ChildAtIndex(i)))
	}
	b.WriteByte(')')
	return b.String()
}

// UnitProvider handles the unit type.
type UnitProvider struct {
	DefaultProvider
}

func NewUnitProvider(v debuginfo.Value) (*UnitProvider, error) {
	return &UnitProvider{DefaultProvider{valobj: v}}, nil
}

func (p *UnitProvider) DisplayTypeName() string { return "()" }

// TupleSummary renders "(a, b)" over the value's host children.
func TupleSummary(v debuginfo.Value) (string, error) {
	return sequenceSummary("(", ")", hostChildren{v})
}
