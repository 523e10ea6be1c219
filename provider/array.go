package provider

import (
	"fmt"

	"github.com/Walnut356/syntheticproviders/debuginfo"
	"github.com/Walnut356/syntheticproviders/errors"
	"github.com/Walnut356/syntheticproviders/typename"
)

// ArrayProvider handles fixed-size arrays. The host has already
// materialized the elements as direct children; the only decoding work is
// normalizing the displayed element type name, done with a single bulk
// re-cast of the whole aggregate rather than per element.
type ArrayProvider struct {
	valobj          debuginfo.Value
	length          int
	elementTypeName string
}

func NewArrayProvider(v debuginfo.Value) (*ArrayProvider, error) {
	p := &ArrayProvider{valobj: v}
	if err := p.Refresh(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *ArrayProvider) Refresh() error {
	p.length = p.valobj.ChildCount()

	elem := p.valobj.Type().ArrayElementType()
	if elem == nil {
		return errors.TypeMismatch(errors.PhaseDecode, nil, p.valobj.Type().Name(),
			"not an array type")
	}
	p.elementTypeName = typename.FromType(elem)

	if resolved, ok := p.valobj.Target().FindFirstType(p.elementTypeName); ok {
		p.valobj = p.valobj.Cast(resolved.ArrayOf(p.length))
	}
	return nil
}

func (p *ArrayProvider) Count() int { return p.valobj.ChildCount() }

func (p *ArrayProvider) HasChildren() bool { return true }

func (p *ArrayProvider) ChildIndexOf(name string) int { return parseIndexName(name) }

func (p *ArrayProvider) ChildAtIndex(i int) (debuginfo.Value, error) {
	if i < 0 || i >= p.length {
		return nil, errors.OutOfBounds(errors.PhaseDecode, nil, i, p.length)
	}
	return p.valobj.ChildAtIndex(i), nil
}

func (p *ArrayProvider) DisplayTypeName() string {
	return fmt.Sprintf("[%s; %d]", p.elementTypeName, p.length)
}

// ArraySummary renders "[1, 2, 3, 4]".
func ArraySummary(v debuginfo.Value) (string, error) {
	p, err := NewArrayProvider(v)
	if err != nil {
		return "", err
	}
	return sequenceSummary("[", "]", p)
}
