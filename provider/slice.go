package provider

import (
	"fmt"
	"strings"

	"github.com/Walnut356/syntheticproviders/debuginfo"
	"github.com/Walnut356/syntheticproviders/errors"
	"github.com/Walnut356/syntheticproviders/typename"
)

// SliceProvider handles borrowed contiguous views (&[T] / &mut [T]). The
// layout is a direct length field plus data pointer; the element type
// comes from the pointer's declared pointee, so no name parsing is
// needed.
type SliceProvider struct {
	valobj          debuginfo.Value
	dataPtr         debuginfo.Value
	elementType     debuginfo.Type
	elementTypeName string
	elementSize     uint64
	length          int
}

func NewSliceProvider(v debuginfo.Value) (*SliceProvider, error) {
	p := &SliceProvider{valobj: v}
	if err := p.Refresh(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *SliceProvider) Refresh() error {
	lenChild, ok := p.valobj.ChildByName("length")
	if !ok {
		return errors.FieldMissing(errors.PhaseDecode, nil, "length")
	}
	p.length = int(lenChild.Unsigned())

	p.dataPtr, ok = p.valobj.ChildByName("data_ptr")
	if !ok {
		return errors.FieldMissing(errors.PhaseDecode, nil, "data_ptr")
	}

	unresolved := p.dataPtr.Type().Pointee()
	if unresolved == nil {
		return errors.TypeMismatch(errors.PhaseDecode, []string{"data_ptr"},
			p.dataPtr.Type().Name(), "not a pointer type")
	}
	p.elementTypeName = typename.FromType(unresolved)

	elem, ok := p.valobj.Target().FindFirstType(p.elementTypeName)
	if !ok {
		return errors.NotFound(errors.PhaseDecode, "element type", p.elementTypeName)
	}
	p.elementType = elem
	p.elementSize = elem.ByteSize()
	return nil
}

func (p *SliceProvider) Count() int { return p.length }

func (p *SliceProvider) HasChildren() bool { return true }

func (p *SliceProvider) ChildIndexOf(name string) int { return parseIndexName(name) }

func (p *SliceProvider) ChildAtIndex(i int) (debuginfo.Value, error) {
	if i < 0 || i >= p.length {
		return nil, errors.OutOfBounds(errors.PhaseDecode, nil, i, p.length)
	}
	start := p.dataPtr.Unsigned()
	addr := start + uint64(i)*p.elementSize
	return p.dataPtr.CreateValueFromAddress(fmt.Sprintf("[%d]", i), addr, p.elementType), nil
}

func (p *SliceProvider) DisplayTypeName() string {
	if strings.HasPrefix(p.valobj.Type().Name(), "ref_mut") {
		return fmt.Sprintf("&mut [%s]", p.elementTypeName)
	}
	return fmt.Sprintf("&[%s]", p.elementTypeName)
}

// SliceSummary renders "&[1, 2, 3]".
func SliceSummary(v debuginfo.Value) (string, error) {
	p, err := NewSliceProvider(v)
	if err != nil {
		return "", err
	}
	return sequenceSummary("&[", "]", p)
}
