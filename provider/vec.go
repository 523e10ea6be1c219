package provider

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Walnut356/syntheticproviders/debuginfo"
	"github.com/Walnut356/syntheticproviders/errors"
)

// VecProvider handles the owning growable buffer (alloc::vec::Vec). The
// data pointer sits behind a fixed wrapper chain (raw-vec allocation, then
// two levels of non-null-pointer wrapping), and the element type is not
// reliably present as structured metadata: some accessor functions carry
// it, but they only exist in the binary when the program used them. The
// only dependable source is the container's own generic type name, so the
// first generic parameter is recovered textually and looked up in the
// type system. That works for built-in names like u32 too, since they are
// plain typedefs underneath.
type VecProvider struct {
	valobj      debuginfo.Value
	dataPtr     debuginfo.Value
	elementType debuginfo.Type
	elementSize uint64
	length      int
}

// vecPtrChain is the field path from a Vec to its raw data pointer.
var vecPtrChain = []string{"buf", "inner", "ptr", "pointer", "pointer"}

func NewVecProvider(v debuginfo.Value) (*VecProvider, error) {
	p := &VecProvider{valobj: v}
	if err := p.Refresh(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *VecProvider) Refresh() error {
	lenChild, ok := p.valobj.ChildByName("len")
	if !ok {
		return errors.FieldMissing(errors.PhaseDecode, nil, "len")
	}
	p.length = int(lenChild.Unsigned())

	ptr, err := childPath(p.valobj, vecPtrChain...)
	if err != nil {
		return err
	}
	p.dataPtr = ptr

	elementName, ok := firstGenericParam(p.valobj.Type().Name())
	if !ok {
		return errors.TypeMismatch(errors.PhaseDecode, nil, p.valobj.Type().Name(),
			"no generic parameter in type name")
	}

	elem, ok := p.valobj.Target().FindFirstType(elementName)
	if !ok {
		return errors.NotFound(errors.PhaseDecode, "element type", elementName)
	}
	p.elementType = elem
	p.elementSize = elem.ByteSize()

	Logger().Debug("decoded vec layout",
		zap.String("element", elementName),
		zap.Int("len", p.length))
	return nil
}

// firstGenericParam extracts the text between the first '<' and the first
// top-level ',' (or the matching '>').
func firstGenericParam(name string) (string, bool) {
	_, rest, ok := strings.Cut(name, "<")
	if !ok {
		return "", false
	}
	depth := 0
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '<':
			depth++
		case '>':
			if depth == 0 {
				return strings.TrimSpace(rest[:i]), true
			}
			depth--
		case ',':
			if depth == 0 {
				return strings.TrimSpace(rest[:i]), true
			}
		}
	}
	return strings.TrimSpace(rest), rest != ""
}

func (p *VecProvider) Count() int { return p.length }

func (p *VecProvider) HasChildren() bool { return true }

func (p *VecProvider) ChildIndexOf(name string) int { return parseIndexName(name) }

func (p *VecProvider) ChildAtIndex(i int) (debuginfo.Value, error) {
	if i < 0 || i >= p.length {
		return nil, errors.OutOfBounds(errors.PhaseDecode, nil, i, p.length)
	}
	start := p.dataPtr.Unsigned()
	addr := start + uint64(i)*p.elementSize
	return p.dataPtr.CreateValueFromAddress(fmt.Sprintf("[%d]", i), addr, p.elementType), nil
}

func (p *VecProvider) DisplayTypeName() string {
	return fmt.Sprintf("Vec<%s>", p.elementType.Name())
}

// VecSummary renders "vec![1, 2, 3]".
func VecSummary(v debuginfo.Value) (string, error) {
	p, err := NewVecProvider(v)
	if err != nil {
		return "", err
	}
	return sequenceSummary("vec![", "]", p)
}
