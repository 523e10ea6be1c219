package provider

import (
	"strconv"
	"strings"

	"github.com/Walnut356/syntheticproviders/debuginfo"
	"github.com/Walnut356/syntheticproviders/errors"
	"github.com/Walnut356/syntheticproviders/typename"
)

// Provider exposes a children-based representation of one inspected
// value. Instances are not shared across values and are not safe for
// concurrent use; the host issues one query at a time.
type Provider interface {
	// Refresh recomputes the cached layout view from current memory. It
	// is idempotent and must be called after the host invalidates the
	// underlying value.
	Refresh() error
	Count() int
	HasChildren() bool
	// ChildIndexOf maps a bracketed display name ("[3]") or field name
	// back to a child index, -1 when unknown.
	ChildIndexOf(name string) int
	// ChildAtIndex returns the i-th logical child. Indices outside
	// [0, Count) yield an out-of-bounds error, never a panic.
	ChildAtIndex(i int) (debuginfo.Value, error)
	DisplayTypeName() string
}

// parseIndexName converts a "[N]" display name back to N, -1 otherwise.
func parseIndexName(name string) int {
	s := strings.TrimSuffix(strings.TrimPrefix(name, "["), "]")
	if s == "" {
		return -1
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return -1
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}

// childPath descends through a fixed chain of named fields. A missing
// link means the layout assumptions no longer match the target's compiler
// output, which surfaces as a field_missing error.
func childPath(v debuginfo.Value, names ...string) (debuginfo.Value, error) {
	cur := v
	for i, n := range names {
		c, ok := cur.ChildByName(n)
		if !ok {
			return nil, errors.FieldMissing(errors.PhaseDecode, names[:i], n)
		}
		cur = c
	}
	return cur, nil
}

// DefaultProvider mirrors the host's own view of the value, resolving
// only the display type name. It is the fallthrough for every type the
// registry does not recognize.
type DefaultProvider struct {
	valobj debuginfo.Value
}

func NewDefaultProvider(v debuginfo.Value) (*DefaultProvider, error) {
	return &DefaultProvider{valobj: v}, nil
}

func (p *DefaultProvider) Refresh() error { return nil }

func (p *DefaultProvider) Count() int { return p.valobj.ChildCount() }

func (p *DefaultProvider) HasChildren() bool { return p.valobj.ChildCount() > 0 }

func (p *DefaultProvider) ChildIndexOf(name string) int {
	return p.valobj.IndexOfChildWithName(name)
}

func (p *DefaultProvider) ChildAtIndex(i int) (debuginfo.Value, error) {
	c := p.valobj.ChildAtIndex(i)
	if c == nil {
		return nil, errors.OutOfBounds(errors.PhaseDecode, nil, i, p.valobj.ChildCount())
	}
	return c, nil
}

func (p *DefaultProvider) DisplayTypeName() string {
	return typename.FromValue(p.valobj)
}

// PrimitiveProvider is a leaf: no synthetic children, resolved type name.
type PrimitiveProvider struct {
	valobj debuginfo.Value
}

func NewPrimitiveProvider(v debuginfo.Value) (*PrimitiveProvider, error) {
	return &PrimitiveProvider{valobj: v}, nil
}

func (p *PrimitiveProvider) Refresh() error { return nil }

func (p *PrimitiveProvider) Count() int { return 0 }

func (p *PrimitiveProvider) HasChildren() bool { return false }

func (p *PrimitiveProvider) ChildIndexOf(name string) int { return -1 }

func (p *PrimitiveProvider) ChildAtIndex(i int) (debuginfo.Value, error) {
	return nil, errors.OutOfBounds(errors.PhaseDecode, nil, i, 0)
}

func (p *PrimitiveProvider) DisplayTypeName() string {
	return typename.FromValue(p.valobj)
}

// RefProvider handles pointer and reference chains. Children mirror the
// host's view; the display name is the reconstructed chain prefix
// (&mut &u8, *const *mut u8, ...).
type RefProvider struct {
	DefaultProvider
}

func NewRefProvider(v debuginfo.Value) (*RefProvider, error) {
	return &RefProvider{DefaultProvider{valobj: v}}, nil
}

func (p *RefProvider) DisplayTypeName() string {
	return typename.ChainPrefix(p.valobj.Type())
}

// RefSummary dereferences through every pointer/reference layer and
// returns the pointed-to value's own rendering.
func RefSummary(v debuginfo.Value) (string, error) {
	for {
		t := v.Type()
		if !t.IsPointer() && !t.IsReference() {
			break
		}
		v = v.Dereference()
	}
	return v.Preview(), nil
}

// hostChildren adapts a raw value's host-materialized children to the
// summary formatter.
type hostChildren struct {
	v debuginfo.Value
}

func (h hostChildren) Count() int { return h.v.ChildCount() }

func (h hostChildren) ChildAtIndex(i int) (debuginfo.Value, error) {
	c := h.v.ChildAtIndex(i)
	if c == nil {
		return nil, errors.OutOfBounds(errors.PhaseSummarize, nil, i, h.v.ChildCount())
	}
	return c, nil
}
