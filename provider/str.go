package provider

import (
	"fmt"
	"strings"

	"github.com/Walnut356/syntheticproviders/debuginfo"
	"github.com/Walnut356/syntheticproviders/errors"
)

// StrProvider handles the borrowed UTF-8 view (&str): a direct data
// pointer plus byte length. Children are the individual bytes, rendered
// as characters.
type StrProvider struct {
	valobj  debuginfo.Value
	dataPtr debuginfo.Value
	length  int
}

func NewStrProvider(v debuginfo.Value) (*StrProvider, error) {
	p := &StrProvider{valobj: v}
	if err := p.Refresh(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *StrProvider) Refresh() error {
	var ok bool
	p.dataPtr, ok = p.valobj.ChildByName("data_ptr")
	if !ok {
		return errors.FieldMissing(errors.PhaseDecode, nil, "data_ptr")
	}
	lenChild, ok := p.valobj.ChildByName("length")
	if !ok {
		return errors.FieldMissing(errors.PhaseDecode, nil, "length")
	}
	p.length = int(lenChild.Unsigned())
	return nil
}

func (p *StrProvider) Count() int { return p.length }

func (p *StrProvider) HasChildren() bool { return true }

func (p *StrProvider) ChildIndexOf(name string) int { return parseIndexName(name) }

func (p *StrProvider) ChildAtIndex(i int) (debuginfo.Value, error) {
	if i < 0 || i >= p.length {
		return nil, errors.OutOfBounds(errors.PhaseDecode, nil, i, p.length)
	}
	addr := p.dataPtr.Unsigned() + uint64(i)
	elem := p.dataPtr.CreateValueFromAddress(fmt.Sprintf("[%d]", i), addr,
		p.dataPtr.Type().Pointee())
	return elem.SetFormat(debuginfo.FormatChar), nil
}

func (p *StrProvider) DisplayTypeName() string { return "&str" }

// StrSummary reads the whole byte range in one memory fetch and decodes
// it as UTF-8, replacing invalid sequences. Zero length is an empty
// string; a failed read is a hard error, since it means the target's
// memory is unreadable rather than the string being empty.
func StrSummary(v debuginfo.Value) (string, error) {
	ptr, ok := v.ChildByName("data_ptr")
	if !ok {
		return "", errors.FieldMissing(errors.PhaseSummarize, nil, "data_ptr")
	}
	lenChild, ok := v.ChildByName("length")
	if !ok {
		return "", errors.FieldMissing(errors.PhaseSummarize, nil, "length")
	}
	return readUTF8(v, ptr.Unsigned(), lenChild.Unsigned())
}

// StringProvider handles the owned UTF-8 buffer (alloc::string::String),
// which wraps a Vec<u8>: the data pointer sits behind the same wrapper
// chain, the length on the inner vec.
type StringProvider struct {
	valobj      debuginfo.Value
	dataPtr     debuginfo.Value
	elementType debuginfo.Type
	length      int
}

func NewStringProvider(v debuginfo.Value) (*StringProvider, error) {
	p := &StringProvider{valobj: v}
	if err := p.Refresh(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *StringProvider) Refresh() error {
	innerVec, ok := p.valobj.ChildByName("vec")
	if !ok {
		return errors.FieldMissing(errors.PhaseDecode, nil, "vec")
	}

	ptr, err := childPath(innerVec, vecPtrChain...)
	if err != nil {
		return err
	}
	p.dataPtr = ptr

	lenChild, ok := innerVec.ChildByName("len")
	if !ok {
		return errors.FieldMissing(errors.PhaseDecode, []string{"vec"}, "len")
	}
	p.length = int(lenChild.Unsigned())
	p.elementType = p.dataPtr.Type().Pointee()
	return nil
}

func (p *StringProvider) Count() int { return p.length }

func (p *StringProvider) HasChildren() bool { return true }

func (p *StringProvider) ChildIndexOf(name string) int { return parseIndexName(name) }

func (p *StringProvider) ChildAtIndex(i int) (debuginfo.Value, error) {
	if i < 0 || i >= p.length {
		return nil, errors.OutOfBounds(errors.PhaseDecode, nil, i, p.length)
	}
	addr := p.dataPtr.Unsigned() + uint64(i)
	elem := p.dataPtr.CreateValueFromAddress(fmt.Sprintf("[%d]", i), addr, p.elementType)
	return elem.SetFormat(debuginfo.FormatChar), nil
}

func (p *StringProvider) DisplayTypeName() string { return "String" }

// StringSummary decodes the owned buffer's full contents, mirroring
// StrSummary's error policy.
func StringSummary(v debuginfo.Value) (string, error) {
	innerVec, ok := v.ChildByName("vec")
	if !ok {
		return "", errors.FieldMissing(errors.PhaseSummarize, nil, "vec")
	}
	ptr, err := childPath(innerVec, vecPtrChain...)
	if err != nil {
		return "", err
	}
	lenChild, ok := innerVec.ChildByName("len")
	if !ok {
		return "", errors.FieldMissing(errors.PhaseSummarize, []string{"vec"}, "len")
	}
	return readUTF8(v, ptr.Unsigned(), lenChild.Unsigned())
}

func readUTF8(v debuginfo.Value, addr, length uint64) (string, error) {
	if length == 0 {
		return "", nil
	}
	data, err := v.Target().Memory().Read(addr, length)
	if err != nil {
		return "", errors.ReadFailed(nil, addr, length, err)
	}
	return strings.ToValidUTF8(string(data), "�"), nil
}
