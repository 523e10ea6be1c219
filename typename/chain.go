package typename

import (
	"strings"

	"github.com/Walnut356/syntheticproviders/debuginfo"
)

// ChainPrefix renders a chain of pointer/reference layers in Rust syntax,
// outermost first, followed by the resolved innermost type name. A type
// with no pointer layers resolves to just the type name.
//
// "&&" marks an rvalue reference in the debug info. That has no meaning in
// Rust, but the backend cannot express reference-to-reference at the raw
// type level, so it encodes the inner reference as a pointer layer and
// flags it with an rvalue-reference outer layer. Whenever a layer ends in
// "&&", the layer it points to is actually a reference (e.g. u8 *&& is
// &mut &mut u8).
func ChainPrefix(t debuginfo.Type) string {
	var b strings.Builder

	wasRRef := false
	ptr := t

	for ptr.IsPointer() || ptr.IsReference() {
		ptee := ptr.Pointee()

		// a trailing `const` on the layer itself describes the const-ness
		// of whatever points *to* it, not its own
		ptrName := strings.TrimSuffix(ptr.Name(), "const")
		pteeName := ptee.Name()

		isRef := wasRRef || strings.HasSuffix(ptrName, "&")
		wasRRef = strings.HasSuffix(ptrName, "&&")

		var isConst bool
		if ptee.IsPointer() || ptee.IsReference() {
			isConst = strings.HasSuffix(pteeName, "const")
		} else {
			isConst = strings.HasPrefix(pteeName, "const ")
		}

		switch {
		case isRef && isConst:
			b.WriteString("&")
		case isRef:
			b.WriteString("&mut ")
		case isConst:
			b.WriteString("*const ")
		default:
			b.WriteString("*mut ")
		}

		ptr = ptee
	}

	b.WriteString(FromType(ptr.Unqualified()))
	return b.String()
}
