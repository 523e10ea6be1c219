package syntheticproviders

// Memory provides raw reads from the debuggee's address space.
//
// Implementations must report failed reads as errors. A read that returns
// fewer bytes than requested is a failed read; callers rely on the
// distinction between "unreadable" and "legitimately empty".
type Memory interface {
	Read(addr uint64, length uint64) ([]byte, error)
}
