// Package syntheticproviders reconstructs Rust-level type identity and
// structure from raw debuggee memory and debug-info type metadata.
//
// A host debugger hands the library a typed value (raw bytes, child
// navigation, addressed memory reads) together with the compiler-emitted
// type name. The library classifies the value against the MSVC/cpp-like
// debug-info naming conventions (enum2$<...> sum-type markers, generic
// wrappers, rvalue-reference pointer chains) and answers child-count,
// child-lookup, display-type-name and one-line-summary queries.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	syntheticproviders/  Root package with the core Memory interface
//	├── debuginfo/       Host accessor abstraction (Value, Type, Target)
//	│   └── infotest/    Deterministic in-memory target for tests and demos
//	├── typename/        Type-name resolution and pointer-chain decoding
//	├── provider/        Synthetic children and summary providers
//	├── wazerotarget/    Memory backend over a wazero guest's linear memory
//	├── errors/          Structured error types for debugging
//	└── cmd/inspect/     Interactive value-tree explorer
//
// # Quick Start
//
// Decode a value supplied by a host backend:
//
//	reg := provider.NewRegistry()
//	p, err := reg.ProviderFor(val)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.DisplayTypeName()) // "Vec<u32>"
//	n := p.Count()
//	child, err := p.ChildAtIndex(0)
//
// One-line summaries come from the same registry:
//
//	s, err := reg.SummaryFor(val) // "vec![1, 2, 3]"
//
// # Refresh Model
//
// Providers cache a derived view of the value's layout. After the debuggee
// resumes or steps, the host must call Refresh, which recomputes the whole
// view from current memory. There is no partial-update path.
//
// # Thread Safety
//
// Provider instances are NOT thread-safe; the host issues one query at a
// time per instance. The only shared state is the type-name memoization
// cache, which is safe for concurrent use.
//
// # Error Handling
//
// Unrecognized type names degrade to pass-through resolution and are never
// errors. Failed memory reads always surface as structured errors from the
// errors package, never as empty data:
//
//	[read] unreadable_memory at [3]: read 8 bytes @ 0xdead (caused by: ...)
package syntheticproviders
