// Package debuginfo defines the abstraction through which the library
// reads the debuggee.
//
// A host backend (a native debugger's scripting API, a core-dump reader,
// or a wasm guest) implements Value, Type and Target once; everything in
// provider and typename depends only on these interfaces. The shapes
// mirror what debug-info backends commonly expose: a typed value handle
// with child navigation by name or index, a type descriptor with a
// basic-type tag, and a target capable of type lookup and raw memory
// reads.
package debuginfo
