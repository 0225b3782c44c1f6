// Package extract resolves DWARF debug entries into concrete struct layouts.
//
// Each compilation unit is a forest of entries that cross-reference each
// other by offset. The extractor assembles an explicit per-unit lookup table
// (entry offset to entry) in a single pass, then visits every structure-type
// entry and resolves each member's declared type by walking its
// type-reference chain through typedefs, const/volatile qualifiers, and
// pointer/array wrappers until it reaches a type with a concrete byte size.
//
// # Extraction
//
// Extract every struct layout from an artifact's debug info:
//
//	d, _ := f.DWARF()
//	structs, err := extract.Structs(d)
//	for _, s := range structs {
//	    fmt.Println(s.Name, s.Size, len(s.Members))
//	}
//
// # Resolution rules
//
//   - A typedef contributes its own name as the canonical display name;
//     its size is resolved through the chain.
//   - const, volatile, and restrict qualifiers are transparent.
//   - A pointer's size is its recorded byte size, or the compilation unit's
//     address size when absent; its display name appends "*".
//   - An array's size is its recorded byte size, or element size times the
//     subrange count; its display name appends "[N]".
//   - An anonymous structure reachable only through a typedef takes the
//     innermost enclosing typedef's name (the first typedef in entry order
//     that references it).
//
// A chain that revisits an offset or exceeds the depth bound degrades to the
// placeholder type name "?" with size 0; extraction never fails a whole
// artifact for one unresolvable member. Members whose location is encoded as
// an expression rather than a constant offset are skipped.
//
// All returned values are owned copies; nothing references the artifact's
// byte buffer once Structs returns.
package extract
