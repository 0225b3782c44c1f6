// Package analyze runs the architecture-aware structural checks on
// extracted struct layouts.
//
// Whether a struct was compiled with forced packing is not recorded in the
// debug info, so it is inferred: a struct is considered packed when some
// member sits on an offset its natural alignment forbids, or when the
// struct's size equals the exact sum of its member sizes (zero padding
// anywhere, which natural layout almost never produces).
//
// Two checks follow from the inference:
//
//   - Misaligned member: inside an inferred-packed struct, a non-bitfield
//     member whose offset is not a multiple of min(size, max alignment).
//   - Should be packed: a non-packed struct whose name matches the
//     configured pattern and whose layout carries padding.
//
// Analyze returns the findings as a sealed Issue sum type with exactly two
// variants, MisalignedMember and NotPacked, so a reporting layer can switch
// over them exhaustively.
package analyze
