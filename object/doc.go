// Package object abstracts access to compiled artifacts (ELF object files
// and executables) and their debug sections.
//
// Open validates the container, derives the architecture profile (the
// maximum natural alignment, 4 or 8 bytes, from the ELF class), and exposes
// the artifact's DWARF data for extraction:
//
//	f, err := object.Open("build/proto.o")
//	if err != nil {
//	    // errors.KindNotFound or errors.KindInvalidContainer
//	}
//	defer f.Close()
//
//	d, err := f.DWARF()
//
// The low-level section and DIE decoding is delegated to the standard
// library's debug/elf and debug/dwarf packages.
package object
