package extract

import (
	"debug/dwarf"

	"github.com/chrismerck/struct-lint/errors"
)

// Structs extracts every struct layout from the artifact's debug info.
// Structs with no name of their own take the name of the innermost
// enclosing typedef; structs that are anonymous even then, or that have no
// members or no recorded size, are omitted. Unresolvable member types
// degrade to a placeholder, never failing the artifact.
func Structs(d *dwarf.Data) ([]StructInfo, error) {
	r := d.Reader()
	var out []StructInfo

	for {
		cu, err := r.Next()
		if err != nil {
			return nil, errors.New(errors.PhaseExtract, errors.KindNoDebugInfo).
				Detail("malformed debug info").
				Cause(err).
				Build()
		}
		if cu == nil {
			break
		}
		if cu.Tag != dwarf.TagCompileUnit {
			r.SkipChildren()
			continue
		}

		addrSize := uint64(r.AddressSize())
		files := fileTable(d, cu)
		entries, err := unitEntries(r, cu)
		if err != nil {
			return nil, errors.New(errors.PhaseExtract, errors.KindNoDebugInfo).
				Detail("malformed compilation unit").
				Cause(err).
				Build()
		}

		u := newUnit(entries, addrSize, files)
		out = append(out, u.structs()...)
	}

	return out, nil
}

// unitEntries reads one compilation unit's flattened DFS entry stream,
// keeping the null entries that close children lists.
func unitEntries(r *dwarf.Reader, cu *dwarf.Entry) ([]*dwarf.Entry, error) {
	if !cu.Children {
		return nil, nil
	}
	var entries []*dwarf.Entry
	depth := 1
	for depth > 0 {
		e, err := r.Next()
		if err != nil {
			return nil, err
		}
		if e == nil {
			break
		}
		if e.Tag == 0 {
			depth--
			if depth == 0 {
				break
			}
			entries = append(entries, e)
			continue
		}
		entries = append(entries, e)
		if e.Children {
			depth++
		}
	}
	return entries, nil
}

// fileTable returns the compilation unit's declared-file table, indexed by
// the DW_AT_decl_file attribute value.
func fileTable(d *dwarf.Data, cu *dwarf.Entry) []string {
	lr, err := d.LineReader(cu)
	if err != nil || lr == nil {
		return nil
	}
	lf := lr.Files()
	names := make([]string, len(lf))
	for i, f := range lf {
		if f != nil {
			names[i] = f.Name
		}
	}
	return names
}
