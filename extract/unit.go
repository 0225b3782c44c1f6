package extract

import "debug/dwarf"

const (
	unknownFile = "<unknown>"
	anonMember  = "<anon>"
)

type node struct {
	entry    *dwarf.Entry
	children []int
}

// unit is the per-compilation-unit lookup structure: the entry forest with
// parent/child links restored, an offset index for cross-entry references,
// the typedef target map, and the declared-file table.
type unit struct {
	nodes    []node
	byOffset map[dwarf.Offset]int
	typedefs map[dwarf.Offset]string
	files    []string
	addrSize uint64
}

// newUnit assembles the lookup structure from a compilation unit's flattened
// DFS entry stream. Null entries (Tag 0) close the current children list.
func newUnit(entries []*dwarf.Entry, addrSize uint64, files []string) *unit {
	u := &unit{
		byOffset: make(map[dwarf.Offset]int),
		typedefs: make(map[dwarf.Offset]string),
		files:    files,
		addrSize: addrSize,
	}

	var stack []int
	for _, e := range entries {
		if e.Tag == 0 {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			continue
		}
		idx := len(u.nodes)
		u.nodes = append(u.nodes, node{entry: e})
		u.byOffset[e.Offset] = idx
		if len(stack) > 0 {
			p := stack[len(stack)-1]
			u.nodes[p].children = append(u.nodes[p].children, idx)
		}
		if e.Children {
			stack = append(stack, idx)
		}
	}

	// Typedef table for naming anonymous types. The first typedef in entry
	// order referencing a target wins: for the common
	// "typedef struct {...} name_t" shape that is the innermost enclosing
	// typedef, and first-wins keeps the choice deterministic.
	for _, n := range u.nodes {
		e := n.entry
		if e.Tag != dwarf.TagTypedef {
			continue
		}
		name, _ := e.Val(dwarf.AttrName).(string)
		if name == "" {
			continue
		}
		target, ok := e.Val(dwarf.AttrType).(dwarf.Offset)
		if !ok {
			continue
		}
		if _, seen := u.typedefs[target]; !seen {
			u.typedefs[target] = name
		}
	}

	return u
}

// structs produces the layouts of every structure type in the unit that has
// a byte size, at least one member, and a name (its own or an enclosing
// typedef's).
func (u *unit) structs() []StructInfo {
	var out []StructInfo
	for _, n := range u.nodes {
		e := n.entry
		if e.Tag != dwarf.TagStructType {
			continue
		}
		size, ok := entryByteSize(e)
		if !ok {
			continue // forward declaration
		}
		name, _ := e.Val(dwarf.AttrName).(string)
		if name == "" {
			name = u.typedefs[e.Offset]
			if name == "" {
				continue
			}
		}
		file, line := u.sourceLocation(e)

		var members []Member
		for _, ci := range n.children {
			c := u.nodes[ci].entry
			if c.Tag != dwarf.TagMember {
				continue
			}
			m, ok := u.member(c)
			if !ok {
				continue
			}
			members = append(members, m)
		}
		if len(members) == 0 {
			continue
		}

		out = append(out, StructInfo{
			Name:     name,
			Size:     size,
			Members:  members,
			DeclFile: file,
			DeclLine: line,
		})
	}
	return out
}

func (u *unit) member(e *dwarf.Entry) (Member, bool) {
	m := Member{Name: anonMember, TypeName: unknownTypeName}
	if name, ok := e.Val(dwarf.AttrName).(string); ok {
		m.Name = name
	}

	// Absent location means offset 0 (valid for the first member of many
	// encodings). A location expression cannot be reduced to a constant
	// offset here, so such members are skipped.
	if v := e.Val(dwarf.AttrDataMemberLoc); v != nil {
		off, ok := v.(int64)
		if !ok || off < 0 {
			return Member{}, false
		}
		m.Offset = uint64(off)
	}

	if bs, ok := e.Val(dwarf.AttrBitSize).(int64); ok {
		m.IsBitfield = true
		m.BitSize = bs
	}
	if bo, ok := e.Val(dwarf.AttrBitOffset).(int64); ok {
		m.IsBitfield = true
		m.BitOffset = bo
	} else if dbo, ok := e.Val(dwarf.AttrDataBitOffset).(int64); ok {
		m.IsBitfield = true
		m.BitOffset = dbo
	}

	if ref, ok := e.Val(dwarf.AttrType).(dwarf.Offset); ok {
		ti := u.resolveType(ref)
		m.TypeName = ti.Name
		m.Size = ti.Size
	}
	return m, true
}

func (u *unit) sourceLocation(e *dwarf.Entry) (string, int64) {
	file := unknownFile
	if idx, ok := e.Val(dwarf.AttrDeclFile).(int64); ok {
		// DWARF 5 file tables are 0-based, earlier versions 1-based with a
		// placeholder at index 0; empty names fall through either way.
		if idx >= 0 && idx < int64(len(u.files)) && u.files[idx] != "" {
			file = u.files[idx]
		}
	}
	line, _ := e.Val(dwarf.AttrDeclLine).(int64)
	return file, line
}

func entryByteSize(e *dwarf.Entry) (uint64, bool) {
	v, ok := e.Val(dwarf.AttrByteSize).(int64)
	if !ok || v < 0 {
		return 0, false
	}
	return uint64(v), true
}
