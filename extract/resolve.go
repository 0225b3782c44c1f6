package extract

import (
	"debug/dwarf"
	"fmt"
)

// unknownTypeName is the placeholder for unresolvable type references.
const unknownTypeName = "?"

// maxChainDepth bounds a single type-reference chain walk.
const maxChainDepth = 32

type typeInfo struct {
	Name string
	Size uint64
}

// resolveType follows a member's type-reference chain to a canonical display
// name and byte size. A revisited offset or an exceeded depth bound degrades
// to the unknown placeholder.
func (u *unit) resolveType(off dwarf.Offset) typeInfo {
	return u.resolve(off, make(map[dwarf.Offset]bool), 0)
}

func (u *unit) resolve(off dwarf.Offset, visited map[dwarf.Offset]bool, depth int) typeInfo {
	if depth >= maxChainDepth || visited[off] {
		return typeInfo{Name: unknownTypeName}
	}
	visited[off] = true

	idx, ok := u.byOffset[off]
	if !ok {
		return typeInfo{Name: unknownTypeName}
	}
	e := u.nodes[idx].entry

	switch e.Tag {
	case dwarf.TagTypedef:
		// The typedef's own name is the canonical display name; the size
		// still comes from the underlying type.
		inner := typeInfo{Name: unknownTypeName}
		if next, ok := e.Val(dwarf.AttrType).(dwarf.Offset); ok {
			inner = u.resolve(next, visited, depth+1)
		}
		name, _ := e.Val(dwarf.AttrName).(string)
		if name == "" {
			name = inner.Name
		}
		return typeInfo{Name: name, Size: inner.Size}

	case dwarf.TagConstType, dwarf.TagVolatileType, dwarf.TagRestrictType:
		next, ok := e.Val(dwarf.AttrType).(dwarf.Offset)
		if !ok {
			return typeInfo{Name: unknownTypeName}
		}
		return u.resolve(next, visited, depth+1)

	case dwarf.TagPointerType:
		size, ok := entryByteSize(e)
		if !ok {
			size = u.addrSize
		}
		name := "void*"
		if next, ok := e.Val(dwarf.AttrType).(dwarf.Offset); ok {
			name = u.resolve(next, visited, depth+1).Name + "*"
		}
		return typeInfo{Name: name, Size: size}

	case dwarf.TagArrayType:
		elem := typeInfo{Name: unknownTypeName}
		if next, ok := e.Val(dwarf.AttrType).(dwarf.Offset); ok {
			elem = u.resolve(next, visited, depth+1)
		}
		count := u.arrayCount(idx)
		size, ok := entryByteSize(e)
		if !ok {
			size = elem.Size * count
		}
		if count > 0 {
			return typeInfo{Name: fmt.Sprintf("%s[%d]", elem.Name, count), Size: size}
		}
		return typeInfo{Name: elem.Name + "[]", Size: size}

	case dwarf.TagStructType, dwarf.TagUnionType, dwarf.TagClassType,
		dwarf.TagEnumerationType, dwarf.TagBaseType:
		name, _ := e.Val(dwarf.AttrName).(string)
		if name == "" {
			name = u.typedefs[e.Offset]
		}
		if name == "" {
			name = unknownTypeName
		}
		size, _ := entryByteSize(e)
		return typeInfo{Name: name, Size: size}

	default:
		// Unfamiliar wrapper tags pass through their type reference.
		if next, ok := e.Val(dwarf.AttrType).(dwarf.Offset); ok {
			return u.resolve(next, visited, depth+1)
		}
		name, _ := e.Val(dwarf.AttrName).(string)
		if name == "" {
			name = unknownTypeName
		}
		size, _ := entryByteSize(e)
		return typeInfo{Name: name, Size: size}
	}
}

// arrayCount reads the element count from an array entry's subrange child.
func (u *unit) arrayCount(idx int) uint64 {
	for _, ci := range u.nodes[idx].children {
		c := u.nodes[ci].entry
		if c.Tag != dwarf.TagSubrangeType {
			continue
		}
		if v, ok := c.Val(dwarf.AttrCount).(int64); ok && v >= 0 {
			return uint64(v)
		}
		if v, ok := c.Val(dwarf.AttrUpperBound).(int64); ok && v >= 0 {
			return uint64(v) + 1
		}
	}
	return 0
}
