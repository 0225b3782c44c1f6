package extract

import (
	"fmt"
	"strings"
)

// Member is one field of a struct as recorded by the debug info.
// Offset and Size carry byte semantics; for bitfields BitSize and BitOffset
// hold the sub-byte placement and ordinary alignment reasoning does not
// apply.
type Member struct {
	Name       string
	TypeName   string
	Offset     uint64
	Size       uint64
	IsBitfield bool
	BitSize    int64
	BitOffset  int64
}

// StructInfo is one struct type as observed in one artifact.
// Members are in declaration order, not offset order.
type StructInfo struct {
	Name     string
	Size     uint64
	Members  []Member
	DeclFile string
	DeclLine int64
}

// Key returns the struct's dedup identity: the name together with the
// ordered (member name, offset) pairs. Two StructInfo values with equal
// keys describe the same struct layout.
func (s *StructInfo) Key() string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteByte(':')
	for i, m := range s.Members {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%s@%d", m.Name, m.Offset)
	}
	return b.String()
}

// SumMemberSizes returns the total of all member byte sizes.
func (s *StructInfo) SumMemberSizes() uint64 {
	var sum uint64
	for _, m := range s.Members {
		sum += m.Size
	}
	return sum
}
