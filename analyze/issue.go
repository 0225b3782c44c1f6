package analyze

// Issue is a detected layout defect. The two implementations,
// MisalignedMember and NotPacked, are the only variants.
type Issue interface {
	// Subject returns the name of the struct the issue was found in.
	Subject() string
	// Location returns the declaration site of that struct.
	Location() (file string, line int64)

	issue()
}

// MisalignedMember reports a member of a packed struct that lands on a
// CPU-unfriendly offset.
type MisalignedMember struct {
	StructName       string
	MemberName       string
	TypeName         string
	MemberSize       uint64
	Offset           uint64
	NaturalAlignment uint64
	DeclFile         string
	DeclLine         int64
}

func (i MisalignedMember) Subject() string { return i.StructName }

func (i MisalignedMember) Location() (string, int64) { return i.DeclFile, i.DeclLine }

func (MisalignedMember) issue() {}

// NotPacked reports a struct whose naming convention implies forced packing
// while its layout carries padding.
type NotPacked struct {
	StructName   string
	PaddingBytes uint64
	Pattern      string
	DeclFile     string
	DeclLine     int64
}

func (i NotPacked) Subject() string { return i.StructName }

func (i NotPacked) Location() (string, int64) { return i.DeclFile, i.DeclLine }

func (NotPacked) issue() {}
