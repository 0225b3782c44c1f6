package analyze

import (
	"regexp"

	"github.com/chrismerck/struct-lint/extract"
)

// DefaultPatternExpr matches common record/packet/header naming suffixes
// that imply a struct must be packed.
const DefaultPatternExpr = `_(rec|pkt(_\w+)?|header)_t$`

// DefaultPattern returns the compiled default should-be-packed pattern.
func DefaultPattern() *regexp.Regexp {
	return regexp.MustCompile(DefaultPatternExpr)
}

// Options configures a layout analysis run.
type Options struct {
	// MaxAlign is the architecture's maximum natural alignment (4 or 8).
	MaxAlign uint64
	// Pattern selects structs that should be packed. Nil disables the
	// packed check regardless of PackedCheck.
	Pattern *regexp.Regexp
	// AlignmentCheck enables misaligned-member detection.
	AlignmentCheck bool
	// PackedCheck enables should-be-packed detection.
	PackedCheck bool
}

// DefaultOptions returns analysis options with both checks enabled and the
// default pattern, for the given architecture alignment.
func DefaultOptions(maxAlign uint64) Options {
	return Options{
		MaxAlign:       maxAlign,
		Pattern:        DefaultPattern(),
		AlignmentCheck: true,
		PackedCheck:    true,
	}
}

// NaturalAlignment returns the byte boundary a member of the given size
// must start on, capped by the architecture's maximum alignment. It is only
// meaningful for non-bitfield members with size > 0.
func NaturalAlignment(size, maxAlign uint64) uint64 {
	if size < maxAlign {
		return size
	}
	return maxAlign
}

// InferPacked reports whether the struct was likely compiled with forced
// packing: some member violates its natural alignment, or the struct size
// equals the exact sum of member sizes.
func InferPacked(s *extract.StructInfo, maxAlign uint64) bool {
	for _, m := range s.Members {
		if m.IsBitfield || m.Size == 0 {
			continue
		}
		if m.Offset%NaturalAlignment(m.Size, maxAlign) != 0 {
			return true
		}
	}
	sum := s.SumMemberSizes()
	return sum > 0 && s.Size == sum
}

// Analyze runs the structural checks on one struct layout and returns the
// findings, alignment issues first.
func Analyze(s *extract.StructInfo, opts Options) []Issue {
	var issues []Issue
	packed := InferPacked(s, opts.MaxAlign)

	if packed {
		if !opts.AlignmentCheck {
			return nil
		}
		for _, m := range s.Members {
			if m.IsBitfield || m.Size == 0 {
				continue
			}
			natural := NaturalAlignment(m.Size, opts.MaxAlign)
			if m.Offset%natural != 0 {
				issues = append(issues, MisalignedMember{
					StructName:       s.Name,
					MemberName:       m.Name,
					TypeName:         m.TypeName,
					MemberSize:       m.Size,
					Offset:           m.Offset,
					NaturalAlignment: natural,
					DeclFile:         s.DeclFile,
					DeclLine:         s.DeclLine,
				})
			}
		}
		return issues
	}

	if !opts.PackedCheck || opts.Pattern == nil || !opts.Pattern.MatchString(s.Name) {
		return nil
	}
	sum := s.SumMemberSizes()
	if s.Size <= sum {
		return nil
	}
	return []Issue{NotPacked{
		StructName:   s.Name,
		PaddingBytes: s.Size - sum,
		Pattern:      opts.Pattern.String(),
		DeclFile:     s.DeclFile,
		DeclLine:     s.DeclLine,
	}}
}
