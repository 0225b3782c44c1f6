package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chrismerck/struct-lint/aggregate"
	"github.com/chrismerck/struct-lint/analyze"
)

// Options configures report rendering.
type Options struct {
	// Quiet suppresses the summary line; only issues are printed.
	Quiet bool
	// Verbose also prints structs that passed all checks.
	Verbose bool
}

// FormatIssue renders one issue as a single diagnostic line.
func FormatIssue(issue analyze.Issue) string {
	switch v := issue.(type) {
	case analyze.MisalignedMember:
		return fmt.Sprintf("%s:%d: %s.%s (%s, %d bytes) at offset %d not naturally aligned (needs %d)",
			relPath(v.DeclFile), v.DeclLine, v.StructName, v.MemberName,
			v.TypeName, v.MemberSize, v.Offset, v.NaturalAlignment)
	case analyze.NotPacked:
		return fmt.Sprintf("%s:%d: %s is not packed (%d bytes padding, matches pattern '%s')",
			relPath(v.DeclFile), v.DeclLine, v.StructName, v.PaddingBytes, v.Pattern)
	default:
		return fmt.Sprintf("unknown issue for %s", issue.Subject())
	}
}

// Write renders the result set to w and returns the total issue count.
func Write(w io.Writer, set *aggregate.Set, opts Options) int {
	issues := 0
	for _, e := range set.Entries() {
		for _, issue := range e.Issues {
			fmt.Fprintln(w, FormatIssue(issue))
			issues++
		}
		if opts.Verbose && len(e.Issues) == 0 {
			fmt.Fprintln(w, formatOK(e))
		}
	}

	if !opts.Quiet {
		if issues == 0 {
			fmt.Fprintf(w, "No issues found in %d structs.\n", set.Len())
		} else {
			fmt.Fprintf(w, "\n%d issues found in %d structs\n", issues, set.Len())
		}
	}
	return issues
}

// formatOK renders a passing struct for verbose output, re-deriving the
// packing inference with the arch profile recorded at aggregation time.
func formatOK(e *aggregate.Entry) string {
	layout := "natural layout"
	if analyze.InferPacked(&e.Struct, e.MaxAlign) {
		layout = "packed"
	}
	return fmt.Sprintf("%s:%d: %s ok (%d bytes, %d members, %s)",
		relPath(e.Struct.DeclFile), e.Struct.DeclLine, e.Struct.Name,
		e.Struct.Size, len(e.Struct.Members), layout)
}

// relPath makes an absolute declaration path relative to the working
// directory when possible.
func relPath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
