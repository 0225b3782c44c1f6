package report_test

import (
	"strings"
	"testing"

	"github.com/chrismerck/struct-lint/aggregate"
	"github.com/chrismerck/struct-lint/analyze"
	"github.com/chrismerck/struct-lint/extract"
	"github.com/chrismerck/struct-lint/report"
)

func TestFormatIssue_MisalignedMember(t *testing.T) {
	issue := analyze.MisalignedMember{
		StructName:       "sensor_pkt_t",
		MemberName:       "seq",
		TypeName:         "uint16_t",
		MemberSize:       2,
		Offset:           1,
		NaturalAlignment: 2,
		DeclFile:         "src/sensor.h",
		DeclLine:         14,
	}
	got := report.FormatIssue(issue)
	want := "src/sensor.h:14: sensor_pkt_t.seq (uint16_t, 2 bytes) at offset 1 not naturally aligned (needs 2)"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestFormatIssue_NotPacked(t *testing.T) {
	issue := analyze.NotPacked{
		StructName:   "sample_rec_t",
		PaddingBytes: 6,
		Pattern:      analyze.DefaultPatternExpr,
		DeclFile:     "src/sample.h",
		DeclLine:     3,
	}
	got := report.FormatIssue(issue)
	want := `src/sample.h:3: sample_rec_t is not packed (6 bytes padding, matches pattern '_(rec|pkt(_\w+)?|header)_t$')`
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func buildSet(issues []analyze.Issue) *aggregate.Set {
	set := aggregate.NewSet()
	set.Add("a.o", 4, extract.StructInfo{
		Name:    "tight_rec_t",
		Size:    3,
		Members: []extract.Member{{Name: "a", Offset: 0, Size: 1}, {Name: "b", Offset: 1, Size: 2}},
	}, issues)
	return set
}

func TestWrite_Summary(t *testing.T) {
	var b strings.Builder
	n := report.Write(&b, buildSet(nil), report.Options{})
	if n != 0 {
		t.Errorf("issue count = %d, want 0", n)
	}
	if !strings.Contains(b.String(), "No issues found in 1 structs.") {
		t.Errorf("output = %q", b.String())
	}
}

func TestWrite_IssuesAndSummary(t *testing.T) {
	issues := []analyze.Issue{
		analyze.MisalignedMember{StructName: "tight_rec_t", MemberName: "b", TypeName: "uint16_t", MemberSize: 2, Offset: 1, NaturalAlignment: 2},
	}
	var b strings.Builder
	n := report.Write(&b, buildSet(issues), report.Options{})
	if n != 1 {
		t.Errorf("issue count = %d, want 1", n)
	}
	out := b.String()
	if !strings.Contains(out, "tight_rec_t.b") {
		t.Errorf("output missing issue line: %q", out)
	}
	if !strings.Contains(out, "1 issues found in 1 structs") {
		t.Errorf("output missing summary: %q", out)
	}
}

func TestWrite_Quiet(t *testing.T) {
	var b strings.Builder
	report.Write(&b, buildSet(nil), report.Options{Quiet: true})
	if b.Len() != 0 {
		t.Errorf("quiet output = %q, want empty", b.String())
	}
}

func TestWrite_VerboseOKLine(t *testing.T) {
	var b strings.Builder
	report.Write(&b, buildSet(nil), report.Options{Verbose: true, Quiet: true})
	out := b.String()
	// size 3 == 1+2: re-derived as packed for display
	if !strings.Contains(out, "tight_rec_t ok (3 bytes, 2 members, packed)") {
		t.Errorf("verbose output = %q", out)
	}
}
