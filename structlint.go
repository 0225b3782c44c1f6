package structlint

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/chrismerck/struct-lint/aggregate"
	"github.com/chrismerck/struct-lint/analyze"
	"github.com/chrismerck/struct-lint/errors"
	"github.com/chrismerck/struct-lint/extract"
	"github.com/chrismerck/struct-lint/object"
)

// Options configures a scan.
type Options struct {
	// Pattern is the should-be-packed name pattern expression.
	Pattern string
	// Extensions filters files found during directory walks.
	Extensions []string
	// AlignmentCheck enables misaligned-member detection.
	AlignmentCheck bool
	// PackedCheck enables should-be-packed detection.
	PackedCheck bool
}

// DefaultOptions returns scan options with both checks enabled, the default
// pattern, and the default artifact extensions.
func DefaultOptions() Options {
	return Options{
		Pattern:        analyze.DefaultPatternExpr,
		Extensions:     []string{".o", ".elf"},
		AlignmentCheck: true,
		PackedCheck:    true,
	}
}

// Stats summarizes a scan.
type Stats struct {
	// Artifacts is the number of artifacts successfully processed.
	Artifacts int
	// Skipped is the number of artifacts that could not be read.
	Skipped int
	// Structs is the number of struct observations before deduplication.
	Structs int
}

// Scan discovers artifacts under the given paths, extracts and analyzes
// every struct layout, and merges the results into one deduplicated set.
//
// An unreadable or unrecognized artifact is logged and skipped; the scan
// fails only for input errors (invalid pattern, nothing to process) or when
// every discovered artifact had to be skipped.
func Scan(paths []string, opts Options) (*aggregate.Set, Stats, error) {
	var stats Stats

	pattern, err := regexp.Compile(opts.Pattern)
	if err != nil {
		return nil, stats, errors.InvalidPattern(opts.Pattern, err)
	}

	files, err := Discover(paths, opts.Extensions)
	if err != nil {
		return nil, stats, err
	}
	if len(files) == 0 {
		return nil, stats, errors.NoInput("no artifacts found")
	}

	aopts := analyze.Options{
		Pattern:        pattern,
		AlignmentCheck: opts.AlignmentCheck,
		PackedCheck:    opts.PackedCheck,
	}

	set := aggregate.NewSet()
	for _, path := range files {
		n, err := scanArtifact(set, path, aopts)
		if err != nil {
			Logger().Warn("skipping artifact", zap.String("path", path), zap.Error(err))
			stats.Skipped++
			continue
		}
		stats.Artifacts++
		stats.Structs += n
	}

	if stats.Artifacts == 0 {
		return nil, stats, errors.NoInput("no artifacts could be processed")
	}
	return set, stats, nil
}

// scanArtifact processes one artifact and returns the number of struct
// observations added to the set. All values handed to the set are owned
// copies; nothing survives past the artifact's Close.
func scanArtifact(set *aggregate.Set, path string, aopts analyze.Options) (int, error) {
	f, err := object.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	d, err := f.DWARF()
	if err != nil {
		return 0, err
	}

	structs, err := extract.Structs(d)
	if err != nil {
		return 0, err
	}

	aopts.MaxAlign = f.MaxAlign
	for _, s := range structs {
		issues := analyze.Analyze(&s, aopts)
		set.Add(path, f.MaxAlign, s, issues)
	}
	Logger().Debug("processed artifact",
		zap.String("path", path),
		zap.Int("structs", len(structs)))
	return len(structs), nil
}

// Discover expands the given files and directories into a sorted list of
// candidate artifact paths. Explicit files are taken as-is; directories are
// walked recursively and filtered by extension. The sorted order fixes
// first-observation attribution across runs.
func Discover(paths []string, extensions []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, errors.NotFound(p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if hasExtension(path, extensions) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.New(errors.PhaseScan, errors.KindNotFound).
				Artifact(p).
				Cause(err).
				Build()
		}
	}
	sort.Strings(files)
	return files, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
