// Package structlint detects struct memory-layout hazards in compiled
// binaries by analyzing their DWARF debug information.
//
// It extracts struct layouts (members, byte offsets, sizes) from ELF
// artifacts, infers whether each struct was compiled with forced packing,
// and runs two architecture-aware checks: members of packed structs that
// land on CPU-unfriendly offsets, and structs whose naming convention
// implies packing while their layout carries padding. Results observed
// redundantly across many artifacts are merged into one deduplicated,
// deterministically ordered set.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	structlint/      Root package with the multi-artifact scan pipeline
//	├── object/      ELF container access and architecture profile
//	├── extract/     DWARF entry graph walk and struct layout resolution
//	├── analyze/     Packing inference and the two structural checks
//	├── aggregate/   Cross-artifact deduplication and ordering
//	├── report/      Diagnostic text rendering
//	├── config/      Optional YAML configuration
//	└── errors/      Structured error types
//
// # Quick Start
//
// Scan a build tree and print the findings:
//
//	set, stats, err := structlint.Scan([]string{"build/"}, structlint.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	issues := report.Write(os.Stdout, set, report.Options{})
//	fmt.Printf("%d artifacts, %d skipped\n", stats.Artifacts, stats.Skipped)
//
// Artifacts that cannot be opened or carry no debug info are logged and
// skipped; the scan always reports on whatever was successfully extracted.
package structlint
