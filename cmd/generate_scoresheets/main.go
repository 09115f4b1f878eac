package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rustickingdom/talentcalc/internal/application"
	"github.com/rustickingdom/talentcalc/internal/domain"
	"github.com/rustickingdom/talentcalc/internal/testutils"
)

func main() {
	var (
		size      = flag.Int("size", 100, "Number of scoresheets to generate")
		outputDir = flag.String("output", "testdata/scoresheets", "Output directory")
		seed      = flag.Int64("seed", time.Now().UnixNano(), "Random seed")
		halfRate  = flag.Float64("half-rate", testutils.DefaultGeneratorOptions.HalfWeightRate, "Probability of a half weight judge")
		badRate   = flag.Float64("malformed-rate", testutils.DefaultGeneratorOptions.MalformedRate, "Probability of a malformed value")
		emptyRate = flag.Float64("empty-rate", 0, "Probability of a sheet without judges")
	)
	flag.Parse()

	opts := testutils.GeneratorOptions{
		HalfWeightRate: *halfRate,
		MalformedRate:  *badRate,
		EmptyPanelRate: *emptyRate,
	}
	sheets := testutils.GenerateSampleScoresheets(*size, *seed, opts)

	if err := os.MkdirAll(*outputDir, 0o750); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	for i, sheet := range sheets {
		path := filepath.Join(*outputDir, fmt.Sprintf("sheet_%04d.yaml", i+1))
		if err := writeSheet(path, sheet); err != nil {
			log.Fatalf("Failed to save %s: %v", path, err)
		}
	}

	stats := testutils.ComputeScoresheetStatistics(sheets)

	fmt.Printf("Generated scoresheets:\n")
	fmt.Printf("- Directory: %s\n", *outputDir)
	fmt.Printf("- Seed: %d\n", *seed)
	fmt.Printf("- Sheets: %d\n", stats.Sheets)
	fmt.Printf("- Judges: %d (%d at half weight)\n", stats.Judges, stats.HalfWeightJudges)
	fmt.Printf("- Special criteria: %d\n", stats.Criteria)
	fmt.Printf("- Empty panels: %d\n", stats.EmptyPanels)
	fmt.Printf("- Malformed values: %d\n", stats.MalformedValues)
}

func writeSheet(path string, sheet domain.Sheet) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	if err := application.SaveScoresheet(f, sheet); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
