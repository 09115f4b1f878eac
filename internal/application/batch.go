package application

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rustickingdom/talentcalc/internal/domain"
	"github.com/rustickingdom/talentcalc/internal/ports"
)

// BatchResult is the score of one scoresheet file.
type BatchResult struct {
	Source string
	Sheet  domain.Sheet
	Result domain.CalculationResult
}

// loadSheetFile reads one scoresheet for CalculateFiles.
var loadSheetFile = LoadScoresheetFile

// CalculateFiles loads and scores each scoresheet at paths, running at
// most limit files at once (limit < 1 means GOMAXPROCS). Results are in
// the order of paths. The first load error cancels the remaining work.
//
// A path listed more than once is read from disk only once.
func CalculateFiles(ctx context.Context, calc ports.Calculator, paths []string, limit int) ([]BatchResult, error) {
	if limit < 1 {
		limit = runtime.GOMAXPROCS(0)
	}

	// Group result indexes by cleaned path, keeping first-seen order.
	var unique []string
	indexes := make(map[string][]int, len(paths))
	for i, path := range paths {
		key := filepath.Clean(path)
		if _, seen := indexes[key]; !seen {
			unique = append(unique, key)
		}
		indexes[key] = append(indexes[key], i)
	}

	results := make([]BatchResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, key := range unique {
		targets := indexes[key]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			sheet, err := loadSheetFile(key)
			if err != nil {
				return fmt.Errorf("%s: %w", paths[targets[0]], err)
			}

			for _, i := range targets {
				results[i] = BatchResult{
					Source: paths[i],
					Sheet:  sheet,
					Result: calc.Calculate(gctx, sheet),
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
