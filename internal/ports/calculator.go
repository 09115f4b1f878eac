// Package ports defines the core interfaces that form the contract between
// the domain/application layers and the infrastructure layer.
// These interfaces enable dependency inversion and make the system testable.
package ports

import (
	"context"

	"github.com/rustickingdom/talentcalc/internal/domain"
)

// Calculator turns a sheet of judge and audience inputs into a result.
// Implementations must be deterministic and must not retain the sheet.
// There is no error path: malformed input is coerced, not rejected.
//
// The context is only consulted by decorators (tracing, metrics); the
// calculation itself never blocks.
//
// Example:
//
//	result := calc.Calculate(ctx, sheet)
//	fmt.Printf("%.2f\n", result.FinalScore)
type Calculator interface {
	Calculate(ctx context.Context, sheet domain.Sheet) domain.CalculationResult
}

// CalculatorFunc adapts a plain function to the Calculator interface.
type CalculatorFunc func(ctx context.Context, sheet domain.Sheet) domain.CalculationResult

// Calculate calls f.
func (f CalculatorFunc) Calculate(ctx context.Context, sheet domain.Sheet) domain.CalculationResult {
	return f(ctx, sheet)
}
