package ports

import (
	"context"

	"go.trai.ch/string16"
)

// Evaluator runs a script and returns its completion value as a String.
//
//go:generate mockgen -source=evaluator.go -destination=mocks/mock_evaluator.go -package=mocks
type Evaluator interface {
	// Evaluate runs source and converts the result with the script's own
	// string conversion. It stops when ctx is done.
	Evaluate(ctx context.Context, source string) (string16.String, error)
}
