// Package match implements the face-encoding matching policy: Euclidean
// distance over fixed-length encodings, a tunable acceptance threshold and
// a confidence transform for display.
package match

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Dimension is the encoder's fixed output dimensionality.
const Dimension = 128

// DefaultThreshold is the maximum acceptable distance for a match. Lower
// is stricter.
const DefaultThreshold = 0.6

var ErrDimensionMismatch = errors.New("encoding dimension mismatch")

// Candidate pairs a stored encoding with the employee it belongs to.
type Candidate struct {
	EmployeeID string
	Vector     []float64
}

// CandidateSource supplies the gallery considered for a query. The linear
// SliceSource returns everything; an indexed implementation may narrow the
// set using the query without changing the matching policy.
type CandidateSource interface {
	Candidates(ctx context.Context, query []float64) ([]Candidate, error)
}

// SliceSource is the plain in-memory gallery, scanned linearly. Fine for
// galleries of hundreds; swap in IndexSource beyond that.
type SliceSource []Candidate

func (s SliceSource) Candidates(_ context.Context, _ []float64) ([]Candidate, error) {
	return s, nil
}

// Result is the outcome of FindBestMatch. When Matched is false, Distance
// is +Inf and Confidence is 0 rather than values from a failed comparison.
type Result struct {
	Matched    bool
	EmployeeID string
	Confidence float64
	Distance   float64
}

// Distance returns the Euclidean distance between two encodings. It is
// symmetric, non-negative and zero iff the vectors are identical. Both
// sides come from the same encoder so lengths should always agree; the
// check is defensive.
func Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// Confidence maps a distance onto a 0-100 display scale. Any distance of
// 1 or more yields zero, never a negative value. It is not a probability.
func Confidence(distance float64) float64 {
	return math.Max(0, (1-distance)*100)
}

// Engine applies the match policy with a configured threshold.
type Engine struct {
	threshold float64
}

func NewEngine(threshold float64) *Engine {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Engine{threshold: threshold}
}

func (e *Engine) Threshold() float64 {
	return e.threshold
}

// FindBestMatch scans the candidates for the query and returns the best
// acceptable match. A candidate matches iff its distance is at or below
// the threshold; among matches the highest confidence wins, with ties
// broken by lower distance and then lexicographic employee id so results
// do not depend on gallery iteration order. Candidates whose comparison
// fails (wrong dimensionality) count as non-matches. Pure function of its
// inputs.
func (e *Engine) FindBestMatch(ctx context.Context, query []float64, source CandidateSource) (Result, error) {
	no := Result{Matched: false, Confidence: 0, Distance: math.Inf(1)}

	candidates, err := source.Candidates(ctx, query)
	if err != nil {
		return no, fmt.Errorf("load candidates: %w", err)
	}

	best := no
	for _, c := range candidates {
		d, err := Distance(c.Vector, query)
		if err != nil {
			continue
		}
		if d > e.threshold {
			continue
		}

		conf := Confidence(d)
		if !best.Matched || conf > best.Confidence ||
			(conf == best.Confidence && (d < best.Distance ||
				(d == best.Distance && c.EmployeeID < best.EmployeeID))) {
			best = Result{
				Matched:    true,
				EmployeeID: c.EmployeeID,
				Confidence: conf,
				Distance:   d,
			}
		}
	}

	return best, nil
}
