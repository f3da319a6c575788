package match

import (
	"context"
	"sync"

	"github.com/coder/hnsw"
)

// defaultSearchK bounds how many neighbors the index hands to the engine.
// The policy re-checks exact distances, so K only needs to comfortably
// cover ties near the threshold.
const defaultSearchK = 16

// IndexSource is an HNSW-backed CandidateSource for large galleries. It
// narrows the candidate set to the query's nearest neighbors; the engine
// still applies the exact threshold policy on the returned candidates.
type IndexSource struct {
	mu      sync.RWMutex
	graph   *hnsw.Graph[string]
	vectors map[string][]float64
	k       int
}

func NewIndexSource(k int) *IndexSource {
	if k <= 0 {
		k = defaultSearchK
	}
	return &IndexSource{
		vectors: make(map[string][]float64),
		k:       k,
	}
}

// Rebuild replaces the index contents with the given gallery snapshot.
func (s *IndexSource) Rebuild(candidates []Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(candidates) == 0 {
		s.graph = nil
		s.vectors = make(map[string][]float64)
		return
	}

	g := hnsw.NewGraph[string]()
	g.Distance = hnsw.EuclideanDistance

	vectors := make(map[string][]float64, len(candidates))
	for _, c := range candidates {
		if len(c.Vector) != Dimension {
			continue
		}
		g.Add(hnsw.MakeNode(c.EmployeeID, toFloat32(c.Vector)))
		vectors[c.EmployeeID] = c.Vector
	}

	s.graph = g
	s.vectors = vectors
}

// Candidates returns the query's nearest stored encodings.
func (s *IndexSource) Candidates(_ context.Context, query []float64) ([]Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.graph == nil {
		return nil, nil
	}

	neighbors := s.graph.Search(toFloat32(query), s.k)
	out := make([]Candidate, 0, len(neighbors))
	for _, n := range neighbors {
		vec, ok := s.vectors[n.Key]
		if !ok {
			continue
		}
		out = append(out, Candidate{EmployeeID: n.Key, Vector: vec})
	}
	return out, nil
}

// Len returns the number of indexed encodings.
func (s *IndexSource) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vectors)
}

func toFloat32(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, f := range v {
		out[i] = float32(f)
	}
	return out
}
