// Package mock is a deterministic encoder for development and tests: the
// encoding is derived from the image hash, so the same image always maps
// to the same vector.
package mock

import (
	"context"
	"crypto/sha256"
	"math"

	"github.com/OussemaHleli/face-recognition-employee-system/internal/domain"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/provider"
)

// minImageSize rejects payloads too small to plausibly be an image.
const minImageSize = 1000

type Provider struct{}

func New() *Provider {
	return &Provider{}
}

// Encode generates a single deterministic face per image.
func (p *Provider) Encode(ctx context.Context, image []byte) ([]provider.Face, error) {
	if len(image) < minImageSize {
		return nil, domain.ErrNoFaceDetected
	}

	return []provider.Face{
		{
			Vector: generateEncoding(image),
			Box:    provider.BoundingBox{Top: 10, Right: 90, Bottom: 90, Left: 10},
		},
	}, nil
}

// generateEncoding maps the image hash onto a unit-length vector.
func generateEncoding(image []byte) []float64 {
	hash := sha256.Sum256(image)
	encoding := make([]float64, provider.EncodingDimension)
	hashLen := len(hash)

	for i := 0; i < provider.EncodingDimension; i++ {
		idx := i % hashLen
		encoding[i] = (float64(hash[idx])/255.0)*2 - 1
	}

	norm := 0.0
	for _, v := range encoding {
		norm += v * v
	}
	norm = math.Sqrt(norm)

	for i := range encoding {
		encoding[i] /= norm
	}

	return encoding
}

var _ provider.Encoder = (*Provider)(nil)
