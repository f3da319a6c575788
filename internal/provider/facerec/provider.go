package facerec

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/OussemaHleli/face-recognition-employee-system/internal/domain"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/provider"
)

// Provider implements provider.Encoder using the face_recognition sidecar.
type Provider struct {
	client *Client
}

// NewProvider creates a new facerec provider
func NewProvider(config Config) *Provider {
	return &Provider{
		client: NewClient(config),
	}
}

// Encode extracts face encodings from the image
func (p *Provider) Encode(ctx context.Context, image []byte) ([]provider.Face, error) {
	imageBase64 := base64.StdEncoding.EncodeToString(image)

	resp, err := p.client.Encode(ctx, imageBase64)
	if err != nil {
		return nil, mapClientError(err)
	}

	if len(resp.Faces) == 0 {
		return nil, domain.ErrNoFaceDetected
	}

	faces := make([]provider.Face, 0, len(resp.Faces))
	for _, f := range resp.Faces {
		if len(f.Encoding) != provider.EncodingDimension {
			return nil, domain.ErrEncodingFailed.WithError(
				fmt.Errorf("encoder returned %d values, want %d", len(f.Encoding), provider.EncodingDimension))
		}
		faces = append(faces, provider.Face{
			Vector: f.Encoding,
			Box: provider.BoundingBox{
				Top:    f.Box.Top,
				Right:  f.Box.Right,
				Bottom: f.Box.Bottom,
				Left:   f.Box.Left,
			},
		})
	}

	return faces, nil
}

// mapClientError translates transport errors into the domain taxonomy so
// a timeout never surfaces as a silent no-match.
func mapClientError(err error) error {
	switch {
	case errors.Is(err, ErrEncoderTimeout):
		return domain.ErrEncoderTimeout.WithError(err)
	case errors.Is(err, ErrEncoderUnavailable), errors.Is(err, ErrInvalidResponse):
		return domain.ErrEncoderUnavailable.WithError(err)
	case isClientError(err):
		return domain.ErrInvalidImage.WithError(err)
	default:
		return domain.ErrEncoderUnavailable.WithError(err)
	}
}

var _ provider.Encoder = (*Provider)(nil)
