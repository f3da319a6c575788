// Package face selects the encoding oracle implementation from
// configuration.
package face

import (
	"fmt"

	"github.com/OussemaHleli/face-recognition-employee-system/internal/config"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/provider"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/provider/facerec"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/provider/mock"
)

// ProviderType defines supported encoder provider types
type ProviderType string

const (
	// ProviderTypeFacerec is the face_recognition sidecar (production)
	ProviderTypeFacerec ProviderType = "facerec"
	// ProviderTypeMock is the deterministic in-process encoder (dev/test)
	ProviderTypeMock ProviderType = "mock"
)

// NewEncoder creates an Encoder instance based on configuration.
//
// Environment variables:
//   - ENCODER_PROVIDER: "facerec" or "mock" (default: "facerec")
//   - ENCODER_URL: sidecar base URL (default: "http://localhost:8100")
//   - ENCODER_TIMEOUT: per-request timeout (default: 30s)
func NewEncoder(cfg *config.Config) (provider.Encoder, error) {
	providerType := ProviderType(cfg.EncoderProvider)

	switch providerType {
	case ProviderTypeMock:
		return mock.New(), nil

	case ProviderTypeFacerec, "":
		return createFacerecProvider(cfg), nil

	default:
		return nil, fmt.Errorf("unknown encoder provider: %s (supported: %s, %s)",
			cfg.EncoderProvider, ProviderTypeFacerec, ProviderTypeMock)
	}
}

func createFacerecProvider(cfg *config.Config) provider.Encoder {
	frCfg := facerec.DefaultConfig()
	if cfg.EncoderURL != "" {
		frCfg.BaseURL = cfg.EncoderURL
	}
	if cfg.EncoderTimeout > 0 {
		frCfg.Timeout = cfg.EncoderTimeout
	}
	return facerec.NewProvider(frCfg)
}
