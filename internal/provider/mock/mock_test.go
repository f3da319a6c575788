package mock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OussemaHleli/face-recognition-employee-system/internal/domain"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/provider"
)

func TestProvider_Encode(t *testing.T) {
	ctx := context.Background()
	p := New()

	t.Run("deterministic for the same image", func(t *testing.T) {
		image := make([]byte, 5000)
		image[0] = 42

		first, err := p.Encode(ctx, image)
		require.NoError(t, err)
		second, err := p.Encode(ctx, image)
		require.NoError(t, err)

		require.Len(t, first, 1)
		assert.Equal(t, first[0].Vector, second[0].Vector)
		assert.Len(t, first[0].Vector, provider.EncodingDimension)
	})

	t.Run("different images diverge", func(t *testing.T) {
		a := make([]byte, 5000)
		b := make([]byte, 5000)
		b[0] = 1

		fa, err := p.Encode(ctx, a)
		require.NoError(t, err)
		fb, err := p.Encode(ctx, b)
		require.NoError(t, err)

		assert.NotEqual(t, fa[0].Vector, fb[0].Vector)
	})

	t.Run("tiny payload reports no face", func(t *testing.T) {
		_, err := p.Encode(ctx, []byte("nope"))
		assert.ErrorIs(t, err, domain.ErrNoFaceDetected)
	})

	t.Run("encoding is unit length", func(t *testing.T) {
		faces, err := p.Encode(ctx, make([]byte, 4096))
		require.NoError(t, err)

		var norm float64
		for _, v := range faces[0].Vector {
			norm += v * v
		}
		assert.InDelta(t, 1.0, norm, 1e-9)
	})
}
