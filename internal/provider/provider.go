package provider

import "context"

// EncodingDimension is the fixed length of every face encoding the
// encoder emits (dlib/face_recognition embedding space).
const EncodingDimension = 128

// Encoder is the face encoding oracle: it maps a decoded image to zero or
// more fixed-length encodings, one per detected face. Implementations are
// opaque; the matching engine only ever sees the vectors.
type Encoder interface {
	// Encode detects faces in the image and returns one encoding per face.
	// Returns domain.ErrNoFaceDetected when the image contains none.
	Encode(ctx context.Context, image []byte) ([]Face, error)
}

// Face is one detected face with its encoding and location.
type Face struct {
	Vector []float64   `json:"-"`
	Box    BoundingBox `json:"box"`
}

// BoundingBox is the face location in css order (top, right, bottom,
// left), matching the upstream face detector's convention.
type BoundingBox struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}
