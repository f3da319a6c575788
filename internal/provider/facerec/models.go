package facerec

// EncodeRequest is the payload for POST /encodings.
type EncodeRequest struct {
	Image string `json:"image"` // base64-encoded image bytes
	Model string `json:"model,omitempty"`
}

// EncodeResponse is the sidecar's answer: one entry per detected face.
type EncodeResponse struct {
	Faces []FaceResult `json:"faces"`
}

// FaceResult is a single detected face.
type FaceResult struct {
	Encoding []float64 `json:"encoding"`
	Box      BoxResult `json:"box"`
}

// BoxResult is the face location in css order.
type BoxResult struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}
