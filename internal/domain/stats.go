package domain

// SystemStats summarizes enrollment coverage for the admin surface.
type SystemStats struct {
	TotalEmployees   int `json:"total_employees"`
	WithEncodings    int `json:"employees_with_encodings"`
	WithoutEncodings int `json:"employees_without_encodings"`
	TotalEncodings   int `json:"total_encodings"`
}
