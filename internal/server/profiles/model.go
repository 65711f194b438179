package profiles

import "time"

// Profile is a stored user record. Fields holds the caller-supplied extra
// attributes; the reserved attributes live in their own columns.
type Profile struct {
	ID        string
	Email     string
	Username  string
	Fields    map[string]any
	CreatedAt time.Time
}
