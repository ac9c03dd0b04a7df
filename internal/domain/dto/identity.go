package dto

// Claims identifies the caller of a bearer-authenticated request.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}
