package dto

// AuthRequest describes registration/login payload. Name is only used on
// registration.
type AuthRequest struct {
	Login    string `json:"login"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password"`
}
