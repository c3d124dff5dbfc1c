package types

import "time"

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ListResponse is the envelope shared by every paginated admin listing.
type ListResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// PublicResponse is the envelope shared by the unauthenticated feeds
// consumed by the public website.
type PublicResponse struct {
	Success     bool        `json:"success"`
	Data        interface{} `json:"data"`
	Count       int         `json:"count"`
	GeneratedAt time.Time   `json:"generatedAt"`
}

type PublicError struct {
	Success bool          `json:"success"`
	Error   string        `json:"error"`
	Data    []interface{} `json:"data"`
}
