package dto

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ExpireStaleResponse reports how many assignments a sweep expired.
type ExpireStaleResponse struct {
	Expired int64 `json:"expired"`
}

type ResetProgressResponse struct {
	Deleted int64 `json:"deleted"`
}
