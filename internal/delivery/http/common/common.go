package http_common

// ErrorResponse is the body of every failed JSON response.
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid token"`
}
