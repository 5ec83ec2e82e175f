package models

// MessageResponse is the body of confirmation-only responses, e.g. after a
// cart mutation where the caller already holds all the data it sent.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the body of a successful login. The same token is also
// mirrored in the Authorization response header.
type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ErrorResponse is the uniform error envelope of the API. Every terminal
// failure a client can observe is serialized through it.
type ErrorResponse struct {
	Error string `json:"error"`
}

// VersionResponse reports the running build version.
type VersionResponse struct {
	Version string `json:"version"`
}
