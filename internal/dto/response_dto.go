package dto

type ErrorResponse struct {
	Message string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type HealthResponse struct {
	Message string `json:"message,omitempty"`
	Status  string `json:"status"`
}
