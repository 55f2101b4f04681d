package models

// ServiceCheck reports one dependency's health.
type ServiceCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the payload for GET /health.
type HealthResponse struct {
	Status   string       `json:"status"`
	DB       ServiceCheck `json:"db"`
	TaskFile ServiceCheck `json:"task_file"`
	Clients  int          `json:"clients"`
}
