package models

// APIResponse is the envelope every JSON endpoint responds with.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// PaginatedReports is the payload for GET /reports.
type PaginatedReports struct {
	Items      []Report `json:"items"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"pageSize"`
	TotalPages int64    `json:"totalPages"`
}

// SupportCountResponse is the payload for POST /reports/{id}/support.
type SupportCountResponse struct {
	SupportCount int64 `json:"supportCount"`
}

// UploadResponse is the payload for POST /upload.
type UploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// HealthCheckResponse returns the health check response struct
type HealthCheckResponse struct {
	Alive   bool   `json:"alive"`
	Storage string `json:"storage"`
}
