// Package httptransport defines the JSON contracts of the download endpoints.
package httptransport

// DownloadResponse is the owner-scoped download payload.
type DownloadResponse struct {
	DownloadURL      string `json:"download_url"`
	Filename         string `json:"filename"`
	Size             int64  `json:"size"`
	ExpiresInSeconds int    `json:"expires_in_seconds"`
	RemainingDays    int    `json:"remaining_entitlement_days"`
	LegalNotice      string `json:"legal_notice"`
}

// AdminDownloadResponse is the admin override payload.
type AdminDownloadResponse struct {
	DownloadURL      string `json:"download_url"`
	Filename         string `json:"filename"`
	Size             int64  `json:"size"`
	ExpiresInSeconds int    `json:"expires_in_seconds"`
	ProductTitle     string `json:"product_title"`
}

// ErrorResponse is the uniform error body for download endpoints.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
