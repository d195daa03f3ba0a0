package dto

// ProjectRequest carries project fields for create and update operations.
// Dates are free-form strings, matching the stored documents.
type ProjectRequest struct {
	Title     string `json:"title" binding:"required"`
	Summary   string `json:"summary"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}
