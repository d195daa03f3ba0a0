package dto

// CourseRequest carries course fields for create and update operations.
type CourseRequest struct {
	Name    string `json:"name" binding:"required"`
	Code    string `json:"code" binding:"required"`
	Credits int    `json:"credits" binding:"required,min=1"`
}
