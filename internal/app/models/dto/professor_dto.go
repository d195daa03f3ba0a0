package dto

// ProfessorRequest carries professor fields for create and update operations.
type ProfessorRequest struct {
	FirstName       string  `json:"firstName" binding:"required"`
	LastName        string  `json:"lastName" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Specialty       string  `json:"specialty"`
	Phone           string  `json:"phone"`
	AcademicDegree  string  `json:"academicDegree"`
	YearsExperience int     `json:"yearsExperience"`
	Active          *bool   `json:"active,omitempty"`
	CourseIDs       []int32 `json:"courseIds,omitempty"`
}
