package models

// Professor represents a professor row in the professor store. Ids are
// client-assigned UUIDs. CourseIDs references course-store ids and is not
// validated against the course store.
type Professor struct {
	ID              string  `json:"id"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Specialty       string  `json:"specialty"`
	Phone           string  `json:"phone"`
	AcademicDegree  string  `json:"academicDegree"`
	YearsExperience int     `json:"yearsExperience"`
	Active          bool    `json:"active"`
	CourseIDs       []int32 `json:"courseIds,omitempty"`
}
