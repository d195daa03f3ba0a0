package dto

// StudentRequest carries student fields for create and update operations.
// CourseIDs and ProjectIDs, when present, fully replace the student's
// relation sets; a nil slice leaves the relations untouched.
type StudentRequest struct {
	FirstName  string   `json:"firstName" binding:"required"`
	LastName   string   `json:"lastName" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	BirthDate  string   `json:"birthDate,omitempty"` // YYYY-MM-DD
	CourseIDs  []int32  `json:"courseIds,omitempty"`
	ProjectIDs []string `json:"projectIds,omitempty"`
}

// StudentResponse is a student together with its resolved relation id sets.
type StudentResponse struct {
	ID         int32    `json:"id" example:"42"`
	FirstName  string   `json:"firstName" example:"Ana"`
	LastName   string   `json:"lastName" example:"Quispe"`
	Email      string   `json:"email" example:"ana.quispe@utp.edu.pe"`
	BirthDate  string   `json:"birthDate,omitempty" example:"2001-03-14"`
	CourseIDs  []int32  `json:"courseIds,omitempty"`
	ProjectIDs []string `json:"projectIds,omitempty"`
}
