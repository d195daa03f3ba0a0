package models

// Course represents a course row in the course store. Courses are referenced
// from the primary store's relation table by id only; nothing enforces that a
// referenced id exists here.
type Course struct {
	ID      int32  `json:"id" db:"id" example:"7"`
	Name    string `json:"name" db:"name" example:"Algoritmos"`
	Code    string `json:"code" db:"code" example:"CS101"`
	Credits int    `json:"credits" db:"credits" example:"4"`
}
