package models

import "time"

// Student defines the student model based on the primary store's 'students' table.
// The primary store is the only owner of student identity; ids are assigned by
// its serial sequence.
type Student struct {
	ID        int32      `json:"id" db:"id" example:"42"`
	FirstName string     `json:"firstName" db:"first_name" example:"Ana"`
	LastName  string     `json:"lastName" db:"last_name" example:"Quispe"`
	Email     string     `json:"email" db:"email" example:"ana.quispe@utp.edu.pe"`
	BirthDate *time.Time `json:"birthDate,omitempty" db:"birth_date"`
}
