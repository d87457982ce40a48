package models

import "time"

// Seller represents a seller belonging to a department. The Department field
// is a read convenience populated from the joined row, not an owned relation.
type Seller struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	BirthDate  time.Time   `json:"birthDate"`
	BaseSalary float64     `json:"baseSalary"`
	Department *Department `json:"department,omitempty"`
}
