package models

// Department represents a sales department
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
