package models

// Employee is the directory record the lifecycle engine needs for assignments.
type Employee struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Department string `json:"department"`
}
