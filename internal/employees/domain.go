// Package employees implements the employee CRUD resource behind the
// access gate.
package employees

import "github.com/google/uuid"

// Page is the permission page identifier guarding every employee route.
const Page = "employee-page"

// Employee is a directory record.
type Employee struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Phone  string    `json:"phone"`
	Gender string    `json:"gender"`
}
