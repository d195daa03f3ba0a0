package models

// IntegralReport is the derived view joining a student with its resolved
// courses and projects. It is never a source of truth; the only persisted copy
// lives in the report cache and is dropped whenever any upstream fact changes.
type IntegralReport struct {
	Student  Student   `json:"student"`
	Courses  []Course  `json:"courses"`
	Projects []Project `json:"projects"`
}
