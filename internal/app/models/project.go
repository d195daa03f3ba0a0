package models

// Project represents a research project document. The document store assigns
// the opaque string id. Start and end dates are free-form strings; the source
// data predates any date normalization.
type Project struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Title     string `json:"title" bson:"title"`
	Summary   string `json:"summary" bson:"summary"`
	StartDate string `json:"startDate" bson:"start_date"`
	EndDate   string `json:"endDate" bson:"end_date"`
}
