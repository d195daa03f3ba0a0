package dto

// DashboardStats holds one record count per backing store. A store outage
// degrades its own field to zero; the structure itself is always complete.
type DashboardStats struct {
	TotalStudents   int64 `json:"totalStudents"`
	TotalProfessors int64 `json:"totalProfessors"`
	TotalCourses    int64 `json:"totalCourses"`
	TotalProjects   int64 `json:"totalProjects"`
}
