package services

// Services defined in this package:
// - ReportService: Builds the integral student report across the stores
// - DashboardService: Aggregates entity counts for the dashboard
// - StudentService: Handles student CRUD and relation management
// - CourseService: Handles the course catalog
// - ProjectService: Handles research projects
// - ProfessorService: Handles professors
// - AuthService: Handles login and session management
