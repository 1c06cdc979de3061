package models

// Student represents a student record usable as a login principal.
//
// Attendance and LeavesTaken exist in the schema but are never written by
// any handler; they are carried for schema compatibility only.
type Student struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	EnrollmentNo string `json:"enrollment_no"`
	DOB          string `json:"dob"`
	Class        string `json:"class"`
	Section      string `json:"section"`
	Attendance   int    `json:"attendance"`
	LeavesTaken  int    `json:"leaves_taken"`
	Email        string `json:"email"`
}
