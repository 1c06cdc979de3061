package models

import "time"

// Attendance is one mark-attendance action for a student. Rows are
// append-only; nothing prevents two marks for the same student and day.
type Attendance struct {
	ID        int              `json:"id"`
	StudentID int              `json:"student_id"`
	Date      time.Time        `json:"date"`
	Status    AttendanceStatus `json:"status"`
}

// AttendanceSummary is the aggregate a student profile page shows.
type AttendanceSummary struct {
	Total   int     `json:"total"`
	Present int     `json:"present"`
	Percent float64 `json:"percent"`
}
