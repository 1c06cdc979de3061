package models

// Assignment is uploaded by a teacher for a single student. New rows start
// as pending; no handler currently moves one to completed.
type Assignment struct {
	ID          int              `json:"id"`
	Subject     string           `json:"subject"`
	Description string           `json:"description"`
	Deadline    string           `json:"deadline"`
	StudentID   int              `json:"student_id"`
	Status      AssignmentStatus `json:"status"`
}
