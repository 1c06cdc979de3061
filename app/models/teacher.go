package models

// Teacher represents a teacher record usable as a login principal.
type Teacher struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	DOB       string `json:"dob"`
	TeacherID string `json:"teacher_id"`
	Classes   string `json:"classes"`
	Email     string `json:"email"`
}
