package models

// TimetableOwner identifies whose timetable a row belongs to. The tag says
// which relation the ID must be resolved against, so an ID is never
// interpreted without its type.
type TimetableOwner struct {
	Type UserType
	ID   int
}

// StudentOwner builds the owner tag for a student's timetable.
func StudentOwner(id int) TimetableOwner {
	return TimetableOwner{Type: UserTypeStudent, ID: id}
}

// TeacherOwner builds the owner tag for a teacher's timetable.
func TeacherOwner(id int) TimetableOwner {
	return TimetableOwner{Type: UserTypeTeacher, ID: id}
}

// TimetableEntry is one scheduled slot for a student or a teacher.
type TimetableEntry struct {
	ID      int            `json:"id"`
	Owner   TimetableOwner `json:"-"`
	Day     string         `json:"day"`
	Subject string         `json:"subject"`
	Time    string         `json:"time"`
}
