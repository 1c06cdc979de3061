package database

import "school-portal/app/models"

// Store is everything the route handlers need from the relational store.
// The Postgres implementation lives in this package; an in-memory twin for
// tests and database-free runs lives in database/inmem.
type Store interface {
	// EnsureSchema idempotently creates the six relations. Must be called
	// once before anything else.
	EnsureSchema() error

	// Identity store.
	GetStudentByCredentials(name, enrollmentNo string) (*models.Student, error)
	GetTeacherByCredentials(name, dob, teacherID string) (*models.Teacher, error)
	CreateStudent(name, dob, email, enrollmentNo string) (int, error)
	CreateTeacher(name, dob, email, teacherID string) (int, error)
	GetStudentByID(id int) (*models.Student, error)
	GetTeacherByID(id int) (*models.Teacher, error)
	GetAllStudents() ([]*models.Student, error)

	// Academic record store.
	MarkAttendance(studentID int, status models.AttendanceStatus) error
	GetAttendanceSummary(studentID int) (*models.AttendanceSummary, error)
	GetAttendanceByStudent(studentID int) ([]*models.Attendance, error)
	CreateAssignment(studentID int, subject, description, deadline string) error
	GetAssignmentsByStatus(studentID int, status models.AssignmentStatus) ([]*models.Assignment, error)
	GetAllHolidays() ([]*models.Holiday, error)
	GetTimetableForOwner(owner models.TimetableOwner) ([]*models.TimetableEntry, error)
}
