// Package inmem is a map-backed Store used by the handler tests and by
// database-free local runs (STORE=memory). It mirrors the Postgres store's
// semantics, including the sentinel errors.
package inmem

import (
	"math"
	"sync"
	"time"

	"school-portal/app/database"
	"school-portal/app/models"
)

type Store struct {
	mu sync.RWMutex

	students    map[int]*models.Student
	teachers    map[int]*models.Teacher
	attendance  []*models.Attendance
	assignments []*models.Assignment
	holidays    []*models.Holiday
	timetables  []*models.TimetableEntry

	studentSeq    int
	teacherSeq    int
	attendanceSeq int
	assignmentSeq int
}

func Open() *Store {
	return &Store{
		students: make(map[int]*models.Student),
		teachers: make(map[int]*models.Teacher),
	}
}

var _ database.Store = (*Store)(nil)

// EnsureSchema is a no-op; the maps are the schema.
func (s *Store) EnsureSchema() error { return nil }

func (s *Store) GetStudentByCredentials(name, enrollmentNo string) (*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.students {
		if st.Name == name && st.EnrollmentNo == enrollmentNo {
			cp := *st
			return &cp, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *Store) GetTeacherByCredentials(name, dob, teacherID string) (*models.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.teachers {
		if t.Name == name && t.DOB == dob && t.TeacherID == teacherID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *Store) CreateStudent(name, dob, email, enrollmentNo string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range s.students {
		if st.EnrollmentNo == enrollmentNo {
			return 0, database.ErrDuplicate
		}
	}
	s.studentSeq++
	s.students[s.studentSeq] = &models.Student{
		ID:           s.studentSeq,
		Name:         name,
		DOB:          dob,
		Email:        email,
		EnrollmentNo: enrollmentNo,
	}
	return s.studentSeq, nil
}

func (s *Store) CreateTeacher(name, dob, email, teacherID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.teachers {
		if t.TeacherID == teacherID {
			return 0, database.ErrDuplicate
		}
	}
	s.teacherSeq++
	s.teachers[s.teacherSeq] = &models.Teacher{
		ID:        s.teacherSeq,
		Name:      name,
		DOB:       dob,
		Email:     email,
		TeacherID: teacherID,
	}
	return s.teacherSeq, nil
}

func (s *Store) GetStudentByID(id int) (*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if st, ok := s.students[id]; ok {
		cp := *st
		return &cp, nil
	}
	return nil, database.ErrNotFound
}

func (s *Store) GetTeacherByID(id int) (*models.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if t, ok := s.teachers[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, database.ErrNotFound
}

func (s *Store) GetAllStudents() ([]*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	students := make([]*models.Student, 0, len(s.students))
	for id := 1; id <= s.studentSeq; id++ {
		if st, ok := s.students[id]; ok {
			cp := *st
			students = append(students, &cp)
		}
	}
	return students, nil
}

func (s *Store) MarkAttendance(studentID int, status models.AttendanceStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[studentID]; !ok {
		return database.ErrNotFound
	}
	s.attendanceSeq++
	s.attendance = append(s.attendance, &models.Attendance{
		ID:        s.attendanceSeq,
		StudentID: studentID,
		Date:      time.Now(),
		Status:    status,
	})
	return nil
}

func (s *Store) GetAttendanceSummary(studentID int) (*models.AttendanceSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := &models.AttendanceSummary{}
	for _, a := range s.attendance {
		if a.StudentID != studentID {
			continue
		}
		summary.Total++
		if a.Status == models.Present {
			summary.Present++
		}
	}
	if summary.Total > 0 {
		p := float64(summary.Present) / float64(summary.Total) * 100
		summary.Percent = math.Round(p*100) / 100
	}
	return summary, nil
}

func (s *Store) GetAttendanceByStudent(studentID int) ([]*models.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []*models.Attendance
	for _, a := range s.attendance {
		if a.StudentID == studentID {
			cp := *a
			records = append(records, &cp)
		}
	}
	return records, nil
}

func (s *Store) CreateAssignment(studentID int, subject, description, deadline string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[studentID]; !ok {
		return database.ErrNotFound
	}
	s.assignmentSeq++
	s.assignments = append(s.assignments, &models.Assignment{
		ID:          s.assignmentSeq,
		Subject:     subject,
		Description: description,
		Deadline:    deadline,
		StudentID:   studentID,
		Status:      models.AssignmentPending,
	})
	return nil
}

func (s *Store) GetAssignmentsByStatus(studentID int, status models.AssignmentStatus) ([]*models.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var assignments []*models.Assignment
	for _, a := range s.assignments {
		if a.StudentID == studentID && a.Status == status {
			cp := *a
			assignments = append(assignments, &cp)
		}
	}
	return assignments, nil
}

func (s *Store) GetAllHolidays() ([]*models.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	holidays := make([]*models.Holiday, 0, len(s.holidays))
	for _, h := range s.holidays {
		cp := *h
		holidays = append(holidays, &cp)
	}
	return holidays, nil
}

func (s *Store) GetTimetableForOwner(owner models.TimetableOwner) ([]*models.TimetableEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []*models.TimetableEntry
	for _, e := range s.timetables {
		if e.Owner == owner {
			cp := *e
			entries = append(entries, &cp)
		}
	}
	return entries, nil
}

// AddHoliday and AddTimetableEntry back the seed path for tests; the tables
// have no HTTP creation route.
func (s *Store) AddHoliday(date, occasion string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.holidays = append(s.holidays, &models.Holiday{ID: len(s.holidays) + 1, Date: date, Occasion: occasion})
}

func (s *Store) AddTimetableEntry(owner models.TimetableOwner, day, subject, timeSlot string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timetables = append(s.timetables, &models.TimetableEntry{
		ID:      len(s.timetables) + 1,
		Owner:   owner,
		Day:     day,
		Subject: subject,
		Time:    timeSlot,
	})
}
