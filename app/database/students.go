package database

import "school-portal/app/models"

const studentColumns = `id, name, enrollment_no, dob, class, section, attendance, leaves_taken, email`

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.Name, &s.EnrollmentNo, &s.DOB, &s.Class,
		&s.Section, &s.Attendance, &s.LeavesTaken, &s.Email,
	)
	if err != nil {
		return nil, translate(err)
	}
	return s, nil
}

// GetStudentByCredentials is the student login lookup: exact match on both
// fields, no normalization.
func (db *DB) GetStudentByCredentials(name, enrollmentNo string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE name = $1 AND enrollment_no = $2`
	return scanStudent(db.conn.QueryRow(query, name, enrollmentNo))
}

func (db *DB) GetStudentByID(id int) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	return scanStudent(db.conn.QueryRow(query, id))
}

// CreateStudent registers a new student. Returns ErrDuplicate when the
// enrollment number is already taken.
func (db *DB) CreateStudent(name, dob, email, enrollmentNo string) (int, error) {
	query := `INSERT INTO students (name, dob, email, enrollment_no) VALUES ($1, $2, $3, $4) RETURNING id`

	var id int
	if err := db.conn.QueryRow(query, name, dob, email, enrollmentNo).Scan(&id); err != nil {
		return 0, translate(err)
	}
	return id, nil
}

// GetAllStudents returns every student, oldest registration first.
func (db *DB) GetAllStudents() ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY id`

	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, translate(rows.Err())
}
