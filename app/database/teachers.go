package database

import "school-portal/app/models"

const teacherColumns = `id, name, dob, teacher_id, classes, email`

func scanTeacher(row interface{ Scan(...interface{}) error }) (*models.Teacher, error) {
	t := &models.Teacher{}
	err := row.Scan(&t.ID, &t.Name, &t.DOB, &t.TeacherID, &t.Classes, &t.Email)
	if err != nil {
		return nil, translate(err)
	}
	return t, nil
}

// GetTeacherByCredentials is the teacher login lookup: exact match on all
// three fields.
func (db *DB) GetTeacherByCredentials(name, dob, teacherID string) (*models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE name = $1 AND dob = $2 AND teacher_id = $3`
	return scanTeacher(db.conn.QueryRow(query, name, dob, teacherID))
}

func (db *DB) GetTeacherByID(id int) (*models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE id = $1`
	return scanTeacher(db.conn.QueryRow(query, id))
}

// CreateTeacher registers a new teacher. Returns ErrDuplicate when the
// teacher ID is already taken.
func (db *DB) CreateTeacher(name, dob, email, teacherID string) (int, error) {
	query := `INSERT INTO teachers (name, dob, email, teacher_id) VALUES ($1, $2, $3, $4) RETURNING id`

	var id int
	if err := db.conn.QueryRow(query, name, dob, email, teacherID).Scan(&id); err != nil {
		return 0, translate(err)
	}
	return id, nil
}
