package database

import "school-portal/app/models"

// CreateAssignment inserts a pending assignment for the student. Fails with
// ErrNotFound if the student does not exist.
func (db *DB) CreateAssignment(studentID int, subject, description, deadline string) error {
	if _, err := db.GetStudentByID(studentID); err != nil {
		return err
	}

	query := `INSERT INTO assignments (subject, description, deadline, student_id, status)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := db.conn.Exec(query, subject, description, deadline, studentID, string(models.AssignmentPending))
	return translate(err)
}

// GetAssignmentsByStatus returns a student's assignments with an exact
// status match, oldest first.
func (db *DB) GetAssignmentsByStatus(studentID int, status models.AssignmentStatus) ([]*models.Assignment, error) {
	query := `SELECT id, subject, description, deadline, student_id, status
			  FROM assignments WHERE student_id = $1 AND status = $2 ORDER BY id`

	rows, err := db.conn.Query(query, studentID, string(status))
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		a := &models.Assignment{}
		if err := rows.Scan(&a.ID, &a.Subject, &a.Description, &a.Deadline, &a.StudentID, &a.Status); err != nil {
			return nil, translate(err)
		}
		assignments = append(assignments, a)
	}
	return assignments, translate(rows.Err())
}
