package database

import (
	"math"

	"school-portal/app/models"
)

// MarkAttendance appends one attendance row dated today (server clock) for
// the student. Fails with ErrNotFound if the student does not exist, rather
// than inserting an orphan row.
func (db *DB) MarkAttendance(studentID int, status models.AttendanceStatus) error {
	if _, err := db.GetStudentByID(studentID); err != nil {
		return err
	}

	query := `INSERT INTO attendance (student_id, date, status) VALUES ($1, CURRENT_DATE, $2)`
	_, err := db.conn.Exec(query, studentID, string(status))
	return translate(err)
}

// GetAttendanceSummary returns total marks, present marks and the percent
// present rounded to two decimals. A student with no rows gets percent 0.
func (db *DB) GetAttendanceSummary(studentID int) (*models.AttendanceSummary, error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'present')
			  FROM attendance WHERE student_id = $1`

	summary := &models.AttendanceSummary{}
	err := db.conn.QueryRow(query, studentID).Scan(&summary.Total, &summary.Present)
	if err != nil {
		return nil, translate(err)
	}
	summary.Percent = attendancePercent(summary.Present, summary.Total)
	return summary, nil
}

func attendancePercent(present, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*100*100) / 100
}

// GetAttendanceByStudent returns the full attendance history, ordered by
// date then insertion for determinism.
func (db *DB) GetAttendanceByStudent(studentID int) ([]*models.Attendance, error) {
	query := `SELECT id, student_id, date, status FROM attendance
			  WHERE student_id = $1 ORDER BY date, id`

	rows, err := db.conn.Query(query, studentID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		a := &models.Attendance{}
		if err := rows.Scan(&a.ID, &a.StudentID, &a.Date, &a.Status); err != nil {
			return nil, translate(err)
		}
		records = append(records, a)
	}
	return records, translate(rows.Err())
}
