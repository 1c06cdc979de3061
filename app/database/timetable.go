package database

import "school-portal/app/models"

// GetTimetableForOwner returns the timetable rows for one student or
// teacher, resolved through the owner tag.
func (db *DB) GetTimetableForOwner(owner models.TimetableOwner) ([]*models.TimetableEntry, error) {
	query := `SELECT id, day, subject, time FROM timetables
			  WHERE user_type = $1 AND user_id = $2 ORDER BY id`

	rows, err := db.conn.Query(query, string(owner.Type), owner.ID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var entries []*models.TimetableEntry
	for rows.Next() {
		e := &models.TimetableEntry{Owner: owner}
		if err := rows.Scan(&e.ID, &e.Day, &e.Subject, &e.Time); err != nil {
			return nil, translate(err)
		}
		entries = append(entries, e)
	}
	return entries, translate(rows.Err())
}

// CreateTimetableEntry exists for the seed command only.
func (db *DB) CreateTimetableEntry(owner models.TimetableOwner, day, subject, timeSlot string) error {
	query := `INSERT INTO timetables (user_type, user_id, day, subject, time) VALUES ($1, $2, $3, $4, $5)`
	_, err := db.conn.Exec(query, string(owner.Type), owner.ID, day, subject, timeSlot)
	return translate(err)
}
