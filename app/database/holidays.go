package database

import "school-portal/app/models"

// GetAllHolidays returns every holiday row. There is no creation route for
// holidays; rows come from the seed command.
func (db *DB) GetAllHolidays() ([]*models.Holiday, error) {
	query := `SELECT id, date, occasion FROM holidays ORDER BY id`

	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var holidays []*models.Holiday
	for rows.Next() {
		h := &models.Holiday{}
		if err := rows.Scan(&h.ID, &h.Date, &h.Occasion); err != nil {
			return nil, translate(err)
		}
		holidays = append(holidays, h)
	}
	return holidays, translate(rows.Err())
}

// CreateHoliday exists for the seed command only.
func (db *DB) CreateHoliday(date, occasion string) error {
	query := `INSERT INTO holidays (date, occasion) VALUES ($1, $2)`
	_, err := db.conn.Exec(query, date, occasion)
	return translate(err)
}
