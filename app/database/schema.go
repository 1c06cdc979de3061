package database

import "log"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		enrollment_no TEXT UNIQUE NOT NULL,
		dob TEXT NOT NULL DEFAULT '',
		class TEXT NOT NULL DEFAULT '',
		section TEXT NOT NULL DEFAULT '',
		attendance INTEGER NOT NULL DEFAULT 0,
		leaves_taken INTEGER NOT NULL DEFAULT 0,
		email TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS teachers (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		dob TEXT NOT NULL DEFAULT '',
		teacher_id TEXT UNIQUE NOT NULL,
		classes TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id SERIAL PRIMARY KEY,
		student_id INTEGER NOT NULL REFERENCES students(id),
		date DATE NOT NULL DEFAULT CURRENT_DATE,
		status TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS assignments (
		id SERIAL PRIMARY KEY,
		subject TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		deadline TEXT NOT NULL DEFAULT '',
		student_id INTEGER NOT NULL REFERENCES students(id),
		status TEXT NOT NULL DEFAULT 'pending'
	)`,
	`CREATE TABLE IF NOT EXISTS holidays (
		id SERIAL PRIMARY KEY,
		date TEXT NOT NULL,
		occasion TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS timetables (
		id SERIAL PRIMARY KEY,
		user_type TEXT NOT NULL,
		user_id INTEGER NOT NULL,
		day TEXT NOT NULL,
		subject TEXT NOT NULL,
		time TEXT NOT NULL
	)`,
}

// EnsureSchema creates the six relations if they are absent. Safe to run on
// every startup.
func (db *DB) EnsureSchema() error {
	log.Println("Ensuring database schema...")
	for _, stmt := range schemaStatements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
