// Seeds holidays and timetable rows. Neither table has a creation route in
// the portal, so this command is the supported way to populate them.
//
//	go run ./app/cmd/seed                         # holidays only
//	go run ./app/cmd/seed -student 1              # + sample student timetable
//	go run ./app/cmd/seed -teacher 2              # + sample teacher timetable
package main

import (
	"flag"
	"log"

	"school-portal/app/config"
	"school-portal/app/database"
	"school-portal/app/models"
)

var defaultHolidays = [][2]string{
	{"2026-01-26", "Republic Day"},
	{"2026-03-04", "Holi"},
	{"2026-08-15", "Independence Day"},
	{"2026-10-02", "Gandhi Jayanti"},
	{"2026-12-25", "Christmas"},
}

var sampleTimetable = [][3]string{
	{"Monday", "Mathematics", "09:00 - 10:00"},
	{"Monday", "English", "10:00 - 11:00"},
	{"Tuesday", "Science", "09:00 - 10:00"},
	{"Wednesday", "History", "11:00 - 12:00"},
	{"Friday", "Physical Education", "14:00 - 15:00"},
}

func main() {
	studentID := flag.Int("student", 0, "seed a sample timetable for this student id")
	teacherID := flag.Int("teacher", 0, "seed a sample timetable for this teacher id")
	flag.Parse()

	cfg := config.Load()
	conn, err := config.OpenDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}
	defer conn.Close()

	store := database.New(conn)
	if err := store.EnsureSchema(); err != nil {
		log.Fatal("Failed to create database schema: ", err)
	}

	for _, h := range defaultHolidays {
		if err := store.CreateHoliday(h[0], h[1]); err != nil {
			log.Fatal("Failed to seed holiday: ", err)
		}
	}
	log.Printf("Seeded %d holidays", len(defaultHolidays))

	if *studentID > 0 {
		seedTimetable(store, models.StudentOwner(*studentID))
	}
	if *teacherID > 0 {
		seedTimetable(store, models.TeacherOwner(*teacherID))
	}
}

func seedTimetable(store *database.DB, owner models.TimetableOwner) {
	for _, slot := range sampleTimetable {
		if err := store.CreateTimetableEntry(owner, slot[0], slot[1], slot[2]); err != nil {
			log.Fatal("Failed to seed timetable entry: ", err)
		}
	}
	log.Printf("Seeded %d timetable entries for %s %d", len(sampleTimetable), owner.Type, owner.ID)
}
