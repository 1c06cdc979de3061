package student

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"school-portal/app/database"
	"school-portal/app/models"
	"school-portal/app/routes/auth"
)

func SetupStudentRoutes(app *fiber.App, store database.Store) {
	// Holidays are open to everyone, so the route sits outside the guard.
	app.Get("/student/holidays", HolidaysPage(store))

	student := app.Group("/student")
	student.Use(auth.RequireRole(models.RoleStudent))
	student.Get("/profile", ProfilePage(store))
	student.Get("/attendance", AttendancePage(store))
	student.Get("/assignments", AssignmentsPage(store))
	student.Get("/timetable", TimetablePage(store))
}

// ProfilePage shows the student's record, attendance percentage and pending
// assignments.
func ProfilePage(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := auth.CurrentIdentity(c)

		student, err := store.GetStudentByID(identity.ID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Redirect("/login")
			}
			return err
		}

		summary, err := store.GetAttendanceSummary(student.ID)
		if err != nil {
			return err
		}

		pending, err := store.GetAssignmentsByStatus(student.ID, models.AssignmentPending)
		if err != nil {
			return err
		}

		return c.Render("student_profile", fiber.Map{
			"Title":              "Student Profile - School Portal",
			"Student":            student,
			"AttendancePercent":  summary.Percent,
			"PendingAssignments": assignmentRows(pending),
		})
	}
}

func AttendancePage(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := auth.CurrentIdentity(c)

		records, err := store.GetAttendanceByStudent(identity.ID)
		if err != nil {
			return err
		}

		rows := make([]fiber.Map, 0, len(records))
		for _, r := range records {
			rows = append(rows, fiber.Map{
				"Date":   r.Date.Format("2006-01-02"),
				"Status": string(r.Status),
			})
		}

		return c.Render("attendance", fiber.Map{
			"Title":   "Attendance - School Portal",
			"Name":    identity.Name,
			"Records": rows,
		})
	}
}

func AssignmentsPage(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := auth.CurrentIdentity(c)

		pending, err := store.GetAssignmentsByStatus(identity.ID, models.AssignmentPending)
		if err != nil {
			return err
		}
		completed, err := store.GetAssignmentsByStatus(identity.ID, models.AssignmentCompleted)
		if err != nil {
			return err
		}

		return c.Render("assignments", fiber.Map{
			"Title":                "Assignments - School Portal",
			"Name":                 identity.Name,
			"PendingAssignments":   assignmentRows(pending),
			"CompletedAssignments": assignmentRows(completed),
		})
	}
}

func TimetablePage(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := auth.CurrentIdentity(c)

		entries, err := store.GetTimetableForOwner(models.StudentOwner(identity.ID))
		if err != nil {
			return err
		}

		return c.Render("student_timetable", fiber.Map{
			"Title":     "Timetable - School Portal",
			"Name":      identity.Name,
			"Timetable": entries,
		})
	}
}

func HolidaysPage(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		holidays, err := store.GetAllHolidays()
		if err != nil {
			return err
		}

		return c.Render("holidays", fiber.Map{
			"Title":    "Holidays - School Portal",
			"Holidays": holidays,
		})
	}
}

func assignmentRows(assignments []*models.Assignment) []fiber.Map {
	rows := make([]fiber.Map, 0, len(assignments))
	for _, a := range assignments {
		rows = append(rows, fiber.Map{
			"Subject":     a.Subject,
			"Description": a.Description,
			"Deadline":    a.Deadline,
		})
	}
	return rows
}
