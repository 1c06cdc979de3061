package teacher

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"school-portal/app/database"
	"school-portal/app/models"
	"school-portal/app/routes/auth"
)

func SetupTeacherRoutes(app *fiber.App, store database.Store) {
	teacher := app.Group("/teacher")
	teacher.Use(auth.RequireRole(models.RoleTeacher))
	teacher.Get("/profile", ProfilePage(store))
	teacher.Get("/timetable", TimetablePage(store))
	teacher.Get("/mark_attendance/:studentID/:status", MarkAttendance(store))
	teacher.Post("/upload_assignment/:studentID", UploadAssignment(store))
}

// ProfilePage shows the teacher's own record and the full student roster
// with per-student attendance and assignment actions.
func ProfilePage(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := auth.CurrentIdentity(c)

		teacher, err := store.GetTeacherByID(identity.ID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Redirect("/login")
			}
			return err
		}

		students, err := store.GetAllStudents()
		if err != nil {
			return err
		}

		return c.Render("teacher_profile", fiber.Map{
			"Title":    "Teacher Profile - School Portal",
			"Teacher":  teacher,
			"Students": students,
			"Notice":   auth.PopFlash(c),
		})
	}
}

func TimetablePage(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := auth.CurrentIdentity(c)

		entries, err := store.GetTimetableForOwner(models.TeacherOwner(identity.ID))
		if err != nil {
			return err
		}

		return c.Render("timetable_teacher", fiber.Map{
			"Title":     "Timetable - School Portal",
			"Name":      identity.Name,
			"Timetable": entries,
		})
	}
}

// MarkAttendance inserts one attendance row dated today for the student in
// the path. The student must exist and the status must be one of the closed
// set; a repeat mark for the same day is allowed and appends a second row.
func MarkAttendance(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		studentID, err := strconv.Atoi(c.Params("studentID"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid student ID")
		}

		status, ok := models.ParseAttendanceStatus(c.Params("status"))
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid attendance status")
		}

		if err := store.MarkAttendance(studentID, status); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				auth.SetFlash(c, "Student not found")
				return c.Redirect("/teacher/profile")
			}
			return err
		}

		return c.Redirect("/teacher/profile")
	}
}

// UploadAssignment creates a pending assignment for the student in the path.
func UploadAssignment(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		studentID, err := strconv.Atoi(c.Params("studentID"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid student ID")
		}

		subject := c.FormValue("subject")
		description := c.FormValue("description")
		deadline := c.FormValue("deadline")
		if subject == "" || description == "" || deadline == "" {
			auth.SetFlash(c, "Subject, description and deadline are required")
			return c.Redirect("/teacher/profile")
		}

		if err := store.CreateAssignment(studentID, subject, description, deadline); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				auth.SetFlash(c, "Student not found")
				return c.Redirect("/teacher/profile")
			}
			return err
		}

		return c.Redirect("/teacher/profile")
	}
}
