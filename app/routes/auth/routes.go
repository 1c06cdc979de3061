package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"school-portal/app/database"
	"school-portal/app/models"
)

func SetupAuthRoutes(app *fiber.App, store database.Store) {
	app.Get("/", IndexPage)
	app.Get("/login", LoginPage)
	app.Post("/login", LoginSubmit(store))
	app.Get("/signin", SigninPage)
	app.Post("/signin", SigninSubmit(store))
	app.Get("/logout", Logout)
}

func IndexPage(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title": "School Portal",
	})
}

func LoginPage(c *fiber.Ctx) error {
	// Already logged in: go straight to the right profile.
	if tokenString := c.Cookies(SessionCookie); tokenString != "" {
		if identity, err := ValidateSessionToken(tokenString); err == nil {
			return c.Redirect(profilePath(identity.Role))
		}
	}

	return c.Render("login", fiber.Map{
		"Title":  "Login - School Portal",
		"Notice": PopFlash(c),
	})
}

// LoginSubmit dispatches on the role field and matches credentials exactly.
// A failed match leaves the session anonymous and flashes an invalid-login
// notice; there is no attempt counting or lockout.
func LoginSubmit(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := models.ParseRole(c.FormValue("role"))
		if !ok {
			SetFlash(c, "Select a valid role")
			return c.Redirect("/login")
		}

		var identity Identity
		switch role {
		case models.RoleStudent:
			name := c.FormValue("name")
			enrollmentNo := c.FormValue("enrollment_no")
			if name == "" || enrollmentNo == "" {
				SetFlash(c, "Name and enrollment number are required")
				return c.Redirect("/login")
			}

			student, err := store.GetStudentByCredentials(name, enrollmentNo)
			if err != nil {
				if errors.Is(err, database.ErrNotFound) {
					SetFlash(c, "Invalid student login")
					return c.Redirect("/login")
				}
				return err
			}
			identity = Identity{Role: models.RoleStudent, ID: student.ID, Name: student.Name}

		case models.RoleTeacher:
			name := c.FormValue("name")
			dob := c.FormValue("dob")
			teacherID := c.FormValue("teacher_id")
			if name == "" || dob == "" || teacherID == "" {
				SetFlash(c, "Name, date of birth and teacher ID are required")
				return c.Redirect("/login")
			}

			teacher, err := store.GetTeacherByCredentials(name, dob, teacherID)
			if err != nil {
				if errors.Is(err, database.ErrNotFound) {
					SetFlash(c, "Invalid teacher login")
					return c.Redirect("/login")
				}
				return err
			}
			identity = Identity{Role: models.RoleTeacher, ID: teacher.ID, Name: teacher.Name}
		}

		token, err := GenerateSessionToken(identity)
		if err != nil {
			return err
		}
		setSessionCookie(c, token)
		return c.Redirect(profilePath(identity.Role))
	}
}

func SigninPage(c *fiber.Ctx) error {
	return c.Render("signin", fiber.Map{
		"Title":  "Sign In - School Portal",
		"Notice": PopFlash(c),
	})
}

// SigninSubmit registers a new student or teacher. Duplicate enrollment
// numbers and teacher IDs surface as a notice on the form, not a failure
// page.
func SigninSubmit(store database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := models.ParseRole(c.FormValue("role"))
		if !ok {
			SetFlash(c, "Select a valid role")
			return c.Redirect("/signin")
		}

		name := c.FormValue("name")
		dob := c.FormValue("dob")
		email := c.FormValue("email")
		if name == "" || dob == "" || email == "" {
			SetFlash(c, "Name, date of birth and email are required")
			return c.Redirect("/signin")
		}

		var err error
		switch role {
		case models.RoleStudent:
			enrollmentNo := c.FormValue("enrollment_no")
			if enrollmentNo == "" {
				SetFlash(c, "Enrollment number is required")
				return c.Redirect("/signin")
			}
			_, err = store.CreateStudent(name, dob, email, enrollmentNo)
			if errors.Is(err, database.ErrDuplicate) {
				SetFlash(c, "Enrollment number is already registered")
				return c.Redirect("/signin")
			}

		case models.RoleTeacher:
			teacherID := c.FormValue("teacher_id")
			if teacherID == "" {
				SetFlash(c, "Teacher ID is required")
				return c.Redirect("/signin")
			}
			_, err = store.CreateTeacher(name, dob, email, teacherID)
			if errors.Is(err, database.ErrDuplicate) {
				SetFlash(c, "Teacher ID is already registered")
				return c.Redirect("/signin")
			}
		}
		if err != nil {
			return err
		}

		SetFlash(c, "Sign in successful, you can now login.")
		return c.Redirect("/login")
	}
}

func Logout(c *fiber.Ctx) error {
	clearSessionCookie(c)
	return c.Redirect("/")
}

func profilePath(role models.Role) string {
	if role == models.RoleTeacher {
		return "/teacher/profile"
	}
	return "/student/profile"
}
