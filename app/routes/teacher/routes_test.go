package teacher_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-portal/app/database/inmem"
	"school-portal/app/models"
	"school-portal/app/routes/auth"
	"school-portal/app/routes/teacher"
)

func newTestApp(store *inmem.Store) *fiber.App {
	engine := html.New("../../../views", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	teacher.SetupTeacherRoutes(app, store)
	return app
}

// seedTeacher registers a teacher and returns a logged-in session cookie.
func seedTeacher(t *testing.T, store *inmem.Store) *http.Cookie {
	t.Helper()
	id, err := store.CreateTeacher("Mr. Smith", "1980-05-05", "s@x.com", "T1")
	require.NoError(t, err)
	token, err := auth.GenerateSessionToken(auth.Identity{Role: models.RoleTeacher, ID: id, Name: "Mr. Smith"})
	require.NoError(t, err)
	return &http.Cookie{Name: auth.SessionCookie, Value: token}
}

func get(t *testing.T, app *fiber.App, path string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestProfileRequiresTeacherSession(t *testing.T) {
	store := inmem.Open()
	app := newTestApp(store)

	resp := get(t, app, "/teacher/profile")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestProfileRejectsStudentSession(t *testing.T) {
	store := inmem.Open()
	sid, err := store.CreateStudent("Alice", "2010-01-01", "a@x.com", "E1")
	require.NoError(t, err)
	token, err := auth.GenerateSessionToken(auth.Identity{Role: models.RoleStudent, ID: sid, Name: "Alice"})
	require.NoError(t, err)
	app := newTestApp(store)

	resp := get(t, app, "/teacher/profile", &http.Cookie{Name: auth.SessionCookie, Value: token})
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestProfileListsAllStudents(t *testing.T) {
	store := inmem.Open()
	session := seedTeacher(t, store)
	_, err := store.CreateStudent("Alice", "2010-01-01", "a@x.com", "E1")
	require.NoError(t, err)
	_, err = store.CreateStudent("Bob", "2011-02-02", "b@x.com", "E2")
	require.NoError(t, err)
	app := newTestApp(store)

	resp := get(t, app, "/teacher/profile", session)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(data)
	assert.Contains(t, page, "Mr. Smith")
	assert.Contains(t, page, "Alice")
	assert.Contains(t, page, "Bob")
}

func TestMarkAttendance(t *testing.T) {
	store := inmem.Open()
	session := seedTeacher(t, store)
	sid, err := store.CreateStudent("Alice", "2010-01-01", "a@x.com", "E1")
	require.NoError(t, err)
	app := newTestApp(store)

	resp := get(t, app, "/teacher/mark_attendance/1/present", session)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/teacher/profile", resp.Header.Get("Location"))

	records, err := store.GetAttendanceByStudent(sid)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.Present, records[0].Status)
	assert.Equal(t, time.Now().Format("2006-01-02"), records[0].Date.Format("2006-01-02"))
}

func TestMarkAttendanceTwiceAppendsTwoRows(t *testing.T) {
	store := inmem.Open()
	session := seedTeacher(t, store)
	sid, err := store.CreateStudent("Alice", "2010-01-01", "a@x.com", "E1")
	require.NoError(t, err)
	app := newTestApp(store)

	get(t, app, "/teacher/mark_attendance/1/present", session)
	get(t, app, "/teacher/mark_attendance/1/present", session)

	records, err := store.GetAttendanceByStudent(sid)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestMarkAttendanceUnknownStudent(t *testing.T) {
	store := inmem.Open()
	session := seedTeacher(t, store)
	app := newTestApp(store)

	resp := get(t, app, "/teacher/mark_attendance/42/present", session)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/teacher/profile", resp.Header.Get("Location"))

	records, err := store.GetAttendanceByStudent(42)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestMarkAttendanceInvalidStatus(t *testing.T) {
	store := inmem.Open()
	session := seedTeacher(t, store)
	sid, err := store.CreateStudent("Alice", "2010-01-01", "a@x.com", "E1")
	require.NoError(t, err)
	app := newTestApp(store)

	resp := get(t, app, "/teacher/mark_attendance/1/sleeping", session)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	records, err := store.GetAttendanceByStudent(sid)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestMarkAttendanceInvalidID(t *testing.T) {
	store := inmem.Open()
	session := seedTeacher(t, store)
	app := newTestApp(store)

	resp := get(t, app, "/teacher/mark_attendance/abc/present", session)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadAssignment(t *testing.T) {
	store := inmem.Open()
	session := seedTeacher(t, store)
	sid, err := store.CreateStudent("Alice", "2010-01-01", "a@x.com", "E1")
	require.NoError(t, err)
	app := newTestApp(store)

	form := url.Values{
		"subject":     {"Math"},
		"description": {"Chapter 4 exercises"},
		"deadline":    {"2026-09-15"},
	}
	req := httptest.NewRequest(fiber.MethodPost, "/teacher/upload_assignment/1", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	req.AddCookie(session)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/teacher/profile", resp.Header.Get("Location"))

	pending, err := store.GetAssignmentsByStatus(sid, models.AssignmentPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Math", pending[0].Subject)

	completed, err := store.GetAssignmentsByStatus(sid, models.AssignmentCompleted)
	require.NoError(t, err)
	assert.Empty(t, completed)
}

func TestUploadAssignmentMissingFields(t *testing.T) {
	store := inmem.Open()
	session := seedTeacher(t, store)
	sid, err := store.CreateStudent("Alice", "2010-01-01", "a@x.com", "E1")
	require.NoError(t, err)
	app := newTestApp(store)

	form := url.Values{"subject": {"Math"}}
	req := httptest.NewRequest(fiber.MethodPost, "/teacher/upload_assignment/1", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	req.AddCookie(session)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	pending, err := store.GetAssignmentsByStatus(sid, models.AssignmentPending)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestUploadAssignmentUnknownStudent(t *testing.T) {
	store := inmem.Open()
	session := seedTeacher(t, store)
	app := newTestApp(store)

	form := url.Values{
		"subject":     {"Math"},
		"description": {"Chapter 4 exercises"},
		"deadline":    {"2026-09-15"},
	}
	req := httptest.NewRequest(fiber.MethodPost, "/teacher/upload_assignment/42", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	req.AddCookie(session)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/teacher/profile", resp.Header.Get("Location"))
}

func TestTimetablePage(t *testing.T) {
	store := inmem.Open()
	session := seedTeacher(t, store)
	store.AddTimetableEntry(models.TeacherOwner(1), "Monday", "Physics", "10:00 - 11:00")

	app := newTestApp(store)
	resp := get(t, app, "/teacher/timetable", session)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(data)
	assert.Contains(t, page, "Physics")
}
