package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"serenespa/auth"
	"serenespa/handlers"
	"serenespa/models"
	"serenespa/notifier"
	"serenespa/repository"
	"serenespa/routes"
)

const testSecret = "test-secret"

type env struct {
	handler    http.Handler
	users      *repository.MemoryUserRepo
	appts      *repository.MemoryAppointmentRepo
	contacts   *repository.MemoryContactRepo
	newsletter *repository.MemoryNewsletterRepo
	mailer     *notifier.Dispatcher
}

func setup(t *testing.T) *env {
	t.Helper()

	users := repository.NewMemoryUserRepo()
	appts := repository.NewMemoryAppointmentRepo()
	contacts := repository.NewMemoryContactRepo()
	newsletter := repository.NewMemoryNewsletterRepo()
	mailer := notifier.NewDispatcher(notifier.LogNotifier{})

	h := routes.SetupRoutes(
		&handlers.AuthHandler{Repo: users, Secret: testSecret},
		&handlers.AppointmentHandler{Repo: appts, Mailer: mailer, AdminEmail: "owner@spa.test"},
		&handlers.ContactHandler{Repo: contacts, Mailer: mailer, AdminEmail: "owner@spa.test"},
		&handlers.NewsletterHandler{Repo: newsletter},
		&handlers.AdminHandler{Users: users, Appointments: appts, Contacts: contacts, Newsletter: newsletter, Mailer: mailer},
		&handlers.PDFHandler{Repo: repository.NewPDFRepository(appts)},
		&handlers.HealthHandler{Started: time.Now()},
		testSecret,
	)

	return &env{handler: h, users: users, appts: appts, contacts: contacts, newsletter: newsletter, mailer: mailer}
}

func (e *env) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

// ----- auth -----

func TestRegisterThenDuplicate(t *testing.T) {
	e := setup(t)

	rec := e.do(t, http.MethodPost, "/api/auth/register",
		map[string]string{"email": "new@example.com", "password": "secret1"}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("first register: got %d: %s", rec.Code, rec.Body.String())
	}

	rec = e.do(t, http.MethodPost, "/api/auth/register",
		map[string]string{"email": "New@Example.COM", "password": "secret1"}, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: got %d", rec.Code)
	}
	if decode(t, rec)["error"] == "" {
		t.Error("missing error body")
	}
}

func TestRegisterValidation(t *testing.T) {
	e := setup(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"empty email", map[string]string{"email": "", "password": "secret1"}},
		{"empty password", map[string]string{"email": "a@b.com", "password": ""}},
		{"short password", map[string]string{"email": "a@b.com", "password": "12345"}},
		{"bad email", map[string]string{"email": "not-an-email", "password": "secret1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := e.do(t, http.MethodPost, "/api/auth/register", tt.body, "")
			if rec.Code != http.StatusBadRequest {
				t.Errorf("got %d, want 400", rec.Code)
			}
		})
	}
	if e.users.CountUsers() != 0 {
		t.Errorf("failed registrations mutated the store: %d users", e.users.CountUsers())
	}
}

func TestLoginSuccess(t *testing.T) {
	e := setup(t)
	e.do(t, http.MethodPost, "/api/auth/register",
		map[string]string{"email": "login@example.com", "password": "secret1"}, "")

	rec := e.do(t, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "Login@Example.com", "password": "secret1"}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login: got %d: %s", rec.Code, rec.Body.String())
	}

	out := decode(t, rec)
	tok, _ := out["token"].(string)
	if tok == "" {
		t.Fatal("empty token")
	}
	claims, err := auth.ParseToken(tok, testSecret)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID == 0 {
		t.Error("token carries no user id")
	}
	user, _ := out["user"].(map[string]any)
	if user["email"] != "login@example.com" {
		t.Errorf("user email: %v", user["email"])
	}
}

func TestLoginFailuresLookAlike(t *testing.T) {
	e := setup(t)
	e.do(t, http.MethodPost, "/api/auth/register",
		map[string]string{"email": "known@example.com", "password": "secret1"}, "")

	wrongPw := e.do(t, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "known@example.com", "password": "wrong!!"}, "")
	unknown := e.do(t, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "nobody@example.com", "password": "secret1"}, "")

	if wrongPw.Code != http.StatusUnauthorized || unknown.Code != http.StatusUnauthorized {
		t.Fatalf("got %d and %d, want 401 for both", wrongPw.Code, unknown.Code)
	}
	// must not leak which check failed
	if wrongPw.Body.String() != unknown.Body.String() {
		t.Errorf("responses differ: %q vs %q", wrongPw.Body.String(), unknown.Body.String())
	}
}

// ----- appointments -----

func validAppointment() map[string]string {
	return map[string]string{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "Ada@Example.com",
		"phone":     "555-0100",
		"service":   "Hot Stone Massage",
		"date":      "2025-03-01",
		"time":      "10:00",
		"message":   "first visit",
	}
}

func TestCreateAppointment(t *testing.T) {
	e := setup(t)

	rec := e.do(t, http.MethodPost, "/api/appointments", validAppointment(), "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("got %d: %s", rec.Code, rec.Body.String())
	}
	if e.appts.CountAppointments() != 1 {
		t.Fatalf("count: got %d, want 1", e.appts.CountAppointments())
	}

	stored := e.appts.RecentAppointments(1)[0]
	if stored.Email != "ada@example.com" {
		t.Errorf("email not normalized: %q", stored.Email)
	}
	if stored.ID == 0 || stored.CreatedAt.IsZero() {
		t.Error("id or created_at not assigned")
	}

	e.mailer.Wait()
	sent, failed := e.mailer.Stats()
	if sent != 2 || failed != 0 { // client confirmation + admin alert
		t.Errorf("notifications: got (%d, %d), want (2, 0)", sent, failed)
	}
}

func TestCreateAppointmentBadEmail(t *testing.T) {
	e := setup(t)

	body := validAppointment()
	body["email"] = "not-an-email"
	rec := e.do(t, http.MethodPost, "/api/appointments", body, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
	if e.appts.CountAppointments() != 0 {
		t.Error("invalid appointment reached the store")
	}
}

func TestCreateAppointmentMissingFields(t *testing.T) {
	e := setup(t)

	for _, field := range []string{"firstName", "lastName", "email", "phone", "service", "date", "time"} {
		body := validAppointment()
		delete(body, field)
		rec := e.do(t, http.MethodPost, "/api/appointments", body, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("missing %s: got %d, want 400", field, rec.Code)
		}
	}

	// message is optional
	body := validAppointment()
	delete(body, "message")
	if rec := e.do(t, http.MethodPost, "/api/appointments", body, ""); rec.Code != http.StatusCreated {
		t.Errorf("missing message: got %d, want 201", rec.Code)
	}
}

// ----- contact -----

func TestCreateContactMessage(t *testing.T) {
	e := setup(t)

	rec := e.do(t, http.MethodPost, "/api/contact",
		map[string]string{"name": "Bob", "email": "bob@example.com", "message": "hi there"}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("got %d: %s", rec.Code, rec.Body.String())
	}
	if e.contacts.CountMessages() != 1 {
		t.Errorf("count: got %d", e.contacts.CountMessages())
	}
}

func TestCreateContactMissingField(t *testing.T) {
	e := setup(t)

	rec := e.do(t, http.MethodPost, "/api/contact",
		map[string]string{"name": "Bob", "email": "bob@example.com"}, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
}

// ----- newsletter -----

func TestNewsletterCaseInsensitiveDuplicate(t *testing.T) {
	e := setup(t)

	rec := e.do(t, http.MethodPost, "/api/newsletter", map[string]string{"email": "A@Example.com"}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("first subscribe: got %d", rec.Code)
	}
	rec = e.do(t, http.MethodPost, "/api/newsletter", map[string]string{"email": "a@example.com"}, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate subscribe: got %d", rec.Code)
	}
}

// ----- admin -----

func TestAdminStatsAuth(t *testing.T) {
	e := setup(t)

	if rec := e.do(t, http.MethodGet, "/api/admin/stats", nil, ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: got %d, want 401", rec.Code)
	}
	if rec := e.do(t, http.MethodGet, "/api/admin/stats", nil, "garbage"); rec.Code != http.StatusForbidden {
		t.Errorf("bad token: got %d, want 403", rec.Code)
	}
}

func TestAdminStats(t *testing.T) {
	e := setup(t)
	e.do(t, http.MethodPost, "/api/appointments", validAppointment(), "")
	e.do(t, http.MethodPost, "/api/newsletter", map[string]string{"email": "sub@example.com"}, "")

	tok, err := auth.MakeToken(1, testSecret)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	rec := e.do(t, http.MethodGet, "/api/admin/stats", nil, tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d: %s", rec.Code, rec.Body.String())
	}

	out := decode(t, rec)
	counts, _ := out["counts"].(map[string]any)
	if counts["appointments"] != float64(1) || counts["newsletter"] != float64(1) {
		t.Errorf("counts: %v", counts)
	}
	recent, _ := out["recentAppointments"].([]any)
	if len(recent) != 1 {
		t.Errorf("recentAppointments: %v", out["recentAppointments"])
	}
}

func TestAdminPDFRequiresAuth(t *testing.T) {
	e := setup(t)
	_ = e.appts.CreateAppointment(&models.Appointment{Email: "x@y.com"})

	if rec := e.do(t, http.MethodGet, "/api/admin/appointments/pdf?id=1", nil, ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("got %d, want 401", rec.Code)
	}
}

// ----- health and routing -----

func TestHealthUptimeMonotonic(t *testing.T) {
	e := setup(t)

	first := e.do(t, http.MethodGet, "/api/health", nil, "")
	if first.Code != http.StatusOK {
		t.Fatalf("got %d", first.Code)
	}
	time.Sleep(10 * time.Millisecond)
	second := e.do(t, http.MethodGet, "/api/health", nil, "")

	u1, _ := decode(t, first)["uptime"].(float64)
	u2, _ := decode(t, second)["uptime"].(float64)
	if u2 < u1 {
		t.Errorf("uptime went backwards: %f then %f", u1, u2)
	}
	if decode(t, first)["version"] != handlers.Version {
		t.Errorf("version: %v", decode(t, first)["version"])
	}
}

func TestUnknownRoute(t *testing.T) {
	e := setup(t)

	rec := e.do(t, http.MethodGet, "/api/nope", nil, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", rec.Code)
	}
	if decode(t, rec)["error"] == "" {
		t.Error("404 body is not the flat error shape")
	}
}

func TestWrongMethod(t *testing.T) {
	e := setup(t)

	rec := e.do(t, http.MethodGet, "/api/appointments", nil, "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("got %d, want 405", rec.Code)
	}
}
