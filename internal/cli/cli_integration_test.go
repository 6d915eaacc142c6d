package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskvortex/internal/model"
)

// newTestServer fakes the TaskVortex backend for one-shot command runs.
// Non-auth routes require the bearer token issued by /auth/login.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	const token = "tok-integration"

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if creds.Password != "s3cret" {
			http.Error(w, `{"message":"bad credentials"}`, http.StatusUnauthorized)
			return
		}
		role := model.RoleEmployee
		if strings.HasPrefix(creds.Email, "admin@") {
			role = model.RoleAdmin
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(model.LoginResponse{
			Token:     token,
			Role:      role,
			ID:        7,
			FirstName: "Ada",
			LastName:  "Chen",
			Email:     creds.Email,
		})
	})

	authed := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+token {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			h(w, r)
		}
	}

	mux.HandleFunc("GET /departments", authed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]model.Department{{ID: 1, Name: "Engineering"}})
	}))
	mux.HandleFunc("GET /tasks", authed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]model.Task{
			{ID: 11, Title: "Ship the importer", Status: model.TaskInProgress, Priority: model.PriorityHigh},
		})
	}))
	mux.HandleFunc("GET /tasks/manager/{id}", authed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]model.Task{
			{ID: 12, Title: "Review API docs", Status: model.TaskPending, Priority: model.PriorityLow},
		})
	}))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// runCLI executes one command against a shared state dir, the way a shell
// session would run the binary repeatedly.
func runCLI(t *testing.T, dir, apiURL string, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--api", apiURL, "--data-dir", dir}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestLoginThenWhoami(t *testing.T) {
	srv := newTestServer(t)
	dir := t.TempDir()

	out, _, err := runCLI(t, dir, srv.URL, "login", "--email", "admin@vortex.io", "--password", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(out, `"role":"ADMIN"`) {
		t.Fatalf("login output missing role: %s", out)
	}

	out, _, err = runCLI(t, dir, srv.URL, "whoami")
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if !strings.Contains(out, "admin@vortex.io") {
		t.Fatalf("whoami should report the persisted session: %s", out)
	}
}

func TestLogin_BadPassword(t *testing.T) {
	srv := newTestServer(t)

	_, errOut, err := runCLI(t, t.TempDir(), srv.URL, "login", "--email", "admin@vortex.io", "--password", "wrong")
	if err == nil {
		t.Fatalf("expected login failure")
	}
	if !strings.Contains(errOut, "bad credentials") {
		t.Fatalf("expected the server message on stderr, got: %s", errOut)
	}
}

func TestWhoami_NotLoggedIn(t *testing.T) {
	srv := newTestServer(t)

	_, errOut, err := runCLI(t, t.TempDir(), srv.URL, "whoami")
	if err == nil {
		t.Fatalf("expected not-logged-in error")
	}
	if !strings.Contains(errOut, "not logged in") {
		t.Fatalf("unexpected stderr: %s", errOut)
	}
}

func TestDepartmentsAdd_EmployeeDenied(t *testing.T) {
	srv := newTestServer(t)
	dir := t.TempDir()

	if _, _, err := runCLI(t, dir, srv.URL, "login", "--email", "emp@vortex.io", "--password", "s3cret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	_, errOut, err := runCLI(t, dir, srv.URL, "departments", "add", "--name", "Sales")
	if err == nil {
		t.Fatalf("employee must not create departments")
	}
	if !strings.Contains(errOut, "permission denied") {
		t.Fatalf("unexpected stderr: %s", errOut)
	}
}

func TestTasksList_RoleScoped(t *testing.T) {
	srv := newTestServer(t)

	// Admin sees the global list.
	adminDir := t.TempDir()
	if _, _, err := runCLI(t, adminDir, srv.URL, "login", "--email", "admin@vortex.io", "--password", "s3cret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	out, _, err := runCLI(t, adminDir, srv.URL, "tasks", "list")
	if err != nil {
		t.Fatalf("tasks list: %v", err)
	}
	if !strings.Contains(out, "Ship the importer") {
		t.Fatalf("admin should get the global list: %s", out)
	}

	// Everyone else goes through the manager-scoped endpoint.
	empDir := t.TempDir()
	if _, _, err := runCLI(t, empDir, srv.URL, "login", "--email", "emp@vortex.io", "--password", "s3cret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	out, _, err = runCLI(t, empDir, srv.URL, "tasks", "list")
	if err != nil {
		t.Fatalf("tasks list: %v", err)
	}
	if !strings.Contains(out, "Review API docs") || strings.Contains(out, "Ship the importer") {
		t.Fatalf("employee list should be manager-scoped: %s", out)
	}
}

func TestTasksList_TableFormat(t *testing.T) {
	srv := newTestServer(t)
	dir := t.TempDir()

	if _, _, err := runCLI(t, dir, srv.URL, "login", "--email", "admin@vortex.io", "--password", "s3cret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	out, _, err := runCLI(t, dir, srv.URL, "tasks", "list", "--format", "table")
	if err != nil {
		t.Fatalf("tasks list: %v", err)
	}
	if !strings.Contains(out, "TITLE") || !strings.Contains(out, "Ship the importer") {
		t.Fatalf("table output missing header or row: %s", out)
	}
}

func TestTasksCreate_InvalidStatusRejected(t *testing.T) {
	srv := newTestServer(t)
	dir := t.TempDir()

	if _, _, err := runCLI(t, dir, srv.URL, "login", "--email", "admin@vortex.io", "--password", "s3cret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	_, errOut, err := runCLI(t, dir, srv.URL, "tasks", "create", "--title", "x", "--project", "1", "--status", "blocked")
	if err == nil {
		t.Fatalf("invalid status must be rejected before the request")
	}
	if !strings.Contains(errOut, "invalid task status") {
		t.Fatalf("unexpected stderr: %s", errOut)
	}
}

func TestProjectsList_StatusFilterValidation(t *testing.T) {
	srv := newTestServer(t)
	dir := t.TempDir()

	if _, _, err := runCLI(t, dir, srv.URL, "login", "--email", "admin@vortex.io", "--password", "s3cret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	_, errOut, err := runCLI(t, dir, srv.URL, "projects", "list", "--status", "paused")
	if err == nil {
		t.Fatalf("unknown status filter must be rejected")
	}
	if !strings.Contains(errOut, "invalid project status") {
		t.Fatalf("unexpected stderr: %s", errOut)
	}
}
