package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
)

// RecordServerCookie is the session cookie issued by the fake record server.
const RecordServerCookie = "session"

type fakeUser struct {
	ID            int64
	Username      string
	Password      string
	Role          string
	ResetRequired bool
}

type fakeShoe struct {
	ID           int64
	ModelName    string
	SerialNumber string
	BatchNumber  string
	ShoeModelID  int64
	CreatedAt    time.Time
	CreatedBy    string
}

type injectedFailure struct {
	status int
	body   string
}

// RecordServer is an in-memory stand-in for the shoe record server's JSON API.
// It is safe for concurrent use and records every request it serves.
type RecordServer struct {
	*httptest.Server

	Now func() time.Time

	mu       sync.Mutex
	users    map[string]*fakeUser
	models   []model.ShoeModel
	shoes    []fakeShoe
	sessions map[string]string
	backups  []string
	nextID   int64
	calls    map[string]int
	headers  map[string]http.Header
	failures map[string]injectedFailure
	queries  map[string]string
}

// NewRecordServer starts a fake record server with one admin account
// (admin/admin). The server is closed when the test ends.
func NewRecordServer(t interface {
	TestingTB
	Cleanup(func())
}) *RecordServer {
	t.Helper()

	s := &RecordServer{
		Now:      TestTime,
		users:    map[string]*fakeUser{},
		sessions: map[string]string{},
		calls:    map[string]int{},
		headers:  map[string]http.Header{},
		failures: map[string]injectedFailure{},
		queries:  map[string]string{},
		nextID:   1,
	}
	s.AddUser("admin", "admin", "admin")

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", s.login)
	mux.HandleFunc("GET /api/logout", s.authed(s.logout))
	mux.HandleFunc("POST /api/reset_password", s.resetPassword)
	mux.HandleFunc("POST /api/shoe_entry", s.authed(s.shoeEntry))
	mux.HandleFunc("GET /api/view_shoes", s.authed(s.viewShoes))
	mux.HandleFunc("GET /api/shoe_models", s.authed(s.listModels))
	mux.HandleFunc("GET /api/shoe_model_details/{name}", s.authed(s.modelDetails))
	mux.HandleFunc("POST /api/add_shoe_model", s.authed(s.addModel))
	mux.HandleFunc("PUT /api/edit_shoe_model/{id}", s.authed(s.editModel))
	mux.HandleFunc("DELETE /api/delete_shoe_model/{id}", s.authed(s.deleteModel))
	mux.HandleFunc("GET /api/shoe_models_and_operators", s.authed(s.modelsAndOperators))
	mux.HandleFunc("GET /api/shoe_creation_data", s.authed(s.creationData))
	mux.HandleFunc("GET /api/users", s.authed(s.listUsers))
	mux.HandleFunc("POST /api/create_account", s.authed(s.createAccount))
	mux.HandleFunc("POST /api/update_user_role", s.authed(s.updateRole))
	mux.HandleFunc("POST /api/delete_user", s.authed(s.deleteUser))
	mux.HandleFunc("POST /api/manual_backup", s.authed(s.manualBackup))
	mux.HandleFunc("POST /api/confirm_backup_overwrite", s.authed(s.confirmBackup))

	s.Server = httptest.NewServer(s.record(mux))
	t.Cleanup(s.Close)
	return s
}

// AddUser creates an account and returns its id.
func (s *RecordServer) AddUser(username, password, role string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.users[username] = &fakeUser{ID: id, Username: username, Password: password, Role: role}
	return id
}

// RequireReset forces username through a password reset on next login.
func (s *RecordServer) RequireReset(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[username]; ok {
		u.ResetRequired = true
	}
}

// AddModel stores a model and returns its id.
func (s *RecordServer) AddModel(fields model.ShoeModelFields) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.models = append(s.models, model.ShoeModel{ID: id, ShoeModelFields: fields})
	return id
}

// AddShoe stores a shoe record created by operator at createdAt.
func (s *RecordServer) AddShoe(modelName, serial, batch, operator string, createdAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var modelID int64
	for _, m := range s.models {
		if m.ModelName == modelName {
			modelID = m.ID
		}
	}
	s.shoes = append(s.shoes, fakeShoe{
		ID: s.nextID, ModelName: modelName, SerialNumber: serial, BatchNumber: batch,
		ShoeModelID: modelID, CreatedAt: createdAt, CreatedBy: operator,
	})
	s.nextID++
}

// SetExistingBackups makes the next manual backup ask for overwrite confirmation.
func (s *RecordServer) SetExistingBackups(files ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backups = files
}

// Fail makes the next request to "METHOD /path" answer status with body.
func (s *RecordServer) Fail(route string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = injectedFailure{status: status, body: body}
}

// Calls returns how many times "METHOD /path" was requested.
func (s *RecordServer) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[route]
}

// TotalCalls returns the number of requests served.
func (s *RecordServer) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

// LastHeaders returns the headers of the latest request to route.
func (s *RecordServer) LastHeaders(route string) http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.headers[route]
}

// LastQuery returns the raw query string of the latest request to route.
func (s *RecordServer) LastQuery(route string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queries[route]
}

// Model returns the stored model with id.
func (s *RecordServer) Model(id int64) (model.ShoeModel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.FindModel(s.models, id)
}

// ShoeCount returns the number of stored shoes.
func (s *RecordServer) ShoeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.shoes)
}

func (s *RecordServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.Method + " " + r.URL.Path
		s.mu.Lock()
		s.calls[route]++
		s.headers[route] = r.Header.Clone()
		s.queries[route] = r.URL.RawQuery
		f, failing := s.failures[route]
		delete(s.failures, route)
		s.mu.Unlock()

		if failing {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(f.status)
			_, _ = w.Write([]byte(f.body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *RecordServer) authed(h func(http.ResponseWriter, *http.Request, *fakeUser)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(RecordServerCookie)
		if err != nil {
			writeFake(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Authentication required."})
			return
		}
		s.mu.Lock()
		name, ok := s.sessions[c.Value]
		u := s.users[name]
		s.mu.Unlock()
		if !ok || u == nil {
			writeFake(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Authentication required."})
			return
		}
		h(w, r, u)
	}
}

func writeFake(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeOK(w http.ResponseWriter, msg string) {
	writeFake(w, http.StatusOK, map[string]any{"success": true, "message": msg})
}

func writeFail(w http.ResponseWriter, status int, msg string) {
	writeFake(w, status, map[string]any{"success": false, "message": msg})
}

func (s *RecordServer) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request.")
		return
	}

	s.mu.Lock()
	u, found := s.users[in.Username]
	s.mu.Unlock()
	if !found || u.Password != in.Password {
		writeFail(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if u.ResetRequired {
		writeFake(w, http.StatusOK, map[string]any{
			"success":        false,
			"reset_required": true,
			"message":        "Your password has expired. Please reset it.",
		})
		return
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = u.Username
	s.mu.Unlock()
	http.SetCookie(w, &http.Cookie{Name: RecordServerCookie, Value: token, Path: "/", HttpOnly: true})
	writeFake(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    map[string]any{"username": u.Username, "role": u.Role},
	})
}

func (s *RecordServer) logout(w http.ResponseWriter, r *http.Request, _ *fakeUser) {
	c, _ := r.Cookie(RecordServerCookie)
	s.mu.Lock()
	delete(s.sessions, c.Value)
	s.mu.Unlock()
	writeOK(w, "Logged out successfully.")
}

func (s *RecordServer) resetPassword(w http.ResponseWriter, r *http.Request) {
	var in model.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, found := s.users[in.Username]
	if !found || u.Password != in.CurrentPassword {
		writeFail(w, http.StatusBadRequest, "Current password is incorrect.")
		return
	}
	u.Password = in.NewPassword
	u.ResetRequired = false
	writeOK(w, "Password updated successfully.")
}

func (s *RecordServer) shoeEntry(w http.ResponseWriter, r *http.Request, u *fakeUser) {
	var in model.ShoeEntry
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var modelID int64
	for _, m := range s.models {
		if m.ModelName == in.ModelName {
			modelID = m.ID
		}
	}
	if modelID == 0 {
		writeFail(w, http.StatusNotFound, "Model not found.")
		return
	}
	s.shoes = append(s.shoes, fakeShoe{
		ID: s.nextID, ModelName: in.ModelName, SerialNumber: in.SerialNumber, BatchNumber: in.BatchNumber,
		ShoeModelID: modelID, CreatedAt: s.Now(), CreatedBy: u.Username,
	})
	s.nextID++
	writeOK(w, "Data sent to database successfully!")
}

func (s *RecordServer) viewShoes(w http.ResponseWriter, r *http.Request, _ *fakeUser) {
	term := strings.ToLower(r.URL.Query().Get("search"))
	field := r.URL.Query().Get("type")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, 0, len(s.shoes))
	for _, sh := range s.shoes {
		row := map[string]any{
			"id":            sh.ID,
			"model_name":    sh.ModelName,
			"serial_number": sh.SerialNumber,
			"batch_number":  sh.BatchNumber,
			"shoe_model_id": sh.ShoeModelID,
			"created_at":    sh.CreatedAt.Format("2006-01-02T15:04:05"),
			"created_by":    sh.CreatedBy,
		}
		if term != "" {
			v, _ := row[field].(string)
			if !strings.Contains(strings.ToLower(v), term) {
				continue
			}
		}
		out = append(out, row)
	}
	writeFake(w, http.StatusOK, out)
}

func (s *RecordServer) listModels(w http.ResponseWriter, _ *http.Request, _ *fakeUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ShoeModel, len(s.models))
	copy(out, s.models)
	writeFake(w, http.StatusOK, out)
}

func (s *RecordServer) modelDetails(w http.ResponseWriter, r *http.Request, _ *fakeUser) {
	name := r.PathValue("name")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.models {
		if m.ModelName == name {
			writeFake(w, http.StatusOK, m)
			return
		}
	}
	writeFake(w, http.StatusNotFound, map[string]any{"error": "Model not found"})
}

func (s *RecordServer) addModel(w http.ResponseWriter, r *http.Request, _ *fakeUser) {
	var in model.ShoeModelFields
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.models {
		if m.ModelName == in.ModelName {
			writeFail(w, http.StatusBadRequest, "A model with this name already exists.")
			return
		}
	}
	id := s.nextID
	s.nextID++
	s.models = append(s.models, model.ShoeModel{ID: id, ShoeModelFields: in})
	writeFake(w, http.StatusOK, map[string]any{"success": true, "message": "Shoe model added successfully!", "id": id})
}

func (s *RecordServer) modelIndex(raw string) int {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return -1
	}
	for i, m := range s.models {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (s *RecordServer) editModel(w http.ResponseWriter, r *http.Request, _ *fakeUser) {
	var in model.ShoeModelFields
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.modelIndex(r.PathValue("id"))
	if i < 0 {
		writeFail(w, http.StatusNotFound, "Shoe model not found.")
		return
	}
	s.models[i].ShoeModelFields = in
	writeOK(w, "Shoe model updated successfully!")
}

func (s *RecordServer) deleteModel(w http.ResponseWriter, r *http.Request, _ *fakeUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.modelIndex(r.PathValue("id"))
	if i < 0 {
		writeFail(w, http.StatusNotFound, "Shoe model not found.")
		return
	}
	s.models = append(s.models[:i], s.models[i+1:]...)
	writeOK(w, "Shoe model deleted successfully!")
}

func privileged(u *fakeUser) bool { return u.Role == "admin" || u.Role == "prodeng" }

func (s *RecordServer) modelsAndOperators(w http.ResponseWriter, _ *http.Request, u *fakeUser) {
	if !privileged(u) {
		writeFail(w, http.StatusForbidden, "You do not have permission to view this data.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	refs := make([]model.ModelRef, 0, len(s.models))
	for _, m := range s.models {
		refs = append(refs, model.ModelRef{ID: m.ID, Name: m.ModelName})
	}
	seen := map[string]bool{}
	ops := []string{}
	for _, sh := range s.shoes {
		if !seen[sh.CreatedBy] {
			seen[sh.CreatedBy] = true
			ops = append(ops, sh.CreatedBy)
		}
	}
	writeFake(w, http.StatusOK, model.ProductionSummary{Models: refs, Operators: ops})
}

func (s *RecordServer) creationData(w http.ResponseWriter, r *http.Request, u *fakeUser) {
	if !privileged(u) {
		writeFail(w, http.StatusForbidden, "You do not have permission to view this data.")
		return
	}
	q := r.URL.Query()
	modelID, operator := q.Get("model_id"), q.Get("operator")
	start, end := q.Get("start_date"), q.Get("end_date")

	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[string]int{}
	for _, sh := range s.shoes {
		day := sh.CreatedAt.Format(model.ReleaseDateLayout)
		if modelID != "" && modelID != model.FilterAll && strconv.FormatInt(sh.ShoeModelID, 10) != modelID {
			continue
		}
		if operator != "" && operator != model.FilterAll && sh.CreatedBy != operator {
			continue
		}
		if start != "" && day < start {
			continue
		}
		if end != "" && day > end {
			continue
		}
		counts[day]++
	}
	days := make([]string, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Strings(days)
	out := make([]model.ChartPoint, 0, len(days))
	for _, d := range days {
		out = append(out, model.ChartPoint{Date: d, Count: counts[d]})
	}
	writeFake(w, http.StatusOK, out)
}

func (s *RecordServer) listUsers(w http.ResponseWriter, _ *http.Request, _ *fakeUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, map[string]any{"id": u.ID, "username": u.Username, "role": u.Role})
	}
	sort.Slice(out, func(i, j int) bool { return out[i]["id"].(int64) < out[j]["id"].(int64) })
	writeFake(w, http.StatusOK, out)
}

func (s *RecordServer) createAccount(w http.ResponseWriter, r *http.Request, _ *fakeUser) {
	var in model.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request.")
		return
	}
	s.mu.Lock()
	_, exists := s.users[in.Username]
	s.mu.Unlock()
	if exists {
		writeFail(w, http.StatusBadRequest, "Username already exists.")
		return
	}
	s.AddUser(in.Username, in.Password, string(in.Role))
	writeOK(w, "Account created successfully!")
}

func (s *RecordServer) userByID(id int64) *fakeUser {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *RecordServer) updateRole(w http.ResponseWriter, r *http.Request, _ *fakeUser) {
	var in model.RoleUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.userByID(in.UserID)
	if u == nil {
		writeFail(w, http.StatusNotFound, "User not found.")
		return
	}
	u.Role = string(in.NewRole)
	writeOK(w, "User role updated successfully!")
}

func (s *RecordServer) deleteUser(w http.ResponseWriter, r *http.Request, _ *fakeUser) {
	var in struct {
		UserID int64 `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.userByID(in.UserID)
	if u == nil {
		writeFail(w, http.StatusNotFound, "User not found.")
		return
	}
	if u.Role == "admin" {
		writeFail(w, http.StatusForbidden, "Cannot delete admin user.")
		return
	}
	delete(s.users, u.Username)
	writeOK(w, "User deleted successfully!")
}

func (s *RecordServer) manualBackup(w http.ResponseWriter, _ *http.Request, u *fakeUser) {
	if u.Role != "admin" {
		writeFail(w, http.StatusForbidden, "Unauthorized")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.backups) > 0 {
		writeFake(w, http.StatusOK, map[string]any{"success": false, "existing_files": s.backups})
		return
	}
	day := s.Now().Format("20060102")
	s.backups = []string{"shoes_" + day + ".db", "users_" + day + ".db", "models_" + day + ".db"}
	writeOK(w, "Backup completed successfully.")
}

func (s *RecordServer) confirmBackup(w http.ResponseWriter, _ *http.Request, u *fakeUser) {
	if u.Role != "admin" {
		writeFail(w, http.StatusForbidden, "Unauthorized")
		return
	}
	writeOK(w, "Backup overwritten successfully.")
}
