// ABOUTME: JSON-over-HTTP boundary for the SuperTodo backend
// ABOUTME: Maps request payloads to access service calls and domain errors to status codes

package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/matto772/Super-Todo-Webapp/internal/access"
	"github.com/matto772/Super-Todo-Webapp/internal/store"
)

// Server handles the HTTP API routes
type Server struct {
	access *access.Service
	logger *slog.Logger
}

// New creates a new API server wrapping the access service
func New(svc *access.Service) *Server {
	return &Server{
		access: svc,
		logger: slog.Default().With("component", "api"),
	}
}

// RegisterRoutes registers all API routes on the given mux
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /addTask", s.handleAddTask)
	mux.HandleFunc("GET /getTasks", s.handleGetTasks)
	mux.HandleFunc("POST /updateTask", s.handleUpdateTask)
	mux.HandleFunc("POST /deleteTask", s.handleDeleteTask)
	mux.HandleFunc("GET /getSettings", s.handleGetSettings)
	mux.HandleFunc("POST /saveSettings", s.handleSaveSettings)
	mux.HandleFunc("DELETE /deleteSettings", s.handleDeleteSettings)

	s.logger.Info("api routes registered")
}

// CORS wraps a handler with permissive cross-origin headers and answers
// preflight requests, matching the webapp frontend's expectations.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !s.decode(w, r, &req) {
		return
	}

	if err := s.access.Register(r.Context(), req.Username, req.Password, req.Email); err != nil {
		if errors.Is(err, access.ErrConflict) {
			s.writeError(w, http.StatusBadRequest, "Username or email already in use")
			return
		}
		s.internalError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully!"})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decode(w, r, &req) {
		return
	}

	err := s.access.Login(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, access.ErrAccountNotFound):
		s.writeError(w, http.StatusUnauthorized, "User not found")
	case errors.Is(err, access.ErrInvalidCredentials):
		s.writeError(w, http.StatusUnauthorized, "Invalid password")
	case err != nil:
		s.internalError(w, r, err)
	default:
		s.writeJSON(w, http.StatusOK, map[string]string{"message": "Login successful"})
	}
}

type taskRequest struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	TaskName    string `json:"taskName"`
	Instruction string `json:"instruction"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	DueDate     string `json:"dueDate"`
}

func (r taskRequest) fields() access.TaskFields {
	return access.TaskFields{
		TaskName:    r.TaskName,
		Instruction: r.Instruction,
		Location:    r.Location,
		Status:      r.Status,
		DueDate:     r.DueDate,
	}
}

type taskResponse struct {
	ID          string `json:"id"`
	TaskName    string `json:"taskName"`
	Instruction string `json:"instruction"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	DueDate     string `json:"dueDate"`
}

func toTaskResponse(t *store.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		TaskName:    t.TaskName,
		Instruction: t.Instruction,
		Location:    t.Location,
		Status:      t.Status,
		DueDate:     t.DueDate,
	}
}

func (s *Server) handleAddTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if !s.decode(w, r, &req) {
		return
	}

	task, err := s.access.AddTask(r.Context(), req.Username, req.fields())
	if err != nil {
		if errors.Is(err, access.ErrAccountNotFound) {
			s.writeError(w, http.StatusNotFound, "Account not found")
			return
		}
		s.internalError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Task added successfully!",
		"id":      task.ID,
	})
}

func (s *Server) handleGetTasks(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")

	tasks, err := s.access.GetTasks(r.Context(), username)
	if err != nil {
		if errors.Is(err, access.ErrAccountNotFound) {
			s.writeError(w, http.StatusNotFound, "Account not found")
			return
		}
		s.internalError(w, r, err)
		return
	}

	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if !s.decode(w, r, &req) {
		return
	}

	if err := s.access.UpdateTask(r.Context(), req.ID, req.fields()); err != nil {
		if errors.Is(err, access.ErrTaskNotFound) {
			s.writeError(w, http.StatusNotFound, "Task not found")
			return
		}
		s.internalError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Task updated successfully!"})
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if !s.decode(w, r, &req) {
		return
	}

	if err := s.access.DeleteTask(r.Context(), req.ID); err != nil {
		if errors.Is(err, access.ErrTaskNotFound) {
			s.writeError(w, http.StatusNotFound, "Task not found")
			return
		}
		s.internalError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Task was deleted"})
}

type settingsPayload struct {
	FontSize       string `json:"font_size"`
	FontType       string `json:"font_type"`
	BootstrapTheme string `json:"bootstrap_theme"`
}

type saveSettingsRequest struct {
	Username string          `json:"username"`
	Settings settingsPayload `json:"settings"`
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")

	settings, err := s.access.GetSettings(r.Context(), username)
	if err != nil {
		if errors.Is(err, access.ErrAccountNotFound) {
			s.writeError(w, http.StatusNotFound, "Account not found")
			return
		}
		s.internalError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, settingsPayload{
		FontSize:       settings.FontSize,
		FontType:       settings.FontType,
		BootstrapTheme: settings.BootstrapTheme,
	})
}

func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var req saveSettingsRequest
	if !s.decode(w, r, &req) {
		return
	}

	err := s.access.SaveSettings(r.Context(), req.Username, access.SettingsFields{
		FontSize:       req.Settings.FontSize,
		FontType:       req.Settings.FontType,
		BootstrapTheme: req.Settings.BootstrapTheme,
	})
	if err != nil {
		if errors.Is(err, access.ErrAccountNotFound) {
			s.writeError(w, http.StatusNotFound, "Account not found")
			return
		}
		s.internalError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Settings saved successfully"})
}

func (s *Server) handleDeleteSettings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	err := s.access.DeleteSettings(r.Context(), req.Username)
	switch {
	case errors.Is(err, access.ErrAccountNotFound):
		s.writeError(w, http.StatusNotFound, "Account not found")
	case errors.Is(err, access.ErrSettingsNotFound):
		s.writeError(w, http.StatusNotFound, "No settings found for the account")
	case err != nil:
		s.internalError(w, r, err)
	default:
		s.writeJSON(w, http.StatusOK, map[string]string{"message": "Settings deleted successfully"})
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// internalError logs the underlying failure and returns an opaque 500.
// Raw storage errors never reach the client.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("internal error", "path", r.URL.Path, "error", err)
	s.writeError(w, http.StatusInternalServerError, "Internal server error.")
}
