package handlers

import (
	"net/http"

	"github.com/shrimpsizemoose/lussekatt/internal/app"
)

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NewRouter wires every API route onto a fresh mux.
func NewRouter(service *app.Service) *http.ServeMux {
	courseHandler := NewCourseHandler(service)
	projectHandler := NewProjectHandler(service)
	userHandler := NewUserHandler(service)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", Health)

	mux.HandleFunc("POST /api/courses", courseHandler.HandleCreate)
	mux.HandleFunc("GET /api/courses", courseHandler.HandleList)
	mux.HandleFunc("GET /api/courses/{id}", courseHandler.HandleGet)
	mux.HandleFunc("PUT /api/courses/{id}", courseHandler.HandlePut)
	mux.HandleFunc("PATCH /api/courses/{id}", courseHandler.HandlePatch)
	mux.HandleFunc("DELETE /api/courses/{id}", courseHandler.HandleDelete)

	mux.HandleFunc("POST /api/projects", projectHandler.HandleCreate)
	mux.HandleFunc("GET /api/projects", projectHandler.HandleList)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.HandleGet)
	mux.HandleFunc("PUT /api/projects/{id}", projectHandler.HandlePut)
	mux.HandleFunc("PATCH /api/projects/{id}", projectHandler.HandlePatch)
	mux.HandleFunc("DELETE /api/projects/{id}", projectHandler.HandleDelete)
	mux.HandleFunc("GET /api/users/{uid}/projects", projectHandler.HandleListByOwner)
	mux.HandleFunc("POST /api/users/{uid}/projects", projectHandler.HandleCreateForUser)

	mux.HandleFunc("GET /api/users", userHandler.HandleList)
	mux.HandleFunc("GET /api/users/{id}", userHandler.HandleGet)
	mux.HandleFunc("POST /api/users", userHandler.HandleCreate)
	mux.HandleFunc("PUT /api/users/{id}", userHandler.HandlePut)
	mux.HandleFunc("PATCH /api/users/{id}", userHandler.HandlePatch)
	mux.HandleFunc("DELETE /api/users/{id}", userHandler.HandleDelete)

	return mux
}
