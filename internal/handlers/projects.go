package handlers

import (
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/lussekatt/internal/app"
	"github.com/shrimpsizemoose/lussekatt/internal/metrics"
	"github.com/shrimpsizemoose/lussekatt/internal/models"
)

type ProjectHandler struct {
	service *app.Service
}

func NewProjectHandler(service *app.Service) *ProjectHandler {
	return &ProjectHandler{
		service: service,
	}
}

// ownerExists resolves the referenced user, writing the 404/500 itself when
// the reference cannot be satisfied.
func (h *ProjectHandler) ownerExists(w http.ResponseWriter, ownerID int64, notFoundMsg string) bool {
	owner, err := h.service.Store.GetUserByID(ownerID)
	if err != nil {
		logger.Error.Printf("Failed to get user %d: %v", ownerID, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return false
	}
	if owner == nil {
		writeError(w, http.StatusNotFound, notFoundMsg)
		return false
	}
	return true
}

func (h *ProjectHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var payload models.ProjectCreate
	if !decodeBody(w, r, &payload) {
		return
	}

	if !h.ownerExists(w, *payload.OwnerID, "User not found") {
		return
	}

	project := models.Project{
		Name:        payload.Name,
		Description: payload.Description,
		OwnerID:     *payload.OwnerID,
	}

	if err := h.service.Store.CreateProject(&project); err != nil {
		writeStoreError(w, err, "Project creation failed")
		return
	}

	logger.Debug.Printf("Created project %d for user %d", project.ID, project.OwnerID)
	metrics.EntityWritesTotal.WithLabelValues("project", "create").Inc()
	writeJSON(w, http.StatusCreated, project)
}

// HandleCreateForUser covers the nested route: the owner id comes from the
// path segment, anything in the body besides name/description is ignored.
func (h *ProjectHandler) HandleCreateForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "uid")
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	var payload models.ProjectCreateForUser
	if !decodeBody(w, r, &payload) {
		return
	}

	if !h.ownerExists(w, userID, "User not found") {
		return
	}

	project := models.Project{
		Name:        payload.Name,
		Description: payload.Description,
		OwnerID:     userID,
	}

	if err := h.service.Store.CreateProject(&project); err != nil {
		writeStoreError(w, err, "Project creation failed")
		return
	}

	logger.Debug.Printf("Created project %d for user %d", project.ID, project.OwnerID)
	metrics.EntityWritesTotal.WithLabelValues("project", "create").Inc()
	writeJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.Store.ListProjects()
	if err != nil {
		logger.Error.Printf("Failed to list projects: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

// HandleListByOwner returns the user's projects. An unknown user id is not an
// error, it just yields an empty list.
func (h *ProjectHandler) HandleListByOwner(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "uid")
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	projects, err := h.service.Store.ListProjectsByOwner(userID)
	if err != nil {
		logger.Error.Printf("Failed to list projects for user %d: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	project, err := h.service.Store.GetProjectWithOwner(id)
	if err != nil {
		logger.Error.Printf("Failed to get project %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if project == nil {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	var payload models.ProjectUpsert
	if !decodeBody(w, r, &payload) {
		return
	}

	project, err := h.service.Store.GetProjectByID(id)
	if err != nil {
		logger.Error.Printf("Failed to get project %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if project == nil {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	// The new owner reference is only re-verified when it actually changes.
	if *payload.OwnerID != project.OwnerID {
		if !h.ownerExists(w, *payload.OwnerID, "Owner not found") {
			return
		}
	}

	payload.Apply(project)

	if err := h.service.Store.UpdateProject(project); err != nil {
		writeStoreError(w, err, "Project update failed")
		return
	}

	metrics.EntityWritesTotal.WithLabelValues("project", "update").Inc()
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	var payload models.ProjectPatch
	if !decodeBody(w, r, &payload) {
		return
	}

	project, err := h.service.Store.GetProjectByID(id)
	if err != nil {
		logger.Error.Printf("Failed to get project %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if project == nil {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	// A supplied owner_id is always verified, even when it equals the
	// current value.
	if payload.OwnerID != nil {
		if !h.ownerExists(w, *payload.OwnerID, "Owner not found") {
			return
		}
	}

	payload.Apply(project)

	if err := h.service.Store.UpdateProject(project); err != nil {
		writeStoreError(w, err, "Project update failed")
		return
	}

	metrics.EntityWritesTotal.WithLabelValues("project", "update").Inc()
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	deleted, err := h.service.Store.DeleteProject(id)
	if err != nil {
		logger.Error.Printf("Failed to delete project %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	metrics.EntityWritesTotal.WithLabelValues("project", "delete").Inc()
	w.WriteHeader(http.StatusNoContent)
}
