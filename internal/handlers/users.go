package handlers

import (
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/lussekatt/internal/app"
	"github.com/shrimpsizemoose/lussekatt/internal/metrics"
	"github.com/shrimpsizemoose/lussekatt/internal/models"
)

type UserHandler struct {
	service *app.Service
}

func NewUserHandler(service *app.Service) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var payload models.UserUpsert
	if !decodeBody(w, r, &payload) {
		return
	}

	var user models.User
	payload.Apply(&user)

	if err := h.service.Store.CreateUser(&user); err != nil {
		writeStoreError(w, err, "User already exists")
		return
	}

	logger.Debug.Printf("Created user %d (%s)", user.ID, user.StudentID)
	metrics.EntityWritesTotal.WithLabelValues("user", "create").Inc()
	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.Store.ListUsers()
	if err != nil {
		logger.Error.Printf("Failed to list users: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	user, err := h.service.Store.GetUserByID(id)
	if err != nil {
		logger.Error.Printf("Failed to get user %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	var payload models.UserUpsert
	if !decodeBody(w, r, &payload) {
		return
	}

	user, err := h.service.Store.GetUserByID(id)
	if err != nil {
		logger.Error.Printf("Failed to get user %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	payload.Apply(user)

	if err := h.service.Store.UpdateUser(user); err != nil {
		writeStoreError(w, err, "User update failed")
		return
	}

	metrics.EntityWritesTotal.WithLabelValues("user", "update").Inc()
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	var payload models.UserPatch
	if !decodeBody(w, r, &payload) {
		return
	}

	user, err := h.service.Store.GetUserByID(id)
	if err != nil {
		logger.Error.Printf("Failed to get user %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	payload.Apply(user)

	if err := h.service.Store.UpdateUser(user); err != nil {
		writeStoreError(w, err, "User update failed")
		return
	}

	metrics.EntityWritesTotal.WithLabelValues("user", "update").Inc()
	writeJSON(w, http.StatusOK, user)
}

// HandleDelete removes the user without touching projects they own: those
// rows keep a dangling owner_id on purpose.
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	deleted, err := h.service.Store.DeleteUser(id)
	if err != nil {
		logger.Error.Printf("Failed to delete user %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	metrics.EntityWritesTotal.WithLabelValues("user", "delete").Inc()
	w.WriteHeader(http.StatusNoContent)
}
