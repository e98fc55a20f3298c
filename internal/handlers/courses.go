package handlers

import (
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/lussekatt/internal/app"
	"github.com/shrimpsizemoose/lussekatt/internal/metrics"
	"github.com/shrimpsizemoose/lussekatt/internal/models"
)

type CourseHandler struct {
	service *app.Service
}

func NewCourseHandler(service *app.Service) *CourseHandler {
	return &CourseHandler{
		service: service,
	}
}

func (h *CourseHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var payload models.CourseUpsert
	if !decodeBody(w, r, &payload) {
		return
	}

	var course models.Course
	payload.Apply(&course)

	if err := h.service.Store.CreateCourse(&course); err != nil {
		writeStoreError(w, err, "Course already exists")
		return
	}

	logger.Debug.Printf("Created course %d (%s)", course.ID, course.Code)
	metrics.EntityWritesTotal.WithLabelValues("course", "create").Inc()
	writeJSON(w, http.StatusCreated, course)
}

func (h *CourseHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", h.service.Config.API.DefaultLimit)
	offset := queryInt(r, "offset", 0)

	courses, err := h.service.Store.ListCourses(limit, offset)
	if err != nil {
		logger.Error.Printf("Failed to list courses: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, courses)
}

func (h *CourseHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "Course not found")
		return
	}

	course, err := h.service.Store.GetCourseByID(id)
	if err != nil {
		logger.Error.Printf("Failed to get course %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if course == nil {
		writeError(w, http.StatusNotFound, "Course not found")
		return
	}

	writeJSON(w, http.StatusOK, course)
}

func (h *CourseHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "Course not found")
		return
	}

	var payload models.CourseUpsert
	if !decodeBody(w, r, &payload) {
		return
	}

	course, err := h.service.Store.GetCourseByID(id)
	if err != nil {
		logger.Error.Printf("Failed to get course %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if course == nil {
		writeError(w, http.StatusNotFound, "Course not found")
		return
	}

	payload.Apply(course)

	if err := h.service.Store.UpdateCourse(course); err != nil {
		writeStoreError(w, err, "Course update failed")
		return
	}

	metrics.EntityWritesTotal.WithLabelValues("course", "update").Inc()
	writeJSON(w, http.StatusOK, course)
}

func (h *CourseHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "Course not found")
		return
	}

	var payload models.CoursePatch
	if !decodeBody(w, r, &payload) {
		return
	}

	course, err := h.service.Store.GetCourseByID(id)
	if err != nil {
		logger.Error.Printf("Failed to get course %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if course == nil {
		writeError(w, http.StatusNotFound, "Course not found")
		return
	}

	payload.Apply(course)

	if err := h.service.Store.UpdateCourse(course); err != nil {
		writeStoreError(w, err, "Course update failed")
		return
	}

	metrics.EntityWritesTotal.WithLabelValues("course", "update").Inc()
	writeJSON(w, http.StatusOK, course)
}

func (h *CourseHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "Course not found")
		return
	}

	deleted, err := h.service.Store.DeleteCourse(id)
	if err != nil {
		logger.Error.Printf("Failed to delete course %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Course not found")
		return
	}

	metrics.EntityWritesTotal.WithLabelValues("course", "delete").Inc()
	w.WriteHeader(http.StatusNoContent)
}
