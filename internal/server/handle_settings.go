package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/aula/internal/uploads"
)

type ColorRequest struct {
	Color string `json:"color"`
}

type ImageRequest struct {
	URL string `json:"url"`
}

type ImageResponse struct {
	PhaseID string `json:"phaseId"`
	Index   int    `json:"index"`
	URL     string `json:"url"`
}

// uploadField is the multipart field carrying the image file.
const uploadField = "file"

func handleSetColor(classroom *Classroom) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ColorRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		id := phaseFrom(r)
		if err := classroom.SetBackgroundColor(id, req.Color); err != nil {
			writeClassroomError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, req)
	}
}

func handleSetImage(classroom *Classroom) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ImageRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		id, index := phaseFrom(r), indexFrom(r)
		if err := classroom.SetImage(id, index, req.URL); err != nil {
			writeClassroomError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ImageResponse{PhaseID: string(id), Index: index, URL: req.URL})
	}
}

// handleUploadImage stores a multipart file and substitutes its
// reference into the slot. The file content is not inspected.
func handleUploadImage(classroom *Classroom, store uploads.Storage, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, index := phaseFrom(r), indexFrom(r)
		if err := classroom.HasSlot(id, index); err != nil {
			writeClassroomError(w, err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		file, header, err := r.FormFile(uploadField)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, "file too large")
				return
			}
			writeError(w, http.StatusBadRequest, "file is required")
			return
		}
		defer file.Close()

		name, err := store.Save(file, header.Filename)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		ref := uploadsPrefix + name
		if err := classroom.SetImage(id, index, ref); err != nil {
			writeClassroomError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, ImageResponse{PhaseID: string(id), Index: index, URL: ref})
	}
}

const uploadsPrefix = "/uploads/"

func handleServeUpload(store uploads.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		f, err := store.Open(name)
		if err != nil {
			writeError(w, http.StatusNotFound, "upload not found")
			return
		}
		defer f.Close()

		http.ServeContent(w, r, name, time.Time{}, f)
	}
}
