package server

import (
	"net/http"
	"strings"

	"github.com/playperu/aula/internal/aula"
	"github.com/playperu/aula/internal/i18n"
)

type PhaseInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	BackgroundColor string   `json:"backgroundColor"`
	Images          []string `json:"images"`
	Votes           []int    `json:"votes"`
	Revealed        []bool   `json:"revealed"`
	Voting          bool     `json:"voting"`
}

type StateResponse struct {
	View      string         `json:"view"`
	Language  string         `json:"language"`
	Languages []string       `json:"languages"`
	Phases    []PhaseInfo    `json:"phases"`
	Slideshow *SlideshowInfo `json:"slideshow"`
}

type ViewRequest struct {
	View string `json:"view"`
}

type LanguageRequest struct {
	Language string `json:"language"`
}

type LanguageResponse struct {
	Language string `json:"language"`
}

type StringsResponse struct {
	Language string            `json:"language"`
	Strings  map[string]string `json:"strings"`
}

func phaseInfo(p aula.Phase, position int, lang aula.Language) PhaseInfo {
	return PhaseInfo{
		ID:              string(p.ID),
		Name:            i18n.PhaseName(lang, position),
		BackgroundColor: p.BackgroundColor,
		Images:          p.Images,
		Votes:           p.Votes,
		Revealed:        p.Revealed,
		Voting:          p.Voting,
	}
}

func handleState(classroom *Classroom) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, show := classroom.Snapshot()

		resp := StateResponse{
			View:      string(snap.View),
			Language:  string(snap.Language),
			Languages: make([]string, 0, len(i18n.Supported)),
			Phases:    make([]PhaseInfo, 0, len(snap.Phases)),
		}
		for _, lang := range i18n.Supported {
			resp.Languages = append(resp.Languages, string(lang))
		}
		for i, p := range snap.Phases {
			resp.Phases = append(resp.Phases, phaseInfo(p, i+1, snap.Language))
		}
		if show != nil {
			info := slideshowInfo(*show)
			resp.Slideshow = &info
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func handleSetView(classroom *Classroom) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ViewRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.View = strings.TrimSpace(req.View)
		if req.View == "" {
			writeError(w, http.StatusBadRequest, "view is required")
			return
		}

		if err := classroom.SetView(aula.View(req.View)); err != nil {
			writeClassroomError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ViewRequest{View: req.View})
	}
}

// handleSetLanguage stores the display language. An empty language
// follows the browser's Accept-Language header.
func handleSetLanguage(classroom *Classroom) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LanguageRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		lang := i18n.Negotiate(r.Header.Get("Accept-Language"))
		if strings.TrimSpace(req.Language) != "" {
			parsed, ok := i18n.Parse(req.Language)
			if !ok {
				writeError(w, http.StatusBadRequest, "unsupported language")
				return
			}
			lang = parsed
		}

		classroom.SetLanguage(lang)
		writeJSON(w, http.StatusOK, LanguageResponse{Language: string(lang)})
	}
}

// handleStrings returns the UI string table for the session language or
// the ?lang= override.
func handleStrings(classroom *Classroom) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := classroom.Language()
		if v := r.URL.Query().Get("lang"); v != "" {
			parsed, ok := i18n.Parse(v)
			if !ok {
				writeError(w, http.StatusBadRequest, "unsupported language")
				return
			}
			lang = parsed
		}

		writeJSON(w, http.StatusOK, StringsResponse{
			Language: string(lang),
			Strings:  i18n.Strings(lang),
		})
	}
}
