package server

import (
	"net/http"

	"github.com/playperu/aula/internal/i18n"
)

type SlideshowInfo struct {
	PhaseID         string `json:"phaseId"`
	PhaseName       string `json:"phaseName"`
	BackgroundColor string `json:"backgroundColor"`
	CurrentIndex    int    `json:"currentIndex"`
	Total           int    `json:"total"`
	Image           string `json:"image"`
	Counter         string `json:"counter"`
	CanPrevious     bool   `json:"canPrevious"`
	AtEnd           bool   `json:"atEnd"`
	Revealed        []bool `json:"revealed"`
	Votes           []int  `json:"votes"`
	Voting          bool   `json:"voting"`
}

type MoveResponse struct {
	Moved     bool          `json:"moved"`
	Slideshow SlideshowInfo `json:"slideshow"`
}

type SelectRequest struct {
	Index *int `json:"index"`
}

type VoteRequest struct {
	Index *int `json:"index"`
	Delta *int `json:"delta"`
}

func slideshowInfo(s SlideshowState) SlideshowInfo {
	total := s.Phase.Len()
	return SlideshowInfo{
		PhaseID:         string(s.Phase.ID),
		PhaseName:       i18n.PhaseName(s.Language, s.Position),
		BackgroundColor: s.Phase.BackgroundColor,
		CurrentIndex:    s.Current,
		Total:           total,
		Image:           s.Phase.Images[s.Current],
		Counter:         i18n.ImageCounter(s.Language, s.Current+1, total),
		CanPrevious:     s.Current > 0,
		AtEnd:           s.AtEnd,
		Revealed:        s.Phase.Revealed,
		Votes:           s.Phase.Votes,
		Voting:          s.Phase.Voting,
	}
}

func handleSlideshow(classroom *Classroom) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ss, err := classroom.Slideshow()
		if err != nil {
			writeClassroomError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, slideshowInfo(ss))
	}
}

// handleMove serves next and previous. Moves past either end answer 200
// with moved=false.
func handleMove(move func() (SlideshowState, bool, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ss, moved, err := move()
		if err != nil {
			writeClassroomError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MoveResponse{Moved: moved, Slideshow: slideshowInfo(ss)})
	}
}

func handleSelect(classroom *Classroom) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Index == nil {
			writeError(w, http.StatusBadRequest, "index is required")
			return
		}

		ss, moved, err := classroom.Select(*req.Index)
		if err != nil {
			writeClassroomError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MoveResponse{Moved: moved, Slideshow: slideshowInfo(ss)})
	}
}

func handleVote(classroom *Classroom) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VoteRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Index == nil || req.Delta == nil {
			writeError(w, http.StatusBadRequest, "index and delta are required")
			return
		}

		ss, err := classroom.Vote(*req.Index, *req.Delta)
		if err != nil {
			writeClassroomError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, slideshowInfo(ss))
	}
}

func handleReset(classroom *Classroom) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ss, err := classroom.Reset()
		if err != nil {
			writeClassroomError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, slideshowInfo(ss))
	}
}
