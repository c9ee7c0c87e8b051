package server

import (
	"encoding/json"
	"mime/multipart"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/playperu/aula/internal/handler/health"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Request shapes carrying path parameters for the document only.
type (
	colorParams struct {
		PhaseID string `path:"phaseID"`
		ColorRequest
	}
	imageParams struct {
		PhaseID string `path:"phaseID"`
		Index   int    `path:"index"`
		ImageRequest
	}
	uploadParams struct {
		PhaseID string                `path:"phaseID"`
		Index   int                   `path:"index"`
		File    *multipart.FileHeader `formData:"file"`
	}
	uploadNameParams struct {
		Name string `path:"name"`
	}
	stringsParams struct {
		Lang string `query:"lang"`
	}
)

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Openapi = "3.0.3"
	r.Spec.Info.Title = "Aula API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Local API for the classroom phase presenter.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the status of each local dependency.")
	getHealthz.AddRespStructure(map[string]health.Result{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(map[string]health.Result{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/state")
	getState.SetSummary("Session state")
	getState.SetDescription("Returns every phase, the selectors, and the presented slideshow if any.")
	getState.AddRespStructure(StateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getState)

	// PUT /api/view
	putView, _ := r.NewOperationContext(http.MethodPut, "/api/view")
	putView.SetSummary("Select view")
	putView.SetDescription("Switches to a phase or to settings. A different phase starts at its first image.")
	putView.AddReqStructure(ViewRequest{})
	putView.AddRespStructure(ViewRequest{}, openapi.WithHTTPStatus(http.StatusOK))
	putView.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	putView.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(putView)

	// PUT /api/language
	putLang, _ := r.NewOperationContext(http.MethodPut, "/api/language")
	putLang.SetSummary("Select language")
	putLang.SetDescription("Sets the display language. An empty value follows Accept-Language.")
	putLang.AddReqStructure(LanguageRequest{})
	putLang.AddRespStructure(LanguageResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	putLang.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(putLang)

	// GET /api/strings
	getStrings, _ := r.NewOperationContext(http.MethodGet, "/api/strings")
	getStrings.SetSummary("UI strings")
	getStrings.SetDescription("Returns the translation table for the session language or ?lang.")
	getStrings.AddReqStructure(stringsParams{})
	getStrings.AddRespStructure(StringsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getStrings.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(getStrings)

	// PUT /api/phases/{phaseID}/color
	putColor, _ := r.NewOperationContext(http.MethodPut, "/api/phases/{phaseID}/color")
	putColor.SetSummary("Set background color")
	putColor.SetDescription("Replaces the phase background color. Any string is accepted.")
	putColor.AddReqStructure(colorParams{})
	putColor.AddRespStructure(ColorRequest{}, openapi.WithHTTPStatus(http.StatusOK))
	putColor.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(putColor)

	// PUT /api/phases/{phaseID}/images/{index}
	putImage, _ := r.NewOperationContext(http.MethodPut, "/api/phases/{phaseID}/images/{index}")
	putImage.SetSummary("Set image URL")
	putImage.SetDescription("Replaces one image reference. Votes and reveal state of the slot are kept.")
	putImage.AddReqStructure(imageParams{})
	putImage.AddRespStructure(ImageResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	putImage.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	putImage.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	putImage.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(putImage)

	// POST /api/phases/{phaseID}/images/{index}/upload
	postUpload, _ := r.NewOperationContext(http.MethodPost, "/api/phases/{phaseID}/images/{index}/upload")
	postUpload.SetSummary("Upload image")
	postUpload.SetDescription("Stores a multipart file and uses its /uploads reference for the slot.")
	postUpload.AddReqStructure(uploadParams{})
	postUpload.AddRespStructure(ImageResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	postUpload.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postUpload.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postUpload.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusRequestEntityTooLarge))
	postUpload.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(postUpload)

	// GET /uploads/{name}
	getUpload, _ := r.NewOperationContext(http.MethodGet, "/uploads/{name}")
	getUpload.SetSummary("Uploaded file")
	getUpload.SetDescription("Serves a file uploaded during this session.")
	getUpload.AddReqStructure(uploadNameParams{})
	getUpload.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("application/octet-stream"))
	getUpload.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getUpload)

	// GET /api/slideshow
	getShow, _ := r.NewOperationContext(http.MethodGet, "/api/slideshow")
	getShow.SetSummary("Presented slideshow")
	getShow.SetDescription("Returns the cursor, counter label and reveal/vote state of the presented phase.")
	getShow.AddRespStructure(SlideshowInfo{}, openapi.WithHTTPStatus(http.StatusOK))
	getShow.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(getShow)

	// POST /api/slideshow/next
	postNext, _ := r.NewOperationContext(http.MethodPost, "/api/slideshow/next")
	postNext.SetSummary("Next image")
	postNext.SetDescription("Advances one image and reveals it. At the last image moved is false.")
	postNext.AddRespStructure(MoveResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postNext.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postNext)

	// POST /api/slideshow/previous
	postPrev, _ := r.NewOperationContext(http.MethodPost, "/api/slideshow/previous")
	postPrev.SetSummary("Previous image")
	postPrev.SetDescription("Steps back one image. At the first image moved is false.")
	postPrev.AddRespStructure(MoveResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postPrev.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postPrev)

	// POST /api/slideshow/select
	postSelect, _ := r.NewOperationContext(http.MethodPost, "/api/slideshow/select")
	postSelect.SetSummary("Jump to image")
	postSelect.SetDescription("Jumps to a revealed image. Locked images are ignored (moved is false).")
	postSelect.AddReqStructure(SelectRequest{})
	postSelect.AddRespStructure(MoveResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postSelect.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postSelect.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	postSelect.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(postSelect)

	// POST /api/slideshow/vote
	postVote, _ := r.NewOperationContext(http.MethodPost, "/api/slideshow/vote")
	postVote.SetSummary("Vote")
	postVote.SetDescription("Adds delta to an image tally. Tallies may go negative.")
	postVote.AddReqStructure(VoteRequest{})
	postVote.AddRespStructure(SlideshowInfo{}, openapi.WithHTTPStatus(http.StatusOK))
	postVote.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postVote.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	postVote.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(postVote)

	// POST /api/slideshow/reset
	postReset, _ := r.NewOperationContext(http.MethodPost, "/api/slideshow/reset")
	postReset.SetSummary("Reset phase")
	postReset.SetDescription("Rewinds to the first image, clears votes and relocks all but the first image.")
	postReset.AddRespStructure(SlideshowInfo{}, openapi.WithHTTPStatus(http.StatusOK))
	postReset.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postReset)

	// GET /api/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of session changes.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /ws
	getWS, _ := r.NewOperationContext(http.MethodGet, "/ws")
	getWS.SetSummary("WebSocket event feed")
	getWS.SetDescription("Upgrades to a WebSocket that pushes session change events.")
	getWS.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getWS)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
