// Package rest provides HTTP handlers for the catalog view boundary.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	catalogerrors "pricebook/internal/errors"
	"pricebook/internal/service"
	"pricebook/pkg/web"
)

type Handler struct {
	service  service.CatalogService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new instance of the catalog handler with the provided service.
func NewHandler(service service.CatalogService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the catalog manager.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/price", h.LookupPrice)
		r.Get("/session", h.Session)
		r.Post("/session/cancel", h.CancelEdit)

		r.Route("/entries", func(r chi.Router) {
			r.Post("/", h.Submit)

			r.Route("/{id}", func(r chi.Router) {
				r.Post("/edit", h.BeginEdit)
				r.Delete("/", h.DeleteEntry)
			})
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// List returns the full catalog in catalog order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	entries := h.service.Entries()
	mLogger.DebugContext(r.Context(), "Successfully retrieved catalog", "count", len(entries))
	web.RespondJSON(w, mLogger, http.StatusOK, entries)
}

// Session returns the current edit session and form snapshot.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	web.RespondJSON(w, mLogger, http.StatusOK, h.service.Session())
}

// Submit handles an entry form submission: append without an active edit
// session, in-place update with one.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var submitDto service.SubmitDto
	if err := json.NewDecoder(r.Body).Decode(&submitDto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	mLogger.DebugContext(r.Context(), "Received entry submission", "name", submitDto.Name)
	if err := h.validate.Struct(submitDto); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			// If the error is a validation error, we can extract field-specific errors.
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				// fieldErr.Tag() returns "required", "max", etc.
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, mLogger, http.StatusUnprocessableEntity, map[string]any{"validation_errors": errorResponse})
			return
		}
		mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		// If it's not a validation error, we can return a generic error.
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.SubmitEntry(submitDto.Name, submitDto.Price)
	if err != nil {
		switch {
		case errors.Is(err, catalogerrors.ErrEntryNotFound):
			mLogger.WarnContext(r.Context(), "Edit target vanished before submission")
			web.RespondError(w, mLogger, http.StatusNotFound, "Entry under edit no longer exists")
		case errors.Is(err, catalogerrors.ErrNameRequired),
			errors.Is(err, catalogerrors.ErrPriceRequired),
			errors.Is(err, catalogerrors.ErrPriceInvalid):
			mLogger.WarnContext(r.Context(), "Submission rejected", "error", err)
			web.RespondError(w, mLogger, http.StatusUnprocessableEntity, err.Error())
		default:
			mLogger.ErrorContext(r.Context(), "Error applying submission", "error", err)
			web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to apply submission")
		}
		return
	}
	if result.Updated {
		mLogger.InfoContext(r.Context(), "Entry updated successfully", "ID", result.Entry.ID, "Name", result.Entry.Name)
		web.RespondJSON(w, mLogger, http.StatusOK, result)
		return
	}
	mLogger.InfoContext(r.Context(), "Entry created successfully", "ID", result.Entry.ID, "Name", result.Entry.Name)
	web.RespondJSON(w, mLogger, http.StatusCreated, result)
}

// BeginEdit starts an edit session for an entry.
func (h *Handler) BeginEdit(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to edit entry", "ID", id)
	session, err := h.service.BeginEdit(id)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrEntryNotFound) {
			mLogger.WarnContext(r.Context(), "Entry not found for edit", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Entry with ID %d not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error starting edit session", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to edit entry with ID %d", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Edit session started", "ID", id)
	web.RespondJSON(w, mLogger, http.StatusOK, session)
}

// CancelEdit clears the edit session. Idempotent, always succeeds.
func (h *Handler) CancelEdit(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	session := h.service.CancelEdit()
	mLogger.InfoContext(r.Context(), "Edit session cancelled")
	web.RespondJSON(w, mLogger, http.StatusOK, session)
}

// DeleteEntry deletes an entry by its ID. The client is expected to have
// obtained user confirmation; a missing ID is a no-op.
func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to delete entry", "ID", id)
	if removed := h.service.DeleteEntry(id); !removed {
		mLogger.WarnContext(r.Context(), "Entry already absent on delete", "ID", id)
	} else {
		mLogger.InfoContext(r.Context(), "Entry deleted successfully", "ID", id)
	}
	w.WriteHeader(http.StatusNoContent)
}

// LookupPrice resolves a price by case-insensitive name prefix.
func (h *Handler) LookupPrice(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	term := r.URL.Query().Get("q")
	result := h.service.LookupPrice(term)
	mLogger.DebugContext(r.Context(), "Price lookup", "term", term, "found", result.Found)
	web.RespondJSON(w, mLogger, http.StatusOK, result)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID, _ := web.GetRequestID(r.Context())
	return h.logger.With("request_id", reqID)
}
