package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"tolet-api/internal/domain"
	"tolet-api/internal/repository"
	"tolet-api/internal/service"
)

const maxBodyBytes = 1 << 20

// CollectionHandler translates HTTP requests into CollectionService calls
// and service results into status envelopes. Not-found maps to 404 with a
// fixed message; body decode/validation failures map to 400; every other
// service failure maps to 500 carrying the underlying error text.
type CollectionHandler struct {
	collections *service.CollectionService
	logger      *zap.Logger
}

func NewCollectionHandler(collections *service.CollectionService, logger *zap.Logger) *CollectionHandler {
	return &CollectionHandler{
		collections: collections,
		logger:      logger,
	}
}

// HealthCheck handles GET /api/healthchecker.
func (h *CollectionHandler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{
		Status:  statusSuccess,
		Message: "Property collections API is up and running",
	})
}

// GetAll handles GET /api/collections. Returns the whole table; ordering is
// storage-defined.
func (h *CollectionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	collections, err := h.collections.ListAll(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, Fail(fmt.Sprintf("Error: %s", err)))
		return
	}
	writeJSON(w, http.StatusOK, listResponse{
		Status:  statusSuccess,
		Results: len(collections),
		Data:    collections,
	})
}

// Create handles POST /api/collections.
func (h *CollectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateCollection
	if err := readBodyJSON(r, maxBodyBytes, &in); err != nil {
		h.logger.Debug("invalid create body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, Fail(fmt.Sprintf("Error: %s", err)))
		return
	}
	if err := in.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail(fmt.Sprintf("Error: %s", err)))
		return
	}

	collection, err := h.collections.Create(r.Context(), in)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, Fail(fmt.Sprintf("Error: %s", err)))
		return
	}
	writeJSON(w, http.StatusOK, itemResponse{
		Status:  statusSuccess,
		Results: collection,
	})
}

// GetByID handles GET /api/collections/{id}.
func (h *CollectionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	collection, err := h.collections.GetByID(r.Context(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			writeJSON(w, http.StatusNotFound, Fail("Collection not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, Fail(fmt.Sprintf("Error: %s", err)))
		return
	}
	writeJSON(w, http.StatusOK, itemResponse{
		Status:  statusSuccess,
		Results: collection,
	})
}

// Update handles PATCH /api/collections/{id}. Absent fields keep their stored
// values; createdAt is refreshed on every successful update.
func (h *CollectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	var in domain.UpdateCollection
	if err := readBodyJSON(r, maxBodyBytes, &in); err != nil {
		h.logger.Debug("invalid update body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, Fail(fmt.Sprintf("Error: %s", err)))
		return
	}
	if err := in.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail(fmt.Sprintf("Error: %s", err)))
		return
	}

	collection, err := h.collections.Update(r.Context(), id, in)
	if err != nil {
		if err == repository.ErrNotFound {
			writeJSON(w, http.StatusNotFound, Fail("Collection not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, Fail(fmt.Sprintf("Error: %s", err)))
		return
	}
	writeJSON(w, http.StatusOK, updateResponse{
		Status:  statusSuccess,
		Message: "Collection updated",
		Data:    collection,
	})
}

// Delete handles DELETE /api/collections/{id}.
func (h *CollectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	if err := h.collections.Delete(r.Context(), id); err != nil {
		if err == repository.ErrNotFound {
			writeJSON(w, http.StatusNotFound, Fail("Collection not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, Fail(fmt.Sprintf("Error: %s", err)))
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		Status:  statusSuccess,
		Message: "Collection deleted",
	})
}

// pathID reads the {id} route variable. The route pattern restricts it to
// digits, so Atoi only fails on out-of-range values.
func pathID(r *http.Request) int {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0
	}
	return id
}
