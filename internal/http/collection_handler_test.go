package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tolet-api/internal/repository"
	"tolet-api/internal/service"
)

func newTestRouter() *Router {
	logger := zap.NewNop()
	repo := repository.NewMemoryCollectionsRepository()
	collections := service.NewCollectionService(repo, logger)

	router := NewRouter(logger)
	router.RegisterCollectionRoutes(NewCollectionHandler(collections, logger))
	return router
}

func doRequest(t *testing.T, router *Router, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

const createBody = `{
	"title": "Sunset Flats",
	"displayImageUrl": "http://x/img.png",
	"location": "Nairobi",
	"contactInformation": "+254700000000",
	"amenities": ["Parking", "Pool"],
	"listings": [{
		"typeOfListing": "Single",
		"price": 15000,
		"numberOfBedrooms": 0,
		"availableUnits": 4,
		"images": [],
		"additionalFees": []
	}],
	"rules": ["No pets"]
}`

func createCollection(t *testing.T, router *Router) map[string]any {
	t.Helper()

	rec, body := doRequest(t, router, http.MethodPost, "/api/collections", createBody)
	require.Equal(t, http.StatusOK, rec.Code)
	created, ok := body["results"].(map[string]any)
	require.True(t, ok, "create response must carry the collection under results")
	return created
}

func TestHealthChecker(t *testing.T) {
	router := newTestRouter()

	rec, body := doRequest(t, router, http.MethodGet, "/api/healthchecker", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", body["status"])
	assert.NotEmpty(t, body["message"])
}

func TestListCollections_EmptyTable(t *testing.T) {
	router := newTestRouter()

	rec, body := doRequest(t, router, http.MethodGet, "/api/collections", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(0), body["results"])
	data, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Empty(t, data)
}

func TestCreateCollection_EchoesFieldsAndAssignsServerFields(t *testing.T) {
	router := newTestRouter()

	created := createCollection(t, router)

	id, ok := created["id"].(float64)
	require.True(t, ok)
	assert.Greater(t, id, float64(0))
	assert.NotEmpty(t, created["createdAt"])

	assert.Equal(t, "Sunset Flats", created["title"])
	assert.Equal(t, "http://x/img.png", created["displayImageUrl"])
	assert.Equal(t, "Nairobi", created["location"])
	assert.Equal(t, "+254700000000", created["contactInformation"])
	assert.Equal(t, []any{"Parking", "Pool"}, created["amenities"])
	assert.Equal(t, []any{"No pets"}, created["rules"])

	listings, ok := created["listings"].([]any)
	require.True(t, ok)
	require.Len(t, listings, 1)
	listing := listings[0].(map[string]any)
	assert.Equal(t, "Single", listing["typeOfListing"])
	assert.Equal(t, float64(15000), listing["price"])
	assert.Equal(t, float64(0), listing["numberOfBedrooms"])
	assert.Equal(t, float64(4), listing["availableUnits"])
}

func TestCreateCollection_MissingRequiredField(t *testing.T) {
	router := newTestRouter()

	rec, body := doRequest(t, router, http.MethodPost, "/api/collections",
		`{"displayImageUrl":"http://x/img.png"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "fail", body["status"])
	assert.Contains(t, body["message"], "title is required")
}

func TestCreateCollection_UnknownAmenityLabel(t *testing.T) {
	router := newTestRouter()

	rec, body := doRequest(t, router, http.MethodPost, "/api/collections",
		strings.Replace(createBody, `"Pool"`, `"Sauna"`, 1))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "fail", body["status"])
	assert.Contains(t, body["message"], "unknown amenity label")
}

func TestGetCollection_RoundTrip(t *testing.T) {
	router := newTestRouter()
	created := createCollection(t, router)
	id := int(created["id"].(float64))

	rec, body := doRequest(t, router, http.MethodGet, "/api/collections/"+strconv.Itoa(id), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", body["status"])
	got, ok := body["results"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestGetCollection_NotFound(t *testing.T) {
	router := newTestRouter()

	rec, body := doRequest(t, router, http.MethodGet, "/api/collections/999999", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "fail", body["status"])
	assert.Equal(t, "Collection not found", body["message"])
}

func TestGetCollection_MalformedID(t *testing.T) {
	router := newTestRouter()

	// Non-numeric ids never match the route.
	rec, _ := doRequest(t, router, http.MethodGet, "/api/collections/abc", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateCollection_PartialPatch(t *testing.T) {
	router := newTestRouter()
	created := createCollection(t, router)
	id := int(created["id"].(float64))

	rec, body := doRequest(t, router, http.MethodPatch, "/api/collections/"+strconv.Itoa(id),
		`{"displayImageUrl":"http://x/new.png"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Collection updated", body["message"])

	updated, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "http://x/new.png", updated["displayImageUrl"])
	assert.Equal(t, created["title"], updated["title"])
	assert.Equal(t, created["location"], updated["location"])
	assert.Equal(t, created["contactInformation"], updated["contactInformation"])
	assert.Equal(t, created["amenities"], updated["amenities"])
	assert.Equal(t, created["listings"], updated["listings"])
	assert.Equal(t, created["rules"], updated["rules"])
	assert.NotEmpty(t, updated["createdAt"])
}

func TestUpdateCollection_MissingDisplayImageURL(t *testing.T) {
	router := newTestRouter()
	created := createCollection(t, router)
	id := int(created["id"].(float64))

	rec, body := doRequest(t, router, http.MethodPatch, "/api/collections/"+strconv.Itoa(id),
		`{"title":"Renamed"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "fail", body["status"])
	assert.Contains(t, body["message"], "displayImageUrl is required")
}

func TestUpdateCollection_NotFound(t *testing.T) {
	router := newTestRouter()

	rec, body := doRequest(t, router, http.MethodPatch, "/api/collections/999999",
		`{"displayImageUrl":"http://x/new.png"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Collection not found", body["message"])
}

func TestDeleteCollection_ThenGetNotFound(t *testing.T) {
	router := newTestRouter()
	created := createCollection(t, router)
	id := int(created["id"].(float64))

	rec, body := doRequest(t, router, http.MethodDelete, "/api/collections/"+strconv.Itoa(id), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Collection deleted", body["message"])

	rec, _ = doRequest(t, router, http.MethodGet, "/api/collections/"+strconv.Itoa(id), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCollection_NotFound(t *testing.T) {
	router := newTestRouter()

	rec, body := doRequest(t, router, http.MethodDelete, "/api/collections/999999", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Collection not found", body["message"])
}

func TestListCollections_CountsCreated(t *testing.T) {
	router := newTestRouter()
	createCollection(t, router)
	createCollection(t, router)

	rec, body := doRequest(t, router, http.MethodGet, "/api/collections", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["results"])
	data := body["data"].([]any)
	assert.Len(t, data, 2)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/collections", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PATCH, DELETE", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}
