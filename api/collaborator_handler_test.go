package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collaboratorTestRouter(h collaboratorHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/plant/{plantID}/collaborators", h.addCollaborator())
	return r
}

func TestAddCollaboratorRequiresIdentity(t *testing.T) {
	h := collaboratorHandler{responder: NewResponder(zerolog.Nop())}
	router := collaboratorTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/plant/"+uuid.NewString()+"/collaborators",
		strings.NewReader(`{"user_id":"`+uuid.NewString()+`"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAddCollaboratorRejectsMalformedPayload(t *testing.T) {
	h := collaboratorHandler{responder: NewResponder(zerolog.Nop())}
	router := collaboratorTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/plant/"+uuid.NewString()+"/collaborators",
		strings.NewReader(`{not json`))
	req = req.WithContext(ctxWithIdentity(req.Context(), identity{ID: uuid.New()}))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddCollaboratorRejectsMissingUserID(t *testing.T) {
	h := collaboratorHandler{responder: NewResponder(zerolog.Nop())}
	router := collaboratorTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/plant/"+uuid.NewString()+"/collaborators",
		strings.NewReader(`{}`))
	req = req.WithContext(ctxWithIdentity(req.Context(), identity{ID: uuid.New()}))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "user_id", body["field"])
}

func TestAddCollaboratorRejectsInvalidPlantID(t *testing.T) {
	h := collaboratorHandler{responder: NewResponder(zerolog.Nop())}
	router := collaboratorTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/plant/not-a-uuid/collaborators",
		strings.NewReader(`{"user_id":"`+uuid.NewString()+`"}`))
	req = req.WithContext(ctxWithIdentity(req.Context(), identity{ID: uuid.New()}))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWriteInfoDuplicateCollaboratorMessage(t *testing.T) {
	// A duplicate (plant, user) pair is swallowed into this informational
	// response instead of surfacing as a conflict error.
	responder := NewResponder(zerolog.Nop())
	rec := httptest.NewRecorder()

	responder.WriteInfo(rec, "User sudah menjadi kolaborator")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "info", body["status"])
	assert.Equal(t, "User sudah menjadi kolaborator", body["message"])
}
