package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy"
	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy/api"
	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy/repo/memory"
	memorystorage "github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy/storage/memory"
)

// responseEnvelope mirrors the wire shape for assertions
type responseEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func setupRouter(t *testing.T) (chi.Router, embassy.Service, string) {
	t.Helper()

	service, err := embassy.New(embassy.WithRepository(memory.New()))
	require.NoError(t, err)

	storage, err := embassy.NewStorageService(
		embassy.WithBlobStore(memorystorage.New("http://localhost/blobs")))
	require.NoError(t, err)

	auth := api.NewAuth("test-secret", time.Hour, false)
	_, token, err := auth.Tokens.Encode(map[string]interface{}{"sub": "editor@embassy.example"})
	require.NoError(t, err)

	return api.NewRouter(service, storage, auth, 1<<20), service, token
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) responseEnvelope {
	t.Helper()
	var env responseEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestListNewsLocalized(t *testing.T) {
	router, service, _ := setupRouter(t)

	_, err := service.CreateNews(context.Background(), embassy.CreateNewsRequest{
		Title:   "Consular section closed",
		Summary: "Short notice",
		I18n: embassy.Translations{
			embassy.LocaleRomanian: {"title": "Secția consulară închisă"},
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/news?lang=ro", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	require.Empty(t, env.Error)

	var items []embassy.NewsItem
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Secția consulară închisă", items[0].Title)
}

func TestGetMissingReturns404(t *testing.T) {
	router, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/forms/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "not found", env.Error)
}

func TestInvalidIDReturns400(t *testing.T) {
	router, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/news/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMutationsRequireAuth(t *testing.T) {
	router, _, _ := setupRouter(t)

	body := bytes.NewBufferString(`{"title":"t","message":"m","level":"info"}`)
	req := httptest.NewRequest(http.MethodPost, "/alerts", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "authentication required", env.Error)
}

func TestBearerTokenAllowsMutation(t *testing.T) {
	router, _, token := setupRouter(t)

	body := bytes.NewBufferString(`{"name":"Passport renewal","details":"Bring two photos"}`)
	req := httptest.NewRequest(http.MethodPost, "/consular-services", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "BEARER "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	var created embassy.ConsularService
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Passport renewal", created.Name)
}

func TestValidationFailureReturns400(t *testing.T) {
	router, _, token := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/consular-services", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "BEARER "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.NotEmpty(t, env.Error)
}

func TestSessionFlow(t *testing.T) {
	router, _, token := setupRouter(t)

	// Login with the bearer token to open a session
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set("Authorization", "BEARER "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	// The session alone now authorizes mutations
	body := bytes.NewBufferString(`{"message":"Closed on the 1st","level":"info"}`)
	req = httptest.NewRequest(http.MethodPost, "/alerts", body)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	// And identifies the editor
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	var me map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "editor@embassy.example", me["subject"])
}

func TestLoginWithoutTokenFails(t *testing.T) {
	router, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAlertsListIncludesInactive(t *testing.T) {
	router, service, _ := setupRouter(t)
	ctx := context.Background()

	_, err := service.CreateAlert(ctx, embassy.CreateAlertRequest{
		Message: "active one", Level: embassy.AlertInfo,
	})
	require.NoError(t, err)

	inactive := false
	_, err = service.CreateAlert(ctx, embassy.CreateAlertRequest{
		Message: "inactive one", Level: embassy.AlertDanger, Active: &inactive,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/alerts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	var alerts []embassy.Alert
	require.NoError(t, json.Unmarshal(env.Data, &alerts))
	assert.Len(t, alerts, 2)
}

func TestIntakeIsPublic(t *testing.T) {
	router, _, _ := setupRouter(t)

	body := bytes.NewBufferString(`{"name":"Ana Pop","email":"ana@example.com","message":"I need an appointment"}`)
	req := httptest.NewRequest(http.MethodPost, "/submissions", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	var sub embassy.Submission
	require.NoError(t, json.Unmarshal(env.Data, &sub))
	assert.Equal(t, embassy.SubmissionNew, sub.Status)
	assert.Equal(t, embassy.SubmissionForm, sub.Kind)
}

func TestSubmissionStatusPatch(t *testing.T) {
	router, service, token := setupRouter(t)

	sub, err := service.CreateSubmission(context.Background(), embassy.CreateSubmissionRequest{
		Name: "Ana Pop", Email: "ana@example.com", Message: "msg",
	})
	require.NoError(t, err)

	body := bytes.NewBufferString(`{"status":"done"}`)
	req := httptest.NewRequest(http.MethodPatch, "/submissions/"+sub.ID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "BEARER "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// Unknown status values are rejected
	body = bytes.NewBufferString(`{"status":"archived"}`)
	req = httptest.NewRequest(http.MethodPatch, "/submissions/"+sub.ID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "BEARER "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettingsRoundTrip(t *testing.T) {
	router, _, token := setupRouter(t)

	body := bytes.NewBufferString(`{"phone":"+40 21 000 0000","i18n":{"ro":{"hero_title":"Bun venit"}},"hero_title":"Welcome"}`)
	req := httptest.NewRequest(http.MethodPut, "/settings", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "BEARER "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/settings?lang=ro", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	var settings embassy.Settings
	require.NoError(t, json.Unmarshal(env.Data, &settings))
	assert.Equal(t, "Bun venit", settings.HeroTitle)
	assert.Equal(t, "+40 21 000 0000", settings.Phone)
}

func TestUpload(t *testing.T) {
	router, _, token := setupRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("folder", "forms"))
	part, err := mw.CreateFormFile("file", "application form.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "BEARER "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	var result embassy.UploadResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Contains(t, result.ObjectKey, "forms/")
	assert.Contains(t, result.ObjectKey, "_application_form.pdf")
	assert.Equal(t, "http://localhost/blobs/"+result.ObjectKey, result.URL)
	assert.Equal(t, "application form.pdf", result.FileName)
}

func TestUploadRequiresAuth(t *testing.T) {
	router, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
