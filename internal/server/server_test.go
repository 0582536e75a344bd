package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/question"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()

	root := t.TempDir()
	siteDir := filepath.Join(root, "website")
	dataDir := filepath.Join(siteDir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(siteDir, "index.html"), []byte("<html>practice</html>"), 0644))

	doc := question.SubjectDocument{
		Subject:        "Mythology",
		TotalQuestions: 2,
		Questions: []question.Record{
			{Index: 1, Body: "Who is Jupiter?"},
			{Index: 2, Body: "Who is Juno?"},
		},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "Mythology.json"), data, 0644))

	srv, err := New(Config{SiteDir: siteDir, DataDir: dataDir})
	require.NoError(t, err)
	return srv, root
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestSubjectsListing(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/subjects", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var subjects []SubjectSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subjects))
	require.Len(t, subjects, 1)
	assert.Equal(t, "Mythology", subjects[0].Subject)
	assert.Equal(t, 2, subjects[0].TotalQuestions)
	assert.Equal(t, "Mythology.json", subjects[0].File)

	assert.Equal(t, 2, srv.QuestionCount())
}

func TestStaticSiteAndData(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "practice")
	assert.Contains(t, rec.Header().Get("Cache-Control"), "no-store")

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/data/Mythology.json", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Who is Jupiter?")
}

func TestNewMissingSiteDir(t *testing.T) {
	_, err := New(Config{SiteDir: "/nonexistent-site", DataDir: "/nonexistent-data"})
	assert.Error(t, err)
}
