package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eldritchfan/fancontent/internal/model"
)

func TestRegisterProject(t *testing.T) {
	var gotAuth string
	var gotBody registerRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/admin/fan_made_project", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-token")
	meta := model.ProjectMeta{Code: "dark_matter", Types: []string{"campaign"}, URL: "https://cdn/fan_made_content/dark_matter/project.json"}

	err := client.RegisterProject(context.Background(), "fan_made_content/dark_matter/project.json", meta)
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "fan_made_content/dark_matter/project.json", gotBody.BucketPath)
	assert.Equal(t, "dark_matter", gotBody.Meta.Code)
}

func TestRegisterProjectSurfacesErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "stale")
	err := client.RegisterProject(context.Background(), "path", model.ProjectMeta{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "token expired")
}
