package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"clientapi/internal/config"
	"clientapi/internal/repositories"
	"clientapi/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testPaging = config.PaginationConfig{DefaultSize: 12, MaxSize: 50, DefaultOrder: "id"}

type fixture struct {
	db      *sql.DB
	repo    *repositories.ClientRepository
	service *services.ClientService
}

// newFixture wires a service to a migrated SQLite database holding the seed clients.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctx := context.Background()
	db, err := repositories.Open(ctx, repositories.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "handlers.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, repositories.ApplyMigrations(db, repositories.DriverSQLite))

	repo := repositories.NewClientRepository(db, repositories.DriverSQLite)
	return &fixture{db: db, repo: repo, service: services.NewClientService(repo, nil)}
}

func doRequest(t *testing.T, r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
