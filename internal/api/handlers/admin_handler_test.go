package handlers

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adayportal/backend/internal/models"
)

type fakeApplicationRepo struct {
	rows []models.Application
	err  error
}

func (f *fakeApplicationRepo) Insert(_ context.Context, _ *models.Application) error { return nil }

func (f *fakeApplicationRepo) ListAll(_ context.Context) ([]models.Application, error) {
	return f.rows, f.err
}

func newAdminRouter(t *testing.T, repo *fakeApplicationRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("admin.html").Parse(`{{range .Applications}}{{.Name}};{{end}}`)))
	r.GET("/admin", NewAdminHandler(repo).List)
	return r
}

func Test_AdminList_OrderPreserved(t *testing.T) {
	now := time.Now().UTC()
	repo := &fakeApplicationRepo{rows: []models.Application{
		{Name: "Ayşe Yılmaz", CreatedAt: now},
		{Name: "Ali Veli", CreatedAt: now.Add(-time.Hour)},
	}}
	r := newAdminRouter(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ayşe Yılmaz;Ali Veli;", rec.Body.String())
}

func Test_AdminList_RepoError(t *testing.T) {
	r := newAdminRouter(t, &fakeApplicationRepo{err: fmt.Errorf("db down")})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
