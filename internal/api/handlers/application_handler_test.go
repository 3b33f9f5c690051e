package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adayportal/backend/internal/models"
)

type fakeSubmissionService struct {
	gotForm  *models.SubmissionForm
	gotFiles map[models.DocumentCategory]models.LocalFile
	err      error
}

func (f *fakeSubmissionService) Submit(_ context.Context, form *models.SubmissionForm, files map[models.DocumentCategory]models.LocalFile) (*models.SubmissionResult, error) {
	f.gotForm = form
	f.gotFiles = files
	if f.err != nil {
		return nil, f.err
	}
	return &models.SubmissionResult{}, nil
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newSubmitRouter(t *testing.T, svc *fakeSubmissionService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewApplicationHandler(svc, t.TempDir(), testLogger())
	r.POST("/submit", h.Submit)
	return r
}

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for field, filename := range files {
		fw, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte("dosya"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func Test_Submit_ParsesFormAndFiles(t *testing.T) {
	svc := &fakeSubmissionService{}
	r := newSubmitRouter(t, svc)

	body, ct := multipartBody(t,
		map[string]string{
			"name":                    "Ali Veli",
			"email":                   "a@b.com",
			"telefon":                 "05551112233",
			"egitim[lise][okul]":      "Ankara Lisesi",
			"egitim[lise][yil]":       "2010",
			"egitim[universite][yil]": "2015", // year without a school is ignored
		},
		map[string]string{"cv": "belge.pdf"},
	)

	req := httptest.NewRequest(http.MethodPost, "/submit", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Başvurunuz başarıyla alındı")

	require.NotNil(t, svc.gotForm)
	assert.Equal(t, "Ali Veli", svc.gotForm.Name)
	assert.Equal(t, "a@b.com", svc.gotForm.Email)
	assert.Equal(t, "05551112233", svc.gotForm.Telefon)

	require.Contains(t, svc.gotForm.Egitim, models.LevelLise)
	assert.Equal(t, models.EducationEntry{Okul: "Ankara Lisesi", Yil: "2010"}, svc.gotForm.Egitim[models.LevelLise])
	assert.NotContains(t, svc.gotForm.Egitim, models.LevelUniversite)

	require.Contains(t, svc.gotFiles, models.DocCV)
	cv := svc.gotFiles[models.DocCV]
	assert.Equal(t, "belge.pdf", cv.OriginalName)

	// the part was spooled to local disk for the pipeline
	b, err := os.ReadFile(cv.Path)
	require.NoError(t, err)
	assert.Equal(t, "dosya", string(b))
}

func Test_Submit_NoAttachments(t *testing.T) {
	svc := &fakeSubmissionService{}
	r := newSubmitRouter(t, svc)

	body, ct := multipartBody(t, map[string]string{"name": "Ali Veli", "email": "a@b.com"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/submit", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, svc.gotFiles)
}

func Test_Submit_GenericFailure(t *testing.T) {
	svc := &fakeSubmissionService{err: fmt.Errorf("pipeline blew up")}
	r := newSubmitRouter(t, svc)

	body, ct := multipartBody(t, map[string]string{"name": "Ali Veli", "email": "a@b.com"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/submit", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Başvuru sırasında bir hata oluştu")
	assert.NotContains(t, rec.Body.String(), "pipeline blew up")
}
