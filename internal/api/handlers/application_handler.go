package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/adayportal/backend/internal/models"
	"github.com/adayportal/backend/internal/services"
)

const (
	submitOKMessage   = `Başvurunuz başarıyla alındı. Belgeler ve rapor yüklendi. <a href="/">Yeni Başvuru</a>`
	submitFailMessage = "Başvuru sırasında bir hata oluştu. Lütfen tekrar deneyin."
)

type ApplicationHandler struct {
	svc       services.SubmissionService
	uploadDir string
	log       *logrus.Logger
}

func NewApplicationHandler(svc services.SubmissionService, uploadDir string, log *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, uploadDir: uploadDir, log: log}
}

func (h *ApplicationHandler) FormPage(c *gin.Context) {
	c.HTML(http.StatusOK, "form.html", nil)
}

// Submit processes one multipart application: spools every attached part
// to local disk and hands the field values plus local paths to the
// submission pipeline. The submitter only ever sees a confirmation or one
// generic failure message.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	form := parseSubmissionForm(c)

	files, err := h.spoolAttachments(c)
	if err != nil {
		h.log.WithError(err).Error("failed to store uploaded files")
		c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(submitFailMessage))
		return
	}

	if _, err := h.svc.Submit(c.Request.Context(), form, files); err != nil {
		h.log.WithError(err).Error("submission failed")
		c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(submitFailMessage))
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(submitOKMessage))
}

// spoolAttachments copies each attached part into the scratch directory.
// On error the already-spooled files are removed here; afterwards their
// lifecycle belongs to the submission pipeline.
func (h *ApplicationHandler) spoolAttachments(c *gin.Context) (map[models.DocumentCategory]models.LocalFile, error) {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return nil, err
	}

	files := make(map[models.DocumentCategory]models.LocalFile)
	for _, cat := range models.DocumentCategories {
		fh, err := c.FormFile(string(cat))
		if err != nil {
			continue // nothing attached for this category
		}

		dst := filepath.Join(h.uploadDir, uuid.NewString()+filepath.Ext(fh.Filename))
		if err := c.SaveUploadedFile(fh, dst); err != nil {
			for _, f := range files {
				_ = os.Remove(f.Path)
			}
			return nil, err
		}

		files[cat] = models.LocalFile{
			Path:         dst,
			OriginalName: filepath.Base(fh.Filename),
			ContentType:  fh.Header.Get("Content-Type"),
			Size:         fh.Size,
		}
	}
	return files, nil
}

func parseSubmissionForm(c *gin.Context) *models.SubmissionForm {
	form := &models.SubmissionForm{
		Name:        c.PostForm("name"),
		Email:       c.PostForm("email"),
		Telefon:     c.PostForm("telefon"),
		Cinsiyet:    c.PostForm("cinsiyet"),
		DogumTarihi: c.PostForm("dogumTarihi"),
		GozRengi:    c.PostForm("gozRengi"),
		Boy:         c.PostForm("boy"),
		Kilo:        c.PostForm("kilo"),
		Adres:       c.PostForm("adres"),
		Profession:  c.PostForm("profession"),
		Message:     c.PostForm("message"),
	}

	for _, level := range models.EducationLevels {
		okul := c.PostForm("egitim[" + string(level) + "][okul]")
		if okul == "" {
			continue
		}
		if form.Egitim == nil {
			form.Egitim = make(models.EducationMap)
		}
		form.Egitim[level] = models.EducationEntry{
			Okul: okul,
			Yil:  c.PostForm("egitim[" + string(level) + "][yil]"),
		}
	}
	return form
}
