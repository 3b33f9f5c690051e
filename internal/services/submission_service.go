package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/adayportal/backend/internal/models"
	"github.com/adayportal/backend/internal/repositories"
	"github.com/adayportal/backend/internal/storage"
	"github.com/adayportal/backend/internal/utils"
)

// ReportSuffix is the remote name suffix of the uploaded summary document.
const ReportSuffix = "BASVURU_RAPORU.txt"

// SubmissionService runs one application end to end: applicant folder,
// report, document uploads, persisted record, local cleanup. Strictly
// sequential; documents go up one at a time in the fixed category order.
type SubmissionService interface {
	Submit(ctx context.Context, form *models.SubmissionForm, files map[models.DocumentCategory]models.LocalFile) (*models.SubmissionResult, error)
}

type submissionService struct {
	repo         repositories.ApplicationRepository
	store        storage.Client
	reports      ReportGenerator
	rootFolderID string
	log          *logrus.Logger
}

func NewSubmissionService(repo repositories.ApplicationRepository, store storage.Client, reports ReportGenerator, rootFolderID string, log *logrus.Logger) SubmissionService {
	return &submissionService{
		repo:         repo,
		store:        store,
		reports:      reports,
		rootFolderID: rootFolderID,
		log:          log,
	}
}

func (s *submissionService) Submit(ctx context.Context, form *models.SubmissionForm, files map[models.DocumentCategory]models.LocalFile) (*models.SubmissionResult, error) {
	const op = "SubmissionService.Submit"

	// Every local temp file is released when this returns, whatever
	// happened in between. Attachments are registered up front so an
	// early abort still removes them.
	cleanup := newCleanupList(s.log)
	defer cleanup.run()
	for _, f := range files {
		cleanup.add(f.Path)
	}

	safeName := utils.SafeName(form.Name)

	folderName := fmt.Sprintf("%s_%d", safeName, time.Now().Unix())
	folderID, err := s.store.CreateFolder(ctx, folderName, s.rootFolderID)
	if err != nil {
		// a folder-less submission has nowhere to land; nothing is persisted
		return nil, utils.E(utils.CodeUnavailable, op, "failed to create applicant folder", err)
	}

	app := newApplication(form)
	result := &models.SubmissionResult{
		Application: app,
		Documents:   make(map[models.DocumentCategory]models.UploadOutcome, len(models.DocumentCategories)),
	}

	report, err := s.reports.Generate(form, safeName)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to generate report", err)
	}
	cleanup.add(report.Path)

	reportName := safeName + " - " + ReportSuffix
	if link, upErr := s.store.Upload(ctx, report.Path, reportName, "text/plain", folderID); upErr != nil {
		s.log.WithError(upErr).WithField("applicant", safeName).Warn("report upload failed")
	} else {
		app.RaporPath = &link
		result.ReportUploaded = true
	}

	for _, cat := range models.DocumentCategories {
		f, ok := files[cat]
		if !ok {
			result.Documents[cat] = models.UploadOutcome{Status: models.UploadSkipped}
			continue
		}

		displayName := safeName + " - " + f.OriginalName
		link, upErr := s.store.Upload(ctx, f.Path, displayName, f.ContentType, folderID)
		if upErr != nil {
			// one lost document must not lose the other fifteen
			s.log.WithError(upErr).WithField("category", string(cat)).Warn("document upload failed")
			result.Documents[cat] = models.UploadOutcome{Status: models.UploadFailed}
			continue
		}

		app.SetDocument(cat, link, displayName)
		result.Documents[cat] = models.UploadOutcome{
			Status:      models.UploadDone,
			Link:        link,
			DisplayName: displayName,
		}
	}

	if err := s.repo.Insert(ctx, app); err != nil {
		if utils.IsCode(err, utils.CodeInvalidArgument) {
			return nil, err
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to persist application", err)
	}

	return result, nil
}

func newApplication(form *models.SubmissionForm) *models.Application {
	now := time.Now().UTC()
	return &models.Application{
		ID:          uuid.NewString(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Name:        form.Name,
		Email:       form.Email,
		Telefon:     form.Telefon,
		Cinsiyet:    form.Cinsiyet,
		DogumTarihi: form.DogumTarihi,
		GozRengi:    form.GozRengi,
		Boy:         form.Boy,
		Kilo:        form.Kilo,
		Adres:       form.Adres,
		Profession:  form.Profession,
		Message:     form.Message,
		Egitim:      form.Egitim,
	}
}
