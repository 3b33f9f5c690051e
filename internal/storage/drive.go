package storage

import (
	"context"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/adayportal/backend/config"
)

const folderMimeType = "application/vnd.google-apps.folder"

// DriveClient talks to Google Drive v3 with an offline refresh token.
type DriveClient struct {
	svc *drive.Service
}

func NewDriveClient(ctx context.Context, cfg config.StorageConfig) (*DriveClient, error) {
	oc := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
	}
	ts := oc.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	svc, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, err
	}
	return &DriveClient{svc: svc}, nil
}

func (c *DriveClient) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	meta := &drive.File{
		Name:     name,
		MimeType: folderMimeType,
	}
	if parentID != "" {
		meta.Parents = []string{parentID}
	}

	created, err := c.svc.Files.Create(meta).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return created.Id, nil
}

func (c *DriveClient) Upload(ctx context.Context, localPath, targetName, contentType, folderID string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	meta := &drive.File{
		Name:    targetName,
		Parents: []string{folderID},
	}
	created, err := c.svc.Files.Create(meta).
		Media(f, googleapi.ContentType(contentType)).
		Fields("id, webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}

	// anyone with the link may read
	perm := &drive.Permission{Role: "reader", Type: "anyone"}
	if _, err := c.svc.Permissions.Create(created.Id, perm).Context(ctx).Do(); err != nil {
		return "", err
	}

	return created.WebViewLink, nil
}
