package storage

import (
	"context"
	"fmt"
	"io"
	"os"

	gcs "cloud.google.com/go/storage"
)

// GCSClient implements Client on a flat bucket: the "folder" is an object
// name prefix, created as a zero-byte marker so it shows up in browsers.
type GCSClient struct {
	client *gcs.Client
	bucket string
}

func NewGCSClient(ctx context.Context, bucket string) (*GCSClient, error) {
	c, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &GCSClient{client: c, bucket: bucket}, nil
}

func (c *GCSClient) Close() error { return c.client.Close() }

func (c *GCSClient) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	prefix := name
	if parentID != "" {
		prefix = parentID + "/" + name
	}

	w := c.client.Bucket(c.bucket).Object(prefix + "/").NewWriter(ctx)
	if err := w.Close(); err != nil {
		return "", err
	}
	return prefix, nil
}

func (c *GCSClient) Upload(ctx context.Context, localPath, targetName, contentType, folderID string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	objectName := folderID + "/" + targetName
	obj := c.client.Bucket(c.bucket).Object(objectName)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, f); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	if err := obj.ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
		return "", err
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucket, objectName), nil
}
