package storage

import "context"

// Client is the remote file-hosting capability the submission pipeline
// needs: a folder per applicant and public links for everything uploaded
// into it.
type Client interface {
	// CreateFolder makes a container under parentID and returns its id.
	// Errors are fatal to the submission; a folder-less submission has
	// nowhere to land.
	CreateFolder(ctx context.Context, name, parentID string) (string, error)

	// Upload stores the local file under targetName inside the folder,
	// grants anyone-with-the-link read access and returns the public view
	// link. Callers treat an error as the loss of that one file only.
	Upload(ctx context.Context, localPath, targetName, contentType, folderID string) (string, error)
}
