package models

// SubmissionForm carries the scalar and structured field values of one
// inbound application, decoded from the multipart request.
type SubmissionForm struct {
	Name        string
	Email       string
	Telefon     string
	Cinsiyet    string
	DogumTarihi string
	GozRengi    string
	Boy         string
	Kilo        string
	Adres       string
	Profession  string
	Message     string
	Egitim      EducationMap
}

// LocalFile is a temporary on-disk copy of one uploaded part. The path is
// deleted when the submission finishes, whatever the outcome.
type LocalFile struct {
	Path         string
	OriginalName string
	ContentType  string
	Size         int64
}

// UploadStatus distinguishes "nothing attached" from "attached but the
// remote upload failed"; a nil link alone cannot tell the two apart.
type UploadStatus string

const (
	UploadDone    UploadStatus = "uploaded"
	UploadSkipped UploadStatus = "skipped"
	UploadFailed  UploadStatus = "failed"
)

type UploadOutcome struct {
	Status      UploadStatus
	Link        string
	DisplayName string
}

// SubmissionResult reports what one submission actually did.
type SubmissionResult struct {
	Application    *Application
	Documents      map[DocumentCategory]UploadOutcome
	ReportUploaded bool
}
