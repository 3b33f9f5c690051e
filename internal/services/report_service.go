package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adayportal/backend/internal/models"
	"github.com/adayportal/backend/internal/utils"
)

// ReportFile is the locally written summary document, deleted once the
// submission finishes.
type ReportFile struct {
	Path     string
	FileName string
}

// ReportGenerator renders the form's field values into one plain-text
// document on local disk. No remote I/O happens here.
type ReportGenerator interface {
	Generate(form *models.SubmissionForm, safeName string) (*ReportFile, error)
}

type reportGenerator struct {
	dir string
}

func NewReportGenerator(dir string) ReportGenerator {
	return &reportGenerator{dir: dir}
}

func (g *reportGenerator) Generate(form *models.SubmissionForm, safeName string) (*ReportFile, error) {
	const op = "ReportGenerator.Generate"

	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create scratch directory", err)
	}

	// nanosecond timestamp keeps concurrent submissions from colliding
	fileName := fmt.Sprintf("%d-%s-BILGI_RAPORU.txt", time.Now().UnixNano(), safeName)
	path := filepath.Join(g.dir, fileName)

	var b strings.Builder
	b.WriteString("--- Aday Başvuru Bilgileri Raporu ---\n\n")
	fmt.Fprintf(&b, "Başvuru Tarihi: %s\n", time.Now().Format("02.01.2006 15:04:05"))
	fmt.Fprintf(&b, "Aday Adı Soyadı: %s\n", orDash(form.Name))
	fmt.Fprintf(&b, "E-posta: %s\n", orDash(form.Email))
	fmt.Fprintf(&b, "Telefon: %s\n", orDash(form.Telefon))
	fmt.Fprintf(&b, "Doğum Tarihi: %s\n", orDash(form.DogumTarihi))
	fmt.Fprintf(&b, "Cinsiyet: %s\n", orDash(form.Cinsiyet))
	fmt.Fprintf(&b, "Boy/Kilo: %s / %s\n", orDash(form.Boy), orDash(form.Kilo))
	fmt.Fprintf(&b, "Göz Rengi: %s\n", orDash(form.GozRengi))
	fmt.Fprintf(&b, "Adres: %s\n", orDash(form.Adres))
	fmt.Fprintf(&b, "Meslek/Uzmanlık: %s\n", orDash(form.Profession))

	if len(form.Egitim) > 0 {
		b.WriteString("\n--- Eğitim Bilgileri ---\n")
		for _, level := range models.EducationLevels {
			entry, ok := form.Egitim[level]
			if !ok || entry.Okul == "" {
				continue
			}
			yil := entry.Yil
			if yil == "" {
				yil = "Yıl Belirtilmemiş"
			}
			fmt.Fprintf(&b, "%s: %s (%s)\n", titleLevel(level), entry.Okul, yil)
		}
	}

	b.WriteString("\n--- Ek Notlar ---\n")
	msg := form.Message
	if msg == "" {
		msg = "Ek not bulunmamaktadır."
	}
	b.WriteString(msg + "\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to write report file", err)
	}

	return &ReportFile{Path: path, FileName: fileName}, nil
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func titleLevel(level models.EducationLevel) string {
	s := string(level)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
