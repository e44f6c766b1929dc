package profiler

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/models"
)

func zipBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<w:document/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestValidateResume(t *testing.T) {
	pdf := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n%%EOF")

	tests := []struct {
		name    string
		file    models.ResumeFile
		wantErr bool
	}{
		{name: "pdf", file: models.ResumeFile{Name: "cv.pdf", Data: pdf}},
		{name: "upper case extension", file: models.ResumeFile{Name: "CV.PDF", Data: pdf}},
		{name: "plain text", file: models.ResumeFile{Name: "cv.txt", Data: []byte("Alex Johnson\nSoftware Engineer")}},
		{name: "docx as zip", file: models.ResumeFile{Name: "cv.docx", Data: zipBytes(t)}},
		{name: "unknown extension", file: models.ResumeFile{Name: "cv.exe", Data: pdf}, wantErr: true},
		{name: "no extension", file: models.ResumeFile{Name: "resume", Data: pdf}, wantErr: true},
		{name: "text named pdf", file: models.ResumeFile{Name: "cv.pdf", Data: []byte("just some text")}},
		{name: "pdf named txt", file: models.ResumeFile{Name: "cv.txt", Data: pdf}},
		{name: "too large", file: models.ResumeFile{Name: "cv.txt", Data: bytes.Repeat([]byte("a"), MaxResumeSize+1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResume(tt.file)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrUnsupportedFile)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSniffResume(t *testing.T) {
	pdf := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n%%EOF")

	tests := []struct {
		name  string
		file  models.ResumeFile
		match bool
	}{
		{name: "pdf", file: models.ResumeFile{Name: "cv.pdf", Data: pdf}, match: true},
		{name: "plain text", file: models.ResumeFile{Name: "cv.txt", Data: []byte("Alex Johnson")}, match: true},
		{name: "docx as zip", file: models.ResumeFile{Name: "cv.docx", Data: zipBytes(t)}, match: true},
		{name: "text named pdf", file: models.ResumeFile{Name: "cv.pdf", Data: []byte("just some text")}},
		{name: "pdf named txt", file: models.ResumeFile{Name: "cv.txt", Data: pdf}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detected, ok := SniffResume(tt.file)
			assert.NotEmpty(t, detected)
			assert.Equal(t, tt.match, ok)
		})
	}
}
