package profiler

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/models"
)

// MaxResumeSize bounds uploaded resumes.
const MaxResumeSize = 10 << 20

// resumeTypes lists, per accepted extension, the detected content types that
// may back it. Parents of the detected type count too, so a .docx that only
// sniffs as a zip archive is still accepted.
var resumeTypes = map[string][]string{
	".pdf":  {"application/pdf"},
	".doc":  {"application/msword", "application/x-ole-storage"},
	".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "application/zip"},
	".txt":  {"text/"},
}

// ResumeExtensions returns the accepted file extensions.
func ResumeExtensions() []string {
	return []string{".pdf", ".doc", ".docx", ".txt"}
}

// ValidateResume checks the declared name and size of an upload. Failures
// wrap models.ErrUnsupportedFile. Content is not inspected, see SniffResume.
func ValidateResume(file models.ResumeFile) error {
	ext := strings.ToLower(filepath.Ext(file.Name))
	if _, ok := resumeTypes[ext]; !ok {
		return fmt.Errorf("%w: %q, expected one of %s",
			models.ErrUnsupportedFile, file.Name, strings.Join(ResumeExtensions(), ", "))
	}
	if len(file.Data) > MaxResumeSize {
		return fmt.Errorf("%w: %s is larger than %d MB", models.ErrUnsupportedFile, file.Name, MaxResumeSize>>20)
	}
	return nil
}

// SniffResume reports the detected content type of file and whether it matches
// the extension.
func SniffResume(file models.ResumeFile) (string, bool) {
	allowed := resumeTypes[strings.ToLower(filepath.Ext(file.Name))]
	detected := mimetype.Detect(file.Data)
	for m := detected; m != nil; m = m.Parent() {
		if mimeAllowed(m.String(), allowed) {
			return detected.String(), true
		}
	}
	return detected.String(), false
}

func mimeAllowed(m string, allowed []string) bool {
	m = strings.ToLower(m)
	if i := strings.IndexByte(m, ';'); i >= 0 {
		m = m[:i]
	}
	for _, a := range allowed {
		if strings.HasSuffix(a, "/") {
			if strings.HasPrefix(m, a) {
				return true
			}
			continue
		}
		if m == a {
			return true
		}
	}
	return false
}
