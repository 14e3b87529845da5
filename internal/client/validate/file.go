package validate

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// MaxResumeFileSize is the largest resume file accepted for import.
const MaxResumeFileSize = 5 << 20

// ResumeFileExtensions are the importable resume formats.
var ResumeFileExtensions = []string{".txt", ".pdf", ".doc", ".docx"}

// ResumeFile checks the name and size of a resume before it is read.
func ResumeFile(name string, size int64) error {
	ext := strings.ToLower(filepath.Ext(name))
	if !slices.Contains(ResumeFileExtensions, ext) {
		return fieldError("file", fmt.Sprintf("Unsupported file type %q, use one of %s",
			ext, strings.Join(ResumeFileExtensions, ", ")))
	}
	if size <= 0 {
		return fieldError("file", "File is empty")
	}
	if size > MaxResumeFileSize {
		return fieldError("file", fmt.Sprintf("File is too large (max %d MB)", MaxResumeFileSize>>20))
	}
	return nil
}
