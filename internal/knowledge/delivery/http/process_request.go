package http

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"meeting-concierge/internal/knowledge"
)

// processUploadRequest reads every part of the multipart "files" field into
// memory. Documents are small enough that streaming is not worth the
// complexity here.
func (h *handler) processUploadRequest(c *gin.Context) ([]knowledge.UploadedFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("read multipart form: %w", err)
	}

	var files []knowledge.UploadedFile
	for _, fh := range form.File["files"] {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
		}
		files = append(files, knowledge.UploadedFile{Name: fh.Filename, Content: content})
	}
	return files, nil
}
