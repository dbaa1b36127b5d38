package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrNotPDF is returned when an uploaded attachment is not a PDF
var ErrNotPDF = errors.New("o arquivo anexado deve ser um PDF")

// SavePDFUpload stores an uploaded PDF under dir with a unique name and
// returns the stored path
func SavePDFUpload(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return "", ErrNotPDF
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	dst := filepath.Join(dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return dst, nil
}
