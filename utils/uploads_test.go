package utils_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"acelerador/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadContext(t *testing.T, filename string) (*gin.Context, *multipart.FileHeader) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("arquivo_pdf", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4 conteudo"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", body)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())

	file, err := c.FormFile("arquivo_pdf")
	require.NoError(t, err)
	return c, file
}

func TestSavePDFUpload(t *testing.T) {
	c, file := uploadContext(t, "proposta.pdf")
	dir := t.TempDir()

	path, err := utils.SavePDFUpload(c, file, dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, dir))
	assert.True(t, strings.HasSuffix(path, "_proposta.pdf"))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestSavePDFUploadRejectsNonPDF(t *testing.T) {
	c, file := uploadContext(t, "notas.txt")

	_, err := utils.SavePDFUpload(c, file, t.TempDir())
	assert.ErrorIs(t, err, utils.ErrNotPDF)
}
