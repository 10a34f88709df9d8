package upload

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julianaianov/rifamax/internal/dto"
)

func newUploadRequest(t *testing.T, contentType string, payload []byte) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="image"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write(payload)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/upload-image", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadImageHandler(t *testing.T) {
	uploadDir := t.TempDir()
	handler := New(uploadDir)

	t.Run("Stores a PNG", func(t *testing.T) {
		req := newUploadRequest(t, "image/png", []byte("png bytes"))
		rr := httptest.NewRecorder()

		handler.UploadImage(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp dto.UploadImageResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, strings.HasPrefix(resp.URL, "/uploads/"))
		assert.True(t, strings.HasSuffix(resp.URL, ".png"))

		saved, err := os.ReadFile(filepath.Join(uploadDir, strings.TrimPrefix(resp.URL, "/uploads/")))
		assert.NoError(t, err)
		assert.Equal(t, []byte("png bytes"), saved)
	})

	t.Run("Rejects unsupported content type", func(t *testing.T) {
		req := newUploadRequest(t, "application/pdf", []byte("%PDF-"))
		rr := httptest.NewRecorder()

		handler.UploadImage(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Rejects request without file field", func(t *testing.T) {
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		assert.NoError(t, writer.WriteField("name", "not a file"))
		assert.NoError(t, writer.Close())

		req := httptest.NewRequest("POST", "/api/upload-image", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rr := httptest.NewRecorder()

		handler.UploadImage(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
