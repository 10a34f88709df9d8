package upload

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/julianaianov/rifamax/internal/dto"
	"github.com/julianaianov/rifamax/pkg/utils"
)

const maxUploadSize = 10 << 20

var allowedExtensions = map[string]string{
	"image/jpeg":    ".jpg",
	"image/jpg":     ".jpg",
	"image/png":     ".png",
	"image/webp":    ".webp",
	"image/gif":     ".gif",
	"image/svg+xml": ".svg",
}

type UploadHandler struct {
	uploadDir string
}

func New(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir}
}

// UploadImage godoc
//
//	@Summary		Upload a raffle image
//	@Description	Store an image under the upload directory and return its public URL
//	@Tags			Upload
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Image file"
//	@Success		201		{object}	dto.UploadImageResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing file or unsupported image type"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/upload-image [post]
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "File too large or malformed form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	ext, ok := allowedExtensions[header.Header.Get("Content-Type")]
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Unsupported image type")
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.UploadImageResponseDTO{
		URL: fmt.Sprintf("/uploads/%s", name),
	})
}
