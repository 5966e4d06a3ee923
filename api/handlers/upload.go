package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/festivalops/report-api/config"
	"github.com/festivalops/report-api/models"
)

// maxUploadSize caps report images at 10MB
const maxUploadSize = 10 << 20

const uploadFolder = "report-images"

// Upload exported for testing purposes
type Upload struct {
	CLD *cloudinary.Cloudinary
}

// UploadHandler accepts one image as multipart form field "file" and stores
// it in Cloudinary. Only image MIME types are accepted.
func (h Upload) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if h.CLD == nil {
		config.ErrorStatus("image uploads not configured", http.StatusServiceUnavailable, w, errors.New("cloudinary url unset"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		config.ErrorStatus("file exceeds the 10MB limit", http.StatusBadRequest, w, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		config.ErrorStatus("missing file field", http.StatusBadRequest, w, err)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		err := fmt.Errorf("unsupported content type %q", contentType)
		config.ErrorStatus("only image uploads are allowed", http.StatusBadRequest, w, err)
		return
	}
	if header.Size > maxUploadSize {
		err := fmt.Errorf("file is %d bytes", header.Size)
		config.ErrorStatus("file exceeds the 10MB limit", http.StatusBadRequest, w, err)
		return
	}

	publicID := fmt.Sprintf("report-%d", time.Now().UnixNano())
	resp, err := h.CLD.Upload.Upload(r.Context(), file, uploader.UploadParams{
		Folder:   uploadFolder,
		PublicID: publicID,
	})
	if err != nil {
		config.ErrorStatus("failed to upload image", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Data: models.UploadResponse{
		URL:      resp.SecureURL,
		Filename: header.Filename,
	}})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
