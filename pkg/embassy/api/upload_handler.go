package api

import (
	"errors"
	"net/http"

	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy"
)

// UploadHandler proxies attachment uploads into the blob store
type UploadHandler struct {
	storage  embassy.StorageService
	maxBytes int64
}

// NewUploadHandler creates a new upload handler. maxBytes caps the
// request body as a transport guard; file contents are not inspected.
func NewUploadHandler(storage embassy.StorageService, maxBytes int64) *UploadHandler {
	return &UploadHandler{storage: storage, maxBytes: maxBytes}
}

// Upload accepts one multipart file under the "file" field plus an
// optional "folder" field and streams it into the blob store.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, r, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		respondError(w, r, http.StatusBadRequest, "multipart file field required")
		return
	}
	defer file.Close()

	result, err := h.storage.Upload(r.Context(), embassy.UploadRequest{
		Folder:      r.FormValue("folder"),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Reader:      file,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, result)
}
