package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"egov-portal-backend/internal/infrastructure/storage"
	"egov-portal-backend/internal/usecase/document"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// saveUpload streams the multipart `file` part into blob storage and returns
// the metadata the document usecase records.
func saveUpload(c echo.Context, blobs storage.Store) (*document.FileMeta, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, errors.New("missing file part")
	}
	src, err := fh.Open()
	if err != nil {
		return nil, errors.New("unreadable file part")
	}
	defer src.Close()

	path, size, err := blobs.Save(c.Request().Context(), src, fh.Filename)
	if err != nil {
		return nil, err
	}
	return &document.FileMeta{
		FileName: fh.Filename,
		FilePath: path,
		FileSize: size,
		MimeType: fh.Header.Get(echo.HeaderContentType),
	}, nil
}
