package handlers

import (
	"io"
	"net/http"

	"khadamat_hub/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const filesField = "files"

// readUploads drains the "files" part of a multipart form into memory.
// A non-multipart request simply yields no files.
func readUploads(c *gin.Context) ([]entities.FileUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if err == http.ErrNotMultipart {
			return nil, nil
		}
		return nil, err
	}

	headers := form.File[filesField]
	uploads := make([]entities.FileUpload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, entities.FileUpload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			SizeBytes:   fh.Size,
			Data:        data,
		})
	}
	return uploads, nil
}
