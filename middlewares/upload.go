package middlewares

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxUploadSize membatasi ukuran file gambar yang diterima (10MB).
const MaxUploadSize = 10 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// UploadedImage adalah hasil pembacaan file multipart yang sudah tervalidasi,
// seluruh isinya di-buffer di memory sebelum diteruskan ke object storage.
type UploadedImage struct {
	Data         []byte
	ContentType  string
	OriginalName string
}

// ReadImageFile mengambil satu field file dari form multipart, memvalidasi
// tipe dan ukurannya, lalu membacanya ke memory. Mengembalikan nil tanpa
// error jika field tidak ada.
func ReadImageFile(c *gin.Context, field string) (*UploadedImage, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("error processing form: %w", err)
	}

	return readImage(fileHeader)
}

func readImage(fileHeader *multipart.FileHeader) (*UploadedImage, error) {
	if fileHeader.Size > MaxUploadSize {
		return nil, errors.New("ukuran file melebihi batas 10MB")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return nil, errors.New("hanya file gambar yang diperbolehkan (jpeg, png, webp)")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if len(data) > MaxUploadSize {
		return nil, errors.New("ukuran file melebihi batas 10MB")
	}

	return &UploadedImage{
		Data:         data,
		ContentType:  contentType,
		OriginalName: fileHeader.Filename,
	}, nil
}
