package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dongans/billiard-app/middlewares"
	"github.com/dongans/billiard-app/models"
	"github.com/dongans/billiard-app/storage"
	"github.com/dongans/billiard-app/utils"
)

const qrisFolder = "qris"

type QrisController struct {
	DB      *gorm.DB
	Storage storage.Storage
}

func NewQrisController(db *gorm.DB, store storage.Storage) *QrisController {
	return &QrisController{DB: db, Storage: store}
}

func (qc *QrisController) GetQris(c *gin.Context) {
	var qrisData []models.Qris
	if err := qc.DB.Where("deleted_at IS NULL").Find(&qrisData).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Success", qrisData)
}

// UpsertQris membuat atau memperbarui satu-satunya baris QRIS (id tetap 1).
// Saat foto diganti, object lama di storage dihapus dulu.
func (qc *QrisController) UpsertQris(c *gin.Context) {
	judul := c.PostForm("judul")

	image, err := middlewares.ReadImageFile(c, "foto")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var qris models.Qris
	err = qc.DB.First(&qris, models.QrisSingletonID).Error
	isNew := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !isNew {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if isNew && image == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Field foto wajib diisi"))
		return
	}

	if judul != "" {
		qris.Judul = judul
	}

	if image != nil {
		if qris.NamaFoto != "" {
			oldPath := fmt.Sprintf("%s/%s", qrisFolder, qris.NamaFoto)
			if err := qc.Storage.Delete(c.Request.Context(), oldPath); err != nil {
				utils.ErrorLogger.Printf("Failed to delete old qris object %s: %v", oldPath, err)
			}
		}

		filename := fmt.Sprintf("qris-%d%s", time.Now().UnixMilli(), filepath.Ext(image.OriginalName))
		url, err := qc.Storage.Upload(c.Request.Context(), qrisFolder, filename, image.ContentType, image.Data)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		qris.Foto = url
		qris.NamaFoto = filename
	}

	qris.ID = models.QrisSingletonID
	qris.DeletedAt = nil
	if err := qc.DB.Save(&qris).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	message := "Qris updated successfully"
	if isNew {
		message = "Qris created successfully"
	}
	utils.RespondJSON(c, http.StatusOK, message, qris)
}

// DeleteQris menghapus baris QRIS beserta object fotonya.
func (qc *QrisController) DeleteQris(c *gin.Context) {
	var qris models.Qris
	if err := qc.DB.First(&qris, models.QrisSingletonID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Qris tidak ditemukan"))
		return
	}

	if qris.NamaFoto != "" {
		objectPath := fmt.Sprintf("%s/%s", qrisFolder, qris.NamaFoto)
		if err := qc.Storage.Delete(c.Request.Context(), objectPath); err != nil {
			utils.ErrorLogger.Printf("Failed to delete qris object %s: %v", objectPath, err)
		}
	}

	if err := qc.DB.Delete(&qris).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Qris deleted successfully", nil)
}
