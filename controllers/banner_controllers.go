package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dongans/billiard-app/middlewares"
	"github.com/dongans/billiard-app/models"
	"github.com/dongans/billiard-app/storage"
	"github.com/dongans/billiard-app/utils"
)

const bannerFolder = "banner"

type BannerController struct {
	DB      *gorm.DB
	Storage storage.Storage
}

func NewBannerController(db *gorm.DB, store storage.Storage) *BannerController {
	return &BannerController{DB: db, Storage: store}
}

// uniqueFilename membuat nama file acak dengan ekstensi file aslinya.
func uniqueFilename(originalName string) string {
	return uuid.New().String() + filepath.Ext(originalName)
}

func (bc *BannerController) GetAllBanners(c *gin.Context) {
	page := utils.NewPagination(c)
	showDeleted := c.Query("showDeleted") == "true"

	query := bc.DB.Model(&models.Banner{})
	if !showDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var banners []models.Banner
	err := query.
		Order("id DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&banners).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	message := "Success"
	if showDeleted {
		message = "Including soft-deleted data"
	}
	utils.RespondJSON(c, http.StatusOK, message, page.Paginate(count, banners))
}

func (bc *BannerController) GetBannerByID(c *gin.Context) {
	var banner models.Banner
	if err := bc.DB.First(&banner, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Banner tidak ditemukan"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Success", banner)
}

func (bc *BannerController) CreateBanner(c *gin.Context) {
	judul := c.PostForm("judul")
	if judul == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Field judul wajib diisi"))
		return
	}

	image, err := middlewares.ReadImageFile(c, "foto")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if image == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Field foto wajib diisi"))
		return
	}

	filename := uniqueFilename(image.OriginalName)
	url, err := bc.Storage.Upload(c.Request.Context(), bannerFolder, filename, image.ContentType, image.Data)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	banner := models.Banner{
		Judul:    judul,
		Foto:     url,
		NamaFoto: filename,
		IsActive: true,
	}
	if err := bc.DB.Create(&banner).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New banner created: %s", banner.Judul)
	utils.RespondJSON(c, http.StatusCreated, "Banner created successfully", banner)
}

// UpdateBanner mengganti judul dan, bila ada file baru, foto banner. Foto lama
// di storage dihapus sebelum yang baru dipakai.
func (bc *BannerController) UpdateBanner(c *gin.Context) {
	var banner models.Banner
	if err := bc.DB.First(&banner, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Banner tidak ditemukan"))
		return
	}

	if judul := c.PostForm("judul"); judul != "" {
		banner.Judul = judul
	}

	image, err := middlewares.ReadImageFile(c, "foto")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if image != nil {
		if banner.NamaFoto != "" {
			oldPath := fmt.Sprintf("%s/%s", bannerFolder, banner.NamaFoto)
			if err := bc.Storage.Delete(c.Request.Context(), oldPath); err != nil {
				utils.ErrorLogger.Printf("Failed to delete old banner object %s: %v", oldPath, err)
			}
		}

		filename := uniqueFilename(image.OriginalName)
		url, err := bc.Storage.Upload(c.Request.Context(), bannerFolder, filename, image.ContentType, image.Data)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		banner.Foto = url
		banner.NamaFoto = filename
	}

	if err := bc.DB.Save(&banner).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Banner updated successfully", banner)
}

func (bc *BannerController) DeleteBanner(c *gin.Context) {
	var banner models.Banner
	if err := bc.DB.First(&banner, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Banner tidak ditemukan"))
		return
	}

	if banner.NamaFoto != "" {
		objectPath := fmt.Sprintf("%s/%s", bannerFolder, banner.NamaFoto)
		if err := bc.Storage.Delete(c.Request.Context(), objectPath); err != nil {
			utils.ErrorLogger.Printf("Failed to delete banner object %s: %v", objectPath, err)
		}
	}

	if err := bc.DB.Delete(&banner).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Banner deleted successfully", nil)
}

func (bc *BannerController) SoftDeleteBanner(c *gin.Context) {
	var banner models.Banner
	if err := bc.DB.First(&banner, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Banner tidak ditemukan"))
		return
	}

	now := time.Now()
	if err := bc.DB.Model(&banner).Update("deleted_at", &now).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Banner soft deleted successfully", nil)
}

func (bc *BannerController) RestoreBanner(c *gin.Context) {
	var banner models.Banner
	if err := bc.DB.First(&banner, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Banner tidak ditemukan"))
		return
	}

	if err := bc.DB.Model(&banner).Update("deleted_at", nil).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Banner restored successfully", nil)
}
