package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dongans/billiard-app/middlewares"
	"github.com/dongans/billiard-app/models"
	"github.com/dongans/billiard-app/storage"
	"github.com/dongans/billiard-app/utils"
)

const buktiFolder = "bukti-pembayaran"

type BuktiController struct {
	DB      *gorm.DB
	Storage storage.Storage
}

func NewBuktiController(db *gorm.DB, store storage.Storage) *BuktiController {
	return &BuktiController{DB: db, Storage: store}
}

func (bc *BuktiController) GetAllBukti(c *gin.Context) {
	page := utils.NewPagination(c)

	query := bc.DB.Model(&models.BuktiPembayaran{}).Where("deleted_at IS NULL")

	var count int64
	if err := query.Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var buktiData []models.BuktiPembayaran
	err := query.
		Order("id DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&buktiData).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Success", page.Paginate(count, buktiData))
}

func (bc *BuktiController) GetBuktiByID(c *gin.Context) {
	var bukti models.BuktiPembayaran
	if err := bc.DB.First(&bukti, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Bukti pembayaran tidak ditemukan"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Success", bukti)
}

// UploadBukti menerima foto bukti transfer untuk satu booking, dirujuk lewat
// kode booking yang dipegang pemesan.
func (bc *BuktiController) UploadBukti(c *gin.Context) {
	kodeBooking := c.PostForm("kodeBooking")
	if kodeBooking == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Field kodeBooking wajib diisi"))
		return
	}

	var booking models.Booking
	err := bc.DB.Where("kode_booking = ?", kodeBooking).First(&booking).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Booking dengan kode tersebut tidak ditemukan"))
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
	url, err := bc.Storage.Upload(c.Request.Context(), buktiFolder, filename, image.ContentType, image.Data)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	bukti := models.BuktiPembayaran{
		Foto:          url,
		NamaFoto:      filename,
		KodeBookingID: kodeBooking,
	}
	if err := bc.DB.Create(&bukti).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Bukti pembayaran uploaded for booking %s", kodeBooking)
	utils.RespondJSON(c, http.StatusCreated, "Bukti pembayaran berhasil diupload", bukti)
}
