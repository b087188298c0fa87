package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dongans/billiard-app/models"
	"github.com/dongans/billiard-app/utils"
)

type BiodataController struct {
	DB *gorm.DB
}

func NewBiodataController(db *gorm.DB) *BiodataController {
	return &BiodataController{DB: db}
}

type biodataRequest struct {
	Nama        string `json:"nama" binding:"required"`
	NoTelp      string `json:"noTelp" binding:"required"`
	Alamat      string `json:"alamat" binding:"required"`
	Email       string `json:"email"`
	KodeBooking string `json:"kodeBooking" binding:"required"`
}

func (bc *BiodataController) GetAllBiodata(c *gin.Context) {
	page := utils.NewPagination(c)

	query := bc.DB.Model(&models.BiodataBooking{}).Where("deleted_at IS NULL")

	var count int64
	if err := query.Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var biodata []models.BiodataBooking
	err := query.
		Order("id DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&biodata).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Success", page.Paginate(count, biodata))
}

func (bc *BiodataController) GetBiodataByID(c *gin.Context) {
	var biodata models.BiodataBooking
	if err := bc.DB.First(&biodata, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Biodata tidak ditemukan"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Success", biodata)
}

// CreateBiodata melampirkan data pemesan ke booking lewat kode booking.
func (bc *BiodataController) CreateBiodata(c *gin.Context) {
	var req biodataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("Field nama, noTelp, alamat, dan kodeBooking wajib diisi"))
		return
	}

	var booking models.Booking
	err := bc.DB.Where("kode_booking = ?", req.KodeBooking).First(&booking).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Booking dengan kode tersebut tidak ditemukan"))
		return
	}

	biodata := models.BiodataBooking{
		Nama:      req.Nama,
		NoTelp:    req.NoTelp,
		Alamat:    req.Alamat,
		Email:     req.Email,
		BookingID: booking.ID,
	}
	if err := bc.DB.Create(&biodata).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Biodata berhasil disimpan", biodata)
}

func (bc *BiodataController) UpdateBiodata(c *gin.Context) {
	var biodata models.BiodataBooking
	if err := bc.DB.First(&biodata, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Biodata tidak ditemukan"))
		return
	}

	var req struct {
		Nama   string `json:"nama"`
		NoTelp string `json:"noTelp"`
		Alamat string `json:"alamat"`
		Email  string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Nama != "" {
		biodata.Nama = req.Nama
	}
	if req.NoTelp != "" {
		biodata.NoTelp = req.NoTelp
	}
	if req.Alamat != "" {
		biodata.Alamat = req.Alamat
	}
	if req.Email != "" {
		biodata.Email = req.Email
	}

	if err := bc.DB.Save(&biodata).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Biodata updated successfully", biodata)
}
