package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dongans/billiard-app/models"
	"github.com/dongans/billiard-app/utils"
)

type ClosedController struct {
	DB *gorm.DB
}

func NewClosedController(db *gorm.DB) *ClosedController {
	return &ClosedController{DB: db}
}

type tutupRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type bukaRequest struct {
	ClosedIds []uint `json:"closedIds" binding:"required,min=1"`
	Reason    string `json:"reason" binding:"required"`
}

// GetAllClosed mengembalikan seluruh entri kalender tutup/buka urut tanggal,
// lengkap dengan entri TUTUP yang dirujuk dan entri BUKA yang membukanya.
func (cc *ClosedController) GetAllClosed(c *gin.Context) {
	var closedData []models.Closed
	err := cc.DB.
		Preload("Reference").
		Preload("OpenedBy").
		Order("date ASC, id ASC").
		Find(&closedData).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Success", closedData)
}

func (cc *ClosedController) GetClosedByID(c *gin.Context) {
	var closed models.Closed
	err := cc.DB.
		Preload("Reference").
		Preload("OpenedBy").
		First(&closed, c.Param("id")).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Data closed tidak ditemukan"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Success", closed)
}

// CreateTutup menandai satu tanggal sebagai hari tutup.
func (cc *ClosedController) CreateTutup(c *gin.Context) {
	var req tutupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("Field startDate dan reason wajib diisi"))
		return
	}

	date, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Tanggal tidak valid, gunakan format YYYY-MM-DD"))
		return
	}

	var existing int64
	err = cc.DB.Model(&models.Closed{}).
		Where("type = ? AND date = ?", models.ClosedTypeTutup, date).
		Count(&existing).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if existing > 0 {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("Tanggal %s sudah terdaftar sebagai hari tutup", req.StartDate))
		return
	}

	closed := models.Closed{
		Date:   date,
		Type:   models.ClosedTypeTutup,
		Reason: req.Reason,
	}
	if err := cc.DB.Create(&closed).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Store closed on %s: %s", req.StartDate, req.Reason)
	utils.RespondJSON(c, http.StatusCreated, "Hari tutup berhasil ditambahkan", closed)
}

// CreateBuka membuat pengecualian BUKA untuk entri TUTUP yang dipilih. Entri
// yang sudah pernah dibuka dilewati; kalau semuanya sudah terbuka, tolak.
func (cc *ClosedController) CreateBuka(c *gin.Context) {
	var req bukaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("Field closedIds dan reason wajib diisi"))
		return
	}

	var tutupData []models.Closed
	err := cc.DB.
		Preload("OpenedBy").
		Where("id IN ? AND type = ?", req.ClosedIds, models.ClosedTypeTutup).
		Find(&tutupData).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if len(tutupData) == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("Data hari tutup tidak ditemukan"))
		return
	}

	var bukaData []models.Closed
	for _, tutup := range tutupData {
		if len(tutup.OpenedBy) > 0 {
			continue
		}
		refID := tutup.ID
		bukaData = append(bukaData, models.Closed{
			Date:        tutup.Date,
			Type:        models.ClosedTypeBuka,
			Reason:      req.Reason,
			ReferenceID: &refID,
		})
	}
	if len(bukaData) == 0 {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("Semua hari tutup yang dipilih sudah dibuka kembali"))
		return
	}

	if err := cc.DB.Create(&bukaData).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Hari buka berhasil ditambahkan", bukaData)
}

// DeleteClosed menghapus satu entri; entri BUKA yang menunjuk entri ini ikut
// dihapus lebih dulu supaya tidak ada referensi menggantung.
func (cc *ClosedController) DeleteClosed(c *gin.Context) {
	var closed models.Closed
	if err := cc.DB.First(&closed, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Data closed tidak ditemukan"))
		return
	}

	txErr := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reference_id = ?", closed.ID).Delete(&models.Closed{}).Error; err != nil {
			return err
		}
		return tx.Delete(&closed).Error
	})
	if txErr != nil {
		utils.RespondError(c, http.StatusInternalServerError, txErr)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Data closed berhasil dihapus", nil)
}
