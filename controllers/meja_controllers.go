package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dongans/billiard-app/events"
	"github.com/dongans/billiard-app/models"
	"github.com/dongans/billiard-app/utils"
)

type MejaController struct {
	DB     *gorm.DB
	Events events.Publisher
}

func NewMejaController(db *gorm.DB, publisher events.Publisher) *MejaController {
	return &MejaController{DB: db, Events: publisher}
}

type mejaRequest struct {
	Nama      string  `json:"nama" binding:"required"`
	Foto      string  `json:"foto"`
	Deskripsi string  `json:"deskripsi"`
	Harga     float64 `json:"harga" binding:"required"`
	NoMeja    string  `json:"noMeja"`
	TipeMeja  string  `json:"TipeMeja"`
}

// GetAllMeja -> daftar meja dengan pagination; showDeleted=true ikut
// menampilkan meja yang sudah di-soft-delete.
func (mc *MejaController) GetAllMeja(c *gin.Context) {
	page := utils.NewPagination(c)
	showDeleted := c.Query("showDeleted") == "true"

	query := mc.DB.Model(&models.MasterMeja{})
	if !showDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var mejaData []models.MasterMeja
	err := query.
		Order("id DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&mejaData).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	message := "Success"
	if showDeleted {
		message = "Including soft-deleted data"
	}
	utils.RespondJSON(c, http.StatusOK, message, page.Paginate(count, mejaData))
}

func (mc *MejaController) CreateMeja(c *gin.Context) {
	var req mejaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	meja := models.MasterMeja{
		NamaMeja:  req.Nama,
		Foto:      req.Foto,
		Deskripsi: req.Deskripsi,
		Harga:     req.Harga,
		NoMeja:    req.NoMeja,
		TipeMeja:  req.TipeMeja,
		IsActive:  true,
	}

	if err := mc.DB.Create(&meja).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	mc.Events.Publish(events.EventMejaCreated, meja)
	utils.LogActivity(currentUserID(c), "CREATE", fmt.Sprintf("Created new meja with ID %d", meja.ID))
	utils.InfoLogger.Printf("New meja created: %s (no=%s)", meja.NamaMeja, meja.NoMeja)

	utils.RespondJSON(c, http.StatusCreated, "Meja created successfully", meja)
}

func (mc *MejaController) UpdateMeja(c *gin.Context) {
	mejaID := c.Param("id")

	var req mejaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var meja models.MasterMeja
	if err := mc.DB.First(&meja, mejaID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Meja not found"))
		return
	}

	meja.NamaMeja = req.Nama
	meja.Foto = req.Foto
	meja.Deskripsi = req.Deskripsi
	meja.Harga = req.Harga
	meja.NoMeja = req.NoMeja
	meja.TipeMeja = req.TipeMeja

	if err := mc.DB.Save(&meja).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	mc.Events.Publish(events.EventMejaUpdated, meja)
	utils.LogActivity(currentUserID(c), "UPDATE", fmt.Sprintf("Updated meja with ID %d", meja.ID))

	utils.RespondJSON(c, http.StatusOK, "Meja updated successfully", meja)
}

// DeleteMeja menghapus baris meja permanen.
func (mc *MejaController) DeleteMeja(c *gin.Context) {
	mejaID := c.Param("id")

	var meja models.MasterMeja
	if err := mc.DB.First(&meja, mejaID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Meja not found"))
		return
	}

	if err := mc.DB.Delete(&meja).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	mc.Events.Publish(events.EventMejaDeleted, meja.ID)
	utils.LogActivity(currentUserID(c), "DELETE", fmt.Sprintf("Deleted meja with ID %d", meja.ID))

	utils.RespondJSON(c, http.StatusOK, "Meja deleted successfully", nil)
}

func (mc *MejaController) SoftDeleteMeja(c *gin.Context) {
	mejaID := c.Param("id")

	var meja models.MasterMeja
	if err := mc.DB.First(&meja, mejaID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Meja not found"))
		return
	}

	now := time.Now()
	if err := mc.DB.Model(&meja).Update("deleted_at", &now).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	mc.Events.Publish(events.EventMejaSoftDeleted, meja.ID)
	utils.LogActivity(currentUserID(c), "DELETE", fmt.Sprintf("Soft deleted meja with ID %d", meja.ID))

	utils.RespondJSON(c, http.StatusOK, "Meja soft deleted successfully", nil)
}

func (mc *MejaController) RestoreMeja(c *gin.Context) {
	mejaID := c.Param("id")

	var meja models.MasterMeja
	if err := mc.DB.First(&meja, mejaID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Meja not found"))
		return
	}

	if err := mc.DB.Model(&meja).Update("deleted_at", nil).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	mc.Events.Publish(events.EventMejaRestored, meja.ID)
	utils.LogActivity(currentUserID(c), "RESTORE", fmt.Sprintf("Restored meja with ID %d", meja.ID))

	utils.RespondJSON(c, http.StatusOK, "Meja restored successfully", nil)
}

// currentUserID membaca id user login yang ditaruh AuthMiddleware di context.
func currentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
