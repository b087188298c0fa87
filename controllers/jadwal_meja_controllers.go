package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dongans/billiard-app/models"
	"github.com/dongans/billiard-app/utils"
)

type JadwalMejaController struct {
	DB *gorm.DB
}

func NewJadwalMejaController(db *gorm.DB) *JadwalMejaController {
	return &JadwalMejaController{DB: db}
}

type jadwalMejaRequest struct {
	MejaID    uint   `json:"meja_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Status    string `json:"status"`
}

// jadwalMejaView menambahkan status turunan (Booked/Tersedia) pada satu slot.
// Kolom status di tabel tidak disentuh; Booked dihitung dari keberadaan
// JamBooking untuk slot tersebut.
type jadwalMejaView struct {
	models.JadwalMeja
	StatusBooking string `json:"status_booking"`
}

func (jc *JadwalMejaController) withDerivedStatus(jadwals []models.JadwalMeja) ([]jadwalMejaView, error) {
	views := make([]jadwalMejaView, 0, len(jadwals))
	if len(jadwals) == 0 {
		return views, nil
	}

	ids := make([]uint, 0, len(jadwals))
	for _, j := range jadwals {
		ids = append(ids, j.ID)
	}

	var bookedIDs []uint
	err := jc.DB.Model(&models.JamBooking{}).
		Distinct("id_jadwal_meja").
		Where("id_jadwal_meja IN ?", ids).
		Pluck("id_jadwal_meja", &bookedIDs).Error
	if err != nil {
		return nil, err
	}

	booked := make(map[uint]bool, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = true
	}

	for _, j := range jadwals {
		status := "Tersedia"
		if booked[j.ID] {
			status = "Booked"
		}
		views = append(views, jadwalMejaView{JadwalMeja: j, StatusBooking: status})
	}
	return views, nil
}

// validateNoOverlap menolak slot yang beririsan dengan slot lain di meja yang
// sama. Dua slot beririsan jika start < end lawan dan end > start lawan;
// slot yang bersentuhan di batas (end == start berikutnya) diperbolehkan.
func (jc *JadwalMejaController) validateNoOverlap(mejaID uint, startTime, endTime string, excludeID uint) error {
	start, err := models.ParseClock(startTime)
	if err != nil {
		return newRequestError(http.StatusBadRequest, err.Error())
	}
	end, err := models.ParseClock(endTime)
	if err != nil {
		return newRequestError(http.StatusBadRequest, err.Error())
	}
	if end <= start {
		return newRequestError(http.StatusBadRequest, "Jam selesai harus setelah jam mulai")
	}

	query := jc.DB.Model(&models.JadwalMeja{}).
		Where("meja_id = ?", mejaID).
		Where("start_time < ? AND end_time > ?", endTime, startTime)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return newRequestError(http.StatusBadRequest, "Jadwal bertabrakan dengan jadwal lain pada meja yang sama")
	}
	return nil
}

func (jc *JadwalMejaController) GetAllJadwalMeja(c *gin.Context) {
	page := utils.NewPagination(c)

	query := jc.DB.Model(&models.JadwalMeja{})
	if mejaID := c.Query("meja_id"); mejaID != "" {
		query = query.Where("meja_id = ?", mejaID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var jadwals []models.JadwalMeja
	err := query.
		Preload("Meja").
		Order("meja_id ASC, start_time ASC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&jadwals).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	views, err := jc.withDerivedStatus(jadwals)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Success", page.Paginate(count, views))
}

func (jc *JadwalMejaController) GetJadwalMejaByID(c *gin.Context) {
	var jadwal models.JadwalMeja
	if err := jc.DB.Preload("Meja").First(&jadwal, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Jadwal meja tidak ditemukan"))
		return
	}

	views, err := jc.withDerivedStatus([]models.JadwalMeja{jadwal})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Success", views[0])
}

func (jc *JadwalMejaController) CreateJadwalMeja(c *gin.Context) {
	var req jadwalMejaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var meja models.MasterMeja
	if err := jc.DB.First(&meja, req.MejaID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Meja not found"))
		return
	}

	if err := jc.validateNoOverlap(req.MejaID, req.StartTime, req.EndTime, 0); err != nil {
		respondRequestError(c, err)
		return
	}

	status := req.Status
	if status == "" {
		status = models.JadwalStatusAvailable
	}

	jadwal := models.JadwalMeja{
		MejaID:    req.MejaID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    status,
	}

	if err := jc.DB.Create(&jadwal).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New jadwal created for meja %d: %s", jadwal.MejaID, jadwal.TimeRange())
	utils.RespondJSON(c, http.StatusCreated, "Jadwal meja created successfully", jadwal)
}

func (jc *JadwalMejaController) UpdateJadwalMeja(c *gin.Context) {
	var req jadwalMejaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var jadwal models.JadwalMeja
	if err := jc.DB.First(&jadwal, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Jadwal meja tidak ditemukan"))
		return
	}

	if err := jc.validateNoOverlap(req.MejaID, req.StartTime, req.EndTime, jadwal.ID); err != nil {
		respondRequestError(c, err)
		return
	}

	jadwal.MejaID = req.MejaID
	jadwal.StartTime = req.StartTime
	jadwal.EndTime = req.EndTime
	if req.Status != "" {
		jadwal.Status = req.Status
	}

	if err := jc.DB.Save(&jadwal).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Jadwal meja updated successfully", jadwal)
}

// DeleteJadwalMeja: slot jadwal tidak pakai soft delete, langsung dihapus.
func (jc *JadwalMejaController) DeleteJadwalMeja(c *gin.Context) {
	var jadwal models.JadwalMeja
	if err := jc.DB.First(&jadwal, c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Jadwal meja tidak ditemukan"))
		return
	}

	if err := jc.DB.Delete(&jadwal).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Jadwal meja deleted successfully", nil)
}
