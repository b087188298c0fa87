package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dongans/billiard-app/models"
	"github.com/dongans/billiard-app/utils"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type dashboardBucket struct {
	Bulan           int     `json:"bulan"`
	TotalBooking    int64   `json:"totalBooking"`
	TotalPendapatan float64 `json:"totalPendapatan"`
	TotalMeja       int64   `json:"totalMeja"`
}

// GetDashboard mengembalikan agregat per bulan untuk tahun berjalan: jumlah
// booking, pendapatan, dan jumlah meja aktif.
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	year := time.Now().Year()

	var totalMeja int64
	err := dc.DB.Model(&models.MasterMeja{}).
		Where("is_active = ? AND deleted_at IS NULL", true).
		Count(&totalMeja).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	buckets := make([]dashboardBucket, 12)
	for month := 1; month <= 12; month++ {
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)

		var totalBooking int64
		err := dc.DB.Model(&models.Booking{}).
			Where("deleted_at IS NULL").
			Where("tanggal >= ? AND tanggal < ?", start, end).
			Count(&totalBooking).Error
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}

		var totalPendapatan float64
		err = dc.DB.Model(&models.Booking{}).
			Where("deleted_at IS NULL").
			Where("tanggal >= ? AND tanggal < ?", start, end).
			Select("COALESCE(SUM(total_bayar), 0)").
			Scan(&totalPendapatan).Error
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}

		buckets[month-1] = dashboardBucket{
			Bulan:           month,
			TotalBooking:    totalBooking,
			TotalPendapatan: totalPendapatan,
			TotalMeja:       totalMeja,
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Success", gin.H{
		"tahun": year,
		"data":  buckets,
	})
}
