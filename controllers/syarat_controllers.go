package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dongans/billiard-app/models"
	"github.com/dongans/billiard-app/utils"
)

// defaultSyarat dipakai saat admin belum pernah menyimpan syarat & ketentuan.
const defaultSyarat = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, " +
	"sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."

type SyaratController struct {
	DB *gorm.DB
}

func NewSyaratController(db *gorm.DB) *SyaratController {
	return &SyaratController{DB: db}
}

func (sc *SyaratController) GetSyarat(c *gin.Context) {
	var syarat models.SyaratKetentuan
	err := sc.DB.First(&syarat, models.SyaratSingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		syarat = models.SyaratKetentuan{
			ID:     models.SyaratSingletonID,
			Syarat: defaultSyarat,
		}
		utils.RespondJSON(c, http.StatusOK, "Success", syarat)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Success", syarat)
}

// UpsertSyarat menyimpan teks syarat & ketentuan pada baris tunggal id 1.
func (sc *SyaratController) UpsertSyarat(c *gin.Context) {
	var req struct {
		Syarat string `json:"syarat" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Field syarat wajib diisi"))
		return
	}

	var syarat models.SyaratKetentuan
	err := sc.DB.First(&syarat, models.SyaratSingletonID).Error
	isNew := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !isNew {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	syarat.ID = models.SyaratSingletonID
	syarat.Syarat = req.Syarat
	if err := sc.DB.Save(&syarat).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	message := "Syarat dan ketentuan updated successfully"
	if isNew {
		message = "Syarat dan ketentuan created successfully"
	}
	utils.RespondJSON(c, http.StatusOK, message, syarat)
}
