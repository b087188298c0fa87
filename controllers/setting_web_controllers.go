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

const settingFolder = "setting-web"

type SettingWebController struct {
	DB      *gorm.DB
	Storage storage.Storage
}

func NewSettingWebController(db *gorm.DB, store storage.Storage) *SettingWebController {
	return &SettingWebController{DB: db, Storage: store}
}

func (sc *SettingWebController) GetSettingWeb(c *gin.Context) {
	var settings []models.SettingWeb
	if err := sc.DB.Find(&settings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Success", settings)
}

// UpsertSettingWeb membuat atau memperbarui baris setting pertama. Logo wajib
// saat belum ada baris sama sekali; setelahnya logo hanya diganti bila ada
// file baru.
func (sc *SettingWebController) UpsertSettingWeb(c *gin.Context) {
	var setting models.SettingWeb
	err := sc.DB.Order("id ASC").First(&setting).Error
	isNew := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !isNew {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	image, err := middlewares.ReadImageFile(c, "logo")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if isNew && image == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Field logo wajib diisi"))
		return
	}

	if image != nil {
		filename := uniqueFilename(image.OriginalName)
		url, err := sc.Storage.Upload(c.Request.Context(), settingFolder, filename, image.ContentType, image.Data)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		setting.LogoURL = url
	}

	fields := map[string]*string{
		"deskripsi":      &setting.Deskripsi,
		"alamat":         &setting.Alamat,
		"kodePos":        &setting.KodePos,
		"telepon":        &setting.Telepon,
		"faks":           &setting.Faks,
		"email":          &setting.Email,
		"jamOperasional": &setting.JamOperasional,
		"menuQuick":      &setting.MenuQuick,
		"menuTentang":    &setting.MenuTentang,
		"menuKontak":     &setting.MenuKontak,
		"sosialMedia":    &setting.SosialMedia,
		"copyright":      &setting.Copyright,
		"developer":      &setting.Developer,
	}
	for key, dst := range fields {
		if value := c.PostForm(key); value != "" {
			*dst = value
		}
	}

	if err := sc.DB.Save(&setting).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	message := "Setting web updated successfully"
	if isNew {
		message = "Setting web created successfully"
	}
	utils.InfoLogger.Printf("Setting web saved (id=%d)", setting.ID)
	utils.RespondJSON(c, http.StatusOK, message, setting)
}
