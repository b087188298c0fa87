package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dongans/billiard-app/controllers"
	"github.com/dongans/billiard-app/events"
	"github.com/dongans/billiard-app/models"
	"github.com/dongans/billiard-app/utils"
)

func setupTestDBForMeja(name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.MasterMeja{}, &models.JadwalMeja{}); err != nil {
		panic(err)
	}
	return db
}

func setupMejaRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mejaCtrl := controllers.NewMejaController(db, events.NopPublisher{})
	router.GET("/master/meja", mejaCtrl.GetAllMeja)
	router.POST("/master/meja/create", mejaCtrl.CreateMeja)
	router.PUT("/master/meja/update/:id", mejaCtrl.UpdateMeja)
	router.DELETE("/master/meja/delete/:id", mejaCtrl.DeleteMeja)
	router.PUT("/master/meja/soft-delete/:id", mejaCtrl.SoftDeleteMeja)
	router.PUT("/master/meja/restore/:id", mejaCtrl.RestoreMeja)
	return router
}

func TestCreateMeja(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForMeja("meja_create")
	router := setupMejaRouter(db)

	payload := map[string]interface{}{
		"nama":      "Meja VIP 1",
		"harga":     50000,
		"noMeja":    "01",
		"TipeMeja":  "VIP",
		"deskripsi": "Meja 9-ball",
	}
	payloadBytes, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/master/meja/create", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Meja created successfully", response["message"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Meja VIP 1", data["nama_meja"])
	assert.Equal(t, float64(50000), data["harga"])
	assert.Equal(t, true, data["is_active"])
}

func TestCreateMejaTanpaNama(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForMeja("meja_invalid")
	router := setupMejaRouter(db)

	payload := map[string]interface{}{"harga": 50000}
	payloadBytes, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/master/meja/create", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateMeja(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForMeja("meja_update")
	router := setupMejaRouter(db)

	meja := models.MasterMeja{NamaMeja: "Meja Lama", Harga: 30000, IsActive: true}
	db.Create(&meja)

	payload := map[string]interface{}{"nama": "Meja Baru", "harga": 45000}
	payloadBytes, _ := json.Marshal(payload)
	url := "/master/meja/update/" + strconv.Itoa(int(meja.ID))
	req, _ := http.NewRequest("PUT", url, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.MasterMeja
	db.First(&updated, meja.ID)
	assert.Equal(t, "Meja Baru", updated.NamaMeja)
	assert.Equal(t, float64(45000), updated.Harga)
}

func TestMejaSoftDeleteDanRestore(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForMeja("meja_soft_delete")
	router := setupMejaRouter(db)

	meja := models.MasterMeja{NamaMeja: "Meja 1", Harga: 30000, IsActive: true}
	db.Create(&meja)
	id := strconv.Itoa(int(meja.ID))

	req, _ := http.NewRequest("PUT", "/master/meja/soft-delete/"+id, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Listing default kosong
	req, _ = http.NewRequest("GET", "/master/meja", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["count"])

	// showDeleted menampilkan
	req, _ = http.NewRequest("GET", "/master/meja?showDeleted=true", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	data = response["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])

	// Restore
	req, _ = http.NewRequest("PUT", "/master/meja/restore/"+id, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var restored models.MasterMeja
	db.First(&restored, meja.ID)
	assert.Nil(t, restored.DeletedAt)
}

func TestDeleteMejaTidakDitemukan(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForMeja("meja_delete_404")
	router := setupMejaRouter(db)

	req, _ := http.NewRequest("DELETE", "/master/meja/delete/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
