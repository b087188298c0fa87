package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dongans/billiard-app/controllers"
	"github.com/dongans/billiard-app/models"
	"github.com/dongans/billiard-app/utils"
)

func setupTestDBForJadwal(name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(
		&models.MasterMeja{},
		&models.JadwalMeja{},
		&models.Booking{},
		&models.JamBooking{},
	)
	if err != nil {
		panic(err)
	}
	return db
}

func setupJadwalRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	jadwalCtrl := controllers.NewJadwalMejaController(db)
	router.GET("/master/jadwal-meja", jadwalCtrl.GetAllJadwalMeja)
	router.GET("/master/jadwal-meja/:id", jadwalCtrl.GetJadwalMejaByID)
	router.POST("/master/jadwal-meja/create", jadwalCtrl.CreateJadwalMeja)
	router.PUT("/master/jadwal-meja/update/:id", jadwalCtrl.UpdateJadwalMeja)
	router.DELETE("/master/jadwal-meja/delete/:id", jadwalCtrl.DeleteJadwalMeja)
	return router
}

func postJadwal(router *gin.Engine, mejaID uint, start, end string) *httptest.ResponseRecorder {
	payload := map[string]interface{}{"meja_id": mejaID, "start_time": start, "end_time": end}
	payloadBytes, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/master/jadwal-meja/create", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateJadwalOverlap(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForJadwal("jadwal_overlap")

	meja := models.MasterMeja{NamaMeja: "Meja 1", Harga: 40000, IsActive: true}
	db.Create(&meja)

	router := setupJadwalRouter(db)

	w := postJadwal(router, meja.ID, "10:00", "12:00")
	assert.Equal(t, http.StatusCreated, w.Code)

	// Beririsan di tengah -> tolak
	w = postJadwal(router, meja.ID, "11:00", "13:00")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["message"], "bertabrakan")

	// Bersentuhan di batas -> boleh
	w = postJadwal(router, meja.ID, "12:00", "13:00")
	assert.Equal(t, http.StatusCreated, w.Code)

	// Slot yang sama di meja lain -> boleh
	mejaLain := models.MasterMeja{NamaMeja: "Meja 2", Harga: 40000, IsActive: true}
	db.Create(&mejaLain)
	w = postJadwal(router, mejaLain.ID, "10:00", "12:00")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateJadwalJamTidakValid(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForJadwal("jadwal_invalid")

	meja := models.MasterMeja{NamaMeja: "Meja 1", Harga: 40000, IsActive: true}
	db.Create(&meja)

	router := setupJadwalRouter(db)

	// Selesai sebelum mulai
	w := postJadwal(router, meja.ID, "12:00", "10:00")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Format jam rusak
	w = postJadwal(router, meja.ID, "pagi", "siang")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateJadwalTidakBentrokDenganDiriSendiri(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForJadwal("jadwal_update_self")

	meja := models.MasterMeja{NamaMeja: "Meja 1", Harga: 40000, IsActive: true}
	db.Create(&meja)
	jadwal := models.JadwalMeja{MejaID: meja.ID, StartTime: "10:00", EndTime: "12:00"}
	db.Create(&jadwal)

	router := setupJadwalRouter(db)

	// Menggeser jam slot yang sama tidak boleh bentrok dengan dirinya sendiri
	payload := map[string]interface{}{"meja_id": meja.ID, "start_time": "10:30", "end_time": "12:00"}
	payloadBytes, _ := json.Marshal(payload)
	url := "/master/jadwal-meja/update/" + strconv.Itoa(int(jadwal.ID))
	req, _ := http.NewRequest("PUT", url, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.JadwalMeja
	db.First(&updated, jadwal.ID)
	assert.Equal(t, "10:30", updated.StartTime)
}

func TestJadwalStatusTurunan(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForJadwal("jadwal_status")

	meja := models.MasterMeja{NamaMeja: "Meja 1", Harga: 40000, IsActive: true}
	db.Create(&meja)
	jadwalBooked := models.JadwalMeja{MejaID: meja.ID, StartTime: "10:00", EndTime: "11:00"}
	jadwalKosong := models.JadwalMeja{MejaID: meja.ID, StartTime: "11:00", EndTime: "12:00"}
	db.Create(&jadwalBooked)
	db.Create(&jadwalKosong)

	tanggal, _ := time.Parse("2006-01-02", "2025-07-03")
	booking := models.Booking{MejaID: meja.ID, Tanggal: tanggal, Harga: 40000, KodeBooking: "BK-20250703-TEST"}
	db.Create(&booking)
	db.Create(&models.JamBooking{
		BookingID: booking.ID, IDMeja: meja.ID,
		IDJadwalMeja: jadwalBooked.ID, Tanggal: tanggal,
	})

	router := setupJadwalRouter(db)

	req, _ := http.NewRequest("GET", "/master/jadwal-meja", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	data := response["data"].(map[string]interface{})
	rows := data["rows"].([]interface{})
	assert.Len(t, rows, 2)

	statuses := map[float64]string{}
	for _, row := range rows {
		r := row.(map[string]interface{})
		statuses[r["id"].(float64)] = r["status_booking"].(string)
	}
	assert.Equal(t, "Booked", statuses[float64(jadwalBooked.ID)])
	assert.Equal(t, "Tersedia", statuses[float64(jadwalKosong.ID)])
}

func TestDeleteJadwal(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForJadwal("jadwal_delete")

	meja := models.MasterMeja{NamaMeja: "Meja 1", Harga: 40000, IsActive: true}
	db.Create(&meja)
	jadwal := models.JadwalMeja{MejaID: meja.ID, StartTime: "10:00", EndTime: "11:00"}
	db.Create(&jadwal)

	router := setupJadwalRouter(db)

	req, _ := http.NewRequest("DELETE", "/master/jadwal-meja/delete/"+strconv.Itoa(int(jadwal.ID)), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.JadwalMeja{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
