package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dongans/billiard-app/controllers"
	"github.com/dongans/billiard-app/events"
	"github.com/dongans/billiard-app/models"
	"github.com/dongans/billiard-app/utils"
)

// setupTestDBForBookings menggunakan SQLite in-memory; nama database dibuat
// per test supaya data antar test tidak bercampur.
func setupTestDBForBookings(name string) *gorm.DB {
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
		&models.BiodataBooking{},
		&models.BuktiPembayaran{},
		&models.Closed{},
	)
	if err != nil {
		panic(err)
	}
	return db
}

func setupBookingRouter(db *gorm.DB, sender *fakeSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	bookingCtrl := controllers.NewBookingController(db, sender, events.NopPublisher{})
	router.POST("/master/booking/create", bookingCtrl.CreateBooking)
	router.GET("/master/booking", bookingCtrl.GetAllBookings)
	router.GET("/master/booking/:id", bookingCtrl.GetBookingByID)
	router.PUT("/master/booking/konfirmasi/:id", bookingCtrl.UpdateKonfirmasi)
	router.PUT("/master/booking/soft-delete/:id", bookingCtrl.SoftDeleteBooking)
	router.PUT("/master/booking/restore/:id", bookingCtrl.RestoreBooking)
	return router
}

// seedMejaDenganJadwal membuat satu meja dengan dua slot: 10:00-11:00 (1 jam)
// dan 11:00-13:00 (2 jam).
func seedMejaDenganJadwal(db *gorm.DB, harga float64) (models.MasterMeja, []models.JadwalMeja) {
	meja := models.MasterMeja{NamaMeja: "Meja VIP 1", Harga: harga, NoMeja: "01", IsActive: true}
	db.Create(&meja)

	jadwals := []models.JadwalMeja{
		{MejaID: meja.ID, StartTime: "10:00", EndTime: "11:00", Status: models.JadwalStatusAvailable},
		{MejaID: meja.ID, StartTime: "11:00", EndTime: "13:00", Status: models.JadwalStatusAvailable},
	}
	db.Create(&jadwals)
	return meja, jadwals
}

func postBooking(router *gin.Engine, tanggal string, jadwalIds []uint) *httptest.ResponseRecorder {
	payload := map[string]interface{}{"tanggal": tanggal, "jadwalIds": jadwalIds}
	payloadBytes, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/master/booking/create", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateBooking(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForBookings("booking_create")

	_, jadwals := seedMejaDenganJadwal(db, 50000)
	router := setupBookingRouter(db, &fakeSender{})

	w := postBooking(router, "2025-07-03", []uint{jadwals[0].ID, jadwals[1].ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Booking berhasil dibuat", response["message"])

	data := response["data"].(map[string]interface{})
	booking := data["booking"].(map[string]interface{})

	// 1 jam + 2 jam pada tarif 50000/jam
	assert.Equal(t, "3", booking["durasi_jam"])
	assert.Equal(t, float64(150000), booking["total_bayar"])
	assert.Equal(t, float64(50000), booking["harga"])
	assert.Regexp(t, regexp.MustCompile(`^BK-20250703-[A-Z0-9]{4}$`), booking["kode_booking"])

	jamBooking := data["jam_booking"].([]interface{})
	assert.Len(t, jamBooking, 2)
}

func TestCreateBookingConflict(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForBookings("booking_conflict")

	_, jadwals := seedMejaDenganJadwal(db, 50000)
	router := setupBookingRouter(db, &fakeSender{})

	w := postBooking(router, "2025-07-03", []uint{jadwals[1].ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Slot yang sama di tanggal yang sama harus ditolak
	w = postBooking(router, "2025-07-03", []uint{jadwals[0].ID, jadwals[1].ID})
	assert.Equal(t, http.StatusConflict, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["message"], "sudah dibooking")

	taken := response["data"].([]interface{})
	assert.Contains(t, taken, "11:00 - 13:00")

	// Tanggal lain tetap bisa
	w = postBooking(router, "2025-07-04", []uint{jadwals[1].ID})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateBookingTokoTutup(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForBookings("booking_tutup")

	_, jadwals := seedMejaDenganJadwal(db, 50000)
	router := setupBookingRouter(db, &fakeSender{})

	tanggal, _ := time.Parse("2006-01-02", "2025-07-03")
	tutup := models.Closed{Date: tanggal, Type: models.ClosedTypeTutup, Reason: "Libur Lebaran"}
	db.Create(&tutup)

	w := postBooking(router, "2025-07-03", []uint{jadwals[0].ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["message"], "Toko sedang tutup")
	assert.Contains(t, response["message"], "Libur Lebaran")

	// Entri BUKA yang merujuk hari tutup membuka kembali tanggal tersebut
	buka := models.Closed{Date: tanggal, Type: models.ClosedTypeBuka, Reason: "Buka dadakan", ReferenceID: &tutup.ID}
	db.Create(&buka)

	w = postBooking(router, "2025-07-03", []uint{jadwals[0].ID})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateBookingJadwalBedaMeja(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForBookings("booking_beda_meja")

	_, jadwals := seedMejaDenganJadwal(db, 50000)

	mejaLain := models.MasterMeja{NamaMeja: "Meja Reguler 2", Harga: 30000, NoMeja: "02", IsActive: true}
	db.Create(&mejaLain)
	jadwalLain := models.JadwalMeja{MejaID: mejaLain.ID, StartTime: "10:00", EndTime: "11:00"}
	db.Create(&jadwalLain)

	router := setupBookingRouter(db, &fakeSender{})

	w := postBooking(router, "2025-07-03", []uint{jadwals[0].ID, jadwalLain.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["message"], "Jadwal tidak sesuai")
}

func TestUpdateKonfirmasi(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForBookings("booking_konfirmasi")

	_, jadwals := seedMejaDenganJadwal(db, 50000)
	sender := &fakeSender{}
	router := setupBookingRouter(db, sender)

	w := postBooking(router, "2025-07-03", []uint{jadwals[0].ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	var booking models.Booking
	db.First(&booking)

	url := "/master/booking/konfirmasi/" + strconv.Itoa(int(booking.ID))

	// Belum ada bukti pembayaran -> tolak
	req, _ := http.NewRequest("PUT", url, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["message"], "Bukti pembayaran belum diupload")

	// Lengkapi biodata + bukti, lalu konfirmasi
	db.Create(&models.BiodataBooking{
		Nama: "Budi", NoTelp: "0812", Alamat: "Jakarta",
		Email: "budi@example.com", BookingID: booking.ID,
	})
	db.Create(&models.BuktiPembayaran{
		Foto: "https://storage.test/bukti.jpg", NamaFoto: "bukti.jpg",
		KodeBookingID: booking.KodeBooking,
	})

	req, _ = http.NewRequest("PUT", url, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Success", response["message"])

	var updated models.Booking
	db.First(&updated, booking.ID)
	assert.True(t, updated.Konfirmasi)

	// Email terkirim ke pemesan dengan detail booking
	assert.Equal(t, 1, sender.Sent)
	assert.Equal(t, "budi@example.com", sender.To)
	assert.Contains(t, sender.Body, booking.KodeBooking)
	assert.Contains(t, sender.Body, "Meja VIP 1")
}

func TestUpdateKonfirmasiEmailGagal(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForBookings("booking_email_gagal")

	_, jadwals := seedMejaDenganJadwal(db, 50000)
	sender := &fakeSender{Err: fmt.Errorf("smtp down")}
	router := setupBookingRouter(db, sender)

	w := postBooking(router, "2025-07-03", []uint{jadwals[0].ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	var booking models.Booking
	db.First(&booking)
	db.Create(&models.BiodataBooking{
		Nama: "Budi", NoTelp: "0812", Alamat: "Jakarta",
		Email: "budi@example.com", BookingID: booking.ID,
	})
	db.Create(&models.BuktiPembayaran{Foto: "x", NamaFoto: "x.jpg", KodeBookingID: booking.KodeBooking})

	req, _ := http.NewRequest("PUT", "/master/booking/konfirmasi/"+strconv.Itoa(int(booking.ID)), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["message"], "email notifikasi gagal dikirim")

	// Konfirmasi tetap tersimpan walau email gagal
	var updated models.Booking
	db.First(&updated, booking.ID)
	assert.True(t, updated.Konfirmasi)
}

func TestBookingSoftDeleteDanRestore(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForBookings("booking_soft_delete")

	_, jadwals := seedMejaDenganJadwal(db, 50000)
	router := setupBookingRouter(db, &fakeSender{})

	w := postBooking(router, "2025-07-03", []uint{jadwals[0].ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	var booking models.Booking
	db.First(&booking)
	id := strconv.Itoa(int(booking.ID))

	req, _ := http.NewRequest("PUT", "/master/booking/soft-delete/"+id, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Default listing tidak menampilkan data yang di-soft-delete
	req, _ = http.NewRequest("GET", "/master/booking", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["count"])

	// showDeleted=true menampilkannya
	req, _ = http.NewRequest("GET", "/master/booking?showDeleted=true", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Including soft-deleted data", response["message"])
	data = response["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])

	// Restore mengembalikan ke listing default
	req, _ = http.NewRequest("PUT", "/master/booking/restore/"+id, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/master/booking", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	data = response["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])
}
