package controllers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dongans/billiard-app/events"
	"github.com/dongans/billiard-app/mailer"
	"github.com/dongans/billiard-app/models"
	"github.com/dongans/billiard-app/utils"
)

const kodeBookingCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateKodeBooking membentuk kode dengan pola BK-YYYYMMDD-XXXX,
// contoh: BK-20250703-A7K9. Keunikan dijamin index unik + retry di caller.
func generateKodeBooking(tanggal string) string {
	formatTanggal := strings.ReplaceAll(tanggal, "-", "")
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = kodeBookingCharset[rand.Intn(len(kodeBookingCharset))]
	}
	return fmt.Sprintf("BK-%s-%s", formatTanggal, string(suffix))
}

type BookingController struct {
	DB     *gorm.DB
	Mailer mailer.Sender
	Events events.Publisher
}

func NewBookingController(db *gorm.DB, sender mailer.Sender, publisher events.Publisher) *BookingController {
	return &BookingController{DB: db, Mailer: sender, Events: publisher}
}

// GetAllBookings -> daftar booking dengan pagination; showDeleted=true ikut
// menampilkan booking yang sudah di-soft-delete.
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	page := utils.NewPagination(c)
	showDeleted := c.Query("showDeleted") == "true"

	query := bc.DB.Model(&models.Booking{})
	if !showDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var bookings []models.Booking
	err := query.
		Preload("Meja").
		Preload("JamBooking.JadwalMeja").
		Preload("BiodataBooking").
		Preload("BuktiPembayaran").
		Order("id DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&bookings).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	message := "Success"
	if showDeleted {
		message = "Including soft-deleted data"
	}
	utils.RespondJSON(c, http.StatusOK, message, page.Paginate(count, bookings))
}

// CreateBooking memproses pemesanan: cek tutup toko, validasi kepemilikan
// jadwal, cek bentrok, hitung durasi & harga, lalu simpan. Seluruh urutan
// berjalan dalam satu transaksi; index unik (id_jadwal_meja, tanggal) di
// jam_bookings menangkap request bersamaan yang lolos cek bentrok.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req struct {
		Tanggal   string `json:"tanggal" binding:"required"`
		JadwalIds []uint `json:"jadwalIds" binding:"required,min=1"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("Field tanggal dan jadwalIds wajib diisi dan jadwalIds harus berupa array"))
		return
	}

	tanggalBooking, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Tanggal tidak valid, gunakan format YYYY-MM-DD"))
		return
	}

	var booking models.Booking
	var jamBookingData []models.JamBooking

	txErr := bc.DB.Transaction(func(tx *gorm.DB) error {
		// Toko tutup? Entri TUTUP tanpa entri BUKA yang merujuknya menolak
		// booking di tanggal itu.
		var closedData models.Closed
		err := tx.
			Where("type = ? AND date = ?", models.ClosedTypeTutup, tanggalBooking).
			Where("NOT EXISTS (SELECT 1 FROM closeds AS buka WHERE buka.type = ? AND buka.reference_id = closeds.id)",
				models.ClosedTypeBuka).
			First(&closedData).Error
		if err == nil {
			return newRequestError(http.StatusBadRequest,
				fmt.Sprintf("Toko sedang tutup pada tanggal tersebut (%s)", closedData.Reason))
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// Meja diambil dari jadwal pertama.
		var firstJadwal models.JadwalMeja
		if err := tx.Preload("Meja").First(&firstJadwal, req.JadwalIds[0]).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newRequestError(http.StatusNotFound, "Jadwal tidak ditemukan")
			}
			return err
		}
		meja := firstJadwal.Meja

		// Semua jadwal yang diminta harus milik meja yang sama.
		var validJadwals []models.JadwalMeja
		if err := tx.Where("id IN ? AND meja_id = ?", req.JadwalIds, meja.ID).Find(&validJadwals).Error; err != nil {
			return err
		}
		if len(validJadwals) != len(req.JadwalIds) {
			return newRequestError(http.StatusBadRequest, "Jadwal tidak sesuai dengan meja yang dipilih.")
		}

		// Cek bentrok terhadap booking lain di tanggal yang sama.
		var existing []models.JamBooking
		err = tx.
			Preload("JadwalMeja").
			Where("id_jadwal_meja IN ? AND tanggal = ?", req.JadwalIds, tanggalBooking).
			Find(&existing).Error
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			taken := make([]string, 0, len(existing))
			for _, jb := range existing {
				taken = append(taken, jb.JadwalMeja.TimeRange())
			}
			return &requestError{
				Code:    http.StatusConflict,
				Message: "Beberapa jadwal sudah dibooking di tanggal tersebut. Silakan pilih jadwal lain.",
				Data:    taken,
			}
		}

		// Durasi total dalam jam dari selisih EndTime-StartTime tiap slot.
		var totalDurasiJam float64
		for _, jadwal := range validJadwals {
			durasi, err := jadwal.DurationHours()
			if err != nil {
				return err
			}
			totalDurasiJam += durasi
		}
		totalBayar := totalDurasiJam * meja.Harga

		// Kode dicoba ulang bila bertabrakan dengan kode yang sudah ada.
		kodeBooking := generateKodeBooking(req.Tanggal)
		for attempt := 0; attempt < 5; attempt++ {
			var dup int64
			if err := tx.Model(&models.Booking{}).Where("kode_booking = ?", kodeBooking).Count(&dup).Error; err != nil {
				return err
			}
			if dup == 0 {
				break
			}
			kodeBooking = generateKodeBooking(req.Tanggal)
		}

		booking = models.Booking{
			MejaID:      meja.ID,
			Tanggal:     tanggalBooking,
			Harga:       meja.Harga,
			KodeBooking: kodeBooking,
			DurasiJam:   strconv.FormatFloat(totalDurasiJam, 'f', -1, 64),
			TotalBayar:  totalBayar,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		jamBookingData = make([]models.JamBooking, 0, len(req.JadwalIds))
		for _, jadwalID := range req.JadwalIds {
			jamBookingData = append(jamBookingData, models.JamBooking{
				BookingID:    booking.ID,
				IDMeja:       meja.ID,
				IDJadwalMeja: jadwalID,
				Tanggal:      tanggalBooking,
			})
		}
		if err := tx.Create(&jamBookingData).Error; err != nil {
			if isDuplicateKeyError(err) {
				return newRequestError(http.StatusConflict,
					"Beberapa jadwal sudah dibooking di tanggal tersebut. Silakan pilih jadwal lain.")
			}
			return err
		}

		return nil
	})

	if txErr != nil {
		respondRequestError(c, txErr)
		return
	}

	bc.Events.Publish(events.EventBookingCreated, booking)
	utils.InfoLogger.Printf("Booking %s created for meja %d on %s", booking.KodeBooking, booking.MejaID, req.Tanggal)

	utils.RespondJSON(c, http.StatusCreated, "Booking berhasil dibuat", gin.H{
		"booking":          booking,
		"jam_booking":      jamBookingData,
		"bukti_pembayaran": []models.BuktiPembayaran{},
	})
}

// SoftDeleteBooking menandai booking terhapus tanpa membuang barisnya.
func (bc *BookingController) SoftDeleteBooking(c *gin.Context) {
	bookingID := c.Param("id")

	var booking models.Booking
	if err := bc.DB.First(&booking, bookingID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Booking not found"))
		return
	}

	now := time.Now()
	booking.DeletedAt = &now
	if err := bc.DB.Save(&booking).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Success", booking)
}

// RestoreBooking menghapus tanda soft delete sehingga booking muncul kembali.
func (bc *BookingController) RestoreBooking(c *gin.Context) {
	bookingID := c.Param("id")

	var booking models.Booking
	if err := bc.DB.First(&booking, bookingID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Booking not found"))
		return
	}

	if err := bc.DB.Model(&booking).Update("deleted_at", nil).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	booking.DeletedAt = nil

	utils.RespondJSON(c, http.StatusOK, "Success", booking)
}

// GetBookingByID -> detail booking beserta meja, slot, biodata, dan bukti.
func (bc *BookingController) GetBookingByID(c *gin.Context) {
	bookingID := c.Param("id")

	var booking models.Booking
	err := bc.DB.
		Preload("Meja").
		Preload("JamBooking.JadwalMeja").
		Preload("BiodataBooking").
		Preload("BuktiPembayaran").
		First(&booking, bookingID).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Booking tidak ditemukan"))
		return
	}

	durasi, _ := strconv.ParseFloat(booking.DurasiJam, 64)
	utils.RespondJSON(c, http.StatusOK, "Success", gin.H{
		"booking":     booking,
		"durasi_jam":  durasi,
		"total_bayar": booking.TotalBayar,
	})
}

// UpdateKonfirmasi membalik flag konfirmasi lalu mengirim email notifikasi.
// Perubahan flag di-commit lebih dulu; kegagalan kirim email dicatat dan
// dilaporkan di message tanpa membatalkan konfirmasi.
func (bc *BookingController) UpdateKonfirmasi(c *gin.Context) {
	bookingID := c.Param("id")

	var booking models.Booking
	err := bc.DB.
		Preload("Meja").
		Preload("JamBooking.JadwalMeja").
		Preload("BiodataBooking").
		Preload("BuktiPembayaran").
		First(&booking, bookingID).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Booking tidak ditemukan"))
		return
	}

	if len(booking.BuktiPembayaran) != 1 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Bukti pembayaran belum diupload"))
		return
	}

	booking.Konfirmasi = !booking.Konfirmasi
	if err := bc.DB.Model(&booking).Update("konfirmasi", booking.Konfirmasi).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	bc.Events.Publish(events.EventBookingConfirmed, booking)

	message := "Success"
	if err := bc.sendKonfirmasiEmail(&booking); err != nil {
		utils.ErrorLogger.Printf("Konfirmasi booking %s tersimpan, email gagal dikirim: %v", booking.KodeBooking, err)
		message = "Success, namun email notifikasi gagal dikirim"
	}

	utils.RespondJSON(c, http.StatusOK, message, booking)
}

func (bc *BookingController) sendKonfirmasiEmail(booking *models.Booking) error {
	if len(booking.BiodataBooking) == 0 || booking.BiodataBooking[0].Email == "" {
		return errors.New("biodata pemesan tidak memiliki email")
	}
	biodata := booking.BiodataBooking[0]

	jam := ""
	if len(booking.JamBooking) > 0 {
		jam = booking.JamBooking[0].JadwalMeja.TimeRange()
	}

	body := mailer.DetailKonfirmasi(
		booking.Konfirmasi,
		utils.FormatTanggalIndonesia(booking.Tanggal),
		booking.Meja.NamaMeja,
		jam,
		booking.DurasiJam,
		utils.FormatRupiah(booking.TotalBayar),
		booking.KodeBooking,
	)

	return bc.Mailer.Send(biodata.Email, "Konfirmasi Booking", mailer.PesanKonfirmasi(biodata.Nama, body))
}
