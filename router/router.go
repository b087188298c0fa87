package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dongans/billiard-app/controllers"
	"github.com/dongans/billiard-app/events"
	"github.com/dongans/billiard-app/mailer"
	"github.com/dongans/billiard-app/middlewares"
	"github.com/dongans/billiard-app/storage"
)

func SetupRouter(db *gorm.DB, store storage.Storage, sender mailer.Sender, hub *events.Hub) *gin.Engine {
	r := gin.Default()

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	mejaCtrl := controllers.NewMejaController(db, hub)
	jadwalCtrl := controllers.NewJadwalMejaController(db)
	bookingCtrl := controllers.NewBookingController(db, sender, hub)
	biodataCtrl := controllers.NewBiodataController(db)
	buktiCtrl := controllers.NewBuktiController(db, store)
	closedCtrl := controllers.NewClosedController(db)
	bannerCtrl := controllers.NewBannerController(db, store)
	qrisCtrl := controllers.NewQrisController(db, store)
	settingCtrl := controllers.NewSettingWebController(db, store)
	syaratCtrl := controllers.NewSyaratController(db)
	dashboardCtrl := controllers.NewDashboardController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter untuk login/register
	auth := r.Group("/auth")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/register", userCtrl.Register)
		auth.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES (guest)
	// ----------------------------------------------------------------
	r.GET("/master/meja", mejaCtrl.GetAllMeja)
	r.GET("/master/jadwal-meja", jadwalCtrl.GetAllJadwalMeja)
	r.GET("/master/jadwal-meja/:id", jadwalCtrl.GetJadwalMejaByID)
	r.GET("/master/banner", bannerCtrl.GetAllBanners)
	r.GET("/master/banner/:id", bannerCtrl.GetBannerByID)
	r.GET("/master/qris", qrisCtrl.GetQris)
	r.GET("/master/setting-web", settingCtrl.GetSettingWeb)
	r.GET("/master/syarat", syaratCtrl.GetSyarat)
	r.GET("/master/closed", closedCtrl.GetAllClosed)
	r.GET("/master/closed/:id", closedCtrl.GetClosedByID)

	// Guest membuat booking, melengkapi biodata, dan upload bukti transfer
	r.POST("/master/booking/create", bookingCtrl.CreateBooking)
	r.GET("/master/booking/:id", bookingCtrl.GetBookingByID)
	r.POST("/master/biodata/create", biodataCtrl.CreateBiodata)
	r.POST("/master/bukti/upload", buktiCtrl.UploadBukti)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES (admin)
	// ----------------------------------------------------------------
	admin := r.Group("/master")
	admin.Use(middlewares.AuthMiddleware())
	{
		admin.GET("/profile", userCtrl.GetProfile)

		// MEJA
		admin.POST("/meja/create", mejaCtrl.CreateMeja)
		admin.PUT("/meja/update/:id", mejaCtrl.UpdateMeja)
		admin.DELETE("/meja/delete/:id", mejaCtrl.DeleteMeja)
		admin.PUT("/meja/soft-delete/:id", mejaCtrl.SoftDeleteMeja)
		admin.PUT("/meja/restore/:id", mejaCtrl.RestoreMeja)

		// JADWAL MEJA
		admin.POST("/jadwal-meja/create", jadwalCtrl.CreateJadwalMeja)
		admin.PUT("/jadwal-meja/update/:id", jadwalCtrl.UpdateJadwalMeja)
		admin.DELETE("/jadwal-meja/delete/:id", jadwalCtrl.DeleteJadwalMeja)

		// BOOKING
		admin.GET("/booking", bookingCtrl.GetAllBookings)
		admin.PUT("/booking/konfirmasi/:id", bookingCtrl.UpdateKonfirmasi)
		admin.PUT("/booking/soft-delete/:id", bookingCtrl.SoftDeleteBooking)
		admin.PUT("/booking/restore/:id", bookingCtrl.RestoreBooking)

		// BIODATA
		admin.GET("/biodata", biodataCtrl.GetAllBiodata)
		admin.GET("/biodata/:id", biodataCtrl.GetBiodataByID)
		admin.PUT("/biodata/update/:id", biodataCtrl.UpdateBiodata)

		// BUKTI PEMBAYARAN
		admin.GET("/bukti", buktiCtrl.GetAllBukti)
		admin.GET("/bukti/:id", buktiCtrl.GetBuktiByID)

		// CLOSED
		admin.POST("/closed/tutup", closedCtrl.CreateTutup)
		admin.POST("/closed/buka", closedCtrl.CreateBuka)
		admin.DELETE("/closed/delete/:id", closedCtrl.DeleteClosed)

		// BANNER
		admin.POST("/banner/create", bannerCtrl.CreateBanner)
		admin.PUT("/banner/update/:id", bannerCtrl.UpdateBanner)
		admin.DELETE("/banner/delete/:id", bannerCtrl.DeleteBanner)
		admin.PUT("/banner/soft-delete/:id", bannerCtrl.SoftDeleteBanner)
		admin.PUT("/banner/restore/:id", bannerCtrl.RestoreBanner)

		// QRIS
		admin.POST("/qris", qrisCtrl.UpsertQris)
		admin.DELETE("/qris", qrisCtrl.DeleteQris)

		// SETTING WEB
		admin.POST("/setting-web", settingCtrl.UpsertSettingWeb)

		// SYARAT & KETENTUAN
		admin.POST("/syarat", syaratCtrl.UpsertSyarat)

		// USER MANAGEMENT
		admin.GET("/user", userCtrl.GetAllUsers)
		admin.GET("/user/:id", userCtrl.GetUserByID)
		admin.POST("/user/create", userCtrl.Register)
		admin.PUT("/user/update/:id", userCtrl.UpdateUser)
		admin.DELETE("/user/delete/:id", userCtrl.DeleteUser)
		admin.PUT("/user/soft-delete/:id", userCtrl.SoftDeleteUser)
		admin.PUT("/user/restore/:id", userCtrl.RestoreUser)
	}

	// DASHBOARD
	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())
	{
		dashboard.GET("", dashboardCtrl.GetDashboard)
	}

	// WebSocket endpoint dengan middleware khusus
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("", controllers.DashboardWSHandler(hub))
	}

	return r
}
