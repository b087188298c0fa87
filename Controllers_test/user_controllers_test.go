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
	"github.com/dongans/billiard-app/middlewares"
	"github.com/dongans/billiard-app/models"
	"github.com/dongans/billiard-app/utils"
)

func setupTestDBForUsers(name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		panic(err)
	}
	return db
}

func setupUserRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	userCtrl := controllers.NewUserController(db)
	router.POST("/auth/register", userCtrl.Register)
	router.POST("/auth/login", userCtrl.Login)

	admin := router.Group("/master")
	admin.Use(middlewares.AuthMiddleware())
	admin.GET("/profile", userCtrl.GetProfile)
	admin.GET("/user", userCtrl.GetAllUsers)
	admin.PUT("/user/soft-delete/:id", userCtrl.SoftDeleteUser)
	admin.PUT("/user/restore/:id", userCtrl.RestoreUser)
	return router
}

func TestRegisterAndLogin(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForUsers("user_register")
	router := setupUserRouter(db)

	registerPayload := map[string]string{
		"name":     "Test Admin",
		"email":    "admin@example.com",
		"password": "password123",
		"role":     "admin",
	}
	payloadBytes, err := json.Marshal(registerPayload)
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", "/auth/register", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var registerResponse map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &registerResponse)
	assert.NoError(t, err)
	assert.Equal(t, "User registered", registerResponse["message"])
	data := registerResponse["data"].(map[string]interface{})
	assert.NotNil(t, data["user_id"])

	// Email yang sama -> tolak
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/auth/register", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// --- Login ---
	loginPayload := map[string]string{
		"email":    "admin@example.com",
		"password": "password123",
	}
	payloadBytes, _ = json.Marshal(loginPayload)
	req, _ = http.NewRequest("POST", "/auth/login", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var loginResponse map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &loginResponse)
	assert.NoError(t, err)
	loginData := loginResponse["data"].(map[string]interface{})
	token := loginData["token"].(string)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin", loginData["user_role"])

	// Password salah -> 401
	wrongPayload, _ := json.Marshal(map[string]string{
		"email": "admin@example.com", "password": "salah",
	})
	req, _ = http.NewRequest("POST", "/auth/login", bytes.NewBuffer(wrongPayload))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Token dipakai untuk mengakses route terlindungi
	req, _ = http.NewRequest("GET", "/master/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Tanpa token -> 401
	req, _ = http.NewRequest("GET", "/master/profile", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserSoftDeleteMemblokirLogin(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForUsers("user_soft_delete")
	router := setupUserRouter(db)

	// Daftarkan dua user: satu admin aktif, satu yang akan dihapus
	for _, email := range []string{"aktif@example.com", "target@example.com"} {
		payload, _ := json.Marshal(map[string]string{
			"name": "User", "email": email, "password": "password123", "role": "admin",
		})
		req, _ := http.NewRequest("POST", "/auth/register", bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	var admin, target models.User
	db.Where("email = ?", "aktif@example.com").First(&admin)
	db.Where("email = ?", "target@example.com").First(&target)

	token, err := utils.GenerateToken(admin.ID, admin.Role)
	assert.NoError(t, err)

	req, _ := http.NewRequest("PUT", "/master/user/soft-delete/"+strconv.Itoa(int(target.ID)), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// User yang di-soft-delete tidak bisa login
	payload, _ := json.Marshal(map[string]string{
		"email": "target@example.com", "password": "password123",
	})
	req, _ = http.NewRequest("POST", "/auth/login", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Restore mengembalikan akses
	req, _ = http.NewRequest("PUT", "/master/user/restore/"+strconv.Itoa(int(target.ID)), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("POST", "/auth/login", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
