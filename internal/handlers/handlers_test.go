package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yptkiasma/admin-backend/db"
	"github.com/yptkiasma/admin-backend/internal/auth"
	"github.com/yptkiasma/admin-backend/internal/models"
	"github.com/yptkiasma/admin-backend/internal/router"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTest wires the handlers against a fresh in-memory database and
// returns the router plus a valid session token for the seeded admin.
func setupTest(t *testing.T) (*gin.Engine, models.User, string) {
	t.Helper()

	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000",
		strings.ReplaceAll(t.Name(), "/", "_"))

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	db.DB = gdb
	require.NoError(t, db.MigrateDatabase())

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := models.User{
		Email:    "admin@yptkiasma.org",
		Name:     "Admin YPT Kiasma",
		Password: string(hash),
		Role:     models.RoleSuperAdmin,
	}
	require.NoError(t, db.DB.Create(&admin).Error)

	token, err := auth.GenerateJWT(admin.ID, admin.Email)
	require.NoError(t, err)

	return router.NewRouter(), admin, token
}

func doRequest(t *testing.T, r http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func dbFirstDonation(id string) error {
	var donation models.Donation
	return db.DB.First(&donation, "id = ?", id).Error
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
