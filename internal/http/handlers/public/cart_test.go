package public

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/techmarket-api/internal/config"
	"github.com/techmarket-api/internal/models"
	"github.com/techmarket-api/internal/provider"
	"github.com/techmarket-api/internal/queue"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCartTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:public_cart_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, models.MigrateWith(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	queueClient, err := queue.NewClient(nil)
	require.NoError(t, err)

	h := New(provider.NewContainerWithDB(&config.Config{}, db, queueClient))
	r := gin.New()
	r.GET("/cart/:user_id", h.GetCart)
	r.POST("/cart/:user_id/items", h.AddCartItem)
	r.PATCH("/cart/:user_id/items/:product_id", h.UpdateCartItem)
	return r, db
}

func performJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddCartItemValidation(t *testing.T) {
	r, db := newCartTestServer(t)
	require.NoError(t, db.Create(&models.User{Username: "u", Email: "u@example.com", PasswordHash: "x"}).Error)
	require.NoError(t, db.Create(&models.Product{
		Name:        "Keyboard",
		Category:    "Accessories",
		Price:       models.MustMoney("49.90"),
		StockCount:  2,
		IsAvailable: true,
	}).Error)

	cases := []struct {
		name string
		body string
		want int
	}{
		{"missing product", `{"quantity":1}`, http.StatusBadRequest},
		{"zero quantity", `{"product_id":1,"quantity":0}`, http.StatusBadRequest},
		{"negative quantity", `{"product_id":1,"quantity":-1}`, http.StatusBadRequest},
		{"unknown product", `{"product_id":42}`, http.StatusNotFound},
		{"malformed json", `{"product_id":`, http.StatusBadRequest},
		{"over stock", `{"product_id":1,"quantity":3}`, http.StatusBadRequest},
		{"ok", `{"product_id":1,"quantity":2}`, http.StatusCreated},
	}
	for _, tc := range cases {
		w := performJSON(r, http.MethodPost, "/cart/1/items", tc.body)
		assert.Equal(t, tc.want, w.Code, "%s: %s", tc.name, w.Body.String())
	}
}

func TestUpdateCartItemRequiresQuantity(t *testing.T) {
	r, db := newCartTestServer(t)
	require.NoError(t, db.Create(&models.User{Username: "u", Email: "u@example.com", PasswordHash: "x"}).Error)

	w := performJSON(r, http.MethodPatch, "/cart/1/items/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Msg string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Msg, "quantity is required")

	w = performJSON(r, http.MethodPatch, "/cart/1/items/1", `{"quantity":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCartEmpty(t *testing.T) {
	r, db := newCartTestServer(t)
	require.NoError(t, db.Create(&models.User{Username: "u", Email: "u@example.com", PasswordHash: "x"}).Error)

	w := performJSON(r, http.MethodGet, "/cart/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":1,"items":[],"total_items":0,"total_price":"0.00"}`, extractData(t, w))
}

func extractData(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return string(resp.Data)
}
