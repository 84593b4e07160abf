package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sjsm-storefront/internal/catalog"
	"sjsm-storefront/internal/domain"
	"sjsm-storefront/internal/middleware"
	"sjsm-storefront/internal/service"
)

const testSecret = "test-secret"

func sessionToken(t *testing.T, userID string) string {
	t.Helper()

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newCartRouter(t *testing.T) chi.Router {
	t.Helper()

	store := catalog.NewStore([]domain.Product{
		{ID: 1, Name: "Premium Gel Pen Set", Price: 250, Category: "Pens"},
		{ID: 2, Name: "A5 Hardcover Notebook", Price: 350, Category: "Registers"},
	})

	logger := zap.NewNop()
	r := chi.NewRouter()
	handler := NewCartHandler(service.NewCartService(), store, logger)
	handler.RegisterRoutes(r, middleware.SessionMiddleware(testSecret, logger))
	return r
}

func cartRequest(t *testing.T, r chi.Router, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) service.CartView {
	t.Helper()

	var view service.CartView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	return view
}

func TestCartHandler_RequiresSession(t *testing.T) {
	r := newCartRouter(t)

	rec := cartRequest(t, r, http.MethodGet, "/api/cart", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartHandler_AddItemAndGet(t *testing.T) {
	r := newCartRouter(t)
	token := sessionToken(t, "u-1")

	rec := cartRequest(t, r, http.MethodPost, "/api/cart/items", `{"product_id":1}`, token)
	require.Equal(t, http.StatusOK, rec.Code)

	view := decodeView(t, rec)
	assert.Equal(t, 1, view.ItemCount)
	assert.Equal(t, 250, view.Subtotal)

	rec = cartRequest(t, r, http.MethodGet, "/api/cart", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decodeView(t, rec).ItemCount)
}

func TestCartHandler_AddItemUnknownProduct(t *testing.T) {
	r := newCartRouter(t)

	rec := cartRequest(t, r, http.MethodPost, "/api/cart/items", `{"product_id":999}`, sessionToken(t, "u-1"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartHandler_SetQuantityAndRemove(t *testing.T) {
	r := newCartRouter(t)
	token := sessionToken(t, "u-1")

	cartRequest(t, r, http.MethodPost, "/api/cart/items", `{"product_id":1}`, token)

	rec := cartRequest(t, r, http.MethodPut, "/api/cart/items/1", `{"quantity":4}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1000, decodeView(t, rec).Subtotal)

	rec = cartRequest(t, r, http.MethodPut, "/api/cart/items/1", `{"quantity":0}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, decodeView(t, rec).ItemCount)

	cartRequest(t, r, http.MethodPost, "/api/cart/items", `{"product_id":2}`, token)
	rec = cartRequest(t, r, http.MethodDelete, "/api/cart/items/2", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, decodeView(t, rec).ItemCount)
}

func TestCartHandler_SetQuantityBadProductID(t *testing.T) {
	r := newCartRouter(t)

	rec := cartRequest(t, r, http.MethodPut, "/api/cart/items/abc", `{"quantity":2}`, sessionToken(t, "u-1"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_CouponLifecycle(t *testing.T) {
	r := newCartRouter(t)
	token := sessionToken(t, "u-1")

	cartRequest(t, r, http.MethodPost, "/api/cart/items", `{"product_id":2}`, token)
	cartRequest(t, r, http.MethodPut, "/api/cart/items/2", `{"quantity":2}`, token)

	rec := cartRequest(t, r, http.MethodPost, "/api/cart/coupon", `{"code":"WELCOME50"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeView(t, rec)
	assert.Equal(t, domain.CouponWelcome50, view.CouponCode)
	assert.Equal(t, 50, view.Discount)

	rec = cartRequest(t, r, http.MethodDelete, "/api/cart/coupon", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeView(t, rec).CouponCode)
}

func TestCartHandler_CouponRejections(t *testing.T) {
	r := newCartRouter(t)
	token := sessionToken(t, "u-1")

	cartRequest(t, r, http.MethodPost, "/api/cart/items", `{"product_id":1}`, token)

	rec := cartRequest(t, r, http.MethodPost, "/api/cart/coupon", `{"code":"BOGUS"}`, token)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Subtotal 250 is below the WELCOME50 minimum.
	rec = cartRequest(t, r, http.MethodPost, "/api/cart/coupon", `{"code":"WELCOME50"}`, token)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCartHandler_Clear(t *testing.T) {
	r := newCartRouter(t)
	token := sessionToken(t, "u-1")

	cartRequest(t, r, http.MethodPost, "/api/cart/items", `{"product_id":1}`, token)
	cartRequest(t, r, http.MethodPost, "/api/cart/items", `{"product_id":2}`, token)

	rec := cartRequest(t, r, http.MethodDelete, "/api/cart", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, decodeView(t, rec).ItemCount)
}
