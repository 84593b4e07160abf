package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sjsm-storefront/internal/domain"
)

func sampleOrder() (domain.Order, string, domain.Address) {
	order := domain.Order{
		ID: "ORD-abc123",
		Items: []domain.CartItem{
			{Product: domain.Product{ID: 1, Name: "Premium Gel Pen Set"}, Quantity: 2},
			{Product: domain.Product{ID: 2, Name: "A5 Hardcover Notebook"}, Quantity: 1},
		},
		Total:        820,
		PaymentMode:  domain.PaymentMethodUPI,
		DeliveryDate: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	}
	addr := domain.Address{
		FullName: "Priya Sharma",
		Street:   "12 MG Road",
		City:     "Jaipur",
		State:    "Rajasthan",
		Zip:      "302001",
		Phone:    "9876543210",
	}
	return order, "priya@example.com", addr
}

func TestSummarize(t *testing.T) {
	order, email, addr := sampleOrder()

	got := Summarize(order, email, addr)

	assert.Equal(t, OrderSummary{
		OrderID:       "ORD-abc123",
		CustomerName:  "Priya Sharma",
		Email:         "priya@example.com",
		Phone:         "9876543210",
		StreetAddress: "12 MG Road",
		City:          "Jaipur",
		Zipcode:       "302001",
		OrderedItem:   "Premium Gel Pen Set (x2), A5 Hardcover Notebook (x1)",
		PaymentAmount: "820",
		PaymentMode:   "UPI",
		DeliveryDate:  "2026-03-15",
	}, got)
}

func TestClient_SyncPostsFlattenedPayload(t *testing.T) {
	var received map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, zap.NewNop())
	order, email, addr := sampleOrder()

	require.NoError(t, client.Sync(context.Background(), Summarize(order, email, addr)))

	assert.Equal(t, "ORD-abc123", received["order_id"])
	assert.Equal(t, "Premium Gel Pen Set (x2), A5 Hardcover Notebook (x1)", received["ordered_item"])
	assert.Equal(t, "820", received["payment_amount"])
	assert.Equal(t, "2026-03-15", received["delivery_date"])
}

func TestClient_SyncReportsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, zap.NewNop())
	order, email, addr := sampleOrder()

	err := client.Sync(context.Background(), Summarize(order, email, addr))
	assert.ErrorContains(t, err, "502")
}

func TestClient_SyncDisabledWithoutURL(t *testing.T) {
	client := NewClient("", 5*time.Second, zap.NewNop())
	order, email, addr := sampleOrder()

	assert.NoError(t, client.Sync(context.Background(), Summarize(order, email, addr)))
}

func TestClient_SyncAsyncDoesNotBlockOnFailure(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		close(done)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, zap.NewNop())
	order, email, addr := sampleOrder()

	client.SyncAsync(Summarize(order, email, addr))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("sync request never reached the endpoint")
	}
}
