package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"courtbook/internal/config"
	"courtbook/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(store bookingStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := NewService(store, &mockAudit{}, nil, config.PayHereConfig{
		MerchantID:     testMerchantID,
		MerchantSecret: testSecret,
		Currency:       "LKR",
	}, nil)
	h := NewHandler(svc, nil)

	r := gin.New()
	v1 := r.Group("/api/v1")
	h.RegisterProtectedRoutes(v1)
	h.RegisterPublicRoutes(v1)
	return r
}

func TestIssueHash_OK(t *testing.T) {
	r := newTestRouter(&mockBookingStore{})

	body := `{"orderId":"ORDER1","amount":1000,"currency":"LKR"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/payhere/hash", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp HashResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Hash, 32)
	assert.Equal(t, strings.ToUpper(resp.Hash), resp.Hash)
	assert.Equal(t, "1000.00", resp.Amount)
	assert.Equal(t, testMerchantID, resp.MerchantID)
	assert.Equal(t, "LKR", resp.Currency)
}

func TestIssueHash_StringAmountAndDefaultCurrency(t *testing.T) {
	r := newTestRouter(&mockBookingStore{})

	body := `{"orderId":"ORDER1","amount":"2500"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/payhere/hash", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp HashResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2500.00", resp.Amount)
	assert.Equal(t, "LKR", resp.Currency)
}

func TestIssueHash_MissingOrderID(t *testing.T) {
	r := newTestRouter(&mockBookingStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/payhere/hash", strings.NewReader(`{"amount":1000}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestIssueHash_InvalidAmount(t *testing.T) {
	r := newTestRouter(&mockBookingStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/payhere/hash", strings.NewReader(`{"orderId":"ORDER1","amount":"abc"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIssueHash_Unconfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewService(&mockBookingStore{}, &mockAudit{}, nil, config.PayHereConfig{Currency: "LKR"}, nil)
	h := NewHandler(svc, nil)
	r := gin.New()
	v1 := r.Group("/api/v1")
	h.RegisterProtectedRoutes(v1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/payhere/hash", strings.NewReader(`{"orderId":"ORDER1","amount":1000}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func postNotify(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/payhere/notify", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestNotify_RoundTrip(t *testing.T) {
	store := &mockBookingStore{returnID: 42}
	r := newTestRouter(store)

	form := url.Values{}
	form.Set("merchant_id", testMerchantID)
	form.Set("order_id", testOrderID)
	form.Set("payhere_amount", "1000.00")
	form.Set("payhere_currency", "LKR")
	form.Set("status_code", "2")
	form.Set("md5sig", notificationSig(testOrderID, "1000.00", "LKR", "2"))

	w := postNotify(r, form)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp NotifyResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Verified)
	assert.True(t, resp.Updated)
	assert.Equal(t, testOrderID, resp.OrderID)
	assert.Equal(t, "2", resp.StatusCode)
}

func TestNotify_BadSignatureStill200(t *testing.T) {
	store := &mockBookingStore{returnID: 42}
	r := newTestRouter(store)

	form := url.Values{}
	form.Set("merchant_id", testMerchantID)
	form.Set("order_id", testOrderID)
	form.Set("payhere_amount", "1000.00")
	form.Set("payhere_currency", "LKR")
	form.Set("status_code", "2")
	form.Set("md5sig", "DEADBEEFDEADBEEFDEADBEEFDEADBEEF")

	w := postNotify(r, form)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp NotifyResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Verified)
	assert.False(t, resp.Updated)
	assert.Equal(t, 0, store.calls)
}

func TestNotify_MissingFieldsStill200(t *testing.T) {
	r := newTestRouter(&mockBookingStore{})

	w := postNotify(r, url.Values{})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp NotifyResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Verified)
	assert.False(t, resp.Updated)
	assert.Equal(t, "", resp.OrderID)
}

// Two identical notifications must agree on the verdict; the write is
// idempotent for a fixed status code so both may land.
func TestNotify_ConcurrentDuplicates(t *testing.T) {
	store := &concurrentStore{id: 42}
	r := newTestRouter(store)

	form := url.Values{}
	form.Set("merchant_id", testMerchantID)
	form.Set("order_id", testOrderID)
	form.Set("payhere_amount", "1000.00")
	form.Set("payhere_currency", "LKR")
	form.Set("status_code", "2")
	form.Set("md5sig", notificationSig(testOrderID, "1000.00", "LKR", "2"))

	results := make(chan *httptest.ResponseRecorder, 2)
	for i := 0; i < 2; i++ {
		go func() {
			results <- postNotify(r, form)
		}()
	}
	for i := 0; i < 2; i++ {
		w := <-results
		assert.Equal(t, http.StatusOK, w.Code)
		var resp NotifyResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Verified)
		assert.True(t, resp.Updated)
	}
}

type concurrentStore struct {
	mu sync.Mutex
	id int64
}

func (s *concurrentStore) UpdateStatusByOrderID(ctx context.Context, orderID string, status domain.BookingStatus, payment domain.PaymentStatus) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id, nil
}
