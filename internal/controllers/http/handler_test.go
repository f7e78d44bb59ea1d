package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"commerce-api/internal/domain"
	"commerce-api/internal/infra/pg"
	"commerce-api/internal/mocks"
	"commerce-api/internal/repository"
	"commerce-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type handlerFixture struct {
	productRepo *mocks.MockProductRepository
	orderRepo   *mocks.MockOrderRepository
	paymentRepo *mocks.MockPaymentRepository
	historyRepo *mocks.MockOrderHistoryRepository
	router      *gin.Engine
}

func newHandlerFixture() *handlerFixture {
	gin.SetMode(gin.TestMode)

	f := &handlerFixture{
		productRepo: new(mocks.MockProductRepository),
		orderRepo:   new(mocks.MockOrderRepository),
		paymentRepo: new(mocks.MockPaymentRepository),
		historyRepo: new(mocks.MockOrderHistoryRepository),
	}

	txm := &mocks.FakeTxManager{Repos: &repository.Repositories{
		Products:  f.productRepo,
		Orders:    f.orderRepo,
		Payments:  f.paymentRepo,
		Histories: f.historyRepo,
	}}

	publisher := new(mocks.MockPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	productService := services.NewProductService(f.productRepo)
	orderService := services.NewOrderService(txm, f.orderRepo, f.historyRepo, productService, publisher)
	paymentService := services.NewPaymentService(txm, f.paymentRepo, orderService, pg.NewMockClient(), publisher)

	handler := NewHandler(orderService, paymentService, productService)
	f.router = gin.New()
	handler.RegisterRoutes(f.router)
	return f
}

func (f *handlerFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var out ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHandler_CreateOrder(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newHandlerFixture()
		f.productRepo.On("FindByID", mock.Anything, uint64(1)).Return(&domain.Product{
			ProductID: 1, Name: "Wireless Headphones", BasePrice: 159000,
			DiscountPrice: 129000, AvailableStock: 50, Available: true,
		}, nil)
		f.orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
		f.historyRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.OrderHistory")).Return(nil)

		w := f.do(t, http.MethodPost, "/api/orders", gin.H{"userId": 1, "productId": 1, "quantity": 2})

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp CreateOrderResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(258000), resp.TotalAmount)
		assert.Equal(t, domain.StatusPendingPayment, resp.Status)
	})

	t.Run("unknown product maps to 404", func(t *testing.T) {
		f := newHandlerFixture()
		f.productRepo.On("FindByID", mock.Anything, uint64(999)).Return(nil, nil)

		w := f.do(t, http.MethodPost, "/api/orders", gin.H{"userId": 1, "productId": 999, "quantity": 2})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "PRODUCT_NOT_FOUND", decodeError(t, w).Code)
	})

	t.Run("invalid quantity maps to 400 with domain code", func(t *testing.T) {
		f := newHandlerFixture()

		w := f.do(t, http.MethodPost, "/api/orders", gin.H{"userId": 1, "productId": 1, "quantity": 0})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "QUANTITY_INVALID", decodeError(t, w).Code)
	})

	t.Run("malformed body maps to 400 validation failure", func(t *testing.T) {
		f := newHandlerFixture()

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, w).Code)
	})
}

func TestHandler_ApprovePayment(t *testing.T) {
	order := &domain.Order{
		OrderID: "ORD-20260831-ab12cd34", UserID: 1, ProductID: 1,
		Quantity: 2, TotalAmount: 258000, Status: domain.StatusPendingPayment,
	}

	t.Run("approved", func(t *testing.T) {
		f := newHandlerFixture()
		o := *order
		f.orderRepo.On("FindByID", mock.Anything, o.OrderID).Return(&o, nil)
		f.paymentRepo.On("FindLatestByOrderID", mock.Anything, o.OrderID).Return(nil, nil)
		f.paymentRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)
		f.orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
		f.productRepo.On("FindByID", mock.Anything, uint64(1)).Return(&domain.Product{
			ProductID: 1, DiscountPrice: 129000, AvailableStock: 10, Available: true,
		}, nil)
		f.productRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)
		f.historyRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.OrderHistory")).Return(nil)

		w := f.do(t, http.MethodPost, "/api/payments/approve", gin.H{
			"orderId": o.OrderID, "paymentKey": "pay_key", "amount": 258000,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp ApprovePaymentResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domain.PaymentApproved, resp.PaymentStatus)
		assert.Equal(t, domain.StatusPaid, resp.OrderStatus)
	})

	t.Run("paid order maps to 409", func(t *testing.T) {
		f := newHandlerFixture()
		o := *order
		o.Status = domain.StatusPaid
		f.orderRepo.On("FindByID", mock.Anything, o.OrderID).Return(&o, nil)

		w := f.do(t, http.MethodPost, "/api/payments/approve", gin.H{
			"orderId": o.OrderID, "paymentKey": "pay_key", "amount": 258000,
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "ORDER_NOT_PAYABLE", decodeError(t, w).Code)
	})

	t.Run("amount mismatch maps to 400", func(t *testing.T) {
		f := newHandlerFixture()
		o := *order
		f.orderRepo.On("FindByID", mock.Anything, o.OrderID).Return(&o, nil)
		f.paymentRepo.On("FindLatestByOrderID", mock.Anything, o.OrderID).Return(nil, nil)

		w := f.do(t, http.MethodPost, "/api/payments/approve", gin.H{
			"orderId": o.OrderID, "paymentKey": "pay_key", "amount": 1,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "AMOUNT_MISMATCH", decodeError(t, w).Code)
	})

	t.Run("unknown order maps to 404", func(t *testing.T) {
		f := newHandlerFixture()
		f.orderRepo.On("FindByID", mock.Anything, "ORD-20260831-missing0").Return(nil, nil)

		w := f.do(t, http.MethodPost, "/api/payments/approve", gin.H{
			"orderId": "ORD-20260831-missing0", "paymentKey": "pay_key", "amount": 258000,
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "ORDER_NOT_FOUND", decodeError(t, w).Code)
	})
}

func TestHandler_GetOrderHistory(t *testing.T) {
	f := newHandlerFixture()
	f.historyRepo.On("FindByOrderID", mock.Anything, "ORD-20260831-ab12cd34").
		Return([]domain.OrderHistory{
			{ID: 1, OrderID: "ORD-20260831-ab12cd34", EventType: domain.EventOrderCreated, PayloadJSON: "{}"},
			{ID: 2, OrderID: "ORD-20260831-ab12cd34", EventType: domain.EventPaymentApproved, PayloadJSON: "{}"},
		}, nil)

	w := f.do(t, http.MethodGet, "/api/orders/ORD-20260831-ab12cd34/history", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var rows []OrderHistoryResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 2)
	assert.Equal(t, domain.EventOrderCreated, rows[0].EventType)
	assert.Equal(t, domain.EventPaymentApproved, rows[1].EventType)
}

func TestHandler_GetProducts(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		f := newHandlerFixture()
		f.productRepo.On("FindAll", mock.Anything).Return([]domain.Product{
			{ProductID: 1, Name: "Wireless Headphones", DiscountPrice: 129000, AvailableStock: 50, Available: true},
			{ProductID: 2, Name: "Discontinued Webcam", DiscountPrice: 39000, AvailableStock: 10, Available: false},
		}, nil)

		w := f.do(t, http.MethodGet, "/api/products", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var out []ProductResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Len(t, out, 2)
		assert.True(t, out[0].Available)
		assert.False(t, out[1].Available)
	})

	t.Run("missing product maps to 404", func(t *testing.T) {
		f := newHandlerFixture()
		f.productRepo.On("FindByID", mock.Anything, uint64(42)).Return(nil, nil)

		w := f.do(t, http.MethodGet, "/api/products/42", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "PRODUCT_NOT_FOUND", decodeError(t, w).Code)
	})
}
