package http

import (
	"net/http"
	"strconv"

	"commerce-api/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	orders   *services.OrderService
	payments *services.PaymentService
	products *services.ProductService
}

func NewHandler(orders *services.OrderService, payments *services.PaymentService, products *services.ProductService) *Handler {
	return &Handler{orders: orders, payments: payments, products: products}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.POST("/orders", h.CreateOrder)
	api.GET("/orders/:orderId/history", h.GetOrderHistory)
	api.POST("/payments/approve", h.ApprovePayment)
	api.GET("/products", h.GetAllProducts)
	api.GET("/products/:productId", h.GetProduct)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newCreateOrderResponse(order))
}

func (h *Handler) ApprovePayment(c *gin.Context) {
	var req ApprovePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	result, err := h.payments.ApprovePayment(c.Request.Context(), req.OrderID, req.PaymentKey, req.Amount)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newApprovePaymentResponse(result))
}

func (h *Handler) GetOrderHistory(c *gin.Context) {
	orderID := c.Param("orderId")

	rows, err := h.orders.GetOrderHistory(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]OrderHistoryResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, OrderHistoryResponse{
			ID:        row.ID,
			OrderID:   row.OrderID,
			EventType: row.EventType,
			Payload:   row.PayloadJSON,
			CreatedAt: row.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetAllProducts(c *gin.Context) {
	products, err := h.products.GetAllProducts(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, newProductResponse(&products[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		writeBindingError(c, err)
		return
	}

	product, err := h.products.GetProduct(c.Request.Context(), productID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProductResponse(product))
}
