// Package httpapi отдаёт заказы и справочники статусов по HTTP только на чтение.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ministore/internal/domain"
	"github.com/vladislavdragonenkov/ministore/internal/service/orders"
)

const defaultRequestTimeout = 5 * time.Second

// OrderReader: часть сервиса заказов, нужная HTTP-слою.
type OrderReader interface {
	Details(ctx context.Context, orderID int64) (orders.Details, error)
	ListStoreOrders(ctx context.Context, storeID int64, status domain.OrderStatus) ([]domain.Order, error)
}

// Handler обслуживает маршруты /api/v1.
type Handler struct {
	orders  OrderReader
	logger  *log.Entry
	timeout time.Duration
}

// NewHandler создаёт обработчик. timeout <= 0 заменяется значением по умолчанию.
func NewHandler(reader OrderReader, logger *log.Entry, timeout time.Duration) *Handler {
	if logger == nil {
		logger = log.WithField("component", "httpapi")
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Handler{orders: reader, logger: logger, timeout: timeout}
}

// RegisterRoutes вешает маршруты на группу.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/statuses", h.ListStatuses)
	rg.GET("/orders/:id", h.GetOrder)
	rg.GET("/stores/:store_id/orders", h.ListStoreOrders)
}

// NewRouter собирает gin.Engine с recovery и журналом запросов.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.requestLogger())
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

// ListStatuses отдаёт справочники статусов заказа, оплаты и доставки с ключами перевода.
func (h *Handler) ListStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, statusesResponse{
		Order:     toStatusDTOs(domain.OrderStatuses(), domain.OrderStatus.Label),
		Payment:   toStatusDTOs(domain.PaymentStatuses(), domain.PaymentStatus.Label),
		Logistics: toStatusDTOs(domain.LogisticsStatuses(), domain.LogisticsStatus.Label),
	})
}

// GetOrder отдаёт заказ вместе со всеми дочерними записями.
func (h *Handler) GetOrder(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	details, err := h.orders.Details(ctx, orderID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toDetailsResponse(details))
}

// ListStoreOrders отдаёт заказы магазина в статусе из обязательного параметра status.
func (h *Handler) ListStoreOrders(c *gin.Context) {
	storeID, ok := pathID(c, "store_id")
	if !ok {
		return
	}
	raw, ok := c.GetQuery("status")
	if !ok {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "status is required"})
		return
	}
	status, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "status must be an integer"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	list, err := h.orders.ListStoreOrders(ctx, storeID, domain.OrderStatus(status))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": toOrderDTOs(list)})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case domain.IsValidationError(err):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, errorResponse{Error: "storage timeout"})
	default:
		h.logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: name + " must be a positive integer"})
		return 0, false
	}
	return id, true
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.WithFields(log.Fields{
			"method":      c.Request.Method,
			"path":        c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		}).Debug("http request")
	}
}
