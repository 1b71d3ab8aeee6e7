package payment

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"courtbook/internal/pkg/payhere"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	loggerf func(format string, args ...interface{})
}

func NewHandler(service *Service, loggerf func(format string, args ...interface{})) *Handler {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Handler{service: service, loggerf: loggerf}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/payhere/hash", h.IssueHash)
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/payhere/notify", h.Notify)
}

// IssueHash computes the checkout signature for a pending payment. The
// merchant secret never leaves the server; the client only ever sees the
// derived hash.
func (h *Handler) IssueHash(c *gin.Context) {
	var req HashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.loggerf("level=error msg=invalid payhere hash payload err=%v", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.service.GenerateHash(req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingOrderID), errors.Is(err, payhere.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrNotConfigured):
			h.loggerf("level=error msg=payhere hash requested without merchant credentials")
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Notify handles the server-to-server gateway callback. It always answers
// HTTP 200 regardless of the verification outcome: a non-200 would make the
// gateway retry endlessly, so failures are reported in the body instead.
func (h *Handler) Notify(c *gin.Context) {
	rawBody, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(strings.NewReader(string(rawBody)))
	_ = c.Request.ParseForm()

	n := GatewayNotification{
		MerchantID: c.PostForm("merchant_id"),
		OrderID:    c.PostForm("order_id"),
		Amount:     c.PostForm("payhere_amount"),
		Currency:   c.PostForm("payhere_currency"),
		StatusCode: c.PostForm("status_code"),
		MD5Sig:     c.PostForm("md5sig"),
	}

	res := h.service.HandleNotification(c.Request.Context(), n, string(rawBody))
	h.loggerf("level=info msg=payhere notification handled order_id=%s verified=%t updated=%t", res.OrderID, res.Verified, res.Updated)
	c.JSON(http.StatusOK, res)
}
