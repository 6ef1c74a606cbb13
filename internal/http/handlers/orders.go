package handlers

import (
	"errors"
	"io"
	"net/http"

	"cucisepatu/internal/domain"
	"cucisepatu/internal/http/middleware"
	"cucisepatu/internal/repositories"
	"cucisepatu/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	msgFetchFailed  = "failed to fetch data"
	msgCreateFailed = "failed to add data"
	msgUpdateFailed = "failed to update data"
	msgDeleteFailed = "failed to delete data"
	msgReceiptFail  = "failed to generate receipt"

	msgCreated = "order created"
	msgUpdated = "order updated"
	msgDeleted = "order deleted"
)

// OrderHandler serves /items.
type OrderHandler struct {
	Store  repositories.OrderStore
	Logger zerolog.Logger
}

func (h OrderHandler) service(c *gin.Context) services.OrderService {
	return services.OrderService{Store: h.Store, Logger: h.Logger, RequestID: middleware.GetRequestID(c)}
}

// GET /items?status=Selesai
func (h OrderHandler) List(c *gin.Context) {
	orders, err := h.service(c).List(c.Request.Context(), c.Query("status"))
	if err != nil {
		RespondDomainError(c, err, msgFetchFailed)
		return
	}
	respondList(c, orders)
}

// GET /items/:id
func (h OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.service(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err, msgFetchFailed)
		return
	}
	respondOK(c, http.StatusOK, "", order)
}

// POST /items
func (h OrderHandler) Create(c *gin.Context) {
	var in services.CreateOrderInput
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondDomainError(c, domain.ValidationError{Msg: services.MsgRequiredFields}, msgCreateFailed)
		return
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		if errors.Is(err, io.EOF) {
			RespondDomainError(c, domain.ValidationError{Msg: services.MsgRequiredFields}, msgCreateFailed)
			return
		}
		RespondError(c, http.StatusBadRequest, services.MsgInvalidPayload, err)
		return
	}

	order, err := h.service(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err, msgCreateFailed)
		return
	}
	respondOK(c, http.StatusCreated, msgCreated, order)
}

// PUT /items/:id
func (h OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	raw, err := readBody(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, services.MsgInvalidPayload, err)
		return
	}

	order, err := h.service(c).Update(c.Request.Context(), id, raw)
	if err != nil {
		RespondDomainError(c, err, msgUpdateFailed)
		return
	}
	respondOK(c, http.StatusOK, msgUpdated, order)
}

// DELETE /items/:id
func (h OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err, msgDeleteFailed)
		return
	}
	respondOK(c, http.StatusOK, msgDeleted, nil)
}

// GET /items/:id/receipt returns the order receipt PDF (inline).
func (h OrderHandler) Receipt(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	svc := services.DocsService{Store: h.Store, Logger: h.Logger, RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := svc.GenerateReceipt(c.Request.Context(), id)
	if err != nil {
		msg := msgReceiptFail
		if domain.IsStore(err) {
			msg = msgFetchFailed
		}
		RespondDomainError(c, err, msg)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
