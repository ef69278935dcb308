package controllers

import (
	"fmt"

	"github.com/Dung-L3/SEP490-G20-sub000/pkg/resp"
	"github.com/Dung-L3/SEP490-G20-sub000/services"
	"github.com/Dung-L3/SEP490-G20-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BillingController struct {
	Service *services.BillingService
}

func NewBillingController(svc *services.BillingService) *BillingController {
	return &BillingController{Service: svc}
}

// POST /orders/:id/invoice
func (bc *BillingController) GenerateInvoice(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	inv, err := bc.Service.GenerateInvoice(orderID, utils.CurrentStaffID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, inv)
}

type discountReq struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// POST /orders/:id/discount (manager)
func (bc *BillingController) ApplyDiscount(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req discountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := bc.Service.ApplyDiscount(orderID, req.Amount); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"orderId": orderID, "discount": req.Amount})
}

type paymentReq struct {
	MethodID uint            `json:"methodId" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Notes    string          `json:"notes"`
}

// POST /orders/:id/payments
func (bc *BillingController) ProcessPayment(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req paymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rec, err := bc.Service.ProcessPayment(orderID, req.MethodID, req.Amount, req.Notes)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, rec)
}

type settleReq struct {
	MethodID uint   `json:"methodId" binding:"required"`
	Notes    string `json:"notes"`
}

// POST /orders/:id/settle pays in full, completes the order and frees the table.
func (bc *BillingController) Settle(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req settleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := bc.Service.ProcessCompletePayment(orderID, req.MethodID, utils.CurrentStaffID(c), req.Notes)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /invoices/:id/pdf
func (bc *BillingController) ExportPDF(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	pdf, err := bc.Service.ExportInvoicePDF(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%d.pdf", id))
	c.Data(200, "application/pdf", pdf)
}
