package controllers

import (
	"github.com/Dung-L3/SEP490-G20-sub000/entity"
	"github.com/Dung-L3/SEP490-G20-sub000/pkg/resp"
	"github.com/Dung-L3/SEP490-G20-sub000/repository"
	"github.com/Dung-L3/SEP490-G20-sub000/services"

	"github.com/gin-gonic/gin"
)

// QRController is the unauthenticated guest surface. Everything hangs off the
// per-table token printed on the QR card; a bad token is the only auth failure.
type QRController struct {
	Tables  *repository.TableRepository
	Catalog *services.CatalogService
	Orders  *services.OrderService
}

func NewQRController(tables *repository.TableRepository, catalog *services.CatalogService, orders *services.OrderService) *QRController {
	return &QRController{Tables: tables, Catalog: catalog, Orders: orders}
}

func (qc *QRController) table(c *gin.Context) (*entity.Table, bool) {
	t, err := qc.Tables.GetByQRToken(c.Param("token"))
	if err != nil {
		resp.NotFound(c, "table not found")
		return nil, false
	}
	return t, true
}

// GET /qr/:token returns the table info plus the active menu.
func (qc *QRController) Menu(c *gin.Context) {
	t, ok := qc.table(c)
	if !ok {
		return
	}
	categories, err := qc.Catalog.ListCategories()
	if err != nil {
		fail(c, err)
		return
	}
	dishes, err := qc.Catalog.ListDishes(0, true)
	if err != nil {
		fail(c, err)
		return
	}
	combos, err := qc.Catalog.ListCombos(true)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{
		"table":      gin.H{"id": t.ID, "name": t.TableName, "capacity": t.Capacity},
		"categories": categories,
		"dishes":     dishes,
		"combos":     combos,
	})
}

type qrOrderReq struct {
	CustomerName string                 `json:"customerName"`
	Phone        string                 `json:"phone"`
	Notes        string                 `json:"notes"`
	Items        []services.OrderItemIn `json:"items" binding:"required"`
}

// POST /qr/:token/orders. Guests can only order onto their own table, and
// whatever prices the client sends are ignored.
func (qc *QRController) CreateOrder(c *gin.Context) {
	t, ok := qc.table(c)
	if !ok {
		return
	}
	var req qrOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := qc.Orders.Create(&services.CreateOrderReq{
		OrderType:    entity.OrderQR,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		TableID:      &t.ID,
		Notes:        req.Notes,
		Items:        req.Items,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /qr/:token/orders/:id lets guests poll their own order's progress.
func (qc *QRController) OrderStatus(c *gin.Context) {
	t, ok := qc.table(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	out, err := qc.Orders.Detail(id)
	if err != nil {
		fail(c, err)
		return
	}
	if out.TableID == nil || *out.TableID != t.ID {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, out)
}
