package controllers

import (
	"strconv"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"
	"github.com/Dung-L3/SEP490-G20-sub000/pkg/resp"
	"github.com/Dung-L3/SEP490-G20-sub000/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func queryID(c *gin.Context, raw, name string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := oc.Service.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders/active?includeUnpaid=1
func (oc *OrderController) Active(c *gin.Context) {
	includeUnpaid := c.Query("includeUnpaid") == "1" || c.Query("includeUnpaid") == "true"
	orders, err := oc.Service.ActiveOrders(includeUnpaid)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	out, err := oc.Service.Detail(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /tables/:id/orders
func (oc *OrderController) ByTable(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	orders, err := oc.Service.OrdersByTable(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// POST /orders/:id/items
func (oc *OrderController) AddItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var item services.OrderItemIn
	if err := c.ShouldBindJSON(&item); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := oc.Service.AddItem(id, item); err != nil {
		fail(c, err)
		return
	}
	out, err := oc.Service.Detail(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

type updateItemReq struct {
	Qty   int    `json:"qty" binding:"required,min=1"`
	Notes string `json:"notes"`
}

// PATCH /orders/:id/items/:itemId
func (oc *OrderController) UpdateItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	var req updateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := oc.Service.UpdateItem(id, itemID, req.Qty, req.Notes); err != nil {
		fail(c, err)
		return
	}
	out, err := oc.Service.Detail(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /orders/:id/items/:itemId
func (oc *OrderController) RemoveItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	if err := oc.Service.RemoveItem(id, itemID); err != nil {
		fail(c, err)
		return
	}
	out, err := oc.Service.Detail(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

type updateStatusReq struct {
	Status uint `json:"status" binding:"required"`
}

// PATCH /orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := oc.Service.UpdateStatus(id, entity.OrderStatus(req.Status)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": req.Status})
}

type updateItemStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /orders/:id/items/:itemId/status (chef)
func (oc *OrderController) UpdateItemStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	var req updateItemStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := oc.Service.UpdateItemStatus(id, itemID, entity.DetailStatus(req.Status)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": itemID, "status": req.Status})
}
