package controllers

import (
	"github.com/Dung-L3/SEP490-G20-sub000/entity"
	"github.com/Dung-L3/SEP490-G20-sub000/pkg/resp"
	"github.com/Dung-L3/SEP490-G20-sub000/services"

	"github.com/gin-gonic/gin"
)

type PromotionController struct {
	Service *services.PromotionService
}

func NewPromotionController(svc *services.PromotionService) *PromotionController {
	return &PromotionController{Service: svc}
}

// POST /promotions (manager)
func (pc *PromotionController) Create(c *gin.Context) {
	var p entity.Promotion
	if err := c.ShouldBindJSON(&p); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := pc.Service.Create(&p); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, p)
}

func (pc *PromotionController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	p, err := pc.Service.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, p)
}

func (pc *PromotionController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := pc.Service.Update(id, updates); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": id})
}

func (pc *PromotionController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := pc.Service.Delete(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// GET /promotions?valid=1
func (pc *PromotionController) List(c *gin.Context) {
	var (
		promos []entity.Promotion
		err    error
	)
	if c.Query("valid") != "" {
		promos, err = pc.Service.ListValid()
	} else {
		promos, err = pc.Service.List()
	}
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, promos)
}

type applyPromoReq struct {
	Code string `json:"code" binding:"required"`
}

// POST /orders/:id/promotion
func (pc *PromotionController) Apply(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req applyPromoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	result, err := pc.Service.Apply(orderID, req.Code)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, result)
}
