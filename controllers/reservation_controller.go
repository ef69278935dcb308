package controllers

import (
	"time"

	"github.com/Dung-L3/SEP490-G20-sub000/pkg/resp"
	"github.com/Dung-L3/SEP490-G20-sub000/services"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Service: svc}
}

// POST /reservations
func (rc *ReservationController) Create(c *gin.Context) {
	var req services.CreateReservationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	res, err := rc.Service.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, res)
}

// GET /reservations?date=2006-01-02
func (rc *ReservationController) List(c *gin.Context) {
	var day *time.Time
	if raw := c.Query("date"); raw != "" {
		d, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			resp.BadRequest(c, "date must be YYYY-MM-DD")
			return
		}
		day = &d
	}
	list, err := rc.Service.List(day)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, list)
}

func (rc *ReservationController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	res, err := rc.Service.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, res)
}

// POST /reservations/:id/confirm
func (rc *ReservationController) Confirm(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := rc.Service.Confirm(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": "confirmed"})
}

// POST /reservations/:id/cancel
func (rc *ReservationController) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := rc.Service.Cancel(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": "cancelled"})
}

type checkInReq struct {
	TableID uint `json:"tableId" binding:"required"`
}

// POST /reservations/:id/check-in
func (rc *ReservationController) CheckIn(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req checkInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := rc.Service.CheckIn(id, req.TableID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}
