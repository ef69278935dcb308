package controllers

import (
	"time"

	"github.com/Dung-L3/SEP490-G20-sub000/pkg/resp"
	"github.com/Dung-L3/SEP490-G20-sub000/services"
	"github.com/Dung-L3/SEP490-G20-sub000/utils"

	"github.com/gin-gonic/gin"
)

type ShiftController struct {
	Service *services.ShiftService
}

func NewShiftController(svc *services.ShiftService) *ShiftController {
	return &ShiftController{Service: svc}
}

type clockInReq struct {
	Notes string `json:"notes"`
}

// POST /shifts/clock-in
func (sc *ShiftController) ClockIn(c *gin.Context) {
	var req clockInReq
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		resp.BadRequest(c, err.Error())
		return
	}
	shift, err := sc.Service.ClockIn(utils.CurrentStaffID(c), req.Notes)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, shift)
}

// POST /shifts/clock-out
func (sc *ShiftController) ClockOut(c *gin.Context) {
	shift, err := sc.Service.ClockOut(utils.CurrentStaffID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, shift)
}

// GET /shifts?staffId=&date=
func (sc *ShiftController) List(c *gin.Context) {
	staffID := utils.CurrentStaffID(c)
	if raw := c.Query("staffId"); raw != "" && utils.CurrentRole(c) != "waiter" && utils.CurrentRole(c) != "chef" {
		id, ok := queryID(c, raw, "staffId")
		if !ok {
			return
		}
		staffID = id
	}
	var day *time.Time
	if raw := c.Query("date"); raw != "" {
		d, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			resp.BadRequest(c, "date must be YYYY-MM-DD")
			return
		}
		day = &d
	}
	shifts, err := sc.Service.List(staffID, day)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, shifts)
}
