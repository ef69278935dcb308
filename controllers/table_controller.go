package controllers

import (
	"strconv"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"
	"github.com/Dung-L3/SEP490-G20-sub000/pkg/resp"
	"github.com/Dung-L3/SEP490-G20-sub000/services"
	"github.com/Dung-L3/SEP490-G20-sub000/utils"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	Service *services.TableService
}

func NewTableController(svc *services.TableService) *TableController {
	return &TableController{Service: svc}
}

// GET /tables?status=&areaId=
func (tc *TableController) List(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		tables, err := tc.Service.ListByStatus(entity.TableStatus(status))
		if err != nil {
			fail(c, err)
			return
		}
		resp.OK(c, tables)
		return
	}
	if raw := c.Query("areaId"); raw != "" {
		areaID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid areaId")
			return
		}
		tables, err := tc.Service.ListByArea(uint(areaID))
		if err != nil {
			fail(c, err)
			return
		}
		resp.OK(c, tables)
		return
	}
	tables, err := tc.Service.ListAll()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, tables)
}

func (tc *TableController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	t, err := tc.Service.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, t)
}

type tableStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /tables/:id/status
func (tc *TableController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req tableStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := tc.Service.UpdateStatus(id, entity.TableStatus(req.Status)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": req.Status})
}

type mergeReq struct {
	TableIDs []uint `json:"tableIds" binding:"required"`
	Notes    string `json:"notes"`
}

// POST /tables/groups
func (tc *TableController) Merge(c *gin.Context) {
	var req mergeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	group, err := tc.Service.MergeTables(req.TableIDs, utils.CurrentStaffID(c), req.Notes)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, group)
}

// DELETE /tables/groups/:id
func (tc *TableController) Disband(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := tc.Service.DisbandGroup(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"disbanded": id})
}

// GET /tables/groups/:id
func (tc *TableController) GroupTables(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	tables, err := tc.Service.TablesInGroup(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, tables)
}
