package controllers

import (
	"strconv"
	"time"

	"github.com/Dung-L3/SEP490-G20-sub000/pkg/resp"
	"github.com/Dung-L3/SEP490-G20-sub000/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Service *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{Service: svc}
}

// GET /reports/sales?from=2006-01-02&to=2006-01-02&top=5
// Defaults to today when the range is omitted; "to" is inclusive.
func (rc *ReportController) Sales(c *gin.Context) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 0, 1)

	if raw := c.Query("from"); raw != "" {
		d, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			resp.BadRequest(c, "from must be YYYY-MM-DD")
			return
		}
		from = d
		to = from.AddDate(0, 0, 1)
	}
	if raw := c.Query("to"); raw != "" {
		d, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			resp.BadRequest(c, "to must be YYYY-MM-DD")
			return
		}
		to = d.AddDate(0, 0, 1)
	}
	if !to.After(from) {
		resp.BadRequest(c, "to must not be before from")
		return
	}

	topN := 5
	if raw := c.Query("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			resp.BadRequest(c, "top must be a positive integer")
			return
		}
		topN = n
	}

	report, err := rc.Service.Sales(from, to, topN)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, report)
}
