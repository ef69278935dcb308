package controllers

import (
	"errors"
	"log"

	"github.com/Dung-L3/SEP490-G20-sub000/pkg/resp"
	"github.com/Dung-L3/SEP490-G20-sub000/services"

	"github.com/gin-gonic/gin"
)

var notFoundErrs = []error{
	services.ErrOrderNotFound,
	services.ErrTableNotFound,
	services.ErrMenuItemNotFound,
	services.ErrDetailNotFound,
	services.ErrPromoNotFound,
	services.ErrInvoiceNotFound,
	services.ErrMethodNotFound,
	services.ErrReservationNotFound,
	services.ErrGroupNotFound,
	services.ErrStaffNotFound,
	services.ErrNoOpenShift,
}

var conflictErrs = []error{
	services.ErrOrderClosed,
	services.ErrTableOccupied,
	services.ErrTableInUse,
	services.ErrTableGrouped,
	services.ErrOrderDiscounted,
	services.ErrReservationClosed,
	services.ErrAlreadyPaid,
	services.ErrShiftOpen,
}

var badRequestErrs = []error{
	services.ErrItemsRequired,
	services.ErrCustomerRequired,
	services.ErrItemInvalid,
	services.ErrQtyInvalid,
	services.ErrBadTransition,
	services.ErrPromoInactive,
	services.ErrPromoExpired,
	services.ErrPromoDepleted,
	services.ErrPromoNoEffect,
	services.ErrPromoInvalid,
	services.ErrAmountInvalid,
	services.ErrGroupTooSmall,
	services.ErrNameRequired,
	services.ErrPhoneRequired,
	services.ErrPartyInvalid,
	services.ErrPastTime,
	services.ErrOutsideHours,
	services.ErrTooFarAhead,
	services.ErrNoTableFits,
	services.ErrEmailTaken,
	services.ErrRoleInvalid,
	services.ErrOTPInvalid,
	services.ErrCatalogName,
	services.ErrCatalogPrice,
	services.ErrComboEmpty,
}

// fail maps service sentinels onto the response envelope. Anything unknown is
// an internal failure: logged, surfaced generically.
func fail(c *gin.Context, err error) {
	if errors.Is(err, services.ErrInvalidCredentials) {
		resp.Unauthorized(c, err.Error())
		return
	}
	for _, e := range notFoundErrs {
		if errors.Is(err, e) {
			resp.NotFound(c, err.Error())
			return
		}
	}
	for _, e := range conflictErrs {
		if errors.Is(err, e) {
			resp.Conflict(c, err.Error())
			return
		}
	}
	for _, e := range badRequestErrs {
		if errors.Is(err, e) {
			resp.BadRequest(c, err.Error())
			return
		}
	}
	log.Printf("internal error: %v", err)
	resp.ServerError(c, errors.New("internal error"))
}
