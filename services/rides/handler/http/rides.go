package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cashlink/cashlink/internal/pkg/middleware"
	"github.com/cashlink/cashlink/internal/pkg/models"
	nrpkg "github.com/cashlink/cashlink/internal/pkg/newrelic"
	"github.com/cashlink/cashlink/internal/utils"
	"github.com/cashlink/cashlink/services/rides"
)

// RidesHandler handles HTTP requests for ride booking operations
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{
		rideUC: rideUC,
	}
}

// RequestRide creates a pending booking
func (h *RidesHandler) RequestRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.Request")

	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	booking, err := h.rideUC.Request(c.Request().Context(), actorID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride requested", booking)
}

// GetRide retrieves a single booking
func (h *RidesHandler) GetRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.Get")

	id, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	booking, err := h.rideUC.Get(c.Request().Context(), id)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved", booking)
}

// AcceptRide moves a pending booking to accepted
func (h *RidesHandler) AcceptRide(c echo.Context) error {
	return h.simpleTransition(c, "Rides.Accept", h.rideUC.Accept, "Ride accepted")
}

// StartRide moves an accepted booking to in_progress
func (h *RidesHandler) StartRide(c echo.Context) error {
	return h.simpleTransition(c, "Rides.Start", h.rideUC.StartRide, "Ride started")
}

// RejectRide records a driver's rejection
func (h *RidesHandler) RejectRide(c echo.Context) error {
	return h.simpleTransition(c, "Rides.Reject", h.rideUC.Reject, "Ride rejected")
}

func (h *RidesHandler) simpleTransition(
	c echo.Context,
	name string,
	op func(ctx context.Context, id uuid.UUID) (*models.RideBooking, error),
	message string,
) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, name)

	id, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	booking, err := op(c.Request().Context(), id)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, message, booking)
}

// CompleteRide finishes an in_progress ride
func (h *RidesHandler) CompleteRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.Complete")

	id, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req models.CompleteRideRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	booking, err := h.rideUC.Complete(c.Request().Context(), id, req.DriverRating)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride completed", booking)
}

// CancelRide voids a pending or accepted booking
func (h *RidesHandler) CancelRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.Cancel")

	id, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req models.CancelRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	booking, err := h.rideUC.Cancel(c.Request().Context(), id, req.Reason)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled", booking)
}

// GetDriverStats returns the driver dashboard aggregates
func (h *RidesHandler) GetDriverStats(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.GetDriverStats")

	driverID, err := uuid.Parse(c.Param("driverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	stats, err := h.rideUC.GetDriverStats(c.Request().Context(), driverID, c.QueryParam("period"))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver stats retrieved", stats)
}

// SetAvailability toggles the authenticated driver in the availability
// index
func (h *RidesHandler) SetAvailability(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.SetAvailability")

	driverID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.DriverAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.rideUC.SetDriverAvailability(c.Request().Context(), driverID, req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", nil)
}

// NearbyDrivers lists available drivers around a point
func (h *RidesHandler) NearbyDrivers(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.NearbyDrivers")

	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}

	drivers, err := h.rideUC.NearbyDrivers(c.Request().Context(), lat, lng)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorKindResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers retrieved", drivers)
}
