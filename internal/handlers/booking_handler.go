package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jithiee/FyndPro-Backend/internal/dto"
	"github.com/jithiee/FyndPro-Backend/internal/httperr"
	"github.com/jithiee/FyndPro-Backend/internal/httpresp"
	"github.com/jithiee/FyndPro-Backend/internal/middleware"
	ucBooking "github.com/jithiee/FyndPro-Backend/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	nearbyUC       *ucBooking.NearbyEmployees
	getEmployeeUC  *ucBooking.GetEmployee
	createUC       *ucBooking.CreateBooking
	listClientUC   *ucBooking.ListClientBookings
	listEmployeeUC *ucBooking.ListEmployeeBookings
	updateStatusUC *ucBooking.UpdateBookingStatus
}

func NewBookingHandler(
	nearbyUC *ucBooking.NearbyEmployees,
	getEmployeeUC *ucBooking.GetEmployee,
	createUC *ucBooking.CreateBooking,
	listClientUC *ucBooking.ListClientBookings,
	listEmployeeUC *ucBooking.ListEmployeeBookings,
	updateStatusUC *ucBooking.UpdateBookingStatus,
) *BookingHandler {
	return &BookingHandler{
		nearbyUC:       nearbyUC,
		getEmployeeUC:  getEmployeeUC,
		createUC:       createUC,
		listClientUC:   listClientUC,
		listEmployeeUC: listEmployeeUC,
		updateStatusUC: updateStatusUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	EmployeeID  uint      `json:"employee_id" binding:"required"`
	BookingDate time.Time `json:"booking_date" binding:"required"`
	Job         string    `json:"job" binding:"required,max=100"`
}

type UpdateStatusRequest struct {
	Status       string   `json:"status" binding:"required"`
	WorkingHours *float64 `json:"working_hours"`
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeBookingError(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {
	case "location_unset":
		httperr.BadRequest(c, code, "Your location is not set.")
	case "invalid_employee":
		httperr.BadRequest(c, code, "Employee does not exist.")
	case "invalid_date":
		httperr.BadRequest(c, code, "Booking date must be within the next 7 days.")
	case "missing_working_hours":
		httperr.BadRequest(c, code, "Working hours are required to complete the job.")
	case "invalid_status":
		httperr.BadRequest(c, code, "Unknown booking status.")
	case "invalid_transition":
		httperr.BadRequest(c, code, "Status change not allowed from the current state.")
	case "forbidden":
		httperr.Forbidden(c, code, "Not allowed.")
	case "booking_not_found":
		httperr.NotFound(c, code, "Booking not found.")
	case "user_not_found":
		httperr.NotFound(c, code, "User not found.")
	default:
		httperr.Internal(c, "internal_error", "Unexpected error.")
	}
}

// ======================================================
// NEARBY / EMPLOYEE LOOKUP
// ======================================================

func (h *BookingHandler) Nearby(c *gin.Context) {
	identity := middleware.Identity(c)

	radius := float64(ucBooking.DefaultRadiusKm)
	if raw := c.Query("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 || parsed > 500 {
			httperr.BadRequest(c, "invalid_radius", "Radius must be between 1 and 500 km.")
			return
		}
		radius = parsed
	}

	results, err := h.nearbyUC.Execute(c.Request.Context(), identity, radius)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, results)
}

func (h *BookingHandler) GetEmployee(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	user, err := h.getEmployeeUC.Execute(c.Request.Context(), uint(userID))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, user)
}

// ======================================================
// BOOKING LIFECYCLE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	identity := middleware.Identity(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "employee_id, booking_date and job are required.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), identity, ucBooking.CreateBookingInput{
		EmployeeID:  req.EmployeeID,
		BookingDate: req.BookingDate,
		Job:         req.Job,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, dto.NewBookingDetail(b))
}

func (h *BookingHandler) ClientBookings(c *gin.Context) {
	identity := middleware.Identity(c)

	bookings, err := h.listClientUC.Execute(c.Request.Context(), identity)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) EmployeeBookings(c *gin.Context) {
	identity := middleware.Identity(c)

	bookings, err := h.listEmployeeUC.Execute(c.Request.Context(), identity)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	identity := middleware.Identity(c)

	bookID, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "status is required.")
		return
	}

	b, err := h.updateStatusUC.Execute(c.Request.Context(), identity, bookID, ucBooking.UpdateStatusInput{
		Status:       req.Status,
		WorkingHours: req.WorkingHours,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, dto.NewBookingDetail(b))
}
