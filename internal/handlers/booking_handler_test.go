package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domain "github.com/jithiee/FyndPro-Backend/internal/domain/booking"
	"github.com/jithiee/FyndPro-Backend/internal/middleware"
	"github.com/jithiee/FyndPro-Backend/internal/models"
	ucBooking "github.com/jithiee/FyndPro-Backend/internal/usecase/booking"
)

// MockBookingRepository is a hand-rolled repository fake for routing the
// handlers through real use cases.
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockBookingRepository) GetEmployeeProfile(ctx context.Context, id uint) (*models.EmployeeProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmployeeProfile), args.Error(1)
}

func (m *MockBookingRepository) ListEmployeesWithLocation(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockBookingRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetBooking(ctx context.Context, bookID uuid.UUID) (*models.Booking, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByClient(ctx context.Context, clientID uint) ([]models.Booking, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByEmployee(ctx context.Context, employeeProfileID uint) ([]models.Booking, error) {
	args := m.Called(ctx, employeeProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateBookingStatus(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

var _ domain.Repository = (*MockBookingRepository)(nil)

func newTestRouter(identity *models.User, repo *MockBookingRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewBookingHandler(
		ucBooking.NewNearbyEmployees(repo, nil),
		ucBooking.NewGetEmployee(repo),
		ucBooking.NewCreateBooking(repo, nil, "UTC"),
		ucBooking.NewListClientBookings(repo),
		ucBooking.NewListEmployeeBookings(repo),
		ucBooking.NewUpdateBookingStatus(repo, nil),
	)

	r := gin.New()
	r.GET("/api/bookings/employee/:user_id", h.GetEmployee)

	secured := r.Group("/api/bookings", func(c *gin.Context) {
		c.Set(middleware.ContextIdentity, identity)
	})
	secured.GET("/nearby", h.Nearby)
	secured.POST("/create", h.Create)
	secured.GET("/client", h.ClientBookings)
	secured.GET("/employee", h.EmployeeBookings)
	secured.PATCH("/update/:book_id", h.UpdateStatus)

	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["error_code"].(string)
	return code
}

// ------------------------------
// NEARBY
// ------------------------------

func TestNearbyEndpoint_LocationUnset(t *testing.T) {
	repo := &MockBookingRepository{}
	identity := &models.User{ID: 1, Role: models.RoleClient}
	r := newTestRouter(identity, repo)

	w := doJSON(r, http.MethodGet, "/api/bookings/nearby", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "location_unset", errorCode(t, w))
}

func TestNearbyEndpoint_InvalidRadius(t *testing.T) {
	repo := &MockBookingRepository{}
	lat, lon := 10.0, 76.0
	identity := &models.User{ID: 1, Role: models.RoleClient, Latitude: &lat, Longitude: &lon}
	r := newTestRouter(identity, repo)

	w := doJSON(r, http.MethodGet, "/api/bookings/nearby?radius=-3", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_radius", errorCode(t, w))
}

// ------------------------------
// EMPLOYEE LOOKUP
// ------------------------------

func TestGetEmployeeEndpoint_NotFound(t *testing.T) {
	repo := &MockBookingRepository{}
	r := newTestRouter(&models.User{}, repo)

	repo.On("GetUserByID", mock.Anything, uint(99)).Return(nil, fmt.Errorf("record not found"))

	w := doJSON(r, http.MethodGet, "/api/bookings/employee/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "user_not_found", errorCode(t, w))
}

// ------------------------------
// CREATE
// ------------------------------

func TestCreateEndpoint_Success(t *testing.T) {
	repo := &MockBookingRepository{}
	identity := &models.User{ID: 1, FullName: "Anu", Role: models.RoleClient}
	r := newTestRouter(identity, repo)

	profile := &models.EmployeeProfile{
		ID:         7,
		UserID:     42,
		HourlyRate: 20,
		User:       models.User{ID: 42, FullName: "Ravi"},
	}
	repo.On("GetEmployeeProfile", mock.Anything, uint(7)).Return(profile, nil)
	repo.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	w := doJSON(r, http.MethodPost, "/api/bookings/create", gin.H{
		"employee_id":  7,
		"booking_date": time.Now().UTC().Add(48 * time.Hour).Format(time.RFC3339),
		"job":          "wiring",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp["status"])
	assert.Nil(t, resp["amount"])
}

func TestCreateEndpoint_PastDate(t *testing.T) {
	repo := &MockBookingRepository{}
	identity := &models.User{ID: 1, Role: models.RoleClient}
	r := newTestRouter(identity, repo)

	repo.On("GetEmployeeProfile", mock.Anything, uint(7)).
		Return(&models.EmployeeProfile{ID: 7, UserID: 42}, nil)

	w := doJSON(r, http.MethodPost, "/api/bookings/create", gin.H{
		"employee_id":  7,
		"booking_date": time.Now().UTC().AddDate(0, 0, -1).Format(time.RFC3339),
		"job":          "wiring",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_date", errorCode(t, w))
}

func TestCreateEndpoint_NonClientForbidden(t *testing.T) {
	repo := &MockBookingRepository{}
	identity := &models.User{ID: 42, Role: models.RoleEmployee}
	r := newTestRouter(identity, repo)

	w := doJSON(r, http.MethodPost, "/api/bookings/create", gin.H{
		"employee_id":  7,
		"booking_date": time.Now().UTC().Add(48 * time.Hour).Format(time.RFC3339),
		"job":          "wiring",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", errorCode(t, w))
}

// ------------------------------
// STATUS UPDATE
// ------------------------------

func TestUpdateEndpoint_NonOwnerForbidden(t *testing.T) {
	repo := &MockBookingRepository{}
	identity := &models.User{ID: 43, Role: models.RoleEmployee}
	r := newTestRouter(identity, repo)

	b := &models.Booking{
		BookID:   uuid.New(),
		Employee: models.EmployeeProfile{ID: 7, UserID: 42},
		Status:   "in_progress",
	}
	repo.On("GetBooking", mock.Anything, b.BookID).Return(b, nil)

	w := doJSON(r, http.MethodPatch, "/api/bookings/update/"+b.BookID.String(), gin.H{
		"status": "canceled",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", errorCode(t, w))
	repo.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything)
}

func TestUpdateEndpoint_CompleteWithoutHours(t *testing.T) {
	repo := &MockBookingRepository{}
	identity := &models.User{ID: 42, Role: models.RoleEmployee}
	r := newTestRouter(identity, repo)

	b := &models.Booking{
		BookID:   uuid.New(),
		Employee: models.EmployeeProfile{ID: 7, UserID: 42, HourlyRate: 20},
		Status:   "in_progress",
	}
	repo.On("GetBooking", mock.Anything, b.BookID).Return(b, nil)

	w := doJSON(r, http.MethodPatch, "/api/bookings/update/"+b.BookID.String(), gin.H{
		"status": "completed",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_working_hours", errorCode(t, w))
}

func TestUpdateEndpoint_CompleteComputesAmount(t *testing.T) {
	repo := &MockBookingRepository{}
	identity := &models.User{ID: 42, Role: models.RoleEmployee}
	r := newTestRouter(identity, repo)

	b := &models.Booking{
		BookID: uuid.New(),
		Client: models.User{ID: 1, FullName: "Anu"},
		Employee: models.EmployeeProfile{
			ID: 7, UserID: 42, HourlyRate: 20,
			User: models.User{ID: 42, FullName: "Ravi"},
		},
		Status: "in_progress",
	}
	repo.On("GetBooking", mock.Anything, b.BookID).Return(b, nil)
	repo.On("UpdateBookingStatus", mock.Anything, b).Return(nil)

	w := doJSON(r, http.MethodPatch, "/api/bookings/update/"+b.BookID.String(), gin.H{
		"status":        "completed",
		"working_hours": 3.5,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp["status"])
	assert.Equal(t, 70.0, resp["amount"])
	assert.Equal(t, true, resp["is_paid"])
	assert.Equal(t, true, resp["is_completed"])
}

func TestUpdateEndpoint_MalformedBookIDIs404(t *testing.T) {
	repo := &MockBookingRepository{}
	identity := &models.User{ID: 42, Role: models.RoleEmployee}
	r := newTestRouter(identity, repo)

	w := doJSON(r, http.MethodPatch, "/api/bookings/update/not-a-uuid", gin.H{
		"status": "confirmed",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "booking_not_found", errorCode(t, w))
}

// ------------------------------
// LISTS
// ------------------------------

func TestEmployeeBookingsEndpoint_EmptyForClients(t *testing.T) {
	repo := &MockBookingRepository{}
	identity := &models.User{ID: 1, Role: models.RoleClient}
	r := newTestRouter(identity, repo)

	w := doJSON(r, http.MethodGet, "/api/bookings/employee", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(0), resp["total"])
}
