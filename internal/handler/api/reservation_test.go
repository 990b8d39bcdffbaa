//go:build unit

package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IneMentenPXL/FlightsApp/internal/domain/flight"
	"github.com/IneMentenPXL/FlightsApp/internal/handler/api"
	"github.com/IneMentenPXL/FlightsApp/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockBookingCommands struct {
	mock.Mock
}

func (m *MockBookingCommands) Book(ctx context.Context, userID int64, date flight.Date, flightIDs []int64) (commands.BookingOutcome, error) {
	args := m.Called(ctx, userID, date, flightIDs)
	return args.Get(0).(commands.BookingOutcome), args.Error(1)
}

func (m *MockBookingCommands) Cancel(ctx context.Context, userID int64, flightIDs []int64) {
	m.Called(ctx, userID, flightIDs)
}

type MockReservationQueries struct {
	mock.Mock
}

func (m *MockReservationQueries) ListForUser(ctx context.Context, userID int64) ([]flight.Flight, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]flight.Flight), args.Error(1)
}

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockBookings *MockBookingCommands
	mockQueries  *MockReservationQueries
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockBookings = new(MockBookingCommands)
	s.mockQueries = new(MockReservationQueries)
	handler := api.NewReservationHandler(s.mockBookings, s.mockQueries)

	authed := func(c *gin.Context) {
		c.Set("user_id", int64(7))
		c.Set("user_handle", "alice")
	}
	s.router.POST("/reservations", authed, handler.Create)
	s.router.GET("/reservations", authed, handler.List)
	s.router.DELETE("/reservations", authed, handler.Cancel)
	// No auth context on this route.
	s.router.POST("/anonymous/reservations", handler.Create)
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) do(method, url, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	date, err := flight.NewDate(2024, 5, 1)
	s.Require().NoError(err)

	s.Run("booked itinerary returns 201", func() {
		s.SetupTest()
		s.mockBookings.On("Book", mock.Anything, int64(7), date, []int64{10, 11}).
			Return(commands.OutcomeAdded, nil)

		w := s.do(http.MethodPost, "/reservations", `{"date":"2024-05-01","flight_ids":[10,11]}`)

		s.Equal(http.StatusCreated, w.Code)
		s.Contains(w.Body.String(), `"outcome":"added"`)
		s.mockBookings.AssertExpectations(s.T())
	})

	s.Run("full flight returns 409", func() {
		s.SetupTest()
		s.mockBookings.On("Book", mock.Anything, int64(7), date, []int64{10}).
			Return(commands.OutcomeFlightFull, nil)

		w := s.do(http.MethodPost, "/reservations", `{"date":"2024-05-01","flight_ids":[10]}`)

		s.Equal(http.StatusConflict, w.Code)
		s.Contains(w.Body.String(), `"outcome":"flight_full"`)
	})

	s.Run("daily limit returns 409", func() {
		s.SetupTest()
		s.mockBookings.On("Book", mock.Anything, int64(7), date, []int64{10}).
			Return(commands.OutcomeDayFull, nil)

		w := s.do(http.MethodPost, "/reservations", `{"date":"2024-05-01","flight_ids":[10]}`)

		s.Equal(http.StatusConflict, w.Code)
		s.Contains(w.Body.String(), `"outcome":"day_full"`)
	})

	s.Run("store fault returns 500", func() {
		s.SetupTest()
		s.mockBookings.On("Book", mock.Anything, int64(7), date, []int64{10}).
			Return(commands.BookingOutcome(""), commands.ErrDatabaseOperationFailed)

		w := s.do(http.MethodPost, "/reservations", `{"date":"2024-05-01","flight_ids":[10]}`)

		s.Equal(http.StatusInternalServerError, w.Code)
	})

	s.Run("missing flight ids returns 400", func() {
		s.SetupTest()
		w := s.do(http.MethodPost, "/reservations", `{"date":"2024-05-01","flight_ids":[]}`)

		s.Equal(http.StatusBadRequest, w.Code)
		s.mockBookings.AssertNotCalled(s.T(), "Book", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("three legs returns 400", func() {
		s.SetupTest()
		w := s.do(http.MethodPost, "/reservations", `{"date":"2024-05-01","flight_ids":[1,2,3]}`)

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("malformed date returns 400", func() {
		s.SetupTest()
		w := s.do(http.MethodPost, "/reservations", `{"date":"05/01/2024","flight_ids":[10]}`)

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("missing auth context returns 401", func() {
		s.SetupTest()
		w := s.do(http.MethodPost, "/anonymous/reservations", `{"date":"2024-05-01","flight_ids":[10]}`)

		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestList() {
	s.Run("returns reserved flights", func() {
		s.SetupTest()
		date, err := flight.NewDate(2024, 5, 1)
		s.Require().NoError(err)
		s.mockQueries.On("ListForUser", mock.Anything, int64(7)).
			Return([]flight.Flight{{
				ID:              10,
				Date:            date,
				CarrierName:     "Test Air",
				FlightNum:       "110",
				OriginCity:      "Seattle WA",
				DestCity:        "Boston MA",
				DurationMinutes: 300,
			}}, nil)

		w := s.do(http.MethodGet, "/reservations", "")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"date":"2024-05-01"`)
		s.Contains(w.Body.String(), `"carrier":"Test Air"`)
	})

	s.Run("no reservations yields empty list", func() {
		s.SetupTest()
		s.mockQueries.On("ListForUser", mock.Anything, int64(7)).
			Return([]flight.Flight{}, nil)

		w := s.do(http.MethodGet, "/reservations", "")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"flights":[]`)
	})

	s.Run("store fault returns 500", func() {
		s.SetupTest()
		s.mockQueries.On("ListForUser", mock.Anything, int64(7)).
			Return(nil, commands.ErrDatabaseOperationFailed)

		w := s.do(http.MethodGet, "/reservations", "")

		s.Equal(http.StatusInternalServerError, w.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	s.Run("always returns 204", func() {
		s.SetupTest()
		s.mockBookings.On("Cancel", mock.Anything, int64(7), []int64{10, 11}).Return()

		w := s.do(http.MethodDelete, "/reservations", `{"flight_ids":[10,11]}`)

		s.Equal(http.StatusNoContent, w.Code)
		s.mockBookings.AssertExpectations(s.T())
	})

	s.Run("empty flight ids returns 400", func() {
		s.SetupTest()
		w := s.do(http.MethodDelete, "/reservations", `{"flight_ids":[]}`)

		s.Equal(http.StatusBadRequest, w.Code)
		s.mockBookings.AssertNotCalled(s.T(), "Cancel", mock.Anything, mock.Anything, mock.Anything)
	})
}
