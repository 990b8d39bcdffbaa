//go:build e2e

package booking_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IneMentenPXL/FlightsApp/tests/common/dbtest"
	"github.com/IneMentenPXL/FlightsApp/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const (
	loginURL        = "/api/auth/login"
	flightsURL      = "/api/flights"
	reservationsURL = "/api/reservations"

	testPlainPassword = "password123"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) createCustomer(handle string) int64 {
	return dbtest.CreateTestCustomer(s.T(), s.DB, handle, testPlainPassword, strings.ToUpper(handle[:1])+handle[1:])
}

func (s *bookingSuite) login(handle string) string {
	body := `{"handle":"` + handle + `","password":"` + testPlainPassword + `"}`
	w := s.doJSON(http.MethodPost, loginURL, "", body)
	require.Equal(s.T(), http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(s.T(), resp.AccessToken)
	return resp.AccessToken
}

func (s *bookingSuite) doJSON(method, url, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *bookingSuite) TestSearchFlights() {
	s.Run("direct and one-connection routings", func() {
		s.createCustomer("alice")
		token := s.login("alice")

		w := s.doJSON(http.MethodGet,
			flightsURL+"?date=2024-05-01&origin=Seattle+WA&dest=Boston+MA", token, "")

		require.Equal(s.T(), http.StatusOK, w.Code)

		var resp struct {
			Itineraries []struct {
				Legs []struct {
					ID int64 `json:"id"`
				} `json:"legs"`
				Direct               bool `json:"direct"`
				TotalDurationMinutes int  `json:"total_duration_minutes"`
			} `json:"itineraries"`
		}
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))

		// Two direct flights ordered by actual time, then the connection.
		// The flight with a NULL actual_time never shows up.
		require.Len(s.T(), resp.Itineraries, 3)
		s.True(resp.Itineraries[0].Direct)
		s.Equal(int64(10), resp.Itineraries[0].Legs[0].ID)
		s.Equal(300, resp.Itineraries[0].TotalDurationMinutes)
		s.True(resp.Itineraries[1].Direct)
		s.Equal(int64(11), resp.Itineraries[1].Legs[0].ID)
		s.False(resp.Itineraries[2].Direct)
		s.Equal([]int64{20, 21}, []int64{resp.Itineraries[2].Legs[0].ID, resp.Itineraries[2].Legs[1].ID})
		s.Equal(350, resp.Itineraries[2].TotalDurationMinutes)
	})

	s.Run("no flights on the route", func() {
		s.createCustomer("alice")
		token := s.login("alice")

		w := s.doJSON(http.MethodGet,
			flightsURL+"?date=2024-05-03&origin=Seattle+WA&dest=Boston+MA", token, "")

		require.Equal(s.T(), http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"itineraries":[]`)
	})

	s.Run("unauthenticated search is rejected", func() {
		w := s.doJSON(http.MethodGet,
			flightsURL+"?date=2024-05-01&origin=Seattle+WA&dest=Boston+MA", "", "")

		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *bookingSuite) TestBooking() {
	s.Run("direct flight booking succeeds", func() {
		s.createCustomer("alice")
		token := s.login("alice")

		w := s.doJSON(http.MethodPost, reservationsURL, token,
			`{"date":"2024-05-01","flight_ids":[10]}`)

		require.Equal(s.T(), http.StatusCreated, w.Code)
		s.Contains(w.Body.String(), `"outcome":"added"`)
		s.Equal(1, dbtest.CountReservations(s.T(), s.DB, 10))
	})

	s.Run("full flight is rejected without a new row", func() {
		s.createCustomer("alice")
		for _, handle := range []string{"u1", "u2", "u3"} {
			uid := s.createCustomer(handle)
			dbtest.SeedReservation(s.T(), s.DB, uid, 10)
		}
		token := s.login("alice")

		w := s.doJSON(http.MethodPost, reservationsURL, token,
			`{"date":"2024-05-01","flight_ids":[10]}`)

		require.Equal(s.T(), http.StatusConflict, w.Code)
		s.Contains(w.Body.String(), `"outcome":"flight_full"`)
		s.Equal(3, dbtest.CountReservations(s.T(), s.DB, 10))
	})

	s.Run("second booking on the same day is rejected", func() {
		s.createCustomer("alice")
		token := s.login("alice")

		w := s.doJSON(http.MethodPost, reservationsURL, token,
			`{"date":"2024-05-01","flight_ids":[10]}`)
		require.Equal(s.T(), http.StatusCreated, w.Code)

		w = s.doJSON(http.MethodPost, reservationsURL, token,
			`{"date":"2024-05-01","flight_ids":[11]}`)

		require.Equal(s.T(), http.StatusConflict, w.Code)
		s.Contains(w.Body.String(), `"outcome":"day_full"`)
		s.Equal(0, dbtest.CountReservations(s.T(), s.DB, 11))
	})

	s.Run("booking on another day still works", func() {
		s.createCustomer("alice")
		token := s.login("alice")

		w := s.doJSON(http.MethodPost, reservationsURL, token,
			`{"date":"2024-05-01","flight_ids":[10]}`)
		require.Equal(s.T(), http.StatusCreated, w.Code)

		w = s.doJSON(http.MethodPost, reservationsURL, token,
			`{"date":"2024-05-02","flight_ids":[40]}`)

		require.Equal(s.T(), http.StatusCreated, w.Code)
		s.Equal(1, dbtest.CountReservations(s.T(), s.DB, 40))
	})

	s.Run("connection with a full second leg leaves no partial rows", func() {
		s.createCustomer("alice")
		for _, handle := range []string{"u1", "u2", "u3"} {
			uid := s.createCustomer(handle)
			dbtest.SeedReservation(s.T(), s.DB, uid, 21)
		}
		token := s.login("alice")

		w := s.doJSON(http.MethodPost, reservationsURL, token,
			`{"date":"2024-05-01","flight_ids":[20,21]}`)

		require.Equal(s.T(), http.StatusConflict, w.Code)
		s.Contains(w.Body.String(), `"outcome":"flight_full"`)
		// The first-leg insert must have been rolled back.
		s.Equal(0, dbtest.CountReservations(s.T(), s.DB, 20))
		s.Equal(3, dbtest.CountReservations(s.T(), s.DB, 21))
	})

	s.Run("concurrent bookings never oversell the last seat", func() {
		uid1 := s.createCustomer("u1")
		uid2 := s.createCustomer("u2")
		dbtest.SeedReservation(s.T(), s.DB, uid1, 10)
		dbtest.SeedReservation(s.T(), s.DB, uid2, 10)

		s.createCustomer("alice")
		s.createCustomer("bob")
		tokens := []string{s.login("alice"), s.login("bob")}

		codes := make([]int, len(tokens))
		var g errgroup.Group
		for i, token := range tokens {
			g.Go(func() error {
				w := s.doJSON(http.MethodPost, reservationsURL, token,
					`{"date":"2024-05-01","flight_ids":[10]}`)
				codes[i] = w.Code
				return nil
			})
		}
		require.NoError(s.T(), g.Wait())

		created, conflicted := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		s.Equal(1, created, "exactly one booking may win the last seat")
		s.Equal(1, conflicted)
		s.Equal(3, dbtest.CountReservations(s.T(), s.DB, 10))
	})
}

func (s *bookingSuite) TestReservationListAndCancel() {
	s.Run("list shows booked flights with details", func() {
		s.createCustomer("alice")
		token := s.login("alice")

		w := s.doJSON(http.MethodPost, reservationsURL, token,
			`{"date":"2024-05-01","flight_ids":[20,21]}`)
		require.Equal(s.T(), http.StatusCreated, w.Code)

		w = s.doJSON(http.MethodGet, reservationsURL, token, "")

		require.Equal(s.T(), http.StatusOK, w.Code)

		var resp struct {
			Flights []struct {
				ID      int64  `json:"id"`
				Date    string `json:"date"`
				Carrier string `json:"carrier"`
			} `json:"flights"`
		}
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(s.T(), resp.Flights, 2)
		s.Equal("2024-05-01", resp.Flights[0].Date)
	})

	s.Run("cancel removes the reservations", func() {
		s.createCustomer("alice")
		token := s.login("alice")

		w := s.doJSON(http.MethodPost, reservationsURL, token,
			`{"date":"2024-05-01","flight_ids":[10]}`)
		require.Equal(s.T(), http.StatusCreated, w.Code)

		w = s.doJSON(http.MethodDelete, reservationsURL, token,
			`{"flight_ids":[10]}`)

		require.Equal(s.T(), http.StatusNoContent, w.Code)
		s.Equal(0, dbtest.CountReservations(s.T(), s.DB, 10))
	})

	s.Run("cancel of an unbooked flight is silent", func() {
		s.createCustomer("alice")
		token := s.login("alice")

		w := s.doJSON(http.MethodDelete, reservationsURL, token,
			`{"flight_ids":[10]}`)

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("cancel frees the day for a new booking", func() {
		s.createCustomer("alice")
		token := s.login("alice")

		w := s.doJSON(http.MethodPost, reservationsURL, token,
			`{"date":"2024-05-01","flight_ids":[10]}`)
		require.Equal(s.T(), http.StatusCreated, w.Code)

		w = s.doJSON(http.MethodDelete, reservationsURL, token, `{"flight_ids":[10]}`)
		require.Equal(s.T(), http.StatusNoContent, w.Code)

		w = s.doJSON(http.MethodPost, reservationsURL, token,
			`{"date":"2024-05-01","flight_ids":[11]}`)

		require.Equal(s.T(), http.StatusCreated, w.Code)
	})
}
