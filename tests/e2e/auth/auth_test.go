//go:build e2e

package auth_test

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
)

const (
	loginURL = "/api/auth/login"
	meURL    = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(authSuite))
}

func (s *authSuite) postJSON(url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		handle         string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			handle:         "alice",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown handle",
			handle:         "nobody",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			handle:         "alice",
			password:       "letmein",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty password",
			handle:         "alice",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			dbtest.CreateTestCustomer(s.T(), s.DB, "alice", "password123", "Alice Anderson")

			body, err := json.Marshal(map[string]string{
				"handle":   tt.handle,
				"password": tt.password,
			})
			require.NoError(s.T(), err)

			w := s.postJSON(loginURL, string(body))

			s.Equal(tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus == http.StatusOK {
				s.Contains(w.Body.String(), `"access_token"`)
				s.Contains(w.Body.String(), `"handle":"alice"`)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("returns the authenticated customer", func() {
		dbtest.CreateTestCustomer(s.T(), s.DB, "alice", "password123", "Alice Anderson")

		w := s.postJSON(loginURL, `{"handle":"alice","password":"password123"}`)
		require.Equal(s.T(), http.StatusOK, w.Code)

		var loginResp struct {
			AccessToken string `json:"access_token"`
		}
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &loginResp))

		req := httptest.NewRequest(http.MethodGet, meURL, nil)
		req.Header.Set("Authorization", "Bearer "+loginResp.AccessToken)
		rec := httptest.NewRecorder()
		s.Router.ServeHTTP(rec, req)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"name":"Alice Anderson"`)
	})

	s.Run("rejects a missing token", func() {
		req := httptest.NewRequest(http.MethodGet, meURL, nil)
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("rejects a garbage token", func() {
		req := httptest.NewRequest(http.MethodGet, meURL, nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		s.Equal(http.StatusUnauthorized, w.Code)
	})
}
