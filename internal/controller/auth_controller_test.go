package controller

import (
	"net/http"

	"github.com/curavet/clinic-admin-service/internal/dto"
	"github.com/curavet/clinic-admin-service/internal/middleware"
	"github.com/curavet/clinic-admin-service/pkg/response"
)

func (s *ControllerTestSuite) Test_Login() {
	type TestCase struct {
		Name           string
		Request        dto.LoginRequest
		ExpectedStatus int
		ExpectedError  string
	}

	testCases := []TestCase{
		{
			Name:           "Valid ID token",
			Request:        dto.LoginRequest{IDToken: "good-id-token"},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:           "Missing ID token",
			Request:        dto.LoginRequest{},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedError:  "ID token required",
		},
		{
			Name:           "Rejected ID token",
			Request:        dto.LoginRequest{IDToken: "forged-token"},
			ExpectedStatus: http.StatusUnauthorized,
			ExpectedError:  "Invalid credentials",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			resp := s.doJSON(http.MethodPost, "/api/auth/login", tc.Request, nil)
			s.Equal(tc.ExpectedStatus, resp.StatusCode)

			if tc.ExpectedError != "" {
				var body response.ErrorResponse
				s.decodeBody(resp, &body)
				s.Equal(tc.ExpectedError, body.Error)
				s.Empty(resp.Cookies())
				return
			}

			resp.Body.Close()
			var sessionCookie *http.Cookie
			for _, cookie := range resp.Cookies() {
				if cookie.Name == middleware.SessionCookieName {
					sessionCookie = cookie
				}
			}
			s.Require().NotNil(sessionCookie, "login sets the session cookie")
			s.NotEmpty(sessionCookie.Value)
			s.True(sessionCookie.HttpOnly)
			s.Equal("/", sessionCookie.Path)

			// The minted cookie opens the admin surface.
			adminResp := s.doJSON(http.MethodGet, "/api/admin/products", nil, sessionCookie)
			defer adminResp.Body.Close()
			s.Equal(http.StatusOK, adminResp.StatusCode)
		})
	}
}

func (s *ControllerTestSuite) Test_Verify() {
	resp := s.doJSON(http.MethodGet, "/api/auth/verify", nil, nil)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	var body dto.VerifyResponse
	s.decodeBody(resp, &body)
	s.False(body.Authenticated)

	resp = s.doJSON(http.MethodGet, "/api/auth/verify", nil, s.sessionCookie())
	s.Equal(http.StatusOK, resp.StatusCode)
	s.decodeBody(resp, &body)
	s.True(body.Authenticated)

	resp = s.doJSON(http.MethodGet, "/api/auth/verify", nil, middleware.NewSessionCookie("garbage", "development"))
	s.Equal(http.StatusOK, resp.StatusCode)
	s.decodeBody(resp, &body)
	s.False(body.Authenticated, "a present but invalid token reports unauthenticated")
}

func (s *ControllerTestSuite) Test_PageRedirects() {
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	get := func(path string, cookie *http.Cookie) *http.Response {
		req, err := http.NewRequest(http.MethodGet, s.server.URL+path, nil)
		s.Require().NoError(err)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		resp, err := client.Do(req)
		s.Require().NoError(err)
		resp.Body.Close()
		return resp
	}

	resp := get("/admin", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = get("/admin/products", nil)
	s.Equal(http.StatusFound, resp.StatusCode)
	s.Equal("/admin", resp.Header.Get("Location"))

	cookie := s.sessionCookie()
	resp = get("/admin", cookie)
	s.Equal(http.StatusFound, resp.StatusCode)
	s.Equal("/admin/products", resp.Header.Get("Location"))

	resp = get("/admin/products", cookie)
	s.Equal(http.StatusOK, resp.StatusCode)
}
