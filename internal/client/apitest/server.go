// Package apitest runs a scriptable fake of the Data Guard backend for
// tests. Routes use the backend's own path syntax (e.g. /alerts/:id/resolve)
// and every incoming request is recorded for later assertions.
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie the fake backend issues on StartSession.
const SessionCookieName = "cdg_session"

// Request is a recorded incoming call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Header  http.Header
	Body    []byte
	Cookies []*http.Cookie
}

// Cookie returns the value of the named cookie or "".
func (r Request) Cookie(name string) string {
	for _, c := range r.Cookies {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// DecodeJSON unmarshals the recorded body into v, failing the test on error.
func (r Request) DecodeJSON(t testing.TB, v any) {
	t.Helper()
	if err := json.Unmarshal(r.Body, v); err != nil {
		t.Fatalf("decode %s %s body %q: %v", r.Method, r.Path, r.Body, err)
	}
}

type Server struct {
	*httptest.Server
	e *echo.Echo

	mu       sync.Mutex
	requests []Request
}

// NewServer starts the fake backend; it is closed by t.Cleanup.
func NewServer(t testing.TB) *Server {
	t.Helper()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{e: e}
	e.Pre(s.record)

	s.Server = httptest.NewServer(e)
	t.Cleanup(s.Close)
	return s
}

func (s *Server) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		body, err := io.ReadAll(req.Body)
		if err != nil {
			return err
		}
		req.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:  req.Method,
			Path:    req.URL.Path,
			Query:   req.URL.Query(),
			Header:  req.Header.Clone(),
			Body:    body,
			Cookies: req.Cookies(),
		})
		s.mu.Unlock()

		return next(c)
	}
}

// Handle registers a custom handler. Register routes before issuing requests.
func (s *Server) Handle(method, path string, h echo.HandlerFunc) {
	s.e.Add(method, path, h)
}

// Reply answers method+path with status and body encoded as JSON.
func (s *Server) Reply(method, path string, status int, body any) {
	s.Handle(method, path, func(c echo.Context) error {
		return c.JSON(status, body)
	})
}

// ReplyRaw answers with a plain-text body, e.g. a proxy error page.
func (s *Server) ReplyRaw(method, path string, status int, body string) {
	s.Handle(method, path, func(c echo.Context) error {
		return c.String(status, body)
	})
}

// StartSession answers like Reply and sets an HTTP-only session cookie.
func (s *Server) StartSession(method, path string, status int, body any, sessionID string) {
	s.Handle(method, path, func(c echo.Context) error {
		c.SetCookie(&http.Cookie{
			Name:     SessionCookieName,
			Value:    sessionID,
			Path:     "/",
			HttpOnly: true,
		})
		return c.JSON(status, body)
	})
}

// RequireSession answers like Reply only when the request carries the
// session cookie with sessionID; otherwise it answers 401.
func (s *Server) RequireSession(method, path string, status int, body any, sessionID string) {
	s.Handle(method, path, func(c echo.Context) error {
		ck, err := c.Cookie(SessionCookieName)
		if err != nil || ck.Value != sessionID {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Authentication required"})
		}
		return c.JSON(status, body)
	})
}

// Requests returns a copy of everything recorded so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Last returns the most recent request, failing the test if there is none.
func (s *Server) Last(t testing.TB) Request {
	t.Helper()
	reqs := s.Requests()
	if len(reqs) == 0 {
		t.Fatal("no requests recorded")
	}
	return reqs[len(reqs)-1]
}
