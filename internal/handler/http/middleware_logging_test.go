package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a request whose context carries a logger writing to
// buf, the way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		status       int
		body         string
		wantContains []string
	}{
		{
			name:   "GET 200",
			method: http.MethodGet,
			path:   "/api/accounts",
			status: http.StatusOK,
			body:   "[]",
			wantContains: []string{
				`"method":"GET"`,
				`"uri":"/api/accounts"`,
				`"status":200`,
				`"size":2`,
				`"duration":`,
			},
		},
		{
			name:   "POST 409",
			method: http.MethodPost,
			path:   "/api/accounts/acc-1/refresh",
			status: http.StatusConflict,
			body:   `{"error":"a refresh is already running"}`,
			wantContains: []string{
				`"method":"POST"`,
				`"status":409`,
			},
		},
		{
			name:         "implicit 200 on write",
			method:       http.MethodGet,
			path:         "/api/version",
			body:         "1.0.0",
			wantContains: []string{`"status":200`, `"size":5`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{}
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				_, _ = w.Write([]byte(tt.body))
			})

			rec := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rec, makeRequest(tt.method, tt.path, &buf))

			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusAccepted, w.status)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, rec, w.Unwrap())
}
