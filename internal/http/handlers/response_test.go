package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cucisepatu/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, r *gin.Engine, path string) (int, Envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func TestRespondDomainErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
		errStr string
	}{
		{"validation", domain.ValidationError{Msg: "name and intake date are required"}, http.StatusBadRequest, "name and intake date are required", ""},
		{"not found", domain.NotFoundError{Resource: "order"}, http.StatusNotFound, MsgOrderNotFound, ""},
		{"store", domain.StoreError{Op: "list", Err: errors.New("timeout")}, http.StatusInternalServerError, "failed to fetch data", "timeout"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "failed to fetch data", "boom"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/x", func(c *gin.Context) { RespondDomainError(c, tc.err, "failed to fetch data") })

			status, env := serve(t, r, "/x")
			assert.Equal(t, tc.status, status)
			assert.False(t, env.Success)
			assert.Equal(t, tc.msg, env.Message)
			assert.Equal(t, tc.errStr, env.Error)
		})
	}
}

func TestRecoveryWritesEnvelope(t *testing.T) {
	r := gin.New()
	r.Use(gin.CustomRecovery(Recovery))
	r.GET("/panic", func(c *gin.Context) { panic("nil map") })

	status, env := serve(t, r, "/panic")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.False(t, env.Success)
	assert.Equal(t, MsgInternal, env.Message)
}

func TestNotFoundEnvelope(t *testing.T) {
	r := gin.New()
	r.NoRoute(NotFound)

	status, env := serve(t, r, "/nope")
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
	assert.Equal(t, MsgEndpointNotFound, env.Message)
}
