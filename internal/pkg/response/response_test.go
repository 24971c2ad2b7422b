package response

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMessageAndErrorResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Message(c, "ok")
	require.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "ok", body["message"])

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Error(c, 400, "bad request", "BAD_REQ")
	require.Equal(t, 400, w.Code)
	var bodyErr map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bodyErr))
	require.Equal(t, "bad request", bodyErr["error"])
	require.Equal(t, "BAD_REQ", bodyErr["code"])
}

func TestErrorWithoutCodeOmitsField(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	NotFound(c, "missing")

	require.Equal(t, 404, w.Code)
	require.JSONEq(t, `{"error":"missing"}`, w.Body.String())
}

func TestHelperCodes(t *testing.T) {
	cases := []struct {
		name   string
		call   func(c *gin.Context)
		status int
		code   string
	}{
		{"bind", func(c *gin.Context) { BindJSONError(c, errors.New("eof")) }, 400, "INVALID_JSON"},
		{"validation", func(c *gin.Context) { ValidationFailed(c, "email is required") }, 400, "VALIDATION_FAILED"},
		{"invalid id", InvalidID, 400, "INVALID_ID"},
		{"database", func(c *gin.Context) { DatabaseError(c, "boom") }, 500, "DATABASE_ERROR"},
		{"forbidden", func(c *gin.Context) { AuthorizationError(c, "nope") }, 403, "FORBIDDEN"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tc.call(c)

			require.Equal(t, tc.status, w.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, tc.code, body.Code)
		})
	}
}

func TestOKWritesRawBody(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	OK(c, []map[string]any{{"_id": "CeraVe", "count": 2}})

	require.Equal(t, 200, w.Code)
	require.JSONEq(t, `[{"_id":"CeraVe","count":2}]`, w.Body.String())
}
