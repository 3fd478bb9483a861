// Common test helpers
package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Utkarsh123xd/Student-Sphere/config"
	"github.com/Utkarsh123xd/Student-Sphere/db/docstore"
	"github.com/Utkarsh123xd/Student-Sphere/logger"
	"github.com/Utkarsh123xd/Student-Sphere/validation"
)

const testActiveUser = "clara"

type testCase struct {
	name           string
	method         string
	endpoint       string
	requestBody    map[string]any
	queryParams    map[string]string
	activeUser     string
	expectedStatus int
	checkResponse  func(assert *require.Assertions, body map[string]any)
}

func newTestLogger() logger.Logger {

	opts := &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}

// setupTestServer builds a router over a seeded temp-dir store. The
// auth middleware is stubbed with one that trusts the test case's
// active user; token validation itself is covered in the api package
// tests.
func setupTestServer(t *testing.T, assert *require.Assertions) (*gin.Engine, docstore.DB) {

	t.Setenv("ENV", "test")
	t.Setenv("DOCSTORE_PATH", filepath.Join(t.TempDir(), "docstore.db"))

	cfg, err := config.Load()
	assert.NoError(err, "could not load config")

	testLogger := newTestLogger()

	db, err := docstore.New(testLogger, cfg)
	assert.NoError(err, "could not create document store")
	t.Cleanup(func() {
		assert.NoError(db.Close(), "could not close document store")
	})

	seedStore(assert, db)

	validator, err := validation.New(testLogger)
	assert.NoError(err, "could not create validator")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if user := c.GetHeader("x-test-user"); user != "" {
			c.Set(ActiveUserKey, user)
		}
		c.Next()
	})

	SetupSearch(router, testLogger, db, validator)
	SetupProfile(router, testLogger, db, validator)
	SetupTopic(router, testLogger, db, validator)

	return router, db
}

func makeTestHTTPRequest(router *gin.Engine, assert *require.Assertions, method string, endpoint string, activeUser string, requestBodyMap map[string]any, queryParams map[string]string) *httptest.ResponseRecorder {

	var err error
	w := httptest.NewRecorder()

	if len(queryParams) > 0 {
		endpoint = endpoint + "?"
		for key, value := range queryParams {
			if endpoint[len(endpoint)-1] != '?' {
				endpoint = endpoint + "&"
			}
			endpoint = endpoint + key + "=" + value
		}
	}

	var jsonBody []byte
	if requestBodyMap != nil {
		jsonBody, err = json.Marshal(requestBodyMap)
		assert.NoError(err)
	}

	var req *http.Request
	if len(jsonBody) > 0 {
		req, err = http.NewRequest(method, endpoint, bytes.NewBuffer(jsonBody))
	} else {
		req, err = http.NewRequest(method, endpoint, nil)
	}
	assert.NoError(err)

	req.Header.Set("Content-Type", "application/json")
	if activeUser != "" {
		req.Header.Set("x-test-user", activeUser)
	}

	router.ServeHTTP(w, req)

	return w
}

func decodeResponse(assert *require.Assertions, w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &body), "response should be valid JSON: %s", w.Body.String())
	return body
}
