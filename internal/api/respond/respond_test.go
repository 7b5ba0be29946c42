package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"artist-portfolio/internal/logger"
	"artist-portfolio/internal/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Silence()
}

func run(err error) (int, map[string]string) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Error(c, err)
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w.Code, body
}

func TestErrorMapsAppErrors(t *testing.T) {
	code, body := run(apperror.ErrArtworkNotFound)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Artwork not found", body["error"])
	_, hasDetails := body["details"]
	assert.False(t, hasDetails)

	code, body = run(apperror.Wrap(errors.New("duplicate key"), apperror.ErrCodeDatabase, "Failed to save artwork"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Failed to save artwork", body["error"])
	assert.Equal(t, "duplicate key", body["details"])
}

func TestErrorUnknown(t *testing.T) {
	code, body := run(errors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "boom", body["details"])
}
