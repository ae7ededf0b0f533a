package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdempotencyRouter(t *testing.T) (*gin.Engine, redismock.ClientMock, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rdb, mock := redismock.NewClientMock()
	t.Cleanup(func() { rdb.Close() })

	handled := 0
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
	})
	r.POST("/payrolls/generate", Idempotency(rdb), func(c *gin.Context) {
		handled++
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	return r, mock, &handled
}

func TestIdempotencyFirstRequestPassesThrough(t *testing.T) {
	r, mock, handled := newIdempotencyRouter(t)

	cacheKey := "idemp:/payrolls/generate:user-1:key-1"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)

	req := httptest.NewRequest(http.MethodPost, "/payrolls/generate", nil)
	req.Header.Set("Idempotency-Key", "key-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, *handled)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyReplaysCachedResponse(t *testing.T) {
	r, mock, handled := newIdempotencyRouter(t)

	cacheKey := "idemp:/payrolls/generate:user-1:key-1"
	mock.ExpectGet(cacheKey).SetVal(`{"generated_count":1}`)

	req := httptest.NewRequest(http.MethodPost, "/payrolls/generate", nil)
	req.Header.Set("Idempotency-Key", "key-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "generated_count")
	assert.Equal(t, 0, *handled)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyRejectsInFlightDuplicate(t *testing.T) {
	r, mock, handled := newIdempotencyRouter(t)

	cacheKey := "idemp:/payrolls/generate:user-1:key-1"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

	req := httptest.NewRequest(http.MethodPost, "/payrolls/generate", nil)
	req.Header.Set("Idempotency-Key", "key-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "PROCESSING")
	assert.Equal(t, 0, *handled)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencySkipsWithoutKey(t *testing.T) {
	r, mock, handled := newIdempotencyRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/payrolls/generate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, *handled)
	require.NoError(t, mock.ExpectationsWereMet())
}
