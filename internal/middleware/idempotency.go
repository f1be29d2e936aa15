package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

type cachedResponse struct {
	ContentType string `json:"content_type"`
	Body        string `json:"body"`
}

// Idempotency deduplicates retried POST mutations. It only engages when the
// client sends an Idempotency-Key header; the legacy frontend never does,
// so the documented endpoint behavior is unchanged without one.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")

		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		userID := c.GetString("user_id")
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached cachedResponse
			if json.Unmarshal([]byte(val), &cached) == nil {
				c.Abort()
				c.Data(http.StatusOK, cached.ContentType, []byte(cached.Body))
				return
			}
		}

		// SetNX so only one in-flight request per key does the work; the
		// short expiry releases the lock if the server dies mid-request.
		isNew, _ := rdb.SetNX(ctx, lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"message": "A request with this idempotency key is already being processed.",
			})
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = recorder

		c.Next()

		// Replay only successful outcomes; a failed attempt may be retried.
		if recorder.Status() < http.StatusInternalServerError {
			cached, err := json.Marshal(cachedResponse{
				ContentType: recorder.Header().Get("Content-Type"),
				Body:        recorder.body.String(),
			})
			if err == nil {
				rdb.Set(ctx, cacheKey, cached, idempotencyTTL)
			}
		}
		rdb.Del(ctx, lockKey)
	}
}
