package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/sourcing-lens/internal/domain/dto"
	"github.com/guttosm/sourcing-lens/internal/i18n"
)

const (
	IdempotencyKeyHeader      = "Idempotency-Key"
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	maxIdempotencyKeyLength   = 255
)

// Idempotency replays the stored 2xx response of a previous POST with the
// same Idempotency-Key, caller, path and body. A concurrent duplicate gets
// 409 while the first request is still running. Requests without the
// header pass through.
func Idempotency(cache *IdempotencyCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if cache == nil || c.Request.Method != http.MethodPost || key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLength {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewError(dto.ErrCodeInvalidRequest, i18n.T(c, i18n.ErrKeyInvalidRequest)).
					WithRequestID(GetRequestID(c)).
					WithDetails(map[string]string{IdempotencyKeyHeader: "must be at most 255 characters"}))
			return
		}

		fp, err := fingerprint(key, GetUserID(c), c.Request)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		stored, inFlight := cache.reserve(fp)
		switch {
		case inFlight:
			c.AbortWithStatusJSON(http.StatusConflict,
				dto.NewError(dto.ErrCodeConflict, i18n.T(c, i18n.ErrKeyConflict)).
					WithRequestID(GetRequestID(c)))
			return
		case stored != nil:
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(stored.StatusCode, stored.ContentType, stored.Body)
			c.Abort()
			return
		}

		completed := false
		defer func() {
			if !completed {
				cache.release(fp)
			}
		}()

		rec := &recordingWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = rec

		c.Next()

		if status := rec.Status(); status >= 200 && status < 300 {
			cache.complete(fp, &cachedResponse{
				StatusCode:  status,
				ContentType: rec.Header().Get("Content-Type"),
				Body:        rec.body.Bytes(),
			})
			completed = true
		}
	}
}

func fingerprint(key, userID string, req *http.Request) (string, error) {
	h := sha256.New()
	for _, part := range []string{key, userID, req.URL.Path} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}

	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return "", err
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
		h.Write(body)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

type recordingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
