package middleware

import (
    "encoding/json"
    "io"
    "sync"
    "time"

    "github.com/gofiber/fiber/v2"
)

// LoggerWithWriter is a middleware that logs each HTTP request as one JSON
// object per line on w.
// Fields:
// - ts (RFC3339Nano in loc)
// - request_id (taken from context locals set by RequestID middleware)
// - method
// - path
// - status
// - latency (in milliseconds, as float)
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
    enc := json.NewEncoder(w)
    var mu sync.Mutex

    return func(c *fiber.Ctx) error {
        start := time.Now()

        // Process request
        err := c.Next()

        // Collect fields after handler executed to capture final status
        rid, _ := c.Locals(RequestIDLocalKey).(string)
        entry := map[string]any{
            "ts":         time.Now().In(loc).Format(time.RFC3339Nano),
            "request_id": rid,
            "method":     c.Method(),
            "path":       c.Path(),
            "status":     c.Response().StatusCode(),
            "latency":    float64(time.Since(start).Microseconds()) / 1000.0,
        }

        mu.Lock()
        _ = enc.Encode(entry)
        mu.Unlock()

        return err
    }
}
