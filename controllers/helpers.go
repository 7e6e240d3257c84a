package controllers

import (
	"time"

	"github.com/iyunseong/mental-n-fit-sub000/services"

	"github.com/gin-gonic/gin"
)

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	default:
		return 0, false
	}
}

// resolveUserID applies the write-identity rule: the session user wins
// whenever one exists; a caller-supplied override counts only without a
// session (trusted automation). Neither present is ErrNoAuth.
func resolveUserID(c *gin.Context, override uint) (uint, error) {
	if id, ok := userIDFromCtx(c); ok {
		return id, nil
	}
	if override != 0 {
		return override, nil
	}
	return 0, services.ErrNoAuth
}

func parseDate(v string) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02", v, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func parseDateParam(c *gin.Context, key string) (time.Time, bool) {
	v := c.Param(key)
	if v == "" {
		v = c.Query(key)
	}
	return parseDate(v)
}

// parseRange reads from/to query params, defaulting to the trailing 30
// days ending today.
func parseRange(c *gin.Context) (from, to time.Time, ok bool) {
	now := time.Now()
	to = now
	from = now.AddDate(0, 0, -30)

	if v := c.Query("from"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return from, to, false
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return from, to, false
		}
		to = t
	}
	if to.Before(from) {
		return from, to, false
	}
	return from, to, true
}
