// Package flash carries one-shot success and error notices across a
// redirect. Messages live in the request's cookie session and are reached
// through the gin context of the request being served.
package flash

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const (
	KeySuccess = "success"
	KeyError   = "error"
)

// Messages are the notices pending for the current visitor
type Messages struct {
	Success []string
	Error   []string
}

// Empty returns true when there is nothing to show
func (m Messages) Empty() bool {
	return len(m.Success) == 0 && len(m.Error) == 0
}

// Middleware installs the cookie-backed session that stores the messages
func Middleware(name string, secret []byte, secure bool) gin.HandlerFunc {
	store := cookie.NewStore(secret)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(name, store)
}

// Success queues a success message for the next rendered page
func Success(c *gin.Context, message string) error {
	return add(c, KeySuccess, message)
}

// Error queues an error message for the next rendered page
func Error(c *gin.Context, message string) error {
	return add(c, KeyError, message)
}

func add(c *gin.Context, key, message string) error {
	session := sessions.Default(c)
	session.AddFlash(message, key)
	if err := session.Save(); err != nil {
		return fmt.Errorf("failed to save %s flash: %w", key, err)
	}
	return nil
}

// Pop returns every pending message and removes it from the session
func Pop(c *gin.Context) (Messages, error) {
	session := sessions.Default(c)
	m := Messages{
		Success: toStrings(session.Flashes(KeySuccess)),
		Error:   toStrings(session.Flashes(KeyError)),
	}
	if m.Empty() {
		return m, nil
	}
	if err := session.Save(); err != nil {
		return m, fmt.Errorf("failed to clear flashes: %w", err)
	}
	return m, nil
}

func toStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
