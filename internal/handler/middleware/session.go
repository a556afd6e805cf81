package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the anonymous composition session. The browser keeps
// whatever ID the first response hands back and plays it on every call.
const SessionHeader = "X-Session-ID"

const sessionContextKey = "session_id"

// SessionMiddleware resolves the session ID for package routes. A missing or
// malformed header gets a fresh session; the ID is always echoed on the
// response so the client can persist it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := uuid.Parse(c.GetHeader(SessionHeader))
		if err != nil {
			sessionID = uuid.New()
		}

		c.Set(sessionContextKey, sessionID)
		c.Header(SessionHeader, sessionID.String())
		c.Next()
	}
}

func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return uuid.Nil, false
	}
	sessionID, ok := value.(uuid.UUID)
	return sessionID, ok
}
