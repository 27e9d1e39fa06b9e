package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/google/uuid"
)

const sessionChatID = "chat_id"

// ChatID returns the chat conversation ID for this browser, assigning one on
// first use. It returns "" when no session middleware is installed.
func ChatID(c fiber.Ctx) string {
	sess := session.FromContext(c)
	if sess == nil {
		return ""
	}
	if id, ok := sess.Get(sessionChatID).(string); ok && id != "" {
		return id
	}
	id := uuid.NewString()
	sess.Set(sessionChatID, id)
	return id
}
