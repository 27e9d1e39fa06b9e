package handlers

import (
	"html"

	"github.com/gofiber/fiber/v3"
)

// htmxError returns an error message as HTML that HTMX will display in the
// chat error slot. Uses 200 status so HTMX processes the swap (HTMX ignores
// non-2xx by default).
func htmxError(c fiber.Ctx, message string) error {
	c.Set("HX-Retarget", "#chat-error")
	c.Set("HX-Reswap", "innerHTML")
	return c.SendString(`<div class="chat-error">` + html.EscapeString(message) + `</div>`)
}
