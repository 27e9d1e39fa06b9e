package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"maitri/internal/config"
	"maitri/internal/models"
)

// Session keys holding the signed-in operator.
const (
	sessionOperatorSub   = "operator_sub"
	sessionOperatorEmail = "operator_email"
	sessionOperatorName  = "operator_name"

	// SessionRedirectAfterLogin remembers where to send the operator after login.
	SessionRedirectAfterLogin = "redirect_after_login"
)

// localsOperator is the fiber.Ctx locals key for the current operator.
const localsOperator = "operator"

// SetOperator stores op in the session.
func SetOperator(sess *session.Middleware, op *models.Operator) {
	sess.Set(sessionOperatorSub, op.Sub)
	sess.Set(sessionOperatorEmail, op.Email)
	sess.Set(sessionOperatorName, op.Name)
}

// OperatorFromSession returns the operator stored in the session, or nil.
func OperatorFromSession(sess *session.Middleware) *models.Operator {
	if sess == nil {
		return nil
	}
	sub, _ := sess.Get(sessionOperatorSub).(string)
	if sub == "" {
		return nil
	}
	email, _ := sess.Get(sessionOperatorEmail).(string)
	name, _ := sess.Get(sessionOperatorName).(string)
	return &models.Operator{Sub: sub, Email: email, Name: name}
}

// Operator returns the operator loaded by the auth middleware, or nil.
func Operator(c fiber.Ctx) *models.Operator {
	op, _ := c.Locals(localsOperator).(*models.Operator)
	return op
}

// AuthMiddleware gates the dashboard behind the optional OIDC operator login.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// RequireAuth ensures the operator is signed in when login is enabled.
// Page requests are redirected to /login; API requests get a JSON 401.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	if !m.cfg.IsAuthEnabled() {
		return c.Next()
	}

	sess := session.FromContext(c)
	op := OperatorFromSession(sess)
	if op == nil {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error":  "unauthorized",
			})
		}
		if sess != nil && c.Method() == fiber.MethodGet {
			sess.Set(SessionRedirectAfterLogin, c.OriginalURL())
		}
		if c.Get("HX-Request") == "true" {
			c.Set("HX-Redirect", "/login")
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.Redirect().To("/login")
	}

	c.Locals(localsOperator, op)
	return c.Next()
}

// OptionalAuth loads the operator if signed in, but doesn't require it.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	if op := OperatorFromSession(session.FromContext(c)); op != nil {
		c.Locals(localsOperator, op)
	}
	return c.Next()
}
