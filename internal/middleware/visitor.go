package middleware

import (
	"log/slog"
	"time"

	"github.com/devshowcase/showcase-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const visitCookie = "visit_session"

// VisitTracker issues a session cookie and records the daily site visit.
// Recording is best-effort; a store failure never blocks the request.
func VisitTracker(visits *services.VisitService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(visitCookie)
		if sessionID == "" {
			sessionID = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     visitCookie,
				Value:    sessionID,
				Expires:  time.Now().AddDate(1, 0, 0),
				HTTPOnly: true,
				SameSite: "Lax",
			})
		}

		if _, err := visits.Record(sessionID, c.Get(fiber.HeaderUserAgent), c.IP()); err != nil {
			slog.Warn("visit tracking failed", "error", err)
		}
		return c.Next()
	}
}
