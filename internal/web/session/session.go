// Package session keeps the visitor's remembered notification email so the
// settings form can prefill on return visits.
package session

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage"
)

const emailKey = "notification_email"

// Store is the global session store instance.
var Store *session.Store

// Init initializes the session store with the provided storage backend.
// A nil backend falls back to fiber's in-memory storage.
func Init(backend storage.Storage) {
	if backend == nil {
		Store = session.New()
		return
	}

	Store = session.New(session.Config{
		Storage: backend,
	})
}

// RememberEmail stores the notification email in the visitor's session.
func RememberEmail(c *fiber.Ctx, email string) error {
	sess, err := Store.Get(c)
	if err != nil {
		return err
	}

	sess.Set(emailKey, email)

	return sess.Save()
}

// RememberedEmail returns the notification email remembered for this
// visitor, or an empty string.
func RememberedEmail(c *fiber.Ctx) string {
	sess, err := Store.Get(c)
	if err != nil {
		return ""
	}

	if email, ok := sess.Get(emailKey).(string); ok {
		return email
	}

	return ""
}
