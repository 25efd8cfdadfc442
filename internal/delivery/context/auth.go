// Package context carries request-scoped values between middleware and handlers.
package context

import "github.com/labstack/echo/v4"

const (
	// KeyUserID is the key under which the auth middleware stores the
	// authenticated user's ID on the echo context.
	KeyUserID ContextKey = "user_id"

	// KeyUserEmail is the key for the authenticated user's email.
	KeyUserEmail ContextKey = "user_email"
)

// SetAuthenticatedUser records the verified token claims on the request.
func SetAuthenticatedUser(c echo.Context, userID int64, email string) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyUserEmail), email)
}

// GetUserID returns the authenticated user's ID, or false when the request
// carried no valid token (anonymous access through the optional guard).
func GetUserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(string(KeyUserID)).(int64)

	return id, ok
}

// GetUserEmail returns the authenticated user's email, if any.
func GetUserEmail(c echo.Context) (string, bool) {
	email, ok := c.Get(string(KeyUserEmail)).(string)

	return email, ok
}
