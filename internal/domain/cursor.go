package domain

import "time"

// Cursor marks a position in the activity stream. Exactly one
// representation is active: a server-issued opaque token, or a Since
// timestamp fallback used when no token exists or the server rejected
// the stored one. The token wins when both are set.
type Cursor struct {
	Token string
	Since time.Time
}

func SinceCursor(t time.Time) Cursor {
	return Cursor{Since: t}
}

func TokenCursor(token string) Cursor {
	return Cursor{Token: token}
}

func (c Cursor) HasToken() bool {
	return c.Token != ""
}

func (c Cursor) IsZero() bool {
	return c.Token == "" && c.Since.IsZero()
}
