package sqlite

import "errors"

// ErrNotFound reports a missing plan, year or share link. Handlers map it to
// a 404 without inspecting message text.
var ErrNotFound = errors.New("not found")
