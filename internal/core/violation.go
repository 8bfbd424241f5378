package core

// Violation is a constraint failure: an opaque reason Code plus a
// Stopped flag. Stopped means "give up this route entirely"; not-stopped
// means "this position doesn't work, but keep scanning the route"
// (spec.md §4.1, §9 GLOSSARY).
type Violation struct {
	Code    Code
	Stopped bool
}

// NewViolation builds a Violation.
func NewViolation(code Code, stopped bool) *Violation {
	return &Violation{Code: code, Stopped: stopped}
}
