package domain

import "errors"

// ErrNotFound is returned by service functions when the requested room does
// not exist in the catalog.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing name, difficulty outside 1–10).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrEmptySelection is returned by the planner when asked to plan a trip with
// no rooms selected. It is a user-visible condition, not a failure: handlers
// map it to 422 with an explanatory message rather than 500.
var ErrEmptySelection = errors.New("empty selection")
