package domain

import (
	"time"
)

// Event is a semi-structured record of a captured web request or activity.
// Beyond the well-known fields (captureType, method, url, userEmail,
// dateTime, resourceType, tabId, requestId, origin) clients may attach
// arbitrary keys, all of which are persisted as-is. Events are created once
// and never updated or deleted by this system.
type Event map[string]any

// dateTimeLayouts are the accepted dateTime formats, tried in order.
// RFC 3339 covers the common case; the remaining layouts accept ISO 8601
// timestamps without an explicit zone and plain dates.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// NewEvent validates a raw request body and builds the event document to
// persist. The body must be a non-empty object carrying a parseable dateTime
// string. The stored document is the body with dateTime replaced by the
// parsed timestamp and origin set from the request's Origin header (omitted
// when the header is absent).
//
// Returns a *ValidationError wrapping the matching sentinel when the body is
// empty, dateTime is missing or not a string, or dateTime does not parse.
func NewEvent(body map[string]any, origin string) (Event, error) {
	if len(body) == 0 {
		return nil, NewValidationError("body", "must contain an event document", ErrEmptyBody)
	}

	raw, ok := body["dateTime"].(string)
	if !ok || raw == "" {
		return nil, NewValidationError(
			"dateTime",
			"must be a string in ISO 8601 format according to universal time",
			ErrMissingDateTime,
		)
	}

	ts, err := ParseDateTime(raw)
	if err != nil {
		return nil, NewValidationError(
			"dateTime",
			"must be a valid date in ISO 8601 format according to universal time",
			ErrInvalidDateTime,
		)
	}

	doc := make(Event, len(body)+1)
	for k, v := range body {
		doc[k] = v
	}
	doc["dateTime"] = ts
	if origin != "" {
		doc["origin"] = origin
	}

	return doc, nil
}

// ParseDateTime parses an event dateTime string, trying each accepted
// layout in order. Returns ErrInvalidDateTime when no layout matches.
func ParseDateTime(raw string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, ErrInvalidDateTime
}
