package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"pcapi/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100

	cursorPrefix = "b1:"
)

// Cursor is opaque to clients. It points after the last booking of a page,
// ordered by creation date then id, newest first.
type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeAfterCursor keeps microseconds, the precision of timestamptz.
func EncodeAfterCursor(dateCreated time.Time, bookingID uuid.UUID) string {
	raw := cursorPrefix + strconv.FormatInt(dateCreated.UnixMicro(), 10) + "." + bookingID.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor is not base64url")
	}

	payload, ok := strings.CutPrefix(string(decoded), cursorPrefix)
	if !ok {
		return time.Time{}, uuid.Nil, errs.New("unknown cursor version")
	}
	micros, id, ok := strings.Cut(payload, ".")
	if !ok {
		return time.Time{}, uuid.Nil, errs.New("cursor must be <micros>.<booking id>")
	}

	ts, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor timestamp")
	}
	bookingID, err := uuid.Parse(id)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor booking id")
	}
	return time.UnixMicro(ts).UTC(), bookingID, nil
}

func ValidateLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
