package identifier

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"gorm.io/gorm"
)

// Entity-type prefixes (Express generateCenterId/generateDonationId/generateCardId).
const (
	PrefixCenter   = "CTR"
	PrefixDonation = "DON"
	PrefixCard     = "CRD"
)

// tenantTag is the installation identifier baked into every generated ID
// (the "33" segment of "CTR421" + "33" + "-QXZ" in the Express models).
const tenantTag = "33"

// MaxAttempts caps duplicate-ID regeneration before the caller gives up.
const MaxAttempts = 5

// DuplicateError reports that a generated identifier collided with an
// existing row. Callers regenerate and retry up to MaxAttempts.
type DuplicateError struct {
	ID string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate identifier %q", e.ID)
}

// New produces "<prefix><0-999><tenantTag>-<3 random uppercase letters>".
// Uniqueness is not guaranteed by construction; the database unique
// constraint is the authority and collisions surface via IsDuplicate.
func New(prefix string) string {
	return fmt.Sprintf("%s%d%s-%s", prefix, rand.IntN(1000), tenantTag, randomLetters(3))
}

func randomLetters(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(byte('A' + rand.IntN(26)))
	}
	return b.String()
}

// IsDuplicate reports whether err is a uniqueness-constraint rejection from
// the store. Covers GORM's translated error plus the raw Postgres and SQLite
// messages, since error translation is driver dependent.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var dup *DuplicateError
	if errors.As(err, &dup) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// NewWithRetry generates an ID and calls create with it, regenerating on
// duplicate-identifier rejections up to MaxAttempts. Any other error from
// create is returned as is. On exhaustion the last DuplicateError is
// returned so the caller can escalate to an internal error.
func NewWithRetry(prefix string, create func(id string) error) (string, error) {
	var lastErr error
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		id := New(prefix)
		err := create(id)
		if err == nil {
			return id, nil
		}
		if !IsDuplicate(err) {
			return "", err
		}
		lastErr = &DuplicateError{ID: id}
	}
	return "", lastErr
}
