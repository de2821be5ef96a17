package identifier

import (
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1000 generations per prefix, all matching the documented format.
func TestNew_Format(t *testing.T) {
	for _, prefix := range []string{PrefixCenter, PrefixDonation, PrefixCard} {
		re := regexp.MustCompile(fmt.Sprintf(`^%s\d{1,3}33-[A-Z]{3}$`, prefix))
		for i := 0; i < 1000; i++ {
			id := New(prefix)
			require.Regexp(t, re, id)
		}
	}
}

func TestIsDuplicate(t *testing.T) {
	assert.False(t, IsDuplicate(nil))
	assert.False(t, IsDuplicate(errors.New("connection refused")))
	assert.True(t, IsDuplicate(errors.New(`duplicate key value violates unique constraint "donation_records_pkey"`)))
	assert.True(t, IsDuplicate(errors.New("UNIQUE constraint failed: donation_records.donation_id")))
	assert.True(t, IsDuplicate(&DuplicateError{ID: "DON133-AAA"}))
}

func TestNewWithRetry_SucceedsAfterCollisions(t *testing.T) {
	calls := 0
	id, err := NewWithRetry(PrefixDonation, func(id string) error {
		calls++
		if calls < 3 {
			return errors.New("UNIQUE constraint failed: donation_records.donation_id")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Regexp(t, `^DON\d{1,3}33-[A-Z]{3}$`, id)
}

func TestNewWithRetry_Exhausted(t *testing.T) {
	calls := 0
	_, err := NewWithRetry(PrefixCard, func(id string) error {
		calls++
		return errors.New("UNIQUE constraint failed: donor_id_cards.card_id")
	})
	require.Error(t, err)
	assert.Equal(t, MaxAttempts, calls)
	var dup *DuplicateError
	assert.ErrorAs(t, err, &dup)
}

func TestNewWithRetry_NonDuplicateErrorStops(t *testing.T) {
	boom := errors.New("connection reset")
	calls := 0
	_, err := NewWithRetry(PrefixCenter, func(id string) error {
		calls++
		return boom
	})
	assert.Equal(t, 1, calls)
	assert.Equal(t, boom, err)
}
