package service_test

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopexperts/rewards/internal/constants"
	"github.com/shopexperts/rewards/internal/model"
	"github.com/shopexperts/rewards/internal/repository"
	"github.com/shopexperts/rewards/internal/service"
)

// scriptedRand replays a fixed sequence so padding characters are known.
type scriptedRand struct {
	values []int
	pos    int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.pos%len(r.values)]
	r.pos++
	return v % n
}

// userDirectoryStub resolves only the ids it was given.
type userDirectoryStub struct {
	users map[int64]model.User
}

func newUserDirectory(ids ...int64) *userDirectoryStub {
	users := make(map[int64]model.User, len(ids))
	for _, id := range ids {
		users[id] = model.User{ID: id, FirstName: "User"}
	}
	return &userDirectoryStub{users: users}
}

func (d *userDirectoryStub) FindByID(_ context.Context, id int64) (model.User, error) {
	u, ok := d.users[id]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func TestReferralCodec_EncodeKnownPadding(t *testing.T) {
	// Alphabet is A-Z then 0-9: index 33 -> '7', 10 -> 'K', 35 -> '9'.
	rng := &scriptedRand{values: []int{33, 10, 35}}
	codec := service.NewReferralCodec(newUserDirectory(100), rng)

	code := codec.Encode(100)

	assert.Equal(t, "REF2S7K9", code)
	assert.Len(t, code, 8)
}

func TestReferralCodec_EncodeLongID(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	codec := service.NewReferralCodec(newUserDirectory(), rng)

	// base36(999999999) is 6 characters, so the code exceeds the target
	// length and carries no padding.
	code := codec.Encode(999999999)

	assert.Equal(t, "REFGJDGXR", code)
	assert.Len(t, code, 9)
}

func TestReferralCodec_DecodeKnownCode(t *testing.T) {
	codec := service.NewReferralCodec(newUserDirectory(100), nil)

	// Candidate length 1 ("2" -> 2) finds no user; length 2 ("2S" -> 100)
	// resolves and wins.
	userID, err := codec.Decode(context.Background(), "REF2S7K9")

	require.NoError(t, err)
	assert.Equal(t, int64(100), userID)
}

func TestReferralCodec_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, userID := range []int64{1, 35, 36, 100, 46656, 999999999} {
		codec := service.NewReferralCodec(newUserDirectory(userID), rng)

		for i := 0; i < 5; i++ {
			code := codec.Encode(userID)
			require.True(t, strings.HasPrefix(code, "REF"))
			require.GreaterOrEqual(t, len(code), 8)

			decoded, err := codec.Decode(context.Background(), code)
			require.NoError(t, err, "code %q for user %d", code, userID)
			assert.Equal(t, userID, decoded, "code %q", code)
		}
	}
}

func TestReferralCodec_DecodeShortestMatchWins(t *testing.T) {
	// User 2 exists, so the first padding-free candidate "2" shadows the
	// real referrer 100 inside "REF2S7K9". This false positive is part of
	// the code format, not a decoder bug.
	codec := service.NewReferralCodec(newUserDirectory(2, 100), nil)

	userID, err := codec.Decode(context.Background(), "REF2S7K9")

	require.NoError(t, err)
	assert.Equal(t, int64(2), userID)
}

func TestReferralCodec_DecodeInvalidFormat(t *testing.T) {
	codec := service.NewReferralCodec(newUserDirectory(100), nil)

	for _, code := range []string{"", "REF", "ABC2S7K9", "ref2S7K9"} {
		_, err := codec.Decode(context.Background(), code)

		var serviceErr service.Error
		require.ErrorAs(t, err, &serviceErr, "code %q", code)
		assert.Equal(t, constants.ErrCodeReferralCodeFormat, serviceErr.Code, "code %q", code)
	}
}

func TestReferralCodec_DecodeNoMatchingUser(t *testing.T) {
	codec := service.NewReferralCodec(newUserDirectory(), nil)

	_, err := codec.Decode(context.Background(), "REF2S7K9")

	var serviceErr service.Error
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, constants.ErrCodeInvalidReferralCode, serviceErr.Code)
	assert.True(t, errors.Is(err, service.ErrInvalidReferralCode))
}
