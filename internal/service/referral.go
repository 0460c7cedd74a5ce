package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/shopexperts/rewards/internal/constants"
	"github.com/shopexperts/rewards/internal/repository"
)

const (
	referralPrefix     = "REF"
	referralCodeLength = 8
	referralAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	ErrReferralCodeFormat  = errors.New("INVALID_REFERRAL_CODE_FORMAT")
	ErrInvalidReferralCode = errors.New("INVALID_REFERRAL_CODE")
)

// Rand is the randomness source for code padding. Injected so tests can pin
// the padding and assert exact codes.
type Rand interface {
	Intn(n int) int
}

// ReferralCodec turns a user id into a short shareable code and back. Nothing
// is persisted: the code is "REF" + base36(userID) in uppercase, right-padded
// with random characters from the same alphabet up to 8 characters. Encoding
// the same id twice yields different codes; both decode to the same id.
type ReferralCodec interface {
	Encode(userID int64) string
	Decode(ctx context.Context, code string) (int64, error)
}

type referralCodec struct {
	users repository.UserRepository
	mu    sync.Mutex
	rng   Rand
}

func NewReferralCodec(users repository.UserRepository, rng Rand) ReferralCodec {
	return &referralCodec{users: users, rng: rng}
}

func (c *referralCodec) Encode(userID int64) string {
	var code strings.Builder
	code.WriteString(referralPrefix)
	code.WriteString(strings.ToUpper(strconv.FormatInt(userID, 36)))

	c.mu.Lock()
	for code.Len() < referralCodeLength {
		code.WriteByte(referralAlphabet[c.rng.Intn(len(referralAlphabet))])
	}
	c.mu.Unlock()

	return code.String()
}

// Decode probes candidate id lengths from shortest to longest and accepts the
// first prefix that parses as base36 and resolves to an existing user. The
// padding alphabet overlaps the id alphabet, so the decoder cannot know where
// the id ends; a side effect is that a short real id formed from padding
// characters can shadow the intended referrer. That ambiguity is part of the
// code format and deliberately not "fixed" here.
func (c *referralCodec) Decode(ctx context.Context, code string) (int64, error) {
	if !strings.HasPrefix(code, referralPrefix) || len(code) == len(referralPrefix) {
		return 0, NewServiceError(constants.ErrCodeReferralCodeFormat, ErrReferralCodeFormat)
	}

	rest := code[len(referralPrefix):]

	for l := 1; l <= len(rest); l++ {
		userID, err := strconv.ParseInt(rest[:l], 36, 64)
		if err != nil {
			continue
		}

		_, err = c.users.FindByID(ctx, userID)
		if err == nil {
			return userID, nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return 0, NewServiceError(constants.ErrCodeOperationFailed, err)
		}
	}

	return 0, NewServiceError(constants.ErrCodeInvalidReferralCode, ErrInvalidReferralCode)
}
