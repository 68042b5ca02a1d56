package redis

import (
	"context"
	"testing"
	"time"

	"merchant-settlement/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAttempt(merchantID uuid.UUID) *domain.LinkingAttempt {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.LinkingAttempt{
		ID:                 uuid.New(),
		MerchantID:         merchantID,
		BankName:           "Access Bank",
		BankCode:           "044",
		AccountNumberEnc:   "enc",
		AccountNumberLast4: "6789",
		AccountName:        "ADA OKAFOR",
		BankID:             "bank-044",
		PinDigest:          "digest",
		ConsentGiven:       true,
		VerifiedAt:         now,
		ExpiresAt:          now.Add(15 * time.Minute),
	}
}

func TestLinkingAttemptStore_SaveAndGet(t *testing.T) {
	s := miniredis.RunT(t)
	store := NewLinkingAttemptStore(goredis.NewClient(&goredis.Options{Addr: s.Addr()}))
	ctx := context.Background()
	a := newTestAttempt(uuid.New())

	require.NoError(t, store.Save(ctx, a, 15*time.Minute))

	got, err := store.Get(ctx, a.MerchantID, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, a.AccountName, got.AccountName)
	assert.Equal(t, a.PinDigest, got.PinDigest)
	assert.True(t, a.VerifiedAt.Equal(got.VerifiedAt))
}

func TestLinkingAttemptStore_NewAttemptSupersedesOld(t *testing.T) {
	s := miniredis.RunT(t)
	store := NewLinkingAttemptStore(goredis.NewClient(&goredis.Options{Addr: s.Addr()}))
	ctx := context.Background()
	merchantID := uuid.New()
	first := newTestAttempt(merchantID)
	second := newTestAttempt(merchantID)

	require.NoError(t, store.Save(ctx, first, 15*time.Minute))
	require.NoError(t, store.Save(ctx, second, 15*time.Minute))

	got, err := store.Get(ctx, merchantID, first.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "superseded attempt must not be returned")

	got, err = store.Get(ctx, merchantID, second.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestLinkingAttemptStore_Expiry(t *testing.T) {
	s := miniredis.RunT(t)
	store := NewLinkingAttemptStore(goredis.NewClient(&goredis.Options{Addr: s.Addr()}))
	ctx := context.Background()
	a := newTestAttempt(uuid.New())

	require.NoError(t, store.Save(ctx, a, time.Minute))
	s.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, a.MerchantID, a.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLinkingAttemptStore_OtherMerchant(t *testing.T) {
	s := miniredis.RunT(t)
	store := NewLinkingAttemptStore(goredis.NewClient(&goredis.Options{Addr: s.Addr()}))
	ctx := context.Background()
	a := newTestAttempt(uuid.New())

	require.NoError(t, store.Save(ctx, a, time.Minute))

	got, err := store.Get(ctx, uuid.New(), a.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLinkingAttemptStore_Delete(t *testing.T) {
	s := miniredis.RunT(t)
	store := NewLinkingAttemptStore(goredis.NewClient(&goredis.Options{Addr: s.Addr()}))
	ctx := context.Background()
	a := newTestAttempt(uuid.New())

	require.NoError(t, store.Save(ctx, a, time.Minute))
	require.NoError(t, store.Delete(ctx, a.MerchantID))

	got, err := store.Get(ctx, a.MerchantID, a.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, s.Exists("linking:"+a.MerchantID.String()))
}
