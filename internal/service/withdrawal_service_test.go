package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/internal/core/ports/mocks"
	"merchant-settlement/pkg/apperror"
	"merchant-settlement/pkg/money"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testDigestSecret = "digest-secret"

type withdrawalTestDeps struct {
	svc         *WithdrawalServiceImpl
	accounts    *mocks.MockAccountRepository
	withdrawals *mocks.MockWithdrawalRepository
	ledger      *mocks.MockLedgerService
	transactor  *mocks.MockDBTransactor
	hashSvc     *mocks.MockHashService
	otpGen      *mocks.MockOtpGenerator
	otpSender   *mocks.MockOtpSender
	publisher   *mocks.MockEventPublisher
	now         time.Time
}

func setupWithdrawalService(t *testing.T) *withdrawalTestDeps {
	ctrl := gomock.NewController(t)
	limiter := mocks.NewMockAttemptLimiter(ctrl)
	limiter.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()

	d := &withdrawalTestDeps{
		accounts:    mocks.NewMockAccountRepository(ctrl),
		withdrawals: mocks.NewMockWithdrawalRepository(ctrl),
		ledger:      mocks.NewMockLedgerService(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		hashSvc:     mocks.NewMockHashService(ctrl),
		otpGen:      mocks.NewMockOtpGenerator(ctrl),
		otpSender:   mocks.NewMockOtpSender(ctrl),
		publisher:   mocks.NewMockEventPublisher(ctrl),
		now:         time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	d.svc = NewWithdrawalService(WithdrawalDeps{
		Accounts:    d.accounts,
		Withdrawals: d.withdrawals,
		Ledger:      d.ledger,
		Transactor:  d.transactor,
		HashSvc:     d.hashSvc,
		Limiter:     limiter,
		SigSvc:      NewHMACSignatureService(),
		OtpGen:      d.otpGen,
		OtpSender:   d.otpSender,
		Publisher:   d.publisher,
		Policy: WithdrawalPolicy{
			MinAmount:      money.FromMajor(100),
			OtpTTL:         10 * time.Minute,
			MaxOtpAttempts: 5,
			MaxOtpResends:  3,
			StaleAfter:     30 * time.Minute,
			DigestSecret:   testDigestSecret,
		},
		Logger: newTestLogger(),
	})
	d.svc.now = func() time.Time { return d.now }
	return d
}

func linkedAccount(id uuid.UUID, shop, wallet money.Amount) *domain.MerchantAccount {
	a := testAccount(id, shop, wallet)
	a.LinkedBank = &domain.LinkedBank{
		BankName: "Access Bank", BankCode: "044", BankID: "bank-1",
		AccountNumberEnc: "enc", AccountNumberLast4: "6789", AccountName: "ADA STORES",
	}
	return a
}

// issuedSession returns a session in OTP_ISSUED whose code is "123456".
func (d *withdrawalTestDeps) issuedSession(merchantID uuid.UUID, amount money.Amount) *domain.WithdrawalSession {
	expires := d.now.Add(5 * time.Minute)
	return &domain.WithdrawalSession{
		ID:           uuid.New(),
		MerchantID:   merchantID,
		Amount:       amount,
		State:        domain.WithdrawalStateOtpIssued,
		OtpDigest:    Digest(NewHMACSignatureService(), testDigestSecret, merchantID, "123456"),
		OtpExpiresAt: &expires,
		CreatedAt:    d.now.Add(-time.Minute),
		UpdatedAt:    d.now.Add(-time.Minute),
	}
}

// ==================== TransferToWallet ====================

func TestWithdrawalService_TransferToWallet_Success(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	want := &domain.Transfer{ID: uuid.New(), Type: domain.TransferTypeShopToWallet}

	d.accounts.EXPECT().GetByMerchantID(ctx, merchantID).Return(testAccount(merchantID, 5_000, 0), nil)
	d.hashSvc.EXPECT().Verify("1234", "pin_hash").Return(true, nil)
	d.ledger.EXPECT().TransferShopToWallet(ctx, merchantID, money.Amount(5_000)).Return(want, nil)

	got, err := d.svc.TransferToWallet(ctx, merchantID, 5_000, "1234")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWithdrawalService_TransferToWallet_Rejections(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()

	_, err := d.svc.TransferToWallet(ctx, merchantID, 0, "1234")
	assertAppError(t, err, "PAY_002")

	d.accounts.EXPECT().GetByMerchantID(ctx, merchantID).Return(testAccount(merchantID, 100, 0), nil)
	_, err = d.svc.TransferToWallet(ctx, merchantID, 101, "1234")
	assertAppError(t, err, "VAL_002")

	d.accounts.EXPECT().GetByMerchantID(ctx, merchantID).Return(testAccount(merchantID, 100, 0), nil)
	d.hashSvc.EXPECT().Verify("0000", "pin_hash").Return(false, nil)
	_, err = d.svc.TransferToWallet(ctx, merchantID, 100, "0000")
	assertAppError(t, err, "PIN_001")
}

// ==================== StartWithdrawal ====================

func TestWithdrawalService_StartWithdrawal_Success(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}
	var sent string

	d.accounts.EXPECT().GetByMerchantID(ctx, merchantID).Return(linkedAccount(merchantID, 0, money.FromMajor(500)), nil)
	d.hashSvc.EXPECT().Verify("1234", "pin_hash").Return(true, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(ctx, tx, merchantID).Return(nil, nil)
	d.withdrawals.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, s *domain.WithdrawalSession) error {
			assert.Equal(t, domain.WithdrawalStatePinVerified, s.State)
			return nil
		})
	d.otpGen.EXPECT().Generate().Return("482913", nil)
	d.otpSender.EXPECT().SendOtp(ctx, merchantID, "482913").DoAndReturn(
		func(_ context.Context, _ uuid.UUID, code string) error {
			assert.True(t, tx.committed, "the code is sent only after its digest is committed")
			sent = code
			return nil
		})
	d.withdrawals.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)

	session, err := d.svc.StartWithdrawal(ctx, merchantID, money.FromMajor(200), "1234")
	require.NoError(t, err)
	assert.True(t, tx.committed)
	assert.Equal(t, domain.WithdrawalStateOtpIssued, session.State)
	assert.Equal(t, money.FromMajor(200), session.Amount)
	assert.NotEqual(t, sent, session.OtpDigest, "only the digest is stored")
	assert.True(t, DigestMatches(NewHMACSignatureService(), testDigestSecret, merchantID, sent, session.OtpDigest))
	assert.Equal(t, d.now.Add(10*time.Minute), *session.OtpExpiresAt)
}

func TestWithdrawalService_StartWithdrawal_ValidationPersistsNothing(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()

	tests := []struct {
		name    string
		account *domain.MerchantAccount
		amount  money.Amount
		pin     string
		code    string
	}{
		{"no linked bank", testAccount(merchantID, 0, money.FromMajor(500)), money.FromMajor(200), "1234", "WD_005"},
		{"below minimum", linkedAccount(merchantID, 0, money.FromMajor(500)), money.FromMajor(99), "1234", "VAL_001"},
		{"above wallet", linkedAccount(merchantID, 0, money.FromMajor(500)), money.FromMajor(501), "1234", "VAL_002"},
		{"pin format", linkedAccount(merchantID, 0, money.FromMajor(500)), money.FromMajor(200), "12", "VAL_003"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d.accounts.EXPECT().GetByMerchantID(ctx, merchantID).Return(tt.account, nil)
			_, err := d.svc.StartWithdrawal(ctx, merchantID, tt.amount, tt.pin)
			assertAppError(t, err, tt.code)
		})
	}

	t.Run("wrong pin", func(t *testing.T) {
		d.accounts.EXPECT().GetByMerchantID(ctx, merchantID).Return(linkedAccount(merchantID, 0, money.FromMajor(500)), nil)
		d.hashSvc.EXPECT().Verify("9999", "pin_hash").Return(false, nil)
		_, err := d.svc.StartWithdrawal(ctx, merchantID, money.FromMajor(200), "9999")
		assertAppError(t, err, "PIN_001")
	})
}

func TestWithdrawalService_StartWithdrawal_AlreadyActive(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}

	d.accounts.EXPECT().GetByMerchantID(ctx, merchantID).Return(linkedAccount(merchantID, 0, money.FromMajor(500)), nil)
	d.hashSvc.EXPECT().Verify("1234", "pin_hash").Return(true, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(ctx, tx, merchantID).Return(d.issuedSession(merchantID, 100), nil)

	_, err := d.svc.StartWithdrawal(ctx, merchantID, money.FromMajor(200), "1234")
	assertAppError(t, err, "WD_001")
	assert.False(t, tx.committed)
}

func TestWithdrawalService_StartWithdrawal_RaceOnCreate(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}

	d.accounts.EXPECT().GetByMerchantID(ctx, merchantID).Return(linkedAccount(merchantID, 0, money.FromMajor(500)), nil)
	d.hashSvc.EXPECT().Verify("1234", "pin_hash").Return(true, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(ctx, tx, merchantID).Return(nil, nil)
	d.withdrawals.EXPECT().Create(ctx, tx, gomock.Any()).Return(domain.ErrActiveWithdrawalExists)

	_, err := d.svc.StartWithdrawal(ctx, merchantID, money.FromMajor(200), "1234")
	assertAppError(t, err, "WD_001")
}

func TestWithdrawalService_StartWithdrawal_ReplacesExpiredSession(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}
	old := d.issuedSession(merchantID, 100)
	expired := d.now.Add(-time.Second)
	old.OtpExpiresAt = &expired

	d.accounts.EXPECT().GetByMerchantID(ctx, merchantID).Return(linkedAccount(merchantID, 0, money.FromMajor(500)), nil)
	d.hashSvc.EXPECT().Verify("1234", "pin_hash").Return(true, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(ctx, tx, merchantID).Return(old, nil)
	d.withdrawals.EXPECT().Update(ctx, tx, old).Return(nil)
	d.withdrawals.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.otpGen.EXPECT().Generate().Return("111111", nil)
	d.otpSender.EXPECT().SendOtp(ctx, merchantID, "111111").Return(nil)
	d.withdrawals.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)

	session, err := d.svc.StartWithdrawal(ctx, merchantID, money.FromMajor(200), "1234")
	require.NoError(t, err)
	assert.NotEqual(t, old.ID, session.ID)
	assert.Equal(t, domain.WithdrawalStateFailed, old.State)
	assert.Empty(t, old.OtpDigest)
}

func TestWithdrawalService_StartWithdrawal_OtpDeliveryFails(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}

	d.accounts.EXPECT().GetByMerchantID(ctx, merchantID).Return(linkedAccount(merchantID, 0, money.FromMajor(500)), nil)
	d.hashSvc.EXPECT().Verify("1234", "pin_hash").Return(true, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(ctx, tx, merchantID).Return(nil, nil)
	var stored *domain.WithdrawalSession
	d.withdrawals.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, s *domain.WithdrawalSession) error {
			stored = s
			return nil
		})
	d.otpGen.EXPECT().Generate().Return("111111", nil)
	d.withdrawals.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.otpSender.EXPECT().SendOtp(ctx, merchantID, "111111").Return(errors.New("broker unreachable"))

	restoreTx := &mockTx{}
	d.transactor.EXPECT().Begin(gomock.Any()).Return(restoreTx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(gomock.Any(), restoreTx, merchantID).DoAndReturn(
		func(context.Context, any, uuid.UUID) (*domain.WithdrawalSession, error) {
			persisted := *stored
			return &persisted, nil
		})
	d.withdrawals.EXPECT().Update(gomock.Any(), restoreTx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, s *domain.WithdrawalSession) error {
			assert.Equal(t, domain.WithdrawalStatePinVerified, s.State)
			assert.Empty(t, s.OtpDigest)
			assert.Nil(t, s.OtpExpiresAt)
			return nil
		})

	session, err := d.svc.StartWithdrawal(ctx, merchantID, money.FromMajor(200), "1234")
	assertAppError(t, err, "EXT_002")
	assert.Equal(t, apperror.KindExternal, apperror.KindOf(err))
	require.NotNil(t, session)
	assert.Equal(t, domain.WithdrawalStatePinVerified, session.State)
	assert.Empty(t, session.OtpDigest)
	assert.True(t, tx.committed, "the session survives so the merchant can resend")
	assert.True(t, restoreTx.committed)
}

func TestWithdrawalService_StartWithdrawal_DeliveryFailsAfterSessionMovedOn(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}

	d.accounts.EXPECT().GetByMerchantID(ctx, merchantID).Return(linkedAccount(merchantID, 0, money.FromMajor(500)), nil)
	d.hashSvc.EXPECT().Verify("1234", "pin_hash").Return(true, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(ctx, tx, merchantID).Return(nil, nil)
	d.withdrawals.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.otpGen.EXPECT().Generate().Return("111111", nil)
	d.withdrawals.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.otpSender.EXPECT().SendOtp(ctx, merchantID, "111111").Return(errors.New("broker unreachable"))

	restoreTx := &mockTx{}
	d.transactor.EXPECT().Begin(gomock.Any()).Return(restoreTx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(gomock.Any(), restoreTx, merchantID).Return(nil, nil)

	session, err := d.svc.StartWithdrawal(ctx, merchantID, money.FromMajor(200), "1234")
	assertAppError(t, err, "EXT_002")
	require.NotNil(t, session)
	assert.Equal(t, domain.WithdrawalStateOtpIssued, session.State)
	assert.False(t, restoreTx.committed)
}

// ==================== ResendOtp ====================

func TestWithdrawalService_ResendOtp_ReplacesCode(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}
	session := d.issuedSession(merchantID, 100)
	oldDigest := session.OtpDigest

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(ctx, tx, merchantID).Return(session, nil)
	d.otpGen.EXPECT().Generate().Return("654321", nil)
	d.otpSender.EXPECT().SendOtp(ctx, merchantID, "654321").Return(nil)
	d.withdrawals.EXPECT().Update(ctx, tx, session).Return(nil)

	got, err := d.svc.ResendOtp(ctx, merchantID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.OtpResends)
	assert.NotEqual(t, oldDigest, got.OtpDigest)
	sig := NewHMACSignatureService()
	assert.False(t, DigestMatches(sig, testDigestSecret, merchantID, "123456", got.OtpDigest), "prior code is invalidated")
	assert.True(t, DigestMatches(sig, testDigestSecret, merchantID, "654321", got.OtpDigest))
}

func TestWithdrawalService_ResendOtp_RetriesFailedDelivery(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}
	session := &domain.WithdrawalSession{ID: uuid.New(), MerchantID: merchantID, Amount: 100,
		State: domain.WithdrawalStatePinVerified, CreatedAt: d.now, UpdatedAt: d.now}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(ctx, tx, merchantID).Return(session, nil)
	d.otpGen.EXPECT().Generate().Return("654321", nil)
	d.otpSender.EXPECT().SendOtp(ctx, merchantID, "654321").Return(nil)
	d.withdrawals.EXPECT().Update(ctx, tx, session).Return(nil)

	got, err := d.svc.ResendOtp(ctx, merchantID)
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalStateOtpIssued, got.State)
	assert.Zero(t, got.OtpResends)
}

func TestWithdrawalService_ResendOtp_Exhausted(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}
	session := d.issuedSession(merchantID, 100)
	session.OtpResends = 3

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(ctx, tx, merchantID).Return(session, nil)
	d.withdrawals.EXPECT().Update(ctx, tx, session).Return(nil)

	_, err := d.svc.ResendOtp(ctx, merchantID)
	assertAppError(t, err, "OTP_004")
	assert.Equal(t, domain.WithdrawalStateFailed, session.State)
	assert.True(t, tx.committed)
}

func TestWithdrawalService_ResendOtp_DeliveryFailsKeepsOldCode(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}
	session := d.issuedSession(merchantID, 100)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(ctx, tx, merchantID).Return(session, nil)
	d.otpGen.EXPECT().Generate().Return("654321", nil)
	d.withdrawals.EXPECT().Update(ctx, tx, session).Return(nil)
	d.otpSender.EXPECT().SendOtp(ctx, merchantID, "654321").Return(errors.New("timeout"))

	restoreTx := &mockTx{}
	d.transactor.EXPECT().Begin(gomock.Any()).Return(restoreTx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(gomock.Any(), restoreTx, merchantID).Return(session, nil)
	d.withdrawals.EXPECT().Update(gomock.Any(), restoreTx, session).Return(nil)

	_, err := d.svc.ResendOtp(ctx, merchantID)
	assertAppError(t, err, "EXT_002")
	assert.True(t, tx.committed)
	assert.True(t, restoreTx.committed)
	assert.Equal(t, domain.WithdrawalStateOtpIssued, session.State)
	assert.Zero(t, session.OtpResends, "a failed delivery is not charged")
	sig := NewHMACSignatureService()
	assert.True(t, DigestMatches(sig, testDigestSecret, merchantID, "123456", session.OtpDigest), "prior code stays valid")
	assert.Equal(t, d.now.Add(5*time.Minute), *session.OtpExpiresAt)
}

func TestWithdrawalService_ResendOtp_NoSession(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(ctx, tx, merchantID).Return(nil, nil)

	_, err := d.svc.ResendOtp(ctx, merchantID)
	assertAppError(t, err, "WD_002")
}

// ==================== ConfirmWithdrawal ====================

func TestWithdrawalService_ConfirmWithdrawal_Success(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}
	session := d.issuedSession(merchantID, money.FromMajor(200))
	transfer := &domain.Transfer{ID: uuid.New(), Type: domain.TransferTypeWalletWithdrawal, Amount: session.Amount}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(ctx, tx, merchantID).Return(session, nil)
	d.ledger.EXPECT().DebitWalletTx(ctx, tx, merchantID, money.FromMajor(200), "withdrawal:"+session.ID.String()).
		DoAndReturn(func(context.Context, any, uuid.UUID, money.Amount, string) (*domain.Transfer, error) {
			assert.Equal(t, domain.WithdrawalStateOtpVerified, session.State)
			assert.Empty(t, session.OtpDigest, "code is consumed before the debit")
			return transfer, nil
		})
	d.withdrawals.EXPECT().Update(ctx, tx, session).Return(nil)
	d.accounts.EXPECT().GetByMerchantID(ctx, merchantID).Return(linkedAccount(merchantID, 0, 0), nil)
	d.publisher.EXPECT().PublishWithdrawalCompleted(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e ports.WithdrawalCompletedEvent) error {
			assert.Equal(t, session.ID, e.WithdrawalID)
			assert.Equal(t, transfer.ID, e.TransferID)
			assert.Equal(t, "044", e.BankCode)
			assert.Equal(t, "6789", e.AccountNumberLast4)
			return nil
		})

	result, err := d.svc.ConfirmWithdrawal(ctx, merchantID, "123456")
	require.NoError(t, err)
	assert.True(t, tx.committed)
	assert.Equal(t, domain.WithdrawalStateCompleted, result.Session.State)
	assert.Equal(t, transfer.ID, *result.Session.TransferID)
}

func TestWithdrawalService_ConfirmWithdrawal_PublishFailureIsNotFatal(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}
	session := d.issuedSession(merchantID, money.FromMajor(200))

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(ctx, tx, merchantID).Return(session, nil)
	d.ledger.EXPECT().DebitWalletTx(ctx, tx, merchantID, gomock.Any(), gomock.Any()).Return(&domain.Transfer{ID: uuid.New()}, nil)
	d.withdrawals.EXPECT().Update(ctx, tx, session).Return(nil)
	d.accounts.EXPECT().GetByMerchantID(ctx, merchantID).Return(nil, errors.New("replica lag"))
	d.publisher.EXPECT().PublishWithdrawalCompleted(ctx, gomock.Any()).Return(errors.New("channel closed"))

	result, err := d.svc.ConfirmWithdrawal(ctx, merchantID, "123456")
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalStateCompleted, result.Session.State)
}

func TestWithdrawalService_ConfirmWithdrawal_Mismatch(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}
	session := d.issuedSession(merchantID, 100)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(ctx, tx, merchantID).Return(session, nil)
	d.withdrawals.EXPECT().Update(ctx, tx, session).Return(nil)

	_, err := d.svc.ConfirmWithdrawal(ctx, merchantID, "000000")
	assertAppError(t, err, "OTP_001")
	assert.Equal(t, domain.WithdrawalStateOtpIssued, session.State)
	assert.Equal(t, 1, session.OtpAttempts)
	assert.True(t, tx.committed, "the failed attempt is recorded")
}

func TestWithdrawalService_ConfirmWithdrawal_Expired(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}
	session := d.issuedSession(merchantID, 100)
	d.now = session.OtpExpiresAt.Add(time.Second)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(ctx, tx, merchantID).Return(session, nil)
	d.withdrawals.EXPECT().Update(ctx, tx, session).Return(nil)

	_, err := d.svc.ConfirmWithdrawal(ctx, merchantID, "123456")
	assertAppError(t, err, "OTP_002")
	assert.Equal(t, domain.WithdrawalStateOtpIssued, session.State)
	assert.Equal(t, 1, session.OtpAttempts)
}

func TestWithdrawalService_ConfirmWithdrawal_AttemptsExhausted(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}
	session := d.issuedSession(merchantID, 100)
	session.OtpAttempts = 4

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(ctx, tx, merchantID).Return(session, nil)
	d.withdrawals.EXPECT().Update(ctx, tx, session).Return(nil)

	_, err := d.svc.ConfirmWithdrawal(ctx, merchantID, "999999")
	assertAppError(t, err, "OTP_003")
	assert.Equal(t, domain.WithdrawalStateFailed, session.State)
	assert.Equal(t, 5, session.OtpAttempts)
}

func TestWithdrawalService_ConfirmWithdrawal_InsufficientBalance(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}
	session := d.issuedSession(merchantID, money.FromMajor(200))

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(ctx, tx, merchantID).Return(session, nil)
	d.ledger.EXPECT().DebitWalletTx(ctx, tx, merchantID, gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInsufficientFunds())
	d.withdrawals.EXPECT().Update(ctx, tx, session).Return(nil)

	_, err := d.svc.ConfirmWithdrawal(ctx, merchantID, "123456")
	assertAppError(t, err, "WD_004")
	assert.Equal(t, domain.WithdrawalStateFailed, session.State)
	assert.True(t, tx.committed)
}

func TestWithdrawalService_ConfirmWithdrawal_SkipsStateRejected(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}
	session := &domain.WithdrawalSession{ID: uuid.New(), MerchantID: merchantID, Amount: 100,
		State: domain.WithdrawalStatePinVerified, CreatedAt: d.now, UpdatedAt: d.now}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(ctx, tx, merchantID).Return(session, nil)

	_, err := d.svc.ConfirmWithdrawal(ctx, merchantID, "123456")
	assertAppError(t, err, "WD_003")
	assert.Equal(t, domain.WithdrawalStatePinVerified, session.State)
}

func TestWithdrawalService_ConfirmWithdrawal_ReplayFindsNoSession(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(ctx, tx, merchantID).Return(nil, nil)

	_, err := d.svc.ConfirmWithdrawal(ctx, merchantID, "123456")
	assertAppError(t, err, "WD_002")
}

// ==================== Cancel / Current / Stale ====================

func TestWithdrawalService_CancelWithdrawal(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	tx := &mockTx{}
	session := d.issuedSession(merchantID, 100)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.withdrawals.EXPECT().GetActiveForUpdate(ctx, tx, merchantID).Return(session, nil)
	d.withdrawals.EXPECT().Update(ctx, tx, session).Return(nil)

	got, err := d.svc.CancelWithdrawal(ctx, merchantID)
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalStateCancelledByUser, got.State)
	assert.Empty(t, got.OtpDigest)
}

func TestWithdrawalService_GetCurrentWithdrawal(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()
	merchantID := uuid.New()
	session := d.issuedSession(merchantID, 100)

	d.withdrawals.EXPECT().GetActive(ctx, merchantID).Return(session, nil)
	got, err := d.svc.GetCurrentWithdrawal(ctx, merchantID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)

	d.withdrawals.EXPECT().GetActive(ctx, merchantID).Return(nil, nil)
	_, err = d.svc.GetCurrentWithdrawal(ctx, merchantID)
	assertAppError(t, err, "WD_002")
}

func TestWithdrawalService_FailStaleSessions(t *testing.T) {
	d := setupWithdrawalService(t)
	ctx := context.Background()

	d.withdrawals.EXPECT().FailStale(ctx, d.now.Add(-30*time.Minute), "session expired").Return(int64(3), nil)

	n, err := d.svc.FailStaleSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
