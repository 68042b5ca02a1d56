package scheduler

import (
	"bytes"
	"errors"
	"testing"

	"merchant-settlement/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestStart_InvalidSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := New(mocks.NewMockWithdrawalService(ctrl), "not a schedule", zerolog.Nop())

	err := s.Start()
	assert.Error(t, err)
}

func TestStart_ValidSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := New(mocks.NewMockWithdrawalService(ctrl), "@every 1h", zerolog.Nop())

	assert.NoError(t, s.Start())
	<-s.Stop().Done()
}

func TestSweepStaleWithdrawals(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockWithdrawalService(ctrl)
	var buf bytes.Buffer
	s := New(svc, "@every 1m", zerolog.New(&buf))

	svc.EXPECT().FailStaleSessions(gomock.Any()).Return(int64(2), nil)
	s.sweepStaleWithdrawals()
	assert.Contains(t, buf.String(), `"failed_sessions":2`)
}

func TestSweepStaleWithdrawals_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockWithdrawalService(ctrl)
	var buf bytes.Buffer
	s := New(svc, "@every 1m", zerolog.New(&buf))

	svc.EXPECT().FailStaleSessions(gomock.Any()).Return(int64(0), errors.New("db down"))
	s.sweepStaleWithdrawals()
	assert.Contains(t, buf.String(), "Stale withdrawal sweep failed")
}
