package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBackoffSingleAttempt(t *testing.T) {
	calls := 0
	err := NewBackoff(time.Millisecond, 0).Do(context.Background(), func(int) error {
		calls++
		return errors.New("fail")
	})
	require.Error(t, err)
	require.Equal(t, 1, calls)
}

func TestBackoffRetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := NewBackoff(time.Millisecond, 3).Do(context.Background(), func(i int) error {
		calls++
		if i < 2 {
			return errors.New("fail")
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func TestBackoffStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	err := NewBackoff(time.Hour, 5).Do(ctx, func(int) error {
		calls++
		return errors.New("fail")
	})
	require.Error(t, err)
	require.Equal(t, 1, calls)
}
