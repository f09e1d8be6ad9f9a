package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeProber struct {
	down    bool
	fail    bool
	version uint32
	reads   int
}

func (f *fakeProber) Available() bool { return !f.down }

func (f *fakeProber) ReadVersion() (uint32, error) {
	f.reads++
	if f.fail {
		return 0, errors.New("fail version")
	}
	return f.version, nil
}

func TestNew_Validates(t *testing.T) {
	_, err := New(Config{}, &fakeProber{})
	require.Error(t, err)

	_, err = New(Config{Interval: time.Second}, nil)
	require.Error(t, err)
}

func TestPollOnce_Success(t *testing.T) {
	p, err := New(Config{Interval: time.Second}, &fakeProber{version: 7})
	require.NoError(t, err)

	res := p.PollOnce()
	require.NoError(t, res.Err)
	require.Equal(t, uint32(7), res.Version)
	require.True(t, res.Available)
}

func TestPollOnce_Failure(t *testing.T) {
	p, err := New(Config{Interval: time.Second}, &fakeProber{fail: true})
	require.NoError(t, err)

	res := p.PollOnce()
	require.Error(t, res.Err)
}

func TestPollOnce_UnavailableSkipsRead(t *testing.T) {
	fp := &fakeProber{down: true}
	p, err := New(Config{Interval: time.Second}, fp)
	require.NoError(t, err)

	res := p.PollOnce()
	require.ErrorIs(t, res.Err, ErrUnavailable)
	require.Zero(t, fp.reads)
}

func TestRun_EmitsUntilCancelled(t *testing.T) {
	p, err := New(Config{Interval: 5 * time.Millisecond}, &fakeProber{version: 3})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan PollResult)
	done := make(chan struct{})
	go func() {
		p.Run(ctx, out)
		close(done)
	}()

	select {
	case res := <-out:
		require.Equal(t, uint32(3), res.Version)
	case <-time.After(time.Second):
		t.Fatal("no poll result")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runner did not stop")
	}
}
