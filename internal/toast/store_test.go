package toast

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/sona/internal/logx"
)

// fakeClock advances by one millisecond on every reading.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

func newTestStore() *Store {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	return NewStore(WithClock(clock.Now), WithInterval(time.Millisecond))
}

// expire delivers the expiry tick for the store's current mount.
func expire(s *Store) {
	s.Update(ExpireMsg{Generation: s.generation})
}

func messages(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Message)
	}
	return out
}

func TestNewStore_Defaults(t *testing.T) {
	s := NewStore()
	assert.Equal(t, DefaultInterval, s.Interval())
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Mounted())
	assert.Empty(t, s.Snapshot())
}

func TestWithInterval_IgnoresNonPositive(t *testing.T) {
	assert.Equal(t, DefaultInterval, NewStore(WithInterval(0)).Interval())
	assert.Equal(t, DefaultInterval, NewStore(WithInterval(-time.Second)).Interval())
	assert.Equal(t, time.Second, NewStore(WithInterval(time.Second)).Interval())
}

func TestStore_AddKeepsInsertionOrder(t *testing.T) {
	s := newTestStore()
	want := []string{"one", "two", "three", "four", "five"}
	for i, msg := range want {
		s.Add(Kinds[i%len(Kinds)], msg)
	}

	snap := s.Snapshot()
	require.Len(t, snap, len(want))
	assert.Equal(t, want, messages(snap))
	for i := 1; i < len(snap); i++ {
		assert.Greater(t, snap[i].ID, snap[i-1].ID, "ids follow creation order")
	}
}

func TestStore_ExpireRemovesHead(t *testing.T) {
	s := newTestStore()
	s.Mount()
	r1 := s.Add(KindInfo, "R1")
	r2 := s.Add(KindInfo, "R2")
	s.Add(KindInfo, "R3")

	expire(s)

	snap := s.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, r2.ID, snap[0].ID)
	assert.NotContains(t, snap, r1)
}

func TestStore_ExpireSingleRecordEmptiesQueue(t *testing.T) {
	s := newTestStore()
	s.Mount()
	s.Add(KindWarning, "only")

	expire(s)

	assert.Equal(t, 0, s.Len())
}

func TestStore_ExpireOnEmptyQueueKeepsTicking(t *testing.T) {
	s := newTestStore()
	s.Mount()

	cmd := s.Update(ExpireMsg{Generation: s.generation})

	assert.NotNil(t, cmd, "tick is rescheduled while mounted")
	assert.Equal(t, 0, s.Len())
}

func TestStore_UnrecognizedKindIsStored(t *testing.T) {
	s := newTestStore()

	assert.NotPanics(t, func() {
		s.Add(Kind("debug"), "hidden")
	})
	require.Equal(t, 1, s.Len())
	assert.Equal(t, Kind("debug"), s.Snapshot()[0].Kind)
}

func TestStore_MountReturnsTickOnce(t *testing.T) {
	s := newTestStore()

	cmd := s.Mount()
	require.NotNil(t, cmd)
	assert.True(t, s.Mounted())
	assert.Nil(t, s.Mount(), "second Mount is a no-op")

	msg := cmd()
	exp, ok := msg.(ExpireMsg)
	require.True(t, ok, "tick produces ExpireMsg, got %T", msg)
	assert.Equal(t, s.generation, exp.Generation)
}

func TestStore_UnmountDiscardsInFlightTick(t *testing.T) {
	s := newTestStore()
	cmd := s.Mount()
	s.Add(KindError, "A")

	stale := cmd()
	s.Unmount()
	assert.False(t, s.Mounted())
	assert.Nil(t, s.Update(stale))
	assert.Equal(t, 1, s.Len(), "tick after unmount does not expire")

	s.Mount()
	assert.Nil(t, s.Update(stale), "tick from an earlier mount is ignored")
	assert.Equal(t, 1, s.Len())

	expire(s)
	assert.Equal(t, 0, s.Len())
}

func TestStore_UpdateAddMsg(t *testing.T) {
	s := newTestStore()
	s.Mount()

	cmd := s.Update(AddMsg{Kind: KindSuccess, Message: "saved"})

	assert.Nil(t, cmd)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, KindSuccess, s.Snapshot()[0].Kind)
}

func TestStore_UpdateAddMsgDroppedWhileUnmounted(t *testing.T) {
	s := newTestStore()
	s.Update(AddMsg{Kind: KindInfo, Message: "early"})
	assert.Equal(t, 0, s.Len())

	s.Mount()
	s.Unmount()
	s.Update(AddMsg{Kind: KindInfo, Message: "late"})
	assert.Equal(t, 0, s.Len())
}

func TestStore_TickChainExpiresEverything(t *testing.T) {
	s := newTestStore()
	cmd := s.Mount()
	s.Add(KindInfo, "a")
	s.Add(KindInfo, "b")

	for range 2 {
		require.NotNil(t, cmd)
		cmd = s.Update(cmd())
	}

	assert.Equal(t, 0, s.Len())
	assert.NotNil(t, cmd, "loop keeps running while mounted")
}

func TestScenario_ErrorThenWarningBeforeExpiry(t *testing.T) {
	s := newTestStore()
	s.Mount()
	reg := &Registry{}
	require.NoError(t, reg.Init(s, nil))
	toaster := reg.Toaster()

	require.NoError(t, toaster.Error("A"))
	require.NoError(t, toaster.Warning("B"))

	snap := s.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, KindError, snap[0].Kind)
	assert.Equal(t, "A", snap[0].Message)
	assert.Equal(t, KindWarning, snap[1].Kind)
	assert.Equal(t, "B", snap[1].Message)
}

func TestScenario_SuccessExpiresAfterInterval(t *testing.T) {
	s := newTestStore()
	cmd := s.Mount()
	reg := &Registry{}
	require.NoError(t, reg.Init(s, nil))

	require.NoError(t, reg.Toaster().Success("A"))
	s.Update(cmd())

	assert.Equal(t, 0, s.Len())
}

func TestScenario_InfoAfterExpiryGetsNewID(t *testing.T) {
	s := newTestStore()
	cmd := s.Mount()
	reg := &Registry{}
	require.NoError(t, reg.Init(s, nil))

	require.NoError(t, reg.Toaster().Info("A"))
	expired := s.Snapshot()[0]
	cmd = s.Update(cmd())
	require.Equal(t, 0, s.Len())
	require.NotNil(t, cmd)

	require.NoError(t, reg.Toaster().Info("B"))

	snap := s.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, KindInfo, snap[0].Kind)
	assert.Equal(t, "B", snap[0].Message)
	assert.NotEqual(t, expired.ID, snap[0].ID)
}

func TestNewStore_TagsLogLinesOnce(t *testing.T) {
	var buf bytes.Buffer
	s := NewStore(WithLogger(logx.New(&buf, "debug")))

	s.Mount()

	line := buf.String()
	assert.Equal(t, 1, strings.Count(line, `"component"`))
	assert.Contains(t, line, `"component":"toast"`)
}
