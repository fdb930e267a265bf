package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focustrack/internal/testutil"
)

var base = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func at(min int) time.Time {
	return base.Add(time.Duration(min) * time.Minute)
}

func TestCompute_NoInterruptions(t *testing.T) {
	s := testutil.NewTestSession(testutil.WithStart(at(0)), testutil.WithEnd(at(30)))

	segments := Compute(s, 5, at(30))

	require.Len(t, segments, 1)
	assert.Equal(t, KindFocus, segments[0].Kind)
	assert.Equal(t, at(0), segments[0].Start)
	assert.Equal(t, at(30), segments[0].End)
}

func TestCompute_SingleInterruptionWithRecovery(t *testing.T) {
	s := testutil.NewTestSession(
		testutil.WithStart(at(0)),
		testutil.WithEnd(at(30)),
		testutil.WithInterruption(at(10), at(15)),
	)

	segments := Compute(s, 5, at(30))

	require.Len(t, segments, 4)
	assert.Equal(t, Segment{KindFocus, at(0), at(10)}, segments[0])
	assert.Equal(t, Segment{KindInterruption, at(10), at(15)}, segments[1])
	assert.Equal(t, Segment{KindPenalty, at(15), at(20)}, segments[2])
	assert.Equal(t, Segment{KindFocus, at(20), at(30)}, segments[3])
}

func TestCompute_PenaltyTruncatedByNextInterruption(t *testing.T) {
	// Recovery would run to 09:20, but a second interruption starts at 09:18.
	s := testutil.NewTestSession(
		testutil.WithStart(at(0)),
		testutil.WithEnd(at(30)),
		testutil.WithInterruption(at(10), at(15)),
		testutil.WithInterruption(at(18), at(20)),
	)

	segments := Compute(s, 5, at(30))

	require.Len(t, segments, 6)
	assert.Equal(t, Segment{KindFocus, at(0), at(10)}, segments[0])
	assert.Equal(t, Segment{KindInterruption, at(10), at(15)}, segments[1])
	assert.Equal(t, Segment{KindPenalty, at(15), at(18)}, segments[2])
	assert.Equal(t, Segment{KindInterruption, at(18), at(20)}, segments[3])
	assert.Equal(t, Segment{KindPenalty, at(20), at(25)}, segments[4])
	assert.Equal(t, Segment{KindFocus, at(25), at(30)}, segments[5])
}

func TestCompute_PenaltyTruncatedBySessionEnd(t *testing.T) {
	s := testutil.NewTestSession(
		testutil.WithStart(at(0)),
		testutil.WithEnd(at(17)),
		testutil.WithInterruption(at(10), at(15)),
	)

	segments := Compute(s, 5, at(17))

	require.Len(t, segments, 3)
	assert.Equal(t, Segment{KindPenalty, at(15), at(17)}, segments[2])
}

func TestCompute_OpenInterruptionExtendsToNow(t *testing.T) {
	s := testutil.NewTestSession(
		testutil.WithStart(at(0)),
		testutil.WithOpenInterruption(at(10), "meeting"),
	)

	segments := Compute(s, 5, at(25))

	// No trailing penalty while the interruption is still open.
	require.Len(t, segments, 2)
	assert.Equal(t, Segment{KindFocus, at(0), at(10)}, segments[0])
	assert.Equal(t, Segment{KindInterruption, at(10), at(25)}, segments[1])
}

func TestCompute_OpenSessionTailIsFocus(t *testing.T) {
	s := testutil.NewTestSession(
		testutil.WithStart(at(0)),
		testutil.WithInterruption(at(5), at(8)),
	)

	segments := Compute(s, 2, at(20))

	require.Len(t, segments, 4)
	assert.Equal(t, Segment{KindPenalty, at(8), at(10)}, segments[2])
	assert.Equal(t, Segment{KindFocus, at(10), at(20)}, segments[3])
}

func TestCompute_UnsortedInterruptions(t *testing.T) {
	s := testutil.NewTestSession(
		testutil.WithStart(at(0)),
		testutil.WithEnd(at(30)),
		testutil.WithInterruption(at(20), at(22)),
		testutil.WithInterruption(at(5), at(8)),
	)

	segments := Compute(s, 0, at(30))

	require.Len(t, segments, 5)
	assert.Equal(t, Segment{KindInterruption, at(5), at(8)}, segments[1])
	assert.Equal(t, Segment{KindInterruption, at(20), at(22)}, segments[3])
}

func TestCompute_ZeroRecoveryEmitsNoPenalty(t *testing.T) {
	s := testutil.NewTestSession(
		testutil.WithStart(at(0)),
		testutil.WithEnd(at(30)),
		testutil.WithInterruption(at(10), at(15)),
	)

	segments := Compute(s, 0, at(30))

	require.Len(t, segments, 3)
	for _, seg := range segments {
		assert.NotEqual(t, KindPenalty, seg.Kind)
	}
}

func TestCompute_ZeroDurationInterruptionSkipped(t *testing.T) {
	s := testutil.NewTestSession(
		testutil.WithStart(at(0)),
		testutil.WithEnd(at(30)),
		testutil.WithInterruption(at(10), at(10)),
	)

	segments := Compute(s, 5, at(30))

	for _, seg := range segments {
		assert.True(t, seg.End.After(seg.Start), "zero-length segment %v", seg)
	}
}

func TestCompute_ZeroLengthSession(t *testing.T) {
	s := testutil.NewTestSession(testutil.WithStart(at(0)), testutil.WithEnd(at(0)))

	segments := Compute(s, 5, at(0))

	assert.Empty(t, segments)
}
