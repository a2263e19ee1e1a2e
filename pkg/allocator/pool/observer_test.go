package pool

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	event Event
	block Block
}

func TestObserverEvents(t *testing.T) {
	events := []recorded{}
	p := New(&Options{
		Capacity: 1024,
		Observer: ObserverFunc(func(_ *Pool, e Event, b Block) {
			events = append(events, recorded{e, b})
		}),
	})

	addr, err := p.Allocate(64, 8)
	require.NoError(t, err)
	require.NoError(t, p.Deallocate(addr, 64, 8))
	_, err = p.Allocate(32, 8)
	require.NoError(t, err)
	require.NoError(t, p.Release())

	require.Len(t, events, 4)
	require.Equal(t, EventAllocate, events[0].event)
	require.Equal(t, EventDeallocate, events[1].event)
	require.Equal(t, EventReuse, events[2].event)
	require.Equal(t, EventRelease, events[3].event)
	for _, r := range events {
		require.Equal(t, addr, r.block.Addr)
		require.Equal(t, uintptr(64), r.block.Size)
		require.Equal(t, uintptr(8), r.block.Alignment)
	}
}

func TestObserverDoesNotAffectResults(t *testing.T) {
	quiet := New(&Options{Capacity: 128})
	noisy := New(&Options{Capacity: 128, Observer: ObserverFunc(func(*Pool, Event, Block) {})})

	for _, p := range []*Pool{quiet, noisy} {
		addr, err := p.Allocate(100, 8)
		require.NoError(t, err)
		_, err = p.Allocate(100, 8)
		require.Error(t, err)
		require.NoError(t, p.Deallocate(addr, 100, 8))
	}
	require.Equal(t, quiet.UsedMemory(), noisy.UsedMemory())
	require.Equal(t, quiet.FreeBlocks(), noisy.FreeBlocks())
}

func TestLogObserver(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.Out = buf
	l.Level = logrus.DebugLevel
	l.Formatter = &logrus.TextFormatter{DisableTimestamp: true}

	p := New(&Options{})
	p.SetObserver(LogObserver(l))

	addr, err := p.Allocate(2048, 16)
	require.NoError(t, err)
	require.NoError(t, p.Deallocate(addr, 2048, 16))

	out := buf.String()
	require.Contains(t, out, `msg="allocate (heap)"`)
	require.Contains(t, out, "msg=deallocate")
	require.Contains(t, out, `size="2.0 KiB"`)
	require.Contains(t, out, "alignment=16")
	require.Contains(t, out, "addr="+addr.String())
	require.Contains(t, out, "pool="+p.ID().String())

	p.SetObserver(nil)
	buf.Reset()
	_, err = p.Allocate(8, 8)
	require.NoError(t, err)
	require.Empty(t, buf.String())
}

func TestEventString(t *testing.T) {
	require.Equal(t, "reuse", EventReuse.String())
	require.Equal(t, "release", EventRelease.String())
	require.Equal(t, "unknown", Event(42).String())
}
