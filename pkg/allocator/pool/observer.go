package pool

import (
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

type Event int

const (
	// EventAllocate fires when a fresh block is carved from the heap.
	EventAllocate Event = iota
	// EventReuse fires when a request is served from the free set.
	EventReuse
	// EventDeallocate fires when a block moves from used to free.
	EventDeallocate
	// EventRelease fires for every block returned to the heap by Release.
	EventRelease
)

func (e Event) String() string {
	switch e {
	case EventAllocate:
		return "allocate (heap)"
	case EventReuse:
		return "reuse"
	case EventDeallocate:
		return "deallocate"
	case EventRelease:
		return "release"
	}
	return "unknown"
}

// Observer receives pool events. It only watches, it can not change what
// the pool returns.
type Observer interface {
	Observe(p *Pool, e Event, b Block)
}

type ObserverFunc func(p *Pool, e Event, b Block)

func (f ObserverFunc) Observe(p *Pool, e Event, b Block) {
	f(p, e, b)
}

// LogObserver writes a debug trace line per event.
func LogObserver(l *logrus.Logger) Observer {
	return ObserverFunc(func(p *Pool, e Event, b Block) {
		l.WithFields(logrus.Fields{
			"pool":      p.ID().String(),
			"addr":      b.Addr,
			"size":      humanize.IBytes(uint64(b.Size)),
			"alignment": b.Alignment,
		}).Debug(e.String())
	})
}
