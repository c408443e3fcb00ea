package notifier

import (
	"log"
	"sync"
	"sync/atomic"
)

// Dispatcher sends messages in the background. Booking and contact
// responses never wait on delivery; the counters keep the outcome
// observable after the fact.
type Dispatcher struct {
	notifier Notifier
	wg       sync.WaitGroup
	sent     atomic.Int64
	failed   atomic.Int64
}

func NewDispatcher(n Notifier) *Dispatcher {
	return &Dispatcher{notifier: n}
}

func (d *Dispatcher) Dispatch(m Message) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.notifier.Send(m); err != nil {
			d.failed.Add(1)
			log.Printf("notification %q failed: %v", m.Subject, err)
			return
		}
		d.sent.Add(1)
	}()
}

// Stats returns how many dispatches succeeded and failed so far.
func (d *Dispatcher) Stats() (sent, failed int64) {
	return d.sent.Load(), d.failed.Load()
}

// Wait blocks until all in-flight sends finish. Used on shutdown and in tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
