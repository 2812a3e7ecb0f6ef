// Package timescale owns the process-wide simulation rate. Callers that slow
// the world down hold a Lease and must release it on every exit path; the
// rate falls back to the next active lease or to normal speed.
package timescale

import "sync"

const Normal = 1.0

type Clock struct {
	mu     sync.Mutex
	leases []*Lease
}

// Lease is one owner's request for a dilation factor.
type Lease struct {
	clock  *Clock
	owner  string
	factor float64
	done   bool
}

func NewClock() *Clock {
	return &Clock{}
}

// Acquire pushes a new dilation request. Factors <= 0 are rejected.
func (c *Clock) Acquire(owner string, factor float64) *Lease {
	if c == nil || factor <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	l := &Lease{clock: c, owner: owner, factor: factor}
	c.leases = append(c.leases, l)
	return l
}

// Release drops the lease. Safe to call more than once or on nil.
func (l *Lease) Release() {
	if l == nil || l.clock == nil {
		return
	}
	c := l.clock
	c.mu.Lock()
	defer c.mu.Unlock()
	if l.done {
		return
	}
	l.done = true
	for i, other := range c.leases {
		if other == l {
			c.leases = append(c.leases[:i], c.leases[i+1:]...)
			break
		}
	}
}

func (l *Lease) Owner() string {
	if l == nil {
		return ""
	}
	return l.owner
}

func (l *Lease) Active() bool {
	if l == nil || l.clock == nil {
		return false
	}
	l.clock.mu.Lock()
	defer l.clock.mu.Unlock()
	return !l.done
}

// Dilation is the factor of the most recent active lease.
func (c *Clock) Dilation() float64 {
	if c == nil {
		return Normal
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.leases) == 0 {
		return Normal
	}
	return c.leases[len(c.leases)-1].factor
}

func (c *Clock) Owners() []string {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.leases))
	for _, l := range c.leases {
		out = append(out, l.owner)
	}
	return out
}

// Reset releases every lease, used when a level restarts.
func (c *Clock) Reset() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, l := range c.leases {
		l.done = true
	}
	c.leases = nil
}
