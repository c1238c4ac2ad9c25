package service

import (
	"sync"
	"time"

	"oyunfor-gateway/internal/core/ports"

	"github.com/google/uuid"
)

// identityEntry is an identity session shared by every flow mounted with
// its handle, so a login carries over from one flow to the next.
type identityEntry struct {
	handle   string
	session  ports.IdentitySession
	refs     int       // guarded by FlowRegistry.mu
	lastSeen time.Time // guarded by FlowRegistry.mu
}

// identityLease is one flow's hold on a shared identity session. Close
// releases the flow's subscriptions and its hold, never the session itself.
type identityLease struct {
	ports.IdentitySession
	release func()

	mu     sync.Mutex
	subs   []func()
	closed bool
}

func (l *identityLease) Subscribe(fn func(ports.IdentityEvent)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return func() {}
	}
	release := l.IdentitySession.Subscribe(fn)
	l.subs = append(l.subs, release)
	return release
}

func (l *identityLease) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	subs := l.subs
	l.subs = nil
	l.mu.Unlock()

	for _, release := range subs {
		release()
	}
	l.release()
}

// leaseIdentity attaches a flow to the identity session behind handle, or
// to a new logged-out session when handle is empty, unknown or expired.
func (r *FlowRegistry) leaseIdentity(handle string) (*identityLease, string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.identities[handle]
	if !ok {
		e = &identityEntry{handle: uuid.NewString(), session: r.deps.Provider.Acquire()}
		r.identities[e.handle] = e
	}
	e.refs++
	e.lastSeen = r.now()

	return &identityLease{
		IdentitySession: e.session,
		release: func() {
			r.mu.Lock()
			e.refs--
			e.lastSeen = r.now()
			r.mu.Unlock()
		},
	}, e.handle
}

// touchIdentityLocked keeps the identity session behind handle alive.
func (r *FlowRegistry) touchIdentityLocked(handle string) {
	if e, ok := r.identities[handle]; ok {
		e.lastSeen = r.now()
	}
}

// reapIdentities closes identity sessions no flow has held since cutoff.
func (r *FlowRegistry) reapIdentities(cutoff time.Time) int {
	r.mu.Lock()
	var expired []*identityEntry
	for handle, e := range r.identities {
		if e.refs == 0 && e.lastSeen.Before(cutoff) {
			expired = append(expired, e)
			delete(r.identities, handle)
		}
	}
	r.mu.Unlock()

	for _, e := range expired {
		e.session.Close()
	}
	return len(expired)
}

func (r *FlowRegistry) closeIdentities() {
	r.mu.Lock()
	entries := r.identities
	r.identities = make(map[string]*identityEntry)
	r.mu.Unlock()

	for _, e := range entries {
		e.session.Close()
	}
}
