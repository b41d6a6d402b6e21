package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"resumelens/web/internal/models"
)

// Session holds one page session's view state: the active screen, the
// resume selection shared across screens, the single expanded record and
// the registry of in-flight backend calls so navigation can abort them.
type Session struct {
	ID string

	mu         sync.Mutex
	view       models.ViewState
	selection  SelectionSet
	expandedID string
	lastSeen   time.Time
	inflight   map[string]*inflightOp
}

type inflightOp struct {
	view   models.ViewState
	cancel context.CancelFunc
}

func newSession(id string) *Session {
	return &Session{
		ID:        id,
		view:      models.ViewUpload,
		selection: NewSelectionSet(),
		lastSeen:  time.Now(),
		inflight:  make(map[string]*inflightOp),
	}
}

// View returns the active screen tag.
func (s *Session) View() models.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// SwitchView activates a screen and aborts every in-flight backend call
// that belongs to another screen, so an abandoned request can never race
// a state update on a view the user already left.
func (s *Session) SwitchView(view models.ViewState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	for action, op := range s.inflight {
		if op.view != view {
			op.cancel()
			delete(s.inflight, action)
		}
	}
	s.view = view
}

// BeginAction registers a backend-bound action for a screen and derives
// a cancellable context for it. A second trigger of the same action
// while one is outstanding is rejected, mirroring a disabled trigger
// control. The returned release func must be called when the action ends.
func (s *Session) BeginAction(ctx context.Context, view models.ViewState, action string) (context.Context, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if _, ok := s.inflight[action]; ok {
		return nil, nil, ErrActionInFlight
	}

	opCtx, cancel := context.WithCancel(ctx)
	op := &inflightOp{view: view, cancel: cancel}
	s.inflight[action] = op

	release := func() {
		s.mu.Lock()
		if s.inflight[action] == op {
			delete(s.inflight, action)
		}
		s.mu.Unlock()
		cancel()
	}
	return opCtx, release, nil
}

// ToggleSelect flips one resume id in the selection and returns the
// resulting membership.
func (s *Session) ToggleSelect(id string) (bool, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	selected := s.selection.Toggle(id)
	return selected, s.selection.IDs()
}

// SelectedIDs returns the current selection, sorted.
func (s *Session) SelectedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.IDs()
}

// ReconcileSelection drops selected ids missing from the freshly fetched
// resume list.
func (s *Session) ReconcileSelection(listed []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.selection.Reconcile(listed)
	if s.expandedID != "" {
		found := false
		for _, id := range listed {
			if id == s.expandedID {
				found = true
				break
			}
		}
		if !found {
			s.expandedID = ""
		}
	}
}

// IsSelected reports whether a resume id is currently selected.
func (s *Session) IsSelected(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Has(id)
}

// ToggleExpand expands a record, collapsing any other: at most one
// record is expanded at a time. Returns the expanded id, or "" when the
// toggle collapsed it.
func (s *Session) ToggleExpand(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if s.expandedID == id {
		s.expandedID = ""
	} else {
		s.expandedID = id
	}
	return s.expandedID
}

// ExpandedID returns the currently expanded record id, if any.
func (s *Session) ExpandedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expandedID
}

// Snapshot reports the session state for the page.
func (s *Session) Snapshot() models.SessionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.SessionResponse{
		View:       s.view,
		SelectedID: s.selection.IDs(),
		ExpandedID: s.expandedID,
	}
}

func (s *Session) touch() {
	s.lastSeen = time.Now()
}

func (s *Session) expire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for action, op := range s.inflight {
		op.cancel()
		delete(s.inflight, action)
	}
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// SessionStore keeps sessions in memory and sweeps out idle ones.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	ttl           time.Duration
	sweepInterval time.Duration
	stopChan      chan struct{}
	wg            sync.WaitGroup
}

func NewSessionStore(ttl, sweepInterval time.Duration) *SessionStore {
	return &SessionStore{
		sessions:      make(map[string]*Session),
		ttl:           ttl,
		sweepInterval: sweepInterval,
		stopChan:      make(chan struct{}),
	}
}

// Get returns the session for id if it exists.
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	sess, ok := st.sessions[id]
	return sess, ok
}

// Create registers a fresh session under a new uuid.
func (st *SessionStore) Create() *Session {
	sess := newSession(uuid.New().String())
	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()
	return sess
}

// GetOrCreate resolves id to an existing session or starts a new one.
func (st *SessionStore) GetOrCreate(id string) *Session {
	if id != "" {
		if sess, ok := st.Get(id); ok {
			return sess
		}
	}
	return st.Create()
}

// Start launches the expiry janitor.
func (st *SessionStore) Start() {
	log.Printf("🚀 Starting session janitor (ttl %s, sweep every %s)\n", st.ttl, st.sweepInterval)
	st.wg.Add(1)
	go st.sweepLoop()
}

// Stop halts the janitor and waits for it to finish.
func (st *SessionStore) Stop() {
	log.Println("🛑 Stopping session janitor...")
	close(st.stopChan)
	st.wg.Wait()
	log.Println("✅ Session janitor stopped")
}

func (st *SessionStore) sweepLoop() {
	defer st.wg.Done()
	ticker := time.NewTicker(st.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-st.stopChan:
			return
		case <-ticker.C:
			if n := st.SweepExpired(); n > 0 {
				log.Printf("🧹 Swept %d expired sessions\n", n)
			}
		}
	}
}

// SweepExpired removes sessions idle past the TTL, cancelling any
// requests they still had in flight.
func (st *SessionStore) SweepExpired() int {
	cutoff := time.Now().Add(-st.ttl)

	st.mu.Lock()
	var expired []*Session
	for id, sess := range st.sessions {
		if sess.idleSince().Before(cutoff) {
			expired = append(expired, sess)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	for _, sess := range expired {
		sess.expire()
	}
	return len(expired)
}
