// Package fixture implements every repository interface over deterministic
// in-memory seed data. It is wired when the document store is unconfigured,
// so the API runs without a backend.
package fixture

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/pulsehq/pulse-backend-go/internal/domain/adjustment"
	"github.com/pulsehq/pulse-backend-go/internal/domain/attendance"
	"github.com/pulsehq/pulse-backend-go/internal/domain/dailylog"
	"github.com/pulsehq/pulse-backend-go/internal/domain/leave"
	"github.com/pulsehq/pulse-backend-go/internal/domain/org"
	"github.com/pulsehq/pulse-backend-go/internal/domain/project"
	"github.com/pulsehq/pulse-backend-go/internal/domain/user"
	"github.com/pulsehq/pulse-backend-go/internal/fixtures"
	"github.com/pulsehq/pulse-backend-go/internal/pkg/faults"
)

// Store holds all fixture collections. Every construction seeds the same
// data, so reads are deterministic across restarts.
type Store struct {
	mu  sync.RWMutex
	inj *faults.Injector

	orgs        map[string]org.Org
	users       map[string]user.User
	attendance  map[string]attendance.Record
	leaves      map[string]leave.Request
	projects    map[string]project.Project
	tickets     map[string]project.Ticket
	logs        map[string]dailylog.Log
	adjustments map[string]adjustment.Request

	// atomicMu serializes RunAtomic blocks against each other. Individual
	// operations outside a block stay last-write-wins, matching the
	// single-client development use this mode exists for.
	atomicMu sync.Mutex
}

// snapshot is a full copy of every collection, taken before a RunAtomic
// block so a failed block can be rolled back.
type snapshot struct {
	orgs        map[string]org.Org
	users       map[string]user.User
	attendance  map[string]attendance.Record
	leaves      map[string]leave.Request
	projects    map[string]project.Project
	tickets     map[string]project.Ticket
	logs        map[string]dailylog.Log
	adjustments map[string]adjustment.Request
}

func NewStore(inj *faults.Injector) *Store {
	if inj == nil {
		inj = faults.Disabled()
	}
	s := &Store{
		inj:         inj,
		orgs:        make(map[string]org.Org),
		users:       make(map[string]user.User),
		attendance:  make(map[string]attendance.Record),
		leaves:      make(map[string]leave.Request),
		projects:    make(map[string]project.Project),
		tickets:     make(map[string]project.Ticket),
		logs:        make(map[string]dailylog.Log),
		adjustments: make(map[string]adjustment.Request),
	}

	seedOrg := fixtures.Org()
	s.orgs[seedOrg.ID] = seedOrg
	for _, u := range fixtures.Users() {
		s.users[u.ID] = u
	}
	for _, p := range fixtures.Projects() {
		s.projects[p.ID] = p
	}
	for _, t := range fixtures.Tickets() {
		s.tickets[t.ID] = t
	}

	return s
}

// RunAtomic implements repository.Atomic for the fixture store. A snapshot
// of every collection is taken before the block runs; when fn returns an
// error the snapshot is restored, so the writes inside the block commit or
// roll back together even when one of them hits an injected fault.
func (s *Store) RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error {
	s.atomicMu.Lock()
	defer s.atomicMu.Unlock()

	snap := s.takeSnapshot()
	if err := fn(ctx); err != nil {
		s.restoreSnapshot(snap)
		return err
	}
	return nil
}

func (s *Store) takeSnapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := snapshot{
		orgs:        maps.Clone(s.orgs),
		users:       make(map[string]user.User, len(s.users)),
		attendance:  maps.Clone(s.attendance),
		leaves:      maps.Clone(s.leaves),
		projects:    make(map[string]project.Project, len(s.projects)),
		tickets:     maps.Clone(s.tickets),
		logs:        make(map[string]dailylog.Log, len(s.logs)),
		adjustments: maps.Clone(s.adjustments),
	}
	// Users, projects and logs carry reference fields that must not be
	// shared with the live collections.
	for id, u := range s.users {
		snap.users[id] = copyUser(u)
	}
	for id, p := range s.projects {
		p.MemberIDs = slices.Clone(p.MemberIDs)
		snap.projects[id] = p
	}
	for id, l := range s.logs {
		l.ManualTasks = slices.Clone(l.ManualTasks)
		l.CompletedTickets = slices.Clone(l.CompletedTickets)
		snap.logs[id] = l
	}
	return snap
}

func (s *Store) restoreSnapshot(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orgs = snap.orgs
	s.users = snap.users
	s.attendance = snap.attendance
	s.leaves = snap.leaves
	s.projects = snap.projects
	s.tickets = snap.tickets
	s.logs = snap.logs
	s.adjustments = snap.adjustments
}

// simulate applies the configured synthetic latency.
func (s *Store) simulate(ctx context.Context) error {
	return s.inj.Delay(ctx)
}

func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// sortStable orders items by the given less function, falling back to a
// stable sort so equal keys keep insertion-independent deterministic order.
func sortStable[T any](items []T, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
}
