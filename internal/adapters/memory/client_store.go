// internal/adapters/memory/client_store.go

// Package memory provides the in-memory store adapters backing a single
// interactive session. The session is the only actor, so the stores are
// deliberately unsynchronized; a multi-session deployment needs its own
// locking around them.
package memory

import (
	"strconv"
	"strings"

	"github.com/ammerola/warehouse-be/internal/core/domain"
	"github.com/ammerola/warehouse-be/internal/core/ports"
)

// clientStore keeps clients in insertion order with an id index.
type clientStore struct {
	byID    map[string]*domain.Client
	ordered []*domain.Client
	nextSeq int
}

// NewClientStore returns an empty client store starting at "C1".
func NewClientStore() ports.ClientStore {
	return &clientStore{byID: make(map[string]*domain.Client), nextSeq: 1}
}

func (s *clientStore) Insert(name, address string) *domain.Client {
	c := domain.NewClient(name, address, s.nextSeq)
	s.nextSeq++
	s.byID[c.ID] = c
	s.ordered = append(s.ordered, c)
	return c
}

func (s *clientStore) Find(id string) (*domain.Client, bool) {
	c, ok := s.byID[id]
	return c, ok
}

func (s *clientStore) All() []*domain.Client {
	out := make([]*domain.Client, len(s.ordered))
	copy(out, s.ordered)
	return out
}

func (s *clientStore) Restore(clients []*domain.Client) {
	s.byID = make(map[string]*domain.Client, len(clients))
	s.ordered = make([]*domain.Client, 0, len(clients))
	s.nextSeq = 1
	for _, c := range clients {
		s.byID[c.ID] = c
		s.ordered = append(s.ordered, c)
		if n := idSequence(c.ID, domain.ClientIDPrefix); n >= s.nextSeq {
			s.nextSeq = n + 1
		}
	}
}

var _ ports.ClientStore = (*clientStore)(nil)

// idSequence extracts the numeric suffix of a canonical identifier,
// zero when it does not parse.
func idSequence(id, prefix string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
	if err != nil {
		return 0
	}
	return n
}
