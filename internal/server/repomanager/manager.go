// Package repomanager wires storage backends behind one interface so the
// service can run against Postgres or a purely in-memory store.
package repomanager

import (
	"github.com/verdant/planter/internal/server/repositories/plants"
	"github.com/verdant/planter/internal/server/repositories/users"
)

// RepositoryManager exposes the repositories of one storage backend.
type RepositoryManager interface {
	Users() users.Repository
	Plants() plants.Repository
	Close() error
}

// MemoryRepositoryManager is the local backend: everything in process
// memory, seeded plants included, nothing survives a restart.
type MemoryRepositoryManager struct {
	users  *users.MemoryRepository
	plants *plants.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:  users.NewMemoryRepository(),
		plants: plants.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users() users.Repository   { return m.users }
func (m *MemoryRepositoryManager) Plants() plants.Repository { return m.plants }
func (m *MemoryRepositoryManager) Close() error              { return nil }
