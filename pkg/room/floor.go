package room

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"rivercard-server/internal/util"
)

// Floor keeps the in-memory registry of active rooms
type Floor struct {
	logger logrus.FieldLogger

	mu    sync.RWMutex
	rooms map[string]*Room
}

// NewFloor returns an empty floor
func NewFloor(logger logrus.FieldLogger) *Floor {
	return &Floor{
		logger: logger,
		rooms:  make(map[string]*Room),
	}
}

// CreateRoom creates a room and registers it under a fresh UUID.
// If name is empty, a random one is picked.
func (f *Floor) CreateRoom(name string, seats int) *Room {
	if name == "" {
		name = util.GetRandomName()
	}

	r := NewRoom(f.logger, uuid.New().String(), name, seats)

	f.mu.Lock()
	f.rooms[r.UUID] = r
	f.mu.Unlock()

	f.logger.WithFields(logrus.Fields{
		"table": r.UUID,
		"name":  r.Name,
	}).Info("table created")

	return r
}

// Room returns the room for the UUID, or nil if it doesn't exist
func (f *Floor) Room(uuid string) *Room {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.rooms[uuid]
}
