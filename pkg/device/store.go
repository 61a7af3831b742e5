// Package device holds the calibration charts for every supported spreader.
package device

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"spreadcal/entities"
)

var (
	ErrMissingID   = errors.New("device id is required")
	ErrDuplicateID = errors.New("duplicate device id")
)

type snapshot struct {
	list []entities.Device
	byID map[string]int
}

// Store is a read-only view over the current set of charts. Replace swaps in
// a whole new snapshot; readers never see a partially updated set.
type Store struct {
	cur atomic.Pointer[snapshot]
}

func NewStore(devices []entities.Device) (*Store, error) {
	s := &Store{}
	if err := s.Replace(devices); err != nil {
		return nil, err
	}
	return s, nil
}

// Replace validates devices and publishes them as the new snapshot. On error
// the previous snapshot stays in place.
func (s *Store) Replace(devices []entities.Device) error {
	snap := &snapshot{list: make([]entities.Device, 0, len(devices)), byID: make(map[string]int, len(devices))}
	for _, d := range devices {
		d.ID = strings.TrimSpace(d.ID)
		if d.ID == "" {
			return ErrMissingID
		}
		if _, dup := snap.byID[d.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateID, d.ID)
		}
		if err := d.Settings.Validate(); err != nil {
			return fmt.Errorf("device %s: %w", d.ID, err)
		}
		if d.DisplayName == "" {
			d.DisplayName = d.ID
		}
		d.Settings = d.Settings.Clone()
		snap.byID[d.ID] = -1
		snap.list = append(snap.list, d)
	}
	sort.SliceStable(snap.list, func(i, j int) bool {
		a, b := strings.ToLower(snap.list[i].DisplayName), strings.ToLower(snap.list[j].DisplayName)
		if a != b {
			return a < b
		}
		return snap.list[i].ID < snap.list[j].ID
	})
	for i, d := range snap.list {
		snap.byID[d.ID] = i
	}
	s.cur.Store(snap)
	return nil
}

func (s *Store) load() *snapshot {
	if snap := s.cur.Load(); snap != nil {
		return snap
	}
	return &snapshot{}
}

// All returns the devices sorted by display name. The slice is a copy; the
// settings tables are shared and must not be written to.
func (s *Store) All() []entities.Device {
	snap := s.load()
	out := make([]entities.Device, len(snap.list))
	copy(out, snap.list)
	return out
}

func (s *Store) ByID(id string) (entities.Device, bool) {
	snap := s.load()
	i, ok := snap.byID[strings.TrimSpace(id)]
	if !ok {
		return entities.Device{}, false
	}
	return snap.list[i], true
}

func (s *Store) Len() int { return len(s.load().list) }
