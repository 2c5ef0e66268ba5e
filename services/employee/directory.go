package employee

import (
	"assetledger/models"
	"errors"
	"sync"
)

var (
	ErrDirectoryUnavailable = errors.New("employee directory has not been supplied")
	ErrEmployeeNotFound     = errors.New("employee not found")
)

// Directory is the engine's snapshot of the external employee list. It is empty and
// unavailable until Set is called.
type Directory struct {
	mu        sync.RWMutex
	loaded    bool
	employees []models.Employee
	byID      map[string]models.Employee
}

func NewDirectory() *Directory {
	return &Directory{}
}

// Set replaces the snapshot. An empty list still counts as supplied.
func (d *Directory) Set(employees []models.Employee) {
	byID := make(map[string]models.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.employees = append([]models.Employee(nil), employees...)
	d.byID = byID
	d.loaded = true
}

func (d *Directory) Loaded() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loaded
}

func (d *Directory) Lookup(id string) (models.Employee, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if !d.loaded {
		return models.Employee{}, ErrDirectoryUnavailable
	}
	e, ok := d.byID[id]
	if !ok {
		return models.Employee{}, ErrEmployeeNotFound
	}
	return e, nil
}

func (d *Directory) All() []models.Employee {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]models.Employee{}, d.employees...)
}
