// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package catalog

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Snapshot is a complete, already-resolved catalog.
type Snapshot struct {
	Items    []*Item
	Packages []*Package
}

// ItemLookup fetches a single item by id.
type ItemLookup interface {
	Item(id string) (*Item, error)
}

// Repository is the read side of the catalog used by the service layer.
// Items and Packages return entries in catalog order.
type Repository interface {
	ItemLookup
	Package(id string) (*Package, error)
	Items() []*Item
	Packages() []*Package
	Version() uint64
}

// Memory is an in-memory Repository holding one snapshot at a time.
// It is safe for concurrent use.
type Memory struct {
	mu       sync.RWMutex
	items    map[string]*Item
	packages map[string]*Package
	itemList []*Item
	pkgList  []*Package
	version  atomic.Uint64
	checks   []SnapshotCheck
}

// SnapshotCheck inspects a snapshot before Replace accepts it.
type SnapshotCheck func(Snapshot) error

// NewMemory creates a repository holding s. checks run on s and on every
// later Replace after the structural checks pass.
func NewMemory(s Snapshot, checks ...SnapshotCheck) (*Memory, error) {
	m := &Memory{checks: checks}
	if err := m.Replace(s); err != nil {
		return nil, err
	}
	return m, nil
}

// Replace swaps in a new snapshot after checking id uniqueness and that every
// package member and included selection refers to a real item customization.
// On error the previous snapshot stays in place.
func (m *Memory) Replace(s Snapshot) error {
	items := make(map[string]*Item, len(s.Items))
	for _, it := range s.Items {
		if _, dup := items[it.ID]; dup {
			return &ConfigurationError{ItemID: it.ID, Reason: "duplicate item id"}
		}
		items[it.ID] = it
	}

	packages := make(map[string]*Package, len(s.Packages))
	for _, p := range s.Packages {
		if _, dup := packages[p.ID]; dup {
			return &ConfigurationError{PackageID: p.ID, Reason: "duplicate package id"}
		}
		for _, member := range p.Items {
			item, ok := items[member.MenuItemID]
			if !ok {
				return &ConfigurationError{PackageID: p.ID, ItemID: member.MenuItemID, Reason: "package member is not in the catalog"}
			}
			for _, sel := range member.Included {
				if _, ok := item.Customization(sel.CustomizationID); !ok {
					return &ConfigurationError{
						PackageID:       p.ID,
						ItemID:          item.ID,
						CustomizationID: sel.CustomizationID,
						Reason:          "included customization is not defined on the member",
					}
				}
			}
		}
		packages[p.ID] = p
	}

	for _, check := range m.checks {
		if err := check(s); err != nil {
			return err
		}
	}

	m.mu.Lock()
	m.items = items
	m.packages = packages
	m.itemList = append([]*Item(nil), s.Items...)
	m.pkgList = append([]*Package(nil), s.Packages...)
	m.mu.Unlock()

	m.version.Add(1)
	return nil
}

// Item returns the item with the given id.
func (m *Memory) Item(id string) (*Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if it, ok := m.items[id]; ok {
		return it, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
}

// Package returns the package with the given id.
func (m *Memory) Package(id string) (*Package, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if p, ok := m.packages[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, id)
}

// Items returns all items in catalog order. The slice is a copy.
func (m *Memory) Items() []*Item {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*Item(nil), m.itemList...)
}

// Packages returns all packages in catalog order. The slice is a copy.
func (m *Memory) Packages() []*Package {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*Package(nil), m.pkgList...)
}

// Version increases by one on every successful Replace.
func (m *Memory) Version() uint64 {
	return m.version.Load()
}

// Member is a package member with its item resolved.
type Member struct {
	Item     *Item
	Quantity int
	Included []Selection
}

// ExpandedPackage is a package whose members have been looked up.
type ExpandedPackage struct {
	*Package
	Members []Member
}

// Expand resolves every member of p through items.
func Expand(p *Package, items ItemLookup) (ExpandedPackage, error) {
	members := make([]Member, 0, len(p.Items))
	for _, pi := range p.Items {
		it, err := items.Item(pi.MenuItemID)
		if err != nil {
			return ExpandedPackage{}, &ConfigurationError{PackageID: p.ID, ItemID: pi.MenuItemID, Reason: "package member is not in the catalog"}
		}
		members = append(members, Member{Item: it, Quantity: pi.Quantity, Included: pi.Included})
	}
	return ExpandedPackage{Package: p, Members: members}, nil
}

// HasCategory reports whether any member belongs to category.
func (e ExpandedPackage) HasCategory(category string) bool {
	for _, m := range e.Members {
		if m.Item.InCategory(category) {
			return true
		}
	}
	return false
}
