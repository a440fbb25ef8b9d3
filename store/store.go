package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"wings/models"
)

// Collection file names, without the .json suffix.
const (
	Products  = "products"
	Sales     = "sales"
	Inventory = "inventory"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store owns the three collection files. Every collection is a single JSON
// array read and written in full; a per-collection mutex is held across each
// read-modify-write cycle so concurrent mutations of the same collection
// serialize instead of losing updates.
type Store struct {
	dir   string
	locks map[string]*sync.Mutex
}

func New(dir string) *Store {
	return &Store{
		dir: dir,
		locks: map[string]*sync.Mutex{
			Products:  {},
			Sales:     {},
			Inventory: {},
		},
	}
}

// Init creates the data directory and seeds any missing collection file with
// an empty array. Load itself never falls back to an empty collection.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	for name := range s.locks {
		path := s.path(name)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return err
		}
		if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
	}
	return nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *Store) load(collection string, out interface{}) error {
	raw, err := os.ReadFile(s.path(collection))
	if err != nil {
		return fmt.Errorf("load %s: %w", collection, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", collection, err)
	}
	return nil
}

// save replaces the collection wholesale. The payload goes to a temp file in
// the same directory first and is renamed into place, so a crashed writer
// never leaves a half-written collection behind.
func (s *Store) save(collection string, records interface{}) error {
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", collection, err)
	}
	if err := os.Rename(tmp.Name(), s.path(collection)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", collection, err)
	}
	return nil
}

// Products returns the full product collection.
func (s *Store) Products() ([]models.Product, error) {
	s.locks[Products].Lock()
	defer s.locks[Products].Unlock()

	var products []models.Product
	if err := s.load(Products, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// UpdateProducts loads the product collection, applies fn and persists the
// result, all under the products lock. If fn returns an error nothing is
// written.
func (s *Store) UpdateProducts(fn func([]models.Product) ([]models.Product, error)) error {
	s.locks[Products].Lock()
	defer s.locks[Products].Unlock()

	var products []models.Product
	if err := s.load(Products, &products); err != nil {
		return err
	}
	updated, err := fn(products)
	if err != nil {
		return err
	}
	if updated == nil {
		updated = []models.Product{}
	}
	return s.save(Products, updated)
}

// Sales returns the full sale collection.
func (s *Store) Sales() ([]models.Sale, error) {
	s.locks[Sales].Lock()
	defer s.locks[Sales].Unlock()

	var sales []models.Sale
	if err := s.load(Sales, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// AppendSale appends one sale record and persists the collection.
func (s *Store) AppendSale(sale models.Sale) error {
	s.locks[Sales].Lock()
	defer s.locks[Sales].Unlock()

	var sales []models.Sale
	if err := s.load(Sales, &sales); err != nil {
		return err
	}
	return s.save(Sales, append(sales, sale))
}

// InventoryEntries returns the full inventory log.
func (s *Store) InventoryEntries() ([]models.InventoryEntry, error) {
	s.locks[Inventory].Lock()
	defer s.locks[Inventory].Unlock()

	var entries []models.InventoryEntry
	if err := s.load(Inventory, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// AppendInventory appends one audit entry and persists the collection.
func (s *Store) AppendInventory(entry models.InventoryEntry) error {
	s.locks[Inventory].Lock()
	defer s.locks[Inventory].Unlock()

	var entries []models.InventoryEntry
	if err := s.load(Inventory, &entries); err != nil {
		return err
	}
	return s.save(Inventory, append(entries, entry))
}
