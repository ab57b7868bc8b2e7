// Package store holds the in-memory routine deck. All mutation goes through
// Store methods; callers only ever receive copies.
//
// A Store is not safe for concurrent use. It is owned by the UI event loop.
package store

import (
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/dailydeck/internal/model"
)

// DefaultImage is attached to every item created through the form.
const DefaultImage = "breathe"

// Option configures a Store.
type Option func(*Store)

// WithItems replaces the initial collection. Counters continue after the
// largest insertion order and numeric id found.
func WithItems(items []model.RoutineItem) Option {
	return func(s *Store) {
		s.items = slices.Clone(items)
	}
}

// WithDefaultImage overrides the image attached to created items.
func WithDefaultImage(ref string) Option {
	return func(s *Store) {
		s.defaultImage = ref
	}
}

// WithLogger sets the logger used for mutation traces.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// Store is the authoritative routine collection.
type Store struct {
	items        []model.RoutineItem
	nextOrder    int
	nextID       int
	defaultImage string
	log          *log.Logger
}

// New builds a store. Without WithItems it starts empty.
func New(opts ...Option) *Store {
	s := &Store{defaultImage: DefaultImage}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = log.New(io.Discard)
	}

	s.nextOrder, s.nextID = 1, 1
	for _, it := range s.items {
		if it.InsertionOrder >= s.nextOrder {
			s.nextOrder = it.InsertionOrder + 1
		}
		if n, err := strconv.Atoi(it.ID); err == nil && n >= s.nextID {
			s.nextID = n + 1
		}
	}
	return s
}

// NewSeeded builds a store holding the built-in deck.
func NewSeeded(opts ...Option) *Store {
	return New(append([]Option{WithItems(Seed())}, opts...)...)
}

// Len returns the number of items.
func (s *Store) Len() int { return len(s.items) }

// List returns the items in display order.
func (s *Store) List() []model.RoutineItem {
	out := slices.Clone(s.items)
	slices.SortStableFunc(out, func(a, b model.RoutineItem) int {
		switch {
		case Less(a, b):
			return -1
		case Less(b, a):
			return 1
		}
		return 0
	})
	return out
}

// Get returns a copy of the item with the given id.
func (s *Store) Get(id string) (model.RoutineItem, error) {
	i := s.index(id)
	if i < 0 {
		return model.RoutineItem{}, errNotFound(id)
	}
	return s.items[i], nil
}

// Create validates f and appends a new item with a fresh id and the next
// insertion order.
func (s *Store) Create(f model.FormData) (model.RoutineItem, error) {
	if err := f.Validate(); err != nil {
		return model.RoutineItem{}, newValidationError(err)
	}
	f = f.Trimmed()

	it := model.RoutineItem{
		ID:             s.allocID(),
		Time:           f.Time,
		Task:           f.Task,
		Description:    f.Description,
		Image:          s.defaultImage,
		InsertionOrder: s.nextOrder,
	}
	s.nextOrder++
	s.items = append(s.items, it)
	s.log.Debug("created routine item", "id", it.ID, "task", it.Task, "order", it.InsertionOrder)
	return it, nil
}

// Update replaces time, task and description of an existing item.
func (s *Store) Update(id string, f model.FormData) (model.RoutineItem, error) {
	if err := f.Validate(); err != nil {
		return model.RoutineItem{}, newValidationError(err)
	}
	i := s.index(id)
	if i < 0 {
		return model.RoutineItem{}, errNotFound(id)
	}
	f = f.Trimmed()

	s.items[i].Time = f.Time
	s.items[i].Task = f.Task
	s.items[i].Description = f.Description
	s.log.Debug("updated routine item", "id", id, "task", f.Task)
	return s.items[i], nil
}

// Delete removes the item with the given id. Confirmation is the caller's job.
func (s *Store) Delete(id string) error {
	i := s.index(id)
	if i < 0 {
		return errNotFound(id)
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.log.Debug("deleted routine item", "id", id)
	return nil
}

// Next returns the first item, in display order, scheduled at or after now.
func (s *Store) Next(now time.Time) (model.RoutineItem, bool) {
	at := MinuteOfDay(now)
	for _, it := range s.List() {
		if m, ok := ParseClock(it.Time); ok && m >= at {
			return it, true
		}
	}
	return model.RoutineItem{}, false
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.items, func(it model.RoutineItem) bool { return it.ID == id })
}

func (s *Store) allocID() string {
	for {
		id := strconv.Itoa(s.nextID)
		s.nextID++
		if s.index(id) < 0 {
			return id
		}
	}
}
