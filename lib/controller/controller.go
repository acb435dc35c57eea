// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

// Package controller implements the list controllers that sit between
// the API client and the presentation layer. One generic controller,
// instantiated per entity (theme, level, question, user), owns an
// in-memory collection, a loading/error flag pair, and the pending
// edit draft.
//
// Collections are replaced wholesale on load (last write wins, no
// merge) and mutated surgically after create/update/delete round
// trips; the controller never re-fetches a whole list to apply a
// single change. A generation counter discards responses from
// superseded loads so rapid filter changes cannot overwrite fresh
// data with stale results.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/civica-platform/civica-admin/lib/api"
)

// Filter scopes a list request. Zero value means unfiltered. Which
// fields apply depends on the resource: levels honor ThemeID,
// questions honor LevelID, users honor EmailQuery.
type Filter struct {
	ThemeID    string
	LevelID    string
	EmailQuery string
}

// Resource binds the generic controller to one entity's API calls.
type Resource[E any] interface {
	// Name is the entity name used in messages ("theme", "level", ...).
	Name() string

	// ID extracts the backend-assigned identifier.
	ID(item E) string

	// List fetches the collection, optionally scoped by filter.
	List(ctx context.Context, filter Filter) ([]E, error)

	// Create stores a new entity and returns the stored record.
	Create(ctx context.Context, draft E) (E, error)

	// Update overwrites an entity and returns the stored record.
	Update(ctx context.Context, id string, draft E) (E, error)

	// Delete removes an entity.
	Delete(ctx context.Context, id string) error

	// Validate performs the local required-field checks. A non-nil
	// error prevents any network call.
	Validate(draft E) error

	// NewDraft returns a draft seeded with defaults, scoped to the
	// filter where that makes sense (a level drafted under a theme
	// filter belongs to that theme).
	NewDraft(filter Filter) E
}

// Orderable is implemented by resources whose entities carry an
// order_index (levels and questions). The controller uses it for
// neighbor swaps.
type Orderable[E any] interface {
	OrderIndex(item E) int
	SetOrderIndex(item *E, index int)
}

// Direction selects a reorder neighbor.
type Direction int

const (
	// Up swaps with the previous item in the sorted view.
	Up Direction = iota
	// Down swaps with the next item in the sorted view.
	Down
)

// ValidationError reports a local required-field failure. It carries
// the offending field so forms can highlight it inline.
type ValidationError struct {
	Field   string
	Message string
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", err.Field, err.Message)
}

// Required constructs the standard "required" validation error.
func Required(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "required"}
}

// IsValidationError reports whether err is a local validation failure,
// returning the typed error when it is.
func IsValidationError(err error) (*ValidationError, bool) {
	var validationError *ValidationError
	if errors.As(err, &validationError) {
		return validationError, true
	}
	return nil, false
}

// ErrBusy is returned by Save when a create/update for this controller
// is already in flight. At most one outstanding submission exists per
// controller; repeated save triggers while waiting are rejected rather
// than queued.
var ErrBusy = errors.New("a save is already in flight")

// List is the generic entity list controller. Safe for concurrent
// use: the TUI reads snapshots from its event loop while network
// calls complete on other goroutines.
type List[E any] struct {
	resource Resource[E]

	mu         sync.Mutex
	items      []E
	loading    bool
	err        string
	draft      *E
	editingID  string
	submitting bool
	generation uint64
	filter     Filter
}

// NewList creates a controller for the given resource with an empty
// collection.
func NewList[E any](resource Resource[E]) *List[E] {
	return &List[E]{resource: resource}
}

// Items returns a copy of the current collection.
func (list *List[E]) Items() []E {
	list.mu.Lock()
	defer list.mu.Unlock()
	items := make([]E, len(list.items))
	copy(items, list.items)
	return items
}

// Len returns the collection size without copying.
func (list *List[E]) Len() int {
	list.mu.Lock()
	defer list.mu.Unlock()
	return len(list.items)
}

// Loading reports whether a load is in flight.
func (list *List[E]) Loading() bool {
	list.mu.Lock()
	defer list.mu.Unlock()
	return list.loading
}

// Err returns the last operation's user-facing error message, or ""
// when the last operation succeeded.
func (list *List[E]) Err() string {
	list.mu.Lock()
	defer list.mu.Unlock()
	return list.err
}

// Filter returns the filter applied by the most recent load.
func (list *List[E]) Filter() Filter {
	list.mu.Lock()
	defer list.mu.Unlock()
	return list.filter
}

// Submitting reports whether a create/update is in flight. The
// presentation layer disables the save action while true.
func (list *List[E]) Submitting() bool {
	list.mu.Lock()
	defer list.mu.Unlock()
	return list.submitting
}

// Load fetches the collection and replaces items wholesale on
// success. On failure items are left as they were and Err carries the
// message. If another Load started after this one, its result wins
// and this one is discarded regardless of arrival order.
func (list *List[E]) Load(ctx context.Context, filter Filter) error {
	list.mu.Lock()
	list.loading = true
	list.err = ""
	list.filter = filter
	list.generation++
	generation := list.generation
	list.mu.Unlock()

	items, err := list.resource.List(ctx, filter)

	list.mu.Lock()
	defer list.mu.Unlock()

	if generation != list.generation {
		// A newer load superseded this one; drop the result.
		return nil
	}

	list.loading = false
	if err != nil {
		list.err = api.UserMessage(err)
		return err
	}
	list.items = items
	return nil
}

// StartCreate seeds the draft with defaults for a new entity.
func (list *List[E]) StartCreate() {
	list.mu.Lock()
	defer list.mu.Unlock()
	draft := list.resource.NewDraft(list.filter)
	list.draft = &draft
	list.editingID = ""
}

// StartEdit seeds the draft from the item with the given id. Returns
// false if no such item is in the collection.
func (list *List[E]) StartEdit(id string) bool {
	list.mu.Lock()
	defer list.mu.Unlock()
	for _, item := range list.items {
		if list.resource.ID(item) == id {
			draft := item
			list.draft = &draft
			list.editingID = id
			return true
		}
	}
	return false
}

// Draft returns a copy of the pending draft. ok is false when no edit
// surface is open.
func (list *List[E]) Draft() (draft E, editing bool, ok bool) {
	list.mu.Lock()
	defer list.mu.Unlock()
	if list.draft == nil {
		var zero E
		return zero, false, false
	}
	return *list.draft, list.editingID != "", true
}

// SetDraft replaces the pending draft, keeping the create/edit mode.
// The presentation layer calls this as the user edits form fields.
func (list *List[E]) SetDraft(draft E) {
	list.mu.Lock()
	defer list.mu.Unlock()
	if list.draft == nil {
		return
	}
	*list.draft = draft
}

// CancelEdit discards the draft without saving.
func (list *List[E]) CancelEdit() {
	list.mu.Lock()
	defer list.mu.Unlock()
	list.draft = nil
	list.editingID = ""
}

// Save validates the draft locally and, on pass, submits it. Creates
// append the stored record; updates replace the matching item in
// place. On any failure the collection is untouched and the draft
// stays open so the user can correct it. A local validation failure
// performs no network call.
func (list *List[E]) Save(ctx context.Context) (E, error) {
	var zero E

	list.mu.Lock()
	if list.draft == nil {
		list.mu.Unlock()
		return zero, errors.New("no draft to save")
	}
	if list.submitting {
		list.mu.Unlock()
		return zero, ErrBusy
	}
	draft := *list.draft
	editingID := list.editingID

	if err := list.resource.Validate(draft); err != nil {
		list.err = err.Error()
		list.mu.Unlock()
		return zero, err
	}
	list.submitting = true
	list.err = ""
	list.mu.Unlock()

	var stored E
	var err error
	if editingID == "" {
		stored, err = list.resource.Create(ctx, draft)
	} else {
		stored, err = list.resource.Update(ctx, editingID, draft)
	}

	list.mu.Lock()
	defer list.mu.Unlock()
	list.submitting = false

	if err != nil {
		list.err = api.UserMessage(err)
		return zero, err
	}

	if editingID == "" {
		list.items = append(list.items, stored)
	} else {
		list.replaceLocked(editingID, stored)
	}
	list.draft = nil
	list.editingID = ""
	return stored, nil
}

// Remove deletes the entity with the given id. Interactive
// confirmation is the caller's responsibility; by the time Remove
// runs, the user has already confirmed. Success removes exactly the
// matching item; failure leaves the collection untouched.
func (list *List[E]) Remove(ctx context.Context, id string) error {
	if err := list.resource.Delete(ctx, id); err != nil {
		list.mu.Lock()
		list.err = api.UserMessage(err)
		list.mu.Unlock()
		return err
	}

	list.mu.Lock()
	defer list.mu.Unlock()
	list.err = ""
	for index, item := range list.items {
		if list.resource.ID(item) == id {
			list.items = append(list.items[:index], list.items[index+1:]...)
			break
		}
	}
	return nil
}

// Reorder swaps the item with its immediate neighbor in the
// order_index-sorted view and persists both new positions through the
// update endpoint. Swapping past either end is a no-op. If the first
// update fails nothing has changed server-side and the local state is
// left alone; if the second fails the swap is half-applied remotely,
// so the controller reloads to resync rather than guessing.
func (list *List[E]) Reorder(ctx context.Context, id string, direction Direction) error {
	orderable, ok := any(list.resource).(Orderable[E])
	if !ok {
		return fmt.Errorf("%s entities have no display order", list.resource.Name())
	}

	list.mu.Lock()
	sorted := make([]E, len(list.items))
	copy(sorted, list.items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return orderable.OrderIndex(sorted[i]) < orderable.OrderIndex(sorted[j])
	})

	position := -1
	for index, item := range sorted {
		if list.resource.ID(item) == id {
			position = index
			break
		}
	}
	if position < 0 {
		list.mu.Unlock()
		return fmt.Errorf("no %s with id %s", list.resource.Name(), id)
	}

	neighbor := position - 1
	if direction == Down {
		neighbor = position + 1
	}
	if neighbor < 0 || neighbor >= len(sorted) {
		list.mu.Unlock()
		return nil
	}

	target := sorted[position]
	other := sorted[neighbor]
	targetIndex := orderable.OrderIndex(target)
	otherIndex := orderable.OrderIndex(other)
	orderable.SetOrderIndex(&target, otherIndex)
	orderable.SetOrderIndex(&other, targetIndex)
	filter := list.filter
	list.mu.Unlock()

	storedOther, err := list.resource.Update(ctx, list.resource.ID(other), other)
	if err != nil {
		list.mu.Lock()
		list.err = api.UserMessage(err)
		list.mu.Unlock()
		return err
	}

	storedTarget, err := list.resource.Update(ctx, list.resource.ID(target), target)
	if err != nil {
		// The neighbor's new index is already stored; resync from the
		// backend instead of leaving the pair locally inconsistent.
		list.mu.Lock()
		list.err = api.UserMessage(err)
		list.mu.Unlock()
		if reloadErr := list.Load(ctx, filter); reloadErr != nil {
			return fmt.Errorf("reorder failed (%w) and resync failed: %v", err, reloadErr)
		}
		return err
	}

	list.mu.Lock()
	defer list.mu.Unlock()
	list.err = ""
	list.replaceLocked(list.resource.ID(storedOther), storedOther)
	list.replaceLocked(list.resource.ID(storedTarget), storedTarget)
	return nil
}

// replaceLocked swaps the stored record in for the item with the same
// id. Caller holds list.mu.
func (list *List[E]) replaceLocked(id string, stored E) {
	for index, item := range list.items {
		if list.resource.ID(item) == id {
			list.items[index] = stored
			return
		}
	}
}
