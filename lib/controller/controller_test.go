// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package controller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/civica-platform/civica-admin/lib/api"
)

// fakeLevels is an in-memory Resource[api.Level] with failure
// injection and call counting. Implements Orderable.
type fakeLevels struct {
	mu sync.Mutex

	listResult []api.Level
	listErr    error
	listCalls  int
	listBlock  chan struct{} // When non-nil, List waits for a receive.

	createErr   error
	createCalls int

	updateErr      error
	updateErrAfter int // Fail updates once updateCalls exceeds this. -1 disables.
	updateCalls    int

	deleteErr   error
	deleteCalls int
}

func newFakeLevels(items ...api.Level) *fakeLevels {
	return &fakeLevels{listResult: items, updateErrAfter: -1}
}

func (fake *fakeLevels) Name() string { return "level" }
func (fake *fakeLevels) ID(item api.Level) string { return item.ID }

func (fake *fakeLevels) List(_ context.Context, _ Filter) ([]api.Level, error) {
	fake.mu.Lock()
	fake.listCalls++
	block := fake.listBlock
	result := make([]api.Level, len(fake.listResult))
	copy(result, fake.listResult)
	err := fake.listErr
	fake.mu.Unlock()

	if block != nil {
		<-block
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (fake *fakeLevels) Create(_ context.Context, draft api.Level) (api.Level, error) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.createCalls++
	if fake.createErr != nil {
		return api.Level{}, fake.createErr
	}
	draft.ID = "l-new"
	return draft, nil
}

func (fake *fakeLevels) Update(_ context.Context, id string, draft api.Level) (api.Level, error) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.updateCalls++
	if fake.updateErr != nil {
		return api.Level{}, fake.updateErr
	}
	if fake.updateErrAfter >= 0 && fake.updateCalls > fake.updateErrAfter {
		return api.Level{}, &api.Error{StatusCode: 500, Kind: api.KindServer, Message: "boom"}
	}
	draft.ID = id
	return draft, nil
}

func (fake *fakeLevels) Delete(_ context.Context, _ string) error {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.deleteCalls++
	return fake.deleteErr
}

func (fake *fakeLevels) Validate(draft api.Level) error {
	if draft.Title == "" {
		return Required("title")
	}
	return nil
}

func (fake *fakeLevels) NewDraft(filter Filter) api.Level {
	return api.Level{ThemeID: filter.ThemeID, Difficulty: api.DifficultyEasy, IsActive: true}
}

func (fake *fakeLevels) OrderIndex(item api.Level) int        { return item.OrderIndex }
func (fake *fakeLevels) SetOrderIndex(item *api.Level, i int) { item.OrderIndex = i }

func level(id string, orderIndex int) api.Level {
	return api.Level{ID: id, ThemeID: "t1", Title: "Level " + id, Difficulty: api.DifficultyEasy, OrderIndex: orderIndex, IsActive: true}
}

func TestLoad_ReplacesWholesale(t *testing.T) {
	fake := newFakeLevels(level("l1", 1), level("l2", 2))
	list := NewList[api.Level](fake)

	if err := list.Load(context.Background(), Filter{}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if list.Len() != 2 {
		t.Fatalf("Len = %d, want 2", list.Len())
	}

	fake.mu.Lock()
	fake.listResult = []api.Level{level("l3", 1)}
	fake.mu.Unlock()

	if err := list.Load(context.Background(), Filter{}); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	items := list.Items()
	if len(items) != 1 || items[0].ID != "l3" {
		t.Errorf("items = %+v, want wholesale replacement with l3", items)
	}
}

func TestLoad_FailureKeepsItems(t *testing.T) {
	fake := newFakeLevels(level("l1", 1))
	list := NewList[api.Level](fake)
	if err := list.Load(context.Background(), Filter{}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	fake.mu.Lock()
	fake.listErr = &api.Error{StatusCode: 503, Kind: api.KindServer, Message: "maintenance"}
	fake.mu.Unlock()

	if err := list.Load(context.Background(), Filter{}); err == nil {
		t.Fatal("expected load failure")
	}
	if list.Len() != 1 {
		t.Errorf("Len = %d after failed load, want previous 1", list.Len())
	}
	if list.Err() != "maintenance" {
		t.Errorf("Err = %q, want %q", list.Err(), "maintenance")
	}
	if list.Loading() {
		t.Error("Loading = true after load completed")
	}
}

func TestLoad_StaleGenerationDiscarded(t *testing.T) {
	fake := newFakeLevels(level("stale", 1))
	list := NewList[api.Level](fake)

	// First load blocks in flight.
	release := make(chan struct{})
	fake.mu.Lock()
	fake.listBlock = release
	fake.mu.Unlock()

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		list.Load(context.Background(), Filter{ThemeID: "t1"})
	}()

	// Wait until the first load has actually started.
	for {
		fake.mu.Lock()
		started := fake.listCalls == 1
		if started {
			fake.listBlock = nil
			fake.listResult = []api.Level{level("fresh", 1)}
		}
		fake.mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}

	// Second load supersedes the first and completes immediately.
	if err := list.Load(context.Background(), Filter{ThemeID: "t2"}); err != nil {
		t.Fatalf("second Load: %v", err)
	}

	// Now let the first (stale) response arrive.
	close(release)
	<-firstDone

	items := list.Items()
	if len(items) != 1 || items[0].ID != "fresh" {
		t.Errorf("items = %+v, want the fresh result to survive the stale arrival", items)
	}
	if list.Filter().ThemeID != "t2" {
		t.Errorf("Filter.ThemeID = %q, want t2", list.Filter().ThemeID)
	}
}

func TestSave_CreateAppendsExactlyOne(t *testing.T) {
	fake := newFakeLevels(level("l1", 1))
	list := NewList[api.Level](fake)
	if err := list.Load(context.Background(), Filter{ThemeID: "t1"}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	list.StartCreate()
	draft, editing, ok := list.Draft()
	if !ok || editing {
		t.Fatalf("Draft after StartCreate: editing=%v ok=%v", editing, ok)
	}
	if draft.ThemeID != "t1" {
		t.Errorf("draft.ThemeID = %q, want scope from filter", draft.ThemeID)
	}

	draft.Title = "Nouveau niveau"
	list.SetDraft(draft)

	stored, err := list.Save(context.Background())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if stored.ID != "l-new" {
		t.Errorf("stored.ID = %q, want backend-assigned l-new", stored.ID)
	}
	if list.Len() != 2 {
		t.Errorf("Len = %d, want 2 (exactly one appended)", list.Len())
	}
	if _, _, ok := list.Draft(); ok {
		t.Error("draft still open after successful save")
	}
}

func TestSave_CreateFailureLeavesItemsUnchanged(t *testing.T) {
	fake := newFakeLevels(level("l1", 1))
	fake.createErr = &api.Error{StatusCode: 400, Kind: api.KindValidation, Message: "Titre déjà utilisé"}
	list := NewList[api.Level](fake)
	if err := list.Load(context.Background(), Filter{}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	list.StartCreate()
	draft, _, _ := list.Draft()
	draft.Title = "Doublon"
	list.SetDraft(draft)

	if _, err := list.Save(context.Background()); err == nil {
		t.Fatal("expected save failure")
	}
	if list.Len() != 1 {
		t.Errorf("Len = %d after failed create, want 1", list.Len())
	}
	if list.Err() != "Titre déjà utilisé" {
		t.Errorf("Err = %q, want the gateway's message", list.Err())
	}
	if _, _, ok := list.Draft(); !ok {
		t.Error("draft closed after failed save; it should stay open for correction")
	}
}

func TestSave_UpdateReplacesInPlace(t *testing.T) {
	fake := newFakeLevels(level("l1", 1), level("l2", 2))
	list := NewList[api.Level](fake)
	if err := list.Load(context.Background(), Filter{}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !list.StartEdit("l2") {
		t.Fatal("StartEdit(l2) = false")
	}
	draft, editing, _ := list.Draft()
	if !editing {
		t.Error("Draft reports create mode for an edit")
	}
	draft.Title = "Renamed"
	list.SetDraft(draft)

	if _, err := list.Save(context.Background()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	items := list.Items()
	if len(items) != 2 {
		t.Fatalf("Len = %d, want 2 (replaced, not appended)", len(items))
	}
	if items[1].ID != "l2" || items[1].Title != "Renamed" {
		t.Errorf("items[1] = %+v, want l2 renamed in place", items[1])
	}
}

func TestSave_ValidationFailurePerformsNoNetworkCall(t *testing.T) {
	fake := newFakeLevels()
	list := NewList[api.Level](fake)
	list.StartCreate()
	// Draft left with an empty title.

	_, err := list.Save(context.Background())
	if err == nil {
		t.Fatal("expected validation failure")
	}
	validationError, ok := IsValidationError(err)
	if !ok {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if validationError.Field != "title" || validationError.Message != "required" {
		t.Errorf("validation error = %+v, want title/required", validationError)
	}
	if fake.createCalls != 0 {
		t.Errorf("createCalls = %d, want 0 (validation must reject locally)", fake.createCalls)
	}
}

func TestSave_BusyGuard(t *testing.T) {
	fake := newFakeLevels()
	list := NewList[api.Level](fake)
	list.StartCreate()
	draft, _, _ := list.Draft()
	draft.Title = "One"
	list.SetDraft(draft)

	// Simulate an in-flight save by toggling the flag the way Save does.
	list.mu.Lock()
	list.submitting = true
	list.mu.Unlock()

	if _, err := list.Save(context.Background()); !errors.Is(err, ErrBusy) {
		t.Errorf("Save during submit = %v, want ErrBusy", err)
	}
	if fake.createCalls != 0 {
		t.Errorf("createCalls = %d, want 0", fake.createCalls)
	}
}

func TestRemove_SuccessRemovesExactlyOne(t *testing.T) {
	fake := newFakeLevels(level("l1", 1), level("l2", 2), level("l3", 3))
	list := NewList[api.Level](fake)
	if err := list.Load(context.Background(), Filter{}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := list.Remove(context.Background(), "l2"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	items := list.Items()
	if len(items) != 2 {
		t.Fatalf("Len = %d, want 2", len(items))
	}
	if items[0].ID != "l1" || items[1].ID != "l3" {
		t.Errorf("items = %+v, want l1 and l3 surviving", items)
	}
}

func TestRemove_FailureLeavesListUntouched(t *testing.T) {
	fake := newFakeLevels(level("l1", 1), level("l2", 2))
	fake.deleteErr = &api.Error{StatusCode: 500, Kind: api.KindServer, Message: "Internal server error"}
	list := NewList[api.Level](fake)
	if err := list.Load(context.Background(), Filter{}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	before := list.Items()

	if err := list.Remove(context.Background(), "l2"); err == nil {
		t.Fatal("expected remove failure")
	}

	after := list.Items()
	if len(after) != len(before) {
		t.Fatalf("Len changed from %d to %d on failed remove", len(before), len(after))
	}
	for index := range before {
		if before[index] != after[index] {
			t.Errorf("items[%d] changed on failed remove: %+v -> %+v", index, before[index], after[index])
		}
	}
	if list.Err() != "Internal server error" {
		t.Errorf("Err = %q, want reported message", list.Err())
	}
}

func TestReorder_UpSwapsWithPreviousAndPersistsBoth(t *testing.T) {
	fake := newFakeLevels(level("l1", 1), level("l2", 2), level("l3", 3))
	list := NewList[api.Level](fake)
	if err := list.Load(context.Background(), Filter{}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := list.Reorder(context.Background(), "l2", Up); err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	byID := map[string]api.Level{}
	for _, item := range list.Items() {
		byID[item.ID] = item
	}
	if byID["l2"].OrderIndex != 1 {
		t.Errorf("l2.OrderIndex = %d, want 1", byID["l2"].OrderIndex)
	}
	if byID["l1"].OrderIndex != 2 {
		t.Errorf("l1.OrderIndex = %d, want 2", byID["l1"].OrderIndex)
	}
	if byID["l3"].OrderIndex != 3 {
		t.Errorf("l3.OrderIndex = %d, want unchanged 3", byID["l3"].OrderIndex)
	}
	if fake.updateCalls != 2 {
		t.Errorf("updateCalls = %d, want 2 (both sides of the swap persisted)", fake.updateCalls)
	}
}

func TestReorder_AtBoundaryIsNoOp(t *testing.T) {
	fake := newFakeLevels(level("l1", 1), level("l2", 2))
	list := NewList[api.Level](fake)
	if err := list.Load(context.Background(), Filter{}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := list.Reorder(context.Background(), "l1", Up); err != nil {
		t.Fatalf("Reorder at top: %v", err)
	}
	if fake.updateCalls != 0 {
		t.Errorf("updateCalls = %d, want 0 for boundary no-op", fake.updateCalls)
	}
}

func TestReorder_SecondUpdateFailureResyncs(t *testing.T) {
	fake := newFakeLevels(level("l1", 1), level("l2", 2))
	fake.updateErrAfter = 1 // First update succeeds, second fails.
	list := NewList[api.Level](fake)
	if err := list.Load(context.Background(), Filter{}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	listCallsBefore := fake.listCalls

	if err := list.Reorder(context.Background(), "l2", Up); err == nil {
		t.Fatal("expected reorder failure")
	}

	fake.mu.Lock()
	listCallsAfter := fake.listCalls
	fake.mu.Unlock()
	if listCallsAfter != listCallsBefore+1 {
		t.Errorf("listCalls = %d, want %d (half-applied swap must trigger a resync)", listCallsAfter, listCallsBefore+1)
	}
}

// Questions carry the strictest validation rules: all four options
// and a valid answer key, rejected locally before any request.
func TestQuestionValidation(t *testing.T) {
	resource := QuestionResource{}

	valid := api.Question{
		LevelID: "l1", QuestionText: "Capitale de la France ?",
		OptionA: "Paris", OptionB: "Lyon", OptionC: "Marseille", OptionD: "Toulouse",
		CorrectAnswer: api.AnswerA, Points: 10,
	}
	if err := resource.Validate(valid); err != nil {
		t.Errorf("Validate(valid) = %v, want nil", err)
	}

	missing := valid
	missing.OptionC = ""
	err := resource.Validate(missing)
	validationError, ok := IsValidationError(err)
	if !ok {
		t.Fatalf("Validate(missing option) = %v, want *ValidationError", err)
	}
	if validationError.Field != "option_c" || validationError.Message != "required" {
		t.Errorf("validation error = %+v, want option_c/required", validationError)
	}

	badKey := valid
	badKey.CorrectAnswer = "E"
	if err := resource.Validate(badKey); err == nil {
		t.Error("Validate accepted correct_answer outside A-D")
	}
}
