/*-
 * Copyright 2026 Vedant Chandore.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package fleet owns the mutable state of the system: the road map, the
// persisted bookings and the current schedule snapshot. Every mutation
// rebuilds the schedule off-path and swaps it under one lock, so readers
// never observe a schedule computed from a mixed old/new road set.
package fleet

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/VedantChandore/crcms/pkg/models"
	"github.com/VedantChandore/crcms/pkg/scheduler"
)

var (
	ErrRoadNotFound = errors.New("road not found in fleet")
	ErrNilEngine    = errors.New("scheduler engine is required")
	ErrNilScorer    = errors.New("health scorer is required")
	ErrNilStore     = errors.New("store is required")
)

// RecalcResult reports the before/after state of a road whose inspection
// was just recorded, for the caller to display or audit.
type RecalcResult struct {
	UpdatedRoad models.RoadAsset `json:"updated_road"`
	OldScore    float64          `json:"old_score"`
	NewScore    float64          `json:"new_score"`
	OldBand     models.Band      `json:"old_band"`
	NewBand     models.Band      `json:"new_band"`
}

// Service is the single writer for fleet state.
type Service struct {
	mu sync.RWMutex

	engine *scheduler.Engine
	scorer HealthScorer
	store  Store
	clock  func() time.Time

	monsoonMode bool

	roads    map[string]models.RoadAsset
	bookings map[string]*models.Booking

	schedule []models.ScheduledInspection
	summary  models.ScheduleSummary
	errs     []models.RoadError

	// onUpdate is invoked with the fresh summary after every snapshot
	// swap. It runs under the write lock and must not call back into the
	// service.
	onUpdate func(models.ScheduleSummary)
}

// NewService wires the engine, scorer and store together. A nil clock
// defaults to time.Now.
func NewService(engine *scheduler.Engine, scorer HealthScorer, store Store, clock func() time.Time) (*Service, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}

	if scorer == nil {
		return nil, ErrNilScorer
	}

	if store == nil {
		return nil, ErrNilStore
	}

	if clock == nil {
		clock = time.Now
	}

	return &Service{
		engine:   engine,
		scorer:   scorer,
		store:    store,
		clock:    clock,
		roads:    make(map[string]models.RoadAsset),
		bookings: make(map[string]*models.Booking),
		schedule: []models.ScheduledInspection{},
	}, nil
}

// OnUpdate registers the snapshot-swap callback.
func (s *Service) OnUpdate(fn func(models.ScheduleSummary)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onUpdate = fn
}

// LoadFleet scores and installs the road set, persists it, restores the
// booking state from the store and builds the first schedule snapshot.
// Roads already in the store with recorded inspections keep their
// measured state; the registry row only refreshes the static attributes.
func (s *Service) LoadFleet(roads []models.RoadAsset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.store.ListRoads()
	if err != nil {
		return fmt.Errorf("failed to read stored roads: %w", err)
	}

	storedByID := make(map[string]models.RoadAsset, len(stored))
	for _, road := range stored {
		storedByID[road.RoadID] = road
	}

	loaded := make(map[string]models.RoadAsset, len(roads))

	for _, road := range roads {
		if prev, ok := storedByID[road.RoadID]; ok && len(prev.Inspections) > 0 {
			road.Distress = prev.Distress
			road.IRIValue = prev.IRIValue
			road.Inspections = mergeHistories(road.Inspections, prev.Inspections)
		}

		hs := s.scorer(road)
		road.ConditionScore = hs.Score
		road.Band = hs.Band

		if err := s.store.UpsertRoad(&road); err != nil {
			return fmt.Errorf("failed to persist road %s: %w", road.RoadID, err)
		}

		loaded[road.RoadID] = road
	}

	bookings, err := s.store.ListBookings()
	if err != nil {
		return fmt.Errorf("failed to restore bookings: %w", err)
	}

	s.roads = loaded

	s.bookings = make(map[string]*models.Booking, len(bookings))
	for i := range bookings {
		s.bookings[bookings[i].RoadID] = &bookings[i]
	}

	s.regenerateLocked()

	return nil
}

// SetMonsoonMode flips the global monsoon toggle and rebuilds the
// schedule when it actually changes.
func (s *Service) SetMonsoonMode(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.monsoonMode == enabled {
		return
	}

	s.monsoonMode = enabled
	s.regenerateLocked()
}

// Regenerate rebuilds the schedule against the current clock without any
// state change. Due and overdue status drift as days pass, so periodic
// callers use this to keep the snapshot honest between mutations.
func (s *Service) Regenerate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.regenerateLocked()
}

// MonsoonMode reports the current toggle state.
func (s *Service) MonsoonMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.monsoonMode
}

// Schedule returns a copy of the current sorted snapshot.
func (s *Service) Schedule() []models.ScheduledInspection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ScheduledInspection, len(s.schedule))
	copy(out, s.schedule)

	return out
}

// GetScheduled returns the snapshot entry for one road.
func (s *Service) GetScheduled(roadID string) (models.ScheduledInspection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.schedule {
		if s.schedule[i].Road.RoadID == roadID {
			return s.schedule[i], true
		}
	}

	return models.ScheduledInspection{}, false
}

// Summary returns the current fleet-wide reduction.
func (s *Service) Summary() models.ScheduleSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.summary
}

// Errors returns the per-road failures from the last generation pass.
func (s *Service) Errors() []models.RoadError {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.RoadError, len(s.errs))
	copy(out, s.errs)

	return out
}

// MarkScheduled records a human booking for a road. The booking is
// persisted first; in-memory state only changes once the store accepted it.
func (s *Service) MarkScheduled(roadID string, date time.Time, agency, workType string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roads[roadID]; !ok {
		return models.Booking{}, fmt.Errorf("%w: %s", ErrRoadNotFound, roadID)
	}

	booking := models.Booking{
		RoadID:        roadID,
		ScheduledDate: date,
		Agency:        agency,
		WorkType:      workType,
		CreatedAt:     s.clock(),
	}

	if err := s.store.UpsertBooking(&booking); err != nil {
		return models.Booking{}, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.bookings[roadID] = &booking
	s.regenerateLocked()

	return booking, nil
}

// RecordInspection is the feedback loop: it appends an inspection record,
// produces a new road value (never mutating the old one), rescores it and
// swaps in a fresh schedule, all as one atomic transition.
func (s *Service) RecordInspection(roadID string, form models.InspectionForm) (RecalcResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.roads[roadID]
	if !ok {
		return RecalcResult{}, fmt.Errorf("%w: %s", ErrRoadNotFound, roadID)
	}

	now := s.clock()

	record := models.InspectionRecord{
		ID:               uuid.NewString(),
		RoadID:           roadID,
		Date:             now,
		Agency:           form.Agency,
		SurfaceDamagePct: form.SurfaceDamagePct,
		Waterlogging:     form.Waterlogging,
		DrainageStatus:   form.DrainageStatus,
		Remarks:          form.Remarks,
	}

	updated := old.Clone()
	updated.Distress = form.Distress

	if form.IRIValue > 0 {
		updated.IRIValue = form.IRIValue
	}

	hs := s.scorer(updated)
	updated.ConditionScore = hs.Score
	updated.Band = hs.Band

	record.ConditionScore = hs.Score
	updated.Inspections = append(updated.Inspections, record)

	if err := s.store.InsertInspection(&record); err != nil {
		return RecalcResult{}, fmt.Errorf("failed to persist inspection: %w", err)
	}

	if err := s.store.UpsertRoad(&updated); err != nil {
		return RecalcResult{}, fmt.Errorf("failed to persist road %s: %w", roadID, err)
	}

	// The recorded inspection satisfies any open booking for the road.
	if _, booked := s.bookings[roadID]; booked {
		if err := s.store.DeleteBooking(roadID); err != nil {
			log.Printf("fleet: failed to clear booking for %s: %v", roadID, err)
		} else {
			delete(s.bookings, roadID)
		}
	}

	s.roads[roadID] = updated
	s.regenerateLocked()

	return RecalcResult{
		UpdatedRoad: updated,
		OldScore:    old.ConditionScore,
		NewScore:    updated.ConditionScore,
		OldBand:     old.Band,
		NewBand:     updated.Band,
	}, nil
}

// regenerateLocked rebuilds the schedule snapshot. Callers must hold the
// write lock.
func (s *Service) regenerateLocked() {
	roads := make([]models.RoadAsset, 0, len(s.roads))
	for _, road := range s.roads {
		roads = append(roads, road)
	}

	// Map iteration order is random; the engine sorts, but feed it a
	// deterministic order anyway so error lists are reproducible.
	sort.Slice(roads, func(i, j int) bool {
		return roads[i].RoadID < roads[j].RoadID
	})

	schedule, errs := s.engine.Generate(roads, s.bookings, s.monsoonMode, s.clock())

	for _, re := range errs {
		log.Printf("fleet: road %s excluded from schedule: %s", re.RoadID, re.Reason)
	}

	s.schedule = schedule
	s.summary = scheduler.Summarize(schedule)
	s.errs = errs

	if s.onUpdate != nil {
		s.onUpdate(s.summary)
	}
}

// mergeHistories unions a registry-export history with the recorded one,
// de-duplicated by record id and ordered by date.
func mergeHistories(a, b []models.InspectionRecord) []models.InspectionRecord {
	merged := make([]models.InspectionRecord, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))

	for _, rec := range append(append([]models.InspectionRecord{}, a...), b...) {
		if rec.ID != "" {
			if _, ok := seen[rec.ID]; ok {
				continue
			}

			seen[rec.ID] = struct{}{}
		}

		merged = append(merged, rec)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})

	return merged
}
