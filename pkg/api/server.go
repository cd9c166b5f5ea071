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

// Package api pkg/api/server.go
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/VedantChandore/crcms/pkg/fleet"
	httpx "github.com/VedantChandore/crcms/pkg/http"
	"github.com/VedantChandore/crcms/pkg/models"
)

const bookingDateLayout = "2006-01-02"

// APIServer exposes the schedule snapshot and the write operations that
// mutate fleet state. All state lives in the fleet service; the server
// only translates HTTP to calls on it.
type APIServer struct {
	fleet  *fleet.Service
	router *mux.Router
	hub    *wsHub
	now    func() time.Time
}

// NewAPIServer builds the router and hooks the websocket hub into the
// fleet's snapshot-swap callback.
func NewAPIServer(fleetSvc *fleet.Service, limiter *rate.Limiter) *APIServer {
	s := &APIServer{
		fleet:  fleetSvc,
		router: mux.NewRouter(),
		hub:    newWSHub(),
		now:    time.Now,
	}

	s.setupRoutes(limiter)

	fleetSvc.OnUpdate(s.hub.Broadcast)

	return s
}

// Router returns the handler for the http.Server to serve.
func (s *APIServer) Router() http.Handler {
	return s.router
}

func (s *APIServer) setupRoutes(limiter *rate.Limiter) {
	s.router.Use(httpx.CommonMiddleware)

	s.router.HandleFunc("/api/schedule", s.getSchedule).Methods("GET")
	s.router.HandleFunc("/api/schedule/{id}", s.getScheduledRoad).Methods("GET")
	s.router.HandleFunc("/api/summary", s.getSummary).Methods("GET")
	s.router.HandleFunc("/api/export", s.exportCSV).Methods("GET")
	s.router.HandleFunc("/api/monsoon", s.getMonsoon).Methods("GET")
	s.router.HandleFunc("/api/ws", s.hub.handleWS)

	writes := s.router.Methods("POST").Subrouter()
	if limiter != nil {
		writes.Use(func(next http.Handler) http.Handler {
			return httpx.RateLimit(limiter, next)
		})
	}

	writes.HandleFunc("/api/roads/{id}/schedule", s.postBooking).Methods("POST")
	writes.HandleFunc("/api/roads/{id}/inspections", s.postInspection).Methods("POST")
	writes.HandleFunc("/api/monsoon", s.postMonsoon).Methods("POST")
}

func (s *APIServer) getSchedule(w http.ResponseWriter, r *http.Request) {
	items := s.fleet.Schedule()

	q := r.URL.Query()
	if v := q.Get("priority"); v != "" {
		items = filterSchedule(items, func(item models.ScheduledInspection) bool {
			return string(item.Priority) == v
		})
	}

	if v := q.Get("district"); v != "" {
		items = filterSchedule(items, func(item models.ScheduledInspection) bool {
			return item.Road.District == v
		})
	}

	if q.Get("overdue") == "true" {
		items = filterSchedule(items, func(item models.ScheduledInspection) bool {
			return item.IsOverdue
		})
	}

	writeJSON(w, http.StatusOK, ScheduleResponse{
		GeneratedAt: s.now(),
		MonsoonMode: s.fleet.MonsoonMode(),
		Count:       len(items),
		Items:       items,
		Errors:      s.fleet.Errors(),
	})
}

func (s *APIServer) getScheduledRoad(w http.ResponseWriter, r *http.Request) {
	roadID := mux.Vars(r)["id"]

	item, ok := s.fleet.GetScheduled(roadID)
	if !ok {
		writeError(w, http.StatusNotFound, "road not found: "+roadID)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (s *APIServer) getSummary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.fleet.Summary())
}

func (s *APIServer) getMonsoon(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, MonsoonResponse{Enabled: s.fleet.MonsoonMode()})
}

func (s *APIServer) postMonsoon(w http.ResponseWriter, r *http.Request) {
	var req MonsoonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.fleet.SetMonsoonMode(req.Enabled)

	writeJSON(w, http.StatusOK, MonsoonResponse{Enabled: s.fleet.MonsoonMode()})
}

func (s *APIServer) postBooking(w http.ResponseWriter, r *http.Request) {
	roadID := mux.Vars(r)["id"]

	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := time.Parse(bookingDateLayout, req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	booking, err := s.fleet.MarkScheduled(roadID, date, req.Agency, req.WorkType)
	if err != nil {
		if errors.Is(err, fleet.ErrRoadNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}

		log.Printf("api: booking for %s failed: %v", roadID, err)
		writeError(w, http.StatusInternalServerError, "failed to store booking")

		return
	}

	writeJSON(w, http.StatusCreated, booking)
}

func (s *APIServer) postInspection(w http.ResponseWriter, r *http.Request) {
	roadID := mux.Vars(r)["id"]

	var req InspectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.fleet.RecordInspection(roadID, models.InspectionForm{
		Agency:           req.Agency,
		Distress:         req.Distress,
		IRIValue:         req.IRIValue,
		SurfaceDamagePct: req.SurfaceDamagePct,
		Waterlogging:     req.Waterlogging,
		DrainageStatus:   req.DrainageStatus,
		Remarks:          req.Remarks,
	})
	if err != nil {
		if errors.Is(err, fleet.ErrRoadNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}

		log.Printf("api: inspection for %s failed: %v", roadID, err)
		writeError(w, http.StatusInternalServerError, "failed to record inspection")

		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func filterSchedule(
	items []models.ScheduledInspection,
	keep func(models.ScheduledInspection) bool,
) []models.ScheduledInspection {
	out := items[:0:0]

	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}

	return out
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("api: error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
