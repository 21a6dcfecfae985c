// Package api hosts simulation sessions over a JSON HTTP API. Each session
// owns one engine instance guarded by a mutex, since the engine itself has
// no reentrancy protection. GET endpoints read state; POST endpoints invoke
// exactly one engine operation each.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/talgya/undernet/internal/content"
	"github.com/talgya/undernet/internal/engine"
	"github.com/talgya/undernet/internal/entropy"
	"github.com/talgya/undernet/internal/persistence"
	"github.com/talgya/undernet/internal/player"
)

const maxSessions = 256

// Server hosts independent simulation sessions.
type Server struct {
	Library *content.Library
	Store   *persistence.Store // nil disables the save/load endpoints
	Port    int

	mu       sync.Mutex
	sessions map[string]*session
}

// session serializes access to one engine.
type session struct {
	mu  sync.Mutex
	eng *engine.Engine
}

// Handler builds the HTTP handler. Exposed separately from Start for tests.
func (s *Server) Handler() http.Handler {
	sessionLimiter := NewRateLimiter(60, time.Hour)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/sessions", RateLimitMiddleware(sessionLimiter, s.handleCreateSession))
	mux.HandleFunc("GET /api/v1/sessions/{id}", s.withSession(s.handleState))
	mux.HandleFunc("DELETE /api/v1/sessions/{id}", s.handleDeleteSession)

	mux.HandleFunc("POST /api/v1/sessions/{id}/player", s.withSession(s.handleCreatePlayer))
	mux.HandleFunc("GET /api/v1/sessions/{id}/training", s.withSession(s.handleListTraining))
	mux.HandleFunc("POST /api/v1/sessions/{id}/training", s.withSession(s.handleRunTraining))
	mux.HandleFunc("GET /api/v1/sessions/{id}/contracts", s.withSession(s.handleListContracts))
	mux.HandleFunc("POST /api/v1/sessions/{id}/contracts", s.withSession(s.handleStartContract))
	mux.HandleFunc("GET /api/v1/sessions/{id}/gear", s.withSession(s.handleListGear))
	mux.HandleFunc("POST /api/v1/sessions/{id}/gear", s.withSession(s.handlePurchaseGear))
	mux.HandleFunc("POST /api/v1/sessions/{id}/market/advance", s.withSession(s.handleAdvanceMarket))
	mux.HandleFunc("GET /api/v1/sessions/{id}/crisis", s.withSession(s.handleActiveCrisis))
	mux.HandleFunc("POST /api/v1/sessions/{id}/crisis", s.withSession(s.handleResolveCrisis))
	mux.HandleFunc("POST /api/v1/sessions/{id}/save", s.withSession(s.handleSave))
	mux.HandleFunc("POST /api/v1/sessions/{id}/load", s.withSession(s.handleLoad))
	mux.HandleFunc("GET /api/v1/saves", s.handleListSaves)

	return mux
}

// Start begins serving in a goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "saves_enabled", s.Store != nil)
	go func() {
		if err := http.ListenAndServe(addr, s.Handler()); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

type createSessionRequest struct {
	Seed *int64 `json:"seed,omitempty"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	seed := entropy.CryptoSeed()
	if req.Seed != nil {
		seed = *req.Seed
	}

	s.mu.Lock()
	if s.sessions == nil {
		s.sessions = make(map[string]*session)
	}
	if len(s.sessions) >= maxSessions {
		s.mu.Unlock()
		writeError(w, http.StatusServiceUnavailable, errors.New("session limit reached"))
		return
	}
	id := uuid.NewString()
	s.sessions[id] = &session{eng: engine.New(s.Library, entropy.NewSource(seed))}
	s.mu.Unlock()

	slog.Info("session created", "session", id, "seeded", req.Seed != nil)
	writeJSON(w, http.StatusCreated, map[string]string{"session_id": id})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("unknown session"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// withSession resolves the session path segment and serializes the handler
// against the session's engine.
func (s *Server) withSession(fn func(http.ResponseWriter, *http.Request, *engine.Engine)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		s.mu.Lock()
		sess, ok := s.sessions[id]
		s.mu.Unlock()
		if !ok {
			writeError(w, http.StatusNotFound, errors.New("unknown session"))
			return
		}
		sess.mu.Lock()
		defer sess.mu.Unlock()
		fn(w, r, sess.eng)
	}
}

// stateView is the read model handed back after every state query.
type stateView struct {
	Player       *player.Player         `json:"player,omitempty"`
	MarketIndex  int                    `json:"market_index"`
	Market       content.MarketSnapshot `json:"market"`
	ActiveCrisis *content.CrisisEvent   `json:"active_crisis,omitempty"`
}

func viewOf(eng *engine.Engine) stateView {
	return stateView{
		Player:       eng.Player(),
		MarketIndex:  eng.MarketIndex(),
		Market:       eng.MarketSnapshot(),
		ActiveCrisis: eng.ActiveCrisis(),
	}
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request, eng *engine.Engine) {
	writeJSON(w, http.StatusOK, viewOf(eng))
}

type createPlayerRequest struct {
	Codename   string `json:"codename"`
	Background string `json:"background"`
}

func (s *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request, eng *engine.Engine) {
	var req createPlayerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if _, err := eng.CreatePlayer(req.Codename, req.Background); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, viewOf(eng))
}

func (s *Server) handleListTraining(w http.ResponseWriter, r *http.Request, eng *engine.Engine) {
	writeJSON(w, http.StatusOK, eng.ListTraining())
}

type runTrainingRequest struct {
	ModuleID string `json:"module_id"`
}

// actionResult is the response shape for mutating actions.
type actionResult struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	State   stateView `json:"state"`
}

func (s *Server) handleRunTraining(w http.ResponseWriter, r *http.Request, eng *engine.Engine) {
	var req runTrainingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	success, msg, err := eng.RunTraining(req.ModuleID)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, actionResult{Success: success, Message: msg, State: viewOf(eng)})
}

func (s *Server) handleListContracts(w http.ResponseWriter, r *http.Request, eng *engine.Engine) {
	legality := r.URL.Query().Get("legality")
	writeJSON(w, http.StatusOK, eng.ListContracts(legality))
}

type startContractRequest struct {
	ContractID string `json:"contract_id"`
}

func (s *Server) handleStartContract(w http.ResponseWriter, r *http.Request, eng *engine.Engine) {
	var req startContractRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	success, msg, err := eng.StartContract(req.ContractID)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, actionResult{Success: success, Message: msg, State: viewOf(eng)})
}

func (s *Server) handleListGear(w http.ResponseWriter, r *http.Request, eng *engine.Engine) {
	writeJSON(w, http.StatusOK, eng.ListGear())
}

type purchaseGearRequest struct {
	ItemID string `json:"item_id"`
}

func (s *Server) handlePurchaseGear(w http.ResponseWriter, r *http.Request, eng *engine.Engine) {
	var req purchaseGearRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	msg, err := eng.PurchaseGear(req.ItemID)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, actionResult{Success: true, Message: msg, State: viewOf(eng)})
}

func (s *Server) handleAdvanceMarket(w http.ResponseWriter, r *http.Request, eng *engine.Engine) {
	snapshot := eng.AdvanceMarket()
	writeJSON(w, http.StatusOK, map[string]any{
		"market":       snapshot,
		"market_index": eng.MarketIndex(),
		"state":        viewOf(eng),
	})
}

func (s *Server) handleActiveCrisis(w http.ResponseWriter, r *http.Request, eng *engine.Engine) {
	crisis := eng.ActiveCrisis()
	if crisis == nil {
		writeJSON(w, http.StatusOK, map[string]any{"active": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"active": true, "crisis": crisis})
}

type resolveCrisisRequest struct {
	Option int `json:"option"`
}

func (s *Server) handleResolveCrisis(w http.ResponseWriter, r *http.Request, eng *engine.Engine) {
	var req resolveCrisisRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	success, msg, err := eng.ResolveCrisis(req.Option)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, actionResult{Success: success, Message: msg, State: viewOf(eng)})
}

type slotRequest struct {
	Slot string `json:"slot"`
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request, eng *engine.Engine) {
	if s.Store == nil {
		writeError(w, http.StatusNotImplemented, errors.New("saves disabled"))
		return
	}
	var req slotRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Slot == "" {
		writeError(w, http.StatusBadRequest, errors.New("slot is required"))
		return
	}
	doc, err := eng.ExportState()
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if err := s.Store.Save(req.Slot, doc); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"slot": req.Slot})
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request, eng *engine.Engine) {
	if s.Store == nil {
		writeError(w, http.StatusNotImplemented, errors.New("saves disabled"))
		return
	}
	var req slotRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	doc, err := s.Store.Load(req.Slot)
	if err != nil {
		if errors.Is(err, persistence.ErrSlotNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err := eng.ImportState(doc); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(eng))
}

func (s *Server) handleListSaves(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		writeError(w, http.StatusNotImplemented, errors.New("saves disabled"))
		return
	}
	slots, err := s.Store.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, slots)
}

func decodeBody(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// writeEngineError maps the engine's categorical failures onto HTTP statuses.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, engine.ErrNoPlayer), errors.Is(err, engine.ErrNoCrisis):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, engine.ErrInsufficientFunds), errors.Is(err, engine.ErrInsufficientSkill):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, engine.ErrInvalidSelection), errors.Is(err, engine.ErrCorruptSave):
		writeError(w, http.StatusBadRequest, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}
