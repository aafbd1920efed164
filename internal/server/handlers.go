package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pdavydov/leaselint/internal/model"
	"github.com/pdavydov/leaselint/internal/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleJurisdictions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"jurisdictions": s.registry.Codes(),
		"default":       s.defaultJur,
	})
}

type assessContractRequest struct {
	Jurisdiction string         `json:"jurisdiction"`
	Clauses      []model.Clause `json:"clauses"`
}

type assessContractResponse struct {
	AnalysisID string                `json:"analysis_id,omitempty"`
	Report     *model.ContractReport `json:"report"`
}

func (s *Server) handleAssessContract(w http.ResponseWriter, r *http.Request) {
	var req assessContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	jurisdiction := req.Jurisdiction
	if jurisdiction == "" {
		jurisdiction = s.defaultJur
	}

	report := s.aggregator.Evaluate(r.Context(), req.Clauses, jurisdiction)

	resp := assessContractResponse{Report: &report}
	if s.store != nil {
		if analysis, err := s.store.Save(r.Context(), &report); err == nil {
			resp.AnalysisID = analysis.ID
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

type assessClauseRequest struct {
	Jurisdiction string       `json:"jurisdiction"`
	Clause       model.Clause `json:"clause"`
}

func (s *Server) handleAssessClause(w http.ResponseWriter, r *http.Request) {
	var req assessClauseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	jurisdiction := req.Jurisdiction
	if jurisdiction == "" {
		jurisdiction = s.defaultJur
	}

	result := s.assessor.Assess(r.Context(), &req.Clause, s.registry.Lookup(jurisdiction), jurisdiction)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"clause": req.Clause,
		"result": result,
	})
}

type extractRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	clauses := s.extractor.Extract(req.Text)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"clauses": clauses,
		"count":   len(clauses),
	})
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "persistence not configured")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	entries, err := s.store.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []store.ListEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"analyses": entries})
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "persistence not configured")
		return
	}

	id := mux.Vars(r)["id"]
	analysis, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "analysis not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "persistence not configured")
		return
	}

	id := mux.Vars(r)["id"]
	if err := s.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "analysis not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type chatRequest struct {
	Prompt string `json:"prompt"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if s.consultant == nil || !s.consultant.Available() {
		writeError(w, http.StatusServiceUnavailable, "no oracle provider configured")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	reply, err := s.consultant.Query(r.Context(), req.Prompt)
	if err != nil {
		writeError(w, http.StatusBadGateway, "oracle query failed: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
