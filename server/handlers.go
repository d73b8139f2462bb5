package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/birmacher/content-gen/config"
	"github.com/birmacher/content-gen/generate"
	"github.com/birmacher/content-gen/store"
	"github.com/go-chi/chi/v5"
)

type postRequest struct {
	Topic string `json:"topic"`
	Save  bool   `json:"save"`
}

type threadRequest struct {
	Topic  string `json:"topic"`
	Length int    `json:"length"`
	Save   bool   `json:"save"`
}

type bioRequest struct {
	Intro string `json:"intro"`
	Niche string `json:"niche"`
	Role  string `json:"role"`
	Save  bool   `json:"save"`
}

type textResponse struct {
	Content string `json:"content"`
	SavedID string `json:"saved_id,omitempty"`
}

type threadResponse struct {
	Items   []string `json:"items"`
	SavedID string   `json:"saved_id,omitempty"`
}

type preferencesRequest struct {
	Tone  string `json:"tone"`
	Niche string `json:"niche"`
}

func userID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(UserHeader))
}

// requireUser writes 401 and returns false when the user header is missing
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := userID(r)
	if id == "" {
		writeError(w, http.StatusUnauthorized, UserHeader+" header is required")
		return "", false
	}
	return id, true
}

func (s *Server) handleGeneratePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	user := userID(r)
	if req.Save && user == "" {
		writeError(w, http.StatusUnauthorized, UserHeader+" header is required to save")
		return
	}

	post, err := s.generator.GenerateSinglePost(r.Context(), req.Topic)
	if err != nil {
		writeErr(w, err)
		return
	}

	resp := textResponse{Content: post}
	if req.Save && post != "" {
		record := store.NewPostRecord(user, strings.TrimSpace(req.Topic), post)
		if err := s.store.SaveContent(record); err != nil {
			writeErr(w, err)
			return
		}
		resp.SavedID = record.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGenerateThread(w http.ResponseWriter, r *http.Request) {
	var req threadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	user := userID(r)
	if req.Save && user == "" {
		writeError(w, http.StatusUnauthorized, UserHeader+" header is required to save")
		return
	}

	length := req.Length
	if length == 0 {
		length = config.DefaultThreadLength
	}
	length = generate.ClampThreadLength(length)

	items, err := s.generator.GenerateThread(r.Context(), req.Topic, length)
	if err != nil {
		writeErr(w, err)
		return
	}

	resp := threadResponse{Items: items}
	if req.Save && len(items) > 0 {
		record, err := store.NewThreadRecord(user, strings.TrimSpace(req.Topic), items)
		if err == nil {
			err = s.store.SaveContent(record)
		}
		if err != nil {
			writeErr(w, err)
			return
		}
		resp.SavedID = record.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGenerateBio(w http.ResponseWriter, r *http.Request) {
	var req bioRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	user := userID(r)
	if req.Save && user == "" {
		writeError(w, http.StatusUnauthorized, UserHeader+" header is required to save")
		return
	}

	bio, err := s.generator.GenerateBio(r.Context(), req.Intro, req.Niche, req.Role)
	if err != nil {
		writeErr(w, err)
		return
	}

	resp := textResponse{Content: bio}
	if req.Save && bio != "" {
		prompt := store.BioPrompt{
			Intro:      strings.TrimSpace(req.Intro),
			Niche:      strings.TrimSpace(req.Niche),
			WhatTheyDo: strings.TrimSpace(req.Role),
		}
		record, err := store.NewBioRecord(user, prompt, bio)
		if err == nil {
			err = s.store.SaveContent(record)
		}
		if err != nil {
			writeErr(w, err)
			return
		}
		resp.SavedID = record.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListSaved(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	list, err := s.store.ListContent(user)
	if err != nil {
		writeErr(w, err)
		return
	}
	if list == nil {
		list = []store.SavedContent{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleDeleteSaved(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	record, err := s.store.GetContent(id)
	if err != nil {
		writeErr(w, err)
		return
	}
	// other users' records are reported as missing
	if record.UserID != user {
		writeErr(w, store.ErrNotFound)
		return
	}

	if err := s.store.DeleteContent(id); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	prefs, err := s.store.GetPreferences(user)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

func (s *Server) handlePutPreferences(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req preferencesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	prefs := store.Preferences{
		UserID:    user,
		Tone:      strings.TrimSpace(req.Tone),
		Niche:     strings.TrimSpace(req.Niche),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.store.SavePreferences(prefs); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}
