package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/birmacher/content-gen/generate"
	"github.com/birmacher/content-gen/llm"
	"github.com/birmacher/content-gen/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLLM struct {
	content string
	err     error
	calls   int
	last    llm.Request
}

func (s *stubLLM) Complete(ctx context.Context, req llm.Request) (llm.Response, error) {
	s.calls++
	s.last = req
	if s.err != nil {
		return llm.Response{}, s.err
	}
	return llm.Response{Content: s.content}, nil
}

func newTestServer(model *stubLLM) (*Server, *store.InMemoryStore) {
	st := store.NewInMemoryStore()
	return New(0, generate.NewClient(model), st), st
}

func do(t *testing.T, s *Server, method, path, user, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(UserHeader, user)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(&stubLLM{})
	rec := do(t, s, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGeneratePost_SavesWhenRequested(t *testing.T) {
	model := &stubLLM{content: "  Ship it.  "}
	s, st := newTestServer(model)

	rec := do(t, s, http.MethodPost, "/api/v1/generate/post", "alice", `{"topic":" shipping ","save":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp textResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Ship it.", resp.Content)
	require.NotEmpty(t, resp.SavedID)

	saved, err := st.GetContent(resp.SavedID)
	require.NoError(t, err)
	assert.Equal(t, "alice", saved.UserID)
	assert.Equal(t, store.ContentTypePost, saved.ContentType)
	assert.Equal(t, "shipping", saved.OriginalPrompt)
}

func TestGeneratePost_SaveRequiresUser(t *testing.T) {
	model := &stubLLM{content: "x"}
	s, _ := newTestServer(model)

	rec := do(t, s, http.MethodPost, "/api/v1/generate/post", "", `{"topic":"t","save":true}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, model.calls)
}

func TestGenerateThread_ClampsLength(t *testing.T) {
	model := &stubLLM{content: "1. One\n2. Two"}
	s, _ := newTestServer(model)

	rec := do(t, s, http.MethodPost, "/api/v1/generate/thread", "", `{"topic":"go","length":42}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, model.last.SystemPrompt, "exactly 10 posts")

	var resp threadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"One", "Two"}, resp.Items)

	do(t, s, http.MethodPost, "/api/v1/generate/thread", "", `{"topic":"go"}`)
	assert.Contains(t, model.last.SystemPrompt, "exactly 5 posts")
}

func TestGenerateThread_EmptyResultIsEmptyArray(t *testing.T) {
	s, _ := newTestServer(&stubLLM{content: ""})

	rec := do(t, s, http.MethodPost, "/api/v1/generate/thread", "", `{"topic":"go","length":3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[]}`, rec.Body.String())
}

func TestGenerateBio_InvalidInput(t *testing.T) {
	model := &stubLLM{content: "bio"}
	s, _ := newTestServer(model)

	rec := do(t, s, http.MethodPost, "/api/v1/generate/bio", "", `{"intro":"hi","niche":"","role":"dev"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, model.calls)
}

func TestGenerateBio_SavesPromptFields(t *testing.T) {
	s, st := newTestServer(&stubLLM{content: "Founder 🚀"})

	rec := do(t, s, http.MethodPost, "/api/v1/generate/bio", "alice", `{"intro":"I build","niche":"devtools","role":"founder","save":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	list, err := st.ListContent("alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.JSONEq(t, `{"intro":"I build","niche":"devtools","whatTheyDo":"founder"}`, list[0].OriginalPrompt)
}

func TestGenerate_RemoteFailure(t *testing.T) {
	s, st := newTestServer(&stubLLM{err: errors.New("upstream unavailable")})

	rec := do(t, s, http.MethodPost, "/api/v1/generate/post", "alice", `{"topic":"t","save":true}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "upstream unavailable")

	list, err := st.ListContent("alice")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGenerate_BadJSON(t *testing.T) {
	s, _ := newTestServer(&stubLLM{})
	rec := do(t, s, http.MethodPost, "/api/v1/generate/post", "", `{"topic":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSavedContent_ListAndDelete(t *testing.T) {
	s, st := newTestServer(&stubLLM{})

	mine := store.NewPostRecord("alice", "a", "mine")
	theirs := store.NewPostRecord("bob", "b", "theirs")
	require.NoError(t, st.SaveContent(mine))
	require.NoError(t, st.SaveContent(theirs))

	rec := do(t, s, http.MethodGet, "/api/v1/saved", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/v1/saved", "alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []store.SavedContent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)

	rec = do(t, s, http.MethodDelete, "/api/v1/saved/"+theirs.ID, "alice", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodDelete, "/api/v1/saved/"+mine.ID, "alice", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	_, err := st.GetContent(mine.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPreferences(t *testing.T) {
	s, _ := newTestServer(&stubLLM{})

	rec := do(t, s, http.MethodGet, "/api/v1/preferences", "alice", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodPut, "/api/v1/preferences", "alice", `{"tone":" casual ","niche":"tech"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, s, http.MethodGet, "/api/v1/preferences", "alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var prefs store.Preferences
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prefs))
	assert.Equal(t, "casual", prefs.Tone)
	assert.Equal(t, "tech", prefs.Niche)
}
