package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"kursbot/commontypes"
	"kursbot/modules"
)

type stubModule struct {
	replies []commontypes.Reply
}

func (s *stubModule) Name() string { return "stub" }

func (s *stubModule) HandleMessage(ctx context.Context, msg commontypes.Message) ([]commontypes.Reply, error) {
	return s.replies, nil
}

func TestHandleMessage(t *testing.T) {
	mod := &stubModule{replies: []commontypes.Reply{{Kind: commontypes.ReplyConversion, Text: "92 EUR"}}}
	handler := handleMessage([]modules.Module{mod})

	req := httptest.NewRequest(http.MethodPost, "/message", strings.NewReader(`{"chat_id":1,"user_id":1,"text":"100 USD"}`))
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "92 EUR")
}

func TestHandleMessageBadBody(t *testing.T) {
	handler := handleMessage(nil)

	req := httptest.NewRequest(http.MethodPost, "/message", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMessageNoReplies(t *testing.T) {
	handler := handleMessage([]modules.Module{&stubModule{}})

	req := httptest.NewRequest(http.MethodPost, "/message", strings.NewReader(`{"chat_id":1,"text":"hi"}`))
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]\n", rec.Body.String())
}
