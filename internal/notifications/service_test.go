package notifications_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"aurora/internal/config"
	"aurora/internal/notifications"
)

func TestNewServiceReturnsNoopWhenTopicMissing(t *testing.T) {
	cfg := config.Default()
	cfg.Notifications.NtfyTopic = ""
	svc := notifications.NewService(&cfg)
	if err := svc.NotifyJobCompleted(context.Background(), "/media/talk.mp4", "/out/talk.srt"); err != nil {
		t.Fatalf("expected noop notifier to return nil, got %v", err)
	}
}

func TestNtfyServiceSendsHeadersAndBody(t *testing.T) {
	type captured struct {
		title    string
		tags     string
		priority string
		body     string
	}
	var got captured

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = captured{
			title:    r.Header.Get("Title"),
			tags:     r.Header.Get("Tags"),
			priority: r.Header.Get("Priority"),
			body:     string(body),
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.Notifications.NtfyTopic = server.URL
	svc := notifications.NewService(&cfg)

	if err := svc.NotifyJobFailed(context.Background(), "/media/talk.mp4", errors.New("whisperx: exit status 1")); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if got.title != "Aurora - Transcription Failed" {
		t.Errorf("title %q", got.title)
	}
	if got.tags != "aurora,transcribe,failed" {
		t.Errorf("tags %q", got.tags)
	}
	if got.priority != "high" {
		t.Errorf("priority %q", got.priority)
	}
	if got.body == "" {
		t.Error("expected non-empty body")
	}
}

func TestNtfyServiceSurfacesServerErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "topic quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.Notifications.NtfyTopic = server.URL
	svc := notifications.NewService(&cfg)

	if err := svc.TestNotification(context.Background()); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}
