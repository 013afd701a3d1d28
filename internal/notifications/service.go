// Package notifications delivers job lifecycle notifications through
// ntfy. When no topic is configured every call is a no-op.
package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"aurora/internal/config"
)

const userAgent = "Aurora/0.1.0"

// Service defines the notification surface exposed to the pipeline.
type Service interface {
	NotifyJobCompleted(ctx context.Context, sourcePath, destination string) error
	NotifyJobFailed(ctx context.Context, sourcePath string, cause error) error
	TestNotification(ctx context.Context) error
}

// NewService builds a notification service backed by ntfy when
// configured, or a noop implementation otherwise.
func NewService(cfg *config.Config) Service {
	topic := strings.TrimSpace(cfg.Notifications.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ntfyService{
		endpoint: topic,
		client:   &http.Client{Timeout: timeout},
	}
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint string
	client   *http.Client
}

func (n *ntfyService) NotifyJobCompleted(ctx context.Context, sourcePath, destination string) error {
	message := fmt.Sprintf("Transcript ready: %s", filepath.Base(sourcePath))
	if destination = strings.TrimSpace(destination); destination != "" {
		message = fmt.Sprintf("%s\nSaved to: %s", message, destination)
	}
	data := payload{
		title:   "Aurora - Transcription Complete",
		message: message,
		tags:    []string{"aurora", "transcribe", "completed"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyJobFailed(ctx context.Context, sourcePath string, cause error) error {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Transcription failed: %s", filepath.Base(sourcePath))
	if cause != nil {
		builder.WriteString("\n")
		builder.WriteString(strings.TrimSpace(cause.Error()))
	}
	data := payload{
		title:    "Aurora - Transcription Failed",
		message:  builder.String(),
		tags:     []string{"aurora", "transcribe", "failed"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) TestNotification(ctx context.Context) error {
	data := payload{
		title:    "Aurora - Test",
		message:  "Notification system test",
		tags:     []string{"aurora", "test"},
		priority: "low",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" && data.priority != "default" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) NotifyJobCompleted(context.Context, string, string) error { return nil }
func (noopService) NotifyJobFailed(context.Context, string, error) error     { return nil }
func (noopService) TestNotification(context.Context) error                   { return nil }
