package generate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/birmacher/content-gen/llm"
)

// fakeLLM records requests and replays a canned response.
type fakeLLM struct {
	content  string
	err      error
	requests []llm.Request
}

func (f *fakeLLM) Complete(ctx context.Context, req llm.Request) (llm.Response, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return llm.Response{}, f.err
	}
	return llm.Response{Content: f.content}, nil
}

func TestGenerateSinglePost_TrimsOutput(t *testing.T) {
	fake := &fakeLLM{content: "\n  Ship small, ship often.  \n"}
	client := NewClient(fake)

	post, err := client.GenerateSinglePost(context.Background(), "  shipping  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post != "Ship small, ship often." {
		t.Errorf("Expected trimmed post, got %q", post)
	}

	if len(fake.requests) != 1 {
		t.Fatalf("Expected 1 request, got %d", len(fake.requests))
	}
	req := fake.requests[0]
	if !strings.HasSuffix(req.UserPrompt, ": shipping") {
		t.Errorf("Expected trimmed topic in user prompt, got %q", req.UserPrompt)
	}
	if req.Temperature != Temperature || req.MaxTokens != PostMaxTokens {
		t.Errorf("Unexpected parameters: temperature %v, max tokens %d", req.Temperature, req.MaxTokens)
	}
}

func TestGenerateThread_ParsesItems(t *testing.T) {
	fake := &fakeLLM{content: "1. Hello\n\n2. World  \n"}
	client := NewClient(fake)

	items, err := client.GenerateThread(context.Background(), "greetings", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[0] != "Hello" || items[1] != "World" {
		t.Errorf("Expected [Hello World], got %q", items)
	}

	req := fake.requests[0]
	if req.MaxTokens != ThreadMaxTokens {
		t.Errorf("Expected max tokens %d, got %d", ThreadMaxTokens, req.MaxTokens)
	}
	if !strings.Contains(req.SystemPrompt, "exactly 2 posts") {
		t.Errorf("Expected requested length in system prompt, got:\n%s", req.SystemPrompt)
	}
}

func TestGenerateThread_LengthMismatchPassesThrough(t *testing.T) {
	fake := &fakeLLM{content: `["one", "two", "three"]`}
	client := NewClient(fake)

	items, err := client.GenerateThread(context.Background(), "counting", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("Expected the 3 returned items to pass through, got %d", len(items))
	}
	if len(fake.requests) != 1 {
		t.Errorf("Expected a single call, got %d", len(fake.requests))
	}
}

func TestGenerateThread_OutOfRangeLengthNotRejected(t *testing.T) {
	fake := &fakeLLM{content: "only"}
	client := NewClient(fake)

	if _, err := client.GenerateThread(context.Background(), "topic", 25); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(fake.requests[0].SystemPrompt, "exactly 25 posts") {
		t.Error("Expected the length to be forwarded unchanged")
	}
}

func TestEmptyContentIsNotAnError(t *testing.T) {
	client := NewClient(&fakeLLM{content: ""})
	ctx := context.Background()

	post, err := client.GenerateSinglePost(ctx, "topic")
	if err != nil || post != "" {
		t.Errorf("Expected empty post and no error, got %q, %v", post, err)
	}

	items, err := client.GenerateThread(ctx, "topic", 3)
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("Expected empty non-nil thread, got %#v", items)
	}

	bio, err := client.GenerateBio(ctx, "intro", "niche", "role")
	if err != nil || bio != "" {
		t.Errorf("Expected empty bio and no error, got %q, %v", bio, err)
	}
}

func TestRemoteFailureRaisesRemoteCallError(t *testing.T) {
	cause := errors.New("connection reset by peer")
	client := NewClient(&fakeLLM{err: cause})
	ctx := context.Background()

	tests := []struct {
		name string
		kind Kind
		call func() (any, error)
	}{
		{"post", KindPost, func() (any, error) { return client.GenerateSinglePost(ctx, "topic") }},
		{"thread", KindThread, func() (any, error) { return client.GenerateThread(ctx, "topic", 4) }},
		{"bio", KindBio, func() (any, error) { return client.GenerateBio(ctx, "a", "b", "c") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.call()

			var remoteErr *RemoteCallError
			if !errors.As(err, &remoteErr) {
				t.Fatalf("Expected RemoteCallError, got %v", err)
			}
			if remoteErr.Kind != tt.kind {
				t.Errorf("Expected kind %s, got %s", tt.kind, remoteErr.Kind)
			}
			if !errors.Is(err, cause) {
				t.Error("Expected the provider error to be wrapped verbatim")
			}

			switch v := out.(type) {
			case string:
				if v != "" {
					t.Errorf("Expected no partial output, got %q", v)
				}
			case []string:
				if v != nil {
					t.Errorf("Expected no partial output, got %q", v)
				}
			}
		})
	}
}

func TestValidationFailureSkipsRemoteCall(t *testing.T) {
	fake := &fakeLLM{content: "unused"}
	client := NewClient(fake)
	ctx := context.Background()

	bioInputs := [][3]string{
		{"", "niche", "role"},
		{"intro", "  ", "role"},
		{"intro", "niche", "\t"},
	}
	for _, in := range bioInputs {
		if _, err := client.GenerateBio(ctx, in[0], in[1], in[2]); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput for %q, got %v", in, err)
		}
	}

	if _, err := client.GenerateSinglePost(ctx, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for blank topic, got %v", err)
	}
	if _, err := client.GenerateThread(ctx, "", 5); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for empty thread topic, got %v", err)
	}

	if len(fake.requests) != 0 {
		t.Errorf("Expected no remote calls, got %d", len(fake.requests))
	}
}

func TestGenerateBio_TrimsFields(t *testing.T) {
	fake := &fakeLLM{content: " Founder building dev tools 🚀 "}
	client := NewClient(fake)

	bio, err := client.GenerateBio(context.Background(), " I build things ", " DevTools ", " Founder ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bio != "Founder building dev tools 🚀" {
		t.Errorf("Expected trimmed bio, got %q", bio)
	}

	req := fake.requests[0]
	if !strings.Contains(req.UserPrompt, "Introduction: I build things\n") {
		t.Errorf("Expected trimmed intro in prompt, got:\n%s", req.UserPrompt)
	}
	if req.MaxTokens != BioMaxTokens {
		t.Errorf("Expected max tokens %d, got %d", BioMaxTokens, req.MaxTokens)
	}
}
