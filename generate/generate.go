// Package generate turns user-entered fields into prompts, sends them to a
// completion provider and normalizes the result.
package generate

import (
	"context"
	"strings"

	"github.com/birmacher/content-gen/llm"
	"github.com/birmacher/content-gen/logger"
	"github.com/birmacher/content-gen/prompt"
)

// Kind identifies the type of generated content
type Kind string

const (
	KindPost   Kind = "tweet"
	KindThread Kind = "thread"
	KindBio    Kind = "bio"
)

// Temperature is shared by every content kind
const Temperature float32 = 0.7

// Output ceilings per content kind. The thread ceiling does not scale with length.
const (
	PostMaxTokens   = 280
	ThreadMaxTokens = 1000
	BioMaxTokens    = 160
)

// Client generates content through an LLM. It holds no mutable state and
// may be shared between goroutines.
type Client struct {
	llm llm.LLM
}

func NewClient(model llm.LLM) *Client {
	return &Client{llm: model}
}

// GenerateSinglePost returns a trimmed post about topic, or "" when the
// provider returned no text.
func (c *Client) GenerateSinglePost(ctx context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", invalidField("topic")
	}

	content, err := c.complete(ctx, KindPost, llm.Request{
		SystemPrompt: prompt.SinglePostSystemPrompt(),
		UserPrompt:   prompt.SinglePostUserPrompt(topic),
		Temperature:  Temperature,
		MaxTokens:    PostMaxTokens,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

// GenerateThread asks for exactly length posts about topic. length is not
// validated here; callers clamp it with ClampThreadLength. The number of
// returned items may differ from length.
func (c *Client) GenerateThread(ctx context.Context, topic string, length int) ([]string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, invalidField("topic")
	}

	content, err := c.complete(ctx, KindThread, llm.Request{
		SystemPrompt: prompt.ThreadSystemPrompt(length),
		UserPrompt:   prompt.ThreadUserPrompt(topic),
		Temperature:  Temperature,
		MaxTokens:    ThreadMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	items := ParseThread(content)
	if len(items) != length {
		logger.Warnw("Thread length differs from request", "requested", length, "received", len(items))
	}
	return items, nil
}

// GenerateBio returns a trimmed profile bio, or "" when the provider
// returned no text.
func (c *Client) GenerateBio(ctx context.Context, intro, niche, role string) (string, error) {
	intro = strings.TrimSpace(intro)
	niche = strings.TrimSpace(niche)
	role = strings.TrimSpace(role)
	switch {
	case intro == "":
		return "", invalidField("intro")
	case niche == "":
		return "", invalidField("niche")
	case role == "":
		return "", invalidField("role")
	}

	content, err := c.complete(ctx, KindBio, llm.Request{
		SystemPrompt: prompt.BioSystemPrompt(),
		UserPrompt:   prompt.BioUserPrompt(intro, niche, role),
		Temperature:  Temperature,
		MaxTokens:    BioMaxTokens,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

func (c *Client) complete(ctx context.Context, kind Kind, req llm.Request) (string, error) {
	logger.Debugw("Generating content", "kind", kind, "max_tokens", req.MaxTokens)

	resp, err := c.llm.Complete(ctx, req)
	if err != nil {
		logger.Errorw("Completion call failed", "kind", kind, "error", err)
		return "", &RemoteCallError{Kind: kind, Err: err}
	}
	if resp.Content == "" {
		logger.Warnw("Completion returned no content", "kind", kind)
	}
	return resp.Content, nil
}
