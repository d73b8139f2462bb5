package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Content types stored in SavedContent.ContentType
const (
	ContentTypePost   = "tweet"
	ContentTypeThread = "thread"
	ContentTypeBio    = "bio"
)

// BioPrompt is the original_prompt payload of a saved bio
type BioPrompt struct {
	Intro      string `json:"intro"`
	Niche      string `json:"niche"`
	WhatTheyDo string `json:"whatTheyDo"`
}

func newRecord(userID, contentType, content, originalPrompt string) SavedContent {
	return SavedContent{
		ID:             uuid.NewString(),
		UserID:         userID,
		ContentType:    contentType,
		Content:        content,
		OriginalPrompt: originalPrompt,
		CreatedAt:      time.Now().UTC(),
	}
}

func NewPostRecord(userID, topic, post string) SavedContent {
	return newRecord(userID, ContentTypePost, post, topic)
}

// NewThreadRecord stores the items as a JSON array
func NewThreadRecord(userID, topic string, items []string) (SavedContent, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return SavedContent{}, fmt.Errorf("failed to encode thread: %w", err)
	}
	return newRecord(userID, ContentTypeThread, string(data), topic), nil
}

// NewBioRecord stores the three input fields as the original prompt
func NewBioRecord(userID string, prompt BioPrompt, bio string) (SavedContent, error) {
	data, err := json.Marshal(prompt)
	if err != nil {
		return SavedContent{}, fmt.Errorf("failed to encode bio prompt: %w", err)
	}
	return newRecord(userID, ContentTypeBio, bio, string(data)), nil
}

// ThreadItems decodes the content of a thread record
func (c SavedContent) ThreadItems() ([]string, error) {
	if c.ContentType != ContentTypeThread {
		return nil, fmt.Errorf("record %s is a %s, not a thread", c.ID, c.ContentType)
	}
	var items []string
	if err := json.Unmarshal([]byte(c.Content), &items); err != nil {
		return nil, fmt.Errorf("failed to decode thread %s: %w", c.ID, err)
	}
	return items, nil
}
