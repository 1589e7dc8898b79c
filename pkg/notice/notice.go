// Package notice keeps a single transient user-facing message that
// auto-hides after a fixed delay, the way a notification banner does.
package notice

import (
	"sync"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Message struct {
	Text  string
	Level Level
}

// Center holds at most one live message. A new message replaces the
// current one and restarts the hide timer.
type Center struct {
	mu        sync.Mutex
	hideAfter time.Duration
	timer     *time.Timer
	current   *Message
}

func New(hideAfter time.Duration) *Center {
	return &Center{hideAfter: hideAfter}
}

func (c *Center) Success(msg string) {
	c.show(Message{Text: msg, Level: LevelSuccess})
}

func (c *Center) Error(msg string) {
	c.show(Message{Text: msg, Level: LevelError})
}

// Current returns the live message, or ok=false after it has hidden.
func (c *Center) Current() (Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return Message{}, false
	}
	return *c.current, true
}

// Hide drops the live message before the timer fires.
func (c *Center) Hide() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hide()
}

func (c *Center) show(m Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.hide()
	c.current = &m
	c.timer = time.AfterFunc(c.hideAfter, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// A newer message may own the slot already.
		if c.current != nil && *c.current == m {
			c.current = nil
		}
	})
}

func (c *Center) hide() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.current = nil
}
