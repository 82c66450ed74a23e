// Package session owns all per-session conversation state. A single Table
// holds every Context and Personalization record; callers only ever see
// copies handed out by its accessor methods.
package session

import (
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when a session id is unknown.
var ErrNotFound = errors.New("session not found")

const (
	// DefaultHistoryLimit bounds the retained message history per session.
	DefaultHistoryLimit = 20
	// DefaultFlowLimit bounds the retained intent flow per session.
	DefaultFlowLimit = 10
)

// entitySlotsTracked are the entity slots whose values become interests.
var entitySlotsTracked = []string{"product", "industry"}

// Table is the session store. All access is serialized through its mutex,
// which also preserves the history/flow eviction invariants when turns for
// one session arrive concurrently.
type Table struct {
	mu           sync.Mutex
	sessions     map[string]*Context
	profiles     map[string]*Personalization
	historyLimit int
	flowLimit    int
	now          func() time.Time
}

// NewTable creates a session table with the given bounds. Non-positive
// bounds fall back to the defaults.
func NewTable(historyLimit, flowLimit int) *Table {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	if flowLimit <= 0 {
		flowLimit = DefaultFlowLimit
	}
	return &Table{
		sessions:     make(map[string]*Context),
		profiles:     make(map[string]*Personalization),
		historyLimit: historyLimit,
		flowLimit:    flowLimit,
		now:          time.Now,
	}
}

// Create registers a new session. Creating an existing session id is a
// no-op and returns the existing context.
func (t *Table) Create(sessionID, language string) *Context {
	t.mu.Lock()
	defer t.mu.Unlock()

	if existing, ok := t.sessions[sessionID]; ok {
		return copyContext(existing)
	}

	now := t.now()
	ctx := &Context{
		SessionID: sessionID,
		Language:  language,
		CreatedAt: now,
	}
	t.sessions[sessionID] = ctx
	t.profiles[sessionID] = &Personalization{
		SessionID:         sessionID,
		PreferredLanguage: language,
		UserType:          UserUnknown,
		LastInteraction:   now,
	}
	return copyContext(ctx)
}

// Get returns a copy of the session context.
func (t *Table) Get(sessionID string) (*Context, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ctx, ok := t.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	return copyContext(ctx), nil
}

// Personalization returns a copy of the session profile.
func (t *Table) Personalization(sessionID string) (*Personalization, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.profiles[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	return copyProfile(p), nil
}

// Update appends a message to the session history, evicting the oldest
// entries beyond the bounds. User turns extend the intent flow and feed
// the interest set from the tracked entity slots.
func (t *Table) Update(sessionID string, role Role, text, intent string, entities map[string]string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	ctx, ok := t.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}

	now := t.now()
	msg := Message{
		Role:      role,
		Text:      text,
		Timestamp: now,
		Intent:    intent,
	}
	if len(entities) > 0 {
		msg.Entities = make(map[string]string, len(entities))
		for k, v := range entities {
			msg.Entities[k] = v
		}
	}

	ctx.History = append(ctx.History, msg)
	if len(ctx.History) > t.historyLimit {
		ctx.History = ctx.History[len(ctx.History)-t.historyLimit:]
	}

	if role == RoleUser && intent != "" {
		ctx.Flow = append(ctx.Flow, intent)
		if len(ctx.Flow) > t.flowLimit {
			ctx.Flow = ctx.Flow[len(ctx.Flow)-t.flowLimit:]
		}
	}

	for _, slot := range entitySlotsTracked {
		if v := entities[slot]; v != "" && !containsString(ctx.Interests, v) {
			ctx.Interests = append(ctx.Interests, v)
		}
	}

	p := t.profiles[sessionID]
	p.Interests = append([]string(nil), ctx.Interests...)
	p.ConversationFlow = append([]string(nil), ctx.Flow...)
	p.LastInteraction = now
	if role == RoleUser {
		p.PreviousInteractions++
	}

	return nil
}

// SetUserType records the visitor classification on the session profile.
func (t *Table) SetUserType(sessionID string, ut UserType) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.profiles[sessionID]
	if !ok {
		return ErrNotFound
	}
	p.UserType = ut
	return nil
}

// Clear removes the session and its profile.
func (t *Table) Clear(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.sessions, sessionID)
	delete(t.profiles, sessionID)
}

// Len returns the number of live sessions.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}

func copyContext(c *Context) *Context {
	out := &Context{
		SessionID: c.SessionID,
		Language:  c.Language,
		CreatedAt: c.CreatedAt,
		History:   append([]Message(nil), c.History...),
		Interests: append([]string(nil), c.Interests...),
		Flow:      append([]string(nil), c.Flow...),
	}
	return out
}

func copyProfile(p *Personalization) *Personalization {
	out := *p
	out.Interests = append([]string(nil), p.Interests...)
	out.ConversationFlow = append([]string(nil), p.ConversationFlow...)
	return &out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
