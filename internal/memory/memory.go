// Package memory keeps a bounded rolling conversation history per user.
// Every sequence starts with the user's current system message; the tail
// holds the most recent chat turns.
package memory

import "sync"

// Role values used in conversation messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversation entry.
type Message struct {
	Role    string
	Content string
}

// Memory stores per-user conversations. Index 0 of every sequence is the
// user's current system message (default or user-overridden); the tail is
// capped at two messages per retained turn. Safe for concurrent use.
type Memory struct {
	mu            sync.Mutex
	defaultSystem string
	turns         int
	conversations map[string][]Message
}

// New creates a Memory retaining the last turns chat turns per user.
func New(systemMessage string, turns int) *Memory {
	if turns < 1 {
		turns = 1
	}
	return &Memory{
		defaultSystem: systemMessage,
		turns:         turns,
		conversations: make(map[string][]Message),
	}
}

// Append adds a message to the user's sequence, creating it lazily, and
// drops the oldest tail entries once the bound is exceeded.
func (m *Memory) Append(userID, role, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seq := m.initLocked(userID)
	seq = append(seq, Message{Role: role, Content: content})
	if limit := 2 * m.turns; len(seq)-1 > limit {
		drop := len(seq) - 1 - limit
		seq = append(seq[:1], seq[1+drop:]...)
	}
	m.conversations[userID] = seq
}

// Get returns a copy of the user's full sequence, system message included.
// Unknown users get a sequence holding only the default system message.
func (m *Memory) Get(userID string) []Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	seq, ok := m.conversations[userID]
	if !ok {
		return []Message{{Role: RoleSystem, Content: m.defaultSystem}}
	}
	out := make([]Message, len(seq))
	copy(out, seq)
	return out
}

// Remove deletes the user's sequence. Removing an unknown user is a no-op.
func (m *Memory) Remove(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conversations, userID)
}

// ChangeSystemMessage replaces the user's system message without touching
// the conversation tail.
func (m *Memory) ChangeSystemMessage(userID, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seq := m.initLocked(userID)
	seq[0] = Message{Role: RoleSystem, Content: text}
}

func (m *Memory) initLocked(userID string) []Message {
	seq, ok := m.conversations[userID]
	if !ok {
		seq = []Message{{Role: RoleSystem, Content: m.defaultSystem}}
		m.conversations[userID] = seq
	}
	return seq
}
