package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/truthlens/truthlens-client/src/factcheck"
)

const (
	RoleUser   = "user"
	RoleSystem = "system"

	// BackendErrorText is the fixed warning appended when a submission fails.
	BackendErrorText = "Backend error. Try again later."
)

// Message is one entry of the conversation log.
type Message struct {
	ID   string    `json:"id"`
	Role string    `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// Session holds all per-process client state: the append-only conversation
// log, the submission sequence, and the single most-recent-result slot used
// by report export. Nothing survives a restart.
type Session struct {
	mu        sync.Mutex
	messages  []Message
	seq       uint64
	resultSeq uint64
	result    *factcheck.Result
}

func New() *Session {
	return &Session{}
}

// Append adds one message to the conversation log and returns it.
func (s *Session) Append(role, text string) Message {
	msg := Message{
		ID:   uuid.NewString(),
		Role: role,
		Text: text,
		At:   time.Now().UTC(),
	}
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
	return msg
}

// Messages returns a copy of the conversation log in append order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// NextSubmission issues a monotonically increasing id for a new submission.
func (s *Session) NextSubmission() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// StoreResult installs a completed result in the export slot. Only the
// response to the latest issued submission wins the slot; a response overtaken
// by a newer submission keeps its appended card but never overwrites the
// shared panels or the export binding.
func (s *Session) StoreResult(seq uint64, r *factcheck.Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq || seq <= s.resultSeq {
		return false
	}
	s.resultSeq = seq
	s.result = r
	return true
}

// Result returns the currently exported result, if any submission completed.
func (s *Session) Result() (*factcheck.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.result != nil
}
