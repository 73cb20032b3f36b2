package mem

import (
	"context"
	"sync"
	"time"
)

// ChatTurn is one message in a user's running transcript.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ExpenseEntry is one dated, categorized expense in the session ledger.
type ExpenseEntry struct {
	Date     time.Time `json:"date"`
	Category string    `json:"category"`
	Amount   float64   `json:"amount"`
}

// ChatSender is an ongoing model conversation bound to this session.
type ChatSender interface {
	Send(ctx context.Context, text string) (string, error)
}

// UserSession holds everything scoped to one authenticated user between
// requests: the expense ledger and the live chat session. Nothing here is
// durable; a full reset happens on logout.
type UserSession struct {
	mu sync.Mutex

	expenses []ExpenseEntry
	limit    float64

	chat       ChatSender
	transcript []ChatTurn
}

func (s *UserSession) AddExpense(e ExpenseEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, e)
}

func (s *UserSession) SetLimit(limit float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limit = limit
}

// Expenses returns the entries in insertion order along with the limit.
func (s *UserSession) Expenses() ([]ExpenseEntry, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ExpenseEntry, len(s.expenses))
	copy(out, s.expenses)
	return out, s.limit
}

func (s *UserSession) ClearExpenses() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = nil
	s.limit = 0
}

// Chat returns the live chat session, or nil if the session is uninitialized.
func (s *UserSession) Chat() ChatSender {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chat
}

// PrimeChat installs the chat session. The first caller wins; exactly one
// live session exists per user until a full reset.
func (s *UserSession) PrimeChat(chat ChatSender) ChatSender {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chat == nil {
		s.chat = chat
	}
	return s.chat
}

func (s *UserSession) AppendTurns(turns ...ChatTurn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, turns...)
}

func (s *UserSession) Transcript() []ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ChatTurn, len(s.transcript))
	copy(out, s.transcript)
	return out
}

func (s *UserSession) ResetChat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = nil
	s.transcript = nil
}

type UserSessionStore interface {
	// Get returns the session for email, creating an empty one if absent.
	Get(email string) *UserSession

	// Clear removes the session entirely (logout / explicit reset).
	Clear(email string)
}

type UserSessions struct {
	mu   sync.Mutex
	data map[string]*UserSession
}

func NewUserSessions() *UserSessions {
	return &UserSessions{
		data: make(map[string]*UserSession),
	}
}

func (s *UserSessions) Get(email string) *UserSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.data[email]
	if !ok {
		sess = &UserSession{}
		s.data[email] = sess
	}
	return sess
}

func (s *UserSessions) Clear(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, email)
}
