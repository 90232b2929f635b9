package sms

import (
	"context"
	"sync"
)

// SentMessage records one Send call on the RecordingSender.
type SentMessage struct {
	Destination string
	Parts       []string
}

// RecordingSender is an in-memory Sender for tests. Individual calls can be
// made to fail by number (1-based) via FailOn.
type RecordingSender struct {
	mu         sync.Mutex
	Authorized bool
	failOn     map[int]error
	calls      int
	messages   []SentMessage
}

func NewRecordingSender() *RecordingSender {
	return &RecordingSender{Authorized: true, failOn: map[int]error{}}
}

func (s *RecordingSender) IsAuthorized() bool {
	return s.Authorized
}

// FailOn makes the n-th Send call return err.
func (s *RecordingSender) FailOn(n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOn[n] = err
}

func (s *RecordingSender) Send(_ context.Context, destination string, parts []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if err, ok := s.failOn[s.calls]; ok {
		return err
	}

	copied := make([]string, len(parts))
	copy(copied, parts)
	s.messages = append(s.messages, SentMessage{Destination: destination, Parts: copied})
	return nil
}

// Messages returns a copy of everything successfully sent so far.
func (s *RecordingSender) Messages() []SentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SentMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Calls reports the number of Send attempts, including failed ones.
func (s *RecordingSender) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
