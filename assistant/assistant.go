package assistant

import (
	"context"
	"strings"
	"sync"

	"github.com/AlexZinkM/impact-vault/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	aiOnLabel  = "🤖 AI Replies: ON"
	aiOffLabel = "💬 Scripted Replies"

	// maxHistory caps how many past messages of a session are sent upstream
	maxHistory = 10
	// defaultMaxSessions caps how many conversations are held at once
	defaultMaxSessions = 1000
)

// Completer answers a conversation with a remote model
type Completer interface {
	Complete(ctx context.Context, messages []model.ChatMessage) (string, error)
}

// InputError is returned for messages the assistant will not process
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// Assistant answers chat messages from the scripted table or, in AI mode,
// from a remote completion endpoint.
type Assistant struct {
	completer Completer
	log       *zap.Logger

	mu          sync.Mutex
	ai          bool
	sessions    map[string]*chatSession
	maxSessions int
	clock       uint64
}

type chatSession struct {
	history  []model.ChatMessage
	lastUsed uint64
}

// New creates an assistant. completer may be nil, in which case AI mode
// falls back to scripted replies.
func New(completer Completer, log *zap.Logger) *Assistant {
	if log == nil {
		log = zap.NewNop()
	}
	return &Assistant{
		completer:   completer,
		log:         log,
		sessions:    make(map[string]*chatSession),
		maxSessions: defaultMaxSessions,
	}
}

// AILabel is the toggle text for an AI flag value
func AILabel(ai bool) string {
	if ai {
		return aiOnLabel
	}
	return aiOffLabel
}

// AI reports whether replies come from the remote model
func (a *Assistant) AI() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ai
}

// ToggleAI flips AI mode and returns the new value
func (a *Assistant) ToggleAI() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ai = !a.ai
	if a.ai && a.completer == nil {
		a.log.Warn("AI replies enabled but no completion endpoint configured; answering from script")
	}
	return a.ai
}

// Reply answers message within sessionID. An empty sessionID starts a new
// session; the session id used is returned with the reply.
func (a *Assistant) Reply(ctx context.Context, sessionID, message string) (*model.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, &InputError{Message: "Type a message"}
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	a.mu.Lock()
	ai := a.ai && a.completer != nil
	a.mu.Unlock()

	if !ai {
		reply := ScriptedReply(message)
		a.remember(sessionID, message, reply)
		return &model.ChatResponse{SessionID: sessionID, Reply: reply}, nil
	}

	reply, err := a.completer.Complete(ctx, a.conversation(sessionID, message))
	if err != nil {
		a.log.Error("chat completion failed", zap.String("session", sessionID), zap.Error(err))
		return &model.ChatResponse{SessionID: sessionID, Reply: unavailableReply, AI: true}, nil
	}

	reply = strings.TrimSpace(reply)
	a.remember(sessionID, message, reply)
	return &model.ChatResponse{SessionID: sessionID, Reply: reply, AI: true}, nil
}

// ScriptedReply looks message up in the keyword table
func ScriptedReply(message string) string {
	lower := strings.ToLower(message)
	for _, r := range scriptedReplies {
		if strings.Contains(lower, r.keyword) {
			return r.reply
		}
	}
	return defaultReply
}

// conversation builds the upstream request: system prompt, recent history, new message.
func (a *Assistant) conversation(sessionID, message string) []model.ChatMessage {
	a.mu.Lock()
	var history []model.ChatMessage
	if sess, ok := a.sessions[sessionID]; ok {
		history = sess.history
	}
	a.mu.Unlock()

	messages := make([]model.ChatMessage, 0, len(history)+2)
	messages = append(messages, model.ChatMessage{Role: model.ChatRoleSystem, Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, model.ChatMessage{Role: model.ChatRoleUser, Content: message})
	return messages
}

func (a *Assistant) remember(sessionID, message, reply string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	sess, ok := a.sessions[sessionID]
	if !ok {
		if len(a.sessions) >= a.maxSessions {
			a.evictOldest()
		}
		sess = &chatSession{}
		a.sessions[sessionID] = sess
	}
	a.clock++
	sess.lastUsed = a.clock

	history := append(sess.history,
		model.ChatMessage{Role: model.ChatRoleUser, Content: message},
		model.ChatMessage{Role: model.ChatRoleAssistant, Content: reply},
	)
	if len(history) > maxHistory {
		history = append([]model.ChatMessage(nil), history[len(history)-maxHistory:]...)
	}
	sess.history = history
}

// evictOldest drops the least recently used session. Caller holds a.mu.
func (a *Assistant) evictOldest() {
	var oldestID string
	var oldest uint64
	for id, sess := range a.sessions {
		if oldestID == "" || sess.lastUsed < oldest {
			oldestID, oldest = id, sess.lastUsed
		}
	}
	delete(a.sessions, oldestID)
}

// Forget drops a session's history
func (a *Assistant) Forget(sessionID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.sessions, sessionID)
}
