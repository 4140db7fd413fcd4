package chatstream

import (
	"sync"

	"github.com/flexipack-labs/order-portal/models"
)

// Placeholder and apology texts shown in the conversation log.
const (
	ThinkingPlaceholder = "Thinking..."
	ApologyMessage      = "Sorry, I encountered an error. Please try again."
)

// State of one chat exchange.
type State int

const (
	StateIdle State = iota
	StateSent
	StateStreaming
	StateComplete
	StateError
)

// ConversationLog is the append-only message list of one chat window. It
// is owned by a single exchange at a time; the mutex covers readers
// polling Messages while a stream is applied.
type ConversationLog struct {
	mu   sync.Mutex
	msgs []models.ChatMessage
}

func NewConversationLog() *ConversationLog {
	return &ConversationLog{}
}

// Messages returns a snapshot of the log.
func (l *ConversationLog) Messages() []models.ChatMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.ChatMessage, len(l.msgs))
	copy(out, l.msgs)
	return out
}

func (l *ConversationLog) append(m models.ChatMessage) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, m)
	return len(l.msgs) - 1
}

func (l *ConversationLog) replace(i int, m models.ChatMessage) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs[i] = m
}

// Exchange applies the events of one chat request to a conversation log:
// Send appends the user message and a pending placeholder, progress events
// rewrite the placeholder in place, and exactly one complete or error
// event resolves it. Events arriving after the terminal one are dropped,
// so a late progress record can never overwrite the final message.
type Exchange struct {
	log         *ConversationLog
	state       State
	placeholder int
	highlight   string
}

func NewExchange(log *ConversationLog) *Exchange {
	return &Exchange{log: log, state: StateIdle, placeholder: -1}
}

func (e *Exchange) State() State { return e.state }

// Done reports whether a terminal event has been applied.
func (e *Exchange) Done() bool {
	return e.state == StateComplete || e.state == StateError
}

// HighlightOrderID returns the order a completed exchange asked the
// dashboard to highlight, or "".
func (e *Exchange) HighlightOrderID() string { return e.highlight }

// Send records the user message and the transient placeholder.
func (e *Exchange) Send(query string) {
	if e.state != StateIdle {
		return
	}
	e.log.append(models.ChatMessage{Sender: models.SenderUser, Text: query})
	e.placeholder = e.log.append(models.ChatMessage{
		Sender:  models.SenderAssistant,
		Text:    ThinkingPlaceholder,
		Pending: true,
	})
	e.state = StateSent
}

// Apply consumes one stream event in arrival order.
func (e *Exchange) Apply(ev Event) {
	if e.Done() || e.state == StateIdle {
		return
	}

	switch ev.Type {
	case EventProgress:
		e.log.replace(e.placeholder, models.ChatMessage{
			Sender:  models.SenderAssistant,
			Text:    ev.Message,
			Pending: true,
		})
		e.state = StateStreaming

	case EventComplete:
		e.log.replace(e.placeholder, models.ChatMessage{
			Sender:   models.SenderAssistant,
			Text:     ev.Response,
			Thinking: ev.Thinking,
		})
		if ev.Action == ActionHighlightOrder && ev.OrderID != "" {
			e.highlight = ev.OrderID
		}
		e.state = StateComplete

	case EventError:
		e.fail()
	}
}

// Fail force-terminates the exchange after a transport or parse failure.
// The placeholder is replaced either way.
func (e *Exchange) Fail() {
	if e.Done() || e.state == StateIdle {
		return
	}
	e.fail()
}

func (e *Exchange) fail() {
	e.log.replace(e.placeholder, models.ChatMessage{
		Sender: models.SenderAssistant,
		Text:   ApologyMessage,
	})
	e.state = StateError
}
