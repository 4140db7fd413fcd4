// Package chatstream parses the assistant's event stream and tracks the
// conversation state of one chat exchange. The parser is independent of
// the transport: callers feed it raw chunks in arrival order and receive
// complete events back.
package chatstream

import (
	"bytes"
	"encoding/json"
)

type EventType string

const (
	EventProgress EventType = "progress"
	EventComplete EventType = "complete"
	EventError    EventType = "error"
)

// Event is one record of the chat stream.
type Event struct {
	Type     EventType `json:"type"`
	Stage    string    `json:"stage,omitempty"`
	Message  string    `json:"message,omitempty"`
	Response string    `json:"response,omitempty"`
	Thinking string    `json:"thinking,omitempty"`
	Action   string    `json:"action,omitempty"`
	OrderID  string    `json:"order_id,omitempty"`
}

// ActionHighlightOrder asks the dashboard to scroll to and flash the
// referenced order row.
const ActionHighlightOrder = "highlight_order"

const recordPrefix = "data: "

// Parser splits a chat response body into events. Records are newline
// delimited, "data: "-prefixed JSON objects; a record split across read
// chunks stays buffered until its terminating newline arrives.
type Parser struct {
	buf []byte
}

// Feed appends a chunk and returns every record completed by it.
func (p *Parser) Feed(chunk []byte) []Event {
	p.buf = append(p.buf, chunk...)

	var events []Event
	for {
		i := bytes.IndexByte(p.buf, '\n')
		if i < 0 {
			break
		}
		line := p.buf[:i]
		p.buf = p.buf[i+1:]
		if ev, ok := parseRecord(line); ok {
			events = append(events, ev)
		}
	}
	return events
}

// Flush parses whatever is still buffered once the stream has ended, for
// producers that do not newline-terminate their final record.
func (p *Parser) Flush() []Event {
	if len(p.buf) == 0 {
		return nil
	}
	line := p.buf
	p.buf = nil
	if ev, ok := parseRecord(line); ok {
		return []Event{ev}
	}
	return nil
}

// parseRecord decodes one complete line. Blank lines are stream padding
// and skipped; anything else that is not a well-formed record degrades to
// an error event rather than being dropped, so the exchange always
// terminates visibly.
func parseRecord(line []byte) (Event, bool) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return Event{}, false
	}
	if !bytes.HasPrefix(line, []byte(recordPrefix)) {
		return Event{Type: EventError}, true
	}

	var ev Event
	if err := json.Unmarshal(line[len(recordPrefix):], &ev); err != nil {
		return Event{Type: EventError}, true
	}
	switch ev.Type {
	case EventProgress, EventComplete, EventError:
		return ev, true
	}
	return Event{Type: EventError}, true
}
