package assistant

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// streamLine is a single line of the claude CLI's stream-json output.
type streamLine struct {
	Type      string          `json:"type"`
	Message   json.RawMessage `json:"message,omitempty"`
	Result    string          `json:"result,omitempty"`
	SessionID string          `json:"session_id,omitempty"`
}

// streamMessage is the message payload of an assistant line.
type streamMessage struct {
	Content []contentBlock `json:"content"`
}

// contentBlock is a typed block within an assistant message.
type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// parseStream reads stream-json lines from r, invoking onText for every
// assistant text block as it arrives, and returns the accumulated response
// plus the session ID reported by the final result line.
func parseStream(r io.Reader, onText func(string)) (text, sessionID string, err error) {
	scanner := bufio.NewScanner(r)
	// Assistant responses with large code blocks can exceed the default
	// token size, so give the scanner plenty of room.
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	var full []byte
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var entry streamLine
		if err := json.Unmarshal(line, &entry); err != nil {
			// Skip malformed lines.
			continue
		}

		switch entry.Type {
		case "assistant":
			if len(entry.Message) == 0 {
				continue
			}
			var msg streamMessage
			if err := json.Unmarshal(entry.Message, &msg); err != nil {
				continue
			}
			for _, block := range msg.Content {
				if block.Type != "text" || block.Text == "" {
					continue
				}
				if onText != nil {
					onText(block.Text)
				}
				full = append(full, block.Text...)
			}

		case "result":
			if entry.SessionID != "" {
				sessionID = entry.SessionID
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return string(full), sessionID, fmt.Errorf("reading assistant stream: %w", err)
	}
	return string(full), sessionID, nil
}
