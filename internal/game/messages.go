package game

import "strings"

// MsgPriority controls the color of a line in the battle log.
type MsgPriority uint8

const (
	MsgInfo     MsgPriority = iota // white
	MsgAction                      // cyan
	MsgWarning                     // yellow
	MsgCritical                    // red
	MsgDialogue                    // green
)

// Message is a single line of the battle log.
type Message struct {
	Text     string
	Priority MsgPriority
}

// MessageLog is a bounded FIFO of wrapped lines.
type MessageLog struct {
	Messages []Message
	maxSize  int
	width    int
}

// NewMessageLog keeps the most recent maxSize lines, wrapped at width runes.
func NewMessageLog(maxSize, width int) *MessageLog {
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  max(1, maxSize),
		width:    max(8, width),
	}
}

// Add appends text, evicting the oldest lines when full.
func (l *MessageLog) Add(text string, priority MsgPriority) {
	for _, line := range wrapText(text, l.width) {
		if len(l.Messages) >= l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages = l.Messages[:len(l.Messages)-1]
		}
		l.Messages = append(l.Messages, Message{Text: line, Priority: priority})
	}
}

// wrapText splits text on whitespace into lines of at most width runes.
// Single words longer than width are kept whole.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// Recent returns the last n lines (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	n = min(max(0, n), len(l.Messages))
	return l.Messages[len(l.Messages)-n:]
}
