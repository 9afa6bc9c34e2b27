package client

import (
	"sync"
	"time"
)

// ConsoleEntry — одна строка консоли публикаций.
type ConsoleEntry struct {
	Time    time.Time
	Type    string // "info", "success", "warning", "error"
	Message string
}

// ConsoleLog — append-only журнал событий push-канала. Живет только
// в памяти, не ограничен по размеру и никогда не сохраняется.
type ConsoleLog struct {
	mu      sync.Mutex
	entries []ConsoleEntry
}

func NewConsoleLog() *ConsoleLog {
	return &ConsoleLog{}
}

// Append добавляет строку в журнал
func (c *ConsoleLog) Append(message, msgType string) {
	if msgType == "" {
		msgType = "info"
	}
	c.mu.Lock()
	c.entries = append(c.entries, ConsoleEntry{
		Time:    time.Now(),
		Type:    msgType,
		Message: message,
	})
	c.mu.Unlock()
}

// Entries возвращает копию журнала в порядке поступления
func (c *ConsoleLog) Entries() []ConsoleEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]ConsoleEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Clear очищает журнал
func (c *ConsoleLog) Clear() {
	c.mu.Lock()
	c.entries = nil
	c.mu.Unlock()
}

// Len возвращает количество строк
func (c *ConsoleLog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
