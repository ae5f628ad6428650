// Package testlog captures log records in memory so tests can assert on them.
package testlog

import (
	"slices"
	"sync"

	"service-rental/internal/logx"
)

// Entry is one captured record. Fields include those bound through With.
type Entry struct {
	Level  string
	Msg    string
	Fields []logx.Field
}

// Field looks up a field by key.
func (e Entry) Field(key string) (any, bool) {
	i := slices.IndexFunc(e.Fields, func(f logx.Field) bool { return f.Key == key })
	if i < 0 {
		return nil, false
	}
	return e.Fields[i].Value, true
}

// Recorder is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func New() *Recorder { return &Recorder{} }

// Logger returns a logx.Logger that appends to r.
func (r *Recorder) Logger() logx.Logger { return &capture{rec: r} }

// Entries returns a snapshot of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.entries)
}

// Find returns the first entry with the given level and message.
func (r *Recorder) Find(level, msg string) (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.Level == level && e.Msg == msg {
			return e, true
		}
	}
	return Entry{}, false
}

func (r *Recorder) Has(level, msg string) bool {
	_, ok := r.Find(level, msg)
	return ok
}

type capture struct {
	rec   *Recorder
	bound []logx.Field
}

func (c *capture) Debug(msg string, f ...logx.Field) { c.emit("debug", msg, f) }
func (c *capture) Info(msg string, f ...logx.Field)  { c.emit("info", msg, f) }
func (c *capture) Warn(msg string, f ...logx.Field)  { c.emit("warn", msg, f) }
func (c *capture) Error(msg string, f ...logx.Field) { c.emit("error", msg, f) }
func (c *capture) Sync() error                       { return nil }

func (c *capture) With(f ...logx.Field) logx.Logger {
	return &capture{rec: c.rec, bound: slices.Concat(c.bound, f)}
}

func (c *capture) emit(level, msg string, f []logx.Field) {
	e := Entry{Level: level, Msg: msg, Fields: slices.Concat(c.bound, f)}
	c.rec.mu.Lock()
	c.rec.entries = append(c.rec.entries, e)
	c.rec.mu.Unlock()
}
