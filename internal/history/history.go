// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history holds the session-scoped calculation log: an append-only
// ordered sequence of completed "expression = result" records. Nothing here
// persists across sessions.
package history

import (
	"time"

	"github.com/google/uuid"
)

// Record is an immutable completed calculation. ID and At exist for list
// identity and display; equality of meaning is (Expression, Result).
type Record struct {
	ID         string
	Expression string
	Result     string
	At         time.Time
}

// Log is the append-only calculation history, oldest first. Records are
// never removed or reordered by selection; only an optional size limit
// trims from the oldest end.
//
// Like the rest of the session state, Log is not safe for concurrent use;
// the UI event loop is its only caller.
type Log struct {
	records []Record
	limit   int
}

// NewLog creates a history log. limit bounds the number of retained
// records; 0 means unbounded.
func NewLog(limit int) *Log {
	return &Log{limit: limit}
}

// Append adds a completed calculation and returns the stored record.
func (l *Log) Append(expression, result string) Record {
	rec := Record{
		ID:         uuid.NewString(),
		Expression: expression,
		Result:     result,
		At:         time.Now(),
	}
	l.records = append(l.records, rec)

	if l.limit > 0 && len(l.records) > l.limit {
		drop := len(l.records) - l.limit
		l.records = append(l.records[:0:0], l.records[drop:]...)
	}
	return rec
}

// Records returns a copy of all records, oldest first.
func (l *Log) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of retained records.
func (l *Log) Len() int {
	return len(l.records)
}

// Last returns the most recent record, if any.
func (l *Log) Last() (Record, bool) {
	if len(l.records) == 0 {
		return Record{}, false
	}
	return l.records[len(l.records)-1], true
}

// SetLimit updates the retention bound, trimming oldest records if the new
// limit is already exceeded. 0 means unbounded.
func (l *Log) SetLimit(limit int) {
	l.limit = limit
	if limit > 0 && len(l.records) > limit {
		drop := len(l.records) - limit
		l.records = append(l.records[:0:0], l.records[drop:]...)
	}
}

// Clear empties the log.
func (l *Log) Clear() {
	l.records = nil
}
