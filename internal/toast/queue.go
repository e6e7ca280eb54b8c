package toast

import "time"

// Record is a single notification.
type Record struct {
	ID        uint64
	Kind      Kind
	Message   string
	CreatedAt time.Time
}

// NewRecord builds a record.
func NewRecord(id uint64, kind Kind, message string, at time.Time) Record {
	return Record{
		ID:        id,
		Kind:      kind,
		Message:   message,
		CreatedAt: at,
	}
}

// Queue is an ordered sequence of records, oldest first.
// Records enter at the tail and leave from the head.
type Queue struct {
	items []Record
}

// Append adds r at the tail.
func (q *Queue) Append(r Record) {
	q.items = append(q.items, r)
}

// PopHead removes and returns the oldest record.
func (q *Queue) PopHead() (Record, bool) {
	if len(q.items) == 0 {
		return Record{}, false
	}
	head := q.items[0]
	q.items[0] = Record{}
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return head, true
}

// Head returns the oldest record without removing it.
func (q *Queue) Head() (Record, bool) {
	if len(q.items) == 0 {
		return Record{}, false
	}
	return q.items[0], true
}

// Len returns the number of queued records.
func (q *Queue) Len() int {
	return len(q.items)
}

// Snapshot returns a copy of the queue contents, oldest first.
func (q *Queue) Snapshot() []Record {
	if len(q.items) == 0 {
		return nil
	}
	out := make([]Record, len(q.items))
	copy(out, q.items)
	return out
}

// idSource hands out unique, increasing ids derived from the creation time.
type idSource struct {
	last uint64
}

func (s *idSource) next(at time.Time) uint64 {
	id := uint64(at.UnixNano()) //nolint:gosec // creation times are after 1970
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
