//go:build !integration

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLogQueryOptions_Filter(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	tests := []struct {
		name     string
		opts     LogQueryOptions
		expected bson.M
	}{
		{name: "empty", opts: LogQueryOptions{}, expected: bson.M{}},
		{
			name:     "equality fields",
			opts:     LogQueryOptions{RequestID: "req-1", Level: "warn", ActionType: "design_lap"},
			expected: bson.M{"request_id": "req-1", "level": "warn", "action_type": "design_lap"},
		},
		{
			name:     "path is a quoted case-insensitive regex",
			opts:     LogQueryOptions{Path: "/api/joints/*"},
			expected: bson.M{"path": primitive.Regex{Pattern: `/api/joints/\*`, Options: "i"}},
		},
		{
			name:     "start only",
			opts:     LogQueryOptions{StartTime: &start},
			expected: bson.M{"timestamp": bson.M{"$gte": start}},
		},
		{
			name:     "time range",
			opts:     LogQueryOptions{StartTime: &start, EndTime: &end},
			expected: bson.M{"timestamp": bson.M{"$gte": start, "$lte": end}},
		},
		{
			name:     "limit and skip do not filter",
			opts:     LogQueryOptions{Limit: 10, Skip: 5},
			expected: bson.M{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.opts.filter())
		})
	}
}

func TestStamp(t *testing.T) {
	entry := &LogEntryDocument{}
	stamp(entry)
	assert.False(t, entry.ID.IsZero())
	assert.WithinDuration(t, time.Now(), entry.Timestamp, time.Second)

	id := primitive.NewObjectID()
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	kept := &LogEntryDocument{ID: id, Timestamp: ts}
	stamp(kept)
	assert.Equal(t, id, kept.ID)
	assert.Equal(t, ts, kept.Timestamp)
}
