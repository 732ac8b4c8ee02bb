package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogEntry_WithField(t *testing.T) {
	tests := []struct {
		name   string
		entry  *LogEntry
		key    string
		value  interface{}
		verify func(*testing.T, *LogEntry)
	}{
		{
			name:  "allocates fields on nil map",
			entry: &LogEntry{},
			key:   "joint_type",
			value: "lap",
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, "lap", e.Fields["joint_type"])
			},
		},
		{
			name: "keeps existing fields",
			entry: &LogEntry{
				Fields: map[string]interface{}{"joint_type": "lap"},
			},
			key:   "bolts",
			value: 6,
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, "lap", e.Fields["joint_type"])
				assert.Equal(t, 6, e.Fields["bolts"])
			},
		},
		{
			name: "overwrites existing key",
			entry: &LogEntry{
				Fields: map[string]interface{}{"bolts": 4},
			},
			key:   "bolts",
			value: 6,
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, 6, e.Fields["bolts"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.entry.WithField(tt.key, tt.value)
			assert.Same(t, tt.entry, result)
			tt.verify(t, result)
		})
	}
}

func TestLogEntry_WithFields(t *testing.T) {
	tests := []struct {
		name   string
		entry  *LogEntry
		fields map[string]interface{}
		verify func(*testing.T, *LogEntry)
	}{
		{
			name:  "nil map",
			entry: &LogEntry{},
			fields: map[string]interface{}{
				"joint_type": "double_cover",
				"bolts":      4,
			},
			verify: func(t *testing.T, e *LogEntry) {
				assert.Len(t, e.Fields, 2)
				assert.Equal(t, "double_cover", e.Fields["joint_type"])
			},
		},
		{
			name: "merge",
			entry: &LogEntry{
				Fields: map[string]interface{}{"governing_mode": "bearing"},
			},
			fields: map[string]interface{}{"bolts": 4},
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, "bearing", e.Fields["governing_mode"])
				assert.Equal(t, 4, e.Fields["bolts"])
			},
		},
		{
			name:   "empty input",
			entry:  &LogEntry{},
			fields: map[string]interface{}{},
			verify: func(t *testing.T, e *LogEntry) {
				assert.Empty(t, e.Fields)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.entry.WithFields(tt.fields)
			assert.Same(t, tt.entry, result)
			tt.verify(t, result)
		})
	}
}
