package jsonl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"leadhub/domain/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndSuggest(t *testing.T) {
	log := NewMappingLog(filepath.Join(t.TempDir(), "mappings.jsonl"))
	ctx := context.Background()

	require.NoError(t, log.RecordMapping(ctx, "merchantdba", schema.FieldBusinessName))
	require.NoError(t, log.RecordMapping(ctx, "merchantdba", schema.FieldBusinessName))
	require.NoError(t, log.RecordMapping(ctx, "merchantdba", schema.FieldIndustry))

	mapping, ok, err := log.Suggest(ctx, "merchantdba")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, schema.FieldBusinessName, mapping.Field)
	assert.Equal(t, 2, mapping.Count)
}

func TestSuggestUnknownKey(t *testing.T) {
	log := NewMappingLog(filepath.Join(t.TempDir(), "mappings.jsonl"))

	_, ok, err := log.Suggest(context.Background(), "nothing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSuggestSkipsTornLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.jsonl")
	log := NewMappingLog(path)
	ctx := context.Background()

	require.NoError(t, log.RecordMapping(ctx, "ownercell", schema.FieldPhone))

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString(`{"header_key":"ownercell","fie`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	mapping, ok, err := log.Suggest(ctx, "ownercell")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, mapping.Count)
}
