package ai

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusflow/adhd-assist/types"
)

func TestKey_Stable(t *testing.T) {
	input := struct {
		Title    string `json:"title"`
		Priority string `json:"priority"`
	}{"Write report", "high"}

	k1 := Key("task_decompose", input)
	k2 := Key("task_decompose", input)
	assert.Equal(t, k1, k2, "same input must produce the same key")

	input.Title = "Other task"
	assert.NotEqual(t, k1, Key("task_decompose", input))
	assert.NotEqual(t, k1, Key("reading_content", input))
}

func TestKey_MapOrderIndependent(t *testing.T) {
	a := map[string]any{"topic": "space", "difficulty": 3}
	b := map[string]any{"difficulty": 3, "topic": "space"}
	assert.Equal(t, Key("reading_content", a), Key("reading_content", b))
}

func TestCache_RoundTrip(t *testing.T) {
	c := NewCache(t.TempDir(), true)
	key := Key("task_decompose", "input")

	stored := types.TaskDecomposition{
		Analysis: "plan",
		Steps:    []types.TaskStep{{Title: "start", Description: "begin"}},
	}
	c.Put(key, stored)

	var got types.TaskDecomposition
	require.True(t, c.Get(key, &got))
	assert.Equal(t, stored, got)
}

func TestCache_Miss(t *testing.T) {
	c := NewCache(t.TempDir(), true)

	var got types.TaskDecomposition
	assert.False(t, c.Get(Key("task_decompose", "unseen"), &got))
}

func TestCache_ExpiryDeletesFile(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(dir, true)

	now := time.Now()
	c.now = func() time.Time { return now }

	key := Key("daily_tips", "input")
	c.Put(key, types.TipsPayload{Tips: []types.Tip{{Title: "tip"}}})

	path := filepath.Join(dir, key+".json")
	_, err := os.Stat(path)
	require.NoError(t, err, "entry file should exist after Put")

	// Just under 24h: still a hit.
	now = now.Add(23 * time.Hour)
	var got types.TipsPayload
	assert.True(t, c.Get(key, &got))

	// Past 24h: miss, and the stale file is removed.
	now = now.Add(2 * time.Hour)
	assert.False(t, c.Get(key, &got))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "stale entry should be deleted")
}

func TestCache_CorruptEntryIsMiss(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(dir, true)

	key := Key("task_decompose", "input")
	require.NoError(t, os.WriteFile(filepath.Join(dir, key+".json"), []byte("{broken"), 0o644))

	var got types.TaskDecomposition
	assert.False(t, c.Get(key, &got))
}

func TestCache_Disabled(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(dir, false)

	key := Key("task_decompose", "input")
	c.Put(key, types.TaskDecomposition{Analysis: "plan"})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "disabled cache must not write files")

	var got types.TaskDecomposition
	assert.False(t, c.Get(key, &got))
}
