package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pubdeck/internal/model"
)

func TestDatasetStoreReplaceSemantics(t *testing.T) {
	s := NewDatasetStore()

	s.ReplaceAll(model.Dataset{
		Texts:  []model.Text{{ID: 1}, {ID: 2}},
		Groups: []model.Group{{ID: 1}},
	})

	// Замена списка — не слияние: старые элементы исчезают
	s.ReplaceTexts([]model.Text{{ID: 3}})

	snapshot := s.Snapshot()
	assert.Len(t, snapshot.Texts, 1)
	assert.Equal(t, 3, snapshot.Texts[0].ID)
	assert.Len(t, snapshot.Groups, 1)
}

func TestDatasetStoreClear(t *testing.T) {
	s := NewDatasetStore()
	s.ReplaceAll(model.Dataset{Texts: []model.Text{{ID: 1}}})
	s.SetConnected(true)
	s.SetPublishing(true)

	s.Clear()

	texts, images, groups, pages, scheduled := s.Counters()
	assert.Zero(t, texts+images+groups+pages+scheduled)
	assert.False(t, s.Connected())
	assert.False(t, s.Publishing())
}

func TestConsoleLogOrder(t *testing.T) {
	c := NewConsoleLog()
	c.Append("первое", "")
	c.Append("второе", "success")

	entries := c.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, "первое", entries[0].Message)
	assert.Equal(t, "info", entries[0].Type)
	assert.Equal(t, "success", entries[1].Type)

	c.Clear()
	assert.Zero(t, c.Len())
}
