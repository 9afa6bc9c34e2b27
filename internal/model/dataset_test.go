package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidItemType(t *testing.T) {
	for _, known := range ItemTypes {
		assert.True(t, ValidItemType(known), known)
	}
	assert.False(t, ValidItemType("users"))
	assert.False(t, ValidItemType(""))
}

func TestInitialDataEmbedsDataset(t *testing.T) {
	raw := `{
		"texts": [{"id": 1, "content": "привет", "ai_tags": "спорт", "usage_count": 3}],
		"client_info": {"id": 7, "name": "Acme"}
	}`

	var data InitialData
	require.NoError(t, json.Unmarshal([]byte(raw), &data))

	require.Len(t, data.Texts, 1)
	assert.Equal(t, "привет", data.Texts[0].Content)
	assert.Equal(t, "спорт", data.Texts[0].AITags)
	require.NotNil(t, data.ClientInfo)
	assert.Equal(t, 7, data.ClientInfo.ID)
}
