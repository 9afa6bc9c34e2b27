package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateTextContent(t *testing.T) {
	assert.NoError(t, validateTextContent("нормальный текст"))
	assert.Error(t, validateTextContent(""))
	assert.Error(t, validateTextContent("   \t\n"))
}

func TestValidateAICount(t *testing.T) {
	tests := []struct {
		count   int
		wantErr bool
	}{
		{1, false},
		{5, false},
		{50, false},
		{0, true},
		{-1, true},
		{51, true},
	}

	for _, tt := range tests {
		err := validateAICount(tt.count)
		if tt.wantErr {
			assert.Error(t, err, "count=%d", tt.count)
		} else {
			assert.NoError(t, err, "count=%d", tt.count)
		}
	}
}

func TestValidateDestinationURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https", "https://example.com/group", false},
		{"http", "http://example.com/group", false},
		{"пустой", "", true},
		{"без схемы", "example.com/group", true},
		{"ftp", "ftp://example.com/group", true},
		{"без хоста", "https://", true},
		{"мусор", "не ссылка вовсе", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDestinationURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePageInput(t *testing.T) {
	assert.NoError(t, validatePageInput("Моя страница", "https://example.com/p"))
	assert.Error(t, validatePageInput("", "https://example.com/p"))
	assert.Error(t, validatePageInput("Моя страница", "плохой-url"))
}

func TestValidateScheduleInput(t *testing.T) {
	at := time.Now().Add(time.Hour)

	assert.NoError(t, validateScheduleInput(1, at, "текст"))
	assert.Error(t, validateScheduleInput(0, at, "текст"))
	assert.Error(t, validateScheduleInput(1, time.Time{}, "текст"))
	assert.Error(t, validateScheduleInput(1, at, "  "))
}

func TestValidatePublishingTags(t *testing.T) {
	assert.NoError(t, validatePublishingTags("спорт", "новости"))
	assert.Error(t, validatePublishingTags("", "новости"))
	assert.Error(t, validatePublishingTags("спорт", ""))
	assert.Error(t, validatePublishingTags("", ""))
}
