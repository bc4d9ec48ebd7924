package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sekolahku_backend/internals/features/school/classes/model"
)

func TestIsAllowedStatusChange(t *testing.T) {
	// maju boleh
	assert.True(t, isAllowedStatusChange(model.ClassStatusDraft, model.ClassStatusPublished))
	assert.True(t, isAllowedStatusChange(model.ClassStatusPublished, model.ClassStatusStarted))
	assert.True(t, isAllowedStatusChange(model.ClassStatusStarted, model.ClassStatusCompleted))

	// mundur tidak boleh
	assert.False(t, isAllowedStatusChange(model.ClassStatusPublished, model.ClassStatusDraft))
	assert.False(t, isAllowedStatusChange(model.ClassStatusStarted, model.ClassStatusPublished))
	assert.False(t, isAllowedStatusChange(model.ClassStatusCompleted, model.ClassStatusStarted))

	// cancel boleh dari mana saja kecuali completed
	assert.True(t, isAllowedStatusChange(model.ClassStatusDraft, model.ClassStatusCancelled))
	assert.True(t, isAllowedStatusChange(model.ClassStatusStarted, model.ClassStatusCancelled))
	assert.False(t, isAllowedStatusChange(model.ClassStatusCompleted, model.ClassStatusCancelled))

	// cancelled tidak bangkit lagi
	assert.False(t, isAllowedStatusChange(model.ClassStatusCancelled, model.ClassStatusPublished))

	// idempotent
	assert.True(t, isAllowedStatusChange(model.ClassStatusStarted, model.ClassStatusStarted))
}
