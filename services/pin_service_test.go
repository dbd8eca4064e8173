package services

import (
	"context"
	"strings"
	"testing"

	"waymark_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePinValidation(t *testing.T) {
	ctx := context.Background()
	service := &PinService{Dynamo: newFakeDynamo()}

	tests := []struct {
		name    string
		ownerID string
		title   string
		caption string
		lat     float64
		lng     float64
	}{
		{"missing owner", "", "Sunset spot", "", 33.77, -118.19},
		{"blank title", "alice", "   ", "", 33.77, -118.19},
		{"caption too long", "alice", "Sunset spot", strings.Repeat("x", MaxCaptionLength+1), 33.77, -118.19},
		{"latitude out of range", "alice", "Sunset spot", "", 91, -118.19},
		{"longitude out of range", "alice", "Sunset spot", "", 33.77, 181},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreatePin(ctx, tt.ownerID, tt.title, tt.caption, tt.lat, tt.lng, "general")
			var validation *ValidationError
			assert.ErrorAs(t, err, &validation)
		})
	}
}

func TestCreatePinDefaultsCategory(t *testing.T) {
	ctx := context.Background()
	service := &PinService{Dynamo: newFakeDynamo()}

	pinID, err := service.CreatePin(ctx, "alice", "Sunset spot", "", 33.77, -118.19, "")
	require.NoError(t, err)

	pin, err := service.GetPinByID(ctx, pinID)
	require.NoError(t, err)
	assert.Equal(t, models.PinCategoryGeneral, pin.Category)
	assert.Equal(t, "alice", pin.OwnerID)
	assert.NotZero(t, pin.CreatedAt)
}

func TestGetPinByIDNotFound(t *testing.T) {
	service := &PinService{Dynamo: newFakeDynamo()}

	_, err := service.GetPinByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPinNotFound)
}

func TestUpdateCaption(t *testing.T) {
	ctx := context.Background()
	service := &PinService{Dynamo: newFakeDynamo()}

	pinID, err := service.CreatePin(ctx, "alice", "Sunset spot", "old", 33.77, -118.19, "beach")
	require.NoError(t, err)

	t.Run("owner can edit", func(t *testing.T) {
		require.NoError(t, service.UpdateCaption(ctx, "alice", pinID, "new caption"))
		pin, err := service.GetPinByID(ctx, pinID)
		require.NoError(t, err)
		assert.Equal(t, "new caption", pin.Description)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		err := service.UpdateCaption(ctx, "bob", pinID, "hijacked")
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("empty caption is rejected", func(t *testing.T) {
		err := service.UpdateCaption(ctx, "alice", pinID, "  ")
		var validation *ValidationError
		assert.ErrorAs(t, err, &validation)
	})

	t.Run("over-length caption is rejected", func(t *testing.T) {
		err := service.UpdateCaption(ctx, "alice", pinID, strings.Repeat("x", MaxCaptionLength+1))
		var validation *ValidationError
		assert.ErrorAs(t, err, &validation)
	})
}

func TestDeletePinAuthorization(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	service := &PinService{Dynamo: fake}

	pinID, err := service.CreatePin(ctx, "alice", "Sunset spot", "", 33.77, -118.19, "beach")
	require.NoError(t, err)

	err = service.DeletePin(ctx, "bob", pinID)
	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.Equal(t, 1, fake.count(models.PinsTable))

	require.NoError(t, service.DeletePin(ctx, "alice", pinID))
	assert.Equal(t, 0, fake.count(models.PinsTable))

	err = service.DeletePin(ctx, "alice", pinID)
	assert.ErrorIs(t, err, ErrPinNotFound)
}

func TestSharePinValidation(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	service := &PinService{Dynamo: fake}

	_, err := service.SharePin(ctx, "alice", "alice", "pin-1")
	var validation *ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, 0, fake.count(models.PinSharesTable))

	shareID, err := service.SharePin(ctx, "alice", "bob", "pin-1")
	require.NoError(t, err)
	assert.NotEmpty(t, shareID)
	assert.Equal(t, 1, fake.count(models.PinSharesTable))

	// Shares are append-only: a repeat share is a second event.
	_, err = service.SharePin(ctx, "alice", "bob", "pin-1")
	require.NoError(t, err)
	assert.Equal(t, 2, fake.count(models.PinSharesTable))
}
