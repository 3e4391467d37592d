package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mreyes/gearvault-backend/internal/validation"
)

func TestCreateGearRequest_Validation(t *testing.T) {
	t.Parallel()

	err := validation.Struct(CreateGearRequest{Type: "guitar"})
	require.Error(t, err)
	assert.Equal(t, "name is required", err.Error())

	err = validation.Struct(CreateGearRequest{Name: "Strat", Type: "theremin"})
	require.Error(t, err)
	assert.Equal(t,
		"type must be one of [guitar bass amp pedal keyboard drums microphone accessory other]",
		err.Error())

	badPrice := -1.0
	err = validation.Struct(CreateGearRequest{
		Name: "Strat", Type: "guitar",
		PurchaseInfo: &PurchaseInfoPayload{Price: &badPrice},
	})
	require.Error(t, err)
	assert.Equal(t, "price must be 0 or greater", err.Error())

	year := 1962
	value := 15000.0
	assert.NoError(t, validation.Struct(CreateGearRequest{
		Name: "Strat", Type: "guitar", Brand: "Fender",
		Year: &year, CurrentValue: &value, Condition: "excellent",
	}))
}

func TestUpdateGearRequest_Validation(t *testing.T) {
	t.Parallel()

	// A fully empty update is valid; every field is optional.
	assert.NoError(t, validation.Struct(UpdateGearRequest{}))

	empty := ""
	err := validation.Struct(UpdateGearRequest{Name: &empty})
	require.Error(t, err)
	assert.Equal(t, "name must be at least 1 characters", err.Error())

	condition := "destroyed"
	err = validation.Struct(UpdateGearRequest{Condition: &condition})
	require.Error(t, err)
	assert.Equal(t, "condition must be one of [mint excellent good fair poor]", err.Error())
}

func TestCreateMaintenanceRequest_Validation(t *testing.T) {
	t.Parallel()

	now := time.Now()

	err := validation.Struct(CreateMaintenanceRequest{Type: "repair", Date: &now})
	require.Error(t, err)
	assert.Equal(t, "gear_id is required", err.Error())

	err = validation.Struct(CreateMaintenanceRequest{
		GearID: "abc", Type: "polish", Date: &now,
	})
	require.Error(t, err)
	assert.Equal(t,
		"type must be one of [repair setup string_change modification cleaning part_replacement other]",
		err.Error())

	assert.NoError(t, validation.Struct(CreateMaintenanceRequest{
		GearID: "abc", Type: "string_change", Date: &now,
	}))
}

func TestCreateReminderRequest_Validation(t *testing.T) {
	t.Parallel()

	err := validation.Struct(CreateReminderRequest{Description: "change strings"})
	require.Error(t, err)
	assert.Equal(t, "title is required", err.Error())

	err = validation.Struct(CreateReminderRequest{Title: "Change strings"})
	require.Error(t, err)
	assert.Equal(t, "due_date is required", err.Error())

	due := time.Now().Add(24 * time.Hour)
	assert.NoError(t, validation.Struct(CreateReminderRequest{
		Title: "Change strings", DueDate: &due,
	}))
}
