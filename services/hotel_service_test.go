package services

import (
	"testing"

	"hotelops-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupUpsertsByOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewHotelService(db)

	hotel, err := svc.Setup(7, "Sunrise Inn", "MG Road", "", []string{"Rooms"})
	require.NoError(t, err)
	assert.Equal(t, "Sunrise Inn", hotel.Name)
	assert.Equal(t, uint(7), hotel.OwnerID)

	// re-running setup edits the same row
	again, err := svc.Setup(7, "Sunrise Inn & Suites", "MG Road 2", "", []string{"Rooms", "Restaurant"})
	require.NoError(t, err)
	assert.Equal(t, hotel.ID, again.ID)
	assert.Equal(t, "Sunrise Inn & Suites", again.Name)
	assert.ElementsMatch(t, []string{"Rooms", "Restaurant"}, []string(again.Services))

	var count int64
	db.Model(&models.Hotel{}).Where("owner_id = ?", 7).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSetupValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewHotelService(db)

	_, err := svc.Setup(7, "   ", "", "", nil)
	assert.ErrorIs(t, err, ErrInvalidHotel)
}

func TestGetByOwnerMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewHotelService(db)

	_, err := svc.GetByOwner(42)
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewHotelService(db)

	_, err := svc.Setup(7, "Sunrise Inn", "MG Road", "", nil)
	require.NoError(t, err)

	hotel, err := svc.UpdateProfile(7, "Sunrise Inn", "New Address", "9876543210", "front@sunrise.in")
	require.NoError(t, err)
	assert.Equal(t, "New Address", hotel.Address)
	assert.Equal(t, "9876543210", hotel.Phone)
	assert.Equal(t, "front@sunrise.in", hotel.Email)

	_, err = svc.UpdateProfile(99, "X", "", "", "")
	assert.ErrorIs(t, err, ErrHotelNotFound)

	_, err = svc.UpdateProfile(7, "  ", "", "", "")
	assert.ErrorIs(t, err, ErrInvalidHotel)
}

func TestSetLogoKeepsOtherFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewHotelService(db)

	_, err := svc.Setup(7, "Sunrise Inn", "MG Road", "", nil)
	require.NoError(t, err)

	hotel, err := svc.SetLogo(7, "logos/abc.png")
	require.NoError(t, err)
	assert.Equal(t, "logos/abc.png", hotel.LogoURL)
	assert.Equal(t, "Sunrise Inn", hotel.Name)
}
