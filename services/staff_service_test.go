package services

import (
	"testing"

	"hotelops-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStaff(hotelID uint, name string) models.Staff {
	return models.Staff{
		HotelID:  hotelID,
		Name:     name,
		Role:     "Housekeeping",
		IDType:   "aadhar",
		IDNumber: "1111-2222",
	}
}

func TestCreateStaffDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(db)

	member := validStaff(1, "Ravi Kumar")
	require.NoError(t, svc.Create(&member))

	assert.Equal(t, models.StaffStatusActive, member.Status)
	assert.NotNil(t, member.Attendance)
	assert.Empty(t, member.Attendance)
}

func TestCreateStaffValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(db)

	cases := []struct {
		name   string
		mutate func(*models.Staff)
	}{
		{"missing name", func(m *models.Staff) { m.Name = "  " }},
		{"missing role", func(m *models.Staff) { m.Role = "" }},
		{"missing id", func(m *models.Staff) { m.IDNumber = "" }},
		{"age too low", func(m *models.Staff) { age := 15; m.Age = &age }},
		{"age too high", func(m *models.Staff) { age := 101; m.Age = &age }},
		{"short contact", func(m *models.Staff) { m.Contact = "12345" }},
		{"bad email", func(m *models.Staff) { m.Email = "not-an-email" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			member := validStaff(1, "Ravi Kumar")
			tc.mutate(&member)
			assert.ErrorIs(t, svc.Create(&member), ErrInvalidStaff)
		})
	}

	// boundary ages pass
	member := validStaff(1, "Young")
	age := 16
	member.Age = &age
	assert.NoError(t, svc.Create(&member))
}

func TestStaffScopedToHotel(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(db)

	mine := validStaff(1, "Mine")
	require.NoError(t, svc.Create(&mine))
	other := validStaff(2, "Other")
	require.NoError(t, svc.Create(&other))

	staff, err := svc.GetAll(1)
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, "Mine", staff[0].Name)

	_, err = svc.GetByID(1, other.ID)
	assert.ErrorIs(t, err, ErrStaffNotFound)
	assert.ErrorIs(t, svc.Delete(1, other.ID), ErrStaffNotFound)
}

func TestSetStatusAndActiveCount(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(db)

	a := validStaff(1, "A")
	require.NoError(t, svc.Create(&a))
	b := validStaff(1, "B")
	require.NoError(t, svc.Create(&b))

	count, err := svc.ActiveCount(1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, svc.SetStatus(1, b.ID, models.StaffStatusInactive))
	count, err = svc.ActiveCount(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	assert.ErrorIs(t, svc.SetStatus(1, b.ID, "retired"), ErrInvalidStaff)
	assert.ErrorIs(t, svc.SetStatus(1, 999, models.StaffStatusActive), ErrStaffNotFound)
}
