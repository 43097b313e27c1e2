package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSlotKey_NormalizesToUTC(t *testing.T) {
	roomID := uuid.New()
	jakarta := time.FixedZone("WIB", 7*3600)

	utcKey := SlotKey(roomID,
		time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC))
	wibKey := SlotKey(roomID,
		time.Date(2025, 3, 15, 7, 0, 0, 0, jakarta),
		time.Date(2025, 3, 15, 19, 0, 0, 0, jakarta))

	assert.Equal(t, utcKey, wibKey)
	assert.Equal(t, roomID.String()+"|2025-03-15|12:00", utcKey)
}

func TestSlotKey_DiffersPerRoom(t *testing.T) {
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	slot := time.Date(2025, 3, 15, 19, 0, 0, 0, time.UTC)

	a := SlotKey(uuid.New(), date, slot)
	b := SlotKey(uuid.New(), date, slot)
	assert.NotEqual(t, a, b)
}

func TestTicketStatus_Active(t *testing.T) {
	assert.True(t, TicketStatusPending.Active())
	assert.True(t, TicketStatusReserved.Active())
	assert.True(t, TicketStatusConfirmed.Active())
	assert.False(t, TicketStatusCancelled.Active())
	assert.False(t, TicketStatusExpired.Active())
}
