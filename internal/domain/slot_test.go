package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"texstock/internal/domain"
)

func TestCoordinates_CodeIsZeroPadded(t *testing.T) {
	assert.Equal(t, "010203", domain.Coordinates{Aisle: 1, Floor: 2, Bay: 3}.Code())
	assert.Equal(t, "120905", domain.Coordinates{Aisle: 12, Floor: 9, Bay: 5}.Code())
	assert.Equal(t, "999999", domain.Coordinates{Aisle: 99, Floor: 99, Bay: 99}.Code())
}

func TestOverflowCoordinates_MatchReservedCode(t *testing.T) {
	assert.Equal(t, domain.OverflowCode, domain.OverflowCoordinates().Code())
}

func TestGenerateSlotsRequest_EnumerateOrder(t *testing.T) {
	req := domain.GenerateSlotsRequest{
		AisleCount: 2, FloorCount: 2, BayCount: 1,
		StartAisle: 3, StartFloor: 1, StartBay: 7,
	}

	coords := req.Enumerate()

	expected := []domain.Coordinates{
		{Aisle: 3, Floor: 1, Bay: 7},
		{Aisle: 3, Floor: 2, Bay: 7},
		{Aisle: 4, Floor: 1, Bay: 7},
		{Aisle: 4, Floor: 2, Bay: 7},
	}
	assert.Equal(t, expected, coords)
}

func TestSlot_TotalQuantitySumsContents(t *testing.T) {
	slot := domain.Slot{
		Contents: []domain.SlotContent{
			{SampleID: "a", Quantity: 10},
			{SampleID: "b", Quantity: 7},
		},
	}
	assert.Equal(t, 17, slot.TotalQuantity())
}

func TestNewSlot_DerivesCodeFromCoordinates(t *testing.T) {
	slot := domain.NewSlot(domain.Coordinates{Aisle: 5, Floor: 6, Bay: 7}, domain.KindStorage)

	assert.Equal(t, "050607", slot.Code)
	assert.Equal(t, "05", slot.Aisle)
	assert.Equal(t, "06", slot.Floor)
	assert.Equal(t, "07", slot.Bay)
	assert.Equal(t, domain.KindStorage, slot.Kind)
}
