package domain

import (
	"fmt"
	"time"
)

// SlotKind distinguishes regular storage slots from the single reserved
// overflow ("destock") slot.
type SlotKind string

const (
	KindStorage  SlotKind = "STK"
	KindOverflow SlotKind = "DST"
)

// MaxSlotCapacity is the total quantity a storage slot may hold, summed
// over all of its content rows.
const MaxSlotCapacity = 30

// The overflow slot sits at fixed coordinates outside the storage grid.
const (
	OverflowAisle = 99
	OverflowFloor = 99
	OverflowBay   = 99
	OverflowCode  = "999999"
)

// Coordinates addresses a slot by aisle, floor and bay. Each component is
// rendered as a zero-padded 2-digit string, so the valid range is 1..99.
type Coordinates struct {
	Aisle int `json:"aisle"`
	Floor int `json:"floor"`
	Bay   int `json:"bay"`
}

// Code derives the unique 6-digit slot code from the coordinates.
// Codes sort lexicographically in the same order as the coordinates.
func (c Coordinates) Code() string {
	return fmt.Sprintf("%02d%02d%02d", c.Aisle, c.Floor, c.Bay)
}

// OverflowCoordinates returns the fixed position of the overflow slot.
func OverflowCoordinates() Coordinates {
	return Coordinates{Aisle: OverflowAisle, Floor: OverflowFloor, Bay: OverflowBay}
}

// SlotContent is one (sample, quantity) row held by a slot. Quantity is
// always positive: rows are pruned the moment they reach zero.
type SlotContent struct {
	SampleID string `json:"sample_id"`
	Quantity int    `json:"quantity"`

	// Sample is populated on detail reads.
	Sample *Sample `json:"sample,omitempty"`
}

// Slot is a physical storage location ("casier") with bounded capacity.
type Slot struct {
	ID        string        `json:"id"`
	Aisle     string        `json:"aisle"`
	Floor     string        `json:"floor"`
	Bay       string        `json:"bay"`
	Code      string        `json:"code"`
	Kind      SlotKind      `json:"kind"`
	Contents  []SlotContent `json:"contents"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// TotalQuantity sums the quantities over all content rows.
func (s Slot) TotalQuantity() int {
	total := 0
	for _, c := range s.Contents {
		total += c.Quantity
	}
	return total
}

// NewSlot builds a slot record at the given coordinates.
func NewSlot(coords Coordinates, kind SlotKind) Slot {
	return Slot{
		Aisle: fmt.Sprintf("%02d", coords.Aisle),
		Floor: fmt.Sprintf("%02d", coords.Floor),
		Bay:   fmt.Sprintf("%02d", coords.Bay),
		Code:  coords.Code(),
		Kind:  kind,
	}
}

// SlotSummary is the listing shape: one line per slot, ordered by code.
type SlotSummary struct {
	Code      string   `json:"code"`
	Kind      SlotKind `json:"kind"`
	ItemCount int      `json:"item_count"`
}

// GenerateSlotsRequest describes a rectangular block of storage slots to
// bulk-create. The caller supplies the full ranges; there is no hidden
// next-coordinate cursor.
type GenerateSlotsRequest struct {
	AisleCount int `json:"aisle_count"`
	FloorCount int `json:"floor_count"`
	BayCount   int `json:"bay_count"`
	StartAisle int `json:"start_aisle"`
	StartFloor int `json:"start_floor"`
	StartBay   int `json:"start_bay"`
}

// Enumerate expands the request into the full cartesian product of its
// three ranges, in nested aisle -> floor -> bay order.
func (r GenerateSlotsRequest) Enumerate() []Coordinates {
	coords := make([]Coordinates, 0, r.AisleCount*r.FloorCount*r.BayCount)
	for a := r.StartAisle; a < r.StartAisle+r.AisleCount; a++ {
		for f := r.StartFloor; f < r.StartFloor+r.FloorCount; f++ {
			for b := r.StartBay; b < r.StartBay+r.BayCount; b++ {
				coords = append(coords, Coordinates{Aisle: a, Floor: f, Bay: b})
			}
		}
	}
	return coords
}
