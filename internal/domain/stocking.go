package domain

// StockRequest is the payload for stocking a quantity of an article into a
// slot. The article may be referenced by its scanned QR payload or directly
// by its catalog code; exactly one of the two must be set.
type StockRequest struct {
	QRPayload   string `json:"qr_payload,omitempty"`
	ArticleCode string `json:"article_code,omitempty"`
	Quantity    int    `json:"quantity"`
	SlotCode    string `json:"slot_code"`
}

// StockResult reports the outcome of a stocking operation.
type StockResult struct {
	Sample   Sample `json:"sample"`
	SlotCode string `json:"slot_code"`
	Quantity int    `json:"quantity"`
}

// DestockPlanRequest asks which slots hold samples of an article.
type DestockPlanRequest struct {
	QRPayload   string `json:"qr_payload,omitempty"`
	ArticleCode string `json:"article_code,omitempty"`
}

// PlanLine is one available (sample, quantity) row inside a planned slot.
type PlanLine struct {
	SampleID string `json:"sample_id"`
	Quantity int    `json:"quantity"`
}

// PlanSlot groups the available rows of one storage slot.
type PlanSlot struct {
	SlotCode string     `json:"slot_code"`
	Lines    []PlanLine `json:"lines"`
}

// DestockPlan is the read-only snapshot presented to the operator before a
// transfer is confirmed. It never mutates anything.
type DestockPlan struct {
	ArticleID string     `json:"article_id"`
	Slots     []PlanSlot `json:"slots"`
}

// DestockLine is one confirmed movement: take Quantity of the sample out of
// the named storage slot and move it into the overflow slot.
type DestockLine struct {
	SlotCode string `json:"slot_code"`
	SampleID string `json:"sample_id"`
	Quantity int    `json:"quantity"`
}

// DestockConfirmation is the payload committing a set of transfer lines.
type DestockConfirmation struct {
	Lines []DestockLine `json:"lines"`
}

// TransferReceipt reports a fully applied destock transfer.
type TransferReceipt struct {
	Message       string   `json:"message"`
	MovedQuantity int      `json:"moved_quantity"`
	SlotCodes     []string `json:"slot_codes"`
}
