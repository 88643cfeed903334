package slotrepo

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"texstock/internal/domain"
	"texstock/internal/errors"
	"texstock/internal/pkg/logger"
)

// pqUniqueViolation is the PostgreSQL error code for a unique constraint hit.
const pqUniqueViolation = "23505"

// SlotRepository persists the slot topology and executes the two mutating
// protocols (stocking, destock transfer) as single transactions. The slot
// row itself is the unit of contention: every mutation locks it with
// SELECT ... FOR UPDATE before touching the content rows, so two concurrent
// stockers can never both pass the capacity check.
type SlotRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewSlotRepository creates a slot repository.
func NewSlotRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *SlotRepository {
	return &SlotRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// Create inserts a single slot record. A duplicate code fails with a
// conflict error.
func (r *SlotRepository) Create(ctx context.Context, slot domain.Slot) (domain.Slot, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	slot.ID = uuid.New().String()
	now := time.Now()
	slot.CreatedAt = now
	slot.UpdatedAt = now

	const query = `
        INSERT INTO slots (id, aisle, floor, bay, code, kind, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.DB.ExecContext(ctxTimeout, query,
		slot.ID, slot.Aisle, slot.Floor, slot.Bay, slot.Code, slot.Kind, slot.CreatedAt, slot.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return domain.Slot{}, errors.NewConflictError(fmt.Sprintf("slot code %s already exists", slot.Code))
		}
		r.logger.Error("failed to insert slot", err)
		return domain.Slot{}, errors.NewDBError("failed to insert slot", err)
	}

	slot.Contents = []domain.SlotContent{}
	r.logger.Info("slot created", map[string]interface{}{"code": slot.Code, "kind": slot.Kind})
	return slot, nil
}

// BulkCreateStorage inserts one storage slot per coordinate inside a single
// transaction. Any pre-existing code rejects the whole batch.
func (r *SlotRepository) BulkCreateStorage(ctx context.Context, coords []domain.Coordinates) (int, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	codes := make([]string, len(coords))
	for i, c := range coords {
		codes[i] = c.Code()
	}

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		return 0, errors.NewDBError("failed to start transaction", err)
	}
	defer tx.Rollback()

	// Reject-on-duplicate: a single collision fails the whole generation.
	var existing string
	err = tx.QueryRowContext(ctxTimeout,
		`SELECT code FROM slots WHERE code = ANY($1) ORDER BY code LIMIT 1`,
		pq.Array(codes),
	).Scan(&existing)
	if err == nil {
		return 0, errors.NewConflictError(fmt.Sprintf("slot code %s already exists", existing))
	}
	if err != sql.ErrNoRows {
		r.logger.Error("failed to check existing slot codes", err)
		return 0, errors.NewDBError("failed to check existing slot codes", err)
	}

	const query = `
        INSERT INTO slots (id, aisle, floor, bay, code, kind, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()
	for _, c := range coords {
		slot := domain.NewSlot(c, domain.KindStorage)
		_, err = tx.ExecContext(ctxTimeout, query,
			uuid.New().String(), slot.Aisle, slot.Floor, slot.Bay, slot.Code, slot.Kind, now, now,
		)
		if err != nil {
			r.logger.Error("failed to insert generated slot", err)
			return 0, errors.NewDBError("failed to insert generated slot", err)
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("failed to commit slot generation", err)
		return 0, errors.NewDBError("failed to commit slot generation", err)
	}

	r.logger.Info("storage slots generated", map[string]interface{}{"count": len(coords)})
	return len(coords), nil
}

// FindByCode loads a slot with its content rows, samples and articles
// populated.
func (r *SlotRepository) FindByCode(ctx context.Context, code string) (domain.Slot, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const slotQuery = `
        SELECT id, aisle, floor, bay, code, kind, created_at, updated_at
        FROM slots
        WHERE code = $1`

	var slot domain.Slot
	err := r.DB.QueryRowContext(ctxTimeout, slotQuery, code).Scan(
		&slot.ID, &slot.Aisle, &slot.Floor, &slot.Bay, &slot.Code, &slot.Kind, &slot.CreatedAt, &slot.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return domain.Slot{}, errors.NewNotFoundError(fmt.Sprintf("slot %s not found", code))
	}
	if err != nil {
		r.logger.Error("failed to fetch slot", err)
		return domain.Slot{}, errors.NewDBError("failed to fetch slot", err)
	}

	const contentQuery = `
        SELECT sc.sample_id, sc.quantity,
               sm.id, sm.article_id, sm.display_name, sm.created_at,
               a.id, a.code, a.label, a.qr_payload, a.created_at
        FROM slot_contents sc
        JOIN samples sm ON sm.id = sc.sample_id
        JOIN articles a ON a.id = sm.article_id
        WHERE sc.slot_id = $1
        ORDER BY sc.sample_id`

	rows, err := r.DB.QueryContext(ctxTimeout, contentQuery, slot.ID)
	if err != nil {
		r.logger.Error("failed to fetch slot contents", err)
		return domain.Slot{}, errors.NewDBError("failed to fetch slot contents", err)
	}
	defer rows.Close()

	slot.Contents = []domain.SlotContent{}
	for rows.Next() {
		var content domain.SlotContent
		var sample domain.Sample
		var article domain.Article
		if err := rows.Scan(
			&content.SampleID, &content.Quantity,
			&sample.ID, &sample.ArticleID, &sample.DisplayName, &sample.CreatedAt,
			&article.ID, &article.Code, &article.Label, &article.QRPayload, &article.CreatedAt,
		); err != nil {
			r.logger.Error("failed to scan slot content row", err)
			return domain.Slot{}, errors.NewDBError("failed to scan slot content row", err)
		}
		sample.Article = &article
		content.Sample = &sample
		slot.Contents = append(slot.Contents, content)
	}
	if err := rows.Err(); err != nil {
		return domain.Slot{}, errors.NewDBError("failed to iterate slot contents", err)
	}

	return slot, nil
}

// FindOverflow returns the single overflow slot.
func (r *SlotRepository) FindOverflow(ctx context.Context) (domain.Slot, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
        SELECT id, aisle, floor, bay, code, kind, created_at, updated_at
        FROM slots
        WHERE kind = $1`

	var slot domain.Slot
	err := r.DB.QueryRowContext(ctxTimeout, query, domain.KindOverflow).Scan(
		&slot.ID, &slot.Aisle, &slot.Floor, &slot.Bay, &slot.Code, &slot.Kind, &slot.CreatedAt, &slot.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return domain.Slot{}, errors.NewNotFoundError("overflow slot not found")
	}
	if err != nil {
		r.logger.Error("failed to fetch overflow slot", err)
		return domain.Slot{}, errors.NewDBError("failed to fetch overflow slot", err)
	}
	return slot, nil
}

// FindAllSummaries lists every slot ordered by code ascending. Codes are
// fixed-width digit strings, so the lexicographic order is total and stable.
func (r *SlotRepository) FindAllSummaries(ctx context.Context) ([]domain.SlotSummary, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
        SELECT s.code, s.kind, COALESCE(SUM(sc.quantity), 0)
        FROM slots s
        LEFT JOIN slot_contents sc ON sc.slot_id = s.id
        GROUP BY s.code, s.kind
        ORDER BY s.code ASC`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("failed to list slots", err)
		return nil, errors.NewDBError("failed to list slots", err)
	}
	defer rows.Close()

	summaries := []domain.SlotSummary{}
	for rows.Next() {
		var s domain.SlotSummary
		if err := rows.Scan(&s.Code, &s.Kind, &s.ItemCount); err != nil {
			return nil, errors.NewDBError("failed to scan slot summary", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("failed to iterate slot summaries", err)
	}

	return summaries, nil
}

// FindStorageBySample reports every storage slot holding the given sample,
// restricted to that sample's rows. Read-only snapshot for the planner.
func (r *SlotRepository) FindStorageBySample(ctx context.Context, sampleID string) ([]domain.PlanSlot, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
        SELECT s.code, sc.sample_id, sc.quantity
        FROM slots s
        JOIN slot_contents sc ON sc.slot_id = s.id
        WHERE s.kind = $1 AND sc.sample_id = $2
        ORDER BY s.code ASC`

	rows, err := r.DB.QueryContext(ctxTimeout, query, domain.KindStorage, sampleID)
	if err != nil {
		r.logger.Error("failed to query slots by sample", err)
		return nil, errors.NewDBError("failed to query slots by sample", err)
	}
	defer rows.Close()

	planSlots := []domain.PlanSlot{}
	for rows.Next() {
		var code string
		var line domain.PlanLine
		if err := rows.Scan(&code, &line.SampleID, &line.Quantity); err != nil {
			return nil, errors.NewDBError("failed to scan plan row", err)
		}
		if n := len(planSlots); n > 0 && planSlots[n-1].SlotCode == code {
			planSlots[n-1].Lines = append(planSlots[n-1].Lines, line)
		} else {
			planSlots = append(planSlots, domain.PlanSlot{SlotCode: code, Lines: []domain.PlanLine{line}})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("failed to iterate plan rows", err)
	}

	return planSlots, nil
}

// AddSample stocks a quantity of a sample into the slot identified by code.
// Capacity check, row merge and persistence run inside one transaction with
// the slot row locked, so the check can never act on a stale total.
func (r *SlotRepository) AddSample(ctx context.Context, slotCode, sampleID string, quantity int) (domain.Slot, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		return domain.Slot{}, errors.NewDBError("failed to start transaction", err)
	}
	defer tx.Rollback()

	// 1. Lock the slot row for the duration of the transaction.
	var slotID string
	var kind domain.SlotKind
	err = tx.QueryRowContext(ctxTimeout,
		`SELECT id, kind FROM slots WHERE code = $1 FOR UPDATE`, slotCode,
	).Scan(&slotID, &kind)
	if err == sql.ErrNoRows {
		return domain.Slot{}, errors.NewNotFoundError(fmt.Sprintf("slot %s not found", slotCode))
	}
	if err != nil {
		r.logger.Error("failed to lock slot for stocking", err)
		return domain.Slot{}, errors.NewDBError("failed to lock slot for stocking", err)
	}

	// 2. Enforce capacity on storage slots. The overflow slot is unbounded.
	if kind == domain.KindStorage {
		var total int
		err = tx.QueryRowContext(ctxTimeout,
			`SELECT COALESCE(SUM(quantity), 0) FROM slot_contents WHERE slot_id = $1`, slotID,
		).Scan(&total)
		if err != nil {
			r.logger.Error("failed to compute slot total", err)
			return domain.Slot{}, errors.NewDBError("failed to compute slot total", err)
		}

		if total+quantity > domain.MaxSlotCapacity {
			return domain.Slot{}, errors.NewCapacityExceededError(fmt.Sprintf(
				"slot %s holds %d unit(s), adding %d would exceed the capacity of %d",
				slotCode, total, quantity, domain.MaxSlotCapacity,
			))
		}
	}

	// 3. Merge into the existing row for this sample, or create one.
	_, err = tx.ExecContext(ctxTimeout, `
        INSERT INTO slot_contents (slot_id, sample_id, quantity)
        VALUES ($1, $2, $3)
        ON CONFLICT (slot_id, sample_id)
        DO UPDATE SET quantity = slot_contents.quantity + EXCLUDED.quantity`,
		slotID, sampleID, quantity,
	)
	if err != nil {
		r.logger.Error("failed to upsert slot content", err)
		return domain.Slot{}, errors.NewDBError("failed to upsert slot content", err)
	}

	if _, err = tx.ExecContext(ctxTimeout,
		`UPDATE slots SET updated_at = $1 WHERE id = $2`, time.Now(), slotID,
	); err != nil {
		return domain.Slot{}, errors.NewDBError("failed to touch slot", err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("failed to commit stocking", err)
		return domain.Slot{}, errors.NewDBError("failed to commit stocking", err)
	}

	r.logger.Info("sample stocked", map[string]interface{}{
		"slot_code": slotCode,
		"sample_id": sampleID,
		"quantity":  quantity,
	})

	return r.FindByCode(ctx, slotCode)
}

// Transfer applies a confirmed destock: each line decrements its source
// slot and the overflow slot receives the sum, all inside one transaction.
// Distinct slots are locked in ascending code order (the overflow code
// 999999 sorts last) to keep concurrent transfers deadlock-free; lines are
// then applied in input order. Any failure rolls the whole transfer back.
func (r *SlotRepository) Transfer(ctx context.Context, lines []domain.DestockLine) (domain.TransferReceipt, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	sourceCodes := distinctSortedCodes(lines)

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		return domain.TransferReceipt{}, errors.NewDBError("failed to start transaction", err)
	}
	defer tx.Rollback()

	// 1. Lock every source slot.
	slotIDs := make(map[string]string, len(sourceCodes))
	for _, code := range sourceCodes {
		var id string
		err = tx.QueryRowContext(ctxTimeout,
			`SELECT id FROM slots WHERE code = $1 AND kind = $2 FOR UPDATE`,
			code, domain.KindStorage,
		).Scan(&id)
		if err == sql.ErrNoRows {
			return domain.TransferReceipt{}, errors.NewNotFoundError(fmt.Sprintf("slot %s not found", code))
		}
		if err != nil {
			r.logger.Error("failed to lock source slot", err)
			return domain.TransferReceipt{}, errors.NewDBError("failed to lock source slot", err)
		}
		slotIDs[code] = id
	}

	// 2. Lock the overflow slot, creating it lazily if missing.
	var overflowID string
	err = tx.QueryRowContext(ctxTimeout,
		`SELECT id FROM slots WHERE kind = $1 FOR UPDATE`, domain.KindOverflow,
	).Scan(&overflowID)
	if err == sql.ErrNoRows {
		overflow := domain.NewSlot(domain.OverflowCoordinates(), domain.KindOverflow)
		overflowID = uuid.New().String()
		now := time.Now()
		_, err = tx.ExecContext(ctxTimeout, `
            INSERT INTO slots (id, aisle, floor, bay, code, kind, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			overflowID, overflow.Aisle, overflow.Floor, overflow.Bay, overflow.Code, overflow.Kind, now, now,
		)
	}
	if err != nil {
		r.logger.Error("failed to lock overflow slot", err)
		return domain.TransferReceipt{}, errors.NewDBError("failed to lock overflow slot", err)
	}

	// 3. Apply the lines in input order, accumulating overflow deltas.
	overflowDelta := map[string]int{}
	deltaOrder := []string{}
	moved := 0

	for _, line := range lines {
		slotID := slotIDs[line.SlotCode]

		var available int
		err = tx.QueryRowContext(ctxTimeout,
			`SELECT quantity FROM slot_contents WHERE slot_id = $1 AND sample_id = $2`,
			slotID, line.SampleID,
		).Scan(&available)
		if err == sql.ErrNoRows {
			return domain.TransferReceipt{}, errors.NewSampleNotInSlotError(fmt.Sprintf(
				"slot %s holds no sample %s", line.SlotCode, line.SampleID,
			))
		}
		if err != nil {
			r.logger.Error("failed to read source content row", err)
			return domain.TransferReceipt{}, errors.NewDBError("failed to read source content row", err)
		}

		if available < line.Quantity {
			return domain.TransferReceipt{}, errors.NewInsufficientQuantityError(fmt.Sprintf(
				"slot %s holds %d unit(s) of sample %s, %d requested",
				line.SlotCode, available, line.SampleID, line.Quantity,
			))
		}

		// Prune the row the moment it reaches zero.
		if available == line.Quantity {
			_, err = tx.ExecContext(ctxTimeout,
				`DELETE FROM slot_contents WHERE slot_id = $1 AND sample_id = $2`,
				slotID, line.SampleID,
			)
		} else {
			_, err = tx.ExecContext(ctxTimeout,
				`UPDATE slot_contents SET quantity = quantity - $3 WHERE slot_id = $1 AND sample_id = $2`,
				slotID, line.SampleID, line.Quantity,
			)
		}
		if err != nil {
			r.logger.Error("failed to decrement source content row", err)
			return domain.TransferReceipt{}, errors.NewDBError("failed to decrement source content row", err)
		}

		if _, seen := overflowDelta[line.SampleID]; !seen {
			deltaOrder = append(deltaOrder, line.SampleID)
		}
		overflowDelta[line.SampleID] += line.Quantity
		moved += line.Quantity
	}

	// 4. Credit the overflow slot once per sample.
	for _, sampleID := range deltaOrder {
		_, err = tx.ExecContext(ctxTimeout, `
            INSERT INTO slot_contents (slot_id, sample_id, quantity)
            VALUES ($1, $2, $3)
            ON CONFLICT (slot_id, sample_id)
            DO UPDATE SET quantity = slot_contents.quantity + EXCLUDED.quantity`,
			overflowID, sampleID, overflowDelta[sampleID],
		)
		if err != nil {
			r.logger.Error("failed to credit overflow slot", err)
			return domain.TransferReceipt{}, errors.NewDBError("failed to credit overflow slot", err)
		}
	}

	now := time.Now()
	touched := append([]string{overflowID}, mapValues(slotIDs)...)
	if _, err = tx.ExecContext(ctxTimeout,
		`UPDATE slots SET updated_at = $1 WHERE id = ANY($2)`, now, pq.Array(touched),
	); err != nil {
		return domain.TransferReceipt{}, errors.NewDBError("failed to touch transferred slots", err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("failed to commit destock transfer", err)
		return domain.TransferReceipt{}, errors.NewDBError("failed to commit destock transfer", err)
	}

	r.logger.Info("destock transfer applied", map[string]interface{}{
		"moved_quantity": moved,
		"slot_codes":     sourceCodes,
	})

	return domain.TransferReceipt{
		Message:       fmt.Sprintf("%d unit(s) transferred to the overflow slot", moved),
		MovedQuantity: moved,
		SlotCodes:     sourceCodes,
	}, nil
}

// Empty clears a slot's contents. Returns the sample IDs that were held (so
// the caller can cascade-delete orphans) and whether the slot was already
// empty.
func (r *SlotRepository) Empty(ctx context.Context, code string) ([]string, bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		return nil, false, errors.NewDBError("failed to start transaction", err)
	}
	defer tx.Rollback()

	var slotID string
	err = tx.QueryRowContext(ctxTimeout,
		`SELECT id FROM slots WHERE code = $1 FOR UPDATE`, code,
	).Scan(&slotID)
	if err == sql.ErrNoRows {
		return nil, false, errors.NewNotFoundError(fmt.Sprintf("slot %s not found", code))
	}
	if err != nil {
		r.logger.Error("failed to lock slot for emptying", err)
		return nil, false, errors.NewDBError("failed to lock slot for emptying", err)
	}

	rows, err := tx.QueryContext(ctxTimeout,
		`SELECT sample_id FROM slot_contents WHERE slot_id = $1`, slotID,
	)
	if err != nil {
		return nil, false, errors.NewDBError("failed to read slot contents", err)
	}

	sampleIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, false, errors.NewDBError("failed to scan content row", err)
		}
		sampleIDs = append(sampleIDs, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, false, errors.NewDBError("failed to iterate content rows", err)
	}

	// Emptying an already empty slot is a no-op, not an error.
	if len(sampleIDs) == 0 {
		return nil, true, tx.Commit()
	}

	if _, err = tx.ExecContext(ctxTimeout,
		`DELETE FROM slot_contents WHERE slot_id = $1`, slotID,
	); err != nil {
		r.logger.Error("failed to clear slot contents", err)
		return nil, false, errors.NewDBError("failed to clear slot contents", err)
	}

	if _, err = tx.ExecContext(ctxTimeout,
		`UPDATE slots SET updated_at = $1 WHERE id = $2`, time.Now(), slotID,
	); err != nil {
		return nil, false, errors.NewDBError("failed to touch slot", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, errors.NewDBError("failed to commit slot emptying", err)
	}

	r.logger.Info("slot emptied", map[string]interface{}{"code": code, "cleared_samples": len(sampleIDs)})
	return sampleIDs, false, nil
}

// DeleteByCode removes a slot record; its content rows cascade at the
// schema level.
func (r *SlotRepository) DeleteByCode(ctx context.Context, code string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM slots WHERE code = $1`, code)
	if err != nil {
		r.logger.Error("failed to delete slot", err)
		return errors.NewDBError("failed to delete slot", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.NewDBError("failed to check deleted rows", err)
	}
	if affected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("slot %s not found", code))
	}

	r.logger.Info("slot deleted", map[string]interface{}{"code": code})
	return nil
}

// DeleteAllStorage removes every storage slot and returns how many were
// deleted. The overflow slot is never touched.
func (r *SlotRepository) DeleteAllStorage(ctx context.Context) (int, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout,
		`DELETE FROM slots WHERE kind = $1`, domain.KindStorage,
	)
	if err != nil {
		r.logger.Error("failed to bulk-delete storage slots", err)
		return 0, errors.NewDBError("failed to bulk-delete storage slots", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.NewDBError("failed to check deleted rows", err)
	}

	r.logger.Info("storage slots deleted", map[string]interface{}{"count": affected})
	return int(affected), nil
}

// distinctSortedCodes extracts the unique slot codes of the lines in
// ascending order, which is the lock acquisition order.
func distinctSortedCodes(lines []domain.DestockLine) []string {
	seen := map[string]bool{}
	codes := []string{}
	for _, line := range lines {
		if !seen[line.SlotCode] {
			seen[line.SlotCode] = true
			codes = append(codes, line.SlotCode)
		}
	}
	sort.Strings(codes)
	return codes
}

func mapValues(m map[string]string) []string {
	values := make([]string, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}
