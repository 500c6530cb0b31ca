package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mplarena/registration_service/internal/domain"
	"github.com/mplarena/registration_service/internal/helper"
)

type PlayerRepository interface {
	Create(player *domain.Player) error
	FindByID(id uint) (*domain.Player, error)

	// FindDuplicateKey reports the first submitted identity/payment key
	// already held by any player, checked as voter_id, aadhaar_number,
	// txn_id in that order. "" means no collision.
	FindDuplicateKey(voterID, aadhaarNumber, txnID string) (string, error)

	ListByStatus(status domain.PlayerStatus) ([]domain.Player, error)

	Approve(id uint) error
	Reject(id uint, reason string) error
	Delete(id uint) error
}

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(player *domain.Player) error {
	player.Status = domain.PlayerStatusPending

	if err := r.db.Create(player).Error; err != nil {
		// The unique indexes are the authoritative duplicate check; a
		// race lost here surfaces as a constraint violation, not as a
		// silently overwritten row.
		if key := helper.DuplicateKey(err); key != "" {
			return &domain.DuplicateKeyError{Key: key}
		}
		return &domain.PersistenceError{Op: "create player", Err: err}
	}
	return nil
}

func (r *playerRepository) FindByID(id uint) (*domain.Player, error) {
	var player domain.Player
	err := r.db.First(&player, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, &domain.PersistenceError{Op: "find player", Err: err}
	}
	return &player, nil
}

func (r *playerRepository) FindDuplicateKey(voterID, aadhaarNumber, txnID string) (string, error) {
	checks := []struct {
		key    string
		column string
		value  string
	}{
		{"voter_id", "voter_id", voterID},
		{"aadhaar_number", "aadhaar_number", aadhaarNumber},
		{"txn_id", "txn_id", txnID},
	}

	for _, c := range checks {
		var count int64
		err := r.db.Model(&domain.Player{}).
			Where(c.column+" = ?", c.value).
			Count(&count).Error
		if err != nil {
			return "", &domain.PersistenceError{Op: "check duplicate " + c.key, Err: err}
		}
		if count > 0 {
			return c.key, nil
		}
	}
	return "", nil
}

// ListByStatus returns players oldest-first so moderation and public
// lists read as an audit trail in insertion order.
func (r *playerRepository) ListByStatus(status domain.PlayerStatus) ([]domain.Player, error) {
	var players []domain.Player
	err := r.db.
		Where("status = ?", status).
		Order("id ASC").
		Find(&players).Error
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list players", Err: err}
	}
	return players, nil
}

func (r *playerRepository) Approve(id uint) error {
	return r.transition(id, map[string]any{
		"status": domain.PlayerStatusApproved,
	})
}

func (r *playerRepository) Reject(id uint, reason string) error {
	return r.transition(id, map[string]any{
		"status":           domain.PlayerStatusRejected,
		"rejection_reason": reason,
	})
}

// transition performs the single legal status move Pending -> terminal.
// The conditional UPDATE serializes concurrent decisions on the same id:
// the first writer flips the row, the second sees zero rows affected.
func (r *playerRepository) transition(id uint, updates map[string]any) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Player{}).
			Where("id = ? AND status = ?", id, domain.PlayerStatusPending).
			Updates(updates)
		if res.Error != nil {
			return &domain.PersistenceError{Op: "update player status", Err: res.Error}
		}
		if res.RowsAffected == 0 {
			return r.notPendingErr(tx, id)
		}
		return nil
	})
}

// Delete is restricted to Pending players. Approved and Rejected rows are
// retained as the audit trail and cannot be removed here. The row is
// removed outright (Player carries no DeletedAt), so a deleted player's
// voter_id/aadhaar_number/txn_id can be registered again.
func (r *playerRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("id = ? AND status = ?", id, domain.PlayerStatusPending).
			Delete(&domain.Player{})
		if res.Error != nil {
			return &domain.PersistenceError{Op: "delete player", Err: res.Error}
		}
		if res.RowsAffected == 0 {
			return r.notPendingErr(tx, id)
		}
		return nil
	})
}

// notPendingErr tells a missing row apart from one already decided.
func (r *playerRepository) notPendingErr(tx *gorm.DB, id uint) error {
	var player domain.Player
	err := tx.Select("id").First(&player, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrPlayerNotFound
	}
	if err != nil {
		return &domain.PersistenceError{Op: "find player", Err: err}
	}
	return domain.ErrInvalidTransition
}
