package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/models"
)

// characterRepository is the SQL implementation of [CharacterRepository].
type characterRepository struct {
	*DB
	logger *logger.Logger
}

// NewCharacterRepository constructs a [CharacterRepository] backed by db.
func NewCharacterRepository(db *DB, logger *logger.Logger) CharacterRepository {
	return &characterRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *characterRepository) ReplaceForAccount(ctx context.Context, accountID string, characters []models.Character) error {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := buildDeleteCharactersQuery(accountID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "characterRepository.ReplaceForAccount").
			Str("account_id", accountID).
			Msg("failed to delete old characters")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(characters) > 0 {
		insertQuery, insertArgs, err := buildInsertCharactersQuery(accountID, characters)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			if r.classify(err) == UniqueViolation {
				return ErrCharacterOwnedElsewhere
			}
			log.Err(err).
				Str("func", "characterRepository.ReplaceForAccount").
				Str("account_id", accountID).
				Int("characters", len(characters)).
				Msg("failed to insert characters")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *characterRepository) UpdateStatus(ctx context.Context, uid string, status models.AccountStatus, at time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCharacterStatusQuery(uid, status, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "characterRepository.UpdateStatus").
			Str("uid", uid).
			Msg("failed to update character status")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrCharacterNotFound)
}

func (r *characterRepository) Get(ctx context.Context, uid string) (models.AccountCharacter, error) {
	characters, err := r.find(ctx, sq.Eq{"c.uid": uid})
	if err != nil {
		return models.AccountCharacter{}, err
	}
	if len(characters) == 0 {
		return models.AccountCharacter{}, ErrCharacterNotFound
	}
	return characters[0], nil
}

func (r *characterRepository) List(ctx context.Context) ([]models.AccountCharacter, error) {
	return r.find(ctx, nil)
}

func (r *characterRepository) find(ctx context.Context, where sq.Sqlizer) ([]models.AccountCharacter, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountCharactersQuery(where)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "characterRepository.find").
			Msg("failed to query characters")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	characters := make([]models.AccountCharacter, 0, 4)
	for rows.Next() {
		var c models.AccountCharacter
		if err = rows.Scan(
			&c.UID,
			&c.AccountID,
			&c.GameBiz,
			&c.Server,
			&c.ServerName,
			&c.Nickname,
			&c.Level,
			&c.IsChosen,
			&c.Status,
			&c.UpdatedAt,
			&c.Region,
			&c.AccountStatus,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		characters = append(characters, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return characters, nil
}
