package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/models"
)

// accountRepository is the SQL implementation of [AccountRepository].
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *accountRepository) Create(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAccountQuery(account)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		if r.classify(err) == UniqueViolation {
			return ErrAccountAlreadyExists
		}
		log.Err(err).
			Str("func", "accountRepository.Create").
			Str("account_id", account.ID).
			Msg("failed to insert account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *accountRepository) Get(ctx context.Context, id string) (models.Account, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *accountRepository) FindByKey(ctx context.Context, region models.Region, mihoyoUID string) (models.Account, error) {
	return r.findOne(ctx, sq.Eq{"region": region, "mihoyo_uid": mihoyoUID})
}

func (r *accountRepository) List(ctx context.Context) ([]models.Account, error) {
	return r.find(ctx, nil)
}

func (r *accountRepository) Update(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAccountQuery(account)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.Update").
			Str("account_id", account.ID).
			Msg("failed to update account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrAccountNotFound)
}

// Delete removes characters first so that it works even when the SQLite
// connection was opened without foreign keys.
func (r *accountRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	deleteCharacters, charArgs, err := buildDeleteCharactersQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deleteAccount, accArgs, err := buildDeleteAccountQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteCharacters, charArgs...); err != nil {
		log.Err(err).
			Str("func", "accountRepository.Delete").
			Str("account_id", id).
			Msg("failed to delete characters of account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, deleteAccount, accArgs...)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.Delete").
			Str("account_id", id).
			Msg("failed to delete account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if err = expectAffected(result, ErrAccountNotFound); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *accountRepository) findOne(ctx context.Context, where sq.Sqlizer) (models.Account, error) {
	accounts, err := r.find(ctx, where)
	if err != nil {
		return models.Account{}, err
	}
	if len(accounts) == 0 {
		return models.Account{}, ErrAccountNotFound
	}
	return accounts[0], nil
}

func (r *accountRepository) find(ctx context.Context, where sq.Sqlizer) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountsQuery(where)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.find").
			Msg("failed to query accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0, 4)
	for rows.Next() {
		var a models.Account
		if err = rows.Scan(&a.ID, &a.Region, &a.MihoyoUID, &a.Cookie, &a.Status, &a.LastError, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		accounts = append(accounts, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}

// expectAffected turns "zero rows touched" into notFound.
func expectAffected(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

