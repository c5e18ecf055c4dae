// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-resin-keeper/models"
)

// psql emits $n placeholders, which both pgx and go-sqlite3 bind
// positionally.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var accountColumns = []string{
	"id", "region", "mihoyo_uid", "cookie", "status", "last_error", "created_at", "updated_at",
}

var accountCharacterColumns = []string{
	"c.uid", "c.account_id", "c.game_biz", "c.server", "c.server_name", "c.nickname",
	"c.level", "c.is_chosen", "c.status", "c.updated_at", "a.region", "a.status",
}

func buildInsertAccountQuery(a models.Account) (string, []any, error) {
	return psql.Insert(models.Account{}.TableName()).
		Columns(accountColumns...).
		Values(a.ID, a.Region, a.MihoyoUID, a.Cookie, a.Status, a.LastError, a.CreatedAt, a.UpdatedAt).
		ToSql()
}

func buildSelectAccountsQuery(where sq.Sqlizer) (string, []any, error) {
	q := psql.Select(accountColumns...).
		From(models.Account{}.TableName()).
		OrderBy("created_at", "id")
	if where != nil {
		q = q.Where(where)
	}
	return q.ToSql()
}

func buildUpdateAccountQuery(a models.Account) (string, []any, error) {
	return psql.Update(models.Account{}.TableName()).
		Set("cookie", a.Cookie).
		Set("status", a.Status).
		Set("last_error", a.LastError).
		Set("updated_at", a.UpdatedAt).
		Where(sq.Eq{"id": a.ID}).
		ToSql()
}

func buildDeleteAccountQuery(id string) (string, []any, error) {
	return psql.Delete(models.Account{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteCharactersQuery(accountID string) (string, []any, error) {
	return psql.Delete(models.Character{}.TableName()).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
}

func buildInsertCharactersQuery(accountID string, characters []models.Character) (string, []any, error) {
	q := psql.Insert(models.Character{}.TableName()).
		Columns("uid", "account_id", "game_biz", "server", "server_name", "nickname", "level", "is_chosen", "status", "updated_at")
	for _, c := range characters {
		q = q.Values(c.UID, accountID, c.GameBiz, c.Server, c.ServerName, c.Nickname, c.Level, c.IsChosen, c.Status, c.UpdatedAt)
	}
	return q.ToSql()
}

func buildUpdateCharacterStatusQuery(uid string, status models.AccountStatus, at time.Time) (string, []any, error) {
	return psql.Update(models.Character{}.TableName()).
		Set("status", status).
		Set("updated_at", at).
		Where(sq.Eq{"uid": uid}).
		ToSql()
}

func buildSelectAccountCharactersQuery(where sq.Sqlizer) (string, []any, error) {
	q := psql.Select(accountCharacterColumns...).
		From(models.Character{}.TableName() + " c").
		Join(models.Account{}.TableName() + " a ON a.id = c.account_id").
		OrderBy("a.created_at", "c.uid")
	if where != nil {
		q = q.Where(where)
	}
	return q.ToSql()
}

const settingsTable = "settings"

func buildSelectSettingQuery(key string) (string, []any, error) {
	return psql.Select("value").
		From(settingsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

// buildUpsertSettingQuery relies on ON CONFLICT, supported by PostgreSQL and
// SQLite >= 3.24.
func buildUpsertSettingQuery(key, value string) (string, []any, error) {
	return psql.Insert(settingsTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value").
		ToSql()
}

func buildDeleteSettingQuery(key string) (string, []any, error) {
	return psql.Delete(settingsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
