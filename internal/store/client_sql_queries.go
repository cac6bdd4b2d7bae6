// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const localStorageTable = "local_storage"

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func getLocalStorageItem(key string) (string, []any, error) {
	return sqlite.
		Select("value").
		From(localStorageTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func setLocalStorageItem(key, value string, at time.Time) (string, []any, error) {
	return sqlite.
		Insert(localStorageTable).
		Columns("key", "value", "updated_at").
		Values(key, value, at).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func removeLocalStorageItem(key string) (string, []any, error) {
	return sqlite.
		Delete(localStorageTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
