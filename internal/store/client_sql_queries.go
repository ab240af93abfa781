// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	sessionTable = "session"
	// sessionRowID pins the table to a single row.
	sessionRowID = 1
)

func loadSessionQuery() (string, []any, error) {
	return sq.Select("token", "user_data", "created_at").
		From(sessionTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

// saveSessionQuery replaces the whole row, so token and user change in one
// statement.
func saveSessionQuery(token, userData string, createdAt int64) (string, []any, error) {
	return sq.Replace(sessionTable).
		Columns("id", "token", "user_data", "created_at").
		Values(sessionRowID, token, userData, createdAt).
		ToSql()
}

func clearSessionQuery() (string, []any, error) {
	return sq.Delete(sessionTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}
