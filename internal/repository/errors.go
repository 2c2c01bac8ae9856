package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound signals that the requested row does not exist.
var ErrNotFound = errors.New("record not found")

func translateNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
