// Package apperr defines the error taxonomy shared by services and
// controllers. Controllers map these onto HTTP status codes with errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPrecondition is returned when reference data is insufficient to
	// satisfy a sampling contract. It indicates a configuration fault, not a
	// client error: seeding checks enforce these bounds at startup.
	ErrPrecondition = errors.New("precondition failed")
)

var (
	// ErrSessionNotFound indicates the requested training session does not exist.
	ErrSessionNotFound = fmt.Errorf("%w: training session", ErrNotFound)

	// ErrNoPassages indicates the reading passage pool is empty.
	ErrNoPassages = fmt.Errorf("%w: reading passage", ErrNotFound)

	// ErrNotEnoughColors indicates fewer than two stroop colors are seeded,
	// which would make the display-color candidate set empty.
	ErrNotEnoughColors = fmt.Errorf("%w: need at least 2 stroop colors", ErrPrecondition)

	// ErrNotEnoughWordLists indicates fewer than three word lists are seeded.
	ErrNotEnoughWordLists = fmt.Errorf("%w: need at least 3 word lists", ErrPrecondition)
)
