// Package api declares HTTP contracts and route registration helpers.
package api

import "fmt"

// Op-tagged error helpers. Handlers tag errors with the operation that
// produced them so log lines and error bodies can be traced back.

// NewKind returns kind tagged with op.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// WrapKind returns err wrapped in kind, tagged with op.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}

// Wrap returns err tagged with op.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
