package domain

import "context"

// Stage is one step of the pack pipeline.
type Stage struct {
	Name         string
	Dependencies []string
	Run          func(ctx context.Context) error
}
