// Package repository defines cross-cutting contracts shared by the
// document-store and fixture implementations.
package repository

import "context"

// Atomic runs fn so that every repository write inside it commits or rolls
// back as one unit. The document store implements it with a database
// transaction; the fixture store serializes the block against other atomic
// blocks. Approval side-effects and ticket reorders run through this.
type Atomic interface {
	RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error
}
