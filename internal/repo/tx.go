package repo

import "context"

// TxRunner scopes a function to one storage transaction. Every repository
// call made with the context passed to fn joins that transaction; if fn
// returns an error the transaction is aborted and nothing is visible to
// other callers.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
