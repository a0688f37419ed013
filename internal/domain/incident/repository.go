package incident

import (
	"context"
)

// Repository owns the ordered incident collection. Implementations assign
// the record ID on Create (creation instant in unix milliseconds, bumped
// until unique) and persist the whole collection after every mutation.
type Repository interface {
	List(ctx context.Context) ([]Incident, error)
	Get(ctx context.Context, id int64) (*Incident, error)
	Create(ctx context.Context, inc *Incident) (int64, error)
	Update(ctx context.Context, inc *Incident) error
	// Delete reports whether a record was actually removed; deleting an
	// absent id is not an error.
	Delete(ctx context.Context, id int64) (bool, error)
}
