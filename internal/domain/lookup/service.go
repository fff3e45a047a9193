package lookup

import "context"

type LookupService interface {
	List(ctx context.Context, kind Kind) ([]Option, error)
}
