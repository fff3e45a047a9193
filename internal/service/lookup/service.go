package lookup

import (
	"context"

	"github.com/darrylcauldwell/workforce-backend-go/internal/domain/lookup"
	"github.com/darrylcauldwell/workforce-backend-go/internal/fixtures"
)

type lookupServiceImpl struct {
	options map[lookup.Kind][]lookup.Option
}

func NewLookupService() lookup.LookupService {
	return &lookupServiceImpl{options: fixtures.DefaultLookupOptions}
}

func (s *lookupServiceImpl) List(ctx context.Context, kind lookup.Kind) ([]lookup.Option, error) {
	options, ok := s.options[kind]
	if !ok {
		return nil, lookup.ErrUnknownKind
	}
	return options, nil
}
