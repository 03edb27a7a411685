package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/asset-registry/internal/domain"
)

// existsFunc reports whether an entity with the given id exists.
type existsFunc func(ctx context.Context, id int64) (bool, error)

// resolveReference parses raw as the id of entity and confirms it exists.
// Under ReferencesLenient a bad reference is logged and ok is false with a
// nil error; under ReferencesStrict it fails with a ValidationError or
// NotFoundError. Store failures are returned as-is for the caller to translate.
func resolveReference(
	ctx context.Context,
	policy ReferencePolicy,
	log *slog.Logger,
	field, entity, raw string,
	exists existsFunc,
) (id int64, ok bool, err error) {
	id, err = domain.ParseID(field, raw)
	if err != nil {
		if policy == ReferencesLenient {
			log.Warn("ignoring unparsable reference", "field", field, "value", raw)
			return 0, false, nil
		}
		return 0, false, err
	}

	found, err := exists(ctx, id)
	if err != nil {
		return 0, false, err
	}
	if !found {
		if policy == ReferencesLenient {
			log.Warn("ignoring unresolvable reference", "field", field, "id", id)
			return 0, false, nil
		}
		return 0, false, domain.NewNotFoundError(entity, id)
	}
	return id, true, nil
}
