package hotel

import (
	"context"
	"errors"
	"regexp"

	domainhotel "stayhub/internal/domain/hotel"
)

var objectIDShape = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// Resolve accepts either a storage id or a name-derived slug. An id-shaped
// input is tried as an id first; anything else (or an id miss) falls back to
// the persisted slug, then to a case-insensitive name match for records that
// predate the slug field.
func Resolve(ctx context.Context, repo domainhotel.Repository, idOrSlug string) (*domainhotel.Hotel, error) {
	if objectIDShape.MatchString(idOrSlug) {
		record, err := repo.ByID(ctx, domainhotel.HotelID(idOrSlug))
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, domainhotel.ErrNotFound) {
			return nil, err
		}
	}
	record, err := repo.BySlug(ctx, domainhotel.Slugify(idOrSlug))
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, domainhotel.ErrNotFound) {
		return nil, err
	}
	return repo.ByNameLike(ctx, domainhotel.DisplayNameFromSlug(idOrSlug))
}
