package hotel

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	domainhotel "stayhub/internal/domain/hotel"
	"stayhub/internal/seed"
)

type SeedCommand struct{}

type SeedResult struct {
	Count int
}

type SeedHandler struct {
	Hotels domainhotel.Repository
	Logger *slog.Logger
	Now    func() time.Time
}

// Handle replaces every hotel record with the demo dataset. Exposed only on
// the manager surface since it drops existing records.
func (h *SeedHandler) Handle(ctx context.Context, _ SeedCommand) (SeedResult, error) {
	now := time.Now().UTC()
	if h.Now != nil {
		now = h.Now()
	}
	fixtures := seed.Hotels()
	records := make([]*domainhotel.Hotel, 0, len(fixtures))
	for _, params := range fixtures {
		params.ID = domainhotel.HotelID(primitive.NewObjectID().Hex())
		params.Now = now
		record, err := domainhotel.New(params)
		if err != nil {
			return SeedResult{}, fmt.Errorf("seed fixture %q: %w", params.Name, err)
		}
		records = append(records, record)
	}
	count, err := h.Hotels.ReplaceAll(ctx, records)
	if err != nil {
		return SeedResult{}, err
	}
	if h.Logger != nil {
		h.Logger.Info("hotel dataset seeded", "count", count)
	}
	return SeedResult{Count: count}, nil
}
