package hotel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"

	"github.com/google/uuid"

	"stayhub/internal/app/policies"
	domainhotel "stayhub/internal/domain/hotel"
)

var ErrImageStoreUnavailable = errors.New("hotel: image store not configured")

type AttachImageCommand struct {
	IDOrSlug    string
	FileName    string
	ContentType string
	Content     io.Reader
}

type AttachImageResult struct {
	URL string
}

type AttachImageHandler struct {
	Hotels domainhotel.Repository
	Images policies.ImageStore
	Logger *slog.Logger
}

// Handle uploads an image for the hotel and appends its public URL to the
// record. The upload replaces the placeholder when it is the only image.
func (h *AttachImageHandler) Handle(ctx context.Context, cmd AttachImageCommand) (AttachImageResult, error) {
	if h.Images == nil {
		return AttachImageResult{}, ErrImageStoreUnavailable
	}
	record, err := Resolve(ctx, h.Hotels, cmd.IDOrSlug)
	if err != nil {
		return AttachImageResult{}, err
	}

	key := fmt.Sprintf("hotels/%s/%s%s", record.ID, uuid.NewString(), path.Ext(cmd.FileName))
	url, err := h.Images.Upload(ctx, key, cmd.Content, cmd.ContentType)
	if err != nil {
		return AttachImageResult{}, fmt.Errorf("upload hotel image: %w", err)
	}

	if len(record.Images) == 1 && record.Images[0] == domainhotel.PlaceholderImageURL {
		record.Images = []string{url}
	} else {
		record.Images = append(record.Images, url)
	}
	if err := h.Hotels.Save(ctx, record); err != nil {
		return AttachImageResult{}, err
	}
	if h.Logger != nil {
		h.Logger.Info("hotel image attached", "hotel_id", record.ID, "url", url)
	}
	return AttachImageResult{URL: url}, nil
}
