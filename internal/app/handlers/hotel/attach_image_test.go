package hotel

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainhotel "stayhub/internal/domain/hotel"
	"stayhub/internal/infra/storage/memory"
)

type fakeImageStore struct {
	keys []string
}

func (s *fakeImageStore) Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
	s.keys = append(s.keys, key)
	return "https://cdn.example.com/" + key, nil
}

func TestAttachImage_ReplacesPlaceholder(t *testing.T) {
	hotels := memory.NewHotelRepository()
	adder := &Handler{Hotels: hotels, Now: func() time.Time { return testNow }}
	id := addTestHotel(t, adder, "The Grand Palace")

	store := &fakeImageStore{}
	handler := &AttachImageHandler{Hotels: hotels, Images: store}

	result, err := handler.Handle(context.Background(), AttachImageCommand{
		IDOrSlug:    id,
		FileName:    "front.jpg",
		ContentType: "image/jpeg",
		Content:     strings.NewReader("jpeg-bytes"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(result.URL, ".jpg"), result.URL)
	require.Len(t, store.keys, 1)
	assert.True(t, strings.HasPrefix(store.keys[0], "hotels/"+id+"/"), store.keys[0])

	stored, err := hotels.ByID(context.Background(), domainhotel.HotelID(id))
	require.NoError(t, err)
	// The placeholder is dropped when the first real image arrives.
	require.Len(t, stored.Images, 1)
	assert.Equal(t, result.URL, stored.Images[0])

	second, err := handler.Handle(context.Background(), AttachImageCommand{
		IDOrSlug:    "the-grand-palace",
		FileName:    "pool.png",
		ContentType: "image/png",
		Content:     strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)

	stored, err = hotels.ByID(context.Background(), domainhotel.HotelID(id))
	require.NoError(t, err)
	require.Len(t, stored.Images, 2)
	assert.Equal(t, second.URL, stored.Images[1])
}

func TestAttachImage_WithoutStore(t *testing.T) {
	handler := &AttachImageHandler{Hotels: memory.NewHotelRepository()}
	_, err := handler.Handle(context.Background(), AttachImageCommand{IDOrSlug: "any"})
	assert.ErrorIs(t, err, ErrImageStoreUnavailable)
}

func TestAttachImage_HotelNotFound(t *testing.T) {
	handler := &AttachImageHandler{
		Hotels: memory.NewHotelRepository(),
		Images: &fakeImageStore{},
	}
	_, err := handler.Handle(context.Background(), AttachImageCommand{IDOrSlug: "missing"})
	assert.ErrorIs(t, err, domainhotel.ErrNotFound)
}
