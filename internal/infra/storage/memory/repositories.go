// Package memory provides in-process repository implementations used in
// demo mode and by tests. Mutation happens under a mutex, so the
// availability reserve is a true conditional decrement.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	domainbooking "stayhub/internal/domain/booking"
	domainhotel "stayhub/internal/domain/hotel"
)

type HotelRepository struct {
	mu    sync.RWMutex
	items map[domainhotel.HotelID]*domainhotel.Hotel
}

func NewHotelRepository() *HotelRepository {
	return &HotelRepository{items: make(map[domainhotel.HotelID]*domainhotel.Hotel)}
}

func (r *HotelRepository) ByID(ctx context.Context, id domainhotel.HotelID) (*domainhotel.Hotel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.items[id]
	if !ok {
		return nil, domainhotel.ErrNotFound
	}
	return record.Clone(), nil
}

func (r *HotelRepository) BySlug(ctx context.Context, slug string) (*domainhotel.Hotel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, record := range r.items {
		if record.Slug == slug {
			return record.Clone(), nil
		}
	}
	return nil, domainhotel.ErrNotFound
}

func (r *HotelRepository) ByNameLike(ctx context.Context, name string) (*domainhotel.Hotel, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil, domainhotel.ErrNotFound
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, record := range r.items {
		if strings.Contains(strings.ToLower(record.Name), needle) {
			return record.Clone(), nil
		}
	}
	return nil, domainhotel.ErrNotFound
}

func (r *HotelRepository) List(ctx context.Context, filter domainhotel.Filter) ([]*domainhotel.Hotel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := make([]*domainhotel.Hotel, 0, len(r.items))
	for _, record := range r.items {
		if filter.Matches(record) {
			matches = append(matches, record.Clone())
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Rating == matches[j].Rating {
			return matches[i].Name < matches[j].Name
		}
		return matches[i].Rating > matches[j].Rating
	})
	return matches, nil
}

func (r *HotelRepository) Save(ctx context.Context, record *domainhotel.Hotel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[record.ID] = record.Clone()
	return nil
}

func (r *HotelRepository) Delete(ctx context.Context, id domainhotel.HotelID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domainhotel.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *HotelRepository) ReplaceAll(ctx context.Context, records []*domainhotel.Hotel) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[domainhotel.HotelID]*domainhotel.Hotel, len(records))
	for _, record := range records {
		r.items[record.ID] = record.Clone()
	}
	return len(records), nil
}

func (r *HotelRepository) Reserve(ctx context.Context, id domainhotel.HotelID, roomType string, rooms int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.items[id]
	if !ok {
		return domainhotel.ErrNotFound
	}
	return record.Reserve(roomType, rooms)
}

func (r *HotelRepository) Restock(ctx context.Context, id domainhotel.HotelID, roomType string, rooms int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.items[id]
	if !ok {
		return domainhotel.ErrNotFound
	}
	return record.Restock(roomType, rooms)
}

var _ domainhotel.Repository = (*HotelRepository)(nil)

type BookingRepository struct {
	mu    sync.RWMutex
	items map[domainbooking.BookingID]*domainbooking.Booking
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{items: make(map[domainbooking.BookingID]*domainbooking.Booking)}
}

func (r *BookingRepository) ByID(ctx context.Context, id domainbooking.BookingID) (*domainbooking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.items[id]
	if !ok {
		return nil, domainbooking.ErrNotFound
	}
	return record.Clone(), nil
}

func (r *BookingRepository) Insert(ctx context.Context, b *domainbooking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[b.ID] = b.Clone()
	return nil
}

func (r *BookingRepository) Save(ctx context.Context, b *domainbooking.Booking, from domainbooking.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.items[b.ID]
	if !ok {
		return domainbooking.ErrNotFound
	}
	if current.Status != from {
		return domainbooking.ErrStatusConflict
	}
	r.items[b.ID] = b.Clone()
	return nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domainbooking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := make([]*domainbooking.Booking, 0)
	for _, record := range r.items {
		if record.UserID == userID {
			matches = append(matches, record.Clone())
		}
	}
	sortByRecency(matches)
	return matches, nil
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]*domainbooking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := make([]*domainbooking.Booking, 0, len(r.items))
	for _, record := range r.items {
		matches = append(matches, record.Clone())
	}
	sortByRecency(matches)
	return matches, nil
}

func sortByRecency(records []*domainbooking.Booking) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].ID > records[j].ID
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
}

var _ domainbooking.Repository = (*BookingRepository)(nil)
