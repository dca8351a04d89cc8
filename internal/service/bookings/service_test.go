package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/booking"
)

type fakeRepo struct {
	byID map[int64]*domain.Booking
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.byID {
		if b.HasItemsOn(date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.byID[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.byID, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCycleStatus(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{
		1: {ID: 1, CustomerName: "Alice", GroupSize: 2, Status: domain.StatusBooked},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.CycleStatus(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCheckedIn), resp.Status)

	resp, err = svc.CycleStatus(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusDone), resp.Status)

	// The cycle wraps around.
	resp, err = svc.CycleStatus(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)
}

func TestCycleStatus_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{byID: map[int64]*domain.Booking{}}, nopLogger{})

	_, err := svc.CycleStatus(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCycleStatus_InvalidStatus(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{
		1: {ID: 1, Status: domain.BookingStatus("Cancelled")},
	}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.CycleStatus(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{
		1: {ID: 1, Status: domain.StatusBooked},
	}}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrBookingNotFound)
}

func TestGetByDate(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{byID: map[int64]*domain.Booking{
		1: {ID: 1, CustomerName: "Alice", Status: domain.StatusBooked, Items: []domain.BookingItem{
			{ActivityID: 10, ResourceIDs: []int64{1}, Date: day, StartTime: "10:00", DurationMinutes: 60},
		}},
		2: {ID: 2, CustomerName: "Bob", Status: domain.StatusBooked, Items: []domain.BookingItem{
			{ActivityID: 10, ResourceIDs: []int64{2}, Date: day.AddDate(0, 0, 1), StartTime: "10:00", DurationMinutes: 60},
		}},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByDate(context.Background(), day)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{byID: map[int64]*domain.Booking{}}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
