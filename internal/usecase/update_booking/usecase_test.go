package update_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/booking"
)

var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday

type fakeBookingRepo struct {
	byID    map[int64]*domain.Booking
	updated *domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.byID {
		if b.HasItemsOn(date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if _, ok := f.byID[booking.ID]; !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	updated := *booking
	updated.UpdatedAt = time.Now()
	f.updated = &updated
	return &updated, nil
}

type fakeBlockRepo struct{}

func (fakeBlockRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Block, error) {
	return nil, nil
}

type fakeAreaRepo struct{}

func (fakeAreaRepo) List(_ context.Context) ([]*domain.Area, error) {
	return []*domain.Area{{
		ID:   1,
		Name: "Bowling",
		Schedule: []domain.DaySchedule{{
			Day:    "Monday",
			IsOpen: true,
			StaffBlocks: []domain.StaffBlock{
				{Start: "10:00", End: "22:00", Count: 1},
			},
		}},
	}}, nil
}

type fakeCatalogRepo struct{}

func (fakeCatalogRepo) ListActivities(_ context.Context) ([]*domain.Activity, error) {
	return []*domain.Activity{
		{ID: 10, Name: "Bowling", Type: domain.ActivityFlexiTime, AreaID: 1, Price: 20},
	}, nil
}

func (fakeCatalogRepo) ListResources(_ context.Context) ([]*domain.Resource, error) {
	return []*domain.Resource{
		{ID: 1, ActivityID: 10, Name: "Lane 1"},
		{ID: 2, ActivityID: 10, Name: "Lane 2"},
	}, nil
}

func (fakeCatalogRepo) ListResourceLinks(_ context.Context) (domain.ResourceLinks, error) {
	return nil, nil
}

type fakeScheduleRepo struct{}

func (fakeScheduleRepo) ListClosures(_ context.Context) ([]*domain.Closure, error) {
	return nil, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func existingBooking() *domain.Booking {
	return &domain.Booking{
		ID:           42,
		CustomerName: "Alice",
		GroupSize:    4,
		Status:       domain.StatusCheckedIn,
		TotalPrice:   20,
		Items: []domain.BookingItem{{
			ActivityID:      10,
			ResourceIDs:     []int64{1},
			Date:            testDate,
			StartTime:       "10:00",
			DurationMinutes: 60,
		}},
	}
}

func newUseCase(bookings *fakeBookingRepo) *UseCase {
	return NewUseCase(bookings, fakeBlockRepo{}, fakeAreaRepo{}, fakeCatalogRepo{}, fakeScheduleRepo{}, fakeTxManager{}, domain.DefaultActivityTiming(), nopLogger{})
}

func TestExecute_UnchangedBookingRevalidatesCleanly(t *testing.T) {
	bookings := &fakeBookingRepo{byID: map[int64]*domain.Booking{42: existingBooking()}}
	uc := newUseCase(bookings)

	// Saving the booking as-is must not conflict with itself even though
	// the staff capacity is 1 and its own items fill it.
	req := &Request{
		BookingID:    42,
		CustomerName: "Alice",
		GroupSize:    4,
		Items: []ItemRequest{{
			ActivityID:      10,
			ResourceIDs:     []int64{1},
			Date:            testDate,
			StartTime:       "10:00",
			DurationMinutes: 60,
		}},
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusCheckedIn), resp.Status, "status survives the edit")
}

func TestExecute_MoveConflictsWithOtherBooking(t *testing.T) {
	other := &domain.Booking{
		ID:     7,
		Status: domain.StatusBooked,
		Items: []domain.BookingItem{{
			ActivityID:      10,
			ResourceIDs:     []int64{2},
			Date:            testDate,
			StartTime:       "12:00",
			DurationMinutes: 60,
		}},
	}
	bookings := &fakeBookingRepo{byID: map[int64]*domain.Booking{42: existingBooking(), 7: other}}
	uc := newUseCase(bookings)

	req := &Request{
		BookingID:    42,
		CustomerName: "Alice",
		GroupSize:    4,
		Items: []ItemRequest{{
			ActivityID:      10,
			ResourceIDs:     []int64{2},
			Date:            testDate,
			StartTime:       "12:30",
			DurationMinutes: 60,
		}},
	}

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrResourceDoubleBooked))
	assert.Nil(t, bookings.updated)
}

func TestExecute_ItemsReplacedAndPriceRecomputed(t *testing.T) {
	bookings := &fakeBookingRepo{byID: map[int64]*domain.Booking{42: existingBooking()}}
	uc := newUseCase(bookings)

	req := &Request{
		BookingID:    42,
		CustomerName: "Alice",
		GroupSize:    6,
		Items: []ItemRequest{
			{ActivityID: 10, ResourceIDs: []int64{1}, Date: testDate, StartTime: "10:00", DurationMinutes: 60},
			{ActivityID: 10, ResourceIDs: []int64{2}, Date: testDate, StartTime: "10:00", DurationMinutes: 60},
		},
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 6, resp.GroupSize)
	// Two bowling hours at 80 per person each, for six people.
	assert.Equal(t, 960.0, resp.TotalPrice)
	assert.Len(t, resp.Items, 2)
}

func TestExecute_BookingNotFound(t *testing.T) {
	bookings := &fakeBookingRepo{byID: map[int64]*domain.Booking{}}
	uc := newUseCase(bookings)

	req := &Request{
		BookingID:    99,
		CustomerName: "Alice",
		Items: []ItemRequest{{
			ActivityID:      10,
			ResourceIDs:     []int64{1},
			Date:            testDate,
			StartTime:       "10:00",
			DurationMinutes: 60,
		}},
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
