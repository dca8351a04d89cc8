package get_unavailable_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/schedule"
)

var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeBlockRepo struct {
	blocks []*domain.Block
}

func (f *fakeBlockRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Block, error) {
	return f.blocks, nil
}

type fakeAreaRepo struct {
	areas []*domain.Area
}

func (f *fakeAreaRepo) List(_ context.Context) ([]*domain.Area, error) {
	return f.areas, nil
}

type fakeCatalogRepo struct {
	activities []*domain.Activity
	resources  []*domain.Resource
	links      domain.ResourceLinks
}

func (f *fakeCatalogRepo) ListActivities(_ context.Context) ([]*domain.Activity, error) {
	return f.activities, nil
}

func (f *fakeCatalogRepo) ListResources(_ context.Context) ([]*domain.Resource, error) {
	return f.resources, nil
}

func (f *fakeCatalogRepo) ListResourceLinks(_ context.Context) (domain.ResourceLinks, error) {
	return f.links, nil
}

type fakeScheduleRepo struct {
	closure *domain.Closure
}

func (f *fakeScheduleRepo) GetClosureByDate(_ context.Context, _ time.Time) (*domain.Closure, error) {
	if f.closure == nil {
		return nil, scheduleRepo.ErrClosureNotFound
	}
	return f.closure, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testGrid() domain.ScheduleGrid {
	return domain.ScheduleGrid{OpenTime: "10:00", CloseTime: "14:00", StepMinutes: 15}
}

func newUseCase(bookings *fakeBookingRepo, blocks *fakeBlockRepo, schedule *fakeScheduleRepo) *UseCase {
	areas := &fakeAreaRepo{areas: []*domain.Area{{
		ID:   1,
		Name: "Bowling",
		Schedule: []domain.DaySchedule{{
			Day:    "Monday",
			IsOpen: true,
			StaffBlocks: []domain.StaffBlock{
				{Start: "10:00", End: "14:00", Count: 1},
			},
		}},
	}}}

	catalog := &fakeCatalogRepo{
		activities: []*domain.Activity{
			{ID: 10, Name: "Bowling", Type: domain.ActivityFlexiTime, AreaID: 1, Price: 20},
		},
		resources: []*domain.Resource{
			{ID: 1, ActivityID: 10, Name: "Lane 1"},
			{ID: 2, ActivityID: 10, Name: "Lane 2"},
		},
	}

	return NewUseCase(bookings, blocks, areas, catalog, schedule, testGrid(), nopLogger{})
}

func TestExecute_NoOccupancy(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, &fakeScheduleRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", resp.Date)
	assert.Empty(t, resp.Slots)
}

func TestExecute_CapacityExhaustedMarksOtherLane(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{{
		ID:     1,
		Status: domain.StatusBooked,
		Items: []domain.BookingItem{{
			ActivityID:      10,
			ResourceIDs:     []int64{1},
			Date:            testDate,
			StartTime:       "10:00",
			DurationMinutes: 60,
		}},
	}}}
	uc := newUseCase(bookings, &fakeBlockRepo{}, &fakeScheduleRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, int64(2), resp.Slots[0].ResourceID)
	assert.Equal(t, "10:00", resp.Slots[0].StartTime)
	assert.Equal(t, 60, resp.Slots[0].DurationMinutes)
}

func TestExecute_ClosureMarksEverything(t *testing.T) {
	schedule := &fakeScheduleRepo{closure: &domain.Closure{ID: 1, Date: testDate}}
	uc := newUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, schedule)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	for _, slot := range resp.Slots {
		assert.Equal(t, "10:00", slot.StartTime)
		assert.Equal(t, 240, slot.DurationMinutes)
	}
}

func TestExecute_RequiresDate(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, &fakeScheduleRepo{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
