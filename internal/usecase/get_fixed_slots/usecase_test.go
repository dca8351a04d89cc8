package get_fixed_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	areaRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/area"
	catalogRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-VenueService/pkg/types"
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
	area *domain.Area
}

func (f *fakeAreaRepo) GetByID(_ context.Context, id int64) (*domain.Area, error) {
	if f.area == nil || f.area.ID != id {
		return nil, areaRepo.ErrAreaNotFound
	}
	return f.area, nil
}

type fakeCatalogRepo struct {
	activities map[int64]*domain.Activity
	resources  map[int64]*domain.Resource
}

func (f *fakeCatalogRepo) GetActivity(_ context.Context, id int64) (*domain.Activity, error) {
	a, ok := f.activities[id]
	if !ok {
		return nil, catalogRepo.ErrActivityNotFound
	}
	return a, nil
}

func (f *fakeCatalogRepo) GetResource(_ context.Context, id int64) (*domain.Resource, error) {
	r, ok := f.resources[id]
	if !ok {
		return nil, catalogRepo.ErrResourceNotFound
	}
	return r, nil
}

func (f *fakeCatalogRepo) ListResourceLinks(_ context.Context) (domain.ResourceLinks, error) {
	return nil, nil
}

type fakeScheduleRepo struct {
	closure  *domain.Closure
	override *domain.ScheduleOverride
}

func (f *fakeScheduleRepo) GetClosureByDate(_ context.Context, _ time.Time) (*domain.Closure, error) {
	if f.closure == nil {
		return nil, scheduleRepo.ErrClosureNotFound
	}
	return f.closure, nil
}

func (f *fakeScheduleRepo) GetOverride(_ context.Context, _ int64, _ time.Time) (*domain.ScheduleOverride, error) {
	if f.override == nil {
		return nil, scheduleRepo.ErrOverrideNotFound
	}
	return f.override, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	bookings *fakeBookingRepo
	blocks   *fakeBlockRepo
	schedule *fakeScheduleRepo
	uc       *UseCase
}

func newFixture() *fixture {
	bookings := &fakeBookingRepo{}
	blocks := &fakeBlockRepo{}
	schedule := &fakeScheduleRepo{}

	areas := &fakeAreaRepo{area: &domain.Area{
		ID:   1,
		Name: "Escape Rooms",
		Schedule: []domain.DaySchedule{{
			Day:    "Monday",
			IsOpen: true,
			StaffBlocks: []domain.StaffBlock{
				{Start: "10:00", End: "22:00", Count: 2},
			},
			FixedTimeSlots: []types.TimeString{"10:00", "12:00", "14:00"},
		}},
	}}

	catalog := &fakeCatalogRepo{
		activities: map[int64]*domain.Activity{
			11: {ID: 11, Name: "Escape Room", Type: domain.ActivityFixedTime, AreaID: 1, Price: 50},
			10: {ID: 10, Name: "Bowling", Type: domain.ActivityFlexiTime, AreaID: 1, Price: 20},
		},
		resources: map[int64]*domain.Resource{
			3: {ID: 3, ActivityID: 11, Name: "Room A"},
			1: {ID: 1, ActivityID: 10, Name: "Lane 1"},
		},
	}

	uc := NewUseCase(bookings, blocks, areas, catalog, schedule, domain.DefaultActivityTiming(), nopLogger{})
	return &fixture{bookings: bookings, blocks: blocks, schedule: schedule, uc: uc}
}

func TestExecute_SlotsFromWeeklySchedule(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{ResourceID: 3, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.ResourceID)
	assert.Equal(t, "2026-03-02", resp.Date)
	assert.Equal(t, []string{"10:00", "12:00", "14:00"}, resp.Slots)
}

func TestExecute_OverrideTakesPrecedence(t *testing.T) {
	f := newFixture()
	f.schedule.override = &domain.ScheduleOverride{
		ResourceID:     3,
		Date:           testDate,
		FixedTimeSlots: []types.TimeString{"11:00", "15:00"},
	}

	resp, err := f.uc.Execute(context.Background(), &Request{ResourceID: 3, Date: testDate})
	require.NoError(t, err)
	assert.Equal(t, []string{"11:00", "15:00"}, resp.Slots)
}

func TestExecute_BusySlotsFiltered(t *testing.T) {
	f := newFixture()
	f.bookings.bookings = []*domain.Booking{{
		ID:     1,
		Status: domain.StatusBooked,
		Items: []domain.BookingItem{{
			ActivityID:      11,
			ResourceIDs:     []int64{3},
			Date:            testDate,
			StartTime:       "12:00",
			DurationMinutes: 60,
		}},
	}}

	resp, err := f.uc.Execute(context.Background(), &Request{ResourceID: 3, Date: testDate})
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "14:00"}, resp.Slots)
}

func TestExecute_ClosedDateHasNoSlots(t *testing.T) {
	f := newFixture()
	f.schedule.closure = &domain.Closure{ID: 1, Date: testDate}

	resp, err := f.uc.Execute(context.Background(), &Request{ResourceID: 3, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ClosedWeekdayHasNoSlots(t *testing.T) {
	f := newFixture()

	// Tuesday has no schedule record, so the area counts as closed.
	tuesday := testDate.AddDate(0, 0, 1)
	resp, err := f.uc.Execute(context.Background(), &Request{ResourceID: 3, Date: tuesday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_FlexiResourceRejected(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{ResourceID: 1, Date: testDate})
	assert.ErrorIs(t, err, ErrNotFixedTime)
}

func TestExecute_ResourceNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{ResourceID: 99, Date: testDate})
	assert.ErrorIs(t, err, ErrResourceNotFound)
}
