package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/ptr"
)

var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday

type fakeBookingRepo struct {
	bookings []*domain.Booking
	created  *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created := *booking
	created.ID = 100
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.HasItemsOn(date) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeBlockRepo struct {
	blocks []*domain.Block
}

func (f *fakeBlockRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Block, error) {
	var out []*domain.Block
	for _, b := range f.blocks {
		if b.OnDate(date) {
			out = append(out, b)
		}
	}
	return out, nil
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
	closures []*domain.Closure
}

func (f *fakeScheduleRepo) ListClosures(_ context.Context) ([]*domain.Closure, error) {
	return f.closures, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

	areas := &fakeAreaRepo{areas: []*domain.Area{{
		ID:   1,
		Name: "Bowling",
		Schedule: []domain.DaySchedule{{
			Day:    "Monday",
			IsOpen: true,
			StaffBlocks: []domain.StaffBlock{
				{Start: "10:00", End: "22:00", Count: 1},
			},
		}},
	}}}

	catalog := &fakeCatalogRepo{
		activities: []*domain.Activity{
			{ID: 10, Name: "Bowling", Type: domain.ActivityFlexiTime, AreaID: 1, Price: 20},
			{ID: 11, Name: "Escape Room", Type: domain.ActivityFixedTime, AreaID: 1, Price: 50},
		},
		resources: []*domain.Resource{
			{ID: 1, ActivityID: 10, Name: "Lane 1"},
			{ID: 2, ActivityID: 10, Name: "Lane 2"},
			{ID: 3, ActivityID: 11, Name: "Room A"},
		},
	}

	uc := NewUseCase(bookings, blocks, areas, catalog, schedule, fakeTxManager{}, domain.DefaultActivityTiming(), nopLogger{})
	return &fixture{bookings: bookings, blocks: blocks, schedule: schedule, uc: uc}
}

func validRequest() *Request {
	return &Request{
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
}

func TestExecute_CreatesBooking(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "Alice", resp.CustomerName)
	assert.Equal(t, 4, resp.GroupSize)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)
	// One hour of bowling is four flexi steps at 20 each, for four people.
	assert.Equal(t, 320.0, resp.TotalPrice)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "2026-03-02", resp.Items[0].Date)
	assert.Equal(t, "10:00", resp.Items[0].StartTime)
}

func TestExecute_OptionalFieldsPassedThrough(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.CustomerID = ptr.Ptr(int64(5))
	req.Notes = ptr.Ptr("birthday party")

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, resp.CustomerID)
	assert.Equal(t, int64(5), *resp.CustomerID)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "birthday party", *resp.Notes)
}

func TestExecute_WalkInDefaults(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.CustomerName = ""
	req.GroupSize = 0

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.WalkInCustomerName, resp.CustomerName)
	assert.Equal(t, domain.MinGroupSize, resp.GroupSize)
	// Price uses the defaulted group size of one.
	assert.Equal(t, 80.0, resp.TotalPrice)
}

func TestExecute_FixedTimeDurationDefaulted(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Items[0].ActivityID = 11
	req.Items[0].ResourceIDs = []int64{3}
	req.Items[0].DurationMinutes = 0

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.FixedSlotDurationMinutes, resp.Items[0].DurationMinutes)
	// Fixed time is a flat 50 per person regardless of duration.
	assert.Equal(t, 200.0, resp.TotalPrice)
}

func TestExecute_TotalPriceSumsItems(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Items = append(req.Items, ItemRequest{
		ActivityID:  11,
		ResourceIDs: []int64{3},
		Date:        testDate,
		StartTime:   "12:00",
	})

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	// (80 for the bowling hour + 50 flat for the escape room) x 4 people.
	assert.Equal(t, 520.0, resp.TotalPrice)
}

func TestExecute_FlexiPricePerStep(t *testing.T) {
	f := newFixture()

	// A 60-minute flexi item at price 20 per 15-minute step costs 80 for a
	// single person, not the flat activity price.
	req := validRequest()
	req.GroupSize = 1

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 80.0, resp.TotalPrice)

	// Shortening the same item to one step drops the price to 20.
	f = newFixture()
	req = validRequest()
	req.GroupSize = 1
	req.Items[0].DurationMinutes = 15

	resp, err = f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 20.0, resp.TotalPrice)
}

func TestExecute_ConflictOnDoubleBooking(t *testing.T) {
	f := newFixture()
	f.bookings.bookings = []*domain.Booking{{
		ID:     1,
		Status: domain.StatusBooked,
		Items: []domain.BookingItem{{
			ActivityID:      10,
			ResourceIDs:     []int64{1},
			Date:            testDate,
			StartTime:       "10:30",
			DurationMinutes: 60,
		}},
	}}

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrResourceDoubleBooked))
	assert.Nil(t, f.bookings.created)
}

func TestExecute_ConflictOnClosure(t *testing.T) {
	f := newFixture()
	f.schedule.closures = []*domain.Closure{{ID: 1, Date: testDate}}

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrVenueClosed))
}

func TestExecute_ConflictOnCapacity(t *testing.T) {
	f := newFixture()
	f.bookings.bookings = []*domain.Booking{{
		ID:     1,
		Status: domain.StatusBooked,
		Items: []domain.BookingItem{{
			ActivityID:      10,
			ResourceIDs:     []int64{2},
			Date:            testDate,
			StartTime:       "10:00",
			DurationMinutes: 60,
		}},
	}}

	// Lane 1 is free but the area's single staff unit is already consumed
	// by lane 2.
	_, err := f.uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStaffCapacityExceeded))
}

func TestExecute_ActivityNotFound(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Items[0].ActivityID = 999

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestExecute_ResourceActivityMismatch(t *testing.T) {
	f := newFixture()

	// Resource 3 belongs to the escape room activity, not bowling.
	req := validRequest()
	req.Items[0].ResourceIDs = []int64{3}

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrResourceActivityMismatch)
}

func TestExecute_InvalidDuration(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Items[0].DurationMinutes = 20

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture()

	cases := map[string]func(*Request){
		"no items":            func(r *Request) { r.Items = nil },
		"group too large":     func(r *Request) { r.GroupSize = domain.MaxGroupSize + 1 },
		"negative group":      func(r *Request) { r.GroupSize = -1 },
		"missing start time":  func(r *Request) { r.Items[0].StartTime = "" },
		"bad start time":      func(r *Request) { r.Items[0].StartTime = "25:00" },
		"zero date":           func(r *Request) { r.Items[0].Date = time.Time{} },
		"duplicate resources": func(r *Request) { r.Items[0].ResourceIDs = []int64{1, 1} },
		"negative duration":   func(r *Request) { r.Items[0].DurationMinutes = -15 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
