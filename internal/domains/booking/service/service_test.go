package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"luxeroom/config"
	geminiMocks "luxeroom/infras/gemini/mocks"
	"luxeroom/infras/otel/mocks"
	activityMocks "luxeroom/internal/domains/activity/service/mocks"
	activityModel "luxeroom/internal/domains/activity/model"
	"luxeroom/internal/domains/booking/model"
	"luxeroom/internal/domains/booking/model/dto"
	"luxeroom/internal/domains/booking/service"
	roomModel "luxeroom/internal/domains/room/model"
	"luxeroom/internal/snapshot"
	snapshotMocks "luxeroom/internal/snapshot/mocks"
	"luxeroom/internal/state"
	"luxeroom/internal/syncbus"
	syncMocks "luxeroom/internal/syncbus/mocks"
	"luxeroom/shared/cache"
	cacheMocks "luxeroom/shared/cache/mocks"
	"luxeroom/shared/constant"
	"luxeroom/shared/failure"
	"luxeroom/shared/idgen"
	"luxeroom/shared/timezone"
)

type serviceMocks struct {
	snapshots *snapshotMocks.MockStore
	bus       *syncMocks.MockBus
	activity  *activityMocks.MockActivity
	drafter   *geminiMocks.MockDrafter
	cache     *cacheMocks.MockRedisCache
}

func newService(t *testing.T, st *state.Store) (service.Booking, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := serviceMocks{
		snapshots: snapshotMocks.NewMockStore(ctrl),
		bus:       syncMocks.NewMockBus(ctrl),
		activity:  activityMocks.NewMockActivity(ctrl),
		drafter:   geminiMocks.NewMockDrafter(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(st, m.snapshots, m.bus, m.activity, m.drafter, idgen.NewSequential("bk"), m.cache, cfg, mocks.NewOtel())

	return svc, m
}

func staffContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyStaffID, "s1")

	return context.WithValue(ctx, constant.ContextKeyStaffName, "Bestey")
}

func TestBookingService_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		st := state.New(roomModel.Seed(), nil, nil)
		svc, m := newService(t, st)

		m.bus.EXPECT().Origin().Return("origin-1")
		m.snapshots.EXPECT().
			Save(gomock.Any(), snapshot.KeyBookings, gomock.Any(), "origin-1").
			Return(nil)
		m.bus.EXPECT().Publish(gomock.Any(), syncbus.KindBookings, gomock.Any(), "Bestey")
		m.activity.EXPECT().Record(gomock.Any(), activityModel.KindBooking,
			"Booked Room 101 (Twin Room) for Aisha, 3 night(s) from 2026-03-10", "Bestey")

		res, err := svc.Create(staffContext(), dto.CreateBookingRequest{
			RoomID:    "r101",
			GuestName: "Aisha",
			StartDate: "2026-03-10",
			Nights:    3,
		})

		assert.NoError(t, err)
		assert.Equal(t, "bk-1", res.ID)
		assert.Equal(t, "r101", res.RoomID)
		assert.Equal(t, "Aisha", res.GuestName)
		assert.Equal(t, "2026-03-10", res.StartDate)
		assert.Equal(t, "2026-03-13", res.EndDate)
		assert.Equal(t, 3, res.Nights)
		assert.Equal(t, "s1", res.StaffID)
		assert.Equal(t, "Bestey", res.StaffName)

		assert.Len(t, st.Bookings(), 1)
	})

	t.Run("snapshot failure does not fail the request", func(t *testing.T) {
		st := state.New(roomModel.Seed(), nil, nil)
		svc, m := newService(t, st)

		m.bus.EXPECT().Origin().Return("origin-1")
		m.snapshots.EXPECT().
			Save(gomock.Any(), snapshot.KeyBookings, gomock.Any(), "origin-1").
			Return(errors.New("database unavailable"))
		m.bus.EXPECT().Publish(gomock.Any(), syncbus.KindBookings, gomock.Any(), "Bestey")
		m.activity.EXPECT().Record(gomock.Any(), activityModel.KindBooking, gomock.Any(), "Bestey")

		_, err := svc.Create(staffContext(), dto.CreateBookingRequest{
			RoomID:    "r101",
			GuestName: "Aisha",
			StartDate: "2026-03-10",
			Nights:    1,
		})

		assert.NoError(t, err)
		assert.Len(t, st.Bookings(), 1)
	})

	t.Run("unknown room", func(t *testing.T) {
		st := state.New(roomModel.Seed(), nil, nil)
		svc, _ := newService(t, st)

		_, err := svc.Create(staffContext(), dto.CreateBookingRequest{
			RoomID:    "r999",
			GuestName: "Aisha",
			StartDate: "2026-03-10",
			Nights:    1,
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.Empty(t, st.Bookings())
	})

	t.Run("missing staff context", func(t *testing.T) {
		st := state.New(roomModel.Seed(), nil, nil)
		svc, _ := newService(t, st)

		_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			RoomID:    "r101",
			GuestName: "Aisha",
			StartDate: "2026-03-10",
			Nights:    1,
		})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestBookingService_Occupancy(t *testing.T) {
	start, err := timezone.Parse(constant.DateFormat, "2026-03-10")
	assert.NoError(t, err)

	booking, err := model.New("b1", "r101", "Aisha", "", start, 3, "s1", "Bestey", timezone.Now())
	assert.NoError(t, err)

	st := state.New(roomModel.Seed(), []model.Booking{booking}, nil)
	svc, _ := newService(t, st)

	tests := []struct {
		name           string
		roomID         string
		date           string
		wantErrCode    int
		wantBooked     bool
		wantCheckInDay bool
	}{
		{name: "check-in day", roomID: "r101", date: "2026-03-10", wantBooked: true, wantCheckInDay: true},
		{name: "mid-stay day", roomID: "r101", date: "2026-03-11", wantBooked: true},
		{name: "last night", roomID: "r101", date: "2026-03-12", wantBooked: true},
		{name: "check-out day is vacant", roomID: "r101", date: "2026-03-13"},
		{name: "other room is vacant", roomID: "r102", date: "2026-03-11"},
		{name: "unknown room", roomID: "r999", date: "2026-03-11", wantErrCode: 404},
		{name: "malformed date", roomID: "r101", date: "10/03/2026", wantErrCode: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Occupancy(context.Background(), tt.roomID, tt.date)

			if tt.wantErrCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErrCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.roomID, res.RoomID)
			assert.Equal(t, tt.date, res.Date)
			assert.Equal(t, tt.wantBooked, res.Booked)
			assert.Equal(t, tt.wantCheckInDay, res.CheckInDay)

			if tt.wantBooked {
				assert.NotNil(t, res.Booking)
				assert.Equal(t, "b1", res.Booking.ID)
			} else {
				assert.Nil(t, res.Booking)
			}
		})
	}
}

func TestBookingService_DraftNote(t *testing.T) {
	req := dto.DraftNoteRequest{
		RequestID: "req-1",
		GuestName: "Aisha",
		Nights:    2,
		RoomID:    "r104",
	}

	t.Run("generates and caches on miss", func(t *testing.T) {
		st := state.New(roomModel.Seed(), nil, nil)
		svc, m := newService(t, st)

		m.cache.EXPECT().
			Get(gomock.Any(), "booking:draft:req-1", gomock.Any()).
			Return(cache.CacheNil)
		m.drafter.EXPECT().
			DraftWelcomeNote(gomock.Any(), "Aisha", 2, "Room 104 (Double Bed)").
			Return("Welcome to LuxeRoom, Aisha!", nil)
		// The write-back runs on a detached goroutine and may land after
		// the test returns.
		m.cache.EXPECT().
			Save(gomock.Any(), "booking:draft:req-1", "Welcome to LuxeRoom, Aisha!", 3600).
			Return(nil).
			AnyTimes()

		res, err := svc.DraftNote(staffContext(), req)

		assert.NoError(t, err)
		assert.Equal(t, "req-1", res.RequestID)
		assert.Equal(t, "Welcome to LuxeRoom, Aisha!", res.Note)
	})

	t.Run("returns cached draft on hit", func(t *testing.T) {
		st := state.New(roomModel.Seed(), nil, nil)
		svc, m := newService(t, st)

		m.cache.EXPECT().
			Get(gomock.Any(), "booking:draft:req-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*string) = "cached welcome note"

				return nil
			})

		res, err := svc.DraftNote(staffContext(), req)

		assert.NoError(t, err)
		assert.Equal(t, "cached welcome note", res.Note)
	})

	t.Run("drafter failure", func(t *testing.T) {
		st := state.New(roomModel.Seed(), nil, nil)
		svc, m := newService(t, st)

		m.cache.EXPECT().
			Get(gomock.Any(), "booking:draft:req-1", gomock.Any()).
			Return(cache.CacheNil)
		m.drafter.EXPECT().
			DraftWelcomeNote(gomock.Any(), "Aisha", 2, "Room 104 (Double Bed)").
			Return("", errors.New("generation unavailable"))

		_, err := svc.DraftNote(staffContext(), req)

		assert.Error(t, err)
	})

	t.Run("unknown room", func(t *testing.T) {
		st := state.New(roomModel.Seed(), nil, nil)
		svc, _ := newService(t, st)

		_, err := svc.DraftNote(staffContext(), dto.DraftNoteRequest{
			RequestID: "req-2",
			GuestName: "Aisha",
			Nights:    2,
			RoomID:    "r999",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("missing staff context", func(t *testing.T) {
		st := state.New(roomModel.Seed(), nil, nil)
		svc, _ := newService(t, st)

		_, err := svc.DraftNote(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}
