package fleet

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/VedantChandore/crcms/pkg/models"
	"github.com/VedantChandore/crcms/pkg/scheduler"
	"github.com/VedantChandore/crcms/pkg/scoring"
)

var testNow = time.Date(2026, 4, 15, 10, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func newTestEngine(t *testing.T) *scheduler.Engine {
	t.Helper()

	engine, err := scheduler.NewEngine(scheduler.DefaultConfig(), scoring.BaseInspectionInterval)
	require.NoError(t, err)

	return engine
}

func testRoad(id string, potholes float64) models.RoadAsset {
	return models.RoadAsset{
		RoadID:           id,
		Name:             "Test Road " + id,
		District:         "Pune",
		Jurisdiction:     models.JurisdictionStatePWD,
		LengthKM:         12.5,
		SurfaceType:      models.SurfaceBitumen,
		YearConstructed:  2015,
		RainfallCategory: models.RainfallMedium,
		AvgDailyTraffic:  8000,
		TruckPercentage:  12,
		IRIValue:         4.0,
		Distress: models.DistressMetrics{
			PotholesPerKM:         potholes,
			RuttingDepthMM:        6,
			RavelingPct:           4,
			EdgeBreakingPct:       3,
			PatchesPerKM:          2,
			CracksTransversePerKM: 5,
		},
		Inspections: []models.InspectionRecord{
			{
				ID:             "ins-" + id + "-1",
				RoadID:         id,
				Date:           testNow.AddDate(0, -6, 0),
				ConditionScore: 72,
			},
			{
				ID:             "ins-" + id + "-2",
				RoadID:         id,
				Date:           testNow.AddDate(0, -2, 0),
				ConditionScore: 68,
			},
		},
	}
}

func TestNewServiceValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	engine := newTestEngine(t)

	_, err := NewService(nil, scoring.ComputeHealthScore, store, testClock)
	assert.ErrorIs(t, err, ErrNilEngine)

	_, err = NewService(engine, nil, store, testClock)
	assert.ErrorIs(t, err, ErrNilScorer)

	_, err = NewService(engine, scoring.ComputeHealthScore, nil, testClock)
	assert.ErrorIs(t, err, ErrNilStore)

	svc, err := NewService(engine, scoring.ComputeHealthScore, store, nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestLoadFleetScoresAndRestoresBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)

	booking := models.Booking{
		RoadID:        "MH-002",
		ScheduledDate: testNow.AddDate(0, 0, 14),
		Agency:        models.JurisdictionStatePWD,
		WorkType:      "resurfacing",
		CreatedAt:     testNow.AddDate(0, 0, -3),
	}

	store.EXPECT().UpsertRoad(gomock.Any()).Return(nil).Times(2)
	store.EXPECT().ListRoads().Return(nil, nil)
	store.EXPECT().ListBookings().Return([]models.Booking{booking}, nil)

	svc, err := NewService(newTestEngine(t), scoring.ComputeHealthScore, store, testClock)
	require.NoError(t, err)

	roads := []models.RoadAsset{testRoad("MH-001", 2), testRoad("MH-002", 8)}
	require.NoError(t, svc.LoadFleet(roads))

	schedule := svc.Schedule()
	require.Len(t, schedule, 2)

	for _, item := range schedule {
		assert.NotZero(t, item.Road.ConditionScore, "LoadFleet must score every road")
		assert.NotEmpty(t, item.Road.Band)
	}

	booked, ok := svc.GetScheduled("MH-002")
	require.True(t, ok)
	require.NotNil(t, booked.Booking)
	assert.Equal(t, "resurfacing", booked.Booking.WorkType)

	unbooked, ok := svc.GetScheduled("MH-001")
	require.True(t, ok)
	assert.Nil(t, unbooked.Booking)

	summary := svc.Summary()
	assert.Equal(t, 2, summary.TotalRoads)
}

func TestLoadFleetPrefersRecordedStateOverRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)

	// The store carries a road whose distress was updated through a
	// recorded inspection after the registry export was taken.
	recorded := models.InspectionRecord{
		ID:             "rec-live",
		RoadID:         "MH-001",
		Date:           testNow.AddDate(0, -1, 0),
		ConditionScore: 48,
	}

	storedRoad := testRoad("MH-001", 20)
	storedRoad.IRIValue = 8.2
	storedRoad.Inspections = []models.InspectionRecord{recorded}

	store.EXPECT().ListRoads().Return([]models.RoadAsset{storedRoad}, nil)
	store.EXPECT().UpsertRoad(gomock.Any()).Return(nil)
	store.EXPECT().ListBookings().Return(nil, nil)

	svc, err := NewService(newTestEngine(t), scoring.ComputeHealthScore, store, testClock)
	require.NoError(t, err)

	// The registry row still has the stale pre-inspection measurements.
	require.NoError(t, svc.LoadFleet([]models.RoadAsset{testRoad("MH-001", 2)}))

	item, ok := svc.GetScheduled("MH-001")
	require.True(t, ok)

	assert.InDelta(t, 20, item.Road.Distress.PotholesPerKM, 1e-9,
		"recorded distress must survive a registry reload")
	assert.InDelta(t, 8.2, item.Road.IRIValue, 1e-9)

	// CSV history plus the recorded entry, date ascending, no duplicates.
	require.Len(t, item.Road.Inspections, 3)
	assert.Equal(t, "rec-live", item.Road.Inspections[2].ID)
}

func TestLoadFleetStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)

	store.EXPECT().ListRoads().Return(nil, nil)
	store.EXPECT().UpsertRoad(gomock.Any()).Return(errors.New("disk full"))

	svc, err := NewService(newTestEngine(t), scoring.ComputeHealthScore, store, testClock)
	require.NoError(t, err)

	err = svc.LoadFleet([]models.RoadAsset{testRoad("MH-001", 2)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MH-001")

	assert.Empty(t, svc.Schedule(), "failed load must not leave partial state")
}

func TestMarkScheduledPersistsBeforeState(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)

	store.EXPECT().UpsertRoad(gomock.Any()).Return(nil)
	store.EXPECT().ListRoads().Return(nil, nil)
	store.EXPECT().ListBookings().Return(nil, nil)

	svc, err := NewService(newTestEngine(t), scoring.ComputeHealthScore, store, testClock)
	require.NoError(t, err)
	require.NoError(t, svc.LoadFleet([]models.RoadAsset{testRoad("MH-001", 2)}))

	_, err = svc.MarkScheduled("MH-404", testNow.AddDate(0, 0, 7), models.JurisdictionStatePWD, "patching")
	assert.ErrorIs(t, err, ErrRoadNotFound)

	// Store rejection leaves the snapshot untouched.
	store.EXPECT().UpsertBooking(gomock.Any()).Return(errors.New("locked"))

	_, err = svc.MarkScheduled("MH-001", testNow.AddDate(0, 0, 7), models.JurisdictionStatePWD, "patching")
	require.Error(t, err)

	item, ok := svc.GetScheduled("MH-001")
	require.True(t, ok)
	assert.Nil(t, item.Booking)

	store.EXPECT().UpsertBooking(gomock.Any()).Return(nil)

	booking, err := svc.MarkScheduled("MH-001", testNow.AddDate(0, 0, 7), models.JurisdictionStatePWD, "patching")
	require.NoError(t, err)
	assert.Equal(t, testNow, booking.CreatedAt)

	item, ok = svc.GetScheduled("MH-001")
	require.True(t, ok)
	require.NotNil(t, item.Booking)
	assert.Equal(t, "patching", item.Booking.WorkType)
}

func TestRecordInspectionRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)

	store.EXPECT().UpsertRoad(gomock.Any()).Return(nil).Times(2)
	store.EXPECT().ListRoads().Return(nil, nil)
	store.EXPECT().ListBookings().Return(nil, nil)

	svc, err := NewService(newTestEngine(t), scoring.ComputeHealthScore, store, testClock)
	require.NoError(t, err)

	target := testRoad("MH-001", 2)
	other := testRoad("MH-002", 5)
	require.NoError(t, svc.LoadFleet([]models.RoadAsset{target, other}))

	before, ok := svc.GetScheduled("MH-001")
	require.True(t, ok)

	otherBefore, ok := svc.GetScheduled("MH-002")
	require.True(t, ok)

	historyLen := len(before.Road.Inspections)

	store.EXPECT().InsertInspection(gomock.Any()).Return(nil)
	store.EXPECT().UpsertRoad(gomock.Any()).Return(nil)

	form := models.InspectionForm{
		Agency: models.JurisdictionStatePWD,
		Distress: models.DistressMetrics{
			PotholesPerKM:        14,
			AlligatorCrackingPct: 22,
			RuttingDepthMM:       18,
		},
		IRIValue:         7.5,
		SurfaceDamagePct: 35,
		DrainageStatus:   "blocked",
		Remarks:          "post-monsoon survey",
	}

	result, err := svc.RecordInspection("MH-001", form)
	require.NoError(t, err)

	assert.Less(t, result.NewScore, result.OldScore, "heavier distress must lower the score")
	assert.NotEmpty(t, result.UpdatedRoad.Inspections)

	after, ok := svc.GetScheduled("MH-001")
	require.True(t, ok)

	require.Len(t, after.Road.Inspections, historyLen+1)

	newest := after.Road.Inspections[len(after.Road.Inspections)-1]
	assert.Equal(t, testNow, newest.Date)
	assert.NotEmpty(t, newest.ID)
	assert.Equal(t, result.NewScore, newest.ConditionScore)
	assert.Equal(t, "post-monsoon survey", newest.Remarks)

	assert.Equal(t, form.Distress, after.Road.Distress)
	assert.InDelta(t, 7.5, after.Road.IRIValue, 1e-9)

	otherAfter, ok := svc.GetScheduled("MH-002")
	require.True(t, ok)
	assert.Equal(t, otherBefore.Road.ConditionScore, otherAfter.Road.ConditionScore)
	assert.Equal(t, otherBefore.PriorityScore, otherAfter.PriorityScore)
	assert.Len(t, otherAfter.Road.Inspections, len(otherBefore.Road.Inspections))
}

func TestRecordInspectionDoesNotMutateOldValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)

	store.EXPECT().UpsertRoad(gomock.Any()).Return(nil)
	store.EXPECT().ListRoads().Return(nil, nil)
	store.EXPECT().ListBookings().Return(nil, nil)

	svc, err := NewService(newTestEngine(t), scoring.ComputeHealthScore, store, testClock)
	require.NoError(t, err)

	road := testRoad("MH-001", 2)
	require.NoError(t, svc.LoadFleet([]models.RoadAsset{road}))

	before, _ := svc.GetScheduled("MH-001")
	snapshot := before.Road.Clone()

	store.EXPECT().InsertInspection(gomock.Any()).Return(nil)
	store.EXPECT().UpsertRoad(gomock.Any()).Return(nil)

	_, err = svc.RecordInspection("MH-001", models.InspectionForm{
		Distress: models.DistressMetrics{PotholesPerKM: 25},
	})
	require.NoError(t, err)

	// The copy handed out before the mutation keeps its old history.
	assert.Len(t, snapshot.Inspections, 2)
	assert.InDelta(t, 2, snapshot.Distress.PotholesPerKM, 1e-9)
}

func TestRecordInspectionClearsBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)

	store.EXPECT().UpsertRoad(gomock.Any()).Return(nil)
	store.EXPECT().ListRoads().Return(nil, nil)
	store.EXPECT().ListBookings().Return([]models.Booking{
		{RoadID: "MH-001", ScheduledDate: testNow, Agency: models.JurisdictionStatePWD},
	}, nil)

	svc, err := NewService(newTestEngine(t), scoring.ComputeHealthScore, store, testClock)
	require.NoError(t, err)
	require.NoError(t, svc.LoadFleet([]models.RoadAsset{testRoad("MH-001", 2)}))

	item, _ := svc.GetScheduled("MH-001")
	require.NotNil(t, item.Booking)

	store.EXPECT().InsertInspection(gomock.Any()).Return(nil)
	store.EXPECT().UpsertRoad(gomock.Any()).Return(nil)
	store.EXPECT().DeleteBooking("MH-001").Return(nil)

	_, err = svc.RecordInspection("MH-001", models.InspectionForm{
		Distress: models.DistressMetrics{PotholesPerKM: 3},
	})
	require.NoError(t, err)

	item, _ = svc.GetScheduled("MH-001")
	assert.Nil(t, item.Booking, "a completed inspection satisfies the open booking")
}

func TestRecordInspectionUnknownRoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)

	svc, err := NewService(newTestEngine(t), scoring.ComputeHealthScore, store, testClock)
	require.NoError(t, err)

	_, err = svc.RecordInspection("MH-404", models.InspectionForm{})
	assert.ErrorIs(t, err, ErrRoadNotFound)
}

func TestSetMonsoonModeRegenerates(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)

	store.EXPECT().UpsertRoad(gomock.Any()).Return(nil)
	store.EXPECT().ListRoads().Return(nil, nil)
	store.EXPECT().ListBookings().Return(nil, nil)

	svc, err := NewService(newTestEngine(t), scoring.ComputeHealthScore, store, testClock)
	require.NoError(t, err)

	road := testRoad("MH-001", 2)
	road.FloodProne = true
	road.RainfallCategory = models.RainfallHigh
	require.NoError(t, svc.LoadFleet([]models.RoadAsset{road}))

	dry, _ := svc.GetScheduled("MH-001")

	var updates int

	svc.OnUpdate(func(models.ScheduleSummary) { updates++ })

	svc.SetMonsoonMode(true)
	require.True(t, svc.MonsoonMode())
	assert.Equal(t, 1, updates)

	// Toggling to the value already in effect must not rebuild.
	svc.SetMonsoonMode(true)
	assert.Equal(t, 1, updates)

	wet, _ := svc.GetScheduled("MH-001")
	assert.Less(t, wet.AdjustedIntervalDays, dry.AdjustedIntervalDays,
		"monsoon mode must shorten intervals for rain-exposed roads")

	svc.SetMonsoonMode(false)
	assert.Equal(t, 2, updates)

	restored, _ := svc.GetScheduled("MH-001")
	assert.Equal(t, dry.AdjustedIntervalDays, restored.AdjustedIntervalDays)
}

func TestScheduleReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)

	store.EXPECT().UpsertRoad(gomock.Any()).Return(nil)
	store.EXPECT().ListRoads().Return(nil, nil)
	store.EXPECT().ListBookings().Return(nil, nil)

	svc, err := NewService(newTestEngine(t), scoring.ComputeHealthScore, store, testClock)
	require.NoError(t, err)
	require.NoError(t, svc.LoadFleet([]models.RoadAsset{testRoad("MH-001", 2)}))

	first := svc.Schedule()
	require.Len(t, first, 1)

	first[0].PriorityScore = -1

	second := svc.Schedule()
	assert.NotEqual(t, first[0].PriorityScore, second[0].PriorityScore)
}
