package fixtures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sewerlink/internal/app/archive"
	"sewerlink/internal/app/errors"
	"sewerlink/internal/app/fleet"
	"sewerlink/internal/app/telemetry"
)

func defaultStore(ctrl *gomock.Controller) Store {
	store := NewMockStore(ctrl)
	store.EXPECT().Current().Return(Default()).AnyTimes()

	return store
}

func Test_Fleet_Robots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	robots, err := NewFleet(defaultStore(ctrl)).Robots(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []fleet.Robot{
		{Name: "RC-Unit-01", Status: fleet.Online},
		{Name: "RC-Unit-02", Status: fleet.Offline},
		{Name: "RC-Unit-03", Status: fleet.Connecting},
	}, robots)
}

func Test_Fleet_Robots_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	set := &Set{Robots: []Robot{{Name: "X", Status: "??"}}}

	store := NewMockStore(ctrl)
	store.EXPECT().Current().Return(set)

	robots, err := NewFleet(store).Robots(context.Background())

	assert.ErrorIs(t, err, errors.ErrInvalidFixture)
	assert.ErrorIs(t, err, errors.ErrInvalidRobotStatus)
	assert.Nil(t, robots)
}

func Test_Telemetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := NewTelemetry(defaultStore(ctrl))
	ctx := context.Background()

	t.Run("Checklist", func(t *testing.T) {
		items, err := src.Checklist(ctx, fleet.Robot{Name: "RC-Unit-01", Status: fleet.Online})
		require.NoError(t, err)

		assert.Equal(t, telemetry.CheckItem{Label: "Robot Battery", Value: "100%"}, items[0])
		assert.Equal(t, telemetry.CheckItem{Label: "Sensor Status", Value: "All Green (Chemical, Camera, GPS)"}, items[3])
	})

	t.Run("Readings", func(t *testing.T) {
		readings, err := src.Readings(ctx)
		require.NoError(t, err)
		require.Len(t, readings, 3)

		assert.Equal(t, "Methane", readings[0].Name)
		assert.Equal(t, telemetry.Danger, readings[0].Status)
		assert.Equal(t, telemetry.Caution, readings[1].Status)
		assert.Equal(t, telemetry.Safe, readings[2].Status)
		assert.NotEmpty(t, readings[0].History)
	})

	t.Run("Readings do not alias the store", func(t *testing.T) {
		readings, err := src.Readings(ctx)
		require.NoError(t, err)

		readings[0].History[0] = 999

		again, err := src.Readings(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, 999.0, again[0].History[0])
	})

	t.Run("HUD", func(t *testing.T) {
		hud, err := src.HUD(ctx)
		require.NoError(t, err)

		assert.Equal(t, "Live", hud.GPS)
		assert.Equal(t, "98%", hud.Battery)
		assert.Equal(t, "00:15:32", hud.Elapsed)
		assert.True(t, hud.Recording)
	})

	t.Run("Alerts", func(t *testing.T) {
		alerts, err := src.Alerts(ctx)
		require.NoError(t, err)

		assert.Equal(t, telemetry.Alert{Time: "10:32 AM", Message: "Suspicious Object Detected."}, alerts[0])
	})

	t.Run("Position", func(t *testing.T) {
		pos, err := src.Position(ctx)
		require.NoError(t, err)

		assert.Equal(t, 34.0522, pos.Lat)
		assert.Equal(t, -118.2437, pos.Lon)
	})

	t.Run("Frame without video", func(t *testing.T) {
		frame, err := src.Frame(ctx)
		require.NoError(t, err)

		assert.Nil(t, frame)
	})
}

func Test_Telemetry_Frame(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStore(ctrl)
	store.EXPECT().Current().Return(&Set{Video: &Video{Width: 320, Height: 240, Source: "cam0"}})

	frame, err := NewTelemetry(store).Frame(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &telemetry.Frame{Width: 320, Height: 240, Source: "cam0"}, frame)
}

func Test_Archive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := NewArchive(defaultStore(ctrl))
	ctx := context.Background()

	missions, err := a.Missions(ctx)
	require.NoError(t, err)
	assert.Equal(t, archive.Mission{ID: "1", Date: "10 Nov 2025 - 10:30 AM", Duration: "45 minutes", Distance: "150 meters"}, missions[0])
	assert.Equal(t, "2", missions[1].ID)

	tests := []struct {
		name      string
		id        string
		expectLen int
		expectErr error
	}{
		{name: "known mission", id: "1", expectLen: 2},
		{name: "unknown mission", id: "99", expectErr: errors.ErrMissionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs, err := a.Logs(ctx, tt.id)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, logs)

				return
			}

			require.NoError(t, err)
			assert.Len(t, logs, tt.expectLen)
		})
	}
}
