package wire

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"sewerlink/internal/app/archive"
	"sewerlink/internal/app/bus"
	"sewerlink/internal/app/fleet"
	"sewerlink/internal/app/monitor"
	"sewerlink/internal/app/telemetry"
	"sewerlink/internal/app/ui/navigation"
	"sewerlink/internal/config"
	"sewerlink/internal/config/logger"
)

func newParams(ctrl *gomock.Controller, cfg *config.Config) (UIParams, *bus.MockBus, *logger.MockLogger) {
	mockBus := bus.NewMockBus(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	filter, _ := fleet.NewFilter(nil)

	return UIParams{
		Config:     cfg,
		Bus:        mockBus,
		Controller: navigation.NewMockController(ctrl),
		Fleet:      fleet.NewMockSource(ctrl),
		Filter:     filter,
		Telemetry:  telemetry.NewMockSource(ctrl),
		Archive:    archive.NewMockArchive(ctrl),
		Monitor:    monitor.NewMockMonitor(ctrl),
		Logger:     mockLogger,
	}, mockBus, mockLogger
}

func Test_NewUI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	params, _, _ := newParams(ctrl, config.DefaultConfig())

	factory := NewUI(params)
	assert.NotNil(t, factory)
}

func Test_UI_CreateProgram(t *testing.T) {
	tests := []struct {
		name  string
		mouse bool
	}{
		{name: "mouse enabled", mouse: true},
		{name: "mouse disabled", mouse: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cfg := config.DefaultConfig()
			cfg.Console.Mouse = tt.mouse

			params, mockBus, mockLogger := newParams(ctrl, cfg)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			msgChan := make(chan bus.Message)
			close(msgChan)

			mockBus.EXPECT().Subscribe(ctx).Return((<-chan bus.Message)(msgChan))
			mockLogger.EXPECT().WithComponent("UI").Return(mockLogger)
			mockLogger.EXPECT().Debug().Return(nil).AnyTimes()

			program, err := NewUI(params)(ctx)

			assert.NoError(t, err)
			assert.NotNil(t, program)
		})
	}
}
