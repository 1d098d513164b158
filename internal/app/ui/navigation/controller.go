package navigation

//go:generate mockgen -source=controller.go -destination=controller_mock.go -package=navigation

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"

	"sewerlink/internal/app/archive"
	"sewerlink/internal/app/bus"
	"sewerlink/internal/app/errors"
	"sewerlink/internal/app/fleet"
	"sewerlink/internal/config/logger"
)

// FSM events
const (
	SelectRobot    = "select_robot"
	StartMission   = "start_mission"
	OpenChemicals  = "open_chemicals"
	OpenGPS        = "open_gps"
	OpenMissionLog = "open_mission_log"
	Back           = "back"
)

// FSM callbacks
const (
	OnRobotList  = "enter_" + string(RobotList)
	OnMissionLog = "enter_" + string(MissionLog)
	AfterEvent   = "after_event"
)

// State is a snapshot of the current screen and the two selection slots
type State struct {
	Screen  Screen
	Robot   *fleet.Robot
	Mission *archive.Mission
}

// Controller owns the screen state machine; it is driven from the UI loop only
type Controller interface {
	SelectRobot(ctx context.Context, robot fleet.Robot)
	StartMission(ctx context.Context) error
	OpenChemicals(ctx context.Context) error
	OpenGPS(ctx context.Context) error
	OpenMissionLog(ctx context.Context) error
	SelectMission(mission archive.Mission) error
	Back(ctx context.Context) error
	State() State
	Screen() Screen
	Title() string
	BackVisible() bool
	MenuVisible() bool
}

type controller struct {
	fsm     *fsm.FSM
	robot   *fleet.Robot
	mission *archive.Mission
	bus     bus.Bus
	log     logger.Logger
}

// NewController creates a controller positioned on the robot list with empty slots
func NewController(b bus.Bus, log logger.Logger) Controller {
	c := &controller{
		bus: b,
		log: log.WithComponent("NAV"),
	}

	c.fsm = newScreenFSM(c)

	return c
}

// backTargets maps each screen to the destination of the back event
var backTargets = map[Screen]Screen{
	PreMissionChecklist: RobotList,
	Dashboard:           PreMissionChecklist,
	ChemicalAnalysis:    Dashboard,
	GPSMapping:          Dashboard,
	MissionLog:          RobotList,
}

func newScreenFSM(c *controller) *fsm.FSM {
	events := fsm.Events{
		{Name: SelectRobot, Src: screenNames(Screens()), Dst: string(PreMissionChecklist)},
		{Name: StartMission, Src: []string{string(PreMissionChecklist)}, Dst: string(Dashboard)},
		{Name: OpenChemicals, Src: []string{string(Dashboard)}, Dst: string(ChemicalAnalysis)},
		{Name: OpenGPS, Src: []string{string(Dashboard)}, Dst: string(GPSMapping)},
		{Name: OpenMissionLog, Src: []string{string(RobotList)}, Dst: string(MissionLog)},
	}

	for _, src := range Screens() {
		if dst, ok := backTargets[src]; ok {
			events = append(events, fsm.EventDesc{Name: Back, Src: []string{string(src)}, Dst: string(dst)})
		}
	}

	return fsm.NewFSM(
		string(RobotList),
		events,
		fsm.Callbacks{
			AfterEvent: func(ctx context.Context, e *fsm.Event) {
				if e.Src == e.Dst {
					return
				}

				c.log.Debug().Msgf("STATE %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
				c.publishScreenChanged(e.Src, e.Dst, e.Event)
			},
			OnRobotList: func(ctx context.Context, e *fsm.Event) {
				c.robot = nil
				c.clearMission()
			},
			OnMissionLog: func(ctx context.Context, e *fsm.Event) {
				c.clearMission()
			},
		},
	)
}

// SelectRobot starts a session with the robot from any screen
func (c *controller) SelectRobot(ctx context.Context, robot fleet.Robot) {
	c.robot = &robot
	c.clearMission()

	c.bus.Publish(bus.Message{
		Type: bus.EventRobotSelected,
		Data: bus.RobotSelected{Robot: robot.Name},
	})

	if err := c.fire(ctx, SelectRobot); err != nil {
		c.log.Error().Err(err).Msgf("Failed to select robot '%s'", robot.Name)
	}
}

// StartMission moves from the checklist to the dashboard
func (c *controller) StartMission(ctx context.Context) error {
	if c.robot == nil {
		return errors.ErrNoRobotSelected
	}

	return c.fire(ctx, StartMission)
}

// OpenChemicals moves from the dashboard to the chemical analysis screen
func (c *controller) OpenChemicals(ctx context.Context) error {
	return c.fire(ctx, OpenChemicals)
}

// OpenGPS moves from the dashboard to the mapping screen
func (c *controller) OpenGPS(ctx context.Context) error {
	return c.fire(ctx, OpenGPS)
}

// OpenMissionLog moves from the robot list to past mission reports
func (c *controller) OpenMissionLog(ctx context.Context) error {
	return c.fire(ctx, OpenMissionLog)
}

// SelectMission opens a mission's details while on the mission log
func (c *controller) SelectMission(mission archive.Mission) error {
	if !c.fsm.Is(string(MissionLog)) {
		return errors.ErrNotOnMissionLog
	}

	c.mission = &mission

	c.bus.Publish(bus.Message{
		Type: bus.EventMissionSelected,
		Data: bus.MissionSelected{ID: mission.ID},
	})

	return nil
}

// Back closes an open mission first, otherwise follows the back table;
// on the robot list it does nothing
func (c *controller) Back(ctx context.Context) error {
	if c.mission != nil {
		c.clearMission()
		return nil
	}

	current := c.Screen()
	if current == RobotList {
		return nil
	}

	if _, ok := backTargets[current]; ok {
		return c.fire(ctx, Back)
	}

	c.log.Warn().Msgf("No back route from '%s', returning to %s", current, RobotList)
	c.fsm.SetState(string(RobotList))
	c.robot = nil
	c.publishScreenChanged(string(current), string(RobotList), Back)

	return nil
}

// State returns a copy of the current state
func (c *controller) State() State {
	state := State{Screen: c.Screen()}

	if c.robot != nil {
		robot := *c.robot
		state.Robot = &robot
	}

	if c.mission != nil {
		mission := *c.mission
		state.Mission = &mission
	}

	return state
}

func (c *controller) Screen() Screen {
	return Screen(c.fsm.Current())
}

// Title returns the header title for the current state
func (c *controller) Title() string {
	screen := c.Screen()
	if screen == MissionLog && c.mission != nil {
		return MissionDetailsTitle
	}

	return screen.Title()
}

// BackVisible reports whether the header shows a back affordance
func (c *controller) BackVisible() bool {
	return c.Screen() != RobotList || c.mission != nil
}

// MenuVisible reports whether the overflow menu is offered
func (c *controller) MenuVisible() bool {
	return c.Screen() == RobotList
}

// fire runs an FSM event; self-transitions are not errors
func (c *controller) fire(ctx context.Context, event string) error {
	err := c.fsm.Event(ctx, event)
	if err == nil {
		return nil
	}

	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return nil
	}

	return fmt.Errorf("%w: %w", errors.ErrInvalidTransition, err)
}

func (c *controller) clearMission() {
	if c.mission == nil {
		return
	}

	id := c.mission.ID
	c.mission = nil

	c.bus.Publish(bus.Message{
		Type: bus.EventMissionCleared,
		Data: bus.MissionSelected{ID: id},
	})
}

func (c *controller) publishScreenChanged(from, to, trigger string) {
	c.bus.Publish(bus.Message{
		Type: bus.EventScreenChanged,
		Data: bus.ScreenChanged{From: from, To: to, Trigger: trigger},
	})
}

func screenNames(screens []Screen) []string {
	names := make([]string, 0, len(screens))
	for _, s := range screens {
		names = append(names, string(s))
	}

	return names
}
