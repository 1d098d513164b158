package navigation

// Screen identifies a console screen; values double as FSM states
type Screen string

// Screens
const (
	RobotList           Screen = "robot_list"
	PreMissionChecklist Screen = "pre_mission_checklist"
	Dashboard           Screen = "dashboard"
	ChemicalAnalysis    Screen = "chemical_analysis"
	GPSMapping          Screen = "gps_mapping"
	MissionLog          Screen = "mission_log"
)

// MissionDetailsTitle replaces the mission log title while a mission is open
const MissionDetailsTitle = "Mission Details"

var titles = map[Screen]string{
	RobotList:           "AI Robotic Sewage Cleaner",
	PreMissionChecklist: "Pre-Mission Checklist",
	Dashboard:           "Mission Control",
	ChemicalAnalysis:    "Live Chemical Analysis",
	GPSMapping:          "GPS & Mapping",
	MissionLog:          "Past Mission Reports",
}

// Screens returns every screen in declaration order
func Screens() []Screen {
	return []Screen{
		RobotList,
		PreMissionChecklist,
		Dashboard,
		ChemicalAnalysis,
		GPSMapping,
		MissionLog,
	}
}

// Title returns the static header title
func (s Screen) Title() string {
	return titles[s]
}

func (s Screen) String() string {
	return string(s)
}

// RequiresRobot reports whether the screen belongs to a robot session
func (s Screen) RequiresRobot() bool {
	switch s {
	case PreMissionChecklist, Dashboard, ChemicalAnalysis, GPSMapping:
		return true
	default:
		return false
	}
}
