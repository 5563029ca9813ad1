// Package config holds the HUD tuning and battle data loaded from YAML.
package config

// Config is the full HUD configuration.
type Config struct {
	Cards      Cards         `yaml:"cards"`
	Dialogue   Dialogue      `yaml:"dialogue"`
	Energy     Energy        `yaml:"energy"`
	CTB        CTB           `yaml:"ctb"`
	TimeAttack TimeAttack    `yaml:"time_attack"`
	Command    Command       `yaml:"command"`
	Characters []Character   `yaml:"characters"`
	Party      []PartyMember `yaml:"party"`
	Enemies    []Enemy       `yaml:"enemies"`
	Items      []Item        `yaml:"items"`
	Skills     []Skill       `yaml:"skills"`
}

// Window is a screen rectangle.
type Window struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Cards tunes the horizontal item and skill card rows.
type Cards struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Spacing       float64 `yaml:"spacing"`
	TopOffset     float64 `yaml:"top_offset"`
	ArrowWidth    float64 `yaml:"arrow_width"`
	ArrowHeight   float64 `yaml:"arrow_height"`
	ScrollSpeed   float64 `yaml:"scroll_speed"` // easing divisor
	SnapEpsilon   float64 `yaml:"snap_epsilon"`
	Margin        float64 `yaml:"margin"` // fraction of the viewport width
	DragThreshold float64 `yaml:"drag_threshold"`
	LiftTarget    float64 `yaml:"lift_target"`
	LiftRate      float64 `yaml:"lift_rate"`
	ItemWindow    Window  `yaml:"item_window"`
	SkillWindow   Window  `yaml:"skill_window"`
}

// Dialogue tunes the menu character chatter.
type Dialogue struct {
	MinInterval     int     `yaml:"min_interval"`
	MaxInterval     int     `yaml:"max_interval"`
	CharDelay       float64 `yaml:"char_delay"`
	DisplayDuration int     `yaml:"display_duration"`
	ZeroWeight      string  `yaml:"zero_weight"` // "uniform" or "none"
}

// Energy tunes the regenerating energy pool.
type Energy struct {
	Max                int    `yaml:"max"`
	FramesPerIncrement int    `yaml:"frames_per_increment"`
	Increment          int    `yaml:"increment"`
	Initial            int    `yaml:"initial"`
	SaveFile           string `yaml:"save_file"`
}

// CTB tunes the turn-end marker and the ticks display.
type CTB struct {
	ShowTurnEnd      bool     `yaml:"show_turn_end"`
	TurnEndAgility   float64  `yaml:"turn_end_agility"`
	TurnEndStart     float64  `yaml:"turn_end_start"`
	TurnEndFull      float64  `yaml:"turn_end_full"`
	TurnEndLabel     string   `yaml:"turn_end_label"`
	TicksFormat      string   `yaml:"ticks_format"`
	CounterUp        int      `yaml:"counter_up"`
	CounterDown      int      `yaml:"counter_down"`
	SpinDuration     int      `yaml:"spin_duration"`
	SpinBezier       string   `yaml:"spin_bezier"`
	ColorChangeSpeed float64  `yaml:"color_change_speed"`
	TurnColors       []string `yaml:"turn_colors"`
	TurnImages       []string `yaml:"turn_images"`
	ImageDuration    int      `yaml:"image_duration"`
	SlideSpeed       float64  `yaml:"slide_speed"`
	SlideCurve       string   `yaml:"slide_curve"`
	Panel            Window   `yaml:"panel"`
}

// TimeAttack configures the battle countdown.
type TimeAttack struct {
	Armed            bool `yaml:"armed"`
	Goal             int  `yaml:"goal"`
	WarningThreshold int  `yaml:"warning_threshold"`
	WarningEvent     int  `yaml:"warning_event"`
	GameOverEvent    int  `yaml:"game_over_event"`
}

// Command configures the actor command menu.
type Command struct {
	SpecialSkill int     `yaml:"special_skill"`
	CanEscape    bool    `yaml:"can_escape"`
	EscapeRatio  float64 `yaml:"escape_ratio"` // 0 derives it from agility
}

// Phrase is one line a menu character can say.
type Phrase struct {
	Text   string  `yaml:"text"`
	Voice  string  `yaml:"voice"`
	Weight float64 `yaml:"weight"`
}

// Character is a party member that can appear on the menu.
type Character struct {
	ActorID  int      `yaml:"actor_id"`
	Portrait string   `yaml:"portrait"`
	Phrases  []Phrase `yaml:"phrases"`
}

// PartyMember is an actor in the battle party.
type PartyMember struct {
	ID      int     `yaml:"id"`
	Name    string  `yaml:"name"`
	Agility float64 `yaml:"agility"`
	Charge  float64 `yaml:"charge"`
	Skills  []int   `yaml:"skills"`
}

// Enemy is a troop member.
type Enemy struct {
	Name    string  `yaml:"name"`
	Agility float64 `yaml:"agility"`
	Charge  float64 `yaml:"charge"`
}

// Item is an inventory entry shown as a card.
type Item struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
	Count int    `yaml:"count"`
}

// Skill is a learnable skill shown as a card.
type Skill struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
	Cost  int    `yaml:"cost"`
}

// Default returns the stock tuning with no battle data.
func Default() Config {
	return Config{
		Cards: Cards{
			Width: 180, Height: 120, Spacing: 10, TopOffset: 20,
			ArrowWidth: 24, ArrowHeight: 24,
			ScrollSpeed: 8, SnapEpsilon: 0.5, Margin: 0.3, DragThreshold: 5,
			LiftTarget: -10, LiftRate: 0.2,
			ItemWindow:  Window{X: 0, Y: 440, Width: 1280, Height: 200},
			SkillWindow: Window{X: 0, Y: 440, Width: 1280, Height: 200},
		},
		Dialogue: Dialogue{MinInterval: 300, MaxInterval: 900, CharDelay: 2, DisplayDuration: 180, ZeroWeight: "uniform"},
		Energy:   Energy{Max: 100, FramesPerIncrement: 3600, Increment: 1, Initial: 100},
		CTB: CTB{
			ShowTurnEnd: true,
			TurnEndAgility: 70, TurnEndStart: 133, TurnEndFull: 400,
			TurnEndLabel:     "Turn %1",
			TicksFormat:      "Ticks: %1 | Turn: %2",
			CounterUp:        10,
			CounterDown:      1,
			SpinDuration:     60,
			SpinBezier:       "0.42,0,0.58,1",
			ColorChangeSpeed: 0.05,
			TurnColors:       []string{"#ffffff"},
			ImageDuration:    30,
			SlideSpeed:       0.2,
			SlideCurve:       "linear",
			Panel:            Window{X: 1040, Y: 16, Width: 224, Height: 72},
		},
		Command: Command{CanEscape: true},
	}
}
