package domain

// EmpathyLevel controls how much emotional validation the coach voices.
type EmpathyLevel string

const (
	EmpathyHigh   EmpathyLevel = "high"
	EmpathyMedium EmpathyLevel = "medium"
	EmpathyLow    EmpathyLevel = "low"
)

// IsValid checks if the empathy level is valid.
func (e EmpathyLevel) IsValid() bool {
	switch e {
	case EmpathyHigh, EmpathyMedium, EmpathyLow:
		return true
	default:
		return false
	}
}

// Intensity controls how hard the coach pushes.
type Intensity string

const (
	IntensityGentle      Intensity = "gentle"
	IntensityModerate    Intensity = "moderate"
	IntensityChallenging Intensity = "challenging"
)

// IsValid checks if the intensity is valid.
func (i Intensity) IsValid() bool {
	switch i {
	case IntensityGentle, IntensityModerate, IntensityChallenging:
		return true
	default:
		return false
	}
}

// ConversationConfig parameterizes the conversational instruction.
// When Selection is nil the composer classifies Message itself.
type ConversationConfig struct {
	Message      string          `json:"message,omitempty"`
	Selection    *ModelSelection `json:"selection,omitempty"`
	EmpathyLevel EmpathyLevel    `json:"empathy_level,omitempty"`
	Intensity    Intensity       `json:"intensity,omitempty"`
}

// Preferences shape the actionable generation request.
type Preferences struct {
	TotalTasks             *int     `json:"total_tasks,omitempty"`
	Difficulty             string   `json:"difficulty,omitempty"`
	AvailableMinutesPerDay int      `json:"available_minutes_per_day,omitempty"`
	TimeframeDays          int      `json:"timeframe_days,omitempty"`
	StartDate              string   `json:"start_date,omitempty"`
	FocusAreas             []string `json:"focus_areas,omitempty"`
}

// InstructionPair is the system/user text handed to the external generator.
type InstructionPair struct {
	SystemText  string `json:"system_text"`
	UserText    string `json:"user_text"`
	TargetCount int    `json:"target_count"`
}

// Difficulty of an actionable.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Priority of an actionable.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Actionable is the record the external generator must produce. The engine
// only describes it; generation and validation happen elsewhere.
type Actionable struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	WhyImportant     string     `json:"whyImportant"`
	PersonalNote     string     `json:"personalNote"`
	EstimatedMinutes int        `json:"estimatedMinutes"`
	Difficulty       Difficulty `json:"difficulty"`
	Priority         Priority   `json:"priority"`
	EventDate        string     `json:"eventDate"`
	Pillar           string     `json:"pillar"`
	Category         string     `json:"category"`
}

// ActionableField documents one field of the Actionable output contract.
type ActionableField struct {
	Name        string
	Type        string
	Description string
}

// ActionableContract lists the fields the generator must emit, in order.
var ActionableContract = []ActionableField{
	{"title", "string", "Kort, konkret rubrik för handlingen"},
	{"description", "string", "Vad personen ska göra, steg för steg"},
	{"whyImportant", "string", "Varför handlingen spelar roll utifrån bedömningen"},
	{"personalNote", "string", "En personlig, uppmuntrande kommentar till personen"},
	{"estimatedMinutes", "integer", "Uppskattad tidsåtgång i minuter"},
	{"difficulty", `"easy" | "medium" | "hard"`, "Svårighetsgrad"},
	{"priority", `"low" | "medium" | "high"`, "Prioritet"},
	{"eventDate", "string (YYYY-MM-DD)", "Föreslaget datum för genomförande"},
	{"pillar", "string", "Utvecklingspelaren handlingen hör till"},
	{"category", "string", "Kategori inom pelaren, t.ex. vana, reflektion eller övning"},
}
