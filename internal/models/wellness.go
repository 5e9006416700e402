package models

// Mood is one of the five check-in categories, ordered from most positive
// to most negative.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodCalm    Mood = "calm"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
	MoodAnxious Mood = "anxious"
)

// AllMoods lists the closed mood vocabulary in sentiment order.
var AllMoods = []Mood{MoodHappy, MoodCalm, MoodNeutral, MoodSad, MoodAnxious}

// Score maps a mood to a numeric sentiment level (5 = most positive,
// 1 = most negative). Unknown moods score 0.
func (m Mood) Score() int {
	switch m {
	case MoodHappy:
		return 5
	case MoodCalm:
		return 4
	case MoodNeutral:
		return 3
	case MoodSad:
		return 2
	case MoodAnxious:
		return 1
	default:
		return 0
	}
}

// Valid reports whether m belongs to the closed mood vocabulary.
func (m Mood) Valid() bool {
	return m.Score() != 0
}

// MoodEntry is one mood check-in. At most one entry exists per calendar day;
// a later check-in for the same day replaces the fields but keeps the id.
type MoodEntry struct {
	ID   string   `json:"id"`
	Date string   `json:"date"` // YYYY-MM-DD
	Mood Mood     `json:"mood"`
	Note string   `json:"note,omitempty"`
	Tags []string `json:"tags,omitempty"`
}

// Habit is a recurring user-defined daily action. CompletedDates holds the
// day keys the habit was marked done on, duplicate-free, in insertion order.
type Habit struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Icon           string   `json:"icon,omitempty"`
	CompletedDates []string `json:"completedDates"`
	CreatedAt      string   `json:"createdAt"` // YYYY-MM-DD
}

// Affirmation is a short motivational statement.
type Affirmation struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	IsFavorite bool   `json:"isFavorite"`
	CreatedAt  string `json:"createdAt"` // YYYY-MM-DD
}

// GratitudeEntry is one gratitude reflection, one per calendar day with the
// same replace-in-place semantics as MoodEntry.
type GratitudeEntry struct {
	ID   string `json:"id"`
	Date string `json:"date"` // YYYY-MM-DD
	Text string `json:"text"`
}
