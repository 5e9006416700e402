package store

import (
	"encoding/json"
	"errors"
	"math/rand"

	"github.com/google/uuid"

	"github.com/sereniflow/sereniflow/internal/constants"
	"github.com/sereniflow/sereniflow/internal/logger"
	"github.com/sereniflow/sereniflow/internal/models"
	"github.com/sereniflow/sereniflow/internal/storage"
	"github.com/sereniflow/sereniflow/internal/utils"
)

// wellnessSnapshot is the full serialized state written to the
// sereniflow-storage slot after every mutation.
type wellnessSnapshot struct {
	MoodEntries      []models.MoodEntry      `json:"moodEntries"`
	Habits           []models.Habit          `json:"habits"`
	Affirmations     []models.Affirmation    `json:"affirmations"`
	GratitudeEntries []models.GratitudeEntry `json:"gratitudeEntries"`
	DailyAffirmation *models.Affirmation     `json:"dailyAffirmation"`
}

// defaultAffirmationTexts is the built-in set seeded at first initialization.
var defaultAffirmationTexts = []string{
	"I am worthy of love and respect",
	"Today I choose calm over worry",
	"I have the power to create positive change",
	"I am enough exactly as I am",
	"I celebrate my strengths and accept my weaknesses",
	"My potential is limitless",
	"I release what I cannot control",
	"Each breath brings me peace and clarity",
	"Today is full of possibilities",
	"I trust my journey, even when the path isn't clear",
}

// MoodEntryInput carries the caller-supplied fields for a mood check-in.
// An empty Date means "today".
type MoodEntryInput struct {
	Date string
	Mood models.Mood
	Note string
	Tags []string
}

// HabitInput carries the caller-supplied fields for a new habit.
type HabitInput struct {
	Name        string
	Description string
	Icon        string
}

// GratitudeInput carries the caller-supplied fields for a gratitude entry.
// An empty Date means "today".
type GratitudeInput struct {
	Date string
	Text string
}

// WellnessStore owns mood entries, habits, affirmations, gratitude entries
// and the daily-affirmation singleton. All mutations are synchronous, enforce
// the one-entry-per-day invariants on mood and gratitude, persist the full
// snapshot, and then notify subscribers. The store never validates input and
// never fails: unknown mutation targets are silent no-ops and persistence
// errors are logged without affecting the in-memory transition.
//
// Concurrency note:
//   - WellnessStore is not safe for concurrent use by multiple goroutines
//     without external synchronization; the application runs it from a single
//     logical caller.
type WellnessStore struct {
	provider    storage.Provider
	state       wellnessSnapshot
	subscribers map[int]func()
	nextSubID   int
}

// NewWellnessStore rehydrates the store from the provider's
// sereniflow-storage slot. An absent or unparseable snapshot resets to the
// default state (ten seeded affirmations, everything else empty).
func NewWellnessStore(p storage.Provider) *WellnessStore {
	s := &WellnessStore{
		provider:    p,
		subscribers: make(map[int]func()),
	}
	s.rehydrate()
	return s
}

func defaultWellnessState() wellnessSnapshot {
	today := utils.Today()
	affirmations := make([]models.Affirmation, 0, len(defaultAffirmationTexts))
	for _, text := range defaultAffirmationTexts {
		affirmations = append(affirmations, models.Affirmation{
			ID:        uuid.New().String(),
			Text:      text,
			CreatedAt: today,
		})
	}
	return wellnessSnapshot{
		MoodEntries:      []models.MoodEntry{},
		Habits:           []models.Habit{},
		Affirmations:     affirmations,
		GratitudeEntries: []models.GratitudeEntry{},
	}
}

func (s *WellnessStore) rehydrate() {
	data, err := s.provider.Get(constants.WellnessStorageKey)
	if err == nil {
		var snap wellnessSnapshot
		if jsonErr := json.Unmarshal(data, &snap); jsonErr == nil {
			normalizeWellness(&snap)
			s.state = snap
			return
		}
		logger.Warn("malformed wellness snapshot, resetting to defaults")
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		logger.Warn("could not read wellness snapshot, resetting to defaults", "error", err)
	}

	s.state = defaultWellnessState()
	s.persist()
}

// normalizeWellness ensures rehydrated collections are non-nil so appends and
// serialization behave uniformly.
func normalizeWellness(snap *wellnessSnapshot) {
	if snap.MoodEntries == nil {
		snap.MoodEntries = []models.MoodEntry{}
	}
	if snap.Habits == nil {
		snap.Habits = []models.Habit{}
	}
	if snap.Affirmations == nil {
		snap.Affirmations = []models.Affirmation{}
	}
	if snap.GratitudeEntries == nil {
		snap.GratitudeEntries = []models.GratitudeEntry{}
	}
}

// Subscribe registers a callback invoked after every committed mutation and
// returns an unsubscribe function.
func (s *WellnessStore) Subscribe(fn func()) func() {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() { delete(s.subscribers, id) }
}

func (s *WellnessStore) commit() {
	s.persist()
	for _, fn := range s.subscribers {
		fn()
	}
}

// persist serializes the full snapshot to the storage slot. Failures are
// logged only: the in-memory state remains the source of truth for
// subsequent reads.
func (s *WellnessStore) persist() {
	data, err := json.Marshal(s.state)
	if err != nil {
		logger.Error("failed to serialize wellness snapshot", "error", err)
		return
	}
	if err := s.provider.Put(constants.WellnessStorageKey, data); err != nil {
		logger.Error("failed to persist wellness snapshot", "error", err)
	}
}

// AddMoodEntry records a mood check-in. If an entry already exists for the
// input's date its fields are replaced but its id is preserved; otherwise a
// new entry is created with a fresh id.
func (s *WellnessStore) AddMoodEntry(input MoodEntryInput) {
	date := input.Date
	if date == "" {
		date = utils.Today()
	}

	entry := models.MoodEntry{
		Date: date,
		Mood: input.Mood,
		Note: input.Note,
		Tags: copyStrings(input.Tags),
	}

	for i := range s.state.MoodEntries {
		if s.state.MoodEntries[i].Date == date {
			entry.ID = s.state.MoodEntries[i].ID
			s.state.MoodEntries[i] = entry
			s.commit()
			return
		}
	}

	entry.ID = uuid.New().String()
	s.state.MoodEntries = append(s.state.MoodEntries, entry)
	s.commit()
}

// AddHabit creates a habit with no completion history, created today.
func (s *WellnessStore) AddHabit(input HabitInput) {
	s.state.Habits = append(s.state.Habits, models.Habit{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Description:    input.Description,
		Icon:           input.Icon,
		CompletedDates: []string{},
		CreatedAt:      utils.Today(),
	})
	s.commit()
}

// ToggleHabitCompletion adds the date key to the habit's completions if
// absent and removes it if present. Unknown habit ids are a silent no-op.
func (s *WellnessStore) ToggleHabitCompletion(habitID, date string) {
	for i := range s.state.Habits {
		if s.state.Habits[i].ID != habitID {
			continue
		}

		habit := &s.state.Habits[i]
		for j, d := range habit.CompletedDates {
			if d == date {
				habit.CompletedDates = append(habit.CompletedDates[:j], habit.CompletedDates[j+1:]...)
				s.commit()
				return
			}
		}

		habit.CompletedDates = append(habit.CompletedDates, date)
		s.commit()
		return
	}
}

// DeleteHabit removes the habit and its completion history. No soft delete;
// unknown ids are a silent no-op.
func (s *WellnessStore) DeleteHabit(habitID string) {
	for i := range s.state.Habits {
		if s.state.Habits[i].ID == habitID {
			s.state.Habits = append(s.state.Habits[:i], s.state.Habits[i+1:]...)
			s.commit()
			return
		}
	}
}

// AddAffirmation creates a non-favorite affirmation created today.
func (s *WellnessStore) AddAffirmation(text string) {
	s.state.Affirmations = append(s.state.Affirmations, models.Affirmation{
		ID:        uuid.New().String(),
		Text:      text,
		CreatedAt: utils.Today(),
	})
	s.commit()
}

// ToggleFavoriteAffirmation flips the favorite flag. Unknown ids are a
// silent no-op.
func (s *WellnessStore) ToggleFavoriteAffirmation(id string) {
	for i := range s.state.Affirmations {
		if s.state.Affirmations[i].ID == id {
			s.state.Affirmations[i].IsFavorite = !s.state.Affirmations[i].IsFavorite
			s.commit()
			return
		}
	}
}

// AddGratitudeEntry records a gratitude reflection with the same
// replace-by-date semantics as mood entries.
func (s *WellnessStore) AddGratitudeEntry(input GratitudeInput) {
	date := input.Date
	if date == "" {
		date = utils.Today()
	}

	entry := models.GratitudeEntry{
		Date: date,
		Text: input.Text,
	}

	for i := range s.state.GratitudeEntries {
		if s.state.GratitudeEntries[i].Date == date {
			entry.ID = s.state.GratitudeEntries[i].ID
			s.state.GratitudeEntries[i] = entry
			s.commit()
			return
		}
	}

	entry.ID = uuid.New().String()
	s.state.GratitudeEntries = append(s.state.GratitudeEntries, entry)
	s.commit()
}

// SetDailyAffirmation unconditionally overwrites the daily-affirmation
// singleton.
func (s *WellnessStore) SetDailyAffirmation(a models.Affirmation) {
	s.state.DailyAffirmation = &a
	s.commit()
}

// EnsureDailyAffirmation picks a uniformly random affirmation only when none
// is set. Once set it stays until explicitly overwritten; there is no
// automatic re-roll on a new calendar day.
func (s *WellnessStore) EnsureDailyAffirmation() {
	if s.state.DailyAffirmation != nil || len(s.state.Affirmations) == 0 {
		return
	}
	s.SetDailyAffirmation(s.state.Affirmations[rand.Intn(len(s.state.Affirmations))])
}

// DailyAffirmation returns the current daily affirmation, if any.
func (s *WellnessStore) DailyAffirmation() (models.Affirmation, bool) {
	if s.state.DailyAffirmation == nil {
		return models.Affirmation{}, false
	}
	return *s.state.DailyAffirmation, true
}

// TodaysMoodEntry returns the mood entry for the current calendar day.
func (s *WellnessStore) TodaysMoodEntry() (models.MoodEntry, bool) {
	return s.MoodEntryForDate(utils.Today())
}

// MoodEntryForDate returns the mood entry for the given day key.
func (s *WellnessStore) MoodEntryForDate(date string) (models.MoodEntry, bool) {
	for _, entry := range s.state.MoodEntries {
		if entry.Date == date {
			entry.Tags = copyStrings(entry.Tags)
			return entry, true
		}
	}
	return models.MoodEntry{}, false
}

// TodaysGratitudeEntry returns the gratitude entry for the current calendar
// day.
func (s *WellnessStore) TodaysGratitudeEntry() (models.GratitudeEntry, bool) {
	today := utils.Today()
	for _, entry := range s.state.GratitudeEntries {
		if entry.Date == today {
			return entry, true
		}
	}
	return models.GratitudeEntry{}, false
}

// HabitCompletionForDate reports whether the habit was completed on the given
// day. Unknown habit ids report false.
func (s *WellnessStore) HabitCompletionForDate(habitID, date string) bool {
	for _, habit := range s.state.Habits {
		if habit.ID == habitID {
			for _, d := range habit.CompletedDates {
				if d == date {
					return true
				}
			}
			return false
		}
	}
	return false
}

// MoodEntries returns a copy of all mood entries in insertion order.
func (s *WellnessStore) MoodEntries() []models.MoodEntry {
	out := make([]models.MoodEntry, len(s.state.MoodEntries))
	copy(out, s.state.MoodEntries)
	for i := range out {
		out[i].Tags = copyStrings(out[i].Tags)
	}
	return out
}

// Habits returns a copy of all habits in insertion order.
func (s *WellnessStore) Habits() []models.Habit {
	out := make([]models.Habit, len(s.state.Habits))
	copy(out, s.state.Habits)
	for i := range out {
		out[i].CompletedDates = copyStrings(out[i].CompletedDates)
	}
	return out
}

// Habit returns the habit with the given id.
func (s *WellnessStore) Habit(id string) (models.Habit, bool) {
	for _, habit := range s.state.Habits {
		if habit.ID == id {
			habit.CompletedDates = copyStrings(habit.CompletedDates)
			return habit, true
		}
	}
	return models.Habit{}, false
}

// Affirmations returns a copy of all affirmations in insertion order.
func (s *WellnessStore) Affirmations() []models.Affirmation {
	out := make([]models.Affirmation, len(s.state.Affirmations))
	copy(out, s.state.Affirmations)
	return out
}

// GratitudeEntries returns a copy of all gratitude entries in insertion
// order.
func (s *WellnessStore) GratitudeEntries() []models.GratitudeEntry {
	out := make([]models.GratitudeEntry, len(s.state.GratitudeEntries))
	copy(out, s.state.GratitudeEntries)
	return out
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
