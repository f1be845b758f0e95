package lesson

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/npradeep/joule/internal/audio"
	engine "github.com/npradeep/joule/internal/lesson"
	"github.com/npradeep/joule/internal/phase"
	"github.com/npradeep/joule/internal/predict"
	"github.com/npradeep/joule/internal/router"
	"github.com/npradeep/joule/internal/screen"
	"github.com/npradeep/joule/internal/store"
	"github.com/npradeep/joule/internal/topic"
	"github.com/npradeep/joule/internal/ui/components"
	"github.com/npradeep/joule/internal/ui/layout"
)

// maxTickMs caps the simulated time applied per tick so a stalled
// event loop cannot fast-forward the kernel.
const maxTickMs = 250

// LessonScreen drives one topic through the guided-discovery flow.
// All lesson semantics live in the engine module; the screen translates
// key presses into module calls and renders the current phase.
type LessonScreen struct {
	mod       *engine.Module
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo
	sound     *audio.Player

	sliders   []components.Slider
	sliderIdx int
	spark     *components.Sparkline

	paramInput   components.TextInput
	editingParam bool

	choice      components.Choice
	twistChoice components.Choice

	cardIdx int

	qIdx   int
	optIdx int

	lastTick  time.Time
	simActive bool

	showQuitConfirm bool

	// runID groups the events of one sitting.
	runID string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)
var _ screen.BadgeProvider = (*LessonScreen)(nil)
var _ screen.EscInterceptor = (*LessonScreen)(nil)

// New creates a lesson screen for a topic, resuming saved progress when
// a snapshot holds any.
func New(tp topic.Topic, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, sound *audio.Player) *LessonScreen {
	s := &LessonScreen{
		eventRepo: eventRepo,
		snapRepo:  snapRepo,
		sound:     sound,
		runID:     uuid.New().String(),
	}

	saved := loadProgress(snapRepo, tp.ID)

	opts := engine.Options{
		Emit: s.persistEvent,
		Callbacks: engine.Callbacks{
			OnPass: func() {
				if sound != nil {
					sound.PlayPass()
				}
			},
			OnFail: func() {
				if sound != nil {
					sound.PlayFail()
				}
			},
		},
	}
	if saved != nil {
		opts.ResumePhase = saved.ResumePhase
	}
	s.mod = engine.New(tp, opts)

	if saved != nil && len(saved.Lesson) > 0 {
		var st engine.State
		if err := json.Unmarshal(saved.Lesson, &st); err == nil {
			s.mod.Restore(st)
		}
	}

	s.rebuildPhaseUI()
	return s
}

func (s *LessonScreen) Init() tea.Cmd {
	return s.armSim()
}

func (s *LessonScreen) Title() string {
	return s.mod.Topic().Title
}

// Badge shows the phase position in the header.
func (s *LessonScreen) Badge() string {
	pos, total := s.mod.Position()
	return fmt.Sprintf("%s %d/%d", s.mod.PhaseLabel(), pos, total)
}

// InterceptEsc keeps esc for the quit confirmation except on the final
// phase, where there is nothing left to abandon.
func (s *LessonScreen) InterceptEsc() bool {
	return s.mod.Phase() != phase.Mastery
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	if s.showQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave lesson"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.mod.Phase() {
	case phase.Predict, phase.TwistPredict:
		if !s.activePrediction().HasAnswered() {
			return []layout.KeyHint{
				{Key: "↑↓", Description: "Choose"},
				{Key: "Enter", Description: "Lock in"},
				{Key: "B", Description: "Back"},
			}
		}
	case phase.Play, phase.TwistPlay:
		return []layout.KeyHint{
			{Key: "←→", Description: "Adjust"},
			{Key: "Tab", Description: "Next control"},
			{Key: "N", Description: "Continue"},
			{Key: "B", Description: "Back"},
		}
	case phase.Transfer:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Card"},
			{Key: "Enter", Description: "Read"},
			{Key: "N", Description: "Continue"},
			{Key: "B", Description: "Back"},
		}
	case phase.Test:
		if !s.mod.Quiz().Submitted() {
			return []layout.KeyHint{
				{Key: "↑↓", Description: "Option"},
				{Key: "←→", Description: "Question"},
				{Key: "Enter", Description: "Answer"},
				{Key: "S", Description: "Submit"},
			}
		}
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "N", Description: "Continue"},
		}
	case phase.Mastery:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Finish"},
		}
	}
	return []layout.KeyHint{
		{Key: "N/Enter", Description: "Continue"},
		{Key: "B", Description: "Back"},
		{Key: "Esc", Description: "Leave"},
	}
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case simTickMsg:
		return s.handleSimTick(time.Time(msg))
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *LessonScreen) handleSimTick(t time.Time) (screen.Screen, tea.Cmd) {
	if !s.mod.Simulating() {
		s.simActive = false
		return s, nil
	}

	dtMs := t.Sub(s.lastTick).Seconds() * 1000
	s.lastTick = t
	if dtMs < 0 {
		dtMs = 0
	}
	if dtMs > maxTickMs {
		dtMs = maxTickMs
	}
	s.mod.TickSim(dtMs)

	if st := s.mod.Status(); s.spark != nil && len(st.Metrics) > 0 {
		s.spark.Push(st.Metrics[0].Value)
	}

	return s, tea.Tick(s.mod.Kernel().TickInterval(), func(t time.Time) tea.Msg {
		return simTickMsg(t)
	})
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showQuitConfirm {
		switch key {
		case "y", "Y":
			s.showQuitConfirm = false
			s.saveProgress(nil)
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showQuitConfirm = false
		}
		return s, nil
	}

	if key == "esc" {
		if s.editingParam {
			s.editingParam = false
			return s, nil
		}
		s.showQuitConfirm = true
		return s, nil
	}

	// Back works everywhere; the module silently rejects it on the
	// first phase and during settle.
	if key == "b" && !s.editingParam {
		if s.mod.Back() {
			s.rebuildPhaseUI()
			s.saveProgress(nil)
			return s, s.armSim()
		}
		return s, nil
	}

	switch s.mod.Phase() {
	case phase.Predict, phase.TwistPredict:
		return s.handlePredictKey(msg)
	case phase.Play, phase.TwistPlay:
		return s.handlePlayKey(msg)
	case phase.Transfer:
		return s.handleTransferKey(key)
	case phase.Test:
		return s.handleTestKey(key)
	case phase.Mastery:
		if key == "enter" || key == "n" {
			s.saveProgress(nil)
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	// Reading phases advance on enter or n.
	if key == "enter" || key == "n" {
		return s, s.tryAdvance()
	}
	return s, nil
}

func (s *LessonScreen) handlePredictKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	tr := s.activePrediction()

	if tr.HasAnswered() {
		if key == "enter" || key == "n" {
			return s, s.tryAdvance()
		}
		return s, nil
	}

	c := s.activeChoice()
	*c, _ = c.Update(msg)
	if c.HasChosen() {
		s.mod.ChoosePrediction(c.ChosenID())
		c.Reveal(s.activePredictionSpec().CorrectID)
		s.saveProgress(nil)
	}
	return s, nil
}

func (s *LessonScreen) handlePlayKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.editingParam {
		return s.handleParamEdit(msg)
	}

	switch msg.String() {
	case "enter", "n":
		return s, s.tryAdvance()
	case "e":
		if s.sliderIdx >= 0 && s.sliderIdx < len(s.sliders) {
			s.editingParam = true
			s.paramInput = components.NewTextInput("exact value", true, 12)
			return s, s.paramInput.Init()
		}
		return s, nil
	case "tab", "down", "j":
		s.focusSlider(s.sliderIdx + 1)
		return s, nil
	case "shift+tab", "up", "k":
		s.focusSlider(s.sliderIdx - 1)
		return s, nil
	case "r":
		s.mod.Kernel().Reset()
		s.buildSliders()
		if s.spark != nil {
			s.spark.Reset()
		}
		return s, nil
	}

	if s.sliderIdx >= 0 && s.sliderIdx < len(s.sliders) {
		var changed bool
		s.sliders[s.sliderIdx], changed = s.sliders[s.sliderIdx].Update(msg)
		if changed {
			sl := s.sliders[s.sliderIdx]
			s.mod.SetParam(sl.Spec.Name, sl.Value)
		}
	}
	return s, nil
}

// handleParamEdit routes keys to the numeric entry box opened with e.
// Enter applies the typed value through the kernel's clamping.
func (s *LessonScreen) handleParamEdit(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.editingParam = false
		return s, nil
	case "enter":
		v, err := s.paramInput.NumericValue()
		if err != nil {
			s.paramInput.Submit(false)
			return s, nil
		}
		sl := &s.sliders[s.sliderIdx]
		s.mod.SetParam(sl.Spec.Name, v)
		sl.Value = s.mod.Kernel().Param(sl.Spec.Name)
		s.editingParam = false
		return s, nil
	}

	var cmd tea.Cmd
	s.paramInput, cmd = s.paramInput.Update(msg)
	return s, cmd
}

func (s *LessonScreen) handleTransferKey(key string) (screen.Screen, tea.Cmd) {
	apps := s.mod.Topic().Applications
	switch key {
	case "up", "k", "left", "h":
		if s.cardIdx > 0 {
			s.cardIdx--
		}
	case "down", "j", "right", "l":
		if s.cardIdx < len(apps)-1 {
			s.cardIdx++
		}
	case "enter":
		s.mod.MarkViewed(s.cardIdx)
		s.saveProgress(nil)
	case "n":
		return s, s.tryAdvance()
	}
	return s, nil
}

func (s *LessonScreen) handleTestKey(key string) (screen.Screen, tea.Cmd) {
	q := s.mod.Quiz()
	questions := s.mod.Topic().Questions

	if q.Submitted() {
		switch key {
		case "left", "h":
			if s.qIdx > 0 {
				s.qIdx--
			}
		case "right", "l":
			if s.qIdx < len(questions)-1 {
				s.qIdx++
			}
		case "enter", "n":
			return s, s.tryAdvance()
		}
		return s, nil
	}

	switch key {
	case "up", "k":
		if s.optIdx > 0 {
			s.optIdx--
		}
	case "down", "j":
		opts := questions[s.qIdx].Options
		if s.optIdx < len(opts)-1 {
			s.optIdx++
		}
	case "left", "h":
		if s.qIdx > 0 {
			s.qIdx--
			s.syncOptCursor()
		}
	case "right", "l":
		if s.qIdx < len(questions)-1 {
			s.qIdx++
			s.syncOptCursor()
		}
	case "enter":
		opts := questions[s.qIdx].Options
		if s.optIdx >= 0 && s.optIdx < len(opts) {
			s.mod.SetQuizAnswer(s.qIdx, opts[s.optIdx].ID)
			s.advanceToUnanswered()
			s.saveProgress(nil)
		}
	case "s":
		if s.mod.Quiz().AllAnswered() {
			if s.mod.SubmitQuiz() {
				s.qIdx = 0
				s.recordQuizResult()
			}
		}
	}
	return s, nil
}

// tryAdvance asks the module to move forward and, on success, rebuilds
// the per-phase UI and persists progress.
func (s *LessonScreen) tryAdvance() tea.Cmd {
	if !s.mod.Advance() {
		return nil
	}
	if s.sound != nil {
		s.sound.PlayAdvance()
	}
	s.rebuildPhaseUI()
	s.saveProgress(nil)
	return s.armSim()
}

// armSim starts the simulation tick chain. Only one chain runs at a
// time; re-entering a play phase while a chain is live is a no-op.
func (s *LessonScreen) armSim() tea.Cmd {
	if !s.mod.Simulating() || s.simActive {
		return nil
	}
	s.simActive = true
	s.lastTick = time.Now()
	return tea.Tick(s.mod.Kernel().TickInterval(), func(t time.Time) tea.Msg {
		return simTickMsg(t)
	})
}

// rebuildPhaseUI resets the per-phase widgets after a phase change.
func (s *LessonScreen) rebuildPhaseUI() {
	tp := s.mod.Topic()
	switch s.mod.Phase() {
	case phase.Predict:
		s.choice = buildChoice(tp.Predict, s.mod.Prediction())
	case phase.TwistPredict:
		s.twistChoice = buildChoice(tp.TwistPredict, s.mod.TwistPrediction())
	case phase.Play, phase.TwistPlay:
		s.buildSliders()
		s.editingParam = false
		label := ""
		if st := s.mod.Status(); len(st.Metrics) > 0 {
			label = st.Metrics[0].Label
		}
		s.spark = components.NewSparkline(label)
	case phase.Transfer:
		if s.cardIdx >= len(tp.Applications) {
			s.cardIdx = 0
		}
	case phase.Test:
		s.qIdx = 0
		s.advanceToUnanswered()
	}
}

func (s *LessonScreen) buildSliders() {
	kern := s.mod.Kernel()
	specs := kern.Specs()
	s.sliders = make([]components.Slider, len(specs))
	for i, spec := range specs {
		s.sliders[i] = components.NewSlider(spec, kern.Param(spec.Name))
	}
	s.sliderIdx = 0
	s.focusSlider(0)
}

func (s *LessonScreen) focusSlider(idx int) {
	if len(s.sliders) == 0 {
		return
	}
	if idx < 0 {
		idx = len(s.sliders) - 1
	}
	if idx >= len(s.sliders) {
		idx = 0
	}
	for i := range s.sliders {
		s.sliders[i].Focused = i == idx
	}
	s.sliderIdx = idx
}

// advanceToUnanswered moves the question cursor to the first question
// without an answer, staying put when every question has one.
func (s *LessonScreen) advanceToUnanswered() {
	q := s.mod.Quiz()
	n := len(s.mod.Topic().Questions)
	for i := 0; i < n; i++ {
		idx := (s.qIdx + i) % n
		if q.Answer(idx) == "" {
			s.qIdx = idx
			s.syncOptCursor()
			return
		}
	}
	s.syncOptCursor()
}

// syncOptCursor points the option cursor at the saved answer for the
// current question, or the first option.
func (s *LessonScreen) syncOptCursor() {
	s.optIdx = 0
	answered := s.mod.Quiz().Answer(s.qIdx)
	if answered == "" {
		return
	}
	for i, o := range s.mod.Topic().Questions[s.qIdx].Options {
		if o.ID == answered {
			s.optIdx = i
			return
		}
	}
}

func (s *LessonScreen) activePrediction() *predict.Tracker {
	if s.mod.Phase() == phase.TwistPredict {
		return s.mod.TwistPrediction()
	}
	return s.mod.Prediction()
}

func (s *LessonScreen) activeChoice() *components.Choice {
	if s.mod.Phase() == phase.TwistPredict {
		return &s.twistChoice
	}
	return &s.choice
}

func (s *LessonScreen) activePredictionSpec() topic.Prediction {
	if s.mod.Phase() == phase.TwistPredict {
		return s.mod.Topic().TwistPredict
	}
	return s.mod.Topic().Predict
}

func buildChoice(p topic.Prediction, tr *predict.Tracker) components.Choice {
	opts := make([]components.ChoiceOption, len(p.Options))
	for i, o := range p.Options {
		opts[i] = components.ChoiceOption{ID: o.ID, Label: o.Label}
	}
	c := components.NewChoice(p.Prompt, opts)
	if tr.HasAnswered() {
		c.Select(tr.Chosen())
		c.Reveal(p.CorrectID)
	}
	return c
}

// persistEvent appends a module event to the store. Persistence is
// fire-and-forget; a write failure never disturbs the lesson.
func (s *LessonScreen) persistEvent(e engine.Event) {
	if s.eventRepo == nil {
		return
	}
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details["run_id"] = s.runID

	ctx := context.Background()
	_ = s.eventRepo.AppendLessonEvent(ctx, store.LessonEventData{
		TopicID:    e.TopicID,
		TopicTitle: e.TopicTitle,
		EventType:  string(e.Type),
		Details:    details,
	})
}

// recordQuizResult appends the dedicated quiz event and folds the
// outcome into the topic's progress record.
func (s *LessonScreen) recordQuizResult() {
	q := s.mod.Quiz()
	tp := s.mod.Topic()
	score := q.Score()

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendQuizEvent(context.Background(), store.QuizEventData{
			TopicID:       tp.ID,
			Score:         score,
			Total:         len(tp.Questions),
			PassThreshold: tp.PassThreshold,
			Passed:        q.Passed(),
		})
	}

	s.saveProgress(func(prog *store.TopicProgress) {
		prog.Attempts++
		if score > prog.BestScore {
			prog.BestScore = score
		}
		if q.Passed() {
			prog.Passed = true
		}
	})
}

// saveProgress writes the topic's progress into a fresh snapshot,
// carrying forward every other topic's entry. The optional update runs
// after the common fields are set.
func (s *LessonScreen) saveProgress(update func(*store.TopicProgress)) {
	if s.snapRepo == nil {
		return
	}
	ctx := context.Background()

	data := store.NewSnapshotData()
	if snap, err := s.snapRepo.Latest(ctx); err == nil && snap != nil {
		data = snap.Data
	}

	tp := s.mod.Topic()
	prog := data.Topic(tp.ID)
	prog.ResumePhase = string(s.mod.Phase())
	prog.LastPlayedAt = time.Now()
	if raw, err := json.Marshal(s.mod.Snapshot()); err == nil {
		prog.Lesson = raw
	}
	if update != nil {
		update(prog)
	}

	_ = s.snapRepo.Save(ctx, &store.Snapshot{
		Timestamp: time.Now(),
		Data:      data,
	})
}

// loadProgress fetches the saved progress entry for a topic, or nil.
func loadProgress(snapRepo store.SnapshotRepo, topicID string) *store.TopicProgress {
	if snapRepo == nil {
		return nil
	}
	snap, err := snapRepo.Latest(context.Background())
	if err != nil || snap == nil {
		return nil
	}
	return snap.Data.Topics[topicID]
}
