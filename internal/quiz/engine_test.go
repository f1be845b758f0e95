package quiz

import "testing"

func answerKey() [NumQuestions]string {
	return [NumQuestions]string{"a", "b", "c", "d", "a", "b", "c", "d", "a", "b"}
}

func TestEngine_PerfectScore(t *testing.T) {
	e := NewEngine(7)
	key := answerKey()
	for i := 0; i < NumQuestions; i++ {
		e.SetAnswer(i, key[i])
	}
	if !e.Submit(key) {
		t.Fatal("submit with all slots set should succeed")
	}
	if e.Score() != 10 {
		t.Errorf("Score = %d, want 10", e.Score())
	}
	if !e.Passed() {
		t.Error("perfect score should pass")
	}
}

func TestEngine_ScoreInvariantUnderEntryOrder(t *testing.T) {
	key := answerKey()

	forward := NewEngine(7)
	for i := 0; i < NumQuestions; i++ {
		forward.SetAnswer(i, key[i])
	}
	forward.Submit(key)

	backward := NewEngine(7)
	for i := NumQuestions - 1; i >= 0; i-- {
		backward.SetAnswer(i, key[i])
	}
	backward.Submit(key)

	if forward.Score() != backward.Score() {
		t.Errorf("order changed the score: %d vs %d", forward.Score(), backward.Score())
	}
}

func TestEngine_EightOfTenPasses(t *testing.T) {
	e := NewEngine(7)
	key := answerKey()
	// Correct on indices 0..6 and 9, wrong on 7 and 8.
	for i := 0; i < NumQuestions; i++ {
		e.SetAnswer(i, key[i])
	}
	e.SetAnswer(7, "wrong")
	e.SetAnswer(8, "wrong")

	if !e.Submit(key) {
		t.Fatal("submit failed")
	}
	if e.Score() != 8 {
		t.Errorf("Score = %d, want 8", e.Score())
	}
	if !e.Passed() {
		t.Error("8/10 with threshold 7 should pass")
	}
}

func TestEngine_SixOfTenFails(t *testing.T) {
	e := NewEngine(7)
	key := answerKey()
	for i := 0; i < NumQuestions; i++ {
		if i < 6 {
			e.SetAnswer(i, key[i])
		} else {
			e.SetAnswer(i, "wrong")
		}
	}
	e.Submit(key)
	if e.Score() != 6 {
		t.Errorf("Score = %d, want 6", e.Score())
	}
	if e.Passed() {
		t.Error("6/10 with threshold 7 should fail")
	}
}

func TestEngine_SubmitRequiresAllAnswered(t *testing.T) {
	e := NewEngine(7)
	e.SetAnswer(0, "a")
	if e.Submit(answerKey()) {
		t.Error("submit with unanswered slots should be rejected")
	}
	if e.Submitted() {
		t.Error("rejected submit must not lock the engine")
	}
}

func TestEngine_ResubmitRejectedUntilReset(t *testing.T) {
	e := NewEngine(7)
	key := answerKey()
	for i := 0; i < NumQuestions; i++ {
		e.SetAnswer(i, key[i])
	}
	e.Submit(key)

	if e.Submit(key) {
		t.Error("second submit without reset should be rejected")
	}

	// Answers are frozen after submission.
	e.SetAnswer(0, "z")
	if e.Answer(0) != "a" {
		t.Error("answers must not change after submission")
	}

	e.Reset()
	if e.Submitted() || e.AnsweredCount() != 0 {
		t.Error("reset should clear answers and submitted flag")
	}
}

func TestEngine_OverwriteBeforeSubmit(t *testing.T) {
	e := NewEngine(7)
	e.SetAnswer(3, "a")
	e.SetAnswer(3, "d")
	if e.Answer(3) != "d" {
		t.Errorf("Answer(3) = %q, want d", e.Answer(3))
	}
	if e.AnsweredCount() != 1 {
		t.Errorf("AnsweredCount = %d, want 1", e.AnsweredCount())
	}
}

func TestEngine_BadThresholdFallsBack(t *testing.T) {
	if NewEngine(0).PassThreshold() != DefaultPassThreshold {
		t.Error("threshold 0 should fall back to default")
	}
	if NewEngine(99).PassThreshold() != DefaultPassThreshold {
		t.Error("threshold beyond quiz length should fall back to default")
	}
	if NewEngine(9).PassThreshold() != 9 {
		t.Error("valid threshold should be kept")
	}
}

func TestEngine_OutOfRangeIndicesIgnored(t *testing.T) {
	e := NewEngine(7)
	e.SetAnswer(-1, "a")
	e.SetAnswer(NumQuestions, "a")
	if e.AnsweredCount() != 0 {
		t.Error("out-of-range answers should be ignored")
	}
	if e.Answer(-1) != "" || e.Answer(NumQuestions) != "" {
		t.Error("out-of-range reads should return empty")
	}
}
