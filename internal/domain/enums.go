package domain

// Difficulty grades a vocabulary word.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// AttemptSource tells how a history entry was produced.
type AttemptSource string

const (
	// AttemptTyped is a typed answer scored by the similarity scorer.
	AttemptTyped AttemptSource = "typed"
	// AttemptRecording is a voice recording; its score arrives later, if ever,
	// from the prediction service.
	AttemptRecording AttemptSource = "recording"
)

func (s AttemptSource) String() string { return string(s) }

func (s AttemptSource) IsValid() bool {
	switch s {
	case AttemptTyped, AttemptRecording:
		return true
	}
	return false
}

// GameType identifies the activity that produced a practice session.
type GameType string

const (
	GameTypePronunciationPractice GameType = "pronunciation-practice"
	GameTypeMatching              GameType = "matching"
	GameTypeWordPractice          GameType = "word-practice"
)

func (g GameType) String() string { return string(g) }

func (g GameType) IsValid() bool {
	switch g {
	case GameTypePronunciationPractice, GameTypeMatching, GameTypeWordPractice:
		return true
	}
	return false
}

// PredictionLabel is the verdict returned by the prediction service.
type PredictionLabel string

const (
	PredictionCorrect   PredictionLabel = "correct"
	PredictionIncorrect PredictionLabel = "incorrect"
)

func (p PredictionLabel) String() string { return string(p) }
