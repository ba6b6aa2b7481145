package session

import (
	"sync"

	"github.com/KirkDiggler/standupbot/internal/models"
)

// inputKind classifies what a participant sent
type inputKind int

const (
	inputText inputKind = iota
	inputNoBlocker
	inputBlocker
	inputMood
	inputSkip
)

type transition struct {
	from  models.StandupStep
	input inputKind
}

// transitions is the interview state machine. Choosing no blocker jumps
// straight from the category to the mood question.
var transitions = map[transition]models.StandupStep{
	{models.StepYesterday, inputText}:            models.StepToday,
	{models.StepToday, inputText}:                models.StepTechnical,
	{models.StepTechnical, inputText}:            models.StepBlockerCategory,
	{models.StepBlockerCategory, inputNoBlocker}: models.StepMood,
	{models.StepBlockerCategory, inputBlocker}:   models.StepBlockerDetail,
	{models.StepBlockerDetail, inputText}:        models.StepMood,
	{models.StepMood, inputMood}:                 models.StepComplete,
	{models.StepMood, inputSkip}:                 models.StepComplete,
}

// nextStep returns the step reached from step by input
func nextStep(step models.StandupStep, input inputKind) (models.StandupStep, bool) {
	next, ok := transitions[transition{from: step, input: input}]
	return next, ok
}

// textAnswer returns the answers delta of a free-text answer at step
func textAnswer(step models.StandupStep, text string) models.StandupAnswers {
	var answers models.StandupAnswers
	switch step {
	case models.StepYesterday:
		answers.Yesterday = &text
	case models.StepToday:
		answers.Today = &text
	case models.StepTechnical:
		answers.Technical = &text
	case models.StepBlockerDetail:
		answers.BlockerDetail = &text
	}
	return answers
}

// activeSession is the in-memory view of an in-progress interview
type activeSession struct {
	participantID   string
	participantName string
	standupDate     string
	step            models.StandupStep
	answers         models.StandupAnswers
	isLate          bool
}

func (a *activeSession) prompt() *Prompt {
	prompt := &Prompt{
		ParticipantID: a.participantID,
		StandupDate:   a.standupDate,
		Step:          a.step,
		IsLate:        a.isLate,
	}
	if a.answers.BlockerCategory != nil {
		prompt.BlockerCategory = *a.answers.BlockerCategory
	}
	return prompt
}

// participantLocks serializes work per participant. An entry lives only
// while someone holds or waits on it.
type participantLocks struct {
	mu    sync.Mutex
	locks map[string]*participantLock
}

type participantLock struct {
	sync.Mutex
	refs int
}

func (p *participantLocks) lock(participantID string) func() {
	p.mu.Lock()
	if p.locks == nil {
		p.locks = make(map[string]*participantLock)
	}
	l, ok := p.locks[participantID]
	if !ok {
		l = &participantLock{}
		p.locks[participantID] = l
	}
	l.refs++
	p.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()

		p.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(p.locks, participantID)
		}
		p.mu.Unlock()
	}
}

// resumeStep moves a checkpointed step past questions whose answer is already
// recorded, so a resumed session never asks the same question twice
func resumeStep(step models.StandupStep, answers models.StandupAnswers) models.StandupStep {
	for {
		var next models.StandupStep
		var ok bool

		switch step {
		case models.StepYesterday:
			ok = answers.Yesterday != nil
			next = models.StepToday
		case models.StepToday:
			ok = answers.Today != nil
			next = models.StepTechnical
		case models.StepTechnical:
			ok = answers.Technical != nil
			next = models.StepBlockerCategory
		case models.StepBlockerCategory:
			if answers.BlockerCategory != nil {
				ok = true
				next = models.StepBlockerDetail
				if answers.BlockerCategory.IsNone() {
					next = models.StepMood
				}
			}
		case models.StepBlockerDetail:
			ok = answers.BlockerDetail != nil
			next = models.StepMood
		}

		if !ok {
			return step
		}
		step = next
	}
}
