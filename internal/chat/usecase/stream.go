package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"tweet-insights-srv/internal/chat"
	"tweet-insights-srv/pkg/gemini"
	"tweet-insights-srv/pkg/metrics"
)

// State is a step of the answer pipeline.
type State int

const (
	StateAwaitingRewrite State = iota
	StateRetrieving
	StateStreamingAnswer
	StateStreamingFollowUps
	StateDone
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateAwaitingRewrite:
		return "AWAITING_REWRITE"
	case StateRetrieving:
		return "RETRIEVING"
	case StateStreamingAnswer:
		return "STREAMING_ANSWER"
	case StateStreamingFollowUps:
		return "STREAMING_FOLLOWUPS"
	case StateDone:
		return "DONE"
	case StateErrored:
		return "ERRORED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var transitions = map[State]State{
	StateAwaitingRewrite:    StateRetrieving,
	StateRetrieving:         StateStreamingAnswer,
	StateStreamingAnswer:    StateStreamingFollowUps,
	StateStreamingFollowUps: StateDone,
}

func (s State) terminal() bool {
	return s == StateDone || s == StateErrored
}

// streamer drives one answer through the pipeline states.
type streamer struct {
	State State
	emit  func(chat.Event) error
	split splitter
}

func newStreamer(emit func(chat.Event) error) *streamer {
	return &streamer{State: StateAwaitingRewrite, emit: emit}
}

// transition moves to the next state. ERRORED is reachable from every non-terminal state.
func (s *streamer) transition(to State) error {
	if s.State.terminal() {
		return fmt.Errorf("%w: %s -> %s", chat.ErrIllegalTransition, s.State, to)
	}
	if to != StateErrored && transitions[s.State] != to {
		return fmt.Errorf("%w: %s -> %s", chat.ErrIllegalTransition, s.State, to)
	}
	s.State = to
	return nil
}

// fail moves to ERRORED and emits the single terminal error event.
func (s *streamer) fail(err error) error {
	if s.State.terminal() {
		return err
	}
	s.State = StateErrored
	metrics.ChatStreamsTotal.WithLabelValues("errored").Inc()
	if emitErr := s.emit(chat.Event{Kind: chat.EventError, Err: err.Error()}); emitErr != nil {
		return emitErr
	}
	return err
}

// onToken handles one generated token while streaming.
func (s *streamer) onToken(token string) error {
	if s.State == StateStreamingFollowUps {
		s.split.push(token)
		return nil
	}
	forward, found := s.split.push(token)
	if forward != "" {
		if err := s.emit(chat.Event{Kind: chat.EventDelta, Content: forward}); err != nil {
			return err
		}
	}
	if found {
		return s.transition(StateStreamingFollowUps)
	}
	return nil
}

func validateInput(input chat.StreamInput) error {
	if len(input.Messages) == 0 {
		return chat.ErrNoMessages
	}
	if len(input.Messages) > chat.MaxTurns {
		return chat.ErrTooManyTurns
	}
	for _, m := range input.Messages {
		if m.Role != chat.RoleUser && m.Role != chat.RoleAssistant {
			return chat.ErrInvalidRole
		}
		if utf8.RuneCountInString(m.Content) > chat.MaxMessageLength {
			return chat.ErrMessageTooLong
		}
	}
	last := input.Messages[len(input.Messages)-1]
	if last.Role != chat.RoleUser {
		return chat.ErrLastTurnNotUser
	}
	if strings.TrimSpace(last.Content) == "" {
		return chat.ErrEmptyMessage
	}
	return nil
}

func (uc *implUseCase) Stream(ctx context.Context, input chat.StreamInput, emit func(chat.Event) error) error {
	if err := validateInput(input); err != nil {
		return err
	}

	history := input.Messages[:len(input.Messages)-1]
	question := input.Messages[len(input.Messages)-1].Content
	s := newStreamer(emit)

	// AWAITING_REWRITE
	query, err := uc.rewriteQuery(ctx, history, question)
	if err != nil {
		return s.fail(err)
	}
	uc.l.Debugf(ctx, "chat.usecase.Stream: rewritten query: %s", query)
	if err := s.transition(StateRetrieving); err != nil {
		return s.fail(err)
	}

	// RETRIEVING
	docs, err := uc.retrieve(ctx, query)
	if err != nil {
		return s.fail(err)
	}
	if err := s.transition(StateStreamingAnswer); err != nil {
		return s.fail(err)
	}
	if err := emit(chat.Event{Kind: chat.EventStart}); err != nil {
		return s.fail(err)
	}

	// STREAMING_ANSWER / STREAMING_FOLLOWUPS
	temperature := uc.cfg.AnswerTemperature
	msgs := toGeminiMessages(history)
	msgs = append(msgs, gemini.Message{
		Role: gemini.RoleUser,
		Text: question + "\n\nContext:\n" + buildContext(docs),
	})
	start := time.Now()
	err = uc.gemini.StreamGenerateContent(ctx, gemini.GenerateRequest{
		SystemInstruction: ragSystemPrompt,
		Messages:          msgs,
		Temperature:       &temperature,
	}, s.onToken)
	metrics.LLMGenerationDuration.WithLabelValues("answer").Observe(time.Since(start).Seconds())
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Stream: StreamGenerateContent failed: %v", err)
		return s.fail(fmt.Errorf("%w: %v", chat.ErrLLMFailed, err))
	}
	if s.State == StateStreamingAnswer {
		if rest := s.split.flush(); rest != "" {
			if err := emit(chat.Event{Kind: chat.EventDelta, Content: rest}); err != nil {
				return s.fail(err)
			}
		}
		if err := s.transition(StateStreamingFollowUps); err != nil {
			return s.fail(err)
		}
	}

	// DONE
	if err := s.transition(StateDone); err != nil {
		return s.fail(err)
	}
	metrics.ChatStreamsTotal.WithLabelValues("done").Inc()
	return emit(chat.Event{
		Kind:      chat.EventDone,
		Citations: citations(docs),
		FollowUps: s.split.followUps(),
	})
}
