package chat

import "errors"

// Domain errors
var (
	ErrNoMessages        = errors.New("chat: messages are required")
	ErrLastTurnNotUser   = errors.New("chat: last message must come from the user")
	ErrEmptyMessage      = errors.New("chat: message is empty")
	ErrMessageTooLong    = errors.New("chat: message too long")
	ErrTooManyTurns      = errors.New("chat: too many messages")
	ErrInvalidRole       = errors.New("chat: invalid message role")
	ErrRewriteFailed     = errors.New("chat: query rewrite failed")
	ErrRetrievalFailed   = errors.New("chat: retrieval failed")
	ErrLLMFailed         = errors.New("chat: LLM generation failed")
	ErrIllegalTransition = errors.New("chat: illegal state transition")
)
