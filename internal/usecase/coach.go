package usecase

import (
	"context"
	"iter"
	"strings"

	"github.com/willythepapi/FITART-v1/internal/models"
	"github.com/willythepapi/FITART-v1/internal/repository"
)

// GetAICoachResponseUseCase streams the coach's reply to a new message.
type GetAICoachResponseUseCase struct {
	users repository.IUserRepository
	coach ICoachService
}

// Enabled reports whether a coach service is configured.
func (uc *GetAICoachResponseUseCase) Enabled() bool {
	return uc.coach != nil
}

// ExecuteStream yields the reply as text chunks. Each call starts a new
// request. Validation and upstream errors are yielded as the only or last
// element.
func (uc *GetAICoachResponseUseCase) ExecuteStream(ctx context.Context, history []models.ChatMessage, message string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if uc.coach == nil {
			yield("", ErrCoachDisabled)
			return
		}
		if strings.TrimSpace(message) == "" {
			yield("", ErrEmptyMessage)
			return
		}

		user, err := uc.users.GetUser(ctx)
		if err != nil {
			yield("", err)
			return
		}

		for chunk, err := range uc.coach.StreamReply(ctx, user, history, message) {
			if !yield(chunk, err) || err != nil {
				return
			}
		}
	}
}
