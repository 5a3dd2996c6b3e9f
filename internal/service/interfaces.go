package service

import (
	"context"
	"iter"

	"github.com/willythepapi/FITART-v1/internal/models"
	"github.com/willythepapi/FITART-v1/internal/types"
)

// IAuthService defines the interface for passcode login and session tokens
type IAuthService interface {
	Enabled() bool
	Login(passcode string) (string, *types.TokenClaims, error)
	GenerateToken(claims *types.TokenClaims) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// ICoachService defines the interface for the AI coach
type ICoachService interface {
	StreamReply(ctx context.Context, user models.User, history []models.ChatMessage, message string) iter.Seq2[string, error]
}

// IPhotoStorage defines the interface for external progress photo storage
type IPhotoStorage interface {
	Upload(ctx context.Context, dataURL string) (string, error)
}
