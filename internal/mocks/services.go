package mocks

import (
	"context"
	"iter"

	"github.com/stretchr/testify/mock"

	"github.com/willythepapi/FITART-v1/internal/models"
)

// MockCoachService is a mock implementation of the ICoachService interface.
// The reply is the []string chunks and the error given to Return.
type MockCoachService struct {
	mock.Mock
}

func (m *MockCoachService) StreamReply(ctx context.Context, user models.User, history []models.ChatMessage, message string) iter.Seq2[string, error] {
	args := m.Called(ctx, user, history, message)
	chunks, _ := args.Get(0).([]string)
	err := args.Error(1)
	return func(yield func(string, error) bool) {
		for _, c := range chunks {
			if !yield(c, nil) {
				return
			}
		}
		if err != nil {
			yield("", err)
		}
	}
}

// MockPhotoStorage is a mock implementation of the IPhotoStorage interface
type MockPhotoStorage struct {
	mock.Mock
}

func (m *MockPhotoStorage) Upload(ctx context.Context, dataURL string) (string, error) {
	args := m.Called(ctx, dataURL)
	return args.String(0), args.Error(1)
}
