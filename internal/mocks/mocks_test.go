package mocks

import (
	"github.com/willythepapi/FITART-v1/internal/service"
)

var (
	_ service.IAuthService  = (*MockAuthService)(nil)
	_ service.ICoachService = (*MockCoachService)(nil)
	_ service.IPhotoStorage = (*MockPhotoStorage)(nil)
)
