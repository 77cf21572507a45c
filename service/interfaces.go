package service

import (
	"context"

	"github.com/elC0mpa/eni-doctor/model"
)

// IdentityService provides cloud account identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}
