package service

import (
	"context"

	"github.com/google/uuid"

	"bookshop-backend/internal/domains/user/model"
)

// ServiceInterface is the auth/user business logic contract.
type ServiceInterface interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
	Refresh(ctx context.Context, req model.RefreshRequest) (*model.TokenPair, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*model.User, error)
}
