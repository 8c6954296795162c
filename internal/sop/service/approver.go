package service

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"sopdocs/internal/sop/model"
	"sopdocs/internal/sop/repository"
	"sopdocs/internal/sop/security"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// ApproverService authenticates approvers. The engine itself never calls
// it; the HTTP layer does, and the sweeper bypasses it entirely.
type ApproverService struct {
	Repo    repository.ApproverRepository
	Limiter *security.AttemptLimiter

	next uint64
}

func NewApproverService(repo repository.ApproverRepository, limiter *security.AttemptLimiter) *ApproverService {
	return &ApproverService{Repo: repo, Limiter: limiter}
}

// Authenticate verifies an approver's credentials. The limiter is consulted
// first and records the attempt; a rate-limited caller never reaches the
// credential check. Rate-limit and credential failures are deliberately
// indistinguishable to the caller.
func (s *ApproverService) Authenticate(ctx context.Context, username, rawPassword string) (*model.Approver, error) {
	if !s.Limiter.Allow(username) {
		return nil, ErrUnauthorized
	}

	approver, err := s.Repo.FindApproverByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			slog.Warn("Authentication failed: username not found", "username", username)
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if !approver.Active {
		slog.Warn("Authentication failed: approver account is inactive", "username", username)
		return nil, ErrUnauthorized
	}

	// bcrypt comparison is constant-time
	if bcrypt.CompareHashAndPassword([]byte(approver.PasswordHash), []byte(rawPassword)) != nil {
		slog.Warn("Authentication failed: invalid password", "username", username)
		return nil, ErrUnauthorized
	}

	s.Limiter.Clear(username)
	slog.Info("Approver authenticated successfully", "username", username)
	return approver, nil
}

func (s *ApproverService) ActiveApprovers(ctx context.Context) ([]*model.Approver, error) {
	return s.Repo.FindActiveApprovers(ctx)
}

// NextAvailableApprover rotates through the active approvers for proposals
// that do not name one. The rotation counter is process-local; the result
// is a routing hint, not an entitlement check.
func (s *ApproverService) NextAvailableApprover(ctx context.Context) (*model.Approver, error) {
	actives, err := s.Repo.FindActiveApprovers(ctx)
	if err != nil {
		return nil, err
	}
	if len(actives) == 0 {
		return nil, ErrNotFound
	}

	idx := atomic.AddUint64(&s.next, 1) - 1
	return actives[idx%uint64(len(actives))], nil
}

// EnsureDefaultApprover seeds one active approver when the collection is
// empty, so a fresh deployment has a working approval gate.
func (s *ApproverService) EnsureDefaultApprover(ctx context.Context, username, rawPassword, name string) error {
	count, err := s.Repo.CountApprovers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if rawPassword == "" {
		slog.Warn("No approvers exist and DEFAULT_APPROVER_PASSWORD is unset, skipping bootstrap")
		return nil
	}

	hash, err := HashPassword(rawPassword)
	if err != nil {
		return err
	}

	approver := &model.Approver{
		Username:     username,
		PasswordHash: hash,
		Name:         name,
		Active:       true,
	}
	if err := s.Repo.CreateApprover(ctx, approver); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil
		}
		return err
	}

	slog.Info("Seeded default approver", "username", username)
	return nil
}

// HashPassword hashes a raw password with bcrypt(12).
func HashPassword(rawPassword string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
