package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"otherhalf_server/models"
	"otherhalf_server/storage"
	"otherhalf_server/store"
)

var (
	ErrNoSession        = errors.New("no active session")
	ErrTooManyInterests = fmt.Errorf("a profile may list at most %d interests", models.MaxInterests)
)

// AuthService persists the current user's session blob and handles logout
// cleanup. Auth here is the demo's trust-the-client model; there are no
// credentials to verify.
type AuthService struct {
	Storage storage.Adapter
	Store   *store.Store
}

// ValidateProfile enforces the onboarding invariants.
func ValidateProfile(profile models.UserProfile) error {
	if profile.ID == "" || profile.AnonymousID == "" {
		return errors.New("profile requires id and anonymousId")
	}
	if profile.Gender == "" {
		return errors.New("profile requires gender")
	}
	if profile.University == "" {
		return errors.New("profile requires university")
	}
	if len(profile.Interests) > models.MaxInterests {
		return ErrTooManyInterests
	}
	return nil
}

// Login validates the profile and stores it as the current session.
func (as *AuthService) Login(ctx context.Context, profile models.UserProfile) error {
	if err := ValidateProfile(profile); err != nil {
		return err
	}
	blob, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return as.Storage.Set(ctx, storage.KeySession, string(blob))
}

// CurrentUser returns the session profile, or ErrNoSession.
func (as *AuthService) CurrentUser(ctx context.Context) (*models.UserProfile, error) {
	blob, ok, err := as.Storage.Get(ctx, storage.KeySession)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if !ok {
		return nil, ErrNoSession
	}
	var profile models.UserProfile
	if err := json.Unmarshal([]byte(blob), &profile); err != nil {
		return nil, fmt.Errorf("malformed session blob: %w", err)
	}
	return &profile, nil
}

// UpdateProfile replaces the session profile. Only the owning user edits
// their profile, so this is a plain overwrite after validation.
func (as *AuthService) UpdateProfile(ctx context.Context, profile models.UserProfile) error {
	if _, err := as.CurrentUser(ctx); err != nil {
		return err
	}
	return as.Login(ctx, profile)
}

// Logout drops the session blob and resets the interaction store.
func (as *AuthService) Logout(ctx context.Context) error {
	if err := as.Storage.Delete(ctx, storage.KeySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return as.Store.Reset(ctx)
}
