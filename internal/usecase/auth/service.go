package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
	"github.com/aura-ai/aura-backend/internal/domain/repositories"
	"github.com/aura-ai/aura-backend/internal/infrastructure/external/oauth"
	"github.com/aura-ai/aura-backend/pkg/jwt"
)

// Service handles signup, login, federated login and session validation
type Service struct {
	userRepo     repositories.UserRepository
	sessionRepo  repositories.SessionRepository
	google       *oauth.GoogleProvider
	stateManager *oauth.StateManager
	jwtManager   *jwt.Manager
}

// NewService creates a new auth service
func NewService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	google *oauth.GoogleProvider,
	stateManager *oauth.StateManager,
	jwtManager *jwt.Manager,
) *Service {
	return &Service{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		google:       google,
		stateManager: stateManager,
		jwtManager:   jwtManager,
	}
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	User         *entities.User `json:"user"`
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token,omitempty"`
	ExpiresIn    int64          `json:"expires_in"`
}

// Signup registers a new user with email and password
func (s *Service) Signup(ctx context.Context, email, name, password string, persona entities.UserPersona) (*AuthResponse, error) {
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, entities.ErrUserAlreadyExists
	} else if err != entities.ErrUserNotFound {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entities.NewUser(email, name, persona)
	hashStr := string(hash)
	user.PasswordHash = &hashStr

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueTokens(ctx, user)
}

// Login authenticates a user with email and password
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == entities.ErrUserNotFound {
			return nil, entities.ErrInvalidPassword
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user.PasswordHash == nil {
		// Federated account without a local password
		return nil, entities.ErrInvalidPassword
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, entities.ErrInvalidPassword
	}

	if !user.IsActive {
		return nil, entities.ErrUnauthorized
	}

	user.UpdateLastLogin()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	return s.issueTokens(ctx, user)
}

// GoogleAuthURLResponse represents the response for auth URL request
type GoogleAuthURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// GetGoogleAuthURL generates a Google OAuth URL
func (s *Service) GetGoogleAuthURL(ctx context.Context) (*GoogleAuthURLResponse, error) {
	state, err := s.stateManager.GenerateState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state: %w", err)
	}

	return &GoogleAuthURLResponse{
		URL:   s.google.GetAuthURL(state),
		State: state,
	}, nil
}

// GoogleCallbackRequest represents the callback request
type GoogleCallbackRequest struct {
	Code  string `json:"code"`
	State string `json:"state"`
}

// HandleGoogleCallback handles the OAuth callback from Google
func (s *Service) HandleGoogleCallback(ctx context.Context, req *GoogleCallbackRequest) (*AuthResponse, error) {
	if !s.stateManager.ValidateState(req.State) {
		return nil, entities.ErrOAuthStateMismatch
	}

	token, err := s.google.ExchangeCode(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	googleUser, err := s.google.GetUserInfo(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}

	user, err := s.userRepo.FindByOAuth(ctx, "google", googleUser.ID)
	if err != nil {
		if err == entities.ErrUserNotFound {
			// Link by email when the account already exists locally
			existingUser, findErr := s.userRepo.FindByEmail(ctx, googleUser.Email)
			if findErr == nil {
				existingUser.AuthProvider = "google"
				existingUser.OAuthID = &googleUser.ID
				if token.RefreshToken != "" {
					existingUser.OAuthRefreshToken = &token.RefreshToken
				}
				if err := s.userRepo.Update(ctx, existingUser); err != nil {
					return nil, fmt.Errorf("failed to link accounts: %w", err)
				}
				user = existingUser
			} else {
				user = entities.NewOAuthUser(googleUser.Email, googleUser.Name, "google", googleUser.ID)
				if token.RefreshToken != "" {
					user.OAuthRefreshToken = &token.RefreshToken
				}
				if err := s.userRepo.Create(ctx, user); err != nil {
					return nil, fmt.Errorf("failed to create user: %w", err)
				}
			}
		} else {
			return nil, fmt.Errorf("failed to find user: %w", err)
		}
	} else {
		user.UpdateLastLogin()
		if token.RefreshToken != "" {
			user.OAuthRefreshToken = &token.RefreshToken
		}
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	return s.issueTokens(ctx, user)
}

// RefreshAccessToken refreshes the access token using the refresh token
func (s *Service) RefreshAccessToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, entities.ErrInvalidToken
	}

	tokenHash, err := s.jwtManager.HashToken(refreshToken)
	if err != nil {
		return nil, entities.ErrInvalidToken
	}

	session, err := s.sessionRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		return nil, entities.ErrSessionNotFound
	}

	if !session.IsValid() {
		return nil, entities.ErrSessionExpired
	}

	// Non-fatal
	_ = s.sessionRepo.UpdateLastUsed(ctx, session.ID)

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, string(user.Persona))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResponse{
		User:        user,
		AccessToken: accessToken,
		ExpiresIn:   int64(s.jwtManager.GetAccessExpiry().Seconds()),
	}, nil
}

// ValidateSession validates an access token and returns the user
func (s *Service) ValidateSession(ctx context.Context, token string) (*entities.User, error) {
	claims, err := s.jwtManager.ValidateAccessToken(token)
	if err != nil {
		return nil, entities.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, entities.ErrUnauthorized
	}

	return user, nil
}

// Logout revokes the session backing a refresh token
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	tokenHash, err := s.jwtManager.HashToken(refreshToken)
	if err != nil {
		return entities.ErrInvalidToken
	}

	session, err := s.sessionRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		return entities.ErrSessionNotFound
	}

	return s.sessionRepo.Revoke(ctx, session.ID)
}

// LogoutAll revokes all sessions for a user
func (s *Service) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	return s.sessionRepo.RevokeAllByUserID(ctx, userID)
}

// issueTokens generates an access/refresh token pair and persists the
// session with only the refresh token's hash.
func (s *Service) issueTokens(ctx context.Context, user *entities.User) (*AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, string(user.Persona))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	tokenHash, err := s.jwtManager.HashToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to hash refresh token: %w", err)
	}

	session := entities.NewSession(
		user.ID,
		tokenHash,
		time.Now().Add(s.jwtManager.GetRefreshExpiry()),
	)

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.GetAccessExpiry().Seconds()),
	}, nil
}
