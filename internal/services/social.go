package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrUnknownPlatform = errors.New("unknown platform")
	ErrNotConnected    = errors.New("platform not connected")
	ErrBadState        = errors.New("invalid oauth state")
)

// TokenExchanger performs the OAuth code-for-token exchange with a platform.
// The real exchange lives outside this service.
type TokenExchanger interface {
	Exchange(ctx context.Context, platform, code string) (string, error)
}

// Publisher posts a rendered video to a connected platform.
type Publisher interface {
	Publish(ctx context.Context, platform, accessToken, videoPath, caption string) error
}

type platformConfig struct {
	AuthURL  string
	ClientID string
}

var platforms = map[string]platformConfig{
	"tiktok":    {AuthURL: "https://www.tiktok.com/v2/auth/authorize/", ClientID: "tiktok-client"},
	"youtube":   {AuthURL: "https://accounts.google.com/o/oauth2/v2/auth", ClientID: "youtube-client"},
	"instagram": {AuthURL: "https://api.instagram.com/oauth/authorize", ClientID: "instagram-client"},
}

// SocialService tracks platform connections in memory. Tokens never touch
// the history snapshot.
type SocialService struct {
	mu        sync.RWMutex
	tokens    map[string]string
	secret    []byte
	exchanger TokenExchanger
	publisher Publisher
}

func NewSocialService(stateSecret string, exchanger TokenExchanger, publisher Publisher) *SocialService {
	return &SocialService{
		tokens:    make(map[string]string),
		secret:    []byte(stateSecret),
		exchanger: exchanger,
		publisher: publisher,
	}
}

// ConnectURL builds the platform's OAuth URL with a signed state parameter.
func (s *SocialService) ConnectURL(platform, redirectURI string) (string, error) {
	cfg, ok := platforms[platform]
	if !ok {
		return "", ErrUnknownPlatform
	}

	state, err := s.signState(platform)
	if err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("client_id", cfg.ClientID)
	q.Set("redirect_uri", redirectURI)
	q.Set("response_type", "code")
	q.Set("state", state)
	return cfg.AuthURL + "?" + q.Encode(), nil
}

// HandleCallback validates the state token and exchanges the code.
func (s *SocialService) HandleCallback(ctx context.Context, platform, code, state string) error {
	if _, ok := platforms[platform]; !ok {
		return ErrUnknownPlatform
	}
	if err := s.verifyState(platform, state); err != nil {
		return err
	}
	if s.exchanger == nil {
		return errors.New("token exchange not configured")
	}

	token, err := s.exchanger.Exchange(ctx, platform, code)
	if err != nil {
		return fmt.Errorf("exchanging code for %s: %w", platform, err)
	}

	s.mu.Lock()
	s.tokens[platform] = token
	s.mu.Unlock()
	return nil
}

// Status reports which known platforms hold a token.
func (s *SocialService) Status() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]bool, len(platforms))
	for p := range platforms {
		_, connected := s.tokens[p]
		out[p] = connected
	}
	return out
}

func (s *SocialService) Disconnect(platform string) error {
	if _, ok := platforms[platform]; !ok {
		return ErrUnknownPlatform
	}
	s.mu.Lock()
	delete(s.tokens, platform)
	s.mu.Unlock()
	return nil
}

// Publish posts a video using the stored token for the platform.
func (s *SocialService) Publish(ctx context.Context, platform, videoPath, caption string) error {
	s.mu.RLock()
	token, ok := s.tokens[platform]
	s.mu.RUnlock()
	if !ok {
		return ErrNotConnected
	}
	if s.publisher == nil {
		return errors.New("publishing not configured")
	}
	return s.publisher.Publish(ctx, platform, token, videoPath, caption)
}

func (s *SocialService) signState(platform string) (string, error) {
	claims := jwt.MapClaims{
		"platform": platform,
		"exp":      time.Now().Add(10 * time.Minute).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *SocialService) verifyState(platform, state string) error {
	token, err := jwt.Parse(state, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadState
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return ErrBadState
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrBadState
	}
	if got, _ := claims["platform"].(string); got != platform {
		return ErrBadState
	}
	return nil
}
