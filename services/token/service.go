package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	tokenRepo "slotify/database/repository/token"
	"slotify/models"
	"slotify/utils"
)

// Tokens are refreshed once their remaining lifetime drops below this.
const expiryMargin = 5 * time.Minute

// refreshLockTTL bounds the per-owner refresh lock so a crashed refresher
// cannot wedge an owner.
const refreshLockTTL = 10 * time.Second

// DefaultTokenService loads owner credentials from Mongo, refreshes them
// near expiry through the OAuth endpoint, and caches live access tokens in
// Redis keyed by owner. The Redis lock gives refresh single-writer-per-owner
// semantics between the request path and the background sweep.
type DefaultTokenService struct {
	Repo  tokenRepo.TokenRepository
	Cache *redis.Client
	OAuth *oauth2.Config

	// refresh is swappable in tests; nil means the OAuth config is used.
	refresh func(ctx context.Context, refreshToken string) (*oauth2.Token, error)
}

func (s *DefaultTokenService) AccessTokenForOwner(ctx context.Context, ownerID string) (string, error) {
	if cached := s.cachedToken(ctx, ownerID); cached != "" {
		return cached, nil
	}

	stored, err := s.Repo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrNotConnected
		}
		return "", fmt.Errorf("failed to load token for owner %s: %w", ownerID, err)
	}

	if time.Until(stored.ExpiryDate) > expiryMargin {
		s.cacheToken(ctx, ownerID, stored.AccessToken, stored.ExpiryDate)
		return stored.AccessToken, nil
	}

	refreshed, err := s.refreshAndStore(ctx, stored)
	if err != nil {
		utils.GetLogger().Warn("token refresh failed",
			zap.String("ownerID", ownerID), zap.Error(err))
		return "", ErrNotConnected
	}
	return refreshed.AccessToken, nil
}

func (s *DefaultTokenService) RefreshExpiring(ctx context.Context, horizon time.Duration) (int, error) {
	cutoff := time.Now().Add(horizon)
	expiring, err := s.Repo.ListExpiringBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to list expiring tokens: %w", err)
	}

	logger := utils.GetLogger()
	refreshed := 0
	for i := range expiring {
		stored := expiring[i]
		if _, err := s.refreshAndStore(ctx, &stored); err != nil {
			logger.Warn("sweep: token refresh failed",
				zap.String("ownerID", stored.OwnerID), zap.Error(err))
			continue
		}
		refreshed++
	}
	return refreshed, nil
}

// refreshAndStore exchanges the refresh token, persists the new credential
// and repopulates the cache. The Redis lock keeps concurrent refreshers for
// the same owner from racing each other's writes.
func (s *DefaultTokenService) refreshAndStore(ctx context.Context, stored *models.GoogleToken) (*models.GoogleToken, error) {
	unlock := s.lockOwner(ctx, stored.OwnerID)
	defer unlock()

	fresh, err := s.doRefresh(ctx, stored.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("refresh exchange failed: %w", err)
	}

	stored.AccessToken = fresh.AccessToken
	if fresh.RefreshToken != "" {
		stored.RefreshToken = fresh.RefreshToken
	}
	stored.ExpiryDate = fresh.Expiry

	if err := s.Repo.Upsert(ctx, stored); err != nil {
		return nil, fmt.Errorf("failed to persist refreshed token: %w", err)
	}
	s.cacheToken(ctx, stored.OwnerID, stored.AccessToken, stored.ExpiryDate)
	return stored, nil
}

func (s *DefaultTokenService) doRefresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	if s.refresh != nil {
		return s.refresh(ctx, refreshToken)
	}
	src := s.OAuth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	return src.Token()
}

func (s *DefaultTokenService) cachedToken(ctx context.Context, ownerID string) string {
	if s.Cache == nil {
		return ""
	}
	val, err := s.Cache.Get(ctx, cacheKey(ownerID)).Result()
	if err != nil {
		return ""
	}
	return val
}

// cacheToken stores the access token until it enters the expiry margin.
// Cache failures are logged and ignored; the store stays authoritative.
func (s *DefaultTokenService) cacheToken(ctx context.Context, ownerID, accessToken string, expiry time.Time) {
	if s.Cache == nil {
		return
	}
	ttl := time.Until(expiry) - expiryMargin
	if ttl <= 0 {
		return
	}
	if err := s.Cache.Set(ctx, cacheKey(ownerID), accessToken, ttl).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache access token",
			zap.String("ownerID", ownerID), zap.Error(err))
	}
}

func (s *DefaultTokenService) lockOwner(ctx context.Context, ownerID string) func() {
	if s.Cache == nil {
		return func() {}
	}
	key := lockKey(ownerID)
	// Best effort: if the lock is held we proceed anyway after it expires
	// rather than failing the request.
	for i := 0; i < 3; i++ {
		ok, err := s.Cache.SetNX(ctx, key, "1", refreshLockTTL).Result()
		if err != nil || ok {
			break
		}
		time.Sleep(200 * time.Millisecond)
	}
	return func() { s.Cache.Del(context.Background(), key) }
}

func cacheKey(ownerID string) string {
	return utils.TokenCachePrefix + ownerID
}

func lockKey(ownerID string) string {
	return utils.TokenCachePrefix + "lock:" + ownerID
}
