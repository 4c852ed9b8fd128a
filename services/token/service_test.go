package token

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/oauth2"

	"slotify/models"
)

type fakeTokenRepo struct {
	tokens  map[string]*models.GoogleToken
	upserts int
}

func (f *fakeTokenRepo) GetByOwnerID(ctx context.Context, ownerID string) (*models.GoogleToken, error) {
	t, ok := f.tokens[ownerID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return t, nil
}

func (f *fakeTokenRepo) Upsert(ctx context.Context, t *models.GoogleToken) error {
	f.upserts++
	f.tokens[t.OwnerID] = t
	return nil
}

func (f *fakeTokenRepo) DeleteByOwnerID(ctx context.Context, ownerID string) error {
	delete(f.tokens, ownerID)
	return nil
}

func (f *fakeTokenRepo) ListExpiringBefore(ctx context.Context, cutoff time.Time) ([]models.GoogleToken, error) {
	var out []models.GoogleToken
	for _, t := range f.tokens {
		if t.ExpiryDate.Before(cutoff) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTokenRepo) EnsureIndexes() error { return nil }

func storedToken(ownerID string, expiresIn time.Duration) *models.GoogleToken {
	return &models.GoogleToken{
		ID:           "tok-" + ownerID,
		OwnerID:      ownerID,
		AccessToken:  "access-" + ownerID,
		RefreshToken: "refresh-" + ownerID,
		ExpiryDate:   time.Now().Add(expiresIn),
	}
}

func TestAccessTokenForOwnerFreshToken(t *testing.T) {
	repo := &fakeTokenRepo{tokens: map[string]*models.GoogleToken{
		"o1": storedToken("o1", time.Hour),
	}}
	svc := &DefaultTokenService{
		Repo: repo,
		refresh: func(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
			t.Fatal("fresh token must not trigger a refresh")
			return nil, nil
		},
	}

	got, err := svc.AccessTokenForOwner(context.Background(), "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "access-o1" {
		t.Errorf("token = %q, want stored access token", got)
	}
}

func TestAccessTokenForOwnerRefreshesNearExpiry(t *testing.T) {
	repo := &fakeTokenRepo{tokens: map[string]*models.GoogleToken{
		"o1": storedToken("o1", time.Minute), // inside the 5m margin
	}}
	svc := &DefaultTokenService{
		Repo: repo,
		refresh: func(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
			if refreshToken != "refresh-o1" {
				t.Errorf("refresh token = %q, want refresh-o1", refreshToken)
			}
			return &oauth2.Token{
				AccessToken: "access-new",
				Expiry:      time.Now().Add(time.Hour),
			}, nil
		},
	}

	got, err := svc.AccessTokenForOwner(context.Background(), "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "access-new" {
		t.Errorf("token = %q, want refreshed token", got)
	}
	if repo.upserts != 1 {
		t.Errorf("upserts = %d, want the refreshed credential persisted once", repo.upserts)
	}
	if stored := repo.tokens["o1"]; stored.AccessToken != "access-new" {
		t.Errorf("stored access token = %q, want access-new", stored.AccessToken)
	}
}

func TestAccessTokenForOwnerNotConnected(t *testing.T) {
	svc := &DefaultTokenService{Repo: &fakeTokenRepo{tokens: map[string]*models.GoogleToken{}}}

	_, err := svc.AccessTokenForOwner(context.Background(), "missing")
	if !errors.Is(err, ErrNotConnected) {
		t.Fatalf("err = %v, want ErrNotConnected", err)
	}
}

func TestAccessTokenForOwnerRefreshFailure(t *testing.T) {
	repo := &fakeTokenRepo{tokens: map[string]*models.GoogleToken{
		"o1": storedToken("o1", time.Minute),
	}}
	svc := &DefaultTokenService{
		Repo: repo,
		refresh: func(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
			return nil, errors.New("invalid_grant")
		},
	}

	_, err := svc.AccessTokenForOwner(context.Background(), "o1")
	if !errors.Is(err, ErrNotConnected) {
		t.Fatalf("err = %v, want ErrNotConnected on refresh failure", err)
	}
}

func TestRefreshExpiring(t *testing.T) {
	repo := &fakeTokenRepo{tokens: map[string]*models.GoogleToken{
		"soon":    storedToken("soon", 10*time.Minute),
		"later":   storedToken("later", 2*time.Hour),
		"broken":  storedToken("broken", 5*time.Minute),
		"expired": storedToken("expired", -time.Minute),
	}}
	svc := &DefaultTokenService{
		Repo: repo,
		refresh: func(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
			if refreshToken == "refresh-broken" {
				return nil, errors.New("invalid_grant")
			}
			return &oauth2.Token{
				AccessToken: "fresh",
				Expiry:      time.Now().Add(time.Hour),
			}, nil
		},
	}

	refreshed, err := svc.RefreshExpiring(context.Background(), 30*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "soon" and "expired" refresh; "broken" fails without aborting the
	// sweep; "later" is outside the horizon.
	if refreshed != 2 {
		t.Errorf("refreshed = %d, want 2", refreshed)
	}
	if repo.tokens["later"].AccessToken != "access-later" {
		t.Error("token outside the horizon must not be touched")
	}
	if repo.tokens["soon"].AccessToken != "fresh" {
		t.Error("token inside the horizon was not refreshed")
	}
}
