package services

import (
	"context"
	"fmt"

	"github.com/alimgiray/contributor-registry/internal/models"
	"github.com/google/go-github/v57/github"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/oauth2"
)

const profileCacheSize = 256

// GithubProfileService fetches public profile data for registered handles
// from the GitHub API. Results are cached; staleness is acceptable since
// enrichment data never feeds back into registry state.
type GithubProfileService struct {
	client *github.Client
	cache  *lru.Cache[string, *models.GithubProfile]
}

func NewGithubProfileService(apiToken string) (*GithubProfileService, error) {
	cache, err := lru.New[string, *models.GithubProfile](profileCacheSize)
	if err != nil {
		return nil, err
	}

	client := github.NewClient(nil)
	if apiToken != "" {
		source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiToken})
		client = github.NewClient(oauth2.NewClient(context.Background(), source))
	}

	return &GithubProfileService{
		client: client,
		cache:  cache,
	}, nil
}

// GetProfile returns the GitHub profile for a handle, from cache when warm.
func (s *GithubProfileService) GetProfile(ctx context.Context, handle string) (*models.GithubProfile, error) {
	if profile, ok := s.cache.Get(handle); ok {
		return profile, nil
	}
	return s.RefreshProfile(ctx, handle)
}

// RefreshProfile fetches the profile from the GitHub API and updates the
// cache.
func (s *GithubProfileService) RefreshProfile(ctx context.Context, handle string) (*models.GithubProfile, error) {
	user, _, err := s.client.Users.Get(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch GitHub user %q: %w", handle, err)
	}

	profile := &models.GithubProfile{
		Login:       user.GetLogin(),
		Name:        user.GetName(),
		AvatarURL:   user.GetAvatarURL(),
		ProfileURL:  user.GetHTMLURL(),
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
	}

	s.cache.Add(handle, profile)
	return profile, nil
}
