package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/foysalit/codementorx-idea-pool/pkg/apperror"
)

const facebookProfileURL = "https://graph.facebook.com/v12.0/me?fields=id,name,email,picture.type(large)"

// FacebookVerifier resolves a Facebook access token into a profile via the
// Graph API.
type FacebookVerifier struct {
	endpoint string
}

func NewFacebookVerifier() *FacebookVerifier {
	return &FacebookVerifier{endpoint: facebookProfileURL}
}

type facebookProfile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
}

func (v *FacebookVerifier) Verify(ctx context.Context, accessToken string) (*Identity, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoint, nil)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindUnauthorized, "failed to verify facebook token", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, apperror.Wrap(apperror.KindUnauthorized, "invalid facebook token",
			fmt.Errorf("graph api status %d: %s", resp.StatusCode, string(body)))
	}

	var profile facebookProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, apperror.Wrap(apperror.KindUnauthorized, "failed to decode facebook profile", err)
	}

	if profile.Email == "" {
		return nil, apperror.Unauthorized("facebook account has no verified email")
	}

	return &Identity{
		Email:     profile.Email,
		Name:      profile.Name,
		AvatarURL: profile.Picture.Data.URL,
		Provider:  "facebook",
	}, nil
}
