package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/foysalit/codementorx-idea-pool/pkg/apperror"
)

const googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// GoogleVerifier resolves a Google ID token into a profile by calling
// Google's tokeninfo endpoint.
type GoogleVerifier struct {
	clientID string
	endpoint string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID, endpoint: googleTokenInfoURL}
}

// googleTokenInfo represents the response from Google's tokeninfo endpoint
type googleTokenInfo struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	EmailVerified string `json:"email_verified"` // Google returns this as string "true" or "false"
	Audience      string `json:"aud"`
	Sub           string `json:"sub"`
}

func (v *GoogleVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		v.endpoint+"?id_token="+url.QueryEscape(idToken), nil)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindUnauthorized, "failed to verify google token", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, apperror.Wrap(apperror.KindUnauthorized, "invalid google token",
			fmt.Errorf("tokeninfo status %d: %s", resp.StatusCode, string(body)))
	}

	var info googleTokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, apperror.Wrap(apperror.KindUnauthorized, "failed to decode google token info", err)
	}

	if v.clientID != "" && info.Audience != v.clientID {
		return nil, apperror.Unauthorized("google token issued for another application")
	}
	if info.EmailVerified != "true" {
		return nil, apperror.Unauthorized("google email is not verified")
	}

	return &Identity{
		Email:     info.Email,
		Name:      info.Name,
		AvatarURL: info.Picture,
		Provider:  "google",
	}, nil
}
