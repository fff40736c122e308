/*
GoTikTokIP
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package profile

import (
	"errors"
	"fmt"

	"github.com/slicingmelon/go-rawurlparser"
)

// Message is part of the tool's output contract, keep it verbatim
var ErrInvalidUsername = errors.New("Invalid TikTok username provided.")

const profileURLTemplate = "https://www.tiktok.com/@%s"

// ValidateUsername rejects empty usernames. No charset or length checks,
// TikTok handles are looked up as-is.
func ValidateUsername(username string) error {
	if username == "" {
		return ErrInvalidUsername
	}
	return nil
}

// ProfileURL builds the public profile URL for a username
func ProfileURL(username string) string {
	return fmt.Sprintf(profileURLTemplate, username)
}

// ProfileHost returns the bare hostname of the profile URL
func ProfileHost(username string) (string, error) {
	parsedURL, err := rawurlparser.RawURLParse(ProfileURL(username))
	if err != nil {
		return "", err
	}
	return parsedURL.Host, nil
}
