// Deep-link construction for out-of-band room sharing
package services

import (
	"fmt"
	"strings"

	"auxroom/internal/shared"
)

// BuildShareURL builds the deep link {prefix}rooms/{roomID}/{owner}.
//
// Returns an empty string when roomID or owner is unset: no link is better
// than a silently broken one.
func BuildShareURL(prefix, roomID, owner string) string {
	if roomID == "" || owner == "" {
		return ""
	}
	return fmt.Sprintf("%srooms/%s/%s", prefix, roomID, owner)
}

// ParseShareURL extracts the room id and owner name from a share link.
//
// Accepts any prefix (app scheme or https) as long as the path contains the
// rooms/{id}/{owner} segments.
func ParseShareURL(link string) (roomID, owner string, err error) {
	const marker = "rooms/"

	idx := strings.Index(link, marker)
	if idx < 0 {
		return "", "", fmt.Errorf("%w: not a room link: %s", shared.ErrInvalidArgument, link)
	}

	rest := link[idx+len(marker):]
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: room link missing id or owner: %s", shared.ErrInvalidArgument, link)
	}

	return parts[0], parts[1], nil
}
