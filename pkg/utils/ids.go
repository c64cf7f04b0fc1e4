package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateShipID creates a readable ship ID from the hull name.
// Format: {hull-slug}-{8charHexUUID}
//
// Example:
//   - Input: hullName="Destroyer Mk1"
//   - Output: "destroyer-mk1-a3f8e2b1"
func GenerateShipID(hullName string) string {
	return slugify(hullName) + "-" + generateShortUUID()
}

// GenerateEngagementID creates an engagement ID of the form "engagement-{8charHexUUID}"
func GenerateEngagementID() string {
	return "engagement-" + generateShortUUID()
}

// slugify lowercases a name and joins its words with hyphens:
//   - "Small freighter Mk1" -> "small-freighter-mk1"
//   - "  Colony " -> "colony"
//   - "" -> "ship"
func slugify(name string) string {
	words := strings.Fields(strings.ToLower(name))
	if len(words) == 0 {
		return "ship"
	}
	return strings.Join(words, "-")
}

// generateShortUUID creates an 8-character hex string from a UUID.
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
