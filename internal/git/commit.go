package git

import (
	"strings"
)

// ChangeIDTrailer is the trailer key the review server's commit-msg hook
// stamps into every commit. The server groups revision branches that carry
// the same value into one logical review.
const ChangeIDTrailer = "Change-Id"

// Commit represents a parsed commit message
type Commit struct {
	Title    string
	Body     string
	Message  string
	Trailers map[string]string
}

// ParseCommitMessage parses a commit message into title, body, and trailers
func ParseCommitMessage(message string) Commit {
	lines := strings.Split(message, "\n")

	commit := Commit{
		Message:  message,
		Trailers: make(map[string]string),
	}

	if len(lines) == 0 {
		return commit
	}

	// First line is the title
	commit.Title = strings.TrimSpace(lines[0])

	// Find where trailers start (last non-empty block with Key: Value format)
	trailerStart := len(lines)
	inTrailers := false

	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			if inTrailers {
				trailerStart = i + 1
				break
			}
			continue
		}

		// Check if this line looks like a trailer
		if strings.Contains(line, ":") {
			parts := strings.SplitN(line, ":", 2)
			if len(parts) == 2 && !strings.Contains(parts[0], " ") {
				inTrailers = true
				continue
			}
		}

		// If we hit a non-trailer line while in trailers, we're done
		if inTrailers {
			trailerStart = i + 1
		}
		break
	}

	// Parse trailers
	for i := trailerStart; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			commit.Trailers[key] = value
		}
	}

	// Body is everything between title and trailers
	bodyLines := []string{}
	for i := 1; i < trailerStart; i++ {
		bodyLines = append(bodyLines, lines[i])
	}

	body := strings.Join(bodyLines, "\n")
	commit.Body = strings.TrimSpace(body)

	return commit
}

// GetTrailer extracts a specific trailer from a commit message.
// Returns an empty string if the trailer is absent.
func GetTrailer(message string, key string) string {
	commit := ParseCommitMessage(message)
	return commit.Trailers[key]
}

// ChangeID extracts the review change identifier from a commit message.
// Returns an empty string if the commit-msg hook has not stamped one.
func ChangeID(message string) string {
	return GetTrailer(message, ChangeIDTrailer)
}
