package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommitMessage(t *testing.T) {
	message := `Fix login timeout

The session refresh raced with the idle timer.
This closes the window by refreshing under the lock.

Change-Id: I7a3f9c2e8b1d4f6a
Signed-off-by: Dev Eloper <dev@example.com>
`

	commit := ParseCommitMessage(message)

	assert.Equal(t, "Fix login timeout", commit.Title)
	assert.Equal(t, "The session refresh raced with the idle timer.\nThis closes the window by refreshing under the lock.", commit.Body)
	assert.Equal(t, "I7a3f9c2e8b1d4f6a", commit.Trailers["Change-Id"])
	assert.Equal(t, "Dev Eloper <dev@example.com>", commit.Trailers["Signed-off-by"])
}

func TestParseCommitMessage_TitleOnly(t *testing.T) {
	commit := ParseCommitMessage("Fix tests\n")

	assert.Equal(t, "Fix tests", commit.Title)
	assert.Empty(t, commit.Body)
	assert.Empty(t, commit.Trailers)
}

func TestParseCommitMessage_TrailersWithoutBody(t *testing.T) {
	commit := ParseCommitMessage("Fix tests\n\nChange-Id: I1234\n")

	assert.Equal(t, "Fix tests", commit.Title)
	assert.Empty(t, commit.Body)
	assert.Equal(t, "I1234", commit.Trailers["Change-Id"])
}

func TestParseCommitMessage_ColonInBodyIsNotATrailer(t *testing.T) {
	commit := ParseCommitMessage("Fix tests\n\nSee the design doc: section 4.\n")

	// "See the design doc" has a space before the colon, so it is body text
	assert.Equal(t, "See the design doc: section 4.", commit.Body)
	assert.Empty(t, commit.Trailers["See"])
}

func TestGetTrailer(t *testing.T) {
	message := "Fix tests\n\nChange-Id: I1234\n"

	assert.Equal(t, "I1234", GetTrailer(message, "Change-Id"))
	assert.Empty(t, GetTrailer(message, "Reviewed-by"))
}

func TestChangeID(t *testing.T) {
	assert.Equal(t, "I1234", ChangeID("Fix tests\n\nChange-Id: I1234\n"))
	assert.Empty(t, ChangeID("Fix tests\n"))
}
