package review

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoRevisionNumber is returned when a branch name that should end in a
// numeric revision suffix does not. The allocator never guesses a number for
// such a branch.
var ErrNoRevisionNumber = errors.New("branch name has no numeric revision suffix")

// RevisionPrefix returns the naming prefix shared by all revision branches
// of a feature branch: "<feature>_<suffix>_"
func RevisionPrefix(feature string, suffix string) string {
	return feature + "_" + suffix + "_"
}

// LastRevisionBranch finds the highest-numbered revision branch for a
// feature among the given branch names. Ordering is numeric, not
// lexicographic, so rev_10 beats rev_9. Returns an empty string when the
// feature has no revision branches yet.
func LastRevisionBranch(branches []string, feature string, suffix string) string {
	prefix := RevisionPrefix(feature, suffix)

	last := ""
	max := 0
	for _, branch := range branches {
		n, err := revisionNumber(branch, prefix)
		if err != nil {
			continue
		}
		if n > max {
			max = n
			last = branch
		}
	}
	return last
}

// NextRevisionBranch computes the branch name for the next revision of a
// feature. With no prior revision the first branch is "<feature>_<suffix>_1";
// otherwise the prior branch's trailing number is incremented.
//
// A prior branch whose name does not end in "_<digits>" returns
// ErrNoRevisionNumber rather than being treated as revision zero.
func NextRevisionBranch(feature string, suffix string, last string) (string, error) {
	prefix := RevisionPrefix(feature, suffix)
	if last == "" {
		return prefix + "1", nil
	}

	n, err := revisionNumber(last, prefix)
	if err != nil {
		return "", fmt.Errorf("cannot compute next revision after %s: %w", last, err)
	}
	return prefix + strconv.Itoa(n+1), nil
}

// revisionNumber extracts the revision number from a branch name of the form
// "<prefix><digits>". Anything else returns ErrNoRevisionNumber.
func revisionNumber(branch string, prefix string) (int, error) {
	if !strings.HasPrefix(branch, prefix) {
		return 0, ErrNoRevisionNumber
	}

	rest := branch[len(prefix):]
	if rest == "" {
		return 0, ErrNoRevisionNumber
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n <= 0 {
		return 0, ErrNoRevisionNumber
	}
	return n, nil
}
