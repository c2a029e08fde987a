package review

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastRevisionBranch(t *testing.T) {
	tests := []struct {
		name     string
		branches []string
		feature  string
		expected string
	}{
		{
			name:     "no branches",
			branches: []string{},
			feature:  "login-fix",
			expected: "",
		},
		{
			name:     "no matching branches",
			branches: []string{"main", "other-feature_rev_1"},
			feature:  "login-fix",
			expected: "",
		},
		{
			name:     "single revision",
			branches: []string{"main", "login-fix_rev_1"},
			feature:  "login-fix",
			expected: "login-fix_rev_1",
		},
		{
			name:     "picks highest revision",
			branches: []string{"login-fix_rev_1", "login-fix_rev_3", "login-fix_rev_2"},
			feature:  "login-fix",
			expected: "login-fix_rev_3",
		},
		{
			name:     "numeric not lexicographic ordering",
			branches: []string{"login-fix_rev_9", "login-fix_rev_10"},
			feature:  "login-fix",
			expected: "login-fix_rev_10",
		},
		{
			name:     "ignores non-numeric suffixes",
			branches: []string{"login-fix_rev_old", "login-fix_rev_2"},
			feature:  "login-fix",
			expected: "login-fix_rev_2",
		},
		{
			name:     "ignores longer feature names sharing the prefix",
			branches: []string{"login-fix-extra_rev_5", "login-fix_rev_1"},
			feature:  "login-fix",
			expected: "login-fix_rev_1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LastRevisionBranch(tt.branches, tt.feature, "rev"))
		})
	}
}

func TestLastRevisionBranch_AllSequences(t *testing.T) {
	// For any f_rev_1..f_rev_k the last is f_rev_k and the next is f_rev_k+1
	for k := 1; k <= 12; k++ {
		var branches []string
		for i := 1; i <= k; i++ {
			branches = append(branches, fmt.Sprintf("f_rev_%d", i))
		}

		last := LastRevisionBranch(branches, "f", "rev")
		require.Equal(t, fmt.Sprintf("f_rev_%d", k), last)

		next, err := NextRevisionBranch("f", "rev", last)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("f_rev_%d", k+1), next)
	}
}

func TestNextRevisionBranch(t *testing.T) {
	tests := []struct {
		name     string
		feature  string
		suffix   string
		last     string
		expected string
		wantErr  bool
	}{
		{
			name:     "first revision",
			feature:  "login-fix",
			suffix:   "rev",
			last:     "",
			expected: "login-fix_rev_1",
		},
		{
			name:     "increments prior revision",
			feature:  "login-fix",
			suffix:   "rev",
			last:     "login-fix_rev_4",
			expected: "login-fix_rev_5",
		},
		{
			name:     "custom suffix",
			feature:  "login-fix",
			suffix:   "patchset",
			last:     "login-fix_patchset_1",
			expected: "login-fix_patchset_2",
		},
		{
			name:    "non-numeric suffix is an error, not zero",
			feature: "login-fix",
			suffix:  "rev",
			last:    "login-fix_rev_abc",
			wantErr: true,
		},
		{
			name:    "missing number is an error",
			feature: "login-fix",
			suffix:  "rev",
			last:    "login-fix_rev_",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := NextRevisionBranch(tt.feature, tt.suffix, tt.last)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNoRevisionNumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, next)
		})
	}
}
