package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Remote: "origin",
		Branch: "main",
		URL:    "https://review.example.com",
		Suffix: "rev",
	}
}

// newTestClient builds a review client without touching a real repository
func newTestClient(mockGit *MockGitClient, config *Config, branch string, hookInstalled bool) *Client {
	return &Client{
		git:           mockGit,
		config:        config,
		branch:        branch,
		hookInstalled: func(string) bool { return hookInstalled },
	}
}

func TestVerify_HookMissing(t *testing.T) {
	mockGit := &MockGitClient{}
	mockGit.On("GitRoot").Return("/repo")

	client := newTestClient(mockGit, testConfig(), "login-fix", false)

	err := client.Verify()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit-msg hook is not installed")
	assert.Contains(t, err.Error(), "https://review.example.com/tools/hooks/commit-msg")

	// Short-circuits: no later check ran
	mockGit.AssertNotCalled(t, "RemoteExists", "origin")
}

func TestVerify_RemoteMissing(t *testing.T) {
	mockGit := &MockGitClient{}
	mockGit.On("GitRoot").Return("/repo")
	mockGit.On("RemoteExists", "origin").Return(false)

	client := newTestClient(mockGit, testConfig(), "login-fix", true)

	err := client.Verify()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remote origin is not configured")
	mockGit.AssertNotCalled(t, "RemoteBranchExists", "origin", "main")
}

func TestVerify_RemoteBranchMissing(t *testing.T) {
	mockGit := &MockGitClient{}
	mockGit.On("GitRoot").Return("/repo")
	mockGit.On("RemoteExists", "origin").Return(true)
	mockGit.On("RemoteBranchExists", "origin", "main").Return(false)

	client := newTestClient(mockGit, testConfig(), "login-fix", true)

	err := client.Verify()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "branch main does not exist on remote origin")
	mockGit.AssertNotCalled(t, "HasUncommittedChanges")
}

func TestVerify_DirtyWorkingTree(t *testing.T) {
	mockGit := &MockGitClient{}
	mockGit.On("GitRoot").Return("/repo")
	mockGit.On("RemoteExists", "origin").Return(true)
	mockGit.On("RemoteBranchExists", "origin", "main").Return(true)
	mockGit.On("HasUncommittedChanges").Return(true, nil)

	client := newTestClient(mockGit, testConfig(), "login-fix", true)

	err := client.Verify()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uncommitted changes")
	mockGit.AssertNotCalled(t, "IsAncestor", "main", "HEAD")
}

func TestVerify_BaseNotMerged(t *testing.T) {
	mockGit := &MockGitClient{}
	mockGit.On("GitRoot").Return("/repo")
	mockGit.On("RemoteExists", "origin").Return(true)
	mockGit.On("RemoteBranchExists", "origin", "main").Return(true)
	mockGit.On("HasUncommittedChanges").Return(false, nil)
	mockGit.On("IsAncestor", "main", "HEAD").Return(false, nil)

	client := newTestClient(mockGit, testConfig(), "login-fix", true)

	err := client.Verify()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "main has not been merged into login-fix")
}

func TestVerify_StaleBase(t *testing.T) {
	mockGit := &MockGitClient{}
	mockGit.On("GitRoot").Return("/repo")
	mockGit.On("RemoteExists", "origin").Return(true)
	mockGit.On("RemoteBranchExists", "origin", "main").Return(true)
	mockGit.On("HasUncommittedChanges").Return(false, nil)
	mockGit.On("IsAncestor", "main", "HEAD").Return(true, nil)
	mockGit.On("RevParse", "main").Return("aaa111", nil)
	mockGit.On("RevParse", "origin/main").Return("bbb222", nil)

	client := newTestClient(mockGit, testConfig(), "login-fix", true)

	err := client.Verify()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not up to date with origin/main")
}

func TestVerify_AllPass(t *testing.T) {
	mockGit := &MockGitClient{}
	mockGit.On("GitRoot").Return("/repo")
	mockGit.On("RemoteExists", "origin").Return(true)
	mockGit.On("RemoteBranchExists", "origin", "main").Return(true)
	mockGit.On("HasUncommittedChanges").Return(false, nil)
	mockGit.On("IsAncestor", "main", "HEAD").Return(true, nil)
	mockGit.On("RevParse", "main").Return("aaa111", nil)
	mockGit.On("RevParse", "origin/main").Return("aaa111", nil)

	client := newTestClient(mockGit, testConfig(), "login-fix", true)

	require.NoError(t, client.Verify())
	mockGit.AssertExpectations(t)
}

func TestNewClient_OnBaseBranch(t *testing.T) {
	mockGit := &MockGitClient{}
	mockGit.On("CurrentBranch").Return("main", nil)

	_, err := NewClient(mockGit, testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base branch")
}
