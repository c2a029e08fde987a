package review

import (
	"github.com/stretchr/testify/mock"
)

type MockGitClient struct {
	mock.Mock
}

// GitRoot implements GitClient.
func (m *MockGitClient) GitRoot() string {
	args := m.Called()
	return args.String(0)
}

// CurrentBranch implements GitClient.
func (m *MockGitClient) CurrentBranch() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// ConfigGet implements GitClient.
func (m *MockGitClient) ConfigGet(key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

// FetchPrune implements GitClient.
func (m *MockGitClient) FetchPrune(remote string) error {
	args := m.Called(remote)
	return args.Error(0)
}

// ListRemoteBranches implements GitClient.
func (m *MockGitClient) ListRemoteBranches(remote string) ([]string, error) {
	args := m.Called(remote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// RemoteExists implements GitClient.
func (m *MockGitClient) RemoteExists(remote string) bool {
	args := m.Called(remote)
	return args.Bool(0)
}

// RemoteBranchExists implements GitClient.
func (m *MockGitClient) RemoteBranchExists(remote string, branch string) bool {
	args := m.Called(remote, branch)
	return args.Bool(0)
}

// HasUncommittedChanges implements GitClient.
func (m *MockGitClient) HasUncommittedChanges() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

// IsAncestor implements GitClient.
func (m *MockGitClient) IsAncestor(ancestor string, ref string) (bool, error) {
	args := m.Called(ancestor, ref)
	return args.Bool(0), args.Error(1)
}

// RevParse implements GitClient.
func (m *MockGitClient) RevParse(ref string) (string, error) {
	args := m.Called(ref)
	return args.String(0), args.Error(1)
}

// Checkout implements GitClient.
func (m *MockGitClient) Checkout(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

// CreateBranch implements GitClient.
func (m *MockGitClient) CreateBranch(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

// SquashMerge implements GitClient.
func (m *MockGitClient) SquashMerge(branch string) error {
	args := m.Called(branch)
	return args.Error(0)
}

// StageAll implements GitClient.
func (m *MockGitClient) StageAll() error {
	args := m.Called()
	return args.Error(0)
}

// Commit implements GitClient.
func (m *MockGitClient) Commit(message string) error {
	args := m.Called(message)
	return args.Error(0)
}

// CommitMessage implements GitClient.
func (m *MockGitClient) CommitMessage(ref string) (string, error) {
	args := m.Called(ref)
	return args.String(0), args.Error(1)
}

// DiffStat implements GitClient.
func (m *MockGitClient) DiffStat(from string, to string) (string, error) {
	args := m.Called(from, to)
	return args.String(0), args.Error(1)
}

// PushRef implements GitClient.
func (m *MockGitClient) PushRef(remote string, refspec string) error {
	args := m.Called(remote, refspec)
	return args.Error(0)
}

// PushBranch implements GitClient.
func (m *MockGitClient) PushBranch(remote string, branch string) error {
	args := m.Called(remote, branch)
	return args.Error(0)
}
