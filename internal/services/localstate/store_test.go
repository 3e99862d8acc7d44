package localstate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMissingFileIsEmpty(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "nested", "state.yaml"))
	require.NoError(t, err)

	assert.Nil(t, store.Identity())
	assert.False(t, store.HasSeenTutorial(TutorialWhiteElephant))
}

func TestIdentitySurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveIdentity(&Identity{ID: "p-1", DisplayName: "Mike", RealName: "Mike"}))
	require.NoError(t, store.MarkTutorialSeen(TutorialWhiteElephant))

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, &Identity{ID: "p-1", DisplayName: "Mike", RealName: "Mike"}, reopened.Identity())
	assert.True(t, reopened.HasSeenTutorial(TutorialWhiteElephant))
	assert.False(t, reopened.HasSeenTutorial(TutorialTrivia))

	require.NoError(t, reopened.ClearIdentity())
	assert.Nil(t, reopened.Identity())

	again, err := Open(path)
	require.NoError(t, err)
	assert.Nil(t, again.Identity())
	assert.True(t, again.HasSeenTutorial(TutorialWhiteElephant))
}

func TestSaveIdentityRequiresID(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "state.yaml"))
	require.NoError(t, err)

	assert.Error(t, store.SaveIdentity(&Identity{DisplayName: "Mike"}))
	assert.Error(t, store.SaveIdentity(nil))
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte("participant: [not, a, map"), 0o600))

	_, err := Open(path)
	assert.ErrorContains(t, err, "failed to parse state file")
}

func TestIdentityReturnsCopy(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "state.yaml"))
	require.NoError(t, err)
	require.NoError(t, store.SaveIdentity(&Identity{ID: "p-1", DisplayName: "Mike"}))

	identity := store.Identity()
	identity.DisplayName = "Changed"

	assert.Equal(t, "Mike", store.Identity().DisplayName)
}
