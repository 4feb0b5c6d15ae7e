package lane

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/roadmap"
	"github.com/thenoetrevino/hito/internal/testutil"
	clitest "github.com/thenoetrevino/hito/internal/testutil/cli"
	"github.com/thenoetrevino/hito/internal/types"
)

func TestLaneList_BuiltIn(t *testing.T) {
	repo, app := clitest.SetupCLITest(t)
	org, _ := testutil.SeedOrgBoard(t, repo, "Acme", "Feedback")

	out, err := clitest.ExecuteCLICommand(t, app, LaneCmd(), []string{"list", "--org", string(org.ID), "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []string{"under-review", "planned", "in-progress", "complete"}, strings.Fields(out))
}

func TestLaneLifecycle(t *testing.T) {
	repo, app := clitest.SetupCLITest(t)
	org, _ := testutil.SeedOrgBoard(t, repo, "Acme", "Feedback")
	orgFlag := []string{"--org", string(org.ID)}

	out, err := clitest.ExecuteCLICommand(t, app, LaneCmd(), append([]string{"create", "--name", "Now", "--quiet"}, orgFlag...))
	require.NoError(t, err)
	now := strings.TrimSpace(out)

	out, err = clitest.ExecuteCLICommand(t, app, LaneCmd(), append([]string{"create", "--name", "Shipped", "--color", "#22C55E", "--done", "--json"}, orgFlag...))
	require.NoError(t, err)
	lane := testutil.ParseJSON(t, out)["lane"].(map[string]any)
	assert.Equal(t, true, lane["is_done"])
	shipped := lane["id"].(string)

	out, err = clitest.ExecuteCLICommand(t, app, LaneCmd(), append([]string{"list", "--json"}, orgFlag...))
	require.NoError(t, err)
	lanes := testutil.ParseJSON(t, out)["lanes"].(map[string]any)
	assert.Equal(t, "custom", lanes["source"])
	assert.Len(t, lanes["lanes"].([]any), 2)

	_, err = clitest.ExecuteCLICommand(t, app, LaneCmd(), []string{"update", shipped, "--done=false", "--name", "Released"})
	require.NoError(t, err)
	tag, err := repo.GetTag(context.Background(), types.TagID(shipped))
	require.NoError(t, err)
	assert.Equal(t, "Released", tag.Name)
	assert.False(t, tag.IsDoneStatus)

	_, err = clitest.ExecuteCLICommand(t, app, LaneCmd(), []string{"delete", now})
	require.NoError(t, err)
	out, err = clitest.ExecuteCLICommand(t, app, LaneCmd(), append([]string{"list", "--quiet"}, orgFlag...))
	require.NoError(t, err)
	assert.Equal(t, []string{shipped}, strings.Fields(out))
}

func TestLaneCreate_InvalidColor(t *testing.T) {
	repo, app := clitest.SetupCLITest(t)
	org, _ := testutil.SeedOrgBoard(t, repo, "Acme", "Feedback")

	_, err := clitest.ExecuteCLICommand(t, app, LaneCmd(), []string{"create", "--org", string(org.ID), "--name", "Now", "--color", "blue"})
	require.Error(t, err)
	assert.ErrorIs(t, err, roadmap.ErrInvalidColor)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
}

func TestLaneUpdate_BuiltInRejected(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, app, LaneCmd(), []string{"update", "planned", "--name", "Soon"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
}
