package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/roadmap"
	"github.com/thenoetrevino/hito/internal/testutil"
	clitest "github.com/thenoetrevino/hito/internal/testutil/cli"
)

func TestBoardCreateAndList(t *testing.T) {
	repo, app := clitest.SetupCLITest(t)
	org, _ := testutil.SeedOrgBoard(t, repo, "Acme", "Existing")

	out, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{"create", "--name", "Feedback", "--org", string(org.ID), "--quiet"})
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	require.NotEmpty(t, id)

	out, err = clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{"list", "--org", string(org.ID), "--quiet"})
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 2)
	assert.Contains(t, out, id)
}

func TestBoardCreate_UsesOrgFromEnv(t *testing.T) {
	repo, app := clitest.SetupCLITest(t)
	org, _ := testutil.SeedOrgBoard(t, repo, "Acme", "Existing")
	t.Setenv(cli.OrgEnv, string(org.ID))

	out, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{"create", "--name", "Feedback"})
	require.NoError(t, err)
	assert.Contains(t, out, "Board 'Feedback' created")
}

func TestBoardCreate_NoOrg(t *testing.T) {
	_, app := clitest.SetupCLITest(t)
	t.Setenv(cli.OrgEnv, "")

	_, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{"create", "--name", "Feedback", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestBoardShow(t *testing.T) {
	repo, app := clitest.SetupCLITest(t)
	_, b := testutil.SeedOrgBoard(t, repo, "Acme", "Feedback")
	testutil.SeedItem(t, repo, b.ID, "Dark mode", testutil.LanePtr(roadmap.LanePlanned), testutil.FloatPtr(1000))
	testutil.SeedItem(t, repo, b.ID, "Idea", nil, nil)
	testutil.SeedItem(t, repo, b.ID, "Orphan", testutil.LanePtr("gone"), testutil.FloatPtr(1000))

	out, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{"show", "--board", string(b.ID)})
	require.NoError(t, err)
	assert.Contains(t, out, "Dark mode")
	assert.NotContains(t, out, "Idea")
	assert.Contains(t, out, "1 item(s) reference a deleted lane")

	out, err = clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{"show", "--board", string(b.ID), "--backlog", "--dangling"})
	require.NoError(t, err)
	assert.Contains(t, out, "Idea")
	assert.Contains(t, out, "Orphan")
}

func TestBoardShow_JSON(t *testing.T) {
	repo, app := clitest.SetupCLITest(t)
	_, b := testutil.SeedOrgBoard(t, repo, "Acme", "Feedback")
	it := testutil.SeedItem(t, repo, b.ID, "Dark mode", testutil.LanePtr(roadmap.LanePlanned), testutil.FloatPtr(1000))

	out, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{"show", "--board", string(b.ID), "--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, out)
	board := result["board"].(map[string]any)
	assert.Equal(t, "built-in", board["lane_source"])
	lanes := board["lanes"].([]any)
	require.Len(t, lanes, 4)
	planned := lanes[1].(map[string]any)
	assert.Equal(t, "planned", planned["lane"].(map[string]any)["id"])
	items := planned["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, string(it.ID), items[0].(map[string]any)["id"])
}

func TestBoardShow_NotFound(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{"show", "--board", "ghost", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}
