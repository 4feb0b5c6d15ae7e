package item

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/roadmap"
	"github.com/thenoetrevino/hito/internal/testutil"
	clitest "github.com/thenoetrevino/hito/internal/testutil/cli"
	"github.com/thenoetrevino/hito/internal/types"
)

func TestItemLifecycle(t *testing.T) {
	repo, app := clitest.SetupCLITest(t)
	_, b := testutil.SeedOrgBoard(t, repo, "Acme", "Feedback")
	ctx := context.Background()

	out, err := clitest.ExecuteCLICommand(t, app, ItemCmd(), []string{
		"create", "--title", "Dark mode", "--description", "Please **add** it", "--board", string(b.ID), "--quiet",
	})
	require.NoError(t, err)
	id := types.ItemID(strings.TrimSpace(out))

	stored, err := repo.GetItem(ctx, id)
	require.NoError(t, err)
	assert.True(t, stored.InBacklog())

	out, err = clitest.ExecuteCLICommand(t, app, ItemCmd(), []string{"vote", string(id), "--count", "3", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "3", strings.TrimSpace(out))

	out, err = clitest.ExecuteCLICommand(t, app, ItemCmd(), []string{"update", string(id), "--title", "Dark theme"})
	require.NoError(t, err)
	assert.Contains(t, out, "Dark theme")

	out, err = clitest.ExecuteCLICommand(t, app, ItemCmd(), []string{"show", string(id)})
	require.NoError(t, err)
	assert.Contains(t, out, "Dark theme")
	assert.Contains(t, out, "backlog")

	_, err = clitest.ExecuteCLICommand(t, app, ItemCmd(), []string{"delete", string(id)})
	require.NoError(t, err)
	_, err = repo.GetItem(ctx, id)
	assert.ErrorIs(t, err, models.ErrItemNotFound)
}

func TestItemUpdate_NothingToUpdate(t *testing.T) {
	repo, app := clitest.SetupCLITest(t)
	_, b := testutil.SeedOrgBoard(t, repo, "Acme", "Feedback")
	it := testutil.SeedItem(t, repo, b.ID, "SSO", nil, nil)

	_, err := clitest.ExecuteCLICommand(t, app, ItemCmd(), []string{"update", string(it.ID)})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestItemMove(t *testing.T) {
	repo, app := clitest.SetupCLITest(t)
	org, b := testutil.SeedOrgBoard(t, repo, "Acme", "Feedback")
	shipped := testutil.SeedLane(t, repo, org.ID, "Shipped", 1000, true)
	it := testutil.SeedItem(t, repo, b.ID, "Export", nil, nil)
	ctx := context.Background()

	out, err := clitest.ExecuteCLICommand(t, app, ItemCmd(), []string{"move", string(it.ID), string(shipped.ID), "--json"})
	require.NoError(t, err)
	result := testutil.ParseJSON(t, out)
	move := result["move"].(map[string]any)
	assert.Equal(t, true, move["applied"])
	assert.Equal(t, "set", move["completion"])

	stored, err := repo.GetItem(ctx, it.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Lane)
	assert.Equal(t, shipped.ID.LaneID(), *stored.Lane)
	assert.NotNil(t, stored.CompletedAt)

	out, err = clitest.ExecuteCLICommand(t, app, ItemCmd(), []string{"move", string(it.ID), roadmap.Backlog})
	require.NoError(t, err)
	assert.Contains(t, out, "moved to the backlog")
	assert.Contains(t, out, "Completion cleared")

	stored, err = repo.GetItem(ctx, it.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Lane)
	assert.Nil(t, stored.CompletedAt)
}

func TestItemMove_UnknownLane(t *testing.T) {
	repo, app := clitest.SetupCLITest(t)
	_, b := testutil.SeedOrgBoard(t, repo, "Acme", "Feedback")
	it := testutil.SeedItem(t, repo, b.ID, "Export", nil, nil)

	out, err := clitest.ExecuteCLICommand(t, app, ItemCmd(), []string{"move", string(it.ID), "shipped", "--json"})
	require.Error(t, err)
	assert.ErrorIs(t, err, roadmap.ErrUnknownLane)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Equal(t, false, testutil.ParseJSON(t, out)["success"])
}

func TestItemList_Filters(t *testing.T) {
	repo, app := clitest.SetupCLITest(t)
	_, b := testutil.SeedOrgBoard(t, repo, "Acme", "Feedback")
	second := testutil.SeedItem(t, repo, b.ID, "Second", testutil.LanePtr(roadmap.LanePlanned), testutil.FloatPtr(2000))
	first := testutil.SeedItem(t, repo, b.ID, "First", testutil.LanePtr(roadmap.LanePlanned), testutil.FloatPtr(1000))
	idea := testutil.SeedItem(t, repo, b.ID, "Idea", nil, nil)
	orphan := testutil.SeedItem(t, repo, b.ID, "Orphan", testutil.LanePtr("gone"), testutil.FloatPtr(1000))
	board := string(b.ID)

	out, err := clitest.ExecuteCLICommand(t, app, ItemCmd(), []string{"list", "--board", board, "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []string{string(first.ID), string(second.ID)}, strings.Fields(out))

	out, err = clitest.ExecuteCLICommand(t, app, ItemCmd(), []string{"list", "--board", board, "--backlog", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []string{string(idea.ID)}, strings.Fields(out))

	out, err = clitest.ExecuteCLICommand(t, app, ItemCmd(), []string{"list", "--board", board, "--dangling", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []string{string(orphan.ID)}, strings.Fields(out))

	out, err = clitest.ExecuteCLICommand(t, app, ItemCmd(), []string{"list", "--board", board, "--lane", "planned", "--json"})
	require.NoError(t, err)
	items := testutil.ParseJSON(t, out)["items"].([]any)
	assert.Len(t, items, 2)

	_, err = clitest.ExecuteCLICommand(t, app, ItemCmd(), []string{"list", "--board", board, "--lane", "nope"})
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
}
