package org

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/testutil"
	clitest "github.com/thenoetrevino/hito/internal/testutil/cli"
)

func TestOrgCreateAndList(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	out, err := clitest.ExecuteCLICommand(t, app, OrgCmd(), []string{"create", "--name", "Acme", "--quiet"})
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	assert.NotEmpty(t, id)

	out, err = clitest.ExecuteCLICommand(t, app, OrgCmd(), []string{"list", "--json"})
	require.NoError(t, err)
	result := testutil.ParseJSON(t, out)
	assert.Equal(t, true, result["success"])
	orgs := result["organizations"].([]any)
	require.Len(t, orgs, 1)
	assert.Equal(t, id, orgs[0].(map[string]any)["id"])

	out, err = clitest.ExecuteCLICommand(t, app, OrgCmd(), []string{"list"})
	require.NoError(t, err)
	assert.Contains(t, out, "Acme")
}

func TestOrgCreate_EmptyName(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	out, err := clitest.ExecuteCLICommand(t, app, OrgCmd(), []string{"create", "--name", "  ", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	result := testutil.ParseJSON(t, out)
	assert.Equal(t, false, result["success"])
}
