package launcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hito/internal/app"
	"github.com/thenoetrevino/hito/internal/config"
	"github.com/thenoetrevino/hito/internal/events"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/testutil"
	"github.com/thenoetrevino/hito/internal/types"
)

func TestLaunch_UnknownBoard(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	a := app.New(repo)

	err := Launch(context.Background(), a, config.Default(), types.NewBoardID())
	assert.ErrorIs(t, err, models.ErrBoardNotFound)
}

func TestSubscribe_NoDaemon(t *testing.T) {
	assert.Nil(t, subscribe(context.Background(), nil, types.NewOrgID(), types.NewBoardID()))
}

func TestSubscribe_ListensOnPublisher(t *testing.T) {
	pub := testutil.NewRecordingPublisher()
	boardID := types.NewBoardID()
	ch := subscribe(context.Background(), pub, types.NewOrgID(), boardID)
	require.NotNil(t, ch)

	require.NoError(t, pub.SendEvent(events.Event{Type: events.EventBoardChanged, BoardID: boardID}))
	got := <-ch
	assert.Equal(t, boardID, got.BoardID)
}
