package ledger

import (
	"context"
	"testing"

	"github.com/mcdev12/auctioneer/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_CommitFlow(t *testing.T) {
	app, session := newTestApp(t)
	ctx := context.Background()
	sel := NewSelection()

	require.NoError(t, sel.SelectSlot(1, models.SlotSecond))
	assert.Equal(t, SelectionSlotSelected, sel.State())

	require.NoError(t, sel.SelectPlayer(testHitter("Altuve")))
	assert.Equal(t, SelectionPlayerSelected, sel.State())

	team, err := sel.Commit(ctx, app, session.ID, 22)
	require.NoError(t, err)
	assert.Equal(t, SelectionIdle, sel.State(), "commit returns to idle")

	slot := team.Slots[models.SlotSecond]
	assert.Equal(t, "Altuve", slot.Player.Name)
	assert.Equal(t, 22, slot.Cost)
}

func TestSelection_ToggleOffSameSlot(t *testing.T) {
	sel := NewSelection()

	require.NoError(t, sel.SelectSlot(1, models.SlotThird))
	require.NoError(t, sel.SelectSlot(1, models.SlotThird))
	assert.Equal(t, SelectionIdle, sel.State(), "re-selecting the held slot toggles off")
}

func TestSelection_SwitchSlot(t *testing.T) {
	sel := NewSelection()

	require.NoError(t, sel.SelectSlot(1, models.SlotThird))
	require.NoError(t, sel.SelectSlot(2, models.SlotCatcher))

	teamID, slot := sel.Slot()
	assert.Equal(t, SelectionSlotSelected, sel.State())
	assert.Equal(t, 2, teamID)
	assert.Equal(t, models.SlotCatcher, slot)
}

func TestSelection_CancelNeverMutates(t *testing.T) {
	app, session := newTestApp(t)
	ctx := context.Background()
	sel := NewSelection()

	require.NoError(t, sel.SelectSlot(1, models.SlotOutfield3))
	require.NoError(t, sel.SelectPlayer(testHitter("Acuna")))
	sel.Cancel()
	assert.Equal(t, SelectionIdle, sel.State())

	metrics, err := app.GetTeamMetrics(ctx, session.ID, 1)
	require.NoError(t, err)
	assert.Zero(t, metrics.FilledSpots)
}

func TestSelection_InvalidTransitions(t *testing.T) {
	sel := NewSelection()

	err := sel.SelectPlayer(testHitter("Acuna"))
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = sel.Commit(context.Background(), nil, [16]byte{}, 10)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	err = sel.SelectSlot(1, "DH_9")
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestSelection_FailedCommitKeepsSelection(t *testing.T) {
	app, session := newTestApp(t)
	ctx := context.Background()
	sel := NewSelection()

	require.NoError(t, sel.SelectSlot(1, models.SlotFirstDH1))
	require.NoError(t, sel.SelectPlayer(testHitter("Freeman")))

	_, err := sel.Commit(ctx, app, session.ID, 0)
	require.ErrorIs(t, err, ErrInvalidCost)
	assert.Equal(t, SelectionPlayerSelected, sel.State(), "operator can correct the cost and retry")

	team, err := sel.Commit(ctx, app, session.ID, 18)
	require.NoError(t, err)
	assert.Equal(t, "Freeman", team.Slots[models.SlotFirstDH1].Player.Name)
}
