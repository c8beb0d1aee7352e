package table

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivercard-server/pkg/holdem"
)

func TestStore_SaveHand_notFinished(t *testing.T) {
	a := assert.New(t)

	hand, err := holdem.NewHand(nil, []holdem.PlayerInfo{
		{ID: 1, Name: "alice", Credit: 1000},
		{ID: 2, Name: "bob", Credit: 1000},
	}, holdem.DefaultOptions())
	require.NoError(t, err)

	store := NewStore(nil)
	a.Equal(ErrHandNotFinished, store.SaveHand(context.Background(), "d4a36a4b-6ef6-4332-8f1d-22bbec4e36b4", hand))
}
