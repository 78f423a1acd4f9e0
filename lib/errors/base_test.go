package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorsClone(t *testing.T) {
	require.Equal(t, BallotEmpty, BallotEmpty)

	e := BallotEmpty
	e0 := BallotEmpty.Clone()
	require.NotEqual(t, fmt.Sprintf("%p", e), fmt.Sprintf("%p", e0))

	{
		e0.SetData("index", 3)
		require.NotEqual(t, e.Data, e0.Data)
	}
}

func TestErrorsSerialize(t *testing.T) {
	e := BallotNonFinalSpecial.Clone().SetData("index", 1)

	b, err := e.Serialize()
	require.NoError(t, err)
	require.Contains(t, string(b), "special vote")
	require.Contains(t, string(b), "index")
}
