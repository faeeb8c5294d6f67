package topology

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Emeline-1/bgpsecsim/asgraph"
)

func TestCheckConnected_SingleComponentIsNil(t *testing.T) {
	g, err := asgraph.New([]asgraph.Edge{
		{A: 1, B: 2, Rel: asgraph.CUSTOMER},
		{A: 2, B: 3, Rel: asgraph.PEER},
	})
	require.NoError(t, err)
	require.NoError(t, CheckConnected(g))
}

func TestCheckConnected_TwoComponentsIsError(t *testing.T) {
	g, err := asgraph.New([]asgraph.Edge{
		{A: 1, B: 2, Rel: asgraph.CUSTOMER},
		{A: 3, B: 4, Rel: asgraph.CUSTOMER},
	})
	require.NoError(t, err)
	err = CheckConnected(g)
	require.Error(t, err)
	var graphErr *asgraph.GraphError
	require.ErrorAs(t, err, &graphErr)
}

func TestCheckConnected_EmptyGraphIsNil(t *testing.T) {
	g, err := asgraph.New(nil)
	require.NoError(t, err)
	require.NoError(t, CheckConnected(g))
}
