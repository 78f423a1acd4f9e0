package cmd

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadRawBallots(t *testing.T) {
	dir, err := ioutil.TempDir("", "trie-rcv")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "ballots.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(`[[1,2,3],[3,-1],[-2]]`), 0644))

	raws, err := readRawBallots(path)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2, 3}, {3, -1}, {-2}}, raws)

	{ // missing file
		_, err := readRawBallots(filepath.Join(dir, "missing.json"))
		require.Error(t, err)
	}

	{ // not a json array of int arrays
		require.NoError(t, ioutil.WriteFile(path, []byte(`{"a": 1}`), 0644))
		_, err := readRawBallots(path)
		require.Error(t, err)
	}
}
