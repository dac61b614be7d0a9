package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSuiteIsValid(t *testing.T) {
	s := Default()
	require.NoError(t, Validate(s))
	require.Len(t, s.Cases, 5)
	assert.Equal(t, "Start Pos", s.Cases[0].Name)
	assert.Equal(t, 4, s.Cases[4].Depth)
}

func TestLoadSuiteFile(t *testing.T) {
	s, err := Load("testdata/endgames.yaml")
	require.NoError(t, err)
	assert.Equal(t, "endgames", s.Name)
	require.Len(t, s.Cases, 3)
	assert.Equal(t, Case{
		Name:  "en passant",
		FEN:   "k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		Depth: 2,
	}, s.Cases[1])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/nope.yaml")
	assert.ErrorContains(t, err, "read suite")
}

func TestParseRejectsInvalidSuites(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "zero depth",
			yaml: "name: s\ncases:\n  - name: a\n    fen: 8/8/8/8/8/8/8/K6k w - - 0 1\n    depth: 0\n",
			want: "invalid suite",
		},
		{
			name: "empty case name",
			yaml: "name: s\ncases:\n  - name: \"\"\n    fen: 8/8/8/8/8/8/8/K6k w - - 0 1\n    depth: 1\n",
			want: "invalid suite",
		},
		{
			name: "no cases",
			yaml: "name: s\ncases: []\n",
			want: "invalid suite",
		},
		{
			name: "missing counters",
			yaml: "name: s\ncases:\n  - name: a\n    fen: 8/8/8/8/8/8/8/K6k w - -\n    depth: 1\n",
			want: "invalid suite",
		},
		{
			name: "bad board",
			yaml: "name: s\ncases:\n  - name: a\n    fen: 8/8/8/8/8/8/K6k w - - 0 1\n    depth: 1\n",
			want: `case "a"`,
		},
		{
			name: "unknown field",
			yaml: "name: s\ncases:\n  - name: a\n    fen: 8/8/8/8/8/8/8/K6k w - - 0 1\n    plies: 1\n",
			want: "parse suite",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestFilter(t *testing.T) {
	s, err := Default().Filter("Pos *")
	require.NoError(t, err)
	require.Len(t, s.Cases, 4)
	assert.Equal(t, "Pos 2", s.Cases[0].Name)

	s, err = Default().Filter("")
	require.NoError(t, err)
	assert.Len(t, s.Cases, 5)

	_, err = Default().Filter("[")
	assert.ErrorContains(t, err, "invalid filter pattern")
}
