package scenario

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/routelab/routesim/core"
	"github.com/stretchr/testify/require"
)

// The text files and the YAML scenario are two spellings of the same run;
// fed through the pipeline they must produce identical output.
func TestScenarioMatchesTextFiles(t *testing.T) {
	topo := "1 2 1\n2 3 1\n1 3 5\n"
	msgs := "1 3 here is a message\n3 1 reply\n"
	changes := "2 3 -999\n1 3 -999\n"

	doc := `links:
  - { a: 1, b: 2, cost: 1 }
  - { a: 2, b: 3, cost: 1 }
  - { a: 1, b: 3, cost: 5 }
messages:
  - { from: 1, to: 3, payload: "here is a message" }
  - { from: 3, to: 1, payload: "reply" }
changes:
  - { a: 2, b: 3, cost: -999 }
  - { a: 1, b: 3, cost: -999 }
`

	for _, algorithm := range []string{"dv", "lsr"} {
		t.Run(algorithm, func(t *testing.T) {
			solver, ok := core.NewSolver(algorithm)
			require.True(t, ok)
			log := slog.New(slog.NewTextHandler(io.Discard, nil))

			links, err := ParseLinks(strings.NewReader(topo), "topofile")
			require.NoError(t, err)
			messages, err := ParseMessages(strings.NewReader(msgs), "messagefile")
			require.NoError(t, err)
			changeRecs, err := ParseLinks(strings.NewReader(changes), "changesfile")
			require.NoError(t, err)

			var fromText strings.Builder
			require.NoError(t, core.Run(core.RunConfig{
				Solver:   solver,
				Links:    links,
				Messages: messages,
				Changes:  changeRecs,
				Out:      &fromText,
				Log:      log,
			}))

			sc, err := LoadScenario(writeScenario(t, doc))
			require.NoError(t, err)

			var fromYaml strings.Builder
			require.NoError(t, core.Run(core.RunConfig{
				Solver:   solver,
				Links:    sc.Links,
				Messages: sc.Messages,
				Changes:  sc.Changes,
				Out:      &fromYaml,
				Log:      log,
			}))

			if diff := cmp.Diff(fromText.String(), fromYaml.String()); diff != "" {
				t.Errorf("text and yaml runs diverge (-text +yaml):\n%s", diff)
			}
		})
	}
}
