package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TeamJSON renders a minimal searchteams.php response for one team.
func TeamJSON(name, sport, league, year, stadium, description string) string {
	return fmt.Sprintf(`{"teams": [{
		"strTeam": %q,
		"strSport": %q,
		"strLeague": %q,
		"intFormedYear": %q,
		"strStadium": %q,
		"strDescriptionEN": %q
	}]}`, name, sport, league, year, stadium, description)
}

// NewSportsDBServer starts a test server answering searchteams.php lookups
// from the given name-to-body map. Unknown names get a "no match" response.
// The server is shut down when the test finishes.
func NewSportsDBServer(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("t")
		if body, ok := responses[name]; ok {
			fmt.Fprint(w, body)
			return
		}
		fmt.Fprint(w, `{"teams": null}`)
	}))
	t.Cleanup(server.Close)

	return server
}
