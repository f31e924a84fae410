package scenarioregistry

import (
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"enrollment-engine/internal/model"
)

var (
	registryURL string
	cache       sync.Map
	client      *http.Client
)

func init() {
	registryURL = os.Getenv("SCENARIO_REGISTRY_URL")
	if registryURL != "" {
		client = &http.Client{
			Timeout: 2 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
}

// builtin presets serve when no remote registry is configured or a fetch
// fails.
var builtin = map[string]model.ScenarioParams{
	"baseline": {
		Code:              "baseline",
		PSEntry:           60,
		EntryGrowthRate:   0.02,
		DefaultRetention:  0.95,
		TerminalRetention: 0.97,
		LateralMultiplier: 1.0,
	},
	"expansion": {
		Code:              "expansion",
		PSEntry:           70,
		EntryGrowthRate:   0.05,
		DefaultRetention:  0.97,
		TerminalRetention: 0.98,
		LateralMultiplier: 1.5,
	},
	"conservative": {
		Code:              "conservative",
		PSEntry:           55,
		EntryGrowthRate:   -0.02,
		DefaultRetention:  0.93,
		TerminalRetention: 0.95,
		LateralMultiplier: 0.8,
	},
}

// Get resolves a scenario code to its demographic assumptions. Remote
// results are cached for the process lifetime; on any fetch problem the
// built-in preset of the same code answers instead.
func Get(code string) (model.ScenarioParams, bool) {
	if cached, ok := cache.Load(code); ok {
		return cached.(model.ScenarioParams), true
	}

	if registryURL != "" {
		if params, ok := fetch(code); ok {
			cache.Store(code, params)
			return params, true
		}
	}

	params, ok := builtin[code]
	return params, ok
}

func fetch(code string) (model.ScenarioParams, bool) {
	resp, err := client.Get(registryURL + "/scenarios/" + code)
	if err != nil {
		return model.ScenarioParams{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return model.ScenarioParams{}, false
	}

	var params model.ScenarioParams
	if err := json.NewDecoder(resp.Body).Decode(&params); err != nil {
		return model.ScenarioParams{}, false
	}
	if params.Code == "" {
		params.Code = code
	}
	return params, true
}
