// Package update checks GitHub releases for a newer leakwarden build.
// Results are cached on disk for a day so scans stay fast and usable
// offline; CI environments never hit the network.
package update

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	semver "github.com/blang/semver/v4"
)

const (
	stateFile = "update.json"
	cacheTTL  = 24 * time.Hour
)

// releaseURL is a var so tests can point it at a local server.
var releaseURL = "https://api.github.com/repos/leakwarden/leakwarden/releases/latest"

// checkState is the on-disk cache of the last release lookup.
type checkState struct {
	LastChecked time.Time `json:"last_checked"`
	Latest      string    `json:"latest"`
}

func stateDir() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "leakwarden")
	}
	home, _ := os.UserHomeDir()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "leakwarden")
}

func loadState() (checkState, error) {
	var st checkState
	dir := stateDir()
	if dir == "" {
		return st, errors.New("no config dir")
	}
	b, err := os.ReadFile(filepath.Join(dir, stateFile))
	if err != nil {
		return st, err
	}
	_ = json.Unmarshal(b, &st)
	return st, nil
}

func saveState(st checkState) {
	dir := stateDir()
	if dir == "" {
		return
	}
	_ = os.MkdirAll(dir, 0755)
	b, _ := json.MarshalIndent(st, "", "  ")
	_ = os.WriteFile(filepath.Join(dir, stateFile), b, 0644)
}

func fetchLatest() (string, error) {
	client := &http.Client{Timeout: 2 * time.Second}
	req, _ := http.NewRequest("GET", releaseURL, nil)
	req.Header.Set("User-Agent", "leakwarden-updater")
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	var obj struct {
		TagName string `json:"tag_name"`
		Name    string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&obj); err != nil {
		return "", err
	}
	if obj.TagName != "" {
		return obj.TagName, nil
	}
	return obj.Name, nil
}

// Check returns (latest, isNewer, error). It consults the day-old state
// cache before the network and is a silent no-op in CI or when noNetwork
// is set.
func Check(current string, noNetwork bool) (string, bool, error) {
	if os.Getenv("CI") != "" || noNetwork {
		return "", false, nil
	}
	current = normalize(current)
	st, _ := loadState()
	latest := st.Latest
	if latest == "" || time.Since(st.LastChecked) > cacheTTL {
		if v, err := fetchLatest(); err == nil {
			latest = normalize(v)
			saveState(checkState{LastChecked: time.Now(), Latest: latest})
		}
	}
	if latest == "" || current == "" {
		return latest, false, nil
	}
	return latest, newer(latest, current), nil
}

func normalize(v string) string {
	v = strings.TrimSpace(v)
	return strings.TrimPrefix(v, "v")
}

// newer reports whether a is a strictly newer release than b. Tags that
// fail to parse as semantic versions never report newer.
func newer(a, b string) bool {
	av, err := semver.ParseTolerant(a)
	if err != nil {
		return false
	}
	bv, err := semver.ParseTolerant(b)
	if err != nil {
		return false
	}
	return av.GT(bv)
}
