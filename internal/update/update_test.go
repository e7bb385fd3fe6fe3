package update

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCheck_NoNetworkOrCI(t *testing.T) {
	t.Setenv("CI", "1")
	if latest, isNewer, err := Check("1.0.0", false); err != nil || latest != "" || isNewer {
		t.Fatalf("expected no-op in CI; got latest=%q newer=%v err=%v", latest, isNewer, err)
	}
}

func TestNormalize(t *testing.T) {
	if normalize(" v1.2.3 ") != "1.2.3" {
		t.Fatalf("normalize failed")
	}
}

func TestNewer(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"1.2.3", "1.2.3", false},
		{"1.3.0", "1.2.9", true},
		{"1.2.0", "1.2.1", false},
		{"2.0.0", "1.9.9", true},
		{"v1.1.0", "1.0.0", true},
		{"1.0.0-rc1", "1.0.0", false},
		{"not-a-version", "1.0.0", false},
		{"1.0.0", "not-a-version", false},
	}
	for _, c := range cases {
		if got := newer(c.a, c.b); got != c.want {
			t.Errorf("newer(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestCheck_UsesCacheWhenFresh(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	st := checkState{LastChecked: time.Now(), Latest: "1.2.3"}
	path := filepath.Join(dir, "leakwarden", stateFile)
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	b, _ := json.Marshal(st)
	if err := os.WriteFile(path, b, 0644); err != nil {
		t.Fatal(err)
	}
	latest, isNewer, err := Check("1.2.2", false)
	if err != nil {
		t.Fatal(err)
	}
	if latest != "1.2.3" || !isNewer {
		t.Fatalf("expected cached latest=1.2.3 and newer=true; got latest=%q newer=%v", latest, isNewer)
	}
}

func TestFetchLatest_WithServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"tag_name": "v9.9.9"})
	}))
	defer srv.Close()

	old := releaseURL
	releaseURL = srv.URL
	defer func() { releaseURL = old }()

	v, err := fetchLatest()
	if err != nil {
		t.Fatalf("fetchLatest: %v", err)
	}
	if v != "v9.9.9" {
		t.Fatalf("got %q, want v9.9.9", v)
	}
}
