package leakwarden

import "testing"

func TestPickPrecedence(t *testing.T) {
	local, global := "local", "global"
	if got := pickString("cli", &local, &global); got != "cli" {
		t.Errorf("cli should win, got %q", got)
	}
	if got := pickString("", &local, &global); got != "local" {
		t.Errorf("local should win over global, got %q", got)
	}
	if got := pickString("", nil, &global); got != "global" {
		t.Errorf("global should be the fallback, got %q", got)
	}
	if got := pickString("", nil, nil); got != "" {
		t.Errorf("expected empty default, got %q", got)
	}

	f := 0.7
	if got := pickFloat(0.9, &f, nil); got != 0.9 {
		t.Errorf("pickFloat cli = %v", got)
	}
	if got := pickFloat(0, &f, nil); got != 0.7 {
		t.Errorf("pickFloat local = %v", got)
	}

	b := true
	if !pickBool(false, &b, nil) {
		t.Error("pickBool should honor local true")
	}
	if !pickBool(true, nil, nil) {
		t.Error("pickBool should honor cli true")
	}
}
