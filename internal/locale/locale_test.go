package locale

import "testing"

func TestKnown(t *testing.T) {
	if !Known("en") || !Known("id") {
		t.Error("expected en and id to be known locales")
	}
	if Known("xx") {
		t.Error("expected xx to be unknown")
	}
}

func TestForFallsBackToDefault(t *testing.T) {
	if For("xx").Get("greeting.morning") != "Good Morning" {
		t.Error("expected an unknown code to fall back to English")
	}
}

func TestGetFallbackChain(t *testing.T) {
	id := For("id")

	if got := id.Get("greeting.morning"); got != "Selamat Pagi" {
		t.Errorf("expected the Indonesian greeting, got %q", got)
	}

	// A key missing from every table comes back verbatim so the UI
	// never renders an empty string.
	if got := id.Get("no.such.key"); got != "no.such.key" {
		t.Errorf("expected the key itself, got %q", got)
	}
}

func TestTablesCoverSameKeys(t *testing.T) {
	en := For("en")
	id := For("id")

	if len(en) != len(id) {
		t.Fatalf("table sizes differ: en=%d id=%d", len(en), len(id))
	}
	for key := range en {
		if _, ok := id[key]; !ok {
			t.Errorf("key %q missing from the id table", key)
		}
	}
}

func TestMoodByKey(t *testing.T) {
	if got := MoodByKey("calm"); got.Label != "Calm" {
		t.Errorf("unexpected mood for calm: %+v", got)
	}

	// Unknown keys render as the neutral mood rather than failing.
	if got := MoodByKey("bogus"); got.Key != "okay" {
		t.Errorf("expected the okay fallback, got %+v", got)
	}
}
