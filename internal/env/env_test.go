package env

import "testing"

func TestMap_ZeroValue(t *testing.T) {
	t.Parallel()

	var m Map
	if got := m.Get("MISSING"); got != "" {
		t.Errorf("Get on zero Map = %q, want empty", got)
	}
	m.Unset("MISSING") // must not panic

	m.Set("KEY", "value")
	if got := m.Get("KEY"); got != "value" {
		t.Errorf("Get = %q, want %q", got, "value")
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
}

func TestMap_SetOverwritesAndUnsets(t *testing.T) {
	t.Parallel()

	var m Map
	m.Set("KEY", "first")
	m.Set("KEY", "second")
	if got := m.Get("KEY"); got != "second" {
		t.Errorf("Get = %q, want %q", got, "second")
	}

	m.Unset("KEY")
	if got := m.Get("KEY"); got != "" {
		t.Errorf("Get after Unset = %q, want empty", got)
	}
	if m.Len() != 0 {
		t.Errorf("Len after Unset = %d, want 0", m.Len())
	}
}

func TestOS_RoundTrip(t *testing.T) {
	const key = "CRAFT_ENV_TEST_VAR"
	t.Setenv(key, "seed")

	st := OS()
	if got := st.Get(key); got != "seed" {
		t.Fatalf("Get = %q, want %q", got, "seed")
	}

	st.Set(key, "updated")
	if got := st.Get(key); got != "updated" {
		t.Errorf("Get after Set = %q, want %q", got, "updated")
	}

	st.Unset(key)
	if got := st.Get(key); got != "" {
		t.Errorf("Get after Unset = %q, want empty", got)
	}
}
