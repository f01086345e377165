package env

import "testing"

func TestGetString(t *testing.T) {
	t.Setenv("TEST_STRING", "value")

	if got := GetString("TEST_STRING", "fallback"); got != "value" {
		t.Errorf("GetString = %q, want value", got)
	}
	if got := GetString("TEST_STRING_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetString missing = %q, want fallback", got)
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_INT_BAD", "not-a-number")

	if got := GetInt("TEST_INT", 7); got != 42 {
		t.Errorf("GetInt = %d, want 42", got)
	}
	if got := GetInt("TEST_INT_BAD", 7); got != 7 {
		t.Errorf("GetInt bad value = %d, want fallback 7", got)
	}
	if got := GetInt("TEST_INT_MISSING", 7); got != 7 {
		t.Errorf("GetInt missing = %d, want fallback 7", got)
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_BOOL_BAD", "yep")

	if got := GetBool("TEST_BOOL", false); got != true {
		t.Errorf("GetBool = %v, want true", got)
	}
	if got := GetBool("TEST_BOOL_BAD", false); got != false {
		t.Errorf("GetBool bad value = %v, want fallback false", got)
	}
}
