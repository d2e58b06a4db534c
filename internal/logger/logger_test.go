package logger

import "testing"

func TestNew(t *testing.T) {
	for _, env := range []string{"production", "development", ""} {
		l, err := New(env)
		if err != nil {
			t.Fatalf("env %q: unexpected error: %v", env, err)
		}
		if l == nil {
			t.Fatalf("env %q: expected a logger", env)
		}
		l.Info("logger test")
	}
}
