package cmd

import (
	"testing"
	"time"

	"github.com/in0ni/hamster/internal/storage"
)

func TestSplitTags(t *testing.T) {
	rest, tags := splitTags([]string{"bananas", "--tags=a, b", "--tags", "c", "-20"})

	wantRest := []string{"bananas", "-20"}
	if len(rest) != len(wantRest) {
		t.Fatalf("rest = %q, want %q", rest, wantRest)
	}
	for i := range wantRest {
		if rest[i] != wantRest[i] {
			t.Errorf("rest[%d] = %q, want %q", i, rest[i], wantRest[i])
		}
	}

	wantTags := []string{"a", "b", "c"}
	if len(tags) != len(wantTags) {
		t.Fatalf("tags = %q, want %q", tags, wantTags)
	}
	for i := range wantTags {
		if tags[i] != wantTags[i] {
			t.Errorf("tags[%d] = %q, want %q", i, tags[i], wantTags[i])
		}
	}
}

func TestStartBackdatedRelative(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	rootCmd.SetArgs([]string{"start", "bananas", "-20"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("start bananas -20: %v", err)
	}

	base, err := storage.BaseDir()
	if err != nil {
		t.Fatal(err)
	}
	active, _, err := storage.FindActive(base, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if active == nil {
		t.Fatal("expected an active fact after start")
	}
	if active.Activity != "bananas" {
		t.Errorf("activity = %q, want %q", active.Activity, "bananas")
	}
	ago := time.Since(active.Start)
	if ago < 19*time.Minute || ago > 21*time.Minute {
		t.Errorf("start backdated by %v, want about 20 minutes", ago)
	}
}
