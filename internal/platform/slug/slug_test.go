package slug

import "testing"

func TestMake(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"Audio Books & Podcasts": "audio-books-podcasts",
		"  SQL  ":                "sql",
		"!!!":                    "untitled",
	}
	for in, want := range cases {
		if got := Make(in); got != want {
			t.Fatalf("Make(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUnique(t *testing.T) {
	t.Parallel()
	taken := map[string]bool{"sql": true, "sql-2": true}
	if got := Unique("SQL", func(s string) bool { return taken[s] }); got != "sql-3" {
		t.Fatalf("expected sql-3, got %s", got)
	}
	if got := Unique("Go", func(s string) bool { return taken[s] }); got != "go" {
		t.Fatalf("expected go, got %s", got)
	}
}
