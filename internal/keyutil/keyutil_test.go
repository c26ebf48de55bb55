package keyutil

import "testing"

func TestBasename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://host/img/logo.png", "logo.png"},
		{"https://host/img/logo.png?v=2#frag", "logo.png"},
		{"http://host/a/b/c.jpg", "c.jpg"},
		{"assets/icons/star.png", "star.png"},
		{"/var/tmp/pic.webp", "pic.webp"},
		{"plain.gif", "plain.gif"},
	}
	for _, tc := range cases {
		got, err := Basename(tc.in)
		if err != nil {
			t.Fatalf("Basename(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Basename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// Repeated calls must yield the same key.
func TestBasenameDeterministic(t *testing.T) {
	const id = "https://cdn.example.com/x/y/z.png?sig=abc"
	first, err := Basename(id)
	if err != nil {
		t.Fatalf("Basename: %v", err)
	}
	for i := 0; i < 10; i++ {
		got, err := Basename(id)
		if err != nil || got != first {
			t.Fatalf("call %d: got (%q, %v), want (%q, nil)", i, got, err, first)
		}
	}
}

// Distinct identifiers sharing a basename resolve to the same key. This is
// load-bearing for the file backend's overwrite semantics; see its tests.
func TestBasenameCollision(t *testing.T) {
	a, err := Basename("https://host/a/logo.png")
	if err != nil {
		t.Fatalf("Basename a: %v", err)
	}
	b, err := Basename("https://host/b/logo.png")
	if err != nil {
		t.Fatalf("Basename b: %v", err)
	}
	if a != b {
		t.Fatalf("expected colliding keys, got %q vs %q", a, b)
	}
}

func TestBasenameDegenerate(t *testing.T) {
	for _, id := range []string{"", "https://host/", "https://host", "/", "."} {
		if got, err := Basename(id); err == nil {
			t.Fatalf("Basename(%q) = %q, want error", id, got)
		}
	}
}
