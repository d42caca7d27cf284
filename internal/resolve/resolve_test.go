package resolve

import "testing"

func TestBasePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/docs/25.12/getting-started/", "/docs"},
		{"/25.12/intro/", ""},
		{"/intro/", ""},
		{"", ""},
		{"/docs/a/b/25.12/x/", "/docs/a/b"},
		{"/docs/25.12/nested/26.01/page/", "/docs"},
		// "v25.12" is not slash-bounded digits.digits, so no segment.
		{"/docs/v25.12/intro/", ""},
		// A segment needs its trailing slash too.
		{"/docs/25.12", ""},
	}

	for _, tt := range tests {
		if got := BasePath(tt.path); got != tt.want {
			t.Errorf("BasePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestRewriteWithSegment(t *testing.T) {
	got := Rewrite("/docs/25.12/configuration/server/", "26.01")
	want := "/docs/26.01/configuration/server/"
	if got != want {
		t.Errorf("Rewrite = %q, want %q", got, want)
	}
}

func TestRewriteFirstSegmentOnly(t *testing.T) {
	got := Rewrite("/docs/25.12/compat/24.06/notes/", "26.01")
	want := "/docs/26.01/compat/24.06/notes/"
	if got != want {
		t.Errorf("Rewrite = %q, want %q", got, want)
	}
}

func TestRewriteWithoutSegment(t *testing.T) {
	got := Rewrite("/docs/intro/", "26.01")
	want := "/26.01/"
	if got != want {
		t.Errorf("Rewrite = %q, want %q", got, want)
	}
}

func TestRewriteRoundTrip(t *testing.T) {
	original := "/docs/25.12/configuration/server/"
	hop := Rewrite(original, "26.01")
	back := Rewrite(hop, "25.12")
	if back != original {
		t.Errorf("round trip = %q, want %q", back, original)
	}
}
