package middleware

import "testing"

func TestValidReqID(t *testing.T) {
	cases := []struct {
		id    string
		valid bool
	}{
		{"9b2d8f34-1c2a-4f6b-8a3d-0c1e2f3a4b5c", true},
		{"9B2D8F34-1C2A-4F6B-8A3D-0C1E2F3A4B5C", true},
		{"0123456789abcdef0123456789abcdef", true},
		{" 9b2d8f34-1c2a-4f6b-8a3d-0c1e2f3a4b5c ", true},
		{"", false},
		{"not-a-request-id", false},
		{"0123456789abcdef", false},
	}

	for _, tc := range cases {
		if got := validReqID(tc.id); got != tc.valid {
			t.Fatalf("validReqID(%q) = %v, expected %v", tc.id, got, tc.valid)
		}
	}
}

func TestBuildKey(t *testing.T) {
	key := buildKey("POST", "/v1/cheques", "abc")
	if key != "idemp:post:/v1/cheques:abc" {
		t.Fatalf("unexpected key %q", key)
	}
}

func TestBodyHash(t *testing.T) {
	h1 := bodyHash([]byte("corpo"))
	h2 := bodyHash([]byte("corpo"))
	h3 := bodyHash([]byte("outro"))

	if h1 != h2 {
		t.Fatalf("expected deterministic hash")
	}
	if h1 == h3 {
		t.Fatalf("expected distinct hashes for distinct bodies")
	}
	if len(h1) != 64 {
		t.Fatalf("expected a sha256 hex digest, got %d characters", len(h1))
	}
}
