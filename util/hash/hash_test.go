package hash

import "testing"

func TestHashAndCheck(t *testing.T) {
	h, err := HashPassword("p@ssw0rd")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h == "" || h == "p@ssw0rd" {
		t.Fatalf("expected opaque hash, got %q", h)
	}
	if !Check(h, "p@ssw0rd") {
		t.Fatalf("expected check ok")
	}
	if Check(h, "wrong") {
		t.Fatalf("expected check fail")
	}
}

func TestCheckMalformedHash(t *testing.T) {
	if Check("not-a-hash", "anything") {
		t.Fatalf("malformed hash must fail closed")
	}
	if Check("", "anything") {
		t.Fatalf("empty hash must fail closed")
	}
}
