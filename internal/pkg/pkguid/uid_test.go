package pkguid

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerateVersion7(t *testing.T) {
	var gen StringID = NewUUID()

	first, err := uuid.Parse(gen.Generate())
	if err != nil {
		t.Fatalf("expected valid uuid: %v", err)
	}
	if first.Version() != 7 {
		t.Fatalf("expected version 7, got %d", first.Version())
	}

	second, err := uuid.Parse(gen.Generate())
	if err != nil {
		t.Fatalf("expected valid uuid: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %s twice", first)
	}
}
