package memory

import (
	"errors"
	"testing"

	"github.com/claimready/claimready/storage"
)

func TestMemoryStore(t *testing.T) {
	s := NewStore()

	t.Run("SetAndGet", func(t *testing.T) {
		if err := s.Set("auth_token", "tok-123"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := s.Get("auth_token")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != "tok-123" {
			t.Errorf("Get returned %q, want %q", got, "tok-123")
		}
	})

	t.Run("GetNotFound", func(t *testing.T) {
		_, err := s.Get("no-such-key")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Get for missing key returned %v, want ErrNotFound", err)
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		s.Set("token_expiry", "100")
		s.Set("token_expiry", "200")
		got, err := s.Get("token_expiry")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != "200" {
			t.Errorf("Get returned %q after overwrite, want %q", got, "200")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		s.Set("user_data", "{}")
		if err := s.Delete("user_data"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		_, err := s.Get("user_data")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Get after Delete returned %v, want ErrNotFound", err)
		}
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		if err := s.Delete("never-existed"); err != nil {
			t.Errorf("Delete of missing key returned %v, want nil", err)
		}
	})
}
