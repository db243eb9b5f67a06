package youtube_test

import (
	"errors"
	"testing"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/youtube"
)

func TestResolve(t *testing.T) {
	t.Run("Short Link", func(t *testing.T) {
		embed, err := youtube.Resolve("https://youtu.be/dQw4w9WgXcQ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if embed.ID != "dQw4w9WgXcQ" {
			t.Errorf("expected id dQw4w9WgXcQ, got %s", embed.ID)
		}
		if embed.URL() != "https://www.youtube.com/embed/dQw4w9WgXcQ" {
			t.Errorf("unexpected embed url: %s", embed.URL())
		}
	})

	t.Run("Short Link With Extra Segments", func(t *testing.T) {
		embed, err := youtube.Resolve("https://youtu.be/abc123/extra")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if embed.ID != "abc123" {
			t.Errorf("expected id abc123, got %s", embed.ID)
		}
	})

	t.Run("Watch Page", func(t *testing.T) {
		embed, err := youtube.Resolve("https://www.youtube.com/watch?v=abc123&t=42s")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if embed.ID != "abc123" {
			t.Errorf("expected id abc123, got %s", embed.ID)
		}
	})

	t.Run("Invalid Inputs", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"   ",
			"not a url",
			"https://youtu.be/",
			"https://www.youtube.com/watch",
			"https://www.youtube.com/watch?v=",
		} {
			if _, err := youtube.Resolve(raw); !errors.Is(err, youtube.ErrInvalidURL) {
				t.Errorf("Resolve(%q): expected ErrInvalidURL, got %v", raw, err)
			}
		}
	})
}

func TestCachedResolver(t *testing.T) {
	r, err := youtube.NewCachedResolver(8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Hit Returns Same Result", func(t *testing.T) {
		first, err1 := r.Resolve("https://youtu.be/abc123")
		second, err2 := r.Resolve("https://youtu.be/abc123")
		if err1 != nil || err2 != nil {
			t.Fatalf("unexpected errors: %v, %v", err1, err2)
		}
		if first != second {
			t.Errorf("cache returned a different embed: %v vs %v", first, second)
		}
	})

	t.Run("Failures Are Cached", func(t *testing.T) {
		if _, err := r.Resolve("https://youtu.be/"); !errors.Is(err, youtube.ErrInvalidURL) {
			t.Fatalf("expected ErrInvalidURL, got %v", err)
		}
		if _, err := r.Resolve("https://youtu.be/"); !errors.Is(err, youtube.ErrInvalidURL) {
			t.Errorf("expected cached ErrInvalidURL, got %v", err)
		}
	})
}
