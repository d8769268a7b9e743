package category_test

import (
	"strings"
	"testing"

	"dirtidy/internal/category"
	"dirtidy/internal/config"
)

func TestResolveEveryConfiguredExtension(t *testing.T) {
	cats := config.DefaultCategories()
	r := category.New(cats)
	for _, cat := range cats {
		for _, ext := range cat.Extensions {
			if got := r.Resolve(ext); got != cat.Name {
				t.Errorf("Resolve(%q) = %q, want %q", ext, got, cat.Name)
			}
			if got := r.Resolve(strings.ToUpper(ext)); got != cat.Name {
				t.Errorf("Resolve(%q) = %q, want %q", strings.ToUpper(ext), got, cat.Name)
			}
		}
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	r := category.New(config.DefaultCategories())
	if r.Resolve(".JPG") != r.Resolve(".jpg") {
		t.Fatal("expected .JPG and .jpg to resolve identically")
	}
	if got := r.Resolve(".Jpeg"); got != "Images" {
		t.Fatalf("expected Images, got %q", got)
	}
}

func TestResolveFallback(t *testing.T) {
	r := category.New(config.DefaultCategories())
	for _, ext := range []string{"", ".xyz", ".", "txt", ".tar.gz"} {
		if got := r.Resolve(ext); got != category.Fallback {
			t.Errorf("Resolve(%q) = %q, want %q", ext, got, category.Fallback)
		}
	}
}

func TestResolveFirstCategoryWins(t *testing.T) {
	r := category.New([]config.Category{
		{Name: "First", Extensions: []string{".dup"}},
		{Name: "Second", Extensions: []string{".dup", ".only"}},
	})
	if got := r.Resolve(".dup"); got != "First" {
		t.Fatalf("expected First, got %q", got)
	}
	if got := r.Resolve(".ONLY"); got != "Second" {
		t.Fatalf("expected Second, got %q", got)
	}
}

func TestResolveEmptyConfiguration(t *testing.T) {
	r := category.New(nil)
	if got := r.Resolve(".jpg"); got != category.Fallback {
		t.Fatalf("expected fallback, got %q", got)
	}
	if len(r.Names()) != 0 {
		t.Fatalf("expected no names, got %v", r.Names())
	}
}

func TestNamesPreservesOrderAndIsolation(t *testing.T) {
	r := category.New(config.DefaultCategories())
	names := r.Names()
	if strings.Join(names, ",") != "Images,Documents,Audio,Videos,Archives,Scripts" {
		t.Fatalf("unexpected names %v", names)
	}
	names[0] = "mutated"
	if r.Names()[0] != "Images" {
		t.Fatal("expected Names to return a copy")
	}
}
