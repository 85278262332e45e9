package loader

import (
	"testing"

	"github.com/griffnb/core-annotation/internal/domain"
)

func pathlibModule() *domain.Module {
	return &domain.Module{
		Path: "pathlib",
		Attrs: map[string]*domain.TypeRef{
			"Path": domain.NewClass("pathlib", "Path"),
		},
	}
}

func TestService_Load(t *testing.T) {
	t.Run("loads from a registered provider", func(t *testing.T) {
		svc := NewService(WithProvider(NewStaticProvider(pathlibModule())))

		mod, err := svc.Load("pathlib")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if mod.Path != "pathlib" {
			t.Errorf("expected module path pathlib, got %q", mod.Path)
		}
	})

	t.Run("unknown module fails", func(t *testing.T) {
		svc := NewService(WithProvider(NewStaticProvider(pathlibModule())))

		if _, err := svc.Load("np"); err == nil {
			t.Error("expected error for unknown module")
		}
	})

	t.Run("no providers fails", func(t *testing.T) {
		svc := NewService()

		if _, err := svc.Load("pathlib"); err == nil {
			t.Error("expected error with no providers")
		}
	})

	t.Run("providers consulted in registration order", func(t *testing.T) {
		first := NewStaticProvider(&domain.Module{
			Path: "pkg",
			Attrs: map[string]*domain.TypeRef{
				"Name": domain.NewClass("pkg", "Name"),
			},
		})
		second := NewStaticProvider(&domain.Module{
			Path: "pkg",
			Attrs: map[string]*domain.TypeRef{
				"Other": domain.NewClass("pkg", "Other"),
			},
		})

		svc := NewService(WithProvider(first), WithProvider(second))

		mod, err := svc.Load("pkg")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, ok := mod.Attr("Name"); !ok {
			t.Error("expected the first provider to win")
		}
	})
}

func TestService_LoadAttribute(t *testing.T) {
	t.Run("fetches an attribute from a loaded module", func(t *testing.T) {
		svc := NewService(WithProvider(NewStaticProvider(pathlibModule())))

		ref, err := svc.LoadAttribute("pathlib", "Path")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if ref.FullName() != "pathlib.Path" {
			t.Errorf("expected pathlib.Path, got %q", ref.FullName())
		}
	})

	t.Run("missing attribute fails", func(t *testing.T) {
		svc := NewService(WithProvider(NewStaticProvider(pathlibModule())))

		if _, err := svc.LoadAttribute("pathlib", "PurePath"); err == nil {
			t.Error("expected error for missing attribute")
		}
	})

	t.Run("empty module path fails", func(t *testing.T) {
		svc := NewService()

		if _, err := svc.LoadAttribute("", "Path"); err == nil {
			t.Error("expected error for empty module path")
		}
	})
}
