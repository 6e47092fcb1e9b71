package main

import (
	"testing"

	"github.com/frudas24/displaylayout/internal/config"
)

// TestResolveViewport_PrefersConfigured verifies an explicit viewport skips monitor lookup.
func TestResolveViewport_PrefersConfigured(t *testing.T) {
	vp := resolveViewport(config.Config{ViewportWidth: 800, ViewportHeight: 600, FallbackWidth: 1, FallbackHeight: 1})
	if vp.W != 800 || vp.H != 600 {
		t.Fatalf("unexpected viewport: %+v", vp)
	}
}

// TestResolveViewport_NeverInvalid verifies the result is usable whatever the host offers.
func TestResolveViewport_NeverInvalid(t *testing.T) {
	vp := resolveViewport(config.Config{MonitorIndex: 99, FallbackWidth: 1280, FallbackHeight: 720})
	if !vp.Valid() {
		t.Fatalf("expected valid viewport, got %+v", vp)
	}
}
