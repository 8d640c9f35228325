package telemetry

import (
	"context"
	"testing"
)

func TestSetupDisabled(t *testing.T) {
	p, err := Setup(context.Background(), "", false, "dev")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if p.Tracer() == nil {
		t.Fatal("Tracer() = nil, want no-op tracer")
	}

	_, span := p.Tracer().Start(context.Background(), "probe")
	span.End()

	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestNilProvider(t *testing.T) {
	var p *Provider
	if p.Tracer() == nil {
		t.Fatal("nil provider Tracer() = nil, want no-op tracer")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("nil provider Shutdown() error = %v", err)
	}
}
