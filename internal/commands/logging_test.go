package commands

import (
	"context"
	"testing"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

type stubProvider struct {
	requested []string
	logger    *fieldsLogger
}

func (p *stubProvider) GetLogger(name string) interfaces.Logger {
	p.requested = append(p.requested, name)
	return p.logger
}

type fieldsLogger struct {
	fields map[string]any
}

func (l *fieldsLogger) Trace(string, ...any) {}
func (l *fieldsLogger) Debug(string, ...any) {}
func (l *fieldsLogger) Info(string, ...any)  {}
func (l *fieldsLogger) Warn(string, ...any)  {}
func (l *fieldsLogger) Error(string, ...any) {}
func (l *fieldsLogger) Fatal(string, ...any) {}

func (l *fieldsLogger) WithFields(fields map[string]any) interfaces.Logger {
	if l.fields == nil {
		l.fields = map[string]any{}
	}
	for key, value := range fields {
		l.fields[key] = value
	}
	return l
}

func (l *fieldsLogger) WithContext(context.Context) interfaces.Logger { return l }

func TestCommandLoggerScopesModule(t *testing.T) {
	provider := &stubProvider{logger: &fieldsLogger{}}

	CommandLogger(provider, "posts.validate")

	if len(provider.requested) != 1 || provider.requested[0] != "blog.commands.posts.validate" {
		t.Fatalf("expected scoped logger name, got %v", provider.requested)
	}
	if got := provider.logger.fields["component"]; got != "command" {
		t.Fatalf("expected component field, got %v", got)
	}
	if got := provider.logger.fields["command_module"]; got != "posts.validate" {
		t.Fatalf("expected command module field, got %v", got)
	}
}

func TestCommandLoggerDefaultsModuleName(t *testing.T) {
	provider := &stubProvider{logger: &fieldsLogger{}}

	CommandLogger(provider, "  ")

	if len(provider.requested) != 1 || provider.requested[0] != "blog.commands.core" {
		t.Fatalf("expected core fallback, got %v", provider.requested)
	}
	if got := provider.logger.fields["command_module"]; got != "core" {
		t.Fatalf("expected core module field, got %v", got)
	}
}
