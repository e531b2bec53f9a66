//go:build integration

package testutil

import "context"

// NopLogger: ports.Logger, который ничего не пишет.
type NopLogger struct{}

func (NopLogger) Debugf(context.Context, string, ...any) {}
func (NopLogger) Infof(context.Context, string, ...any)  {}
func (NopLogger) Warnf(context.Context, string, ...any)  {}
func (NopLogger) Errorf(context.Context, string, ...any) {}
