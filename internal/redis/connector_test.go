package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MrSnakeDoc/devdocs/internal/logger"
)

func validOptions() ConnectOptions {
	return ConnectOptions{
		Addr:           "127.0.0.1:1",
		DialTimeout:    50 * time.Millisecond,
		ReadTimeout:    50 * time.Millisecond,
		WriteTimeout:   50 * time.Millisecond,
		PoolSize:       1,
		ConnectTimeout: time.Second,
		RetryInterval:  10 * time.Millisecond,
		MaxWait:        20 * time.Millisecond,
		PingTimeout:    50 * time.Millisecond,
		WarnThreshold:  1,
	}
}

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *ConnectOptions)
	}{
		{name: "empty addr", mutate: func(o *ConnectOptions) { o.Addr = "" }},
		{name: "zero connect timeout", mutate: func(o *ConnectOptions) { o.ConnectTimeout = 0 }},
		{name: "zero retry interval", mutate: func(o *ConnectOptions) { o.RetryInterval = 0 }},
		{name: "zero max wait", mutate: func(o *ConnectOptions) { o.MaxWait = 0 }},
		{name: "zero ping timeout", mutate: func(o *ConnectOptions) { o.PingTimeout = 0 }},
		{name: "negative warn threshold", mutate: func(o *ConnectOptions) { o.WarnThreshold = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(&opts)
			if err := opts.validate(); err == nil {
				t.Error("validate() should fail")
			}
		})
	}

	if err := validOptions().validate(); err != nil {
		t.Errorf("validate() unexpected error: %v", err)
	}
}

func TestNewStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	client, err := New(ctx, validOptions(), logger.Nop())
	if err == nil {
		t.Fatal("New() should fail against a closed port")
	}
	if client != nil {
		t.Error("New() should not return a client on failure")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("New() error = %v, want context.Canceled", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("New() took %v after cancel", elapsed)
	}
}

func TestNewTimesOut(t *testing.T) {
	opts := validOptions()
	opts.ConnectTimeout = 100 * time.Millisecond

	_, err := New(context.Background(), opts, logger.Nop())
	if err == nil {
		t.Fatal("New() should fail against a closed port")
	}
	if errors.Is(err, context.Canceled) {
		t.Errorf("timeout should not be reported as cancellation: %v", err)
	}
}
