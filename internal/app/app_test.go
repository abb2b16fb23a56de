package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/baspana/backend/internal/config"
	testhelpers "github.com/baspana/backend/internal/test"
	"github.com/baspana/backend/internal/worker"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := newHTTPServer(serverParams{
		Config: &config.Config{RunAddress: ":9090"},
		Router: gin.New(),
	})
	if srv.Addr != ":9090" {
		t.Fatalf("unexpected addr: %s", srv.Addr)
	}
	if srv.Handler == nil {
		t.Fatal("handler not attached")
	}
}

func TestNewExpirationSweeper(t *testing.T) {
	facade, _ := newTestFacade()
	sweeper := newExpirationSweeper(sweeperParams{
		Facade: facade,
		Config: &config.Config{ExpirationInterval: time.Minute},
		Logger: discardLogger(),
	})
	if sweeper == nil {
		t.Fatal("sweeper not constructed")
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	facade, _ := newTestFacade()
	sweeper := worker.NewExpirationSweeper(facade, time.Hour, discardLogger())

	lifecycle := &testhelpers.LifecycleRecorder{}
	registerLifecycle(lifecycleParams{
		Lifecycle:  lifecycle,
		Shutdowner: &testhelpers.ShutdownerStub{},
		Logger:     discardLogger(),
		Server:     &http.Server{Addr: "127.0.0.1:0"},
		Sweeper:    sweeper,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	if len(lifecycle.Hooks) != 1 {
		t.Fatalf("expected one lifecycle hook, got %d", len(lifecycle.Hooks))
	}

	hook := lifecycle.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("on start: %v", err)
	}
	if err := hook.OnStop(context.Background()); err != nil {
		t.Fatalf("on stop: %v", err)
	}
}

func TestRegisterLifecycleShutdownOnListenFailure(t *testing.T) {
	facade, _ := newTestFacade()
	sweeper := worker.NewExpirationSweeper(facade, time.Hour, discardLogger())

	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	lifecycle := &testhelpers.LifecycleRecorder{}
	registerLifecycle(lifecycleParams{
		Lifecycle:  lifecycle,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     &http.Server{Addr: "invalid-address"},
		Sweeper:    sweeper,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	hook := lifecycle.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("on start: %v", err)
	}
	defer func() { _ = hook.OnStop(context.Background()) }()

	select {
	case <-shutdowner.Called:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdowner not invoked after listen failure")
	}
}
