package state

import (
	"context"
	"log"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/encoding/charmap"

	"sdfc/config"
)

func TestContextWithEnv(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
	if env.Cfg != nil || env.Rpt != nil || env.Log != nil {
		t.Error("Fresh environment must be empty")
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestEnvFromContext_SameInstance(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)
	env.Overwrite = true
	env.CodePage = charmap.CodePage866

	child, cancel := context.WithCancel(ctx)
	defer cancel()
	got := EnvFromContext(child)
	if got != env || !got.Overwrite || got.CodePage != charmap.CodePage866 {
		t.Error("Derived context must carry the same environment")
	}
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := &LocalEnv{start: time.Now()}
	time.Sleep(10 * time.Millisecond)
	if uptime := env.Uptime(); uptime < 10*time.Millisecond || uptime > time.Second {
		t.Errorf("Uptime() = %v", uptime)
	}
}

func TestLocalEnv_RedirectStdLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	env := &LocalEnv{Log: zap.New(core)}

	env.RedirectStdLog()
	if env.restoreStdLog == nil {
		t.Fatal("Expected restoreStdLog to be set")
	}
	log.Print("from standard logger")
	env.RestoreStdLog()

	if logs.FilterMessage("from standard logger").Len() != 1 {
		t.Errorf("standard log output was not redirected: %v", logs.All())
	}
	if env.restoreStdLog != nil {
		t.Error("restoreStdLog must be cleared after restore")
	}
}

func TestLocalEnv_NilLogger(t *testing.T) {
	env := &LocalEnv{}
	env.RedirectStdLog()
	if env.restoreStdLog != nil {
		t.Error("Expected restoreStdLog to remain nil")
	}
	env.RestoreStdLog()
}

func TestLocalEnv_RedirectAndRestore(t *testing.T) {
	env := &LocalEnv{
		Cfg: &config.Config{Version: 1},
		Log: zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))),
	}
	for i := range 3 {
		env.RedirectStdLog()
		if env.restoreStdLog == nil {
			t.Errorf("Iteration %d: restoreStdLog not set", i)
		}
		env.RestoreStdLog()
	}
}

func TestLocalEnv_ParseOptions(t *testing.T) {
	env := &LocalEnv{}
	if n := len(env.ParseOptions(zaptest.NewLogger(t))); n != 1 {
		t.Errorf("ParseOptions() without configuration returned %d options, want 1", n)
	}

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Parser.Lenient = true
	env.Cfg = cfg
	if n := len(env.ParseOptions(zaptest.NewLogger(t))); n != 2 {
		t.Errorf("ParseOptions() returned %d options, want 2", n)
	}
}
