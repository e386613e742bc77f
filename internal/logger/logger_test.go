package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogFilePathDefaultsToWorkdirLogs(t *testing.T) {
	tmp := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	got, err := logFilePath(Options{})
	if err != nil {
		t.Fatalf("logFilePath: %v", err)
	}
	realTmp, _ := filepath.EvalSymlinks(tmp)
	realDir, _ := filepath.EvalSymlinks(filepath.Dir(got))
	if realDir != filepath.Join(realTmp, defaultDirName) {
		t.Fatalf("unexpected dir: %s", realDir)
	}
	if filepath.Base(got) != defaultFilename {
		t.Fatalf("unexpected filename: %s", filepath.Base(got))
	}
}

func TestReleaseModeWritesJSONFile(t *testing.T) {
	tmp := t.TempDir()
	l := New("release", Options{Dir: tmp, Filename: "zephyra.log"})
	l.Info("trash_cleanup_done")
	_ = l.Sync()

	content, err := os.ReadFile(filepath.Join(tmp, "zephyra.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(content), `"message":"trash_cleanup_done"`) {
		t.Fatalf("expected json message, got %s", content)
	}
}

func TestDebugModeSkipsFile(t *testing.T) {
	tmp := t.TempDir()
	l := New("debug", Options{Dir: tmp, Filename: "debug.log"})
	l.Info("debug")
	_ = l.Sync()
	if _, err := os.Stat(filepath.Join(tmp, "debug.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode must not create a log file")
	}
}

func TestZFallsBackBeforeInit(t *testing.T) {
	if Z() == nil {
		t.Fatalf("expected fallback logger")
	}
}
