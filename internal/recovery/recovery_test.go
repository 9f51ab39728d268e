package recovery

import (
	"bytes"
	"os"
	"os/exec"
	"testing"
)

func TestHandlePanic_NoPanic(t *testing.T) {
	func() {
		defer HandlePanic()
	}()
}

func TestHandlePanicFunc_NoPanic(t *testing.T) {
	cleanupCalled := false

	func() {
		defer HandlePanicFunc(func() {
			cleanupCalled = true
		})
	}()

	if cleanupCalled {
		t.Error("cleanup was called without a panic")
	}
}

func TestHandlePanicFunc_NilCleanup(t *testing.T) {
	func() {
		defer HandlePanicFunc(nil)
	}()
}

// TestHandlePanic_ExitsOnPanic uses a subprocess since HandlePanic calls
// os.Exit.
func TestHandlePanic_ExitsOnPanic(t *testing.T) {
	if os.Getenv("TEST_PANIC_EXIT") == "1" {
		defer HandlePanic()
		panic("test panic")
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestHandlePanic_ExitsOnPanic")
	cmd.Env = append(os.Environ(), "TEST_PANIC_EXIT=1")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()

	if exitErr, ok := err.(*exec.ExitError); ok {
		if exitErr.ExitCode() != 1 {
			t.Errorf("exit code = %d, want 1", exitErr.ExitCode())
		}
	} else if err == nil {
		t.Error("expected process to exit with error, but it succeeded")
	}

	output := stderr.String()
	if !bytes.Contains([]byte(output), []byte("panic: test panic")) {
		t.Errorf("stderr should contain 'panic: test panic', got: %s", output)
	}
	if !bytes.Contains([]byte(output), []byte("stack=")) {
		t.Errorf("stderr should contain the logged stack field, got: %s", output)
	}
}

// TestHandlePanicFunc_ExitsOnPanic uses a subprocess to test panic behavior
// with cleanup.
func TestHandlePanicFunc_ExitsOnPanic(t *testing.T) {
	if os.Getenv("TEST_PANIC_FUNC_EXIT") == "1" {
		defer HandlePanicFunc(func() {
			_, _ = os.Stdout.WriteString("CLEANUP_CALLED\n")
		})
		panic("test panic func")
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestHandlePanicFunc_ExitsOnPanic")
	cmd.Env = append(os.Environ(), "TEST_PANIC_FUNC_EXIT=1")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if exitErr, ok := err.(*exec.ExitError); ok {
		if exitErr.ExitCode() != 1 {
			t.Errorf("exit code = %d, want 1", exitErr.ExitCode())
		}
	} else if err == nil {
		t.Error("expected process to exit with error, but it succeeded")
	}

	if !bytes.Contains(stdout.Bytes(), []byte("CLEANUP_CALLED")) {
		t.Errorf("stdout should contain 'CLEANUP_CALLED', got: %s", stdout.String())
	}

	if !bytes.Contains(stderr.Bytes(), []byte("panic: test panic func")) {
		t.Errorf("stderr should contain 'panic: test panic func', got: %s", stderr.String())
	}
}
