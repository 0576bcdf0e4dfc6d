package tests

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func buildCalorixBinary(t *testing.T) string {
	t.Helper()
	repoRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("resolve repo root: %v", err)
	}
	binPath := filepath.Join(t.TempDir(), "calorix")
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = repoRoot
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("build calorix binary: %v\n%s", err, string(out))
	}
	return binPath
}

func runCalorix(t *testing.T, binPath, dbPath string, args ...string) (string, string, int) {
	t.Helper()
	allArgs := append([]string{"--db", dbPath}, args...)
	cmd := exec.Command(binPath, allArgs...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return stdout.String(), stderr.String(), 0
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("run calorix command: %v", err)
	}
	return stdout.String(), stderr.String(), exitErr.ExitCode()
}

func runCalorixWithStdin(t *testing.T, binPath, dbPath, stdin string, args ...string) (string, string, int) {
	t.Helper()
	allArgs := append([]string{"--db", dbPath}, args...)
	cmd := exec.Command(binPath, allArgs...)
	cmd.Stdin = strings.NewReader(stdin)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return stdout.String(), stderr.String(), 0
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("run calorix command: %v", err)
	}
	return stdout.String(), stderr.String(), exitErr.ExitCode()
}

// seedMinimalProfile commits a 60kg female profile through the wizard.
func seedMinimalProfile(t *testing.T, binPath, dbPath string) {
	t.Helper()
	answers := []string{
		"",
		"Ana", "30", "female", "60", "165", "metric",
		"light", "no",
		"maintain_weight", "", "",
		"", "",
		"", "", "",
		"", "",
		"", "", "",
		"", "",
		"yes",
	}
	stdout, stderr, exit := runCalorixWithStdin(t, binPath, dbPath,
		strings.Join(answers, "\n")+"\n", "onboard")
	if exit != 0 {
		t.Fatalf("seed profile failed: exit=%d stderr=%s stdout=%s", exit, stderr, stdout)
	}
}

func initDB(t *testing.T, binPath, dbPath string) {
	t.Helper()
	_, stderr, exit := runCalorix(t, binPath, dbPath, "init")
	if exit != 0 {
		t.Fatalf("init db failed: exit=%d stderr=%s", exit, stderr)
	}
	_, stderr, exit = runCalorix(t, binPath, dbPath, "user", "login", "ana@example.com")
	if exit != 0 {
		t.Fatalf("user login failed: exit=%d stderr=%s", exit, stderr)
	}
}
