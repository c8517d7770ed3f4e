package version

import (
	"fmt"
	"os/exec"
	"strings"
)

// Git implements the VersionControl interface by shelling out to git
type Git struct {
	binary string
}

// NewGit returns a new instance of Git
func NewGit() *Git {
	return &Git{binary: "git"}
}

func (g *Git) run(args ...string) error {
	out, err := exec.Command(g.binary, args...).CombinedOutput()

	if err != nil {
		return fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
	}

	return nil
}

// Add stages filePath
func (g *Git) Add(filePath string) error {
	return g.run("add", filePath)
}

// Commit commits staged changes with message
func (g *Git) Commit(message string) error {
	return g.run("commit", "-m", message)
}

// Tag creates an annotated tag for version
func (g *Git) Tag(version string) error {
	return g.run("tag", "-m", version, version)
}
