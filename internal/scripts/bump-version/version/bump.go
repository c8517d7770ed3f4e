package version

import (
	"fmt"
	"regexp"
)

var semver = regexp.MustCompile(`^v\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?$`)

// Bump regenerates the app-info file for data.Version then commits and
// tags the change
func Bump(data BumpData, generator VersionGenerator, vc VersionControl) error {
	if !semver.MatchString(data.Version) {
		return fmt.Errorf("version must look like v1.2.3: %q", data.Version)
	}

	versionData := VersionData{
		Name:    data.Name,
		Version: data.Version,
	}

	if err := generator.Generate(versionData); err != nil {
		return err
	}

	if err := vc.Add(data.OutFile); err != nil {
		return err
	}

	if err := vc.Commit(fmt.Sprintf("Bump version %s", data.Version)); err != nil {
		return err
	}

	return vc.Tag(data.Version)
}
