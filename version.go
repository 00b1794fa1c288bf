package databricks

import "github.com/Masterminds/semver/v3"

// Version is the current client version.
//
// This version follows semantic versioning (https://semver.org/).
// The version is incremented according to the following rules:
//   - MAJOR: Breaking changes to the public API
//   - MINOR: New features, backwards compatible
//   - PATCH: Bug fixes, backwards compatible
const Version = "0.1.0"

// APIVersion is the Databricks REST API version this client targets.
const APIVersion = "2.0"

// APIVersionRange is the range of API versions this client is expected
// to work against, as a semver constraint.
const APIVersionRange = ">= 2.0, < 3.0"

// IsCompatible reports whether a workspace-reported API version falls
// within [APIVersionRange]. Empty or unparseable versions are reported
// as not compatible.
func IsCompatible(version string) bool {
	constraint, err := semver.NewConstraint(APIVersionRange)
	if err != nil {
		return false
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return constraint.Check(v)
}
