package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/cuemby/weaviate-client-go/pkg/errors"
	"github.com/cuemby/weaviate-client-go/pkg/log"
)

// ServerVersion is the parsed semver the server reported at connect time.
// A zero ServerVersion (unparseable or missing version) fails every
// IsAtLeast check, so gated features degrade to their oldest form.
type ServerVersion struct {
	raw    string
	parsed *semver.Version
}

// Parse parses the version string from /v1/meta. Pre-release and build
// suffixes are tolerated; an unparseable version is kept raw and logged.
func Parse(raw string) ServerVersion {
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	v, err := semver.NewVersion(trimmed)
	if err != nil {
		log.Logger.Warn().Str("version", raw).Msg("could not parse server version, version-gated features disabled")
		return ServerVersion{raw: raw}
	}
	return ServerVersion{raw: raw, parsed: v}
}

// String returns the raw version string as reported by the server.
func (v ServerVersion) String() string {
	if v.raw == "" {
		return "unknown"
	}
	return v.raw
}

// IsAtLeast reports whether the server is at least major.minor.patch.
// Pre-releases of the requested version count as reaching it.
func (v ServerVersion) IsAtLeast(major, minor, patch uint64) bool {
	if v.parsed == nil {
		return false
	}
	if v.parsed.Major() != major {
		return v.parsed.Major() > major
	}
	if v.parsed.Minor() != minor {
		return v.parsed.Minor() > minor
	}
	return v.parsed.Patch() >= patch
}

// Require returns an UnsupportedFeatureError when the server is older than
// major.minor.patch. Callers check it before composing any request, so the
// gate fires before I/O.
func (v ServerVersion) Require(feature string, major, minor, patch uint64) error {
	if v.IsAtLeast(major, minor, patch) {
		return nil
	}
	return &errors.UnsupportedFeatureError{
		Feature:  feature,
		Actual:   v.String(),
		Required: fmt.Sprintf("%d.%d.%d", major, minor, patch),
	}
}

// Feature gates. Hard gates raise; soft gates select the transport.

// SupportsNamedVectors gates named-vector ingestion and queries (hard).
func (v ServerVersion) SupportsNamedVectors() error {
	return v.Require("named vectors", 1, 24, 0)
}

// SupportsMultiTargetVectors gates multi-target vector joins (hard).
func (v ServerVersion) SupportsMultiTargetVectors() error {
	return v.Require("multi-target vector search", 1, 26, 0)
}

// SupportsGRPCAggregate reports whether aggregate runs over gRPC instead of
// the legacy GraphQL path (soft).
func (v ServerVersion) SupportsGRPCAggregate() bool {
	return v.IsAtLeast(1, 29, 0)
}

// SupportsGRPCTenantsGet reports whether tenants are fetched over gRPC (soft).
func (v ServerVersion) SupportsGRPCTenantsGet() bool {
	return v.IsAtLeast(1, 25, 0)
}

// SupportsRESTReferenceFilters reports whether the legacy REST filter encoder
// may carry reference traversals (soft; older servers reject them).
func (v ServerVersion) SupportsRESTReferenceFilters() bool {
	return v.IsAtLeast(1, 23, 0)
}
