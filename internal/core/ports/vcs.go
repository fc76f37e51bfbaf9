package ports

// RevisionResolver derives the package version from version-control state.
//
//go:generate go run go.uber.org/mock/mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type RevisionResolver interface {
	// Version returns the short revision identifier for a clean tree, a
	// dirty-marked variant for a modified tree, and domain.VersionUnknown
	// when the state cannot be resolved.
	Version(root string) string
}
