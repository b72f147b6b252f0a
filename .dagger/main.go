// CI functions for the localized strings cleaner.
//
// Each function returns a container running one check of the repository:
// lint, unit tests, integration tests or end-to-end tests.

package main

import (
	"runtime"

	"localized-cleaner/dagger/internal/dagger"
)

type LocalizedCleaner struct{}

// Lint runs golangci-lint on the main repo (./...) only.
func (ci *LocalizedCleaner) Lint(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().
		From("golangci/golangci-lint:v2.4.0").
		WithMountedCache("/root/.cache/golangci-lint", dag.CacheVolume("golangci-lint"))

	c = ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir)

	return c.WithExec([]string{"golangci-lint", "run", "--timeout", "10m", "./..."})
}

// UnitTests returns a container that runs the unit tests.
func (ci *LocalizedCleaner) UnitTests(sourceDir *dagger.Directory) *dagger.Container {
	return ci.goTests(sourceDir, "unit")
}

// IntegrationTests returns a container that runs the integration tests.
// They work on temporary directories of the real file system.
func (ci *LocalizedCleaner) IntegrationTests(sourceDir *dagger.Directory) *dagger.Container {
	return ci.goTests(sourceDir, "integration")
}

// EndToEndTests returns a container that runs the lc command against
// temporary projects.
func (ci *LocalizedCleaner) EndToEndTests(sourceDir *dagger.Directory) *dagger.Container {
	return ci.goTests(sourceDir, "e2e")
}

// Check runs every test suite, stopping at the first failing one.
func (ci *LocalizedCleaner) Check(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().From("golang:" + goVersion() + "-alpine")
	c = ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir)
	for _, tag := range []string{"unit", "integration", "e2e"} {
		c = c.WithExec([]string{"go", "test", "-tags=" + tag, "./..."})
	}
	return c
}

func (ci *LocalizedCleaner) goTests(sourceDir *dagger.Directory, tag string) *dagger.Container {
	c := dag.Container().From("golang:" + goVersion() + "-alpine")
	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"go", "test", "-tags=" + tag, "./..."})
}

func (ci *LocalizedCleaner) withGoCodeAndCacheAsWorkDirectory(
	c *dagger.Container,
	sourceDir *dagger.Directory,
) *dagger.Container {
	containerPath := "/go/src/github.com/lerenn/localized-cleaner"
	return c.
		// Add Go caches
		WithMountedCache("/root/.cache/go-build", dag.CacheVolume("gobuild")).
		WithMountedCache("/go/pkg/mod", dag.CacheVolume("gocache")).

		// Add source code
		WithMountedDirectory(containerPath, sourceDir).

		// Add workdir
		WithWorkdir(containerPath)
}

func goVersion() string {
	return runtime.Version()[2:]
}
