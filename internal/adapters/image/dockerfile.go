package image

import (
	"fmt"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
)

// Stage base images. The builder carries the toolchain and the full source
// tree and is discarded; the runtime starts minimal and receives exactly one
// binary.
const (
	builderBase = "docker.io/library/debian:bookworm"
	runtimeBase = "docker.io/library/debian:bookworm-slim"
)

// RenderDockerfile produces the two-stage Dockerfile. The output is a pure
// function of its arguments so identical specs render byte-identical build
// files.
func RenderDockerfile(binary string, port int, packages []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "FROM %s AS builder\n", builderBase)
	b.WriteString("WORKDIR /build\n")
	b.WriteString("COPY . .\n")
	b.WriteString("RUN kiln build --install /build/out\n")
	b.WriteString("\n")

	fmt.Fprintf(&b, "FROM %s\n", runtimeBase)
	if len(packages) > 0 {
		// Declared runtime OS packages only; nothing else enters this stage.
		fmt.Fprintf(&b, "RUN apt-get update && apt-get install -y --no-install-recommends %s \\\n", strings.Join(packages, " "))
		b.WriteString("    && rm -rf /var/lib/apt/lists/*\n")
	}
	fmt.Fprintf(&b, "WORKDIR %s\n", domain.RuntimeWorkdir)
	fmt.Fprintf(&b, "COPY --from=builder /build/out/%s/%s %s/%s\n", domain.BinDir, binary, domain.RuntimeWorkdir, binary)
	fmt.Fprintf(&b, "EXPOSE %d\n", port)
	fmt.Fprintf(&b, "ENTRYPOINT [%q]\n", domain.RuntimeWorkdir+"/"+binary)

	return b.String()
}
