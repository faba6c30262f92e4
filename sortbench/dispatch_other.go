//go:build !amd64 && !arm64

package sortbench

func init() {
	// Other architectures report scalar; the sorts do not depend on it.
	setScalarMode()
}
