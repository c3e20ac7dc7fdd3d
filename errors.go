package epub

import "errors"

// Sentinel errors returned by New and Open. All of them are fatal: no
// partial Epub is ever returned alongside one of these.
var (
	// ErrContainerMissing indicates META-INF/container.xml is absent or unreadable.
	ErrContainerMissing = errors.New("epub: META-INF/container.xml not found")

	// ErrContainerMalformed indicates container.xml could not be decoded.
	ErrContainerMalformed = errors.New("epub: malformed container document")

	// ErrNoRootFile indicates container.xml declares no rootfile records.
	ErrNoRootFile = errors.New("epub: no rootfile declared in container")

	// ErrPackageMissing indicates the package document named by the first
	// rootfile is absent or unreadable.
	ErrPackageMissing = errors.New("epub: package document not found")

	// ErrPackageMalformed indicates the package document could not be decoded.
	ErrPackageMalformed = errors.New("epub: malformed package document")
)
