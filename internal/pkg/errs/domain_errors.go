package errs

// Cross-layer marks. Concrete sentinels live next to the code that returns them
// and are marked with one of these so handlers can branch on the category.
var (
	ErrDomainValidation = New("domain validation error")
	ErrNotFound         = New("not found")
	ErrUpstream         = New("upstream service unavailable")
)
