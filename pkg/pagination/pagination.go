package pagination

const (
	// DefaultLimit is the page size used when a limit is not provided.
	DefaultLimit = 100
	// MaxLimit caps how many rows any listing query can request.
	MaxLimit = 500
)

// Params holds offset pagination inputs from controllers or services.
type Params struct {
	Offset int
	Limit  int
}

// Normalize clamps the params to sane bounds.
func (p Params) Normalize() Params {
	return Params{
		Offset: NormalizeOffset(p.Offset),
		Limit:  NormalizeLimit(p.Limit),
	}
}

// NormalizeLimit enforces the configured default and maximum limits. Zero is
// a valid request for an empty page and passes through.
func NormalizeLimit(limit int) int {
	if limit < 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// NormalizeOffset treats negative offsets as the start of the result set.
func NormalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
