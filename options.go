package tagattr

// Option configures an Attributes iterator at construction time.
type Option func(*Attributes)

// Checks returns an Option that enables or disables duplicate-key
// detection, equivalent to calling WithChecks on the constructed iterator.
func Checks(v bool) Option {
	return func(a *Attributes) {
		a.scan.CheckDuplicates(v)
	}
}
