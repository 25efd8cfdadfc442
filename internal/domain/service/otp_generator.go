package service

// CodeGenerator produces uniformly distributed numeric one-time codes.
type CodeGenerator interface {
	// Generate returns an integer with exactly the given number of digits,
	// i.e. in [10^(digits-1), 10^digits - 1]. digits must be positive.
	Generate(digits int) (int, error)
}
