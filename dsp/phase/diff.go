package phase

// DiffForward replaces x[i] with x[i]-x[i-1] in place and sets x[0] to 0.
//
// The scan runs from the end of the slice towards the start so every
// subtraction reads a predecessor that has not been overwritten yet.
func DiffForward(x []float64) error {
	if len(x) == 0 {
		return ErrEmptyInput
	}

	for i := len(x) - 1; i >= 1; i-- {
		x[i] -= x[i-1]
	}
	x[0] = 0

	return nil
}
