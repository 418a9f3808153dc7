package core

// Float is the sample type constraint shared by the precision-generic kernels.
type Float interface {
	~float32 | ~float64
}
