package models

// Patch is a typed partial update for records of type T.
type Patch[T any] interface {
	Apply(*T)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
