package models

// BoolPtr is a convenience for the pointer-typed availability flags.
func BoolPtr(b bool) *bool { return &b }
