package photon

// Result is implemented by every calculation result. Fields returns the
// flat name -> value mapping consumed by chart and display layers; booleans
// are encoded as 0 or 1.
type Result interface {
	Fields() map[string]float64
}

func boolField(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
