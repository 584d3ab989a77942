package entities

// MaxLevel ...
const MaxLevel = 99

// LevelExp returns minimal exp for level l.
func LevelExp(l uint16) uint64 {
	if l <= 1 {
		return 0
	}

	return 50 * uint64(l) * uint64(l-1)
}

// LevelFromExp ...
func LevelFromExp(exp uint64) uint16 {
	l := uint16(1)
	for l < MaxLevel && LevelExp(l+1) <= exp {
		l++
	}

	return l
}
