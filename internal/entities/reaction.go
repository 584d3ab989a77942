package entities

// Delta is a counters change implied by a reaction transition.
type Delta struct {
	Likes    int
	Dislikes int
}

// Counters ...
type Counters struct {
	Likes    uint32
	Dislikes uint32
}

// Transition returns counters delta for from → to transition.
// Same-kind transitions are no-ops.
func Transition(from, to ReactionKind) Delta {
	var d Delta

	if from == to {
		return d
	}

	switch from {
	case ReactionLike:
		d.Likes--
	case ReactionDislike:
		d.Dislikes--
	}

	switch to {
	case ReactionLike:
		d.Likes++
	case ReactionDislike:
		d.Dislikes++
	}

	return d
}

// Apply applies delta to counters. Decrements are clamped at zero; clamped is true when it happened.
func (c Counters) Apply(d Delta) (out Counters, clamped bool) {
	var cl, dl bool

	out.Likes, cl = add(c.Likes, d.Likes)
	out.Dislikes, dl = add(c.Dislikes, d.Dislikes)

	return out, cl || dl
}

func add(v uint32, d int) (uint32, bool) {
	if d >= 0 {
		return v + uint32(d), false
	}

	if uint32(-d) > v {
		return 0, true
	}

	return v - uint32(-d), false
}

// Toggle returns the target reaction when a user presses the pressed button having from reaction.
// Pressing the same button twice removes the reaction.
func Toggle(from, pressed ReactionKind) ReactionKind {
	if from == pressed {
		return ReactionNone
	}

	return pressed
}
