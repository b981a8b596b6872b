package audio

type envelopeState int

const (
	stateInit envelopeState = iota
	stateAttack
	stateSustain
)

// envelope is a linear fade-in: it ramps from 0 to 1 and then holds.
type envelope struct {
	attackRate float64
	val        float64
	state      envelopeState
}

func (e *envelope) value() float64 {
	switch e.state {
	case stateInit:
		return 0.
	case stateAttack:
		e.val += e.attackRate
		if e.val >= 1 {
			e.val = 1.0
			e.state = stateSustain
		}
	case stateSustain:
		e.val = 1.0
	}
	return e.val
}

// startAttack starts a ramp lasting the given number of samples.
func (e *envelope) startAttack(samples float64) {
	if samples < 1 {
		e.val = 1
		e.state = stateSustain
		return
	}
	e.val = 0
	e.attackRate = 1.0 / samples
	e.state = stateAttack
}
