package sim

// Input is the per-tick control state sampled by the front end.
type Input struct {
	Accelerate bool
	Brake      bool
	TurnLeft   bool
	TurnRight  bool
}

// Steer returns +1 for left, -1 for right, 0 when neither or both are held.
func (in Input) Steer() float64 {
	s := 0.0
	if in.TurnLeft {
		s++
	}
	if in.TurnRight {
		s--
	}
	return s
}
