package sim

import "fmt"

// PickupID is a pickup's position in the layout's pickup list.
type PickupID int

// PickupStates is the read-only view a gate rule is evaluated against.
type PickupStates interface {
	PickupCollected(id PickupID) bool
	CollectedPickups() int
	TotalPickups() int
}

type RuleKind string

const (
	RuleAllOf        RuleKind = "all_of"
	RuleAtLeast      RuleKind = "at_least"
	RuleAllCollected RuleKind = "all_collected"
)

// Rule is the open condition of a gate. It is evaluated from scratch every tick.
type Rule struct {
	Kind      RuleKind   `json:"kind"`
	Pickups   []PickupID `json:"pickups,omitempty"`
	Threshold int        `json:"threshold,omitempty"`
}

// AllOf holds once every listed pickup has been collected.
func AllOf(ids ...PickupID) Rule {
	return Rule{Kind: RuleAllOf, Pickups: ids}
}

// AtLeast holds once n of the listed pickups (every pickup when none are listed)
// have been collected.
func AtLeast(n int, ids ...PickupID) Rule {
	return Rule{Kind: RuleAtLeast, Pickups: ids, Threshold: n}
}

func AllCollected() Rule {
	return Rule{Kind: RuleAllCollected}
}

func (r Rule) Satisfied(s PickupStates) bool {
	switch r.Kind {
	case RuleAllOf:
		if len(r.Pickups) == 0 {
			return false
		}
		for _, id := range r.Pickups {
			if !s.PickupCollected(id) {
				return false
			}
		}
		return true
	case RuleAtLeast:
		if r.Threshold <= 0 {
			return false
		}
		if len(r.Pickups) == 0 {
			return s.CollectedPickups() >= r.Threshold
		}
		n := 0
		for _, id := range r.Pickups {
			if s.PickupCollected(id) {
				n++
			}
		}
		return n >= r.Threshold
	case RuleAllCollected:
		total := s.TotalPickups()
		return total > 0 && s.CollectedPickups() == total
	}
	return false
}

// Validate checks the rule against a layout holding total pickups.
func (r Rule) Validate(total int) error {
	for _, id := range r.Pickups {
		if id < 0 || int(id) >= total {
			return fmt.Errorf("pickup %d out of range [0,%d)", id, total)
		}
	}
	switch r.Kind {
	case RuleAllOf:
		if len(r.Pickups) == 0 {
			return fmt.Errorf("%s rule needs at least one pickup", r.Kind)
		}
	case RuleAtLeast:
		limit := total
		if len(r.Pickups) > 0 {
			limit = len(r.Pickups)
		}
		if r.Threshold <= 0 || r.Threshold > limit {
			return fmt.Errorf("%s threshold %d outside [1,%d]", r.Kind, r.Threshold, limit)
		}
	case RuleAllCollected:
		if total == 0 {
			return fmt.Errorf("%s rule in a layout without pickups", r.Kind)
		}
	default:
		return fmt.Errorf("unknown rule kind %q", r.Kind)
	}
	return nil
}
