package sim

import "testing"

type fakeStates []bool

func (f fakeStates) PickupCollected(id PickupID) bool {
	return id >= 0 && int(id) < len(f) && f[id]
}

func (f fakeStates) CollectedPickups() int {
	n := 0
	for _, v := range f {
		if v {
			n++
		}
	}
	return n
}

func (f fakeStates) TotalPickups() int { return len(f) }

func TestRuleSatisfied(t *testing.T) {
	cases := []struct {
		name   string
		rule   Rule
		states fakeStates
		want   bool
	}{
		{"all of, none", AllOf(0, 1), fakeStates{false, false, true}, false},
		{"all of, one", AllOf(0, 1), fakeStates{true, false, true}, false},
		{"all of, both", AllOf(0, 1), fakeStates{true, true, false}, true},
		{"all of, empty", AllOf(), fakeStates{true}, false},
		{"at least listed", AtLeast(2, 0, 1, 2), fakeStates{true, false, true}, true},
		{"at least listed short", AtLeast(2, 0, 1, 2), fakeStates{true, false, false, true}, false},
		{"at least any", AtLeast(3), fakeStates{true, true, false, true}, true},
		{"at least zero", AtLeast(0), fakeStates{true}, false},
		{"all collected", AllCollected(), fakeStates{true, true}, true},
		{"all collected, missing", AllCollected(), fakeStates{true, false}, false},
		{"all collected, no pickups", AllCollected(), fakeStates{}, false},
		{"unknown kind", Rule{Kind: "nope"}, fakeStates{true}, false},
	}
	for _, tc := range cases {
		if got := tc.rule.Satisfied(tc.states); got != tc.want {
			t.Errorf("%s: Satisfied=%v want=%v", tc.name, got, tc.want)
		}
	}
}

func TestRuleValidate(t *testing.T) {
	cases := []struct {
		name    string
		rule    Rule
		total   int
		wantErr bool
	}{
		{"all of", AllOf(0, 1), 2, false},
		{"all of out of range", AllOf(0, 2), 2, true},
		{"all of empty", AllOf(), 2, true},
		{"negative id", AllOf(-1), 2, true},
		{"at least", AtLeast(2), 3, false},
		{"at least too many", AtLeast(3, 0, 1), 3, true},
		{"at least zero", AtLeast(0), 3, true},
		{"all collected", AllCollected(), 1, false},
		{"all collected empty", AllCollected(), 0, true},
		{"unknown", Rule{Kind: "any_of"}, 3, true},
	}
	for _, tc := range cases {
		err := tc.rule.Validate(tc.total)
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: err=%v wantErr=%v", tc.name, err, tc.wantErr)
		}
	}
}
