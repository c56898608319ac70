package golove

import (
	"strconv"
	"strings"
)

// Bounds for pattern commands from the upstream API documentation. The docs
// list no maximum interval; 1000ms is the highest value in their samples.
const (
	// MinPatternInterval is the shortest allowed step interval in milliseconds.
	MinPatternInterval = 100
	// MaxPatternInterval is the longest allowed step interval in milliseconds.
	MaxPatternInterval = 1000
	// DefaultPatternInterval is used when a request leaves the interval unset.
	DefaultPatternInterval = 100
	// MaxPatternSteps is the most strength steps a single pattern may carry.
	MaxPatternSteps = 50

	minStrength = 0
	maxStrength = 20

	patternRuleVersion = 1
)

// PatternRequest describes a Pattern command built from discrete strengths.
type PatternRequest struct {
	// Strengths is the sequence of strength steps, played in order. Length
	// must be 1 to MaxPatternSteps. Values are clamped to [0,20].
	Strengths []int

	// Interval is the time between steps in milliseconds. 0 uses
	// DefaultPatternInterval; anything else must lie within
	// [MinPatternInterval, MaxPatternInterval].
	Interval int

	// Duration is the total run time in seconds. 0 runs until stopped.
	Duration float64

	// Actions limits the pattern to specific functions. Empty, or any set
	// containing ActionAll, targets everything the toys support.
	Actions []Action

	// Toy targets a single toy by ID. Empty targets all toys.
	Toy string
}

// Command builds and validates the wire payload. The strength sequence keeps
// its exact relative order; nothing is reordered or resampled beyond
// clamping individual values.
func (r PatternRequest) Command() (PatternCommand, error) {
	if len(r.Strengths) == 0 {
		return PatternCommand{}, invalidArgf("pattern requires at least one strength step")
	}
	if len(r.Strengths) > MaxPatternSteps {
		return PatternCommand{}, invalidArgf("pattern has %d steps, maximum is %d",
			len(r.Strengths), MaxPatternSteps)
	}
	if r.Duration < 0 {
		return PatternCommand{}, invalidArgf("duration %v must not be negative", r.Duration)
	}

	interval := r.Interval
	if interval == 0 {
		interval = DefaultPatternInterval
	}
	if interval < MinPatternInterval || interval > MaxPatternInterval {
		return PatternCommand{}, invalidArgf("interval %dms outside range [%d,%d]",
			interval, MinPatternInterval, MaxPatternInterval)
	}

	rule, err := buildRule(r.Actions, interval)
	if err != nil {
		return PatternCommand{}, err
	}

	return PatternCommand{
		Command:  cmdPattern,
		Rule:     rule,
		Strength: encodeStrengths(r.Strengths),
		TimeSec:  r.Duration,
		Toy:      r.Toy,
		APIVer:   2,
	}, nil
}

// NewPatternCommand builds a Pattern command from a strength sequence.
func NewPatternCommand(strengths []int, interval int, duration float64) (PatternCommand, error) {
	return PatternRequest{Strengths: strengths, Interval: interval, Duration: duration}.Command()
}

// RawPatternRequest passes pre-formatted rule and strength strings through
// with structural checks only. Semantic correctness is the caller's problem.
type RawPatternRequest struct {
	// Strength is the ';'-joined strength string, e.g. "1;2;3;4;5;20".
	Strength string

	// Rule is the pattern rule string, e.g. "V:1;F:v;S:100#". Empty uses
	// the default rule targeting all functions at DefaultPatternInterval.
	Rule string

	// Duration is the total run time in seconds. 0 runs until stopped.
	Duration float64

	// Toy targets a single toy by ID. Empty targets all toys.
	Toy string
}

// Command validates the structure of both strings and builds the payload.
func (r RawPatternRequest) Command() (PatternCommand, error) {
	rule := r.Rule
	if rule == "" {
		rule = defaultRule()
	}
	if err := validateRule(rule); err != nil {
		return PatternCommand{}, err
	}
	if err := validateStrengthString(r.Strength); err != nil {
		return PatternCommand{}, err
	}
	if r.Duration < 0 {
		return PatternCommand{}, invalidArgf("duration %v must not be negative", r.Duration)
	}
	return PatternCommand{
		Command:  cmdPattern,
		Rule:     rule,
		Strength: r.Strength,
		TimeSec:  r.Duration,
		Toy:      r.Toy,
		APIVer:   2,
	}, nil
}

// NewRawPatternCommand builds a Pattern command from pre-formatted strings.
func NewRawPatternCommand(strength, rule string, duration float64) (PatternCommand, error) {
	return RawPatternRequest{Strength: strength, Rule: rule, Duration: duration}.Command()
}

// encodeStrengths clamps each step into [0,20] and joins them with ';'.
func encodeStrengths(strengths []int) string {
	parts := make([]string, len(strengths))
	for i, s := range strengths {
		if s < minStrength {
			s = minStrength
		}
		if s > maxStrength {
			s = maxStrength
		}
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ";")
}

// ParseStrengths decodes a pattern strength string back into its steps. It
// is the symmetric reader for encodeStrengths and is handy for replaying
// captured patterns.
func ParseStrengths(s string) ([]int, error) {
	if s == "" {
		return nil, invalidArgf("strength string is empty")
	}
	parts := strings.Split(s, ";")
	steps := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, invalidArgf("strength step %q is not an integer", part)
		}
		steps[i] = v
	}
	return steps, nil
}

// buildRule assembles the rule string "V:1;F:<letters>;S:<interval>#". The
// docs say to leave the feature field blank to target all functions.
func buildRule(actions []Action, interval int) (string, error) {
	letters, err := featureLetters(actions)
	if err != nil {
		return "", err
	}
	return "V:" + strconv.Itoa(patternRuleVersion) + ";F:" + letters + ";S:" + strconv.Itoa(interval) + "#", nil
}

func defaultRule() string {
	return "V:" + strconv.Itoa(patternRuleVersion) + ";F:;S:" + strconv.Itoa(DefaultPatternInterval) + "#"
}

// featureLetters converts actions to the rule's comma-joined letter codes,
// deduplicated and sorted for stable output. An empty result means "all".
func featureLetters(actions []Action) (string, error) {
	var seen [128]bool
	for _, action := range actions {
		if action == ActionAll {
			return "", nil
		}
		if !action.Valid() {
			return "", invalidArgf("unsupported action %q", string(action))
		}
		letter, ok := action.letterCode()
		if !ok {
			return "", invalidArgf("action %q has no pattern letter code", string(action))
		}
		seen[letter] = true
	}
	var codes []string
	for _, letter := range []byte{'d', 'f', 'p', 'r', 's', 't', 'v'} {
		if seen[letter] {
			codes = append(codes, string(letter))
		}
	}
	return strings.Join(codes, ","), nil
}

// validateRule checks the delimiter structure of a rule string: a version,
// feature, and interval segment separated by ';', terminated by '#'.
func validateRule(rule string) error {
	if !strings.HasSuffix(rule, "#") {
		return invalidArgf("rule %q must end with '#'", rule)
	}
	segments := strings.Split(strings.TrimSuffix(rule, "#"), ";")
	if len(segments) != 3 {
		return invalidArgf("rule %q must have exactly three ';' separated segments", rule)
	}
	prefixes := []string{"V:", "F:", "S:"}
	for i, prefix := range prefixes {
		if !strings.HasPrefix(segments[i], prefix) {
			return invalidArgf("rule %q segment %d must start with %q", rule, i+1, prefix)
		}
	}
	return nil
}

// validateStrengthString checks that a raw strength string is ';'-delimited
// integers.
func validateStrengthString(s string) error {
	_, err := ParseStrengths(s)
	return err
}
