package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

const (
	switchFlagTypeName              = "bool"
	switchFlagTrueLiteral           = "true"
	switchFlagAcceptedValuesListing = "true, false, yes, no, on, off, 1, 0"
	switchFlagInvalidValueFormat    = "invalid boolean value %q for --%s; accepted values: %s"
)

var switchFlagLiterals = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
	"off":   false,
}

// switchFlag is a boolean flag that also accepts yes/no and on/off literals.
// A bare --name sets it to true; a value must be attached with '=' so that a
// following positional root directory is never mistaken for a flag value.
type switchFlag struct {
	target  *bool
	flagKey string
}

func (value *switchFlag) Set(input string) error {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		normalized = switchFlagTrueLiteral
	}
	parsed, ok := switchFlagLiterals[normalized]
	if !ok {
		return fmt.Errorf(switchFlagInvalidValueFormat, input, value.flagKey, switchFlagAcceptedValuesListing)
	}
	*value.target = parsed
	return nil
}

func (value *switchFlag) String() string {
	if value == nil || value.target == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(*value.target)
}

func (value *switchFlag) Type() string {
	return switchFlagTypeName
}

// registerSwitchFlag defines a switchFlag on flagSet bound to target.
func registerSwitchFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, usage string) {
	*target = defaultValue
	flagSet.Var(&switchFlag{target: target, flagKey: name}, name, usage)
	if lookup := flagSet.Lookup(name); lookup != nil {
		lookup.DefValue = strconv.FormatBool(defaultValue)
		lookup.NoOptDefVal = switchFlagTrueLiteral
	}
}
