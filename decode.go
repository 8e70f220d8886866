package conf

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// Validator defines an interface for validating decoded configuration
// structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in decoded
// configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Decode unmarshals the document subtree at the given keys into target,
// using the target's yaml struct tags. A virtual subtree leaves the target
// untouched. If the target implements Defaulter, defaults are applied
// after unmarshaling; if it implements Validator, it is validated last.
//
// Decode reads the in-memory document only; it never touches disk.
func (r *Resolver) Decode(target any, keys ...string) error {
	subtree := r.root
	for _, key := range keys {
		subtree = subtree.Get(key)
	}

	if subtree.Exists() {
		data, err := yaml.Marshal(subtree.Raw())
		if err != nil {
			return fmt.Errorf("marshaling subtree %q: %w", strings.Join(keys, "/"), err)
		}

		err = yaml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshaling subtree %q: %w", strings.Join(keys, "/"), err)
		}
	}

	targetDefaulter, isDefaulter := target.(Defaulter)
	if isDefaulter {
		changed := targetDefaulter.SetDefaults()
		if changed {
			r.options.Logger.Debug("defaults applied to decoded target",
				"config", r.identity.String(), "subtree", strings.Join(keys, "/"))
		}
	}

	targetValidator, isValidator := target.(Validator)
	if isValidator {
		err := targetValidator.Validate()
		if err != nil {
			return fmt.Errorf("validating error: %w", err)
		}
	}

	return nil
}
