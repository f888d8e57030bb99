package manifest

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/pharmakit/icontint/internal/color"
	"github.com/pharmakit/icontint/internal/icons"
	tinterrors "github.com/pharmakit/icontint/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("icon_hex", func(fl validator.FieldLevel) bool {
			return color.IsHex(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on the manifest.
func Validate(m *Manifest) error {
	if m == nil {
		return tinterrors.NewValidationError("manifest", "manifest is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(m); err != nil {
		return convertValidationError(err)
	}

	for key, ic := range m.Icons {
		if key != icons.CanonicalKey(key) {
			return tinterrors.NewValidationError(
				fieldForIcon(key, ""),
				fmt.Sprintf("icon key %q is not lowercase", key), nil)
		}

		seen := make(map[string]struct{}, len(ic.Slots))
		for _, slot := range ic.Slots {
			if _, dup := seen[slot.Role]; dup {
				return tinterrors.NewValidationError(
					fieldForIcon(key, slot.Role),
					fmt.Sprintf("duplicate slot role %q", slot.Role), nil)
			}
			seen[slot.Role] = struct{}{}

			lit := color.Normalize(slot.Literal())
			if _, reserved := color.ReservedBlacks[lit]; reserved {
				return tinterrors.NewValidationError(
					fieldForIcon(key, slot.Role),
					fmt.Sprintf("slot maps reserved outline color %s", lit), nil)
			}
		}
	}

	return nil
}

// ValidateAgainst verifies that every slot's substitution literal actually
// occurs as a fill attribute in the corresponding template, so a mismatched
// manifest fails at startup instead of no-opping silently per request.
func ValidateAgainst(m *Manifest, store *icons.Store) error {
	if err := Validate(m); err != nil {
		return err
	}

	for key, ic := range m.Icons {
		svg, err := store.Get(key)
		if err != nil {
			return err
		}
		haystack := strings.ToLower(svg)

		for _, slot := range ic.Slots {
			lit := color.Normalize(slot.Literal())
			if !strings.Contains(haystack, `fill="`+lit+`"`) {
				return tinterrors.NewValidationError(
					fieldForIcon(key, slot.Role),
					fmt.Sprintf("substitution literal %s does not occur in template %q", lit, key), nil)
			}
		}
	}

	return nil
}

func fieldForIcon(key, role string) string {
	if role == "" {
		return fmt.Sprintf("icons.%s", key)
	}
	return fmt.Sprintf("icons.%s.slots[%s]", key, role)
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return tinterrors.NewValidationError(fe.Namespace(),
			fmt.Sprintf("failed %q validation", fe.Tag()), err)
	}

	return tinterrors.NewValidationError("manifest", err.Error(), err)
}
