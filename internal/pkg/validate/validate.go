package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-baas-api/internal/domain"
	"github.com/go-playground/validator/v10"
)

var (
	phoneRe   = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
	ssnRe     = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)
	zipCodeRe = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

var usStates = map[string]struct{}{}

func init() {
	for _, s := range strings.Fields(`AL AK AZ AR CA CO CT DE DC FL GA HI ID IL IN IA KS KY LA ME MD MA MI MN MS
		MO MT NE NV NH NJ NM NY NC ND OH OK OR PA RI SC SD TN TX UT VT VA WA WV WI WY PR GU VI AS MP`) {
		usStates[s] = struct{}{}
	}
	mustRegister("phone", regexTag(phoneRe))
	mustRegister("ssn", regexTag(ssnRe))
	mustRegister("zipcode", regexTag(zipCodeRe))
	mustRegister("usstate", func(fl validator.FieldLevel) bool {
		_, ok := usStates[fl.Field().String()]
		return ok
	})
}

// v is the package-level singleton validator. Custom tags are registered in
// init() before the first call to Struct.
var v = validator.New()

func mustRegister(tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

func regexTag(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// Struct validates the given struct using its validate tags.
// The returned error wraps domain.ErrBadRequest and lists every failed field.
func Struct(s interface{}) error {
	if err := v.Struct(s); err != nil {
		return describe(err)
	}
	return nil
}

// Var validates a single value against a tag expression such as "email".
func Var(field string, value interface{}, tag string) error {
	if err := v.Var(value, tag); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return domain.NewFault(domain.ErrBadRequest, "%v", err)
		}
		return domain.NewFault(domain.ErrBadRequest, "field '%s' failed '%s'", field, ve[0].Tag())
	}
	return nil
}

func describe(err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.NewFault(domain.ErrBadRequest, "%v", err)
	}
	var msgs []string
	for _, fe := range ve {
		msgs = append(msgs, fmt.Sprintf("field '%s' failed '%s'", fe.Field(), fe.Tag()))
	}
	return domain.NewFault(domain.ErrBadRequest, "%s", strings.Join(msgs, "; "))
}
