package form

import (
	"net/mail"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Values holds raw field input keyed by field name.
type Values map[string]string

// Clone copies v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, s := range v {
		out[k] = s
	}
	return out
}

// Kind hints how a field is rendered.
type Kind string

const (
	KindText     Kind = "text"
	KindTextArea Kind = "textarea"
	KindEmail    Kind = "email"
	KindSelect   Kind = "select"
	KindDecimal  Kind = "decimal"
	KindDate     Kind = "date"
	KindTime     Kind = "time"
)

// Rule checks one raw value and returns a message, or "" when it passes.
type Rule func(value string) string

// Field describes one input of a schema.
type Field struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Kind     Kind     `json:"kind"`
	Required bool     `json:"required,omitempty"`
	Options  []string `json:"options,omitempty"`
	Rules    []Rule   `json:"-"`
}

// Check runs the field's rules in order and returns the first message.
func (f Field) Check(value string) string {
	for _, rule := range f.Rules {
		if msg := rule(value); msg != "" {
			return msg
		}
	}
	return ""
}

// Schema binds form values to a record type.
type Schema[T any] interface {
	Fields() []Field
	// Defaults returns the values of a new record created at now.
	Defaults(now time.Time) Values
	// Encode renders rec as field values.
	Encode(rec T) Values
	// Decode builds a record from values that passed every field rule.
	// Cross-field failures are reported as FieldErrors.
	Decode(v Values) (T, error)
}

// TagSchema is implemented by schemas whose records carry a tag list.
type TagSchema[T any] interface {
	Tags(rec T) []string
	WithTags(rec T, tags []string) T
}

// Validate runs every field rule against v.
func Validate(fields []Field, v Values) FieldErrors {
	errs := FieldErrors{}
	for _, f := range fields {
		if msg := f.Check(v[f.Name]); msg != "" {
			errs[f.Name] = msg
		}
	}
	return errs
}

// Optional skips rule for empty values.
func Optional(rule Rule) Rule {
	return func(v string) string {
		if strings.TrimSpace(v) == "" {
			return ""
		}
		return rule(v)
	}
}

// MinLength rejects values shorter than n runes after trimming.
func MinLength(n int, msg string) Rule {
	return func(v string) string {
		if len([]rune(strings.TrimSpace(v))) < n {
			return msg
		}
		return ""
	}
}

// Email rejects values that are not a bare email address.
func Email(msg string) Rule {
	return func(v string) string {
		addr, err := mail.ParseAddress(v)
		if err != nil || addr.Address != v || addr.Name != "" {
			return msg
		}
		return ""
	}
}

// OneOf rejects values outside options.
func OneOf(options []string, msg string) Rule {
	return func(v string) string {
		for _, o := range options {
			if v == o {
				return ""
			}
		}
		return msg
	}
}

// Decimal rejects values that do not parse as a decimal number.
func Decimal(msg string) Rule {
	return func(v string) string {
		if _, err := decimal.NewFromString(strings.TrimSpace(v)); err != nil {
			return msg
		}
		return ""
	}
}

// Positive rejects decimals that are zero or negative. Unparsable values
// pass; pair with Decimal.
func Positive(msg string) Rule {
	return func(v string) string {
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err == nil && !d.IsPositive() {
			return msg
		}
		return ""
	}
}

// NonNegative rejects negative decimals. Unparsable values pass.
func NonNegative(msg string) Rule {
	return func(v string) string {
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err == nil && d.IsNegative() {
			return msg
		}
		return ""
	}
}

// MaxScale rejects decimals with more than places fractional digits.
// Trailing zeros do not count. Unparsable values pass.
func MaxScale(places int32, msg string) Rule {
	return func(v string) string {
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err == nil && !d.Equal(d.Truncate(places)) {
			return msg
		}
		return ""
	}
}

// Date layout used by date fields.
const DateLayout = time.DateOnly

// Clock layout used by time fields.
const ClockLayout = "15:04"

// Date rejects values that are not YYYY-MM-DD.
func Date(msg string) Rule {
	return func(v string) string {
		if _, err := time.Parse(DateLayout, v); err != nil {
			return msg
		}
		return ""
	}
}

// Clock rejects values that are not HH:MM.
func Clock(msg string) Rule {
	return func(v string) string {
		if _, err := time.Parse(ClockLayout, v); err != nil {
			return msg
		}
		return ""
	}
}

// ParseDecimal parses a validated decimal field.
func ParseDecimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(strings.TrimSpace(v))
	return d
}

// FormatDecimal renders d with places fractional digits, or exactly when
// rounding would change its value.
func FormatDecimal(d decimal.Decimal, places int32) string {
	if !d.Equal(d.Truncate(places)) {
		return d.String()
	}
	return d.StringFixed(places)
}

// CombineDateClock joins a YYYY-MM-DD day and an HH:MM clock in loc.
func CombineDateClock(day, clock string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+ClockLayout, day+" "+clock, loc)
}
