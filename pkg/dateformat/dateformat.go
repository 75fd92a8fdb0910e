// Package dateformat compiles human-readable date-format specs such as
// "YYYY-MM-DD hh:mm:ss.SSSS+HH:MM" into reusable programs that parse
// matching strings into Date values and format Date values back into
// strings.
//
// A spec is interpreted exactly once, by Compile; Parse and Format execute
// the compiled directive sequence without ever re-reading the spec text.
// A compiled DateFormat is immutable and safe for use by any number of
// concurrent goroutines.
package dateformat

// Spec constants for common ISO 8601 shapes. The datetime form joins date
// and time with the OPEN BOX sentinel, which accepts either 'T' or a space
// on input and always renders 'T'.
const (
	ISOFormatDate      = "YYYY-MM-DD"
	ISOFormatTime      = "hh:mm:ss"
	ISOFormatDateTime  = ISOFormatDate + OpenBox + ISOFormatTime
	ISOFormatBasicDate = "YYYY[MM][DD]"
	ISOFormatBasicTime = "hhmmss"
)

type hourMode int

const (
	hourMode24 hourMode = 24
	hourMode12 hourMode = 12
)

// DateFormat is a compiled date-format program: the ordered directive
// sequence plus metadata derived from it. All fields are fixed at compile
// time; Parse and Format keep every piece of working state local to the
// call.
type DateFormat struct {
	spec       string
	directives []directive
	strict     []bool // exact-width flag per directive, from digit adjacency
	mode       hourMode
	hasOffset  bool
	locale     *Locale
	resolver   TimezoneResolver
}

type compileOptions struct {
	mode     hourMode // 0 means derive from the spec
	locale   *Locale
	resolver TimezoneResolver
}

// Option configures Compile.
type Option func(*compileOptions)

// WithHourMode24 forces 24-hour interpretation of the hour field even when
// the spec contains an am/pm directive.
func WithHourMode24() Option {
	return func(o *compileOptions) { o.mode = hourMode24 }
}

// WithHourMode12 forces 12-hour interpretation of the hour field.
func WithHourMode12() Option {
	return func(o *compileOptions) { o.mode = hourMode12 }
}

// WithLocale sets the name table used for month and weekday directives.
// The default is EnglishLocale.
func WithLocale(l *Locale) Option {
	return func(o *compileOptions) { o.locale = l }
}

// WithTimezoneResolver enables timezone-name directives, resolved through
// r during parsing.
func WithTimezoneResolver(r TimezoneResolver) Option {
	return func(o *compileOptions) { o.resolver = r }
}

// Compile tokenizes spec into a directive program. It returns a *SpecError
// when the spec contains an unrecognized token or a timezone-name directive
// without a resolver configured. The returned DateFormat is immutable and
// may be shared freely.
func Compile(spec string, opts ...Option) (*DateFormat, error) {
	var o compileOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.locale == nil {
		o.locale = EnglishLocale()
	}

	program, err := compileSpec(spec, o.resolver)
	if err != nil {
		return nil, err
	}

	f := &DateFormat{
		spec:       spec,
		directives: program,
		strict:     make([]bool, len(program)),
		mode:       hourMode24,
		locale:     o.locale,
		resolver:   o.resolver,
	}
	for i, d := range program {
		switch d.kind {
		case dirAmPm:
			if f.mode == hourMode24 {
				f.mode = hourMode12
			}
		case dirOffsetHHMM, dirOffsetColon, dirOffsetHH, dirZoneName:
			f.hasOffset = true
		}
		if d.tolerantCapable() {
			prev := i > 0 && program[i-1].endsWithDigit()
			next := i+1 < len(program) && program[i+1].startsWithDigit()
			f.strict[i] = prev || next
		}
	}
	// An explicit hour mode always wins over what the spec implies.
	if o.mode != 0 {
		f.mode = o.mode
	}
	return f, nil
}

// MustCompile is like Compile but panics on error. It simplifies package
// level variables holding known-good formats.
func MustCompile(spec string, opts ...Option) *DateFormat {
	f, err := Compile(spec, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Spec returns the spec string the format was compiled from.
func (f *DateFormat) Spec() string { return f.spec }

// Is24Hour reports whether the hour field is interpreted on a 0-23 scale.
func (f *DateFormat) Is24Hour() bool { return f.mode == hourMode24 }

// HasOffset reports whether the format carries an offset or timezone-name
// directive. Formatting requires an offset-carrying Date when true.
func (f *DateFormat) HasOffset() bool { return f.hasOffset }

// MatchesFormat reports whether text parses successfully against the
// format.
func (f *DateFormat) MatchesFormat(text string) bool {
	_, err := f.Parse(text)
	return err == nil
}
