package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flag is a CLI flag that knows how to register itself
type Flag interface {
	Register(fs *pflag.FlagSet)
}

// Meta is the flag metadata shared by every flag type
type Meta struct {
	Name      string
	Shorthand string
	Usage     Usage
	Hidden    bool
}

// Usage is the flag usage
type Usage struct {
	Description   string
	DefaultValue  string
	Note          string
	AllowedValues []string
}

func (u Usage) String() string {
	var sb strings.Builder
	sb.WriteString(u.Description)

	if u.DefaultValue != "" {
		sb.WriteString(fmt.Sprintf(" (Default value: %s)", u.DefaultValue))
	}

	if len(u.AllowedValues) > 0 {
		sb.WriteString(fmt.Sprintf(", available options: [%s]", strings.Join(u.AllowedValues, ", ")))
	}

	if u.Note != "" {
		sb.WriteString(fmt.Sprintf(" NOTE: %s", u.Note))
	}
	return sb.String()
}

// StringFlag is a string flag
type StringFlag struct {
	Meta
	Value        *string
	DefaultValue string
}

// Register registers the flag with the flag set
func (f StringFlag) Register(fs *pflag.FlagSet) {
	fs.StringVarP(f.Value, f.Name, f.Shorthand, f.DefaultValue, f.Usage.String())
	f.markHidden(fs)
}

// BoolFlag is a bool flag
type BoolFlag struct {
	Meta
	Value        *bool
	DefaultValue bool
}

// Register registers the flag with the flag set
func (f BoolFlag) Register(fs *pflag.FlagSet) {
	fs.BoolVarP(f.Value, f.Name, f.Shorthand, f.DefaultValue, f.Usage.String())
	f.markHidden(fs)
}

// IntFlag is an int flag
type IntFlag struct {
	Meta
	Value        *int
	DefaultValue int
}

// Register registers the flag with the flag set
func (f IntFlag) Register(fs *pflag.FlagSet) {
	fs.IntVarP(f.Value, f.Name, f.Shorthand, f.DefaultValue, f.Usage.String())
	f.markHidden(fs)
}

// CustomFlag is a flag backed by a pflag.Value
type CustomFlag struct {
	Meta
	Value pflag.Value
}

// Register registers the flag with the flag set
func (f CustomFlag) Register(fs *pflag.FlagSet) {
	fs.VarP(f.Value, f.Name, f.Shorthand, f.Usage.String())
	f.markHidden(fs)
}

func (m Meta) markHidden(fs *pflag.FlagSet) {
	if m.Hidden {
		MarkHidden(fs, m.Name)
	}
}

// MarkHidden marks the flag as hidden
func MarkHidden(fs *pflag.FlagSet, name string) {
	if err := fs.MarkHidden(name); err != nil {
		panic(err)
	}
}
