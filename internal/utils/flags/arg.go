package flags

import (
	"fmt"
	"strings"
)

// shellSpecialChars are the characters a shell would split or expand on
const shellSpecialChars = " \t\n'\"`$\\*?&|;<>()#~!"

// Arg is a flag of a suggested command, printed as it would be typed in a shell
type Arg struct {
	Name  string
	Value interface{}
}

func (a Arg) String() string {
	s := " --" + a.Name

	switch v := a.Value.(type) {
	case nil:
		return s
	case bool:
		if v {
			return s
		}
		return s + "=false"
	}

	return fmt.Sprintf("%s %s", s, shellQuote(fmt.Sprint(a.Value)))
}

// Command builds a suggested command line from the command and its flag args
func Command(command string, args ...Arg) string {
	var sb strings.Builder
	sb.WriteString(command)
	for _, arg := range args {
		sb.WriteString(arg.String())
	}
	return sb.String()
}

func shellQuote(value string) string {
	if value == "" {
		return "''"
	}
	if !strings.ContainsAny(value, shellSpecialChars) {
		return value
	}
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
