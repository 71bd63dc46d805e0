package completion

import (
	"fmt"
	"io"
	"path"
	"regexp"
)

// bash function names only allow a subset of what file names allow
var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9_]`)

// GenerateBash writes a bash completion script for the program at
// executable. Completion itself is answered by go-flags when the program
// runs with GO_FLAGS_COMPLETION set.
func GenerateBash(w io.Writer, executable string) error {
	scriptName := path.Base(executable)
	funcName := "_completion_" + unsafeNameChars.ReplaceAllString(scriptName, "_")
	// see https://pkg.go.dev/github.com/jessevdk/go-flags
	_, err := fmt.Fprintf(w, `
%s() {
    # All arguments except the first one
    args=("${COMP_WORDS[@]:1:$COMP_CWORD}")

    # Only split on newlines
    local IFS=$'\n'

    # Call completion (note that the first element of COMP_WORDS is
    # the executable itself)
    COMPREPLY=($(GO_FLAGS_COMPLETION=1 ${COMP_WORDS[0]} "${args[@]}"))
    return 0
}

complete -F %s %s
`, funcName, funcName, scriptName)
	return err
}
