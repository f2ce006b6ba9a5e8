package config

import (
	"os"
	"strings"
	"unicode"
)

const badFileName = "_bad_file_name_"

// CleanFileName turns document or model name into a single output path
// segment. Scope separators of nested names ("arm::gripper") become "-",
// separators, control and platform reserved characters are dropped. Leading
// dots are removed so outputs are never hidden.
func CleanFileName(in string) string {
	drop := reservedChars + string(os.PathSeparator) + string(os.PathListSeparator)
	out := strings.Map(func(sym rune) rune {
		if unicode.IsControl(sym) || strings.ContainsRune(drop, sym) {
			return -1
		}
		return sym
	}, strings.ReplaceAll(in, "::", "-"))
	out = strings.TrimLeft(out, ".")
	if len(strings.TrimSpace(out)) == 0 {
		return badFileName
	}
	return out
}
