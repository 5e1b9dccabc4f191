package resume

import "strings"

// EnhanceBullet rewrites a single experience bullet: strips any leading
// marker, swaps weak verbs for stronger ones, capitalizes the first letter
// and prefixes a uniform "• " marker.
//
//	EnhanceBullet("worked on a project") == "• Collaborated on a project"
func EnhanceBullet(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimLeft(s, "•-* ")

	for _, swap := range verbSwaps {
		s = swap.re.ReplaceAllString(s, swap.to)
	}

	s = capitalizeFirst(s)
	return "• " + s
}

func capitalizeFirst(s string) string {
	for i, r := range s {
		return s[:i] + string(toUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
