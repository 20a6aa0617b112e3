// Package pages contains the page-level templ components.
package pages

import "strings"

// classes joins the non-empty class names.
func classes(names ...string) string {
	var out []string
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}

func when(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
